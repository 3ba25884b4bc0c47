// Package loader turns configuration sources into section dicts.
//
// The loader tolerates absent files - an absent coafile yields a dict with
// an empty "default" section and a warning - but never swallows parse
// errors; a present-but-malformed file propagates to the caller.
package loader

import (
	"errors"
	"path/filepath"

	"github.com/dshills/ursa/internal/config"
	"github.com/dshills/ursa/internal/config/parser"
	"github.com/dshills/ursa/internal/output"
)

// Load reads the coafile at path into a section dict. The path is resolved
// to an absolute location first.
//
// A missing file is not an error: the result is a dict containing only an
// empty "default" section, and a warning is emitted unless silent is set.
// The silent flag exists for the user-level coafile, which is expected to
// be frequently absent.
func Load(path string, printer *output.Printer, silent bool) (*config.SectionDict, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	dict, err := parser.ParseFile(abs)
	if err != nil {
		if errors.Is(err, config.ErrFileNotFound) {
			if !silent {
				printer.Warn("The requested coafile %q does not exist. Thus it will not be used.", abs)
			}
			return config.NewSectionDict(), nil
		}
		return nil, err
	}

	return dict, nil
}

// LoadCLI reads a command-line argument list into a section dict and
// captures the requested targets.
//
// Targets are a run-time selector, not configuration: the "targets" setting
// is removed from the "default" section after capture so it is never merged
// or persisted. Each target is lower-cased.
func LoadCLI(args []string) (*config.SectionDict, []string, error) {
	dict, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	var targets []string
	if setting, ok := dict.Default().Delete("targets"); ok {
		for _, target := range setting.List() {
			targets = append(targets, config.NormalizeName(target))
		}
	}

	return dict, targets, nil
}
