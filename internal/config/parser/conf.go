package parser

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/dshills/ursa/internal/config"
)

// ParseFile reads a coafile into a section dict. The returned dict always
// contains a "default" section; top-level keys before the first section
// header belong to it.
//
// A missing file yields config.ErrFileNotFound so callers can tell absence
// from malformed content; malformed content yields a config.ParseError.
func ParseFile(path string) (*config.SectionDict, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", config.ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, &config.ParseError{Path: path, Err: err}
	}

	dict := config.NewSectionDict()
	for _, iniSection := range f.Sections() {
		name := iniSection.Name()
		if name == ini.DefaultSection {
			name = config.DefaultSectionName
		}

		section, ok := dict.Get(name)
		if !ok {
			section = config.NewSection(name)
			dict.Put(section)
		}

		for _, key := range iniSection.Keys() {
			setting := section.Set(key.Name(), key.Value())
			setting.SourceFile = path
		}
	}

	return dict, nil
}

// WriteFile persists a section dict as a coafile. Sections and settings are
// written in insertion order; only explicitly stored settings are written,
// so defaulted-only values do not round-trip.
func WriteFile(path string, sections *config.SectionDict) error {
	f := ini.Empty()

	for _, name := range sections.Names() {
		section, _ := sections.Get(name)
		if name == config.DefaultSectionName && section.Len() == 0 && sections.Len() > 1 {
			continue
		}

		iniName := name
		if name == config.DefaultSectionName {
			iniName = ini.DefaultSection
		}
		iniSection, err := f.NewSection(iniName)
		if err != nil {
			return fmt.Errorf("writing section %q: %w", name, err)
		}

		for _, key := range section.Keys() {
			setting, _ := section.GetLocal(key)
			if _, err := iniSection.NewKey(key, setting.Value()); err != nil {
				return fmt.Errorf("writing setting %q: %w", key, err)
			}
		}
	}

	return f.SaveTo(path)
}
