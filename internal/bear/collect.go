package bear

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dshills/ursa/internal/output"
)

// Collect discovers bears under the given search directories.
//
// A bear is included iff its kind is in kinds and, when names is non-empty,
// its name matches one of them case-insensitively. An empty names list
// means "all bears". Directories that do not exist, or contain no matching
// bears, are not errors. Entries in dirs may be glob patterns.
//
// Bears reachable through more than one directory are reported once:
// identity is the lower-cased bear name, and the first directory wins.
// Results are deterministic - directory order, then lexical file order
// within each directory.
//
// Descriptors are rebuilt on every call; bear_dirs and bears may change
// between invocations, so nothing is cached.
func Collect(dirs []string, names []string, kinds []Kind, printer *output.Printer) []Descriptor {
	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[strings.ToLower(strings.TrimSpace(name))] = true
	}
	wanted := make(map[Kind]bool, len(kinds))
	for _, kind := range kinds {
		wanted[kind] = true
	}

	seen := make(map[string]bool)
	var found []Descriptor

	for _, dir := range expandDirs(dirs) {
		// Walk errors surface through the callback; missing directories
		// are skipped there, so the return value carries nothing extra.
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Missing or unreadable directories are tolerated.
				return filepath.SkipDir
			}
			if d.IsDir() {
				return nil
			}

			desc, ok := loadDefinition(path, printer)
			if !ok {
				return nil
			}

			if !wanted[desc.Kind] {
				return nil
			}
			key := strings.ToLower(desc.Name)
			if len(requested) > 0 && !requested[key] {
				return nil
			}
			if seen[key] {
				return nil
			}
			seen[key] = true
			found = append(found, desc)
			return nil
		})
	}

	return found
}

// loadDefinition loads a bear definition file, reporting whether the path
// was one. Malformed definitions are warned about and skipped.
func loadDefinition(path string, printer *output.Printer) (Descriptor, bool) {
	var (
		desc Descriptor
		err  error
	)

	switch {
	case filepath.Base(path) == ManifestName:
		desc, err = LoadManifest(path)
	case filepath.Ext(path) == ".lua":
		desc, err = LoadLua(path)
	default:
		return Descriptor{}, false
	}

	if err != nil {
		printer.Warn("Skipping bear definition %q: %v", path, err)
		return Descriptor{}, false
	}
	return desc, true
}

// expandDirs resolves glob patterns in the search directory list. Plain
// directories pass through unchanged; a pattern that matches nothing
// contributes nothing.
func expandDirs(dirs []string) []string {
	var result []string
	for _, dir := range dirs {
		if !strings.ContainsAny(dir, "*?[") {
			result = append(result, dir)
			continue
		}
		matches, err := filepath.Glob(dir)
		if err != nil {
			continue
		}
		result = append(result, matches...)
	}
	return result
}
