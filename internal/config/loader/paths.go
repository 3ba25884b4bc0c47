package loader

import (
	"os"
	"path/filepath"
)

// Paths holds the well-known filesystem locations the resolver reads.
// Construct one explicitly (or via DefaultPaths) and inject it; nothing in
// this package reads ambient global state.
type Paths struct {
	// SystemCoafile is the built-in defaults file, the lowest layer.
	SystemCoafile string

	// UserCoafile is the optional user-level file. Its absence is
	// expected and never warned about.
	UserCoafile string

	// BearRoot is the built-in bear directory, always appended to every
	// section's bear_dirs during discovery.
	BearRoot string
}

// DefaultPaths returns the standard locations: configuration under the XDG
// config directory and bundled bears under the XDG data directory.
func DefaultPaths() Paths {
	return Paths{
		SystemCoafile: filepath.Join(configDir(), "default.coafile"),
		UserCoafile:   filepath.Join(configDir(), "user.coafile"),
		BearRoot:      filepath.Join(dataDir(), "bears"),
	}
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ursa")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ursa")
}

func dataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "ursa")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "ursa")
}
