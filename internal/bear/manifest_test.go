package bear

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeBearJSON(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeBearJSON(t, t.TempDir(), `{
		"name": "StyleBear",
		"kind": "local",
		"description": "Checks code style.",
		"requirements": [
			{"name": "language", "description": "Language to check."},
			{"name": "max_line_length"}
		]
	}`)

	desc, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}

	if desc.Name != "StyleBear" {
		t.Errorf("Name = %q", desc.Name)
	}
	if desc.Kind != KindLocal {
		t.Errorf("Kind = %v", desc.Kind)
	}
	if desc.Path != path {
		t.Errorf("Path = %q", desc.Path)
	}
	if len(desc.Requirements) != 2 {
		t.Fatalf("Requirements = %v", desc.Requirements)
	}
	if desc.Requirements[0].Name != "language" || desc.Requirements[0].Description != "Language to check." {
		t.Errorf("Requirements[0] = %+v", desc.Requirements[0])
	}
	if desc.Requirements[1].Name != "max_line_length" {
		t.Errorf("Requirements[1] = %+v", desc.Requirements[1])
	}
}

func TestLoadManifestDefaultsToLocal(t *testing.T) {
	path := writeBearJSON(t, t.TempDir(), `{"name": "PlainBear"}`)

	desc, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if desc.Kind != KindLocal {
		t.Errorf("Kind = %v, want KindLocal", desc.Kind)
	}
}

func TestLoadManifestMissingName(t *testing.T) {
	path := writeBearJSON(t, t.TempDir(), `{"kind": "global"}`)

	_, err := LoadManifest(path)
	if !errors.Is(err, ErrMissingName) {
		t.Errorf("LoadManifest() error = %v, want ErrMissingName", err)
	}
}

func TestLoadManifestUnknownKind(t *testing.T) {
	path := writeBearJSON(t, t.TempDir(), `{"name": "OddBear", "kind": "planetary"}`)

	_, err := LoadManifest(path)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("LoadManifest() error = %v, want ErrUnknownKind", err)
	}
}

func TestLoadManifestInvalidJSON(t *testing.T) {
	path := writeBearJSON(t, t.TempDir(), `{"name": `)

	if _, err := LoadManifest(path); err == nil {
		t.Error("LoadManifest() expected error for invalid JSON")
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("Global"); err != nil || k != KindGlobal {
		t.Errorf("ParseKind(Global) = %v, %v", k, err)
	}
	if k, err := ParseKind("local"); err != nil || k != KindLocal {
		t.Errorf("ParseKind(local) = %v, %v", k, err)
	}
	if _, err := ParseKind("sideways"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(sideways) error = %v", err)
	}
}
