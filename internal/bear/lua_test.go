package bear

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeLuaBear(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing lua bear: %v", err)
	}
	return path
}

func TestLoadLua(t *testing.T) {
	path := writeLuaBear(t, t.TempDir(), "stylebear.lua", `
return {
    name = "StyleBear",
    kind = "global",
    description = "Checks code style.",
    requirements = {
        "language",
        { name = "max_line_length", description = "Longest allowed line." },
    },
}
`)

	desc, err := LoadLua(path)
	if err != nil {
		t.Fatalf("LoadLua() error = %v", err)
	}

	if desc.Name != "StyleBear" {
		t.Errorf("Name = %q", desc.Name)
	}
	if desc.Kind != KindGlobal {
		t.Errorf("Kind = %v", desc.Kind)
	}
	if len(desc.Requirements) != 2 {
		t.Fatalf("Requirements = %v", desc.Requirements)
	}
	if desc.Requirements[0].Name != "language" {
		t.Errorf("Requirements[0] = %+v", desc.Requirements[0])
	}
	if desc.Requirements[1].Name != "max_line_length" ||
		desc.Requirements[1].Description != "Longest allowed line." {
		t.Errorf("Requirements[1] = %+v", desc.Requirements[1])
	}
}

func TestLoadLuaNameDefaultsToFileName(t *testing.T) {
	path := writeLuaBear(t, t.TempDir(), "spacebear.lua", `return { kind = "local" }`)

	desc, err := LoadLua(path)
	if err != nil {
		t.Fatalf("LoadLua() error = %v", err)
	}
	if desc.Name != "spacebear" {
		t.Errorf("Name = %q, want file-derived name", desc.Name)
	}
	if desc.Kind != KindLocal {
		t.Errorf("Kind = %v", desc.Kind)
	}
}

func TestLoadLuaNotATable(t *testing.T) {
	path := writeLuaBear(t, t.TempDir(), "broken.lua", `return "not a table"`)

	_, err := LoadLua(path)
	if !errors.Is(err, ErrNotATable) {
		t.Errorf("LoadLua() error = %v, want ErrNotATable", err)
	}
}

func TestLoadLuaSyntaxError(t *testing.T) {
	path := writeLuaBear(t, t.TempDir(), "syntax.lua", `return {`)

	if _, err := LoadLua(path); err == nil {
		t.Error("LoadLua() expected error for syntax error")
	}
}

func TestLoadLuaUnknownKind(t *testing.T) {
	path := writeLuaBear(t, t.TempDir(), "odd.lua", `return { name = "OddBear", kind = "planetary" }`)

	if _, err := LoadLua(path); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("LoadLua() error = %v, want ErrUnknownKind", err)
	}
}
