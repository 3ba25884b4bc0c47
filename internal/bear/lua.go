package bear

import (
	"fmt"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// LoadLua reads a single-file Lua bear definition. The chunk must return a
// table of the form:
//
//	return {
//	    name = "StyleBear",
//	    kind = "local",
//	    description = "Checks style.",
//	    requirements = {
//	        "language",
//	        { name = "max_line_length", description = "Longest allowed line." },
//	    },
//	}
//
// Every field except name is optional; name defaults to the file name and
// kind defaults to "local".
func LoadLua(path string) (Descriptor, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return Descriptor{}, fmt.Errorf("loading bear %s: %w", path, err)
	}

	ret := L.Get(-1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrNotATable, path)
	}

	desc := Descriptor{
		Name:        strings.TrimSuffix(filepath.Base(path), ".lua"),
		Kind:        KindLocal,
		Path:        path,
		Description: tableString(tbl, "description"),
	}

	if name := tableString(tbl, "name"); name != "" {
		desc.Name = name
	}

	if kindName := tableString(tbl, "kind"); kindName != "" {
		kind, err := ParseKind(kindName)
		if err != nil {
			return Descriptor{}, fmt.Errorf("bear %s: %w", path, err)
		}
		desc.Kind = kind
	}

	reqs, err := tableRequirements(tbl)
	if err != nil {
		return Descriptor{}, fmt.Errorf("bear %s: %w", path, err)
	}
	desc.Requirements = reqs

	return desc, nil
}

// tableString reads a string field from a Lua table.
func tableString(tbl *lua.LTable, field string) string {
	v := tbl.RawGetString(field)
	if v == lua.LNil {
		return ""
	}
	return lua.LVAsString(v)
}

// tableRequirements reads the requirements array in declaration order.
// Entries are either plain setting names or tables with name/description.
func tableRequirements(tbl *lua.LTable) ([]Requirement, error) {
	v := tbl.RawGetString("requirements")
	if v == lua.LNil {
		return nil, nil
	}
	reqTbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("requirements is not a table")
	}

	var reqs []Requirement
	for i := 1; i <= reqTbl.Len(); i++ {
		entry := reqTbl.RawGetInt(i)
		switch e := entry.(type) {
		case lua.LString:
			reqs = append(reqs, Requirement{Name: string(e)})
		case *lua.LTable:
			name := tableString(e, "name")
			if name == "" {
				return nil, fmt.Errorf("requirement %d has no name", i)
			}
			reqs = append(reqs, Requirement{
				Name:        name,
				Description: tableString(e, "description"),
			})
		default:
			return nil, fmt.Errorf("requirement %d is neither a string nor a table", i)
		}
	}

	return reqs, nil
}
