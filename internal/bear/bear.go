// Package bear discovers capability-tagged analysis plugins ("bears") on
// the filesystem.
//
// A bear is declared either by a bear.json manifest or by a single Lua file
// returning a descriptor table. Discovery scans a list of search
// directories, filters by capability kind and requested names, and
// deduplicates by bear name with earlier directories winning.
package bear

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by bear loading.
var (
	// ErrMissingName indicates a bear definition without a name.
	ErrMissingName = errors.New("bear has no name")

	// ErrUnknownKind indicates an unrecognized capability kind.
	ErrUnknownKind = errors.New("unknown bear kind")

	// ErrNotATable indicates a Lua bear file that does not return a table.
	ErrNotATable = errors.New("bear chunk did not return a table")
)

// Kind is a bear's capability tag.
type Kind uint8

const (
	// KindLocal marks bears operating on a single unit of work.
	KindLocal Kind = iota
	// KindGlobal marks bears operating across the whole run.
	KindGlobal
)

// String returns the canonical kind name.
func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// ParseKind resolves a kind by name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "local":
		return KindLocal, nil
	case "global":
		return KindGlobal, nil
	default:
		return KindLocal, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Requirement is one setting a bear needs to run.
type Requirement struct {
	// Name is the setting name.
	Name string
	// Description is optional help text shown when prompting for the
	// setting.
	Description string
}

// Descriptor identifies a discovered bear. Descriptors are immutable value
// records; sharing them between sections needs no defensive copying.
type Descriptor struct {
	// Name is the bear name as declared in its definition.
	Name string

	// Kind is the bear's capability tag.
	Kind Kind

	// Path is the definition file the bear was loaded from.
	Path string

	// Description is optional human-readable documentation.
	Description string

	// Requirements lists the settings the bear needs, in declaration
	// order.
	Requirements []Requirement
}
