package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrSelfReference indicates an attempt to make a section its own
	// defaults fallback.
	ErrSelfReference = errors.New("section cannot be its own defaults")
)

// ConversionError is returned when a setting value cannot be converted to
// the requested type.
type ConversionError struct {
	// Key is the setting name.
	Key string
	// Value is the raw textual value.
	Value string
	// Want is the requested type or value set.
	Want string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("setting %q: cannot interpret %q as %s", e.Key, e.Value, e.Want)
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
