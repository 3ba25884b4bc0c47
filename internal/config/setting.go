package config

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Origin indicates how a setting value came to be.
type Origin uint8

const (
	// OriginExplicit marks a value that was set by a configuration source
	// (file, command line, or interactive fill).
	OriginExplicit Origin = iota
	// OriginFallback marks a value synthesized from a lookup fallback.
	// Fallback settings are never stored and never override anything.
	OriginFallback
)

// String returns a human-readable name for the origin.
func (o Origin) String() string {
	switch o {
	case OriginExplicit:
		return "explicit"
	case OriginFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Setting is one named configuration value. The value is kept as raw text
// and converted lazily through the typed accessors.
type Setting struct {
	// Key is the lower-cased setting name.
	Key string

	// Origin distinguishes explicitly set values from lookup fallbacks.
	Origin Origin

	// SourceFile is the config file the setting was read from. Empty for
	// settings that came from the command line or an interactive fill.
	// Relative entries in PathList resolve against its directory.
	SourceFile string

	value string
}

// NewSetting creates an explicitly set setting.
func NewSetting(key, value string) *Setting {
	return &Setting{Key: normalizeKey(key), Origin: OriginExplicit, value: value}
}

// newFallbackSetting creates a setting carrying a lookup fallback value.
func newFallbackSetting(key, value string) *Setting {
	return &Setting{Key: normalizeKey(key), Origin: OriginFallback, value: value}
}

// Value returns the raw textual value.
func (s *Setting) Value() string {
	return s.value
}

// String returns the raw textual value.
func (s *Setting) String() string {
	return s.value
}

// Truthy and falsy vocabularies for Bool.
var (
	truthyValues = map[string]bool{
		"true": true, "yes": true, "yeah": true, "yep": true,
		"sure": true, "definitely": true, "1": true, "on": true,
	}
	falsyValues = map[string]bool{
		"": true, "false": true, "no": true, "nope": true,
		"nah": true, "0": true, "off": true,
	}
)

// Bool interprets the value using a permissive truthy/falsy vocabulary.
func (s *Setting) Bool() (bool, error) {
	v := strings.ToLower(strings.TrimSpace(s.value))
	if truthyValues[v] {
		return true, nil
	}
	if falsyValues[v] {
		return false, nil
	}
	return false, &ConversionError{Key: s.Key, Value: s.value, Want: "bool"}
}

// Int interprets the value as an integer.
func (s *Setting) Int() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s.value))
	if err != nil {
		return 0, &ConversionError{Key: s.Key, Value: s.value, Want: "int"}
	}
	return n, nil
}

// Float interprets the value as a floating-point number.
func (s *Setting) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s.value), 64)
	if err != nil {
		return 0, &ConversionError{Key: s.Key, Value: s.value, Want: "float"}
	}
	return f, nil
}

// List interprets the value as a delimiter-separated list. Entries are
// separated by commas or newlines; surrounding whitespace is stripped and
// empty entries are dropped.
func (s *Setting) List() []string {
	items := strings.FieldsFunc(s.value, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

// PathList interprets the value as a list of paths. Relative entries are
// resolved against the directory of the file the setting was read from, or
// the working directory if the setting has no source file.
func (s *Setting) PathList() []string {
	base := ""
	if s.SourceFile != "" {
		base = filepath.Dir(s.SourceFile)
	}

	items := s.List()
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !filepath.IsAbs(item) && base != "" {
			item = filepath.Join(base, item)
		}
		result = append(result, filepath.Clean(item))
	}
	return result
}

// Enum matches the value case-insensitively against the allowed names and
// returns the matched allowed name.
func (s *Setting) Enum(allowed ...string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(s.value))
	for _, a := range allowed {
		if strings.ToLower(a) == v {
			return a, nil
		}
	}
	return "", &ConversionError{Key: s.Key, Value: s.value, Want: "one of " + strings.Join(allowed, ", ")}
}

// normalizeKey lower-cases and trims a setting or section name.
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
