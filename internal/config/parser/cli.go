package parser

import (
	"strings"

	"github.com/dshills/ursa/internal/config"
)

// ParseArgs reads a command-line argument list into a section dict.
//
// Recognized forms:
//
//	target                 positional, collected into default.targets
//	--key=value            setting on the default section
//	--key value            same, value taken from the next token
//	--key                  boolean setting, stored as "true"
//	section.key=value      setting on a named section (dashes optional)
//
// Unknown keys are not rejected; every flag is a setting. A key containing
// a dot addresses a named section, which is created on first use.
func ParseArgs(args []string) (*config.SectionDict, error) {
	dict := config.NewSectionDict()
	var targets []string

	for i := 0; i < len(args); i++ {
		tok := args[i]

		switch {
		case strings.HasPrefix(tok, "-"):
			key := strings.TrimLeft(tok, "-")
			if key == "" {
				continue
			}
			if eq := strings.IndexByte(key, '='); eq >= 0 {
				assign(dict, key[:eq], key[eq+1:])
				continue
			}
			if i+1 < len(args) && isValueToken(args[i+1]) {
				assign(dict, key, args[i+1])
				i++
				continue
			}
			assign(dict, key, "true")

		case strings.ContainsRune(tok, '='):
			eq := strings.IndexByte(tok, '=')
			assign(dict, tok[:eq], tok[eq+1:])

		default:
			targets = append(targets, tok)
		}
	}

	if len(targets) > 0 {
		dict.Default().Set("targets", strings.Join(targets, ", "))
	}

	return dict, nil
}

// isValueToken reports whether a token can serve as the value of the
// preceding bare flag. A leading dash followed by a digit is a negative
// number, not a flag.
func isValueToken(tok string) bool {
	if strings.ContainsRune(tok, '=') {
		return false
	}
	if !strings.HasPrefix(tok, "-") {
		return true
	}
	return len(tok) > 1 && tok[1] >= '0' && tok[1] <= '9'
}

// assign stores a possibly section-qualified key=value pair.
func assign(dict *config.SectionDict, key, value string) {
	sectionName := config.DefaultSectionName
	if dot := strings.IndexByte(key, '.'); dot >= 0 {
		sectionName = key[:dot]
		key = key[dot+1:]
	}
	if key == "" {
		return
	}

	section, ok := dict.Get(sectionName)
	if !ok {
		section = config.NewSection(sectionName)
		dict.Put(section)
	}
	section.Set(key, value)
}
