package config

// DefaultSectionName is the name of the section that is always present and
// that every other section falls back to after the final merge.
const DefaultSectionName = "default"

// NormalizeName lower-cases and trims a section or setting name. Section
// and setting lookups are case-insensitive throughout.
func NormalizeName(name string) string {
	return normalizeKey(name)
}

// SectionDict is an ordered mapping from section name to Section. It always
// contains a "default" entry; section order is discovery order across
// merges.
type SectionDict struct {
	names    []string
	sections map[string]*Section
}

// NewSectionDict creates a dict containing only an empty "default" section.
func NewSectionDict() *SectionDict {
	d := &SectionDict{sections: make(map[string]*Section)}
	d.Put(NewSection(DefaultSectionName))
	return d
}

// Put stores a section under its name, replacing any existing one. The
// original insertion position is kept on replacement.
func (d *SectionDict) Put(section *Section) {
	if section == nil {
		return
	}
	if _, exists := d.sections[section.Name]; !exists {
		d.names = append(d.names, section.Name)
	}
	d.sections[section.Name] = section
}

// Get returns the section with the given name.
func (d *SectionDict) Get(name string) (*Section, bool) {
	section, ok := d.sections[normalizeKey(name)]
	return section, ok
}

// Default returns the "default" section.
func (d *SectionDict) Default() *Section {
	return d.sections[DefaultSectionName]
}

// Names returns the section names in insertion order.
func (d *SectionDict) Names() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// Len returns the number of sections.
func (d *SectionDict) Len() int {
	return len(d.sections)
}

// WireDefaults attaches the "default" section as the fallback of every other
// section. This is the second construction phase and must run only after the
// final merge; "default" itself never receives a fallback.
func (d *SectionDict) WireDefaults() {
	def := d.Default()
	for name, section := range d.sections {
		if name == DefaultSectionName {
			continue
		}
		section.Defaults = def
	}
}
