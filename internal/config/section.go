package config

// Section is an ordered mapping from setting name to Setting. Keys are
// unique and lower-cased; insertion order is preserved for serialization.
//
// A section may hold a non-owning reference to a defaults section that is
// consulted for unset lookups. The reference is assigned in a second phase,
// after all layers have been merged (see SectionDict.WireDefaults).
type Section struct {
	// Name is the lower-cased section name.
	Name string

	// Defaults is the fallback section for unset lookups. Nil until the
	// post-merge wiring phase. The "default" section never references
	// itself.
	Defaults *Section

	keys     []string
	settings map[string]*Setting
}

// NewSection creates an empty section.
func NewSection(name string) *Section {
	return &Section{
		Name:     normalizeKey(name),
		settings: make(map[string]*Setting),
	}
}

// Set stores an explicitly set value, overwriting any existing setting with
// the same key. The original insertion position is kept on overwrite.
func (s *Section) Set(key, value string) *Setting {
	setting := NewSetting(key, value)
	s.SetSetting(setting)
	return setting
}

// SetSetting stores a setting under its own key. Fallback-origin settings
// are ignored; they are lookup artifacts, not content.
func (s *Section) SetSetting(setting *Setting) {
	if setting == nil || setting.Origin == OriginFallback {
		return
	}
	if _, exists := s.settings[setting.Key]; !exists {
		s.keys = append(s.keys, setting.Key)
	}
	s.settings[setting.Key] = setting
}

// Get looks a setting up in this section, then in the defaults chain.
func (s *Section) Get(key string) (*Setting, bool) {
	key = normalizeKey(key)
	if setting, ok := s.settings[key]; ok {
		return setting, true
	}
	if s.Defaults != nil {
		return s.Defaults.Get(key)
	}
	return nil, false
}

// GetLocal looks a setting up in this section only, ignoring defaults.
func (s *Section) GetLocal(key string) (*Setting, bool) {
	setting, ok := s.settings[normalizeKey(key)]
	return setting, ok
}

// GetOr looks a setting up in this section, then in the defaults chain, and
// finally returns the supplied fallback as a non-stored fallback setting.
func (s *Section) GetOr(key, fallback string) *Setting {
	if setting, ok := s.Get(key); ok {
		return setting
	}
	return newFallbackSetting(key, fallback)
}

// Delete removes a setting and returns it. Used for run parameters such as
// "targets" that must not persist as configuration.
func (s *Section) Delete(key string) (*Setting, bool) {
	key = normalizeKey(key)
	setting, ok := s.settings[key]
	if !ok {
		return nil, false
	}
	delete(s.settings, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return setting, true
}

// Keys returns the setting names in insertion order.
func (s *Section) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of settings stored in this section.
func (s *Section) Len() int {
	return len(s.settings)
}

// Update overwrites this section's settings with every explicitly set
// setting from other. Settings present only in this section are retained.
func (s *Section) Update(other *Section) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		s.SetSetting(other.settings[key])
	}
}

// SetDefaults assigns the fallback section. A section must not fall back to
// itself.
func (s *Section) SetDefaults(defaults *Section) error {
	if defaults == s {
		return ErrSelfReference
	}
	s.Defaults = defaults
	return nil
}
