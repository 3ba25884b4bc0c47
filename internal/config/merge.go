package config

// Merge combines two section dicts so that settings from higher take
// precedence over settings from lower.
//
// The merge consumes both arguments: lower is updated in place and returned,
// and sections that exist only in higher are moved into lower without a
// copy. Callers must not rely on the contents of higher afterwards.
//
// Merging is idempotent (merging a dict with equal content is a no-op) and
// associative across the four configuration layers when applied in layer
// order.
func Merge(lower, higher *SectionDict) *SectionDict {
	if lower == nil {
		return higher
	}
	if higher == nil {
		return lower
	}

	for _, name := range higher.names {
		higherSection := higher.sections[name]
		if lowerSection, ok := lower.sections[name]; ok {
			lowerSection.Update(higherSection)
		} else {
			lower.Put(higherSection)
		}
	}

	return lower
}
