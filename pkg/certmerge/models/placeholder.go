package models

// PlaceholderSet is the set of placeholders discovered in a template.
type PlaceholderSet struct {
	// Canonical lists the normalized labels, sorted.
	Canonical []string `json:"canonical"`
	// Originals maps each canonical label to the first original
	// spelling encountered in the template. Substitution must use the
	// original spelling because the rendered document matches by exact
	// text.
	Originals map[string]string `json:"originals"`
}

// Empty reports whether no placeholders were found. An empty set is a
// valid outcome: rendering then produces verbatim copies.
func (s *PlaceholderSet) Empty() bool {
	return s == nil || len(s.Canonical) == 0
}

// Original returns the display spelling for a canonical label, falling
// back to the canonical form itself.
func (s *PlaceholderSet) Original(canonical string) string {
	if o, ok := s.Originals[canonical]; ok {
		return o
	}
	return canonical
}
