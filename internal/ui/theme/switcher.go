package theme

// Switcher owns the index of the active preset. Only the shell holds one.
type Switcher struct {
	index int
}

// NewSwitcher starts at the named preset, or the first one when the name
// is empty or unknown.
func NewSwitcher(initial string) *Switcher {
	idx, _ := Lookup(initial)
	return &Switcher{index: idx}
}

// Next advances to the following preset, wrapping after the last.
func (s *Switcher) Next() Theme {
	s.index = (s.index + 1) % len(presets)
	return presets[s.index]
}

// Current returns a copy of the active preset.
func (s *Switcher) Current() Theme {
	return presets[s.index]
}

// Index returns the active position in Presets.
func (s *Switcher) Index() int {
	return s.index
}
