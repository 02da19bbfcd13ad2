package food

// State holds the catalog of known foods together with the working stomach
// and availability maps. The planner mutates Stomach and Available in place
// through Consume; callers that need the originals preserved must pass a
// state built from clones.
type State struct {
	// Foods is the canonical catalog, keyed by canonical name. All Portion
	// entries point at these instances.
	Foods map[Key]*Food

	Stomach   Portions
	Available Portions
}

// NewState builds a State from a catalog. Duplicate names (case-insensitive)
// collapse to the last occurrence. Stomach and availability start empty.
func NewState(foods []*Food) *State {
	s := &State{
		Foods:     make(map[Key]*Food, len(foods)),
		Stomach:   make(Portions),
		Available: make(Portions),
	}
	for _, f := range foods {
		s.Foods[f.Key()] = f
	}
	return s
}

// Lookup returns the catalog food for a name, or nil. Matching is
// case-insensitive.
func (s *State) Lookup(name string) *Food {
	return s.Foods[KeyOf(name)]
}

// CanConsume reports whether at least one unit of the food is available.
func (s *State) CanConsume(f *Food) bool {
	return s.Available.Count(f) > 0
}

// Consume moves one unit of the food from availability into the stomach.
// Returns false without mutating anything when no unit is available.
func (s *State) Consume(f *Food) bool {
	if s.Available.Count(f) <= 0 {
		return false
	}
	s.Stomach.Add(f, 1)
	s.Available.Remove(f, 1)
	return true
}

// AllAvailable returns the foods with at least one unit available, sorted by
// canonical name.
func (s *State) AllAvailable() []*Food {
	return s.Available.Foods()
}

// ResetStomach clears all stomach counts. The catalog and availability are
// untouched.
func (s *State) ResetStomach() {
	s.Stomach = make(Portions)
}

// ResetAvailability clears all availability counts.
func (s *State) ResetAvailability() {
	s.Available = make(Portions)
}

// Clone returns a State sharing the catalog but with independent stomach and
// availability maps. Used when a planning run must not touch the original.
func (s *State) Clone() *State {
	return &State{
		Foods:     s.Foods,
		Stomach:   s.Stomach.Clone(),
		Available: s.Available.Clone(),
	}
}
