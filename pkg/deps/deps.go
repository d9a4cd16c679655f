package deps

// Requirement is one line of a requirements file: a distribution name and a
// PEP 440 constraint that begins with an operator (or is empty).
type Requirement struct {
	Name       string
	Constraint string
}

// String returns the requirements-file form of r: name immediately
// followed by its constraint.
func (r Requirement) String() string {
	return r.Name + r.Constraint
}

// RequirementSet is an insertion-ordered collection of requirements keyed by
// name. The zero value is ready to use.
type RequirementSet struct {
	items []Requirement
	index map[string]int
}

// Add records r unless a requirement with the same name is already present.
// It reports whether r was added.
func (s *RequirementSet) Add(r Requirement) bool {
	if s.Has(r.Name) {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[r.Name] = len(s.items)
	s.items = append(s.items, r)
	return true
}

// Has reports whether a requirement named name has been recorded.
func (s *RequirementSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of recorded requirements.
func (s *RequirementSet) Len() int { return len(s.items) }

// List returns the requirements in the order they were added.
func (s *RequirementSet) List() []Requirement {
	out := make([]Requirement, len(s.items))
	copy(out, s.items)
	return out
}
