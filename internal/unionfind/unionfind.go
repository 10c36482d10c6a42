// Package unionfind tracks which locations of a maze have been joined into the
// same connected region while walls are being knocked down.
package unionfind

import "github.com/spakin/disjoint"

// Set is a disjoint-set forest over the integers [0, n).
type Set struct {
	elems []*disjoint.Element
	count int
}

// New returns a Set in which each of the n members is its own component.
func New(n int) *Set {
	if n < 0 {
		n = 0
	}
	s := &Set{elems: make([]*disjoint.Element, n), count: n}
	for i := range s.elems {
		e := disjoint.NewElement()
		e.Data = i
		s.elems[i] = e
	}
	return s
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.elems) }

// Count returns the number of components.
func (s *Set) Count() int { return s.count }

// Find returns the representative member of i's component.
func (s *Set) Find(i int) int {
	return s.elems[i].Find().Data.(int)
}

// Connected reports whether i and j belong to the same component.
func (s *Set) Connected(i, j int) bool {
	return s.elems[i].Find() == s.elems[j].Find()
}

// Union merges the components of i and j. It returns false when they were
// already joined.
func (s *Set) Union(i, j int) bool {
	if s.Connected(i, j) {
		return false
	}
	disjoint.Union(s.elems[i], s.elems[j])
	s.count--
	return true
}
