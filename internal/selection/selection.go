// Package selection tracks a highlighted row in a list that wraps at both ends.
package selection

// State is an optional index into a list whose length the caller passes on
// every move. The zero value has nothing selected.
type State struct {
	index int
	set   bool
}

// Index returns the selected index and whether one is set
func (s *State) Index() (int, bool) {
	return s.index, s.set
}

// Advance selects the next row, wrapping from n-1 to 0. From "unset" it
// selects 0. With n == 0 the selection stays unset. Reports whether the
// selection changed.
func (s *State) Advance(n int) bool {
	if n <= 0 {
		return s.Reset()
	}
	if !s.set {
		return s.Select(0, n)
	}
	return s.Select((s.index+1)%n, n)
}

// Retreat selects the previous row, wrapping from 0 to n-1. From "unset"
// it selects 0.
func (s *State) Retreat(n int) bool {
	if n <= 0 {
		return s.Reset()
	}
	if !s.set {
		return s.Select(0, n)
	}
	return s.Select((s.index-1+n)%n, n)
}

// Select highlights i if it is in [0, n)
func (s *State) Select(i, n int) bool {
	if i < 0 || i >= n {
		return false
	}
	changed := !s.set || s.index != i
	s.index, s.set = i, true
	return changed
}

// Reset clears the selection
func (s *State) Reset() bool {
	changed := s.set
	s.index, s.set = 0, false
	return changed
}
