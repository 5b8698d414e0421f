// Package nav tracks the current position within an episode catalog.
package nav

// State is the mutable navigation record for one chat. Transitions never
// fail; calls at a boundary are silent no-ops. Not safe for concurrent
// use; the host serializes all lifecycle calls.
type State struct {
	length    int
	current   int
	highest   int
	completed bool
}

// NewState returns a fresh state for a catalog of the given length.
// Position, high-water mark, and the completed flag always start at zero
// regardless of any previously persisted chat snapshot.
func NewState(length int) *State {
	if length < 1 {
		length = 1
	}
	return &State{length: length}
}

// Current returns the current episode index.
func (s *State) Current() int { return s.current }

// Highest returns the furthest-forward index ever visited.
func (s *State) Highest() int { return s.highest }

// Completed reports whether a turn has ended on the final episode.
func (s *State) Completed() bool { return s.completed }

// Length returns the catalog length the state was built for.
func (s *State) Length() int { return s.length }

// Advance moves forward one episode. At the last episode it does nothing.
func (s *State) Advance() {
	if s.current >= s.length-1 {
		return
	}
	s.current++
	if s.current > s.highest {
		s.highest = s.current
	}
	if s.current == s.length-1 {
		s.completed = true
	}
}

// Retreat moves back one episode. At the first episode it does nothing.
// The high-water mark and completed flag are untouched.
func (s *State) Retreat() {
	if s.current <= 0 {
		return
	}
	s.current--
}

// TurnStart is the before-model sync point. It moves nothing; it only
// raises the high-water mark to at least the current index.
func (s *State) TurnStart() {
	if s.current > s.highest {
		s.highest = s.current
	}
}

// TurnEnd is the after-model sync point. Completed becomes true when the
// turn ends on the final episode and is never reset once set, even if the
// index later decreases.
func (s *State) TurnEnd() {
	s.completed = s.completed || s.current >= s.length-1
}

// RestoreTo sets the index directly from a persisted turn snapshot. The
// value is taken as given: no bounds check, and the high-water mark and
// completed flag are untouched. Branch/rewind entry point.
func (s *State) RestoreTo(index int) {
	s.current = index
}
