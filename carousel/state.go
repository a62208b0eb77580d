package carousel

// Direction is a relative step through the slide sequence.
type Direction int

const (
	Prev Direction = -1 // toward earlier slides
	Next Direction = 1  // toward later slides
)

// State holds the focused index of a circular slide sequence. It has no ends:
// stepping past the last slide wraps to the first and vice versa.
type State struct {
	current int
	count   int
}

// NewState returns a State for n slides focused on index 0.
func NewState(n int) (*State, error) {
	if n <= 0 {
		return nil, &ConfigurationError{Reason: "at least one slide is required"}
	}
	return &State{count: n}, nil
}

func (s *State) Current() int { return s.current }
func (s *State) Len() int     { return s.count }

// Advance moves the focus one step in dir, wrapping around both ends.
func (s *State) Advance(dir Direction) {
	s.current = ((s.current+int(dir))%s.count + s.count) % s.count
}

// JumpTo focuses index i. Out-of-range targets are rejected, not wrapped.
func (s *State) JumpTo(i int) error {
	if i < 0 || i >= s.count {
		return &InvalidIndexError{Index: i, Count: s.count}
	}
	s.current = i
	return nil
}

// Offset returns the signed distance of slide i from the focused slide. The
// result is a raw difference, so the last slide is far from slide 0 even
// though they are neighbours on the circle.
func (s *State) Offset(i int) int {
	return i - s.current
}
