package onboarding

// SlideContent is one informational slide. Values are opaque to the
// controller; Accent and Background are theme keys resolved by the renderer.
type SlideContent struct {
	Title       string
	Description string
	Accent      string
	Background  string
}

// Direction is the apparent movement of a transition.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Sign returns +1 for Forward and -1 for Backward.
func (d Direction) Sign() int {
	if d == Backward {
		return -1
	}
	return 1
}

func directionBetween(from, to int) Direction {
	if to < from {
		return Backward
	}
	return Forward
}

// State is a snapshot of the controller for renderers.
type State struct {
	Index     int
	Direction Direction
	Completed bool
	Total     int
}

// Transition describes the effect of a single operation.
type Transition struct {
	From      int
	To        int
	Direction Direction

	// Completed is true only for the operation that fired completion.
	Completed bool

	// Clamped is true when a jump target was out of range.
	Clamped bool
}

// Moved reports whether the transition changed the current slide.
func (t Transition) Moved() bool {
	return t.From != t.To
}
