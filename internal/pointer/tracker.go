// Package pointer turns a polled cursor position into move and leave events,
// the way a browser only reports mouse moves over its viewport.
package pointer

// Event is what a poll produced.
type Event int

const (
	None  Event = iota
	Move        // cursor moved inside the bounds
	Leave       // cursor went from inside to outside
)

func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case Move:
		return "move"
	case Leave:
		return "leave"
	}
	return "unknown"
}

// Tracker remembers the last polled position. The first poll only sets the
// baseline and never reports a move.
type Tracker struct {
	x, y   int
	inside bool
	primed bool
}

// Poll compares (x, y) with the previous poll against bounds [0,w) x [0,h).
func (t *Tracker) Poll(x, y, w, h int) Event {
	inside := x >= 0 && y >= 0 && x < w && y < h
	moved := x != t.x || y != t.y
	wasInside := t.inside
	primed := t.primed

	t.x, t.y, t.inside, t.primed = x, y, inside, true

	switch {
	case !primed:
		return None
	case inside && moved:
		return Move
	case !inside && wasInside:
		return Leave
	}
	return None
}

// Inside reports whether the last polled position was within bounds.
func (t *Tracker) Inside() bool {
	return t.inside
}
