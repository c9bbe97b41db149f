package page

import (
	"github.com/yohamta/donburi"

	"github.com/webwizbd/backdrop/internal/motion"
)

// Kind tells the drawer how to paint a widget.
type Kind int

const (
	KindHeading Kind = iota
	KindText
	KindCard
	KindButton
	KindCounter
	KindStep
	KindAccent
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindText:
		return "text"
	case KindCard:
		return "card"
	case KindButton:
		return "button"
	case KindCounter:
		return "counter"
	case KindStep:
		return "step"
	case KindAccent:
		return "accent"
	}
	return "unknown"
}

// BoxData places a widget on the page.
type BoxData struct {
	Kind  Kind
	Label string
	Body  string
	Rect  motion.Rect // page pixels, before any animation
	Order int
}

// HoverData remembers whether the pointer was inside last frame.
type HoverData struct {
	Inside bool
}

// CounterData is a count-up figure with its unit.
type CounterData struct {
	Counter motion.Counter
	Suffix  string
}

var (
	Box     = donburi.NewComponentType[BoxData]()
	Hover   = donburi.NewComponentType[HoverData]()
	Tilt    = donburi.NewComponentType[motion.Tilt]()
	Magnet  = donburi.NewComponentType[motion.Magnetic]()
	Reveal  = donburi.NewComponentType[motion.Reveal]()
	Counter = donburi.NewComponentType[CounterData]()
	Pulse   = donburi.NewComponentType[motion.Pulse]()
)
