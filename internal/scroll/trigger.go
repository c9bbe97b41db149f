// Package scroll fires callbacks when page elements cross a line in the
// viewport as the page scrolls.
package scroll

// Trigger watches one element. The element is "entered" while its top edge is
// at or above Start (a fraction of the viewport height measured from the top,
// so 0.85 means 85% of the way down).
type Trigger struct {
	Top   float64 // element top in page pixels
	Start float64
	Once  bool

	OnEnter     func()
	OnLeaveBack func()

	entered bool
	killed  bool
}

// Entered reports whether the element is currently past the start line.
func (t *Trigger) Entered() bool {
	return t.entered
}

// Killed reports whether a once-trigger has fired and retired.
func (t *Trigger) Killed() bool {
	return t.killed
}

// Registry owns the triggers of a page.
type Registry struct {
	triggers []*Trigger
}

// Register adds t and returns it so callers can move it on relayout.
func (r *Registry) Register(t *Trigger) *Trigger {
	r.triggers = append(r.triggers, t)
	return t
}

// Len returns the number of live triggers.
func (r *Registry) Len() int {
	n := 0
	for _, t := range r.triggers {
		if !t.killed {
			n++
		}
	}
	return n
}

// Update evaluates every trigger against the scroll offset and viewport
// height and returns how many callbacks fired.
func (r *Registry) Update(scrollY, viewportH float64) int {
	fired := 0
	for _, t := range r.triggers {
		if t.killed {
			continue
		}

		inside := t.Top-scrollY <= t.Start*viewportH
		switch {
		case inside && !t.entered:
			t.entered = true
			if t.OnEnter != nil {
				t.OnEnter()
				fired++
			}
			if t.Once {
				t.killed = true
			}
		case !inside && t.entered:
			t.entered = false
			if t.OnLeaveBack != nil {
				t.OnLeaveBack()
				fired++
			}
		}
	}
	return fired
}
