package motion

import (
	"github.com/tanema/gween"
)

// Timeline schedules reveals one after another. Each step starts at the end
// of the previous one plus an offset; a negative offset overlaps them.
type Timeline struct {
	end float32
}

// Add schedules reveals to start at offset seconds after the current end of
// the timeline, each one stagger seconds after the previous. It returns the
// start time of the step.
func (tl *Timeline) Add(offset, stagger float32, reveals ...*Reveal) float32 {
	start := tl.end + offset
	if start < 0 {
		start = 0
	}

	end := start
	for i, r := range reveals {
		delay := start + float32(i)*stagger
		r.PlayAfter(delay)
		if d := delay + r.Duration; d > end {
			end = d
		}
	}
	if end > tl.end {
		tl.end = end
	}
	return start
}

// Duration is the time at which the last scheduled step finishes.
func (tl *Timeline) Duration() float32 {
	return tl.end
}

// Pulse loops a value between 1 and Low forever.
type Pulse struct {
	Low float32
	seq *gween.Sequence
	val float32
}

// NewPulse builds a pulse with the given half period in seconds.
func NewPulse(low, half float32) Pulse {
	seq := gween.NewSequence(
		gween.New(1, low, half, SineInOut),
		gween.New(low, 1, half, SineInOut),
	)
	seq.SetLoop(-1)
	return Pulse{Low: low, seq: seq, val: 1}
}

// Value returns the current multiplier.
func (p *Pulse) Value() float32 {
	return p.val
}

// Update advances the loop.
func (p *Pulse) Update(dt float32) {
	if p.seq == nil {
		return
	}
	p.val, _, _ = p.seq.Update(dt)
}
