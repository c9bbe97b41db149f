package motion

import (
	"math"

	"github.com/tanema/gween/ease"
)

// CounterDuration is how long a count-up takes.
const CounterDuration = 2.5

// Counter counts up from zero to a target, snapping to whole numbers.
type Counter struct {
	Target  int
	value   Prop
	started bool
}

// NewCounter returns a counter showing zero.
func NewCounter(target int) Counter {
	return Counter{Target: target}
}

// Start begins counting. Later calls are ignored.
func (c *Counter) Start() {
	if c.started {
		return
	}
	c.started = true
	c.value.To(float32(c.Target), CounterDuration, CircOut)
}

// Started reports whether Start has been called.
func (c *Counter) Started() bool {
	return c.started
}

// Value returns the current count rounded to the nearest integer.
func (c *Counter) Value() int {
	return int(math.Round(float64(c.value.Value())))
}

// Update advances the count.
func (c *Counter) Update(dt float32) {
	c.value.Update(dt)
}

// Pose is the set of channels a reveal animates. The zero-offset rest pose
// is RestPose.
type Pose struct {
	OffsetX float32
	OffsetY float32
	Alpha   float32
	RotateX float32 // degrees
	Rotate  float32 // degrees, in the screen plane
	Scale   float32
	Clip    float32 // visible fraction of the height, from the top
}

// RestPose is where every reveal ends up.
var RestPose = Pose{Alpha: 1, Scale: 1, Clip: 1}

// Reveal animates an element from a hidden pose to RestPose and back.
type Reveal struct {
	From     Pose
	Duration float32
	Ease     ease.TweenFunc
	Delay    float32

	offsetX, offsetY Prop
	alpha            Prop
	rotateX, rotate  Prop
	scale, clip      Prop
	played           bool
}

// NewReveal returns a reveal parked at from.
func NewReveal(from Pose, duration float32, fn ease.TweenFunc) Reveal {
	r := Reveal{From: from, Duration: duration, Ease: fn}
	r.apply(from)
	return r
}

func (r *Reveal) apply(p Pose) {
	r.offsetX.Set(p.OffsetX)
	r.offsetY.Set(p.OffsetY)
	r.alpha.Set(p.Alpha)
	r.rotateX.Set(p.RotateX)
	r.rotate.Set(p.Rotate)
	r.scale.Set(p.Scale)
	r.clip.Set(p.Clip)
}

func (r *Reveal) tweenTo(p Pose, delay float32) {
	r.offsetX.ToAfter(p.OffsetX, r.Duration, delay, r.Ease)
	r.offsetY.ToAfter(p.OffsetY, r.Duration, delay, r.Ease)
	r.alpha.ToAfter(p.Alpha, r.Duration, delay, r.Ease)
	r.rotateX.ToAfter(p.RotateX, r.Duration, delay, r.Ease)
	r.rotate.ToAfter(p.Rotate, r.Duration, delay, r.Ease)
	r.scale.ToAfter(p.Scale, r.Duration, delay, r.Ease)
	r.clip.ToAfter(p.Clip, r.Duration, delay, r.Ease)
}

// Play animates toward RestPose after the reveal's Delay.
func (r *Reveal) Play() {
	r.PlayAfter(r.Delay)
}

// PlayAfter animates toward RestPose after delay seconds.
func (r *Reveal) PlayAfter(delay float32) {
	r.played = true
	r.tweenTo(RestPose, delay)
}

// Reverse animates back to the hidden pose immediately.
func (r *Reveal) Reverse() {
	r.played = false
	r.tweenTo(r.From, 0)
}

// Played reports whether the last command was Play.
func (r *Reveal) Played() bool {
	return r.played
}

// Pose returns the current pose.
func (r *Reveal) Pose() Pose {
	return Pose{
		OffsetX: r.offsetX.Value(),
		OffsetY: r.offsetY.Value(),
		Alpha:   r.alpha.Value(),
		RotateX: r.rotateX.Value(),
		Rotate:  r.rotate.Value(),
		Scale:   r.scale.Value(),
		Clip:    r.clip.Value(),
	}
}

// Active reports whether any channel is still moving.
func (r *Reveal) Active() bool {
	return r.offsetX.Active() || r.offsetY.Active() || r.alpha.Active() ||
		r.rotateX.Active() || r.rotate.Active() || r.scale.Active() || r.clip.Active()
}

// Update advances every channel.
func (r *Reveal) Update(dt float32) {
	r.offsetX.Update(dt)
	r.offsetY.Update(dt)
	r.alpha.Update(dt)
	r.rotateX.Update(dt)
	r.rotate.Update(dt)
	r.scale.Update(dt)
	r.clip.Update(dt)
}
