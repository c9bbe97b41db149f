// Package motion holds the eased UI animations of the page overlay: tilt
// cards, magnetic buttons, count-up counters, reveals and the intro timeline.
// Everything is advanced explicitly with Update(dt) from the game loop.
package motion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Eases matching the page's motion vocabulary.
var (
	Power2Out  ease.TweenFunc = ease.OutCubic
	Power3Out  ease.TweenFunc = ease.OutQuart
	Power4Out  ease.TweenFunc = ease.OutQuint
	CircOut    ease.TweenFunc = ease.OutCirc
	ElasticOut ease.TweenFunc = ease.OutElastic
	SineInOut  ease.TweenFunc = ease.InOutSine
)

// Prop is a value that can be retargeted at any time. A new target always
// starts from the current value, so interrupted tweens never jump.
type Prop struct {
	value float32
	tween *gween.Tween
	delay float32
}

// NewProp returns a Prop resting at v.
func NewProp(v float32) Prop {
	return Prop{value: v}
}

// Value returns the current value.
func (p *Prop) Value() float32 {
	return p.value
}

// Set jumps to v and drops any running tween.
func (p *Prop) Set(v float32) {
	p.value = v
	p.tween = nil
	p.delay = 0
}

// To starts a tween from the current value to target.
func (p *Prop) To(target, duration float32, fn ease.TweenFunc) {
	p.ToAfter(target, duration, 0, fn)
}

// ToAfter starts a tween to target once delay seconds have passed.
func (p *Prop) ToAfter(target, duration, delay float32, fn ease.TweenFunc) {
	if duration <= 0 && delay <= 0 {
		p.Set(target)
		return
	}
	p.tween = gween.New(p.value, target, duration, fn)
	p.delay = delay
}

// Active reports whether a tween is pending or running.
func (p *Prop) Active() bool {
	return p.tween != nil
}

// Update advances the tween by dt seconds.
func (p *Prop) Update(dt float32) {
	if p.tween == nil {
		return
	}
	if p.delay > 0 {
		p.delay -= dt
		if p.delay > 0 {
			return
		}
		dt = -p.delay
		p.delay = 0
	}
	v, done := p.tween.Update(dt)
	p.value = v
	if done {
		p.tween = nil
	}
}
