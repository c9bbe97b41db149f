package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = float32(1.0 / 60)

func run(seconds float32, update func(dt float32)) {
	for t := float32(0); t < seconds; t += frame {
		update(frame)
	}
}

func TestPropReachesTarget(t *testing.T) {
	p := NewProp(0)
	p.To(10, 1, Power2Out)
	require.True(t, p.Active())

	run(0.5, p.Update)
	mid := p.Value()
	assert.Greater(t, mid, float32(5), "ease out is past halfway at half time")
	assert.Less(t, mid, float32(10))

	run(1, p.Update)
	assert.Equal(t, float32(10), p.Value())
	assert.False(t, p.Active())
}

func TestPropDelay(t *testing.T) {
	p := NewProp(0)
	p.ToAfter(1, 0.5, 0.25, Power2Out)

	run(0.2, p.Update)
	assert.Equal(t, float32(0), p.Value())

	run(1, p.Update)
	assert.Equal(t, float32(1), p.Value())
}

func TestPropRetargetStartsFromCurrent(t *testing.T) {
	p := NewProp(0)
	p.To(10, 1, Power2Out)
	run(0.3, p.Update)
	here := p.Value()

	p.To(0, 1, Power2Out)
	p.Update(0.0001)
	assert.InDelta(t, here, p.Value(), 0.01)
}

func TestPropZeroDurationJumps(t *testing.T) {
	p := NewProp(3)
	p.To(7, 0, Power2Out)
	assert.Equal(t, float32(7), p.Value())
	assert.False(t, p.Active())
}

func TestTiltHoverCorner(t *testing.T) {
	tilt := NewTilt()
	card := Rect{X: 100, Y: 100, W: 200, H: 100}

	// bottom-right corner
	tilt.Hover(300, 200, card)
	run(1, tilt.Update)

	assert.InDelta(t, -TiltMaxDeg, tilt.RotateX.Value(), 1e-4)
	assert.InDelta(t, TiltMaxDeg, tilt.RotateY.Value(), 1e-4)
	assert.InDelta(t, TiltScale, tilt.Scale.Value(), 1e-4)

	tilt.Leave()
	run(1, tilt.Update)
	assert.InDelta(t, 0, tilt.RotateX.Value(), 1e-4)
	assert.InDelta(t, 0, tilt.RotateY.Value(), 1e-4)
	assert.InDelta(t, 1, tilt.Scale.Value(), 1e-4)
}

func TestTiltCentreIsFlat(t *testing.T) {
	tilt := NewTilt()
	tilt.Hover(150, 75, Rect{X: 100, Y: 50, W: 100, H: 50})
	run(1, tilt.Update)

	assert.InDelta(t, 0, tilt.RotateX.Value(), 1e-4)
	assert.InDelta(t, 0, tilt.RotateY.Value(), 1e-4)
}

func TestMagneticPull(t *testing.T) {
	var m Magnetic
	btn := Rect{X: 0, Y: 0, W: 100, H: 40}

	m.Hover(90, 30, btn) // 40 right, 10 down from centre
	run(0.5, m.Update)
	assert.InDelta(t, 12, m.X.Value(), 1e-3)
	assert.InDelta(t, 3, m.Y.Value(), 1e-3)

	m.Leave()
	run(0.5, m.Update)
	assert.InDelta(t, 0, m.X.Value(), 1e-3)
	assert.InDelta(t, 0, m.Y.Value(), 1e-3)
}

func TestCounterCountsOnce(t *testing.T) {
	c := NewCounter(250)
	assert.Equal(t, 0, c.Value())

	c.Start()
	run(1, c.Update)
	mid := c.Value()
	assert.Greater(t, mid, 0)
	assert.Less(t, mid, 250)

	c.Start() // ignored
	run(2, c.Update)
	assert.Equal(t, 250, c.Value())
	assert.True(t, c.Started())
}

func TestRevealPlayAndReverse(t *testing.T) {
	from := RestPose
	from.OffsetY = 50
	from.Alpha = 0
	from.Clip = 0

	r := NewReveal(from, 1, Power4Out)
	assert.Equal(t, from, r.Pose())

	r.Play()
	run(1.2, r.Update)
	assert.Equal(t, RestPose, r.Pose())
	assert.True(t, r.Played())
	assert.False(t, r.Active())

	r.Reverse()
	run(1.2, r.Update)
	assert.Equal(t, from, r.Pose())
	assert.False(t, r.Played())
}

func TestRevealDelay(t *testing.T) {
	from := RestPose
	from.Alpha = 0
	r := NewReveal(from, 0.5, Power3Out)
	r.Delay = 0.3

	r.Play()
	run(0.25, r.Update)
	assert.Equal(t, float32(0), r.Pose().Alpha)

	run(1, r.Update)
	assert.Equal(t, float32(1), r.Pose().Alpha)
}

func TestTimelineOverlaps(t *testing.T) {
	mk := func() *Reveal {
		from := RestPose
		from.Alpha = 0
		r := NewReveal(from, 1, Power3Out)
		return &r
	}
	title, sub := mk(), mk()
	buttons := []*Reveal{mk(), mk(), mk()}

	var tl Timeline
	assert.Equal(t, float32(0), tl.Add(0, 0, title))
	assert.InDelta(t, 0.2, tl.Add(-0.8, 0, sub), 1e-6)
	assert.InDelta(t, 0.4, tl.Add(-0.8, 0.1, buttons...), 1e-6)
	assert.InDelta(t, 1.6, tl.Duration(), 1e-6)

	// pulses longer than the timeline so far never start before zero
	long := mk()
	long.Duration = 2
	assert.InDelta(t, 0.1, tl.Add(-1.5, 0, long), 1e-6)
	assert.InDelta(t, 2.1, tl.Duration(), 1e-6)

	all := append([]*Reveal{title, sub, long}, buttons...)
	run(2.3, func(dt float32) {
		for _, r := range all {
			r.Update(dt)
		}
	})
	for _, r := range all {
		assert.Equal(t, float32(1), r.Pose().Alpha)
	}
}

func TestPulseStaysInRange(t *testing.T) {
	p := NewPulse(0.5, 1)
	assert.Equal(t, float32(1), p.Value())

	lowest := float32(1)
	run(10, func(dt float32) {
		p.Update(dt)
		v := p.Value()
		assert.GreaterOrEqual(t, v, float32(0.5)-1e-4)
		assert.LessOrEqual(t, v, float32(1)+1e-4)
		if v < lowest {
			lowest = v
		}
	})
	assert.Less(t, lowest, float32(0.55))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(29, 29))
	assert.False(t, r.Contains(30, 15))
	assert.False(t, r.Contains(5, 15))
}
