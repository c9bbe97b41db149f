package motion

// Rect is an axis-aligned box in page pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies inside r.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

const (
	TiltMaxDeg     = 5.0
	TiltScale      = 1.02
	TiltDuration   = 0.5
	MagnetPull     = 0.3
	MagnetDuration = 0.3
)

// Tilt leans a card toward the pointer.
type Tilt struct {
	RotateX Prop // degrees
	RotateY Prop // degrees
	Scale   Prop
}

// NewTilt returns a card at rest.
func NewTilt() Tilt {
	return Tilt{Scale: NewProp(1)}
}

// Hover retargets the tilt for a pointer at (px, py) over r.
func (t *Tilt) Hover(px, py float64, r Rect) {
	cx, cy := r.W/2, r.H/2
	if cx == 0 || cy == 0 {
		return
	}
	x, y := px-r.X, py-r.Y

	rotX := ((y - cy) / cy) * -TiltMaxDeg
	rotY := ((x - cx) / cx) * TiltMaxDeg

	t.RotateX.To(float32(rotX), TiltDuration, Power2Out)
	t.RotateY.To(float32(rotY), TiltDuration, Power2Out)
	t.Scale.To(TiltScale, TiltDuration, Power2Out)
}

// Leave eases the card back flat.
func (t *Tilt) Leave() {
	t.RotateX.To(0, TiltDuration, Power2Out)
	t.RotateY.To(0, TiltDuration, Power2Out)
	t.Scale.To(1, TiltDuration, Power2Out)
}

// Update advances all channels.
func (t *Tilt) Update(dt float32) {
	t.RotateX.Update(dt)
	t.RotateY.Update(dt)
	t.Scale.Update(dt)
}

// Magnetic pulls a button toward the pointer and snaps it back elastically.
type Magnetic struct {
	X Prop
	Y Prop
}

// Hover retargets the offset for a pointer at (px, py) over r.
func (m *Magnetic) Hover(px, py float64, r Rect) {
	cx, cy := r.Center()
	m.X.To(float32((px-cx)*MagnetPull), MagnetDuration, Power2Out)
	m.Y.To(float32((py-cy)*MagnetPull), MagnetDuration, Power2Out)
}

// Leave returns the button to its resting place.
func (m *Magnetic) Leave() {
	m.X.To(0, MagnetDuration, ElasticOut)
	m.Y.To(0, MagnetDuration, ElasticOut)
}

// Update advances both axes.
func (m *Magnetic) Update(dt float32) {
	m.X.Update(dt)
	m.Y.Update(dt)
}
