package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsTruncatesPartialTriples(t *testing.T) {
	p := NewPoints([]float32{1, 2, 3, 4, 5}, PointsMaterial{})
	require.Equal(t, 1, p.Len())
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, p.At(0))
}

func TestPointsPositionsIsACopy(t *testing.T) {
	p := NewPoints([]float32{1, 2, 3}, PointsMaterial{})
	out := p.Positions()
	out[0] = 99
	assert.Equal(t, 1.0, p.At(0).X())
}

func TestEulerMatrixOrder(t *testing.T) {
	// A quarter turn about Y sends +X to -Z; a following quarter turn about X
	// (applied outermost) sends -Z to +Y.
	e := Euler{X: math.Pi / 2, Y: math.Pi / 2}
	v := e.Matrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()

	assert.InDelta(t, 0, v.X(), 1e-9)
	assert.InDelta(t, 1, v.Y(), 1e-9)
	assert.InDelta(t, 0, v.Z(), 1e-9)
}

func TestSceneCounts(t *testing.T) {
	s := New()
	s.AddPoints(NewPoints(nil, PointsMaterial{}))
	s.AddLight(&PointLight{Color: 0xFFFFFF})

	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.Points(), 1)
	assert.Len(t, s.Lights(), 1)
}

func TestRGB(t *testing.T) {
	r, g, b := RGB(0x3B82F6)
	assert.InDelta(t, 59.0/255, r, 1e-12)
	assert.InDelta(t, 130.0/255, g, 1e-12)
	assert.InDelta(t, 246.0/255, b, 1e-12)
}

func TestCameraSetAspectRebuildsProjection(t *testing.T) {
	c := NewPerspectiveCamera(75, 1, 0.1, 1000)
	before := c.Projection()

	c.SetAspect(2)

	assert.Equal(t, 2.0, c.Aspect)
	after := c.Projection()
	// column-major: [0] is x scale = f/aspect, [5] is y scale = f
	assert.InDelta(t, before[0]/2, after[0], 1e-12)
	assert.InDelta(t, before[5], after[5], 1e-12)
}

func TestCameraView(t *testing.T) {
	c := NewPerspectiveCamera(75, 1, 0.1, 1000)
	c.Position = mgl64.Vec3{0, 0, 5}

	v := c.View().Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	assert.Equal(t, -5.0, v.Z())
}
