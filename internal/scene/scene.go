// Package scene is a small scene graph for the particle backdrop: a perspective
// camera, a point cloud with its material, and point lights.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Blending selects how a material combines with what is already drawn.
type Blending int

const (
	NormalBlending Blending = iota
	AdditiveBlending
)

// Euler is a rotation in radians applied in X, Y, Z order.
type Euler struct {
	X, Y, Z float64
}

// Matrix returns the homogeneous rotation Rx * Ry * Rz.
func (e Euler) Matrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(e.X).
		Mul4(mgl64.HomogRotate3DY(e.Y)).
		Mul4(mgl64.HomogRotate3DZ(e.Z))
}

// PointsMaterial is the unlit material of a point cloud.
type PointsMaterial struct {
	Size            float64 // world units, attenuated by depth
	Color           uint32  // 0xRRGGBB
	Opacity         float64
	Transparent     bool
	Blending        Blending
	SizeAttenuation bool
}

// Points is a renderable cloud of independent point primitives. The geometry
// is a flat x,y,z sequence fixed at construction.
type Points struct {
	positions []float32
	Material  PointsMaterial
	Rotation  Euler
}

// NewPoints wraps positions, which must hold whole triples.
func NewPoints(positions []float32, material PointsMaterial) *Points {
	n := len(positions) - len(positions)%3
	return &Points{
		positions: positions[:n:n],
		Material:  material,
	}
}

// Len returns the number of points.
func (p *Points) Len() int {
	return len(p.positions) / 3
}

// At returns the object-space position of point i.
func (p *Points) At(i int) mgl64.Vec3 {
	j := i * 3
	return mgl64.Vec3{
		float64(p.positions[j]),
		float64(p.positions[j+1]),
		float64(p.positions[j+2]),
	}
}

// Positions returns a copy of the flat geometry.
func (p *Points) Positions() []float32 {
	out := make([]float32, len(p.positions))
	copy(out, p.positions)
	return out
}

// Matrix returns the model matrix of the cloud.
func (p *Points) Matrix() mgl64.Mat4 {
	return p.Rotation.Matrix()
}

// PointLight emits light in all directions from a position.
type PointLight struct {
	Color     uint32
	Intensity float64
	Position  mgl64.Vec3
}

// Scene holds everything drawn in one pass.
type Scene struct {
	points []*Points
	lights []*PointLight
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// AddPoints attaches a point cloud.
func (s *Scene) AddPoints(p *Points) {
	s.points = append(s.points, p)
}

// AddLight attaches a point light.
func (s *Scene) AddLight(l *PointLight) {
	s.lights = append(s.lights, l)
}

// Points returns the attached clouds in insertion order.
func (s *Scene) Points() []*Points {
	return s.points
}

// Lights returns the attached lights in insertion order.
func (s *Scene) Lights() []*PointLight {
	return s.lights
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int {
	return len(s.points) + len(s.lights)
}

// RGB splits a 0xRRGGBB colour into channels in [0,1].
func RGB(hex uint32) (r, g, b float64) {
	r = float64((hex>>16)&0xFF) / 255
	g = float64((hex>>8)&0xFF) / 255
	b = float64(hex&0xFF) / 255
	return r, g, b
}
