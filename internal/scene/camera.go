package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// PerspectiveCamera looks down -Z from Position with a vertical field of view.
type PerspectiveCamera struct {
	FOV      float64 // degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position mgl64.Vec3

	projection mgl64.Mat4
}

// NewPerspectiveCamera builds a camera at the origin.
func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjection()
	return c
}

// SetAspect changes the aspect ratio and rebuilds the projection.
func (c *PerspectiveCamera) SetAspect(aspect float64) {
	c.Aspect = aspect
	c.UpdateProjection()
}

// UpdateProjection must be called after editing FOV, Aspect, Near or Far.
func (c *PerspectiveCamera) UpdateProjection() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Projection returns the clip-space projection matrix.
func (c *PerspectiveCamera) Projection() mgl64.Mat4 {
	return c.projection
}

// View returns the world-to-camera matrix.
func (c *PerspectiveCamera) View() mgl64.Mat4 {
	return mgl64.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z())
}
