// Package render projects a scene through a perspective camera into
// screen-space splats and hands each finished frame to a Surface.
package render

import (
	"math"
	"sort"

	"github.com/webwizbd/backdrop/internal/scene"
)

// minRadius keeps distant points at least half a device pixel wide.
const minRadius = 0.5

// Splat is one projected point in device pixels.
type Splat struct {
	X, Y       float32
	Radius     float32
	R, G, B, A float32 // straight alpha
	Depth      float32 // distance in front of the camera
}

// Frame is everything a surface needs to put one render tick on screen.
type Frame struct {
	Seq        uint64
	Width      int // logical pixels
	Height     int
	PixelRatio float64
	Blending   scene.Blending
	Splats     []Splat // reused by the next Render
}

// Surface is a drawable target.
type Surface interface {
	SetSize(w, h int)
	SetPixelRatio(r float64)
	Present(f Frame)
}

// Renderer draws scenes onto a Surface.
type Renderer struct {
	target     Surface
	width      int
	height     int
	pixelRatio float64
	shimmer    *Shimmer
	seq        uint64
	splats     []Splat
}

// New returns a renderer bound to target.
func New(target Surface) *Renderer {
	return &Renderer{
		target:     target,
		pixelRatio: 1,
	}
}

// SetShimmer enables per-point opacity modulation. Nil disables it.
func (r *Renderer) SetShimmer(s *Shimmer) {
	r.shimmer = s
}

// SetSize resizes the output in logical pixels.
func (r *Renderer) SetSize(w, h int) {
	r.width, r.height = w, h
	r.target.SetSize(w, h)
}

// SetPixelRatio sets the device pixel ratio used for splat placement.
func (r *Renderer) SetPixelRatio(p float64) {
	if p <= 0 {
		p = 1
	}
	r.pixelRatio = p
	r.target.SetPixelRatio(p)
}

// Size returns the output size in logical pixels.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Render projects every point cloud of s through c and presents the frame.
// Lights are carried by the scene but point materials are unlit.
func (r *Renderer) Render(s *scene.Scene, c *scene.PerspectiveCamera) Frame {
	r.seq++
	r.splats = r.splats[:0]

	dw := float64(r.width) * r.pixelRatio
	dh := float64(r.height) * r.pixelRatio
	t := float64(r.seq)

	blending := scene.NormalBlending
	for _, pts := range s.Points() {
		mat := pts.Material
		if mat.Blending == scene.AdditiveBlending {
			blending = scene.AdditiveBlending
		}

		modelView := c.View().Mul4(pts.Matrix())
		mvp := c.Projection().Mul4(modelView)
		cr, cg, cb := scene.RGB(mat.Color)

		opacity := 1.0
		if mat.Transparent {
			opacity = mat.Opacity
		}

		for i := 0; i < pts.Len(); i++ {
			obj := pts.At(i).Vec4(1)

			depth := -modelView.Mul4x1(obj).Z()
			if depth < c.Near || depth > c.Far {
				continue
			}

			clip := mvp.Mul4x1(obj)
			ndc := clip.Vec3().Mul(1 / clip.W())
			sx := (ndc.X() + 1) / 2 * dw
			sy := (1 - ndc.Y()) / 2 * dh

			size := mat.Size
			if mat.SizeAttenuation {
				size *= (dh / 2) / depth
			}
			radius := math.Max(size/2, minRadius)
			if sx < -radius || sx > dw+radius || sy < -radius || sy > dh+radius {
				continue
			}

			alpha := opacity
			if r.shimmer != nil {
				alpha *= r.shimmer.Factor(i, t)
			}

			r.splats = append(r.splats, Splat{
				X:      float32(sx),
				Y:      float32(sy),
				Radius: float32(radius),
				R:      float32(cr),
				G:      float32(cg),
				B:      float32(cb),
				A:      float32(alpha),
				Depth:  float32(depth),
			})
		}
	}

	// Additive output is order independent; everything else paints back to front.
	if blending != scene.AdditiveBlending {
		sort.SliceStable(r.splats, func(i, j int) bool {
			return r.splats[i].Depth > r.splats[j].Depth
		})
	}

	f := Frame{
		Seq:        r.seq,
		Width:      r.width,
		Height:     r.height,
		PixelRatio: r.pixelRatio,
		Blending:   blending,
		Splats:     r.splats,
	}
	r.target.Present(f)
	return f
}
