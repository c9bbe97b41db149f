// Package field renders the animated, pointer-reactive particle cloud used as a
// page background.
//
// A Field is driven from a single goroutine: the host delivers resize and
// pointer callbacks and frame signals on the same loop, so no locking is done.
package field

import (
	"context"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/webwizbd/backdrop/internal/config"
	"github.com/webwizbd/backdrop/internal/render"
	"github.com/webwizbd/backdrop/internal/scene"
)

// Host is the environment a Field lives in.
type Host interface {
	// LookupSurface finds the drawable target with the given id.
	LookupSurface(id string) (render.Surface, bool)
	// Viewport returns the current viewport size in logical pixels.
	Viewport() (w, h int)
	DevicePixelRatio() float64
	OnResize(fn func(w, h int))
	OnPointerMove(fn func(x, y float64))
}

// Option customises Init.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithSeed makes cloud generation and shimmer reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// Field owns the scene, camera and renderer of the particle background.
type Field struct {
	cfg config.Config

	scene    *scene.Scene
	points   *scene.Points
	light    *scene.PointLight
	camera   *scene.PerspectiveCamera
	renderer *render.Renderer

	viewW, viewH int
	pointer      Pointer
	orientation  Orientation
	ticks        uint64
}

// Init builds the field on the surface named by cfg.SurfaceID and subscribes
// to host resize and pointer events. When the surface does not exist nothing
// is built or registered and ok is false.
func Init(host Host, cfg config.Config, opts ...Option) (f *Field, ok bool) {
	surface, ok := host.LookupSurface(cfg.SurfaceID)
	if !ok || surface == nil {
		return nil, false
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newRand()
	}

	w, h := host.Viewport()
	f = &Field{
		cfg:   cfg,
		scene: scene.New(),
		viewW: w,
		viewH: h,
	}

	f.camera = scene.NewPerspectiveCamera(cfg.Camera.FOV, aspect(w, h), cfg.Camera.Near, cfg.Camera.Far)
	f.camera.Position = mgl64.Vec3{0, 0, cfg.Camera.Distance}

	f.renderer = render.New(surface)
	f.renderer.SetSize(w, h)
	f.renderer.SetPixelRatio(host.DevicePixelRatio())

	blending := scene.NormalBlending
	if cfg.Material.Additive {
		blending = scene.AdditiveBlending
	}
	f.points = scene.NewPoints(
		GenerateCloud(cfg.Particles.Count, cfg.Particles.Spread, o.rng),
		scene.PointsMaterial{
			Size:            cfg.Material.Size,
			Color:           cfg.Material.Color,
			Opacity:         cfg.Material.Opacity,
			Transparent:     true,
			Blending:        blending,
			SizeAttenuation: true,
		},
	)
	f.scene.AddPoints(f.points)

	// drawn after the cloud: a seed gives the same cloud with or without shimmer
	if cfg.Shimmer.Amplitude > 0 {
		f.renderer.SetShimmer(render.NewShimmer(cfg.Shimmer.Amplitude, cfg.Shimmer.Speed, o.rng))
	}

	f.light = &scene.PointLight{
		Color:     cfg.Light.Color,
		Intensity: cfg.Light.Intensity,
		Position:  mgl64.Vec3{cfg.Light.X, cfg.Light.Y, cfg.Light.Z},
	}
	f.scene.AddLight(f.light)

	host.OnResize(f.Resize)
	host.OnPointerMove(f.MovePointer)

	return f, true
}

// Tick runs one render tick: ease the orientation toward the pointer target,
// add ambient drift, and draw.
func (f *Field) Tick() render.Frame {
	m := f.cfg.Motion
	f.orientation.Step(
		f.pointer.Y*m.PointerScale,
		f.pointer.X*m.PointerScale,
		m.Smoothing,
		m.AmbientDrift,
	)
	f.points.Rotation.X = f.orientation.Pitch()
	f.points.Rotation.Y = f.orientation.Yaw()
	f.ticks++

	return f.renderer.Render(f.scene, f.camera)
}

// Run ticks once per value received on frames until ctx is cancelled or
// frames is closed.
func (f *Field) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			f.Tick()
		}
	}
}

// Resize follows a viewport change. Animation state is kept.
func (f *Field) Resize(w, h int) {
	f.viewW, f.viewH = w, h
	f.camera.SetAspect(aspect(w, h))
	f.renderer.SetSize(w, h)
}

// MovePointer records a pointer position given in viewport coordinates. The
// next tick picks it up.
func (f *Field) MovePointer(x, y float64) {
	f.pointer = Pointer{
		X: x - float64(f.viewW)/2,
		Y: y - float64(f.viewH)/2,
	}
}

// Pointer returns the recorded pointer offset.
func (f *Field) Pointer() Pointer {
	return f.pointer
}

// Orientation returns the current rotation state.
func (f *Field) Orientation() Orientation {
	return f.orientation
}

// Ticks returns the number of completed render ticks.
func (f *Field) Ticks() uint64 {
	return f.ticks
}

// Camera exposes the camera for inspection.
func (f *Field) Camera() *scene.PerspectiveCamera {
	return f.camera
}

// Scene exposes the scene graph for inspection.
func (f *Field) Scene() *scene.Scene {
	return f.scene
}

// Positions returns a copy of the particle geometry.
func (f *Field) Positions() []float32 {
	return f.points.Positions()
}

// Size returns the renderer output size.
func (f *Field) Size() (int, int) {
	return f.renderer.Size()
}

func aspect(w, h int) float64 {
	if h <= 0 {
		return 1
	}
	return float64(w) / float64(h)
}
