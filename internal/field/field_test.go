package field

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webwizbd/backdrop/internal/config"
	"github.com/webwizbd/backdrop/internal/render"
)

type fakeSurface struct {
	w, h    int
	ratio   float64
	present int
}

func (s *fakeSurface) SetSize(w, h int) { s.w, s.h = w, h }
func (s *fakeSurface) SetPixelRatio(r float64) { s.ratio = r }
func (s *fakeSurface) Present(render.Frame) { s.present++ }

type fakeHost struct {
	surfaces map[string]render.Surface
	w, h     int
	ratio    float64
	lookups  int
	resize   []func(w, h int)
	pointer  []func(x, y float64)
}

func newFakeHost(w, h int) (*fakeHost, *fakeSurface) {
	surf := &fakeSurface{}
	return &fakeHost{
		surfaces: map[string]render.Surface{config.SurfaceID: surf},
		w:        w,
		h:        h,
		ratio:    1,
	}, surf
}

func (h *fakeHost) LookupSurface(id string) (render.Surface, bool) {
	h.lookups++
	s, ok := h.surfaces[id]
	return s, ok
}
func (h *fakeHost) Viewport() (int, int) { return h.w, h.h }
func (h *fakeHost) DevicePixelRatio() float64 { return h.ratio }
func (h *fakeHost) OnResize(fn func(w, h int)) { h.resize = append(h.resize, fn) }
func (h *fakeHost) OnPointerMove(fn func(x, y float64)) { h.pointer = append(h.pointer, fn) }

func (h *fakeHost) fireResize(w, hh int) {
	h.w, h.h = w, hh
	for _, fn := range h.resize {
		fn(w, hh)
	}
}

func (h *fakeHost) firePointer(x, y float64) {
	for _, fn := range h.pointer {
		fn(x, y)
	}
}

func newTestField(t *testing.T, w, h int) (*Field, *fakeHost, *fakeSurface) {
	t.Helper()
	host, surf := newFakeHost(w, h)
	f, ok := Init(host, config.Default(), WithSeed(42))
	require.True(t, ok)
	require.NotNil(t, f)
	return f, host, surf
}

func TestGenerateCloudRange(t *testing.T) {
	f, _, _ := newTestField(t, 1024, 768)

	pos := f.Positions()
	require.Len(t, pos, 700*3)
	for i, v := range pos {
		assert.GreaterOrEqual(t, v, float32(-10), "coord %d", i)
		assert.LessOrEqual(t, v, float32(10), "coord %d", i)
	}
}

func TestGenerateCloudSeeded(t *testing.T) {
	a := GenerateCloud(50, 20, rand.New(rand.NewSource(3)))
	b := GenerateCloud(50, 20, rand.New(rand.NewSource(3)))
	c := GenerateCloud(50, 20, rand.New(rand.NewSource(4)))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerateCloudUnseeded(t *testing.T) {
	pos := GenerateCloud(10, 2, nil)
	require.Len(t, pos, 30)
	for _, v := range pos {
		assert.LessOrEqual(t, math.Abs(float64(v)), 1.0)
	}
}

func TestInitMissingSurface(t *testing.T) {
	host := &fakeHost{surfaces: map[string]render.Surface{}, w: 800, h: 600}

	f, ok := Init(host, config.Default())

	assert.False(t, ok)
	assert.Nil(t, f)
	assert.Equal(t, 1, host.lookups)
	assert.Empty(t, host.resize)
	assert.Empty(t, host.pointer)
}

func TestInitBuildsScene(t *testing.T) {
	host, surf := newFakeHost(1024, 768)
	host.ratio = 2

	f, ok := Init(host, config.Default(), WithSeed(1))
	require.True(t, ok)

	assert.Len(t, f.Scene().Points(), 1)
	assert.Len(t, f.Scene().Lights(), 1)
	assert.Equal(t, 2, f.Scene().Len())

	cam := f.Camera()
	assert.Equal(t, 5.0, cam.Position.Z())
	assert.Equal(t, 75.0, cam.FOV)
	assert.InDelta(t, 1024.0/768.0, cam.Aspect, 1e-12)

	assert.Equal(t, 1024, surf.w)
	assert.Equal(t, 768, surf.h)
	assert.Equal(t, 2.0, surf.ratio)

	assert.Len(t, host.resize, 1)
	assert.Len(t, host.pointer, 1)
	assert.Zero(t, surf.present)
}

func TestTickScenario(t *testing.T) {
	f, host, surf := newTestField(t, 1024, 768)

	host.firePointer(612, 412)
	assert.Equal(t, Pointer{X: 100, Y: 28}, f.Pointer())
	assert.Zero(t, surf.present, "pointer move must not force a draw")

	f.Tick()

	o := f.Orientation()
	assert.InDelta(t, 0.05*(0.001*28-0), o.Pitch(), 1e-15)
	assert.InDelta(t, 0.05*(0.001*100-0)+0.0005, o.Yaw(), 1e-15)
	assert.Equal(t, 1, surf.present)
	assert.Equal(t, uint64(1), f.Ticks())
}

func TestTickAmbientDriftWithoutPointer(t *testing.T) {
	f, _, _ := newTestField(t, 800, 600)

	prev := f.Orientation().Yaw()
	for i := 0; i < 500; i++ {
		f.Tick()
		yaw := f.Orientation().Yaw()
		assert.InDelta(t, 0.0005, yaw-prev, 1e-12, "tick %d", i)
		prev = yaw
		assert.Zero(t, f.Orientation().Pitch())
	}
}

func TestTickPitchReturnsToZero(t *testing.T) {
	f, host, _ := newTestField(t, 800, 600)

	host.firePointer(400, 600) // 300 below centre
	for i := 0; i < 50; i++ {
		f.Tick()
	}
	require.Greater(t, f.Orientation().Pitch(), 0.0)

	host.firePointer(400, 300)
	prev := f.Orientation().Pitch()
	for i := 0; i < 2000; i++ {
		f.Tick()
		p := f.Orientation().Pitch()
		assert.LessOrEqual(t, p, prev)
		assert.GreaterOrEqual(t, p, 0.0)
		prev = p
	}
	assert.InDelta(t, 0, prev, 1e-12)
}

func TestTickConvergesWithoutOvershoot(t *testing.T) {
	f, host, _ := newTestField(t, 1000, 1000)

	host.firePointer(900, 100) // offset (400, -400)
	targetYaw := 400 * 0.001
	targetPitch := -400 * 0.001

	prevYaw, prevPitch := 0.0, 0.0
	for i := 0; i < 1500; i++ {
		f.Tick()
		o := f.Orientation()

		assert.Greater(t, o.FollowY, prevYaw-1e-15)
		assert.LessOrEqual(t, o.FollowY, targetYaw)
		assert.Less(t, o.FollowX, prevPitch+1e-15)
		assert.GreaterOrEqual(t, o.FollowX, targetPitch)

		prevYaw, prevPitch = o.FollowY, o.FollowX
	}
	assert.InDelta(t, targetYaw, prevYaw, 1e-9)
	assert.InDelta(t, targetPitch, prevPitch, 1e-9)
}

func TestResizeKeepsAnimationState(t *testing.T) {
	f, host, surf := newTestField(t, 1024, 768)

	host.firePointer(700, 100)
	for i := 0; i < 10; i++ {
		f.Tick()
	}
	before := f.Orientation()
	positions := f.Positions()

	host.fireResize(1920, 1080)

	assert.Equal(t, 1920.0/1080.0, f.Camera().Aspect)
	assert.Equal(t, 1920, surf.w)
	assert.Equal(t, 1080, surf.h)
	w, h := f.Size()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	assert.Equal(t, before, f.Orientation())
	assert.Equal(t, positions, f.Positions())
}

func TestPointerUsesCurrentCentre(t *testing.T) {
	f, host, _ := newTestField(t, 1024, 768)

	host.fireResize(400, 200)
	host.firePointer(250, 150)

	assert.Equal(t, Pointer{X: 50, Y: 50}, f.Pointer())
}

func TestPositionsNeverChange(t *testing.T) {
	f, host, _ := newTestField(t, 1024, 768)
	start := f.Positions()

	host.firePointer(10, 10)
	for i := 0; i < 100; i++ {
		f.Tick()
	}
	assert.Equal(t, start, f.Positions())
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _, surf := newTestField(t, 640, 480)

	ctx, cancel := context.WithCancel(context.Background())
	frames := make(chan time.Time)
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx, frames) }()

	for i := 0; i < 3; i++ {
		frames <- time.Now()
	}
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 3, surf.present)
	assert.Equal(t, uint64(3), f.Ticks())
}

func TestRunStopsWhenFramesClose(t *testing.T) {
	f, _, _ := newTestField(t, 640, 480)

	frames := make(chan time.Time, 5)
	for i := 0; i < 5; i++ {
		frames <- time.Time{}
	}
	close(frames)

	require.NoError(t, f.Run(context.Background(), frames))
	assert.Equal(t, uint64(5), f.Ticks())
}

func TestShimmerOnlyTouchesOpacity(t *testing.T) {
	host, _ := newFakeHost(1024, 768)
	plain, ok := Init(host, config.Default(), WithSeed(5))
	require.True(t, ok)

	cfg := config.Default()
	cfg.Shimmer.Amplitude = 0.5
	host2, _ := newFakeHost(1024, 768)
	shimmering, ok := Init(host2, cfg, WithSeed(5))
	require.True(t, ok)

	a := plain.Tick()
	require.NotEmpty(t, a.Splats)
	for _, s := range a.Splats {
		assert.InDelta(t, 0.8, s.A, 1e-6)
	}

	b := shimmering.Tick()
	require.Len(t, b.Splats, len(a.Splats))
	dimmed := 0
	for i, s := range b.Splats {
		assert.Equal(t, a.Splats[i].X, s.X)
		assert.Equal(t, a.Splats[i].Y, s.Y)
		assert.GreaterOrEqual(t, s.A, float32(0.4-1e-6))
		assert.LessOrEqual(t, s.A, float32(0.8+1e-6))
		if s.A < 0.8-1e-3 {
			dimmed++
		}
	}
	assert.Greater(t, dimmed, 0)
}
