// Package terminal runs the backdrop in a text terminal with tcell. Each cell
// stands for an 8x16 block of virtual pixels; points landing in a cell light
// it with a glyph whose weight follows the accumulated brightness.
package terminal

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/webwizbd/backdrop/internal/config"
	"github.com/webwizbd/backdrop/internal/field"
	"github.com/webwizbd/backdrop/internal/render"
	"github.com/webwizbd/backdrop/internal/scene"
)

// Virtual pixels per cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

var ramp = []rune{'·', '∙', '•', '●'}

// Terminal implements field.Host and render.Surface on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	cfg    config.Config

	cols, rows int
	ratio      float64
	glow       []float32
	r, g, b    float64

	resizeFns  []func(w, h int)
	pointerFns []func(x, y float64)
}

// New wraps an initialised screen and turns on mouse reporting.
func New(screen tcell.Screen, cfg config.Config) *Terminal {
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		cfg:    cfg,
		ratio:  1,
	}
	t.r, t.g, t.b = scene.RGB(cfg.Material.Color)
	t.cols, t.rows = screen.Size()
	return t
}

// LookupSurface implements field.Host.
func (t *Terminal) LookupSurface(id string) (render.Surface, bool) {
	if id != t.cfg.SurfaceID {
		return nil, false
	}
	return t, true
}

// Viewport implements field.Host.
func (t *Terminal) Viewport() (int, int) {
	return t.cols * CellWidth, t.rows * CellHeight
}

// DevicePixelRatio implements field.Host.
func (t *Terminal) DevicePixelRatio() float64 {
	return 1
}

// OnResize implements field.Host.
func (t *Terminal) OnResize(fn func(w, h int)) {
	t.resizeFns = append(t.resizeFns, fn)
}

// OnPointerMove implements field.Host.
func (t *Terminal) OnPointerMove(fn func(x, y float64)) {
	t.pointerFns = append(t.pointerFns, fn)
}

// SetSize implements render.Surface. The grid follows the screen, so only
// the cell count matters here.
func (t *Terminal) SetSize(w, h int) {
	t.cols, t.rows = w/CellWidth, h/CellHeight
}

// SetPixelRatio implements render.Surface.
func (t *Terminal) SetPixelRatio(r float64) {
	t.ratio = r
}

// Present implements render.Surface.
func (t *Terminal) Present(f render.Frame) {
	n := t.cols * t.rows
	if cap(t.glow) < n {
		t.glow = make([]float32, n)
	}
	t.glow = t.glow[:n]
	for i := range t.glow {
		t.glow[i] = 0
	}

	ratio := f.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	for _, s := range f.Splats {
		col := int(math.Floor(float64(s.X) / ratio / CellWidth))
		row := int(math.Floor(float64(s.Y) / ratio / CellHeight))
		if col < 0 || col >= t.cols || row < 0 || row >= t.rows {
			continue
		}
		i := row*t.cols + col
		if f.Blending == scene.AdditiveBlending {
			t.glow[i] += s.A
		} else if s.A > t.glow[i] {
			t.glow[i] = s.A
		}
	}

	t.screen.Clear()
	for i, v := range t.glow {
		if v <= 0 {
			continue
		}
		level := math.Min(float64(v)/2, 1)
		glyph := ramp[int(level*float64(len(ramp)-1)+0.5)]

		k := 0.4 + 0.6*level
		fg := tcell.NewRGBColor(int32(t.r*255*k), int32(t.g*255*k), int32(t.b*255*k))
		t.screen.SetContent(i%t.cols, i/t.cols, glyph, nil, tcell.StyleDefault.Foreground(fg))
	}
	t.screen.Show()
}

// HandleEvent routes one tcell event. It returns false when the user asked
// to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x := float64(cx*CellWidth) + CellWidth/2
		y := float64(cy*CellHeight) + CellHeight/2
		for _, fn := range t.pointerFns {
			fn(x, y)
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		if cols == t.cols && rows == t.rows {
			return true
		}
		t.screen.Sync()
		w, h := cols*CellWidth, rows*CellHeight
		for _, fn := range t.resizeFns {
			fn(w, h)
		}
		t.cols, t.rows = cols, rows
	}
	return true
}

// Run ticks f at the configured rate and handles terminal input until the
// user quits (nil) or ctx is cancelled (ctx.Err()). A nil field only
// handles input.
func (t *Terminal) Run(ctx context.Context, f *field.Field) error {
	ticker := time.NewTicker(time.Second / time.Duration(t.cfg.Window.TPS))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if f != nil {
				f.Tick()
			}
		}
	}
}
