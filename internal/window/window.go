// Package window runs the backdrop in a desktop window with ebiten. The Game
// is the field Host: it owns the "bg-canvas" surface, reports window resizes
// and cursor motion, and draws the page overlay on top of the particles.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/webwizbd/backdrop/internal/config"
	"github.com/webwizbd/backdrop/internal/field"
	"github.com/webwizbd/backdrop/internal/page"
	"github.com/webwizbd/backdrop/internal/pointer"
	"github.com/webwizbd/backdrop/internal/render"
)

var background = color.RGBA{0x0B, 0x11, 0x20, 0xFF}

// Game implements ebiten.Game and field.Host.
type Game struct {
	ctx context.Context
	cfg config.Config

	canvas *canvas
	field  *field.Field
	page   *page.Page

	resizeFns  []func(w, h int)
	pointerFns []func(x, y float64)

	viewW, viewH     int // logical pixels
	screenW, screenH int // device pixels, as returned by Layout
	scale            float64
	cursor           pointer.Tracker
	hidePage         bool
}

// New returns a game sized from cfg.Window. Cancelling ctx ends RunGame.
func New(ctx context.Context, cfg config.Config) *Game {
	g := &Game{
		ctx:   ctx,
		cfg:   cfg,
		viewW: cfg.Window.Width,
		viewH: cfg.Window.Height,
		scale: deviceScale(),
	}
	g.screenW = int(math.Ceil(float64(g.viewW) * g.scale))
	g.screenH = int(math.Ceil(float64(g.viewH) * g.scale))
	g.canvas = newCanvas()
	return g
}

// SetField attaches the particle field. A nil field draws only the overlay.
func (g *Game) SetField(f *field.Field) {
	g.field = f
}

// SetPage attaches the page overlay. A nil page draws only the particles.
func (g *Game) SetPage(p *page.Page) {
	g.page = p
}

// LookupSurface implements field.Host.
func (g *Game) LookupSurface(id string) (render.Surface, bool) {
	if id != g.cfg.SurfaceID {
		return nil, false
	}
	return g.canvas, true
}

// Viewport implements field.Host.
func (g *Game) Viewport() (int, int) {
	return g.viewW, g.viewH
}

// DevicePixelRatio implements field.Host.
func (g *Game) DevicePixelRatio() float64 {
	return g.scale
}

// OnResize implements field.Host.
func (g *Game) OnResize(fn func(w, h int)) {
	g.resizeFns = append(g.resizeFns, fn)
}

// OnPointerMove implements field.Host.
func (g *Game) OnPointerMove(fn func(x, y float64)) {
	g.pointerFns = append(g.pointerFns, fn)
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if quit := g.handleInput(); quit {
		return ebiten.Termination
	}

	if g.field != nil {
		g.field.Tick()
	}
	if g.page != nil {
		g.page.Update(1 / float32(g.cfg.Window.TPS))
	}
	return nil
}

// handleInput turns cursor, wheel and key state into host events.
func (g *Game) handleInput() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hidePage = !g.hidePage
	}

	// The cursor is polled even when it is outside the window; only moves
	// over the window count.
	mx, my := ebiten.CursorPosition()
	switch g.cursor.Poll(mx, my, g.screenW, g.screenH) {
	case pointer.Move:
		x, y := float64(mx)/g.scale, float64(my)/g.scale
		for _, fn := range g.pointerFns {
			fn(x, y)
		}
		if g.page != nil {
			g.page.MovePointer(x, y)
		}
	case pointer.Leave:
		if g.page != nil {
			g.page.LeavePointer()
		}
	}

	if g.page != nil {
		_, wheelY := ebiten.Wheel()
		g.page.Scroll(-wheelY)
	}
	return false
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.canvas.draw(screen)
	if g.page != nil && !g.hidePage {
		drawPage(screen, g.page.Widgets(), g.scale)
	}
}

// Layout keeps the screen at device resolution so points stay sharp on
// high-density displays. Size changes are forwarded to resize listeners in
// logical pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.viewW || outsideHeight != g.viewH {
		g.viewW, g.viewH = outsideWidth, outsideHeight
		for _, fn := range g.resizeFns {
			fn(outsideWidth, outsideHeight)
		}
		if g.page != nil {
			g.page.Resize(outsideWidth, outsideHeight)
		}
	}

	g.screenW = int(math.Ceil(float64(outsideWidth) * g.scale))
	g.screenH = int(math.Ceil(float64(outsideHeight) * g.scale))
	return g.screenW, g.screenH
}

func deviceScale() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	s := m.DeviceScaleFactor()
	if s <= 0 {
		log.Printf("Warning: device scale factor %v, using 1", s)
		return 1
	}
	return s
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
