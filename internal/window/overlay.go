package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/webwizbd/backdrop/internal/page"
)

var (
	glass       = color.RGBA{0x1E, 0x29, 0x3B, 0x99}
	glassEdge   = color.RGBA{0x47, 0x55, 0x69, 0xFF}
	hoverEdge   = color.RGBA{0x60, 0xA5, 0xFA, 0xFF}
	accent      = color.RGBA{0x3B, 0x82, 0xF6, 0xFF}
	accentLight = color.RGBA{0x93, 0xC5, 0xFD, 0xFF}
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

// fade scales a premultiplied colour by a.
func fade(c color.RGBA, a float32) color.RGBA {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

func radians(deg float32) float64 {
	return float64(deg) * math.Pi / 180
}

// printCentered writes s centred on (cx, y). The debug font has no alpha, so
// text only appears once a widget is mostly visible.
func printCentered(screen *ebiten.Image, s string, cx, y float32, alpha float32) {
	if alpha < 0.5 || s == "" {
		return
	}
	ebitenutil.DebugPrintAt(screen, s, int(cx)-len(s)*glyphW/2, int(y))
}

func printAt(screen *ebiten.Image, s string, x, y float32, alpha float32) {
	if alpha < 0.5 || s == "" {
		return
	}
	ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
}

// drawPage paints the overlay widgets. Widget rects are in logical pixels and
// are scaled to the device resolution of screen.
func drawPage(screen *ebiten.Image, widgets []page.Widget, scale float64) {
	sw := float32(screen.Bounds().Dx())
	sh := float32(screen.Bounds().Dy())

	for _, w := range widgets {
		if w.Alpha <= 0.01 || w.Clip <= 0 {
			continue
		}

		x := float32(w.Rect.X * scale)
		y := float32(w.Rect.Y * scale)
		width := float32(w.Rect.W * scale)
		height := float32(w.Rect.H * scale)

		// flat stand-in for the 3D tilt: foreshorten around the centre
		if w.RotateX != 0 || w.RotateY != 0 {
			fx := float32(math.Cos(radians(w.RotateY)))
			fy := float32(math.Cos(radians(w.RotateX)))
			x += width * (1 - fx) / 2
			y += height * (1 - fy) / 2
			width *= fx
			height *= fy
		}
		height *= w.Clip

		if x > sw || y > sh || x+width < 0 || y+height < 0 {
			continue
		}
		cx, cy := x+width/2, y+height/2

		switch w.Kind {
		case page.KindHeading:
			printCentered(screen, w.Label, cx, cy-glyphH/2, w.Alpha)
			vector.StrokeLine(screen, cx-width/6, y+height, cx+width/6, y+height, 2, fade(accent, w.Alpha), true)

		case page.KindText:
			printCentered(screen, w.Label, cx, cy-glyphH/2, w.Alpha)

		case page.KindCard:
			edge := glassEdge
			if w.Hovered {
				edge = hoverEdge
			}
			vector.DrawFilledRect(screen, x, y, width, height, fade(glass, w.Alpha), true)
			vector.StrokeRect(screen, x, y, width, height, 1, fade(edge, w.Alpha), true)
			printAt(screen, w.Label, x+16, y+16, w.Alpha)
			printAt(screen, w.Body, x+16, y+16+2*glyphH, w.Alpha)

		case page.KindButton:
			fill := accent
			if w.Hovered {
				fill = accentLight
			}
			vector.DrawFilledRect(screen, x, y, width, height, fade(fill, w.Alpha), true)
			printCentered(screen, w.Label, cx, cy-glyphH/2, w.Alpha)

		case page.KindStep:
			r := width / 2
			vector.DrawFilledCircle(screen, cx, cy, r, fade(accent, w.Alpha), true)
			// marker on the rim shows the spin-in
			a := radians(w.Rotate - 90)
			mx := cx + r*float32(math.Cos(a))
			my := cy + r*float32(math.Sin(a))
			vector.DrawFilledCircle(screen, mx, my, r/6, fade(accentLight, w.Alpha), true)
			printCentered(screen, w.Label, cx, cy-glyphH/2, w.Alpha)

		case page.KindCounter:
			vector.DrawFilledRect(screen, x, y, width, height, fade(glass, w.Alpha), true)
			printCentered(screen, w.Value, cx, cy-glyphH, w.Alpha)
			printCentered(screen, w.Label, cx, cy+glyphH/2, w.Alpha)

		case page.KindAccent:
			vector.DrawFilledCircle(screen, cx, cy, width/2, fade(accentLight, w.Alpha), true)
		}
	}

	ebitenutil.DebugPrintAt(screen, "wheel: scroll  H: hide page  Esc: quit", 8, int(sh)-glyphH-4)
}
