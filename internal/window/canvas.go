package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/webwizbd/backdrop/internal/render"
	"github.com/webwizbd/backdrop/internal/scene"
)

// spriteRadius is the radius of the pre-rendered point sprite.
const spriteRadius = 16

// canvas is the "bg-canvas" surface. It keeps the latest frame and paints it
// as scaled circle sprites.
type canvas struct {
	frame  render.Frame
	ready  bool
	width  int
	height int
	ratio  float64
	sprite *ebiten.Image
	op     ebiten.DrawImageOptions
}

func newCanvas() *canvas {
	return &canvas{ratio: 1}
}

func (c *canvas) SetSize(w, h int) {
	c.width, c.height = w, h
}

func (c *canvas) SetPixelRatio(r float64) {
	c.ratio = r
}

func (c *canvas) Present(f render.Frame) {
	c.frame = f
	c.ready = true
}

func (c *canvas) ensureSprite() {
	if c.sprite != nil {
		return
	}
	c.sprite = ebiten.NewImage(2*spriteRadius, 2*spriteRadius)
	vector.DrawFilledCircle(c.sprite, spriteRadius, spriteRadius, spriteRadius, color.White, true)
}

func (c *canvas) draw(screen *ebiten.Image) {
	if !c.ready {
		return
	}
	c.ensureSprite()

	blend := ebiten.BlendSourceOver
	if c.frame.Blending == scene.AdditiveBlending {
		blend = ebiten.BlendLighter
	}

	op := &c.op
	op.Blend = blend
	op.Filter = ebiten.FilterLinear
	for _, s := range c.frame.Splats {
		k := float64(s.Radius) / spriteRadius
		op.GeoM.Reset()
		op.GeoM.Translate(-spriteRadius, -spriteRadius)
		op.GeoM.Scale(k, k)
		op.GeoM.Translate(float64(s.X), float64(s.Y))

		op.ColorScale.Reset()
		op.ColorScale.Scale(s.R*s.A, s.G*s.A, s.B*s.A, s.A)
		screen.DrawImage(c.sprite, op)
	}
}
