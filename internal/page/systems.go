package page

import (
	"sort"
	"strconv"

	"github.com/yohamta/donburi"

	"github.com/webwizbd/backdrop/internal/motion"
)

// Widget is one element ready to draw, in viewport pixels.
type Widget struct {
	Kind    Kind
	Label   string
	Body    string
	Value   string // counters only
	Rect    motion.Rect
	Alpha   float32
	RotateX float32
	RotateY float32
	Rotate  float32
	Clip    float32
	Hovered bool
	order   int
}

// Update runs one frame of page systems: scroll triggers, hover and every
// running animation.
func (p *Page) Update(dt float32) {
	p.triggers.Update(p.scrollY, p.viewH)
	if p.pointerDirty {
		p.updateHover()
		p.pointerDirty = false
	}

	Reveal.Each(p.world, func(entry *donburi.Entry) {
		Reveal.Get(entry).Update(dt)
	})
	Tilt.Each(p.world, func(entry *donburi.Entry) {
		Tilt.Get(entry).Update(dt)
	})
	Magnet.Each(p.world, func(entry *donburi.Entry) {
		Magnet.Get(entry).Update(dt)
	})
	Counter.Each(p.world, func(entry *donburi.Entry) {
		Counter.Get(entry).Counter.Update(dt)
	})
	Pulse.Each(p.world, func(entry *donburi.Entry) {
		Pulse.Get(entry).Update(dt)
	})
}

func (p *Page) updateHover() {
	px, py := p.pointerX, p.pointerY+p.scrollY

	Hover.Each(p.world, func(entry *donburi.Entry) {
		rect := Box.Get(entry).Rect
		h := Hover.Get(entry)
		inside := p.hasPointer && rect.Contains(px, py)

		switch {
		case inside:
			if entry.HasComponent(Tilt) {
				Tilt.Get(entry).Hover(px, py, rect)
			}
			if entry.HasComponent(Magnet) {
				Magnet.Get(entry).Hover(px, py, rect)
			}
		case h.Inside:
			if entry.HasComponent(Tilt) {
				Tilt.Get(entry).Leave()
			}
			if entry.HasComponent(Magnet) {
				Magnet.Get(entry).Leave()
			}
		}
		h.Inside = inside
	})
}

// Widgets returns every element in paint order, positioned for the current
// scroll offset with its animation applied.
func (p *Page) Widgets() []Widget {
	out := make([]Widget, 0, p.nextOrder)

	Box.Each(p.world, func(entry *donburi.Entry) {
		box := Box.Get(entry)
		w := Widget{
			Kind:  box.Kind,
			Label: box.Label,
			Body:  box.Body,
			Alpha: 1,
			Clip:  1,
			order: box.Order,
		}

		var dx, dy float64
		scale := 1.0
		if entry.HasComponent(Reveal) {
			pose := Reveal.Get(entry).Pose()
			dx, dy = float64(pose.OffsetX), float64(pose.OffsetY)
			scale = float64(pose.Scale)
			w.Alpha = pose.Alpha
			w.RotateX = pose.RotateX
			w.Rotate = pose.Rotate
			w.Clip = pose.Clip
		}
		if entry.HasComponent(Tilt) {
			t := Tilt.Get(entry)
			w.RotateX += t.RotateX.Value()
			w.RotateY = t.RotateY.Value()
			scale *= float64(t.Scale.Value())
		}
		if entry.HasComponent(Magnet) {
			m := Magnet.Get(entry)
			dx += float64(m.X.Value())
			dy += float64(m.Y.Value())
		}
		if entry.HasComponent(Pulse) {
			w.Alpha *= Pulse.Get(entry).Value()
		}
		if entry.HasComponent(Counter) {
			c := Counter.Get(entry)
			w.Value = strconv.Itoa(c.Counter.Value()) + c.Suffix
		}
		if entry.HasComponent(Hover) {
			w.Hovered = Hover.Get(entry).Inside
		}

		cx, cy := box.Rect.Center()
		rw, rh := box.Rect.W*scale, box.Rect.H*scale
		w.Rect = motion.Rect{
			X: cx - rw/2 + dx,
			Y: cy - rh/2 + dy - p.scrollY,
			W: rw,
			H: rh,
		}
		out = append(out, w)
	})

	sort.Slice(out, func(i, j int) bool { return out[i].order < out[j].order })
	return out
}
