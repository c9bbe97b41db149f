// Package page models the landing page drawn over the particle background.
// Widgets are donburi entities; hover, scroll triggers and the intro
// timeline drive their motion components.
package page

import (
	"math"
	"strconv"

	"github.com/yohamta/donburi"

	"github.com/webwizbd/backdrop/internal/motion"
	"github.com/webwizbd/backdrop/internal/scroll"
)

const (
	maxContentWidth = 1100.0
	margin          = 40.0
	gap             = 24.0
	sectionGap      = 140.0

	titleH    = 72.0
	subtitleH = 32.0
	buttonW   = 200.0
	buttonH   = 52.0
	accentD   = 14.0
	headingH  = 56.0
	cardH     = 170.0
	stepD     = 64.0
	counterH  = 110.0

	scrollStep = 60.0
)

// Scroll-trigger start lines as fractions of viewport height.
const (
	headingStart = 0.85
	cardStart    = 0.90
	stepStart    = 0.80
	reviewStart  = 0.75
	counterStart = 0.85
)

type section struct {
	heading      donburi.Entity
	headingTrig  *scroll.Trigger
	cards        []donburi.Entity
	cardTrigs    []*scroll.Trigger
	steps        []donburi.Entity
	stepTrigs    []*scroll.Trigger
	sectionTrig  *scroll.Trigger
	top, bottom  float64
}

// Page is the overlay state. It is not safe for concurrent use.
type Page struct {
	world    donburi.World
	triggers scroll.Registry
	intro    motion.Timeline

	viewW, viewH float64
	scrollY      float64
	contentH     float64

	pointerX, pointerY float64
	hasPointer         bool
	pointerDirty       bool

	heroTitle   donburi.Entity
	heroSub     donburi.Entity
	heroButtons []donburi.Entity
	heroAccents []donburi.Entity

	how      section
	features section
	reviews  section

	stats     []donburi.Entity
	statTrigs []*scroll.Trigger

	nextOrder int
}

// New builds the page for a viewport of w x h and starts the intro.
func New(w, h int) *Page {
	p := &Page{
		world: donburi.NewWorld(),
		viewW: float64(w),
		viewH: float64(h),
	}

	p.buildHero()
	p.how = p.buildCards("How It Works", howItWorks, true)
	p.features = p.buildCards("Features", features, false)
	p.reviews = p.buildReviews("What Clients Say", reviews)
	p.buildStats()

	p.layout()
	p.playIntro()
	return p
}

// World exposes the entity store.
func (p *Page) World() donburi.World {
	return p.world
}

// ScrollY is the current scroll offset in page pixels.
func (p *Page) ScrollY() float64 {
	return p.scrollY
}

// ContentHeight is the full height of the page.
func (p *Page) ContentHeight() float64 {
	return p.contentH
}

// Resize relays the page out for a new viewport.
func (p *Page) Resize(w, h int) {
	p.viewW, p.viewH = float64(w), float64(h)
	p.layout()
	p.clampScroll()
	p.pointerDirty = true
}

// MovePointer records the pointer in viewport pixels.
func (p *Page) MovePointer(x, y float64) {
	p.pointerX, p.pointerY = x, y
	p.hasPointer = true
	p.pointerDirty = true
}

// LeavePointer marks the pointer as outside the viewport.
func (p *Page) LeavePointer() {
	p.hasPointer = false
	p.pointerDirty = true
}

// Scroll moves the page by wheel notches; positive scrolls toward the end.
func (p *Page) Scroll(notches float64) {
	if notches == 0 {
		return
	}
	p.scrollY += notches * scrollStep
	p.clampScroll()
	p.pointerDirty = true
}

func (p *Page) clampScroll() {
	limit := math.Max(0, p.contentH-p.viewH)
	p.scrollY = math.Min(math.Max(p.scrollY, 0), limit)
}

func (p *Page) spawn(data BoxData, cs ...donburi.IComponentType) (donburi.Entity, *donburi.Entry) {
	e := p.world.Create(append([]donburi.IComponentType{Box}, cs...)...)
	entry := p.world.Entry(e)
	data.Order = p.nextOrder
	p.nextOrder++
	Box.SetValue(entry, data)
	return e, entry
}

func hidden(edit func(*motion.Pose)) motion.Pose {
	pose := motion.RestPose
	edit(&pose)
	return pose
}

func (p *Page) buildHero() {
	var entry *donburi.Entry

	p.heroTitle, entry = p.spawn(BoxData{Kind: KindHeading, Label: hero.Title}, Reveal)
	Reveal.SetValue(entry, motion.NewReveal(hidden(func(ps *motion.Pose) {
		ps.OffsetY = 30
		ps.Alpha = 0
	}), 1, motion.Power3Out))

	p.heroSub, entry = p.spawn(BoxData{Kind: KindText, Label: hero.Subtitle}, Reveal)
	Reveal.SetValue(entry, motion.NewReveal(hidden(func(ps *motion.Pose) {
		ps.OffsetY = 20
		ps.Alpha = 0
	}), 1, motion.Power3Out))

	for _, label := range hero.Buttons {
		e, entry := p.spawn(BoxData{Kind: KindButton, Label: label}, Reveal, Magnet, Hover)
		// buttons slide in but stay visible
		Reveal.SetValue(entry, motion.NewReveal(hidden(func(ps *motion.Pose) {
			ps.OffsetY = 20
		}), 1, motion.Power2Out))
		p.heroButtons = append(p.heroButtons, e)
	}

	for i := 0; i < hero.Accents; i++ {
		e, entry := p.spawn(BoxData{Kind: KindAccent}, Reveal, Pulse)
		Reveal.SetValue(entry, motion.NewReveal(hidden(func(ps *motion.Pose) {
			ps.Alpha = 0
		}), 2, motion.Power2Out))
		Pulse.SetValue(entry, motion.NewPulse(0.5, 1.5))
		p.heroAccents = append(p.heroAccents, e)
	}
}

func (p *Page) playIntro() {
	reveal := func(es ...donburi.Entity) []*motion.Reveal {
		out := make([]*motion.Reveal, 0, len(es))
		for _, e := range es {
			out = append(out, Reveal.Get(p.world.Entry(e)))
		}
		return out
	}

	p.intro.Add(0, 0, reveal(p.heroTitle)...)
	p.intro.Add(-0.8, 0, reveal(p.heroSub)...)
	p.intro.Add(-0.8, 0.1, reveal(p.heroButtons...)...)
	p.intro.Add(-1.5, 0.3, reveal(p.heroAccents...)...)
}

// IntroDuration is how long the hero intro runs.
func (p *Page) IntroDuration() float32 {
	return p.intro.Duration()
}

func (p *Page) headingTrigger(e donburi.Entity) *scroll.Trigger {
	return p.triggers.Register(&scroll.Trigger{
		Start:       headingStart,
		OnEnter:     func() { Reveal.Get(p.world.Entry(e)).Play() },
		OnLeaveBack: func() { Reveal.Get(p.world.Entry(e)).Reverse() },
	})
}

func (p *Page) buildHeading(title string) (donburi.Entity, *scroll.Trigger) {
	e, entry := p.spawn(BoxData{Kind: KindHeading, Label: title}, Reveal)
	Reveal.SetValue(entry, motion.NewReveal(hidden(func(ps *motion.Pose) {
		ps.OffsetY = 50
		ps.Alpha = 0
		ps.Clip = 0
	}), 1, motion.Power4Out))
	return e, p.headingTrigger(e)
}

func (p *Page) buildCards(title string, cards []cardContent, withSteps bool) section {
	var s section
	s.heading, s.headingTrig = p.buildHeading(title)

	for i, c := range cards {
		e, entry := p.spawn(BoxData{Kind: KindCard, Label: c.Title, Body: c.Body}, Reveal, Tilt, Hover)
		r := motion.NewReveal(hidden(func(ps *motion.Pose) {
			ps.OffsetY = 100
			ps.Alpha = 0
			ps.RotateX = 15
		}), 1, motion.Power3Out)
		r.Delay = float32(i) * 0.1
		Reveal.SetValue(entry, r)
		Tilt.SetValue(entry, motion.NewTilt())

		s.cards = append(s.cards, e)
		s.cardTrigs = append(s.cardTrigs, p.triggers.Register(&scroll.Trigger{
			Start:   cardStart,
			Once:    true,
			OnEnter: func() { Reveal.Get(p.world.Entry(e)).Play() },
		}))
	}

	if !withSteps {
		return s
	}
	for i := range cards {
		e, entry := p.spawn(BoxData{Kind: KindStep, Label: strconv.Itoa(i + 1)}, Reveal)
		r := motion.NewReveal(hidden(func(ps *motion.Pose) {
			ps.Scale = 0
			ps.Rotate = -180
		}), 1, motion.ElasticOut)
		r.Delay = float32(i) * 0.2
		Reveal.SetValue(entry, r)

		s.steps = append(s.steps, e)
		s.stepTrigs = append(s.stepTrigs, p.triggers.Register(&scroll.Trigger{
			Start:   stepStart,
			Once:    true,
			OnEnter: func() { Reveal.Get(p.world.Entry(e)).Play() },
		}))
	}
	return s
}

func (p *Page) buildReviews(title string, cards []cardContent) section {
	var s section
	s.heading, s.headingTrig = p.buildHeading(title)

	for _, c := range cards {
		e, entry := p.spawn(BoxData{Kind: KindCard, Label: c.Title, Body: c.Body}, Reveal, Tilt, Hover)
		Reveal.SetValue(entry, motion.NewReveal(hidden(func(ps *motion.Pose) {
			ps.OffsetX = 100
			ps.Alpha = 0
		}), 1, motion.Power3Out))
		Tilt.SetValue(entry, motion.NewTilt())
		s.cards = append(s.cards, e)
	}

	s.sectionTrig = p.triggers.Register(&scroll.Trigger{
		Start: reviewStart,
		Once:  true,
		OnEnter: func() {
			for i, e := range s.cards {
				Reveal.Get(p.world.Entry(e)).PlayAfter(float32(i) * 0.2)
			}
		},
	})
	return s
}

func (p *Page) buildStats() {
	for _, st := range stats {
		e, entry := p.spawn(BoxData{Kind: KindCounter, Label: st.Label}, Counter)
		Counter.SetValue(entry, CounterData{Counter: motion.NewCounter(st.Target), Suffix: st.Suffix})

		p.stats = append(p.stats, e)
		p.statTrigs = append(p.statTrigs, p.triggers.Register(&scroll.Trigger{
			Start:   counterStart,
			Once:    true,
			OnEnter: func() { Counter.Get(p.world.Entry(e)).Counter.Start() },
		}))
	}
}

// columns is the card grid width: one per row on narrow screens, two from
// 600px, three from 1000px.
func columns(w float64) int {
	switch {
	case w >= 1000:
		return 3
	case w >= 600:
		return 2
	}
	return 1
}

func (p *Page) setRect(e donburi.Entity, r motion.Rect) {
	Box.Get(p.world.Entry(e)).Rect = r
}

func (p *Page) layout() {
	width := math.Min(p.viewW-2*margin, maxContentWidth)
	if width < 0 {
		width = 0
	}
	left := (p.viewW - width) / 2
	cols := columns(p.viewW)

	// hero fills the first screen, content centred vertically
	heroH := titleH + gap + subtitleH + 2*gap + buttonH
	y := math.Max(margin, (p.viewH-heroH)/2)
	p.setRect(p.heroTitle, motion.Rect{X: left, Y: y, W: width, H: titleH})
	y += titleH + gap
	p.setRect(p.heroSub, motion.Rect{X: left, Y: y, W: width, H: subtitleH})
	y += subtitleH + 2*gap

	rowW := float64(len(p.heroButtons))*buttonW + float64(len(p.heroButtons)-1)*gap
	bx := left + (width-rowW)/2
	for _, e := range p.heroButtons {
		p.setRect(e, motion.Rect{X: bx, Y: y, W: buttonW, H: buttonH})
		bx += buttonW + gap
	}
	for i, e := range p.heroAccents {
		ax := left + width*0.15 + float64(i)*width*0.7
		p.setRect(e, motion.Rect{X: ax, Y: y - titleH, W: accentD, H: accentD})
	}

	y = math.Max(p.viewH, y+buttonH+sectionGap)
	y = p.layoutSection(&p.how, left, width, cols, y)
	y = p.layoutSection(&p.features, left, width, cols, y+sectionGap)
	y = p.layoutSection(&p.reviews, left, width, cols, y+sectionGap)
	y += sectionGap

	statW := (width - float64(len(p.stats)-1)*gap) / float64(len(p.stats))
	for i, e := range p.stats {
		r := motion.Rect{X: left + float64(i)*(statW+gap), Y: y, W: statW, H: counterH}
		p.setRect(e, r)
		p.statTrigs[i].Top = r.Y
	}
	y += counterH + sectionGap

	p.contentH = y
}

func (p *Page) layoutSection(s *section, left, width float64, cols int, y float64) float64 {
	s.top = y
	if s.sectionTrig != nil {
		s.sectionTrig.Top = y
	}

	p.setRect(s.heading, motion.Rect{X: left, Y: y, W: width, H: headingH})
	s.headingTrig.Top = y
	y += headingH + gap

	if len(s.steps) > 0 {
		y += stepD / 2
	}

	cardW := (width - float64(cols-1)*gap) / float64(cols)
	for i, e := range s.cards {
		col, row := i%cols, i/cols
		r := motion.Rect{
			X: left + float64(col)*(cardW+gap),
			Y: y + float64(row)*(cardH+gap),
			W: cardW,
			H: cardH,
		}
		p.setRect(e, r)
		if i < len(s.cardTrigs) {
			s.cardTrigs[i].Top = r.Y
		}
		if i < len(s.steps) {
			sr := motion.Rect{X: r.X + (r.W-stepD)/2, Y: r.Y - stepD/2, W: stepD, H: stepD}
			p.setRect(s.steps[i], sr)
			s.stepTrigs[i].Top = sr.Y
		}
	}

	rows := (len(s.cards) + cols - 1) / cols
	y += float64(rows)*cardH + float64(rows-1)*gap
	s.bottom = y
	return y
}
