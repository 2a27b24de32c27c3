// Showcase is an interactive flight choreography demo. Click a chip on
// the shelf and a copy of it swoops into the tray with a scale pop and
// a drop shadow; each chip carries a different choreography config.
// Right click launches one chip from every slot at once. Escape cancels
// everything in flight.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/go-drift/swoop/pkg/choreo"
	"github.com/go-drift/swoop/pkg/geometry"
	"github.com/go-drift/swoop/pkg/player"
	"github.com/go-drift/swoop/pkg/timeline"
)

const (
	screenW = 960
	screenH = 600

	chipSize    = 56
	shelfTop    = 120
	shelfGap    = 96
	trailLen    = 24
	flashFrames = 18
)

var (
	colorBackground = color.RGBA{24, 26, 32, 255}
	colorTray       = color.RGBA{32, 52, 46, 255}
	colorTrayFlash  = color.RGBA{52, 211, 153, 255}
	colorShadow     = color.RGBA{0, 0, 0, 70}
	colorTrail      = color.RGBA{237, 242, 247, 255}
)

// slot is one shelf position with its own choreography flavor.
type slot struct {
	rect  geometry.Rect
	color color.RGBA
	label string
	cfg   timeline.Config
}

// chip is one flying copy of a shelf slot. It implements both
// choreo.Source and timeline.Surface, so the player drives its
// position, scale and shadow blur directly.
type chip struct {
	home  geometry.Rect
	color color.RGBA

	pos   geometry.Offset
	scale float64
	blur  float64
	trail []geometry.Offset

	done bool
}

func (c *chip) Bounds() geometry.Rect     { return c.home }
func (c *chip) Position() geometry.Offset { return c.pos }

func (c *chip) SetPosition(p geometry.Offset) { c.pos = p }
func (c *chip) SetScale(s float64)            { c.scale = s }
func (c *chip) SetShadowBlur(b float64)       { c.blur = b }

// center returns the chip's current screen-space center: its measured
// home center plus its local translation.
func (c *chip) center() geometry.Offset {
	return c.home.Center().Add(c.pos)
}

// tray is the landing region.
type tray struct {
	rect  geometry.Rect
	flash int
}

func (t *tray) Bounds() geometry.Rect { return t.rect }

// Game implements ebiten.Game.
type Game struct {
	engine *player.Player
	chor   *choreo.Choreographer

	slots   []slot
	tray    *tray
	flights []*chip
	caught  int

	white *ebiten.Image

	mouseWasDown bool
	rightWasDown bool
	escWasDown   bool
}

func newGame() *Game {
	engine := player.New()
	g := &Game{
		engine: engine,
		chor:   choreo.New(engine),
		tray:   &tray{rect: geometry.RectFromLTWH(screenW-300, screenH-170, 230, 100)},
		white:  ebiten.NewImage(1, 1),
	}
	g.white.Fill(color.White)

	defs := []struct {
		color color.RGBA
		label string
		cfg   timeline.Config
	}{
		{color.RGBA{96, 165, 250, 255}, "classic", timeline.Config{}},
		{color.RGBA{52, 211, 153, 255}, "high curl", timeline.Config{
			SwoopAmount:    timeline.Ptr(-220.0),
			MotionDuration: timeline.Ptr(0.6),
			ScalePeak:      timeline.Ptr(1.8),
		}},
		{color.RGBA{251, 191, 36, 255}, "straight", timeline.Config{
			SwoopAmount: timeline.Ptr(0.0),
			Scale:       timeline.Ptr(false),
			GrabScale:   timeline.Ptr(1.0),
		}},
		{color.RGBA{248, 113, 113, 255}, "bounce", timeline.Config{
			MotionEase:     timeline.Ptr("bounce.out"),
			MotionDuration: timeline.Ptr(0.8),
			SwoopAmount:    timeline.Ptr(140.0),
			ScalePeak:      timeline.Ptr(1.6),
			TargetAnchor:   timeline.Ptr(geometry.AnchorTopCenter),
			TargetAnchorOffset: timeline.Ptr(geometry.Offset{
				Y: chipSize / 2,
			}),
		}},
		{color.RGBA{167, 139, 250, 255}, "elastic", timeline.Config{
			MotionEase:     timeline.Ptr("elastic.out"),
			MotionDuration: timeline.Ptr(1.1),
			ScalePeak:      timeline.Ptr(1.5),
			ScalePause:     timeline.Ptr(0.4),
		}},
	}

	shelfW := float64(len(defs)-1)*shelfGap + chipSize
	left := (screenW - shelfW) / 2
	for i, d := range defs {
		g.slots = append(g.slots, slot{
			rect:  geometry.RectFromLTWH(left+float64(i)*shelfGap, shelfTop, chipSize, chipSize),
			color: d.color,
			label: d.label,
			cfg:   d.cfg,
		})
	}
	return g
}

func (g *Game) Update() error {
	g.engine.Step()

	mx, my := ebiten.CursorPosition()
	at := geometry.Offset{X: float64(mx), Y: float64(my)}

	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseDown && !g.mouseWasDown {
		for i := range g.slots {
			if g.slots[i].rect.Contains(at) {
				g.launch(&g.slots[i])
				break
			}
		}
	}
	g.mouseWasDown = mouseDown

	rightDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if rightDown && !g.rightWasDown {
		for i := range g.slots {
			g.launch(&g.slots[i])
		}
	}
	g.rightWasDown = rightDown

	escDown := ebiten.IsKeyPressed(ebiten.KeyEscape)
	if escDown && !g.escWasDown {
		g.chor.CancelAll()
		g.flights = g.flights[:0]
	}
	g.escWasDown = escDown

	// Record trails and drop completed flights.
	alive := g.flights[:0]
	for _, c := range g.flights {
		if c.done {
			continue
		}
		c.trail = append(c.trail, c.center())
		if len(c.trail) > trailLen {
			c.trail = c.trail[1:]
		}
		alive = append(alive, c)
	}
	g.flights = alive

	if g.tray.flash > 0 {
		g.tray.flash--
	}
	return nil
}

// launch spawns a flying copy of the slot and triggers its flight. The
// shelf chip itself never moves; the copy is drawn until it lands or is
// cancelled.
func (g *Game) launch(s *slot) {
	c := &chip{
		home:  s.rect,
		color: s.color,
		scale: 1,
	}
	cfg := s.cfg
	cfg.OnComplete = func() {
		c.done = true
		g.caught++
		g.tray.flash = flashFrames
	}
	if g.chor.Trigger(c, g.tray, cfg) != nil {
		g.flights = append(g.flights, c)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	// Tray first so flights pass over it.
	trayColor := colorTray
	if g.tray.flash > 0 {
		t := float64(g.tray.flash) / flashFrames
		trayColor = lerpColor(colorTray, colorTrayFlash, t)
	}
	g.fillRect(screen, g.tray.rect, trayColor, 1)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tray: %d", g.caught),
		int(g.tray.rect.Left)+8, int(g.tray.rect.Top)+8)

	// Shelf.
	for i := range g.slots {
		s := &g.slots[i]
		g.fillRect(screen, s.rect, s.color, 1)
		ebitenutil.DebugPrintAt(screen, s.label,
			int(s.rect.Left)-2, int(s.rect.Bottom)+6)
	}

	// Flights: trail, then shadow, then the chip on top.
	for _, c := range g.flights {
		for i, p := range c.trail {
			alpha := float32(i+1) / float32(len(c.trail)+1)
			g.fillRect(screen, geometry.RectFromLTWH(p.X-1.5, p.Y-1.5, 3, 3),
				colorTrail, alpha*0.4)
		}

		ctr := c.center()
		half := chipSize * c.scale / 2
		rect := geometry.Rect{
			Left: ctr.X - half, Top: ctr.Y - half,
			Right: ctr.X + half, Bottom: ctr.Y + half,
		}

		if c.blur > 0.05 {
			shadow := geometry.Rect{
				Left: rect.Left - c.blur, Top: rect.Top - c.blur,
				Right: rect.Right + c.blur, Bottom: rect.Bottom + c.blur,
			}.Translate(0, c.blur*0.75)
			g.fillRect(screen, shadow, colorShadow, 1)
		}
		g.fillRect(screen, rect, c.color, 1)
	}

	ebitenutil.DebugPrintAt(screen,
		"click a chip to send it to the tray   right click: volley   esc: cancel all", 8, 8)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("in flight: %d   caught: %d", g.chor.ActiveFlights(), g.caught), 8, 24)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

// fillRect draws a solid rectangle by scaling a 1x1 white image.
func (g *Game) fillRect(dst *ebiten.Image, r geometry.Rect, c color.RGBA, alpha float32) {
	if r.IsEmpty() {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width(), r.Height())
	op.GeoM.Translate(r.Left, r.Top)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(g.white, &op)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

func main() {
	ebiten.SetWindowTitle("Swoop Showcase")
	ebiten.SetWindowSize(screenW, screenH)
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
