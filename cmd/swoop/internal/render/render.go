// Package render draws flight previews as raster images: the source
// and target rectangles, the flight path, and the landing point, laid
// out in their shared screen space.
//
// Rendering is supersampled and downsampled with Catmull-Rom
// interpolation for smooth curves without a vector dependency.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/go-drift/swoop/pkg/geometry"
)

// Flight is the screen-space geometry of one preview.
type Flight struct {
	// Source is the element's bounding box.
	Source geometry.Rect
	// Target is the landing region.
	Target geometry.Rect
	// Landing is the resolved landing point.
	Landing geometry.Offset
	// Path is the flight path from the source center to the landing
	// point.
	Path geometry.Path
}

// Options configures preview rendering.
type Options struct {
	// Width and Height are the output size in pixels.
	Width  int
	Height int
	// Margin is world-space padding around the drawn geometry.
	Margin float64
	// Scale is the supersampling factor; 1 disables supersampling.
	Scale int
}

// DefaultOptions returns the default preview rendering options:
// 800x500 output with 2x supersampling.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 500, Margin: 40, Scale: 2}
}

// Preview palette.
var (
	colorBackground = color.RGBA{24, 26, 32, 255}
	colorSource     = color.RGBA{96, 165, 250, 255}
	colorSourceFill = color.RGBA{43, 58, 82, 255}
	colorTarget     = color.RGBA{52, 211, 153, 255}
	colorTargetFill = color.RGBA{32, 52, 46, 255}
	colorPath       = color.RGBA{251, 191, 36, 255}
	colorControl    = color.RGBA{113, 119, 132, 255}
	colorLanding    = color.RGBA{248, 113, 113, 255}
	colorStart      = color.RGBA{237, 242, 247, 255}
)

// pathSamples is the number of segments the path polyline is drawn
// with.
const pathSamples = 96

// Render draws the flight into a new image of opts.Width by
// opts.Height pixels. Zero or negative size and scale values fall back
// to the defaults.
func Render(f Flight, opts Options) *image.RGBA {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Scale < 1 {
		opts.Scale = def.Scale
	}
	if opts.Margin < 0 {
		opts.Margin = def.Margin
	}

	large := image.NewRGBA(image.Rect(0, 0, opts.Width*opts.Scale, opts.Height*opts.Scale))
	c := newCanvas(large, f, opts)
	c.fill(colorBackground)

	c.fillRect(f.Target, colorTargetFill)
	c.strokeRect(f.Target, colorTarget)
	c.fillRect(f.Source, colorSourceFill)
	c.strokeRect(f.Source, colorSource)

	if f.Path.Curved() {
		c.dot(*f.Path.Control, 2.5, colorControl)
	}
	c.polyline(f.Path, colorPath)
	c.dot(f.Path.Start, 4, colorStart)
	c.cross(f.Landing, 7, colorLanding)

	if opts.Scale == 1 {
		return large
	}
	final := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)
	return final
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SaveFile writes img to path as PNG.
func SaveFile(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// canvas maps world-space flight geometry onto a supersampled image
// with a uniform, centered fit.
type canvas struct {
	img       *image.RGBA
	world     geometry.Rect
	scale     float64
	offX      float64
	offY      float64
	lineWidth float64
}

func newCanvas(img *image.RGBA, f Flight, opts Options) *canvas {
	world := worldBounds(f, opts.Margin)
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	scale := math.Min(w/world.Width(), h/world.Height())
	return &canvas{
		img:       img,
		world:     world,
		scale:     scale,
		offX:      (w - world.Width()*scale) * 0.5,
		offY:      (h - world.Height()*scale) * 0.5,
		lineWidth: 1.5 * float64(opts.Scale),
	}
}

// worldBounds is the bounding box of everything the preview draws,
// expanded by margin.
func worldBounds(f Flight, margin float64) geometry.Rect {
	b := f.Source
	b = unionRect(b, f.Target)
	b = includePoint(b, f.Landing)
	for i := 0; i <= pathSamples; i++ {
		b = includePoint(b, f.Path.At(float64(i)/pathSamples))
	}
	return geometry.Rect{
		Left:   b.Left - margin,
		Top:    b.Top - margin,
		Right:  b.Right + margin,
		Bottom: b.Bottom + margin,
	}
}

func unionRect(a, b geometry.Rect) geometry.Rect {
	return geometry.Rect{
		Left:   math.Min(a.Left, b.Left),
		Top:    math.Min(a.Top, b.Top),
		Right:  math.Max(a.Right, b.Right),
		Bottom: math.Max(a.Bottom, b.Bottom),
	}
}

func includePoint(r geometry.Rect, p geometry.Offset) geometry.Rect {
	return geometry.Rect{
		Left:   math.Min(r.Left, p.X),
		Top:    math.Min(r.Top, p.Y),
		Right:  math.Max(r.Right, p.X),
		Bottom: math.Max(r.Bottom, p.Y),
	}
}

// point maps a world-space point to pixel coordinates.
func (c *canvas) point(p geometry.Offset) (float64, float64) {
	return c.offX + (p.X-c.world.Left)*c.scale, c.offY + (p.Y-c.world.Top)*c.scale
}

func (c *canvas) fill(col color.RGBA) {
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.img.SetRGBA(x, y, col)
		}
	}
}

func (c *canvas) fillRect(r geometry.Rect, col color.RGBA) {
	x1, y1 := c.point(geometry.Offset{X: r.Left, Y: r.Top})
	x2, y2 := c.point(geometry.Offset{X: r.Right, Y: r.Bottom})
	for y := int(y1); y <= int(y2); y++ {
		for x := int(x1); x <= int(x2); x++ {
			c.img.Set(x, y, col)
		}
	}
}

func (c *canvas) strokeRect(r geometry.Rect, col color.RGBA) {
	tl := geometry.Offset{X: r.Left, Y: r.Top}
	tr := geometry.Offset{X: r.Right, Y: r.Top}
	bl := geometry.Offset{X: r.Left, Y: r.Bottom}
	br := geometry.Offset{X: r.Right, Y: r.Bottom}
	c.line(tl, tr, col)
	c.line(tr, br, col)
	c.line(br, bl, col)
	c.line(bl, tl, col)
}

// line draws a thick line between two world-space points.
func (c *canvas) line(from, to geometry.Offset, col color.RGBA) {
	x1, y1 := c.point(from)
	x2, y2 := c.point(to)
	c.pixelLine(x1, y1, x2, y2, col)
}

// polyline draws the path as connected segments sampled along its
// curve.
func (c *canvas) polyline(p geometry.Path, col color.RGBA) {
	prev := p.At(0)
	for i := 1; i <= pathSamples; i++ {
		next := p.At(float64(i) / pathSamples)
		c.line(prev, next, col)
		prev = next
	}
}

// dot draws a filled circle of radius r world-independent pixels,
// scaled by the supersampling factor.
func (c *canvas) dot(p geometry.Offset, r float64, col color.RGBA) {
	cx, cy := c.point(p)
	radius := r * c.lineWidth / 1.5
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				c.img.Set(int(cx+dx), int(cy+dy), col)
			}
		}
	}
}

// cross draws an upright cross marking a point.
func (c *canvas) cross(p geometry.Offset, r float64, col color.RGBA) {
	cx, cy := c.point(p)
	arm := r * c.lineWidth / 1.5
	c.pixelLine(cx-arm, cy, cx+arm, cy, col)
	c.pixelLine(cx, cy-arm, cx, cy+arm, col)
}

// pixelLine stamps a thick line in pixel coordinates along the segment
// and its perpendicular.
func (c *canvas) pixelLine(x1, y1, x2, y2 float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	dist := math.Hypot(dx, dy)
	halfThick := c.lineWidth / 2
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				c.img.Set(int(x1+tx), int(y1+ty), col)
			}
		}
		return
	}

	steps := math.Max(math.Abs(dx), math.Abs(dy))
	perpX := -dy / dist
	perpY := dx / dist
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px := x1 + dx*t
		py := y1 + dy*t
		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			c.img.Set(int(px+perpX*offset), int(py+perpY*offset), col)
		}
	}
}
