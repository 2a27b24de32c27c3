package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/swoop/pkg/geometry"
)

func testFlight() Flight {
	source := geometry.RectFromLTWH(40, 220, 60, 60)
	target := geometry.RectFromLTWH(520, 60, 140, 90)
	landing := target.Center()
	return Flight{
		Source:  source,
		Target:  target,
		Landing: landing,
		Path:    geometry.NewPath(source.Center(), landing, -100),
	}
}

func TestRender_OutputSize(t *testing.T) {
	img := Render(testFlight(), Options{Width: 320, Height: 200, Scale: 2, Margin: 20})
	if got := img.Bounds().Dx(); got != 320 {
		t.Errorf("expected width 320, got %d", got)
	}
	if got := img.Bounds().Dy(); got != 200 {
		t.Errorf("expected height 200, got %d", got)
	}
}

func TestRender_ZeroOptionsUseDefaults(t *testing.T) {
	img := Render(testFlight(), Options{})
	def := DefaultOptions()
	if img.Bounds().Dx() != def.Width || img.Bounds().Dy() != def.Height {
		t.Errorf("expected default %dx%d, got %v", def.Width, def.Height, img.Bounds())
	}
}

func TestRender_DrawsGeometry(t *testing.T) {
	img := Render(testFlight(), Options{Width: 200, Height: 120, Scale: 1, Margin: 20})

	if got := img.RGBAAt(0, 0); got != colorBackground {
		t.Errorf("expected background at the corner, got %v", got)
	}

	drawn := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != colorBackground {
				drawn++
			}
		}
	}
	if drawn < 100 {
		t.Errorf("expected drawn geometry, found %d non-background pixels", drawn)
	}
}

func TestRender_StraightPath(t *testing.T) {
	f := testFlight()
	f.Path = geometry.NewPath(f.Source.Center(), f.Landing, 0)
	img := Render(f, Options{Width: 200, Height: 120, Scale: 1})
	if img == nil {
		t.Fatal("expected an image")
	}
}

func TestEncodeDecode(t *testing.T) {
	img := Render(testFlight(), Options{Width: 160, Height: 100, Scale: 1, Margin: 10})
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding rendered PNG failed: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}

func TestSaveFile(t *testing.T) {
	img := Render(testFlight(), Options{Width: 120, Height: 80, Scale: 1, Margin: 10})
	path := filepath.Join(t.TempDir(), "flight.png")

	if err := SaveFile(path, img); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected file written: %v", err)
	}
	defer file.Close()
	if _, err := png.Decode(file); err != nil {
		t.Errorf("expected a decodable PNG, got %v", err)
	}
}

func TestWorldBounds_IncludesEverything(t *testing.T) {
	f := testFlight()
	b := worldBounds(f, 0)
	for _, p := range []geometry.Offset{
		{X: f.Source.Left, Y: f.Source.Top},
		{X: f.Target.Right, Y: f.Target.Bottom},
		f.Landing,
		f.Path.At(0.5),
	} {
		if p.X < b.Left || p.X > b.Right || p.Y < b.Top || p.Y > b.Bottom {
			t.Errorf("expected %v inside world bounds %v", p, b)
		}
	}
}
