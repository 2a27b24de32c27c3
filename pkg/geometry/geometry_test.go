package geometry

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)

	if r.Left != 10 || r.Top != 20 || r.Right != 110 || r.Bottom != 70 {
		t.Errorf("unexpected rect: %+v", r)
	}
	if r.Width() != 100 {
		t.Errorf("expected width 100, got %v", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("expected height 50, got %v", r.Height())
	}
}

func TestRect_Center(t *testing.T) {
	r := RectFromLTWH(0, 0, 200, 100)
	c := r.Center()

	if !floatEqual(c.X, 100) || !floatEqual(c.Y, 50) {
		t.Errorf("expected center (100, 50), got %+v", c)
	}
}

func TestRect_Contains(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)

	if !r.Contains(Offset{X: 5, Y: 5}) {
		t.Error("expected interior point to be contained")
	}
	if r.Contains(Offset{X: 10, Y: 5}) {
		t.Error("expected right edge to be excluded")
	}
	if r.Contains(Offset{X: -1, Y: 5}) {
		t.Error("expected outside point to be excluded")
	}
}

func TestRect_IsEmpty(t *testing.T) {
	if RectFromLTWH(0, 0, 10, 10).IsEmpty() {
		t.Error("expected non-empty rect")
	}
	if !RectFromLTWH(0, 0, 0, 10).IsEmpty() {
		t.Error("expected zero-width rect to be empty")
	}
	if !(Rect{Left: 10, Top: 0, Right: 0, Bottom: 10}).IsEmpty() {
		t.Error("expected inverted rect to be empty")
	}
}

func TestOffset_Ops(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: 1, Y: 2}

	if got := a.Add(b); got != (Offset{X: 4, Y: 6}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != (Offset{X: 2, Y: 2}) {
		t.Errorf("Sub: got %+v", got)
	}
	if d := (Offset{}).Distance(a); !floatEqual(d, 5) {
		t.Errorf("Distance: expected 5, got %v", d)
	}
}

func TestAnchor_Resolve(t *testing.T) {
	r := RectFromLTWH(100, 200, 40, 20)

	tests := []struct {
		anchor Anchor
		want   Offset
	}{
		{AnchorCenter, Offset{X: 120, Y: 210}},
		{AnchorTopLeft, Offset{X: 100, Y: 200}},
		{AnchorTopCenter, Offset{X: 120, Y: 200}},
		{AnchorTopRight, Offset{X: 140, Y: 200}},
		{AnchorLeftCenter, Offset{X: 100, Y: 210}},
		{AnchorRightCenter, Offset{X: 140, Y: 210}},
		{AnchorBottomLeft, Offset{X: 100, Y: 220}},
		{AnchorBottomCenter, Offset{X: 120, Y: 220}},
		{AnchorBottomRight, Offset{X: 140, Y: 220}},
	}

	for _, tt := range tests {
		got := tt.anchor.Resolve(r)
		if !floatEqual(got.X, tt.want.X) || !floatEqual(got.Y, tt.want.Y) {
			t.Errorf("%s: expected %+v, got %+v", tt.anchor, tt.want, got)
		}
	}
}

func TestAnchor_ResolveUnknown(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 100)

	// Unrecognized identifiers fall back to center rather than erroring.
	got := Anchor("upper-middle-ish").Resolve(r)
	if !floatEqual(got.X, 50) || !floatEqual(got.Y, 50) {
		t.Errorf("expected center fallback (50, 50), got %+v", got)
	}
}
