package geometry

import "math"

// LocalTarget maps a screen-space target point into an element's local
// transform space. The element currently sits at current in local space
// and occupies source in screen space; the returned position places the
// element's center on target without reading the local-to-screen
// transform itself.
func LocalTarget(current Offset, source Rect, target Offset) Offset {
	return current.Add(target.Sub(source.Center()))
}

// ControlPoint returns the control point for a curved flight from start
// to end: the midpoint of the straight line, displaced along the unit
// perpendicular (-dy, dx) by swoop pixels. Negative swoop displaces the
// opposite way. Reports false when start and end coincide and no
// perpendicular direction exists.
func ControlPoint(start, end Offset, swoop float64) (Offset, bool) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	length := math.Hypot(dx, dy)
	if length <= epsilon {
		return Offset{}, false
	}
	return Offset{
		X: (start.X+end.X)*0.5 - dy/length*swoop,
		Y: (start.Y+end.Y)*0.5 + dx/length*swoop,
	}, true
}

// Path is the trajectory of a single flight. Control is nil for direct
// two-point motion and set for curved motion.
type Path struct {
	Start   Offset
	End     Offset
	Control *Offset
}

// NewPath builds the flight path from start to end. A swoop of zero
// requests direct motion; coincident endpoints degrade to direct motion
// because no curve direction exists.
func NewPath(start, end Offset, swoop float64) Path {
	p := Path{Start: start, End: end}
	if swoop == 0 {
		return p
	}
	if c, ok := ControlPoint(start, end, swoop); ok {
		p.Control = &c
	}
	return p
}

// Curved reports whether the path bends through a control point.
func (p Path) Curved() bool {
	return p.Control != nil
}

// At samples the path at t in [0, 1]: linear interpolation for direct
// paths, a quadratic Bezier through the control point for curved ones.
func (p Path) At(t float64) Offset {
	if p.Control == nil {
		return Offset{
			X: p.Start.X + (p.End.X-p.Start.X)*t,
			Y: p.Start.Y + (p.End.Y-p.Start.Y)*t,
		}
	}
	inv := 1 - t
	return Offset{
		X: inv*inv*p.Start.X + 2*inv*t*p.Control.X + t*t*p.End.X,
		Y: inv*inv*p.Start.Y + 2*inv*t*p.Control.Y + t*t*p.End.Y,
	}
}
