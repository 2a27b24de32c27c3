package geometry

// Anchor names one of nine positions on a rectangle: the center, the
// four corners, and the four edge midpoints.
type Anchor string

const (
	// AnchorCenter is the rectangle's center point.
	AnchorCenter Anchor = "center"

	// AnchorTopLeft is the top-left corner.
	AnchorTopLeft Anchor = "top-left"

	// AnchorTopCenter is the midpoint of the top edge.
	AnchorTopCenter Anchor = "top-center"

	// AnchorTopRight is the top-right corner.
	AnchorTopRight Anchor = "top-right"

	// AnchorLeftCenter is the midpoint of the left edge.
	AnchorLeftCenter Anchor = "left-center"

	// AnchorRightCenter is the midpoint of the right edge.
	AnchorRightCenter Anchor = "right-center"

	// AnchorBottomLeft is the bottom-left corner.
	AnchorBottomLeft Anchor = "bottom-left"

	// AnchorBottomCenter is the midpoint of the bottom edge.
	AnchorBottomCenter Anchor = "bottom-center"

	// AnchorBottomRight is the bottom-right corner.
	AnchorBottomRight Anchor = "bottom-right"
)

// Resolve returns the anchor's position on r. Unrecognized anchor
// identifiers resolve to the center.
func (a Anchor) Resolve(r Rect) Offset {
	switch a {
	case AnchorTopLeft:
		return Offset{X: r.Left, Y: r.Top}
	case AnchorTopCenter:
		return Offset{X: (r.Left + r.Right) * 0.5, Y: r.Top}
	case AnchorTopRight:
		return Offset{X: r.Right, Y: r.Top}
	case AnchorLeftCenter:
		return Offset{X: r.Left, Y: (r.Top + r.Bottom) * 0.5}
	case AnchorRightCenter:
		return Offset{X: r.Right, Y: (r.Top + r.Bottom) * 0.5}
	case AnchorBottomLeft:
		return Offset{X: r.Left, Y: r.Bottom}
	case AnchorBottomCenter:
		return Offset{X: (r.Left + r.Right) * 0.5, Y: r.Bottom}
	case AnchorBottomRight:
		return Offset{X: r.Right, Y: r.Bottom}
	default:
		// AnchorCenter and anything unrecognized.
		return r.Center()
	}
}
