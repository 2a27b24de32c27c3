package player

import (
	"math"

	"github.com/tanema/gween/ease"
)

// CubicBezier returns an easing function matching CSS
// cubic-bezier(x1, y1, x2, y2): a curve from (0,0) to (1,1) shaped by
// the two control points. The result plugs directly into gween tweens.
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	curve := bezierCurve(x1, y1, x2, y2)
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(curve(float64(t/d)))
	}
}

// bezierCurve solves the parametric curve for normalized progress:
// given progress t it finds the parameter u where the curve's x equals
// t, then returns the curve's y there.
func bezierCurve(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most inputs.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection guarantees a stable solution in [0,1] when Newton
		// stalls on a flat derivative.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
