package player

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"

	"github.com/go-drift/swoop/pkg/errors"
)

// DefaultEase is applied when an easing identifier is not recognized:
// linear, matching the "none" identifier.
var DefaultEase ease.TweenFunc = ease.Linear

// namedEases maps the easing identifiers used in choreography configs
// onto gween easing functions. The names follow the GSAP convention:
// power1 through power4 are the quadratic through quintic curves, and
// a bare family name means its .out variant.
var namedEases = map[string]ease.TweenFunc{
	"none":   ease.Linear,
	"linear": ease.Linear,

	"power1":       ease.OutQuad,
	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inOut": ease.InOutQuad,

	"power2":       ease.OutCubic,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inOut": ease.InOutCubic,

	"power3":       ease.OutQuart,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inOut": ease.InOutQuart,

	"power4":       ease.OutQuint,
	"power4.in":    ease.InQuint,
	"power4.out":   ease.OutQuint,
	"power4.inOut": ease.InOutQuint,

	"sine":       ease.OutSine,
	"sine.in":    ease.InSine,
	"sine.out":   ease.OutSine,
	"sine.inOut": ease.InOutSine,

	"expo":       ease.OutExpo,
	"expo.in":    ease.InExpo,
	"expo.out":   ease.OutExpo,
	"expo.inOut": ease.InOutExpo,

	"circ":       ease.OutCirc,
	"circ.in":    ease.InCirc,
	"circ.out":   ease.OutCirc,
	"circ.inOut": ease.InOutCirc,

	"back":       ease.OutBack,
	"back.in":    ease.InBack,
	"back.out":   ease.OutBack,
	"back.inOut": ease.InOutBack,

	"elastic":       ease.OutElastic,
	"elastic.in":    ease.InElastic,
	"elastic.out":   ease.OutElastic,
	"elastic.inOut": ease.InOutElastic,

	"bounce":       ease.OutBounce,
	"bounce.in":    ease.InBounce,
	"bounce.out":   ease.OutBounce,
	"bounce.inOut": ease.InOutBounce,
}

// ResolveEase maps an easing identifier to a gween easing function.
//
// Recognized identifiers are "none" and "linear", the GSAP families
// (power1..power4, sine, expo, circ, back, elastic, bounce) with .in,
// .out and .inOut suffixes, and CSS cubic-bezier(x1, y1, x2, y2)
// custom curves. Easing strings are opaque to the composer, so an
// unknown identifier is a playback-time diagnostic here, never a
// composition failure: it resolves to [DefaultEase] and is reported.
func ResolveEase(name string) ease.TweenFunc {
	if fn, ok := namedEases[name]; ok {
		return fn
	}
	if fn, ok := parseCubicBezier(name); ok {
		return fn
	}
	errors.Report(&errors.SwoopError{
		Op:   "player.ResolveEase",
		Kind: errors.KindEasing,
		Err:  fmt.Errorf("unrecognized easing %q", name),
	})
	return DefaultEase
}

// EaseNames returns every named easing identifier in sorted order.
// cubic-bezier(...) curves are parsed, not named, and do not appear.
func EaseNames() []string {
	names := make([]string, 0, len(namedEases))
	for name := range namedEases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseCubicBezier parses a "cubic-bezier(x1, y1, x2, y2)" identifier.
func parseCubicBezier(name string) (ease.TweenFunc, bool) {
	if !strings.HasPrefix(name, "cubic-bezier(") || !strings.HasSuffix(name, ")") {
		return nil, false
	}
	body := strings.TrimSuffix(strings.TrimPrefix(name, "cubic-bezier("), ")")
	parts := strings.Split(body, ",")
	if len(parts) != 4 {
		return nil, false
	}
	var points [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, false
		}
		points[i] = v
	}
	return CubicBezier(points[0], points[1], points[2], points[3]), true
}
