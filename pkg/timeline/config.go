package timeline

import (
	"math"
	"time"

	"github.com/go-drift/swoop/pkg/geometry"
)

// Config declares a flight choreography. Every field is optional: nil
// fields take their documented default when the config is resolved, so
// an explicit zero (a zero swoop, a disabled scale track) survives the
// merge instead of being mistaken for an absent value.
//
// Durations are float seconds to match the authoring format; [Config.Resolve]
// converts them to time.Duration.
type Config struct {
	// MotionDuration is the motion track duration in seconds. Default 0.45.
	MotionDuration *float64 `yaml:"motionDuration,omitempty"`

	// MotionEase is the motion track easing identifier. Easing strings
	// are opaque to the composer and interpreted by the execution
	// engine. Default "power3.out".
	MotionEase *string `yaml:"motionEase,omitempty"`

	// SwoopAmount is the perpendicular curve offset in pixels; zero
	// requests a straight flight. Default -100.
	SwoopAmount *float64 `yaml:"swoopAmount,omitempty"`

	// TargetAnchor selects which point of the target rectangle to aim
	// at. Default center.
	TargetAnchor *geometry.Anchor `yaml:"targetAnchor,omitempty"`

	// TargetAnchorOffset is a pixel offset applied after anchor
	// resolution. Default (0, 0).
	TargetAnchorOffset *geometry.Offset `yaml:"targetAnchorOffset,omitempty"`

	// Scale enables the scale and shadow tracks. Default true.
	Scale *bool `yaml:"scale,omitempty"`

	// GrabScale is the initial "held" scale value. Default 1.2.
	GrabScale *float64 `yaml:"grabScale,omitempty"`

	// ScaleStartDelay is the absolute start offset of scale-up in
	// seconds, measured from schedule start. Default 0.
	ScaleStartDelay *float64 `yaml:"scaleStartDelay,omitempty"`

	// ScaleUpDuration is the scale-up duration in seconds. Default 0.2.
	ScaleUpDuration *float64 `yaml:"scaleUpDuration,omitempty"`

	// ScaleUpEase is the scale-up easing identifier. Default "power3.in".
	ScaleUpEase *string `yaml:"scaleUpEase,omitempty"`

	// ScalePeak is the scale value at the apex. Default 2.5.
	ScalePeak *float64 `yaml:"scalePeak,omitempty"`

	// ScalePause is the gap in seconds between scale-up end and
	// scale-down start. Default 0.15.
	ScalePause *float64 `yaml:"scalePause,omitempty"`

	// ScaleDownDuration is the scale-down duration in seconds. Default 0.1.
	ScaleDownDuration *float64 `yaml:"scaleDownDuration,omitempty"`

	// ScaleDownEase is the scale-down easing identifier. Default "none".
	ScaleDownEase *string `yaml:"scaleDownEase,omitempty"`

	// ScaleTarget is the final scale value. Default 1.0.
	ScaleTarget *float64 `yaml:"scaleTarget,omitempty"`

	// EnableShadow enables the derived shadow track. Default true.
	EnableShadow *bool `yaml:"enableShadow,omitempty"`

	// BaseShadowBlur is the blur unit scale factor. Default 4.
	BaseShadowBlur *float64 `yaml:"baseShadowBlur,omitempty"`

	// OnStart runs synchronously when the choreography is triggered,
	// before the schedule reaches the execution engine. Default no-op.
	OnStart func() `yaml:"-"`

	// OnComplete runs exactly once when the schedule finishes
	// naturally. Cancellation does not fire it. Default no-op.
	OnComplete func() `yaml:"-"`
}

// Ptr returns a pointer to v, for building Config literals in place.
func Ptr[T any](v T) *T {
	return &v
}

// ResolvedConfig is a Config with every field present and durations
// converted to time.Duration. Produced by [Config.Resolve].
type ResolvedConfig struct {
	MotionDuration     time.Duration
	MotionEase         string
	SwoopAmount        float64
	TargetAnchor       geometry.Anchor
	TargetAnchorOffset geometry.Offset
	Scale              bool
	GrabScale          float64
	ScaleStartDelay    time.Duration
	ScaleUpDuration    time.Duration
	ScaleUpEase        string
	ScalePeak          float64
	ScalePause         time.Duration
	ScaleDownDuration  time.Duration
	ScaleDownEase      string
	ScaleTarget        float64
	EnableShadow       bool
	BaseShadowBlur     float64
	OnStart            func()
	OnComplete         func()
}

// Resolve applies defaults to every unset field. The merge is pure: the
// receiver is not modified and carries no state between calls. OnStart
// and OnComplete resolve to non-nil no-op functions so callers never
// nil-check them.
func (c Config) Resolve() ResolvedConfig {
	out := ResolvedConfig{
		MotionDuration:     seconds(0.45),
		MotionEase:         "power3.out",
		SwoopAmount:        -100,
		TargetAnchor:       geometry.AnchorCenter,
		TargetAnchorOffset: geometry.Offset{},
		Scale:              true,
		GrabScale:          1.2,
		ScaleStartDelay:    0,
		ScaleUpDuration:    seconds(0.2),
		ScaleUpEase:        "power3.in",
		ScalePeak:          2.5,
		ScalePause:         seconds(0.15),
		ScaleDownDuration:  seconds(0.1),
		ScaleDownEase:      "none",
		ScaleTarget:        1.0,
		EnableShadow:       true,
		BaseShadowBlur:     4,
		OnStart:            func() {},
		OnComplete:         func() {},
	}
	if c.MotionDuration != nil {
		out.MotionDuration = seconds(*c.MotionDuration)
	}
	if c.MotionEase != nil {
		out.MotionEase = *c.MotionEase
	}
	if c.SwoopAmount != nil {
		out.SwoopAmount = *c.SwoopAmount
	}
	if c.TargetAnchor != nil {
		out.TargetAnchor = *c.TargetAnchor
	}
	if c.TargetAnchorOffset != nil {
		out.TargetAnchorOffset = *c.TargetAnchorOffset
	}
	if c.Scale != nil {
		out.Scale = *c.Scale
	}
	if c.GrabScale != nil {
		out.GrabScale = *c.GrabScale
	}
	if c.ScaleStartDelay != nil {
		out.ScaleStartDelay = seconds(*c.ScaleStartDelay)
	}
	if c.ScaleUpDuration != nil {
		out.ScaleUpDuration = seconds(*c.ScaleUpDuration)
	}
	if c.ScaleUpEase != nil {
		out.ScaleUpEase = *c.ScaleUpEase
	}
	if c.ScalePeak != nil {
		out.ScalePeak = *c.ScalePeak
	}
	if c.ScalePause != nil {
		out.ScalePause = seconds(*c.ScalePause)
	}
	if c.ScaleDownDuration != nil {
		out.ScaleDownDuration = seconds(*c.ScaleDownDuration)
	}
	if c.ScaleDownEase != nil {
		out.ScaleDownEase = *c.ScaleDownEase
	}
	if c.ScaleTarget != nil {
		out.ScaleTarget = *c.ScaleTarget
	}
	if c.EnableShadow != nil {
		out.EnableShadow = *c.EnableShadow
	}
	if c.BaseShadowBlur != nil {
		out.BaseShadowBlur = *c.BaseShadowBlur
	}
	if c.OnStart != nil {
		out.OnStart = c.OnStart
	}
	if c.OnComplete != nil {
		out.OnComplete = c.OnComplete
	}
	return out
}

// seconds converts a float seconds value to a time.Duration, rounding
// rather than truncating so values like 0.29 survive the conversion.
func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
