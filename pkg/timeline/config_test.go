package timeline

import (
	"testing"
	"time"

	"github.com/go-drift/swoop/pkg/geometry"
)

func TestConfig_ResolveDefaults(t *testing.T) {
	cfg := Config{}.Resolve()

	if cfg.MotionDuration != 450*time.Millisecond {
		t.Errorf("MotionDuration = %v, want 450ms", cfg.MotionDuration)
	}
	if cfg.MotionEase != "power3.out" {
		t.Errorf("MotionEase = %q, want %q", cfg.MotionEase, "power3.out")
	}
	if cfg.SwoopAmount != -100 {
		t.Errorf("SwoopAmount = %v, want -100", cfg.SwoopAmount)
	}
	if cfg.TargetAnchor != geometry.AnchorCenter {
		t.Errorf("TargetAnchor = %q, want center", cfg.TargetAnchor)
	}
	if cfg.TargetAnchorOffset != (geometry.Offset{}) {
		t.Errorf("TargetAnchorOffset = %+v, want zero", cfg.TargetAnchorOffset)
	}
	if !cfg.Scale {
		t.Error("Scale should default to true")
	}
	if cfg.GrabScale != 1.2 {
		t.Errorf("GrabScale = %v, want 1.2", cfg.GrabScale)
	}
	if cfg.ScaleStartDelay != 0 {
		t.Errorf("ScaleStartDelay = %v, want 0", cfg.ScaleStartDelay)
	}
	if cfg.ScaleUpDuration != 200*time.Millisecond {
		t.Errorf("ScaleUpDuration = %v, want 200ms", cfg.ScaleUpDuration)
	}
	if cfg.ScaleUpEase != "power3.in" {
		t.Errorf("ScaleUpEase = %q, want %q", cfg.ScaleUpEase, "power3.in")
	}
	if cfg.ScalePeak != 2.5 {
		t.Errorf("ScalePeak = %v, want 2.5", cfg.ScalePeak)
	}
	if cfg.ScalePause != 150*time.Millisecond {
		t.Errorf("ScalePause = %v, want 150ms", cfg.ScalePause)
	}
	if cfg.ScaleDownDuration != 100*time.Millisecond {
		t.Errorf("ScaleDownDuration = %v, want 100ms", cfg.ScaleDownDuration)
	}
	if cfg.ScaleDownEase != "none" {
		t.Errorf("ScaleDownEase = %q, want %q", cfg.ScaleDownEase, "none")
	}
	if cfg.ScaleTarget != 1.0 {
		t.Errorf("ScaleTarget = %v, want 1.0", cfg.ScaleTarget)
	}
	if !cfg.EnableShadow {
		t.Error("EnableShadow should default to true")
	}
	if cfg.BaseShadowBlur != 4 {
		t.Errorf("BaseShadowBlur = %v, want 4", cfg.BaseShadowBlur)
	}
	if cfg.OnStart == nil || cfg.OnComplete == nil {
		t.Error("callbacks should resolve to non-nil no-ops")
	}
}

func TestConfig_ResolveKeepsExplicitZero(t *testing.T) {
	cfg := Config{
		SwoopAmount:     Ptr(0.0),
		Scale:           Ptr(false),
		EnableShadow:    Ptr(false),
		ScaleStartDelay: Ptr(0.0),
	}.Resolve()

	if cfg.SwoopAmount != 0 {
		t.Errorf("explicit zero SwoopAmount lost: got %v", cfg.SwoopAmount)
	}
	if cfg.Scale {
		t.Error("explicit Scale=false lost")
	}
	if cfg.EnableShadow {
		t.Error("explicit EnableShadow=false lost")
	}
	if cfg.ScaleStartDelay != 0 {
		t.Errorf("explicit zero ScaleStartDelay lost: got %v", cfg.ScaleStartDelay)
	}
}

func TestConfig_ResolveOverrides(t *testing.T) {
	anchor := geometry.AnchorBottomRight
	cfg := Config{
		MotionDuration:     Ptr(3.0),
		MotionEase:         Ptr("power1.inOut"),
		TargetAnchor:       &anchor,
		TargetAnchorOffset: &geometry.Offset{X: -8, Y: 4},
		ScalePeak:          Ptr(1.6),
	}.Resolve()

	if cfg.MotionDuration != 3*time.Second {
		t.Errorf("MotionDuration = %v, want 3s", cfg.MotionDuration)
	}
	if cfg.MotionEase != "power1.inOut" {
		t.Errorf("MotionEase = %q", cfg.MotionEase)
	}
	if cfg.TargetAnchor != geometry.AnchorBottomRight {
		t.Errorf("TargetAnchor = %q", cfg.TargetAnchor)
	}
	if cfg.TargetAnchorOffset != (geometry.Offset{X: -8, Y: 4}) {
		t.Errorf("TargetAnchorOffset = %+v", cfg.TargetAnchorOffset)
	}
	if cfg.ScalePeak != 1.6 {
		t.Errorf("ScalePeak = %v", cfg.ScalePeak)
	}
	// Fields left unset still take defaults.
	if cfg.GrabScale != 1.2 {
		t.Errorf("GrabScale = %v, want default 1.2", cfg.GrabScale)
	}
}

func TestSeconds_Rounds(t *testing.T) {
	// 0.29 * 1e9 lands just below the integer boundary in float64;
	// truncation would lose a nanosecond.
	if got := seconds(0.29); got != 290*time.Millisecond {
		t.Errorf("seconds(0.29) = %v, want 290ms", got)
	}
	if got := seconds(0.45); got != 450*time.Millisecond {
		t.Errorf("seconds(0.45) = %v, want 450ms", got)
	}
	if got := seconds(0); got != 0 {
		t.Errorf("seconds(0) = %v, want 0", got)
	}
}

func TestConfig_ResolveCallbacks(t *testing.T) {
	started := false
	cfg := Config{OnStart: func() { started = true }}.Resolve()

	cfg.OnStart()
	if !started {
		t.Error("expected configured OnStart to run")
	}
	// The default OnComplete must be callable.
	cfg.OnComplete()
}
