package timeline

import "github.com/go-drift/swoop/pkg/geometry"

// Compose builds the schedule for a flight from start to target in the
// element's local space.
//
// The motion track is a single phase at offset zero. The scale track,
// when enabled, adds an immediate grab-scale state plus scale-up and
// scale-down phases whose offsets are absolute from schedule start:
// scale-down begins at ScaleStartDelay + ScaleUpDuration + ScalePause
// no matter how long the motion runs, so the two tracks overlap freely.
// The shadow track mirrors the scale phases exactly, targeting
// BaseShadowBlur*ScalePeak*0.5 at the apex and zero at the end.
//
// With scale disabled the element still receives the grab-scale state,
// keeping the grabbed affordance without a scale animation.
func Compose(cfg ResolvedConfig, start, target geometry.Offset) *Schedule {
	path := geometry.NewPath(start, target, cfg.SwoopAmount)

	s := &Schedule{OnComplete: cfg.OnComplete}
	s.Initial = append(s.Initial, InitialState{
		Property: PropertyScale,
		Value:    cfg.GrabScale,
	})
	s.Phases = append(s.Phases, Phase{
		Track:       TrackMotion,
		Property:    PropertyPosition,
		From:        0,
		To:          1,
		Path:        &path,
		StartOffset: 0,
		Duration:    cfg.MotionDuration,
		Easing:      cfg.MotionEase,
	})
	if !cfg.Scale {
		return s
	}

	scaleUp := Phase{
		Track:       TrackScale,
		Property:    PropertyScale,
		From:        cfg.GrabScale,
		To:          cfg.ScalePeak,
		StartOffset: cfg.ScaleStartDelay,
		Duration:    cfg.ScaleUpDuration,
		Easing:      cfg.ScaleUpEase,
	}
	scaleDown := Phase{
		Track:       TrackScale,
		Property:    PropertyScale,
		From:        cfg.ScalePeak,
		To:          cfg.ScaleTarget,
		StartOffset: cfg.ScaleStartDelay + cfg.ScaleUpDuration + cfg.ScalePause,
		Duration:    cfg.ScaleDownDuration,
		Easing:      cfg.ScaleDownEase,
	}
	s.Phases = append(s.Phases, scaleUp, scaleDown)
	if !cfg.EnableShadow {
		return s
	}

	initialBlur := cfg.BaseShadowBlur * cfg.GrabScale
	peakBlur := cfg.BaseShadowBlur * cfg.ScalePeak * 0.5
	s.Initial = append(s.Initial, InitialState{
		Property: PropertyShadowBlur,
		Value:    initialBlur,
	})
	// Shadow phases share their paired scale phase's timing and easing;
	// the blur always clears to zero regardless of the final scale.
	s.Phases = append(s.Phases,
		Phase{
			Track:       TrackShadow,
			Property:    PropertyShadowBlur,
			From:        initialBlur,
			To:          peakBlur,
			StartOffset: scaleUp.StartOffset,
			Duration:    scaleUp.Duration,
			Easing:      scaleUp.Easing,
		},
		Phase{
			Track:       TrackShadow,
			Property:    PropertyShadowBlur,
			From:        peakBlur,
			To:          0,
			StartOffset: scaleDown.StartOffset,
			Duration:    scaleDown.Duration,
			Easing:      scaleDown.Easing,
		},
	)
	return s
}
