// Package timeline turns a flat choreography configuration into a
// multi-track, time-offset schedule of animation phases.
//
// A schedule has up to three tracks. The motion track moves the element
// along its flight path. The scale track pops the element from its
// grabbed scale to a peak and back down, on absolute offsets that never
// depend on the motion duration. The shadow track is derived from the
// scale track and cannot be scheduled independently.
package timeline

import (
	"time"

	"github.com/go-drift/swoop/pkg/geometry"
)

// Track identifies the independent timed sequence a phase belongs to.
type Track int

const (
	// TrackMotion carries the element's position along its flight path.
	TrackMotion Track = iota
	// TrackScale carries the element's scale pop.
	TrackScale
	// TrackShadow carries the shadow blur derived from the scale track.
	TrackShadow
)

func (t Track) String() string {
	switch t {
	case TrackMotion:
		return "motion"
	case TrackScale:
		return "scale"
	case TrackShadow:
		return "shadow"
	default:
		return "unknown"
	}
}

// Property identifies the surface property a phase animates.
type Property int

const (
	// PropertyPosition is the element's position in local space.
	PropertyPosition Property = iota
	// PropertyScale is the element's uniform scale factor.
	PropertyScale
	// PropertyShadowBlur is the element's shadow blur radius in pixels.
	PropertyShadowBlur
)

func (p Property) String() string {
	switch p {
	case PropertyPosition:
		return "position"
	case PropertyScale:
		return "scale"
	case PropertyShadowBlur:
		return "shadow-blur"
	default:
		return "unknown"
	}
}

// Phase is one timed property change within a schedule.
//
// StartOffset is absolute from schedule start, never relative to
// another phase or track. For the motion phase From and To span the
// normalized progress 0 to 1 along Path; for scalar phases they are the
// property values themselves.
type Phase struct {
	Track       Track
	Property    Property
	From        float64
	To          float64
	Path        *geometry.Path
	StartOffset time.Duration
	Duration    time.Duration
	Easing      string
}

// End returns the absolute time at which the phase finishes.
func (p Phase) End() time.Duration {
	return p.StartOffset + p.Duration
}

// InitialState is a zero-duration property value applied before
// playback begins. It is a state change, not a timed phase.
type InitialState struct {
	Property Property
	Value    float64
}

// Surface receives property values as an execution engine plays a
// schedule. Sources that implement Surface are driven directly by the
// bundled player; other engines may translate phases onto their own
// animation primitives instead.
type Surface interface {
	SetPosition(geometry.Offset)
	SetScale(float64)
	SetShadowBlur(float64)
}

// Schedule is a composed choreography ready for an execution engine.
type Schedule struct {
	// Phases in track order: motion, then scale, then shadow.
	Phases []Phase

	// Initial holds zero-duration states applied before the first
	// frame, in emission order.
	Initial []InitialState

	// Surface is the subject the engine drives. Nil when the source
	// does not expose one; engines skip property application then.
	Surface Surface

	// OnComplete fires exactly once when every phase has finished.
	// Cancellation does not fire it. Never nil on a composed schedule.
	OnComplete func()
}

// Duration returns the total schedule length: the latest phase end
// across all tracks.
func (s *Schedule) Duration() time.Duration {
	var d time.Duration
	for _, p := range s.Phases {
		if end := p.End(); end > d {
			d = end
		}
	}
	return d
}

// PhasesFor returns the phases belonging to one track, in order.
func (s *Schedule) PhasesFor(track Track) []Phase {
	var out []Phase
	for _, p := range s.Phases {
		if p.Track == track {
			out = append(out, p)
		}
	}
	return out
}
