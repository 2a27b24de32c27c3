// Package choreo is the entry point for flight choreography: it
// measures a source element and a target region, resolves the landing
// point, composes the schedule, and hands it to an execution engine
// while tracking the returned handle for cancellation.
//
// A [Choreographer] owns one [Registry]; independent Choreographer
// instances share no state. The package performs no playback itself:
// any [Engine] implementation can drive the composed schedules, with
// the bundled player package as the reference engine.
package choreo

import (
	stderrors "errors"

	"github.com/go-drift/swoop/pkg/errors"
	"github.com/go-drift/swoop/pkg/geometry"
	"github.com/go-drift/swoop/pkg/timeline"
)

// Source is the element being choreographed. Bounds is its screen-space
// bounding box, read once per trigger; Position is its current position
// in its own local transform space.
//
// A Source that also implements [timeline.Surface] is bound to the
// schedule so the engine can drive its properties directly.
type Source interface {
	Bounds() geometry.Rect
	Position() geometry.Offset
}

// Target is the region a flight lands in.
type Target interface {
	Bounds() geometry.Rect
}

// Handle identifies one schedule in playback. Handles are created by
// the engine; this package only requires that cancellation is
// idempotent and that the schedule's completion callback fires at most
// once, never after a cancel.
type Handle interface {
	Cancel()
}

// Engine plays composed schedules on its own clock.
type Engine interface {
	Play(*timeline.Schedule) Handle
}

// errMissingElement reports a Trigger call without a usable source or
// target reference.
var errMissingElement = stderrors.New("missing source or target reference")

// Choreographer triggers flight choreography against one engine and
// tracks every in-flight schedule it has started.
//
// All methods are driven by the caller; nothing here suspends or owns a
// goroutine.
type Choreographer struct {
	engine   Engine
	registry *Registry
}

// New returns a Choreographer that plays schedules on engine.
func New(engine Engine) *Choreographer {
	return &Choreographer{
		engine:   engine,
		registry: NewRegistry(),
	}
}

// Trigger choreographs a flight from source into target.
//
// The landing point is the config's target anchor resolved against the
// target bounds plus the anchor offset, translated into the source's
// local space. OnStart runs synchronously before the schedule reaches
// the engine; OnComplete fires exactly once on natural completion,
// after the handle has left the registry.
//
// A nil source or target is reported as a diagnostic and returns nil
// without running any callback. The returned handle is already
// registered and can be cancelled individually or via [Choreographer.CancelAll].
func (c *Choreographer) Trigger(source Source, target Target, cfg timeline.Config) Handle {
	if source == nil || target == nil {
		errors.Report(&errors.SwoopError{
			Op:   "choreo.Trigger",
			Kind: errors.KindInput,
			Err:  errMissingElement,
		})
		return nil
	}

	resolved := cfg.Resolve()
	start := source.Position()
	landing := resolved.TargetAnchor.Resolve(target.Bounds()).Add(resolved.TargetAnchorOffset)
	end := geometry.LocalTarget(start, source.Bounds(), landing)

	invokeCallback("choreo.onStart", resolved.OnStart)

	schedule := timeline.Compose(resolved, start, end)
	if surface, ok := source.(timeline.Surface); ok {
		schedule.Surface = surface
	}

	// Completion must clear the registry entry before the caller's
	// callback observes it, even when the engine finishes the schedule
	// inside Play.
	var (
		handle   Handle
		finished bool
	)
	userComplete := schedule.OnComplete
	schedule.OnComplete = func() {
		finished = true
		if handle != nil {
			c.registry.Remove(handle)
		}
		invokeCallback("choreo.onComplete", userComplete)
	}

	handle = c.engine.Play(schedule)
	if handle == nil {
		return nil
	}
	if !finished {
		c.registry.Register(handle)
	}
	return handle
}

// Cancel cancels one in-flight choreography. Unknown or already
// finished handles are a silent no-op.
func (c *Choreographer) Cancel(handle Handle) {
	c.registry.Cancel(handle)
}

// CancelAll cancels every in-flight choreography started by this
// Choreographer.
func (c *Choreographer) CancelAll() {
	c.registry.CancelAll()
}

// ActiveFlights returns the number of schedules currently in flight.
func (c *Choreographer) ActiveFlights() int {
	return c.registry.Len()
}

// invokeCallback runs a user callback, converting a panic into a
// reported diagnostic instead of unwinding through the caller.
func invokeCallback(op string, fn func()) {
	if fn == nil {
		return
	}
	defer errors.Recover(op)
	fn()
}
