// Package player is the reference execution engine for swoop
// schedules.
//
// The player drives composed schedules frame by frame on its own
// clock: call [Player.Step] from a frame loop, or [Player.Run] to step
// on a ticker until a context ends. Each phase becomes a tween that
// activates at its absolute start offset; motion phases tween
// normalized progress and sample the flight path, scalar phases tween
// the property value directly. Values land on the schedule's surface,
// when one is bound.
package player

import (
	"context"
	"sync"
	"time"

	"github.com/tanema/gween"

	"github.com/go-drift/swoop/pkg/choreo"
	"github.com/go-drift/swoop/pkg/errors"
	"github.com/go-drift/swoop/pkg/timeline"
)

// Player plays swoop schedules. It implements [choreo.Engine].
//
// A Player owns no goroutines; time advances only when the caller
// steps it. Multiple flights play concurrently, interleaved by the
// stepping clock.
type Player struct {
	mu      sync.Mutex
	flights map[*Flight]struct{}
}

// New returns a Player with no active flights, reading the package
// clock.
func New() *Player {
	return &Player{flights: make(map[*Flight]struct{})}
}

// Play starts a schedule and returns its flight handle. Initial states
// are applied to the surface synchronously; the first timed values
// land on the next [Player.Step]. A schedule with no phases completes
// on that first step.
func (p *Player) Play(s *timeline.Schedule) choreo.Handle {
	f := &Flight{player: p, schedule: s, started: Now()}
	if s.Surface != nil {
		for _, init := range s.Initial {
			applyInitial(s.Surface, init)
		}
	}
	for _, phase := range s.Phases {
		f.runners = append(f.runners, newPhaseRunner(phase))
	}

	p.mu.Lock()
	p.flights[f] = struct{}{}
	p.mu.Unlock()
	return f
}

// Step advances every active flight to the current clock time. Surface
// writes and completion callbacks run on the calling goroutine.
//
// The active set is snapshotted first, so a callback may cancel
// flights or start new ones without corrupting the iteration; a flight
// started during a Step is first advanced on the following one.
func (p *Player) Step() {
	now := Now()

	p.mu.Lock()
	flights := make([]*Flight, 0, len(p.flights))
	for f := range p.flights {
		flights = append(flights, f)
	}
	p.mu.Unlock()

	for _, f := range flights {
		f.step(now)
	}
}

// Run steps the player every interval until ctx ends. It is a
// convenience loop for programs without their own frame driver; game
// loops call [Player.Step] from their update function instead.
func (p *Player) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Step()
		}
	}
}

// Active returns the number of flights currently playing.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.flights)
}

// remove drops a flight from the active set.
func (p *Player) remove(f *Flight) {
	p.mu.Lock()
	delete(p.flights, f)
	p.mu.Unlock()
}

// Flight is one schedule in playback. It implements [choreo.Handle].
type Flight struct {
	player   *Player
	schedule *timeline.Schedule
	runners  []*phaseRunner
	started  time.Time

	mu        sync.Mutex
	elapsed   time.Duration
	finished  bool
	cancelled bool
}

// Cancel stops playback immediately. The schedule's completion
// callback never fires after a cancel. Cancelling a finished or
// already cancelled flight is a no-op.
func (f *Flight) Cancel() {
	f.mu.Lock()
	if f.finished || f.cancelled {
		f.mu.Unlock()
		return
	}
	f.cancelled = true
	f.mu.Unlock()

	f.player.remove(f)
}

// Done reports whether the flight has finished or been cancelled.
func (f *Flight) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.finished || f.cancelled
}

// step advances the flight to the given clock time.
func (f *Flight) step(now time.Time) {
	f.mu.Lock()
	if f.finished || f.cancelled {
		f.mu.Unlock()
		return
	}
	prev := f.elapsed
	elapsed := now.Sub(f.started)
	if elapsed < 0 {
		elapsed = 0
	}
	f.elapsed = elapsed
	f.mu.Unlock()

	surface := f.schedule.Surface
	done := true
	for _, r := range f.runners {
		if r.done {
			continue
		}
		if elapsed < r.phase.StartOffset {
			done = false
			continue
		}
		// On the step that crosses into a phase, only the overshoot
		// past the offset belongs to its tween.
		dt := elapsed - prev
		if prev <= r.phase.StartOffset {
			dt = elapsed - r.phase.StartOffset
		}
		r.advance(surface, dt)
		if !r.done {
			done = false
		}
	}
	if done {
		f.finish()
	}
}

// finish completes the flight exactly once and fires the schedule's
// completion callback with panic recovery.
func (f *Flight) finish() {
	f.mu.Lock()
	if f.finished || f.cancelled {
		f.mu.Unlock()
		return
	}
	f.finished = true
	f.mu.Unlock()

	f.player.remove(f)

	if cb := f.schedule.OnComplete; cb != nil {
		defer errors.Recover("player.onComplete")
		cb()
	}
}

// phaseRunner drives one phase. Zero-duration phases snap to their end
// value the moment they activate.
type phaseRunner struct {
	phase timeline.Phase
	tween *gween.Tween
	done  bool
}

func newPhaseRunner(phase timeline.Phase) *phaseRunner {
	r := &phaseRunner{phase: phase}
	if phase.Duration > 0 {
		r.tween = gween.New(
			float32(phase.From),
			float32(phase.To),
			float32(phase.Duration.Seconds()),
			ResolveEase(phase.Easing),
		)
	}
	return r
}

// advance feeds dt of playback time into the runner's tween and writes
// the resulting value.
func (r *phaseRunner) advance(surface timeline.Surface, dt time.Duration) {
	if r.tween == nil {
		r.apply(surface, r.phase.To)
		r.done = true
		return
	}
	value, finished := r.tween.Update(float32(dt.Seconds()))
	r.apply(surface, float64(value))
	r.done = finished
}

func (r *phaseRunner) apply(surface timeline.Surface, value float64) {
	if surface == nil {
		return
	}
	switch r.phase.Property {
	case timeline.PropertyPosition:
		if r.phase.Path != nil {
			surface.SetPosition(r.phase.Path.At(value))
		}
	case timeline.PropertyScale:
		surface.SetScale(value)
	case timeline.PropertyShadowBlur:
		surface.SetShadowBlur(value)
	}
}

// applyInitial writes a zero-duration initial state to the surface.
func applyInitial(surface timeline.Surface, init timeline.InitialState) {
	switch init.Property {
	case timeline.PropertyScale:
		surface.SetScale(init.Value)
	case timeline.PropertyShadowBlur:
		surface.SetShadowBlur(init.Value)
	}
}
