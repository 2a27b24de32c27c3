package testing

import (
	"sync"

	"github.com/go-drift/swoop/pkg/choreo"
	"github.com/go-drift/swoop/pkg/timeline"
)

// RecordingEngine is a choreo.Engine that captures schedules instead of
// playing them. Tests assert on the captured flights and drive
// completion by hand.
type RecordingEngine struct {
	mu      sync.Mutex
	flights []*RecordedFlight
}

// NewRecordingEngine returns an engine with no recorded flights.
func NewRecordingEngine() *RecordingEngine {
	return &RecordingEngine{}
}

// Play records the schedule and returns its flight as the handle.
func (e *RecordingEngine) Play(s *timeline.Schedule) choreo.Handle {
	f := &RecordedFlight{Schedule: s}
	e.mu.Lock()
	e.flights = append(e.flights, f)
	e.mu.Unlock()
	return f
}

// Flights returns every recorded flight in play order.
func (e *RecordingEngine) Flights() []*RecordedFlight {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*RecordedFlight(nil), e.flights...)
}

// Last returns the most recently played flight, or nil when nothing has
// been played.
func (e *RecordingEngine) Last() *RecordedFlight {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.flights) == 0 {
		return nil
	}
	return e.flights[len(e.flights)-1]
}

// CompleteAll finishes every flight that has neither completed nor been
// cancelled, in play order.
func (e *RecordingEngine) CompleteAll() {
	for _, f := range e.Flights() {
		f.Complete()
	}
}

// RecordedFlight is the handle a RecordingEngine hands out. It counts
// cancellations and lets tests fire the schedule's completion path.
type RecordedFlight struct {
	// Schedule is the composed schedule as it reached the engine.
	Schedule *timeline.Schedule

	mu        sync.Mutex
	cancels   int
	completed bool
}

// Cancel marks the flight cancelled. Every call is counted so tests can
// detect double cancellation.
func (f *RecordedFlight) Cancel() {
	f.mu.Lock()
	f.cancels++
	f.mu.Unlock()
}

// Cancels returns how many times Cancel has been called.
func (f *RecordedFlight) Cancels() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancels
}

// Complete fires the schedule's completion callback. Like a real
// engine it fires at most once and never after a cancellation.
func (f *RecordedFlight) Complete() {
	f.mu.Lock()
	fire := !f.completed && f.cancels == 0
	f.completed = fire || f.completed
	f.mu.Unlock()

	if fire && f.Schedule != nil && f.Schedule.OnComplete != nil {
		f.Schedule.OnComplete()
	}
}

// Completed reports whether the completion callback has fired.
func (f *RecordedFlight) Completed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completed
}
