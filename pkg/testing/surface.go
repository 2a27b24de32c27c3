package testing

import (
	"sync"

	"github.com/go-drift/swoop/pkg/geometry"
)

// RecordingSurface is a timeline.Surface that records every property
// write in order.
type RecordingSurface struct {
	mu        sync.Mutex
	positions []geometry.Offset
	scales    []float64
	blurs     []float64
}

// SetPosition records a position write.
func (s *RecordingSurface) SetPosition(p geometry.Offset) {
	s.mu.Lock()
	s.positions = append(s.positions, p)
	s.mu.Unlock()
}

// SetScale records a scale write.
func (s *RecordingSurface) SetScale(v float64) {
	s.mu.Lock()
	s.scales = append(s.scales, v)
	s.mu.Unlock()
}

// SetShadowBlur records a shadow blur write.
func (s *RecordingSurface) SetShadowBlur(v float64) {
	s.mu.Lock()
	s.blurs = append(s.blurs, v)
	s.mu.Unlock()
}

// Positions returns all recorded position writes in order.
func (s *RecordingSurface) Positions() []geometry.Offset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]geometry.Offset(nil), s.positions...)
}

// Scales returns all recorded scale writes in order.
func (s *RecordingSurface) Scales() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]float64(nil), s.scales...)
}

// Blurs returns all recorded shadow blur writes in order.
func (s *RecordingSurface) Blurs() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]float64(nil), s.blurs...)
}

// LastPosition returns the most recent position write and whether any
// position has been written.
func (s *RecordingSurface) LastPosition() (geometry.Offset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.positions) == 0 {
		return geometry.Offset{}, false
	}
	return s.positions[len(s.positions)-1], true
}

// LastScale returns the most recent scale write and whether any scale
// has been written.
func (s *RecordingSurface) LastScale() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.scales) == 0 {
		return 0, false
	}
	return s.scales[len(s.scales)-1], true
}

// LastBlur returns the most recent shadow blur write and whether any
// blur has been written.
func (s *RecordingSurface) LastBlur() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.blurs) == 0 {
		return 0, false
	}
	return s.blurs[len(s.blurs)-1], true
}

// StaticSource is a choreo.Source with fixed measurements.
type StaticSource struct {
	Rect geometry.Rect
	Pos  geometry.Offset
}

// Bounds returns the fixed screen-space rectangle.
func (s StaticSource) Bounds() geometry.Rect { return s.Rect }

// Position returns the fixed local position.
func (s StaticSource) Position() geometry.Offset { return s.Pos }

// StaticTarget is a choreo.Target with a fixed bounding box.
type StaticTarget struct {
	Rect geometry.Rect
}

// Bounds returns the fixed screen-space rectangle.
func (t StaticTarget) Bounds() geometry.Rect { return t.Rect }

// SurfaceSource is a StaticSource that also records surface writes, so
// engines that drive surfaces directly can be observed end to end.
type SurfaceSource struct {
	StaticSource
	RecordingSurface
}

// NewSurfaceSource returns a SurfaceSource measuring rect with the
// element sitting at pos in local space.
func NewSurfaceSource(rect geometry.Rect, pos geometry.Offset) *SurfaceSource {
	return &SurfaceSource{StaticSource: StaticSource{Rect: rect, Pos: pos}}
}
