// Package scenario loads YAML flight scenarios for the swoop CLI.
//
// A scenario file pins down everything a Trigger call would read live
// from a UI: the source element's rect and local position, the target
// region, and the choreography config. The CLI composes and renders
// from that snapshot.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/swoop/pkg/geometry"
	"github.com/go-drift/swoop/pkg/timeline"
)

// SchemaVersion is the major schema version this package reads.
const SchemaVersion = "v1"

// Scenario is one flight described in a YAML file.
type Scenario struct {
	// Version is the schema version, a semver string with major v1.
	Version string `yaml:"version"`

	Source Element `yaml:"source"`
	Target Region  `yaml:"target"`

	// Config is the choreography config; absent fields inherit the
	// library defaults.
	Config timeline.Config `yaml:"config"`
}

// Element is the moving element: its screen-space rect and, optionally,
// its current position in local transform space.
type Element struct {
	Rect     RectSpec         `yaml:"rect"`
	Position *geometry.Offset `yaml:"position,omitempty"`
}

// Region is the landing region. Anchor and Offset are scenario-level
// conveniences; config values, when present, take precedence.
type Region struct {
	Rect   RectSpec         `yaml:"rect"`
	Anchor *geometry.Anchor `yaml:"anchor,omitempty"`
	Offset *geometry.Offset `yaml:"offset,omitempty"`
}

// RectSpec is a rectangle in left/top/width/height form, the shape
// rects take in authoring files.
type RectSpec struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts the left/top/width/height form to a geometry rectangle.
func (r RectSpec) Rect() geometry.Rect {
	return geometry.RectFromLTWH(r.Left, r.Top, r.Width, r.Height)
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse parses and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Version == "" {
		return errors.New("scenario version is required (expected v1)")
	}
	if !semver.IsValid(s.Version) {
		return fmt.Errorf("invalid scenario version %q (expected a semver string like v1)", s.Version)
	}
	if major := semver.Major(s.Version); major != SchemaVersion {
		return fmt.Errorf("unsupported scenario version %q (this build reads %s)", s.Version, SchemaVersion)
	}
	if s.Source.Rect.Rect().IsEmpty() {
		return errors.New("source.rect must have positive width and height")
	}
	if s.Target.Rect.Rect().IsEmpty() {
		return errors.New("target.rect must have positive width and height")
	}
	return nil
}

// Plan is a composed scenario: the resolved config, the schedule, and
// the geometry a renderer or inspector needs.
type Plan struct {
	Config   timeline.ResolvedConfig
	Schedule *timeline.Schedule

	// Start is the element's position in local space at trigger time.
	Start geometry.Offset
	// End is the flight's end position in local space.
	End geometry.Offset
	// Landing is the resolved landing point in screen space.
	Landing geometry.Offset
	// Screen is the flight path in screen space, from the source
	// center to the landing point.
	Screen geometry.Path
}

// Plan composes the scenario the same way a live Trigger would.
//
// The target's scenario-level anchor and offset fill in for absent
// config fields before the config is resolved, so explicit config
// values always win.
func (s *Scenario) Plan() *Plan {
	cfg := s.Config
	if cfg.TargetAnchor == nil {
		cfg.TargetAnchor = s.Target.Anchor
	}
	if cfg.TargetAnchorOffset == nil {
		cfg.TargetAnchorOffset = s.Target.Offset
	}
	resolved := cfg.Resolve()

	var start geometry.Offset
	if s.Source.Position != nil {
		start = *s.Source.Position
	}
	sourceRect := s.Source.Rect.Rect()
	landing := resolved.TargetAnchor.Resolve(s.Target.Rect.Rect()).Add(resolved.TargetAnchorOffset)
	end := geometry.LocalTarget(start, sourceRect, landing)

	return &Plan{
		Config:   resolved,
		Schedule: timeline.Compose(resolved, start, end),
		Start:    start,
		End:      end,
		Landing:  landing,
		Screen:   geometry.NewPath(sourceRect.Center(), landing, resolved.SwoopAmount),
	}
}
