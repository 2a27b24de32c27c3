package choreo_test

import (
	"fmt"

	"github.com/go-drift/swoop/pkg/choreo"
	"github.com/go-drift/swoop/pkg/geometry"
	swooptest "github.com/go-drift/swoop/pkg/testing"
	"github.com/go-drift/swoop/pkg/timeline"
)

func Example() {
	engine := swooptest.NewRecordingEngine()
	c := choreo.New(engine)

	source := swooptest.StaticSource{Rect: geometry.RectFromLTWH(20, 20, 40, 40)}
	target := swooptest.StaticTarget{Rect: geometry.RectFromLTWH(200, 100, 100, 60)}
	c.Trigger(source, target, timeline.Config{
		SwoopAmount: timeline.Ptr(0.0),
	})

	sched := engine.Last().Schedule
	motion := sched.PhasesFor(timeline.TrackMotion)[0]
	fmt.Println("phases:", len(sched.Phases))
	fmt.Println("lands at:", motion.Path.At(1))
	fmt.Println("active:", c.ActiveFlights())

	engine.Last().Complete()
	fmt.Println("active after landing:", c.ActiveFlights())
	// Output:
	// phases: 5
	// lands at: {210 90}
	// active: 1
	// active after landing: 0
}
