// Package testing provides test doubles for swoop choreography.
//
// # Quick Start
//
// Trigger against a recording engine and assert on the captured
// schedule:
//
//	func TestFlight(t *testing.T) {
//	    engine := swooptest.NewRecordingEngine()
//	    c := choreo.New(engine)
//
//	    c.Trigger(
//	        swooptest.StaticSource{Rect: geometry.RectFromLTWH(0, 0, 40, 40)},
//	        swooptest.StaticTarget{Rect: geometry.RectFromLTWH(200, 0, 40, 40)},
//	        timeline.Config{},
//	    )
//
//	    flight := engine.Last()
//	    if flight == nil {
//	        t.Fatal("expected a played schedule")
//	    }
//	    flight.Complete() // drive the completion path
//	}
//
// # Deterministic Playback
//
// Drive the bundled player on controlled time:
//
//	clk := swooptest.InstallFakeClock(t)
//	p := player.New()
//	p.Play(schedule)
//	clk.Advance(225 * time.Millisecond)
//	p.Step()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import swooptest "github.com/go-drift/swoop/pkg/testing"
package testing
