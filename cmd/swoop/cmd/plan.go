package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-drift/swoop/cmd/swoop/internal/scenario"
	"github.com/go-drift/swoop/pkg/geometry"
)

func init() {
	RegisterCommand(&Command{
		Name:  "plan",
		Short: "Print the schedule composed from a scenario file",
		Long: `Plan loads a scenario file, composes the flight schedule and prints
every phase with its track, property, time window, value range and
easing. Initial states applied at trigger time are listed separately.`,
		Usage: "swoop plan <scenario.yaml> [--json]",
		Run:   runPlan,
	})
}

func runPlan(args []string) error {
	var path string
	var asJSON bool

	for _, arg := range args {
		switch {
		case arg == "--json":
			asJSON = true
		case len(arg) > 0 && arg[0] == '-':
			return fmt.Errorf("unknown flag: %s", arg)
		case path == "":
			path = arg
		default:
			return fmt.Errorf("unexpected argument: %s", arg)
		}
	}
	if path == "" {
		return fmt.Errorf("missing scenario file (usage: %s)", "swoop plan <scenario.yaml> [--json]")
	}

	scn, err := scenario.Load(path)
	if err != nil {
		return err
	}
	plan := scn.Plan()

	if asJSON {
		return printPlanJSON(plan)
	}
	printPlanTable(plan)
	return nil
}

type planJSON struct {
	Duration float64     `json:"durationMs"`
	Start    point       `json:"start"`
	Landing  point       `json:"landing"`
	End      point       `json:"end"`
	Curved   bool        `json:"curved"`
	Initial  []initJSON  `json:"initial,omitempty"`
	Phases   []phaseJSON `json:"phases"`
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type initJSON struct {
	Property string  `json:"property"`
	Value    float64 `json:"value"`
}

type phaseJSON struct {
	Track    string  `json:"track"`
	Property string  `json:"property"`
	Start    float64 `json:"startMs"`
	Duration float64 `json:"durationMs"`
	From     float64 `json:"from"`
	To       float64 `json:"to"`
	Easing   string  `json:"easing"`
}

func printPlanJSON(plan *scenario.Plan) error {
	out := planJSON{
		Duration: toMillis(plan.Schedule.Duration()),
		Start:    point{plan.Start.X, plan.Start.Y},
		Landing:  point{plan.Landing.X, plan.Landing.Y},
		End:      point{plan.End.X, plan.End.Y},
		Curved:   plan.Screen.Curved(),
	}
	for _, st := range plan.Schedule.Initial {
		out.Initial = append(out.Initial, initJSON{
			Property: st.Property.String(),
			Value:    st.Value,
		})
	}
	for _, ph := range plan.Schedule.Phases {
		out.Phases = append(out.Phases, phaseJSON{
			Track:    ph.Track.String(),
			Property: ph.Property.String(),
			Start:    toMillis(ph.StartOffset),
			Duration: toMillis(ph.Duration),
			From:     ph.From,
			To:       ph.To,
			Easing:   ph.Easing,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printPlanTable(plan *scenario.Plan) {
	fmt.Printf("Flight: %s -> %s", formatPoint(plan.Start), formatPoint(plan.End))
	if plan.Screen.Curved() {
		fmt.Printf("  (curved, lands at %s)\n", formatPoint(plan.Landing))
	} else {
		fmt.Printf("  (straight, lands at %s)\n", formatPoint(plan.Landing))
	}
	fmt.Printf("Duration: %s\n", formatMs(plan.Schedule.Duration()))
	fmt.Println()

	if len(plan.Schedule.Initial) > 0 {
		fmt.Print("Initial states:")
		for _, st := range plan.Schedule.Initial {
			fmt.Printf("  %s=%.2f", st.Property, st.Value)
		}
		fmt.Println()
		fmt.Println()
	}

	fmt.Printf("%-8s %-12s %10s %10s %8s %8s  %s\n",
		"TRACK", "PROPERTY", "START", "DURATION", "FROM", "TO", "EASING")
	for _, ph := range plan.Schedule.Phases {
		fmt.Printf("%-8s %-12s %10s %10s %8.2f %8.2f  %s\n",
			ph.Track, ph.Property,
			formatMs(ph.StartOffset), formatMs(ph.Duration),
			ph.From, ph.To, ph.Easing)
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func formatMs(d time.Duration) string {
	return fmt.Sprintf("%gms", toMillis(d))
}

func formatPoint(p geometry.Offset) string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
