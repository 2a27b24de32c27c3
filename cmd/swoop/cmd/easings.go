package cmd

import (
	"fmt"

	"github.com/go-drift/swoop/pkg/player"
)

func init() {
	RegisterCommand(&Command{
		Name:  "easings",
		Short: "List the easing names accepted in schedules",
		Long: `Easings prints every named easing curve the player resolves, in the
naming scheme used by schedule phases (family plus optional .in, .out
or .inOut variant).`,
		Usage: "swoop easings",
		Run:   runEasings,
	})
}

func runEasings(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	fmt.Println("Named easings:")
	for _, name := range player.EaseNames() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Custom: cubic-bezier(x1, y1, x2, y2)")
	return nil
}
