package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/swoop/cmd/swoop/internal/render"
	"github.com/go-drift/swoop/cmd/swoop/internal/scenario"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Render the flight path of a scenario to a PNG",
		Long: `Preview loads a scenario file, solves the flight geometry and renders
the source, target, swoop path and landing point to a PNG image.

The output path defaults to the scenario file name with a .png
extension.`,
		Usage: "swoop preview <scenario.yaml> [-o out.png] [--size WxH]",
		Run:   runPreview,
	})
}

func runPreview(args []string) error {
	var path, outPath string
	opts := render.DefaultOptions()

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-o" || arg == "--out":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", arg)
			}
			i++
			outPath = args[i]
		case strings.HasPrefix(arg, "--out="):
			outPath = strings.TrimPrefix(arg, "--out=")
		case arg == "--size":
			if i+1 >= len(args) {
				return fmt.Errorf("--size requires a value (WxH)")
			}
			i++
			w, h, err := parseSize(args[i])
			if err != nil {
				return err
			}
			opts.Width, opts.Height = w, h
		case strings.HasPrefix(arg, "--size="):
			w, h, err := parseSize(strings.TrimPrefix(arg, "--size="))
			if err != nil {
				return err
			}
			opts.Width, opts.Height = w, h
		case len(arg) > 0 && arg[0] == '-':
			return fmt.Errorf("unknown flag: %s", arg)
		case path == "":
			path = arg
		default:
			return fmt.Errorf("unexpected argument: %s", arg)
		}
	}
	if path == "" {
		return fmt.Errorf("missing scenario file (usage: %s)", "swoop preview <scenario.yaml> [-o out.png] [--size WxH]")
	}
	if outPath == "" {
		outPath = defaultOutPath(path)
	}

	scn, err := scenario.Load(path)
	if err != nil {
		return err
	}
	plan := scn.Plan()

	img := render.Render(render.Flight{
		Source:  scn.Source.Rect.Rect(),
		Target:  scn.Target.Rect.Rect(),
		Landing: plan.Landing,
		Path:    plan.Screen,
	}, opts)

	if err := render.SaveFile(outPath, img); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d)\n", outPath, opts.Width, opts.Height)
	return nil
}

// parseSize parses a WxH dimension string like "800x500".
func parseSize(s string) (int, int, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH, e.g. 800x500)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in size %q", s)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in size %q", s)
	}
	return w, h, nil
}

// defaultOutPath swaps the scenario file extension for .png.
func defaultOutPath(scenarioPath string) string {
	ext := filepath.Ext(scenarioPath)
	return strings.TrimSuffix(scenarioPath, ext) + ".png"
}
