package main

import (
	"context"
	"fmt"
	"github.com/OxFEE1DEAD/fractalrs/pkg/fractal"
	"github.com/OxFEE1DEAD/fractalrs/pkg/render"
	"github.com/spf13/cobra"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"
)

type options struct {
	fractalName string
	zoom        float64
	centerX     float64
	centerY     float64
	iterations  int
	power       float64
	param       float64
	hue         float64
	saturation  float64
	value       float64
	width       int
	height      int

	random bool
	seed   int64

	out string
}

func mainCmd() *cobra.Command {
	opts := &options{}
	def := fractal.DefaultViewport()

	cmd := &cobra.Command{
		Use:   "fractalrs",
		Short: "Render escape-time fractals to image files",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.fractalName, "fractal", "f", def.Fractal.String(),
		"formula: Classic, Spiral, Flower, Phoenix or Butterfly")
	flags.Float64Var(&opts.zoom, "zoom", def.Zoom, "zoom level")
	flags.Float64Var(&opts.centerX, "center-x", def.CenterX, "real coordinate of the view center")
	flags.Float64Var(&opts.centerY, "center-y", def.CenterY, "imaginary coordinate of the view center")
	flags.IntVarP(&opts.iterations, "iterations", "i", def.MaxIter, "iteration cap per point")
	flags.Float64Var(&opts.power, "power", def.Power, "exponent applied to z")
	flags.Float64Var(&opts.param, "param", def.Secondary, "secondary shape parameter")
	flags.Float64Var(&opts.hue, "hue", def.HueOffset, "hue offset in degrees")
	flags.Float64Var(&opts.saturation, "saturation", def.Saturation, "palette saturation")
	flags.Float64Var(&opts.value, "value", def.Value, "palette value")
	flags.IntVarP(&opts.width, "width", "w", def.Width, "output width in pixels")
	flags.IntVar(&opts.height, "height", def.Height, "output height in pixels")
	flags.BoolVar(&opts.random, "random", false, "randomize the palette and formula parameters")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for --random; 0 seeds from the clock")
	flags.StringVarP(&opts.out, "out", "o", "",
		"output file; the extension picks the format (default fractol_<timestamp>.png)")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// Usage is only helpful before flag parsing succeeds.
	cmd.SilenceUsage = true

	view := fractal.DefaultViewport()
	view.Zoom = opts.zoom
	view.CenterX = opts.centerX
	view.CenterY = opts.centerY
	view.MaxIter = opts.iterations
	view.Power = opts.power
	view.Secondary = opts.param
	view.HueOffset = opts.hue
	view.Saturation = opts.saturation
	view.Value = opts.value
	view.Width = opts.width
	view.Height = opts.height

	t, err := fractal.ParseType(opts.fractalName)
	if err != nil {
		return err
	}
	view.Fractal = t

	if opts.random {
		seed := opts.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		view = view.Randomized(rand.New(rand.NewSource(seed)))
		log.Printf("randomized: %s power=%.3f param=%.3f hue=%.1f sat=%.3f val=%.3f",
			view.Fractal, view.Power, view.Secondary, view.HueOffset, view.Saturation, view.Value)
	}

	out := opts.out
	if out == "" {
		out = defaultOut(time.Now())
	}

	r := render.New(runtime.NumCPU())

	start := time.Now()
	img, err := r.Render(view)
	if err != nil {
		return err
	}
	log.Printf("rendered %s %dx%d on %d workers in %v",
		view.Fractal, view.Width, view.Height, r.Workers(), time.Since(start).Round(time.Millisecond))

	if err := save(img, out); err != nil {
		return err
	}
	log.Printf("wrote %s", out)

	return nil
}

// defaultOut names an output file after the moment it was rendered.
func defaultOut(now time.Time) string {
	return fmt.Sprintf("fractol_%s.png", now.Format("20060102_150405"))
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}
