package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/attractor/internal/dynamo"
)

var (
	configFile  string
	presetsFile string
	presetName  string
	points      int
	fade        float64
	seed        int64
	fps         int
	width       int
	height      int
	verbose     bool
	noVignette  bool
	greyscale   bool

	// offline rendering
	outDir  string
	every   int
	scale   float64
	layers  int
	noLabel bool

	// live view
	theme       string
	braille     bool
	supersample int

	// inspection
	iterations int
	systems    bool
	span       float64
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	force      bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "attractor",
})

func main() {
	rootCmd := &cobra.Command{
		Use:           "attractor",
		Short:         "animated strange-attractor art",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&presetsFile, "presets", "", "preset table file (yaml)")
	pf.StringVarP(&presetName, "preset", "p", "", "starting preset by name or index")
	pf.IntVar(&points, "points", 0, "points drawn per frame")
	pf.Float64Var(&fade, "fade", 0, "trail fade opacity per frame")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.IntVar(&fps, "fps", 0, "frame rate")
	pf.IntVar(&width, "width", 0, "canvas width in pixels (offline)")
	pf.IntVar(&height, "height", 0, "canvas height in pixels (offline)")
	pf.BoolVar(&noVignette, "no-vignette", false, "disable the vignette")
	pf.BoolVar(&greyscale, "grey", false, "start in greyscale")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate in the terminal",
		RunE:  runLive,
	}
	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "choose and tweak a preset, then animate",
		RunE:  runPicker,
	}
	for _, c := range []*cobra.Command{rootCmd, liveCmd, pickCmd} {
		c.Flags().StringVar(&theme, "theme", "", "chrome theme")
		c.Flags().BoolVar(&braille, "braille", false, "monochrome braille view")
		c.Flags().IntVar(&supersample, "supersample", 0, "raster pixels per terminal pixel")
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render an animated GIF",
		RunE:  runGIF,
	}
	renderCmd.Flags().Int("frames", 150, "frames to render")
	renderCmd.Flags().Float64Var(&scale, "scale", 0.5, "GIF downscale factor")
	renderCmd.Flags().IntVar(&every, "every", 0, "advance the preset every N frames")
	renderCmd.Flags().BoolVar(&noLabel, "no-label", false, "omit the preset name overlay")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a PNG of the last frame",
		RunE:  runPNG,
	}
	snapshotCmd.Flags().Int("frames", 90, "frames to render before the snapshot")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render a vector frame",
		RunE:  runSVG,
	}
	svgCmd.Flags().Int("frames", 30, "frames to render")
	svgCmd.Flags().IntVar(&layers, "layers", 8, "most recent frames kept as layers")

	for _, c := range []*cobra.Command{renderCmd, snapshotCmd, svgCmd} {
		c.Flags().StringVarP(&outDir, "out", "o", "renders", "output directory")
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list offline renders",
		RunE:  listRuns,
	}
	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the coefficient trace of a render",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	for _, c := range []*cobra.Command{runsCmd, plotCmd} {
		c.Flags().StringVarP(&outDir, "out", "o", "renders", "output directory")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the preset table",
		RunE:  listPresets,
	}

	driftCmd := &cobra.Command{
		Use:   "drift",
		Short: "plot modulated coefficients over a phase window",
		RunE:  plotDrift,
	}
	driftCmd.Flags().Float64Var(&span, "span", 60, "seconds of animation to plot")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Lyapunov exponent and coverage of every preset",
		RunE:  analyzePresets,
	}
	analyzeCmd.Flags().IntVar(&iterations, "iterations", 20000, "iterations per preset")
	analyzeCmd.Flags().BoolVar(&systems, "systems", false, "also report the auxiliary systems")

	bifurcateCmd := &cobra.Command{
		Use:   "bifurcate",
		Short: "sweep one coefficient of a preset",
		RunE:  bifurcate,
	}
	bifurcateCmd.Flags().StringVar(&sweepParam, "param", "a", "coefficient to sweep (a, b, c, d)")
	bifurcateCmd.Flags().Float64Var(&sweepMin, "min", -2.5, "sweep start")
	bifurcateCmd.Flags().Float64Var(&sweepMax, "max", 2.5, "sweep end")
	bifurcateCmd.Flags().IntVar(&sweepSteps, "steps", 80, "sweep steps")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure frame throughput",
		RunE:  benchFrames,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(liveCmd, pickCmd, renderCmd, snapshotCmd, svgCmd, runsCmd, plotCmd, presetsCmd, driftCmd, analyzeCmd, bifurcateCmd, benchCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(err)
		stop()
		os.Exit(1)
	}
}

func reportError(err error) {
	var perr *dynamo.PresetError
	switch {
	case errors.As(err, &perr):
		logger.Error("invalid preset table", "index", perr.Index, "field", perr.Field, "err", perr.Wrapped)
	case errors.Is(err, dynamo.ErrContextCanceled):
		logger.Warn("interrupted", "err", err)
	default:
		logger.Error(err)
	}
}
