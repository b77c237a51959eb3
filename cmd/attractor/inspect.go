package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/attractor/internal/analysis"
	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/integrators"
	"github.com/san-kum/attractor/internal/physics"
	"github.com/san-kum/attractor/internal/render"
	"github.com/san-kum/attractor/internal/storage"
)

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(outDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tPRESET\tTIME\tFRAMES\tSIZE\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%dx%d\t%d\n",
			run.ID,
			run.Kind,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Width, run.Height,
			run.Seed,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(outDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s (%s)\n", meta.Preset, meta.Pattern)
	fmt.Printf("frames: %d\n\n", len(trace))

	var series [4][]float64
	drawn := make([]float64, len(trace))
	for i, r := range trace {
		series[0] = append(series[0], r.Params.A)
		series[1] = append(series[1], r.Params.B)
		series[2] = append(series[2], r.Params.C)
		series[3] = append(series[3], r.Params.D)
		drawn[i] = float64(r.Drawn)
	}

	fmt.Println(plotCoefficients(series, "a b c d per frame"))
	fmt.Println()
	fmt.Println(asciigraph.Plot(drawn,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("points drawn per frame"),
	))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tPATTERN\tHUE\tA\tB\tC\tD")
	for i, p := range s.presets {
		mark := " "
		if i == s.cfg.Preset {
			mark = "*"
		}
		fmt.Fprintf(w, "%s%d\t%s\t%s\t%.2f\t%+.2f\t%+.2f\t%+.2f\t%+.2f\n",
			mark, i, p.Name, p.Pattern, p.Hue, p.Params.A, p.Params.B, p.Params.C, p.Params.D)
	}
	return w.Flush()
}

func plotDrift(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	if span <= 0 {
		return fmt.Errorf("%w: span must be positive", dynamo.ErrInvalidConfig)
	}

	p := s.presets[s.cfg.Preset]
	to := span * s.cfg.PhaseRate
	series := attractor.Drift(p.Params, 0, to, 240)

	fmt.Printf("preset: %s\n", p.Name)
	fmt.Printf("base:   %s\n", p.Params)
	fmt.Printf("phase:  0 .. %.2f (%.0fs at rate %.2f)\n\n", to, span, s.cfg.PhaseRate)
	fmt.Println(plotCoefficients(series, "a b c d drift"))
	return nil
}

func plotCoefficients(series [4][]float64, caption string) string {
	return asciigraph.PlotMany(series[:],
		asciigraph.Height(14),
		asciigraph.Width(80),
		asciigraph.Precision(3),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue, asciigraph.Yellow),
		asciigraph.Caption(caption+" (red a, green b, blue c, yellow d)"),
	)
}

func analyzePresets(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	opts := analysis.DefaultOptions()
	opts.Iterations = iterations

	start := time.Now()
	reports := analysis.Survey(s.presets, opts)
	logger.Debug("survey finished", "presets", len(reports), "elapsed", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATTERN\tLYAPUNOV\tCHAOTIC\tX RANGE\tY RANGE\tCOVERAGE")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%+.4f\t%v\t[%+.2f, %+.2f]\t[%+.2f, %+.2f]\t%.1f%%\n",
			r.Name, r.Pattern, r.Lyapunov, r.Chaotic(),
			r.Bounds.MinX, r.Bounds.MaxX, r.Bounds.MinY, r.Bounds.MaxY,
			r.Coverage*100)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !systems {
		return nil
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYSTEM\tKIND\tLYAPUNOV")
	rk4 := integrators.NewRK4()
	fmt.Fprintf(w, "lorenz\tflow\t%+.4f /s\n",
		analysis.LyapunovExponent(physics.NewLorenz(), rk4, dynamo.State{1, 1, 1}, 0.01, 100, 1e-8))
	fmt.Fprintf(w, "rossler\tflow\t%+.4f /s\n",
		analysis.LyapunovExponent(physics.NewRossler(), rk4, dynamo.State{1, 1, 1}, 0.01, 500, 1e-8))
	fmt.Fprintf(w, "henon\tmap\t%+.4f\n",
		analysis.MapLyapunov(physics.NewHenon(), dynamo.Point{}, opts.Transient, iterations, opts.Perturbation))
	fmt.Fprintf(w, "ikeda\tmap\t%+.4f\n",
		analysis.MapLyapunov(physics.NewIkeda(), dynamo.Point{}, opts.Transient, iterations, opts.Perturbation))
	return w.Flush()
}

func bifurcate(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	p := s.presets[s.cfg.Preset]
	m := attractor.NewClifford(p.Params)
	if _, ok := m.GetParams()[sweepParam]; !ok {
		return fmt.Errorf("%w: unknown coefficient %q", dynamo.ErrInvalidConfig, sweepParam)
	}

	data := analysis.BifurcationDiagram(m, sweepParam, sweepMin, sweepMax, sweepSteps, dynamo.Point{}, attractor.WarmUpIterations, 300)
	fmt.Printf("preset: %s, sweeping %s over [%.2f, %.2f]\n\n", p.Name, sweepParam, sweepMin, sweepMax)
	fmt.Println(analysis.BifurcationToASCII(data, sweepSteps, 24))
	return nil
}

func benchFrames(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	sizes := [][2]int{{320, 200}, {960, 600}, {1920, 1080}}
	const n = 60

	fmt.Printf("benchmarking %s, %d points\n\n", s.presets[s.cfg.Preset].Name, s.cfg.Points)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tFRAMES\tTIME\tFRAMES/SEC\tDRAWN")

	for _, size := range sizes {
		comp, err := render.New(render.NewCanvas(size[0], size[1]), s.presets, s.cfg.Preset, render.OptionsFrom(s.cfg), s.rng)
		if err != nil {
			return err
		}

		drawn := 0
		start := time.Now()
		err = render.NewLoop(comp, s.cfg.FrameInterval()).Run(cmd.Context(), n, func(_ int, c *render.Compositor) error {
			drawn += c.Stats().Drawn
			return nil
		})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.1f\t%d\n",
			size[0], size[1], n, elapsed.Round(time.Millisecond), float64(n)/elapsed.Seconds(), drawn/n)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "attractor.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg := config.DefaultConfig()
	for _, p := range config.Presets {
		cfg.Presets = append(cfg.Presets, p.Spec())
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	logger.Info("wrote config", "path", path, "presets", len(cfg.Presets))
	return nil
}
