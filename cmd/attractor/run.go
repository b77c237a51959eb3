package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/san-kum/attractor/internal/export"
	"github.com/san-kum/attractor/internal/render"
	"github.com/san-kum/attractor/internal/storage"
	"github.com/san-kum/attractor/internal/tui"
	"github.com/san-kum/attractor/internal/viz"
)

func runLive(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	return animate(cmd, s)
}

// runPicker lets the user choose and tweak a preset before animating.
func runPicker(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	sel, err := tui.Pick(s.presets, s.cfg.Preset)
	if err != nil {
		return fmt.Errorf("preset picker: %w", err)
	}
	if !sel.Chosen {
		return nil
	}
	s.presets = sel.Presets
	s.cfg.Preset = sel.Index
	logger.Debug("picked preset", "name", s.presets[sel.Index].Name, "params", s.presets[sel.Index].Params)
	return animate(cmd, s)
}

func animate(cmd *cobra.Command, s *session) error {
	comp, err := render.New(render.NewCanvas(1, 1), s.presets, s.cfg.Preset, render.OptionsFrom(s.cfg), s.rng)
	if err != nil {
		return err
	}

	return viz.Run(cmd.Context(), comp, viz.Options{
		FPS:         s.cfg.FPS,
		Supersample: s.cfg.Live.Supersample,
		Braille:     s.cfg.Live.Braille,
		Theme:       s.cfg.Live.Theme,
	})
}

func runGIF(cmd *cobra.Command, args []string) error {
	return renderOffline(cmd, "gif", "attractor.gif", export.Job.GIF)
}

func runPNG(cmd *cobra.Command, args []string) error {
	return renderOffline(cmd, "png", "attractor.png", export.Job.PNG)
}

func runSVG(cmd *cobra.Command, args []string) error {
	return renderOffline(cmd, "svg", "attractor.svg", export.Job.SVG)
}

type renderFunc func(export.Job, context.Context, io.Writer) (*export.Result, error)

// renderOffline runs a job into a fresh run directory and stores the
// metadata sidecar next to the artifact.
func renderOffline(cmd *cobra.Command, kind, artifact string, fn renderFunc) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	n, err := cmd.Flags().GetInt("frames")
	if err != nil {
		return err
	}

	st := storage.New(outDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, runDir, err := st.NewRun(kind, s.presets[s.cfg.Preset].Name)
	if err != nil {
		return err
	}

	path := filepath.Join(runDir, artifact)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	job := export.Job{
		Config:  s.cfg,
		Presets: s.presets,
		Start:   s.cfg.Preset,
		Frames:  n,
		Rand:    s.rng,
		Every:   every,
		Label:   !noLabel,
		Scale:   scale,
		Layers:  layers,
	}

	logger.Info("rendering", "kind", kind, "frames", n, "preset", s.presets[s.cfg.Preset].Name, "size", fmt.Sprintf("%dx%d", s.cfg.Width, s.cfg.Height))
	res, err := fn(job, cmd.Context(), f)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	res.Meta.ID = runID
	res.Meta.Artifact = artifact
	if err := st.Save(res.Meta, res.Trace); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}

	logger.Info("done", "run", runID, "path", path)
	return nil
}
