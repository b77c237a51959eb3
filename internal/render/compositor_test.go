package render_test

import (
	"errors"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/pattern"
	"github.com/san-kum/attractor/internal/render"
)

func options() render.Options {
	return render.OptionsFrom(config.DefaultConfig())
}

var _ = Describe("Compositor", func() {
	var (
		surf *recorder
		comp *render.Compositor
	)

	BeforeEach(func() {
		surf = newRecorder(800, 600)
		var err error
		comp, err = render.New(surf, config.Presets, 0, options(), constRand(0.5))
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts on the requested preset with its name showing", func() {
		Expect(comp.Preset().Name).To(Equal("SPECTRAL MEMORY"))
		name, visible := comp.NameLabel()
		Expect(name).To(Equal("SPECTRAL MEMORY"))
		Expect(visible).To(BeTrue())
		Expect(comp.State().Base).To(Equal(config.Presets[0].Params))
		Expect(comp.State().Params).To(Equal(config.Presets[0].Params))
	})

	It("rejects an empty preset table and an out-of-range start", func() {
		_, err := render.New(surf, nil, 0, options(), nil)
		Expect(errors.Is(err, dynamo.ErrInvalidPreset)).To(BeTrue())

		_, err = render.New(surf, config.Presets, len(config.Presets), options(), nil)
		Expect(errors.Is(err, dynamo.ErrInvalidConfig)).To(BeTrue())
	})

	It("advances the phase by elapsed time times the rate", func() {
		comp.Frame(2 * time.Second)
		Expect(comp.State().Phase).To(BeNumerically("~", 1.4, 1e-12))
		comp.Frame(500 * time.Millisecond)
		Expect(comp.State().Phase).To(BeNumerically("~", 1.75, 1e-12))
	})

	It("derives effective parameters from base parameters and phase only", func() {
		comp.Frame(3 * time.Second)
		st := comp.State()
		Expect(st.Params).To(Equal(attractor.Modulate(st.Base, st.Phase)))
		Expect(st.Base).To(Equal(config.Presets[0].Params))
	})

	It("fades before drawing points and resets alpha afterwards", func() {
		comp.Frame(16 * time.Millisecond)

		Expect(surf.calls[0].op).To(Equal("rect"))
		Expect(surf.calls[0].col.A).To(Equal(uint8(5)))
		Expect(surf.calls[0].alpha).To(Equal(1.0))
		Expect(surf.calls[1].op).To(Equal("radial"))
		Expect(surf.calls[1].stopsCount).To(Equal(3))
		Expect(surf.calls[1].r).To(Equal(300.0))
		Expect(surf.alpha).To(Equal(1.0))
	})

	It("draws a glow and a core circle for every surviving point", func() {
		stats := comp.Frame(16 * time.Millisecond)
		circles := surf.ops("circle")

		Expect(stats.Drawn + stats.Culled + stats.NonFinite).To(Equal(2000))
		Expect(stats.Drawn).To(BeNumerically(">", 0))
		Expect(circles).To(HaveLen(2 * stats.Drawn))

		for i := 0; i < len(circles); i += 2 {
			glow, core := circles[i], circles[i+1]
			Expect(glow.x).To(Equal(core.x))
			Expect(glow.r).To(BeNumerically("~", core.r*2, 1e-12))
			Expect(glow.alpha).To(BeNumerically("~", core.alpha*0.3, 1e-12))
			Expect(core.alpha).To(Equal(0.7))
			Expect(core.x).To(BeNumerically(">=", -render.CullPadding))
			Expect(core.x).To(BeNumerically("<=", 800+render.CullPadding))
		}
	})

	It("culls points that land outside the padded surface", func() {
		// MIDNIGHT ORBIT spans more than the ±2.5 units that fit the
		// square, so part of it falls past the padding.
		rec := newRecorder(600, 600)
		c, err := render.New(rec, config.Presets, 7, options(), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Preset().Name).To(Equal("MIDNIGHT ORBIT"))

		stats := c.Frame(time.Millisecond)
		Expect(stats.Culled).To(BeNumerically(">", 0))
		Expect(stats.Drawn + stats.Culled + stats.NonFinite).To(Equal(options().Points))
		Expect(rec.ops("circle")).To(HaveLen(2 * stats.Drawn))
		for _, call := range rec.ops("circle") {
			Expect(call.x).To(BeNumerically(">=", -render.CullPadding))
			Expect(call.x).To(BeNumerically("<=", 600+render.CullPadding))
			Expect(call.y).To(BeNumerically(">=", -render.CullPadding))
			Expect(call.y).To(BeNumerically("<=", 600+render.CullPadding))
		}
	})

	It("cycles presets and resets the name timer", func() {
		n := len(config.Presets)
		for i := 1; i <= n; i++ {
			comp.Frame(4 * time.Second)
			_, visible := comp.NameLabel()
			Expect(visible).To(BeFalse())

			comp.AdvancePreset()
			st := comp.State()
			Expect(st.Cursor.Index()).To(Equal(i % n))
			Expect(st.Timer.Remaining()).To(Equal(3.0))
			Expect(st.Base).To(Equal(config.Presets[i%n].Params))
			Expect(st.Params).To(Equal(st.Base))
		}
		Expect(comp.Preset().Name).To(Equal("SPECTRAL MEMORY"))
	})

	It("keeps the phase running across preset changes", func() {
		comp.Frame(time.Second)
		before := comp.State().Phase
		comp.AdvancePreset()
		Expect(comp.State().Phase).To(Equal(before))
	})

	It("draws greyscale after the color toggle", func() {
		comp.ToggleColor()
		Expect(comp.State().Color).To(BeFalse())

		comp.Frame(16 * time.Millisecond)
		for _, call := range surf.ops("circle") {
			Expect(call.col.R).To(Equal(call.col.G))
			Expect(call.col.G).To(Equal(call.col.B))
		}

		comp.ToggleColor()
		surf.reset()
		comp.Frame(16 * time.Millisecond)
		colored := false
		for _, call := range surf.ops("circle") {
			if call.col.R != call.col.G || call.col.G != call.col.B {
				colored = true
			}
		}
		Expect(colored).To(BeTrue())
	})

	It("reports the name through the sink on every change", func() {
		var shown []string
		comp.OnName(func(name string, d time.Duration) {
			shown = append(shown, name)
			Expect(d).To(Equal(3 * time.Second))
		})
		comp.AdvancePreset()
		Expect(shown).To(Equal([]string{"SPECTRAL MEMORY", "NOVA REMNANT"}))
	})

	It("forwards resizes to resizable surfaces", func() {
		comp.Resize(320, 200)
		w, h := surf.Size()
		Expect(w).To(Equal(320))
		Expect(h).To(Equal(200))
	})

	DescribeTable("renders every curated preset without non-finite points",
		func(i int) {
			c, err := render.New(newRecorder(640, 480), config.Presets, i, options(), constRand(0.5))
			Expect(err).NotTo(HaveOccurred())
			for f := 0; f < 3; f++ {
				stats := c.Frame(33 * time.Millisecond)
				Expect(stats.NonFinite).To(BeZero())
				Expect(stats.Drawn).To(BeNumerically(">", 0))
			}
		},
		func() []TableEntry {
			var entries []TableEntry
			for i, p := range config.Presets {
				entries = append(entries, Entry(p.Name, i))
			}
			return entries
		}(),
	)
})

var _ = Describe("non-finite parameters", func() {
	It("skips draws instead of propagating NaN", func() {
		presets := []config.Preset{{
			Params:  dynamo.Params{A: math.Inf(1), B: 1, C: 1, D: 1},
			Name:    "DEGENERATE",
			Hue:     0.5,
			Pattern: pattern.Standard,
		}}
		surf := newRecorder(200, 200)
		c, err := render.New(surf, presets, 0, options(), nil)
		Expect(err).NotTo(HaveOccurred())

		stats := c.Frame(time.Millisecond)
		Expect(stats.Drawn).To(BeZero())
		Expect(stats.NonFinite).To(Equal(2000))
		Expect(surf.ops("circle")).To(BeEmpty())
	})
})
