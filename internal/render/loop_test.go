package render_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/attractor/internal/config"
	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/render"
)

var _ = Describe("Loop", func() {
	var comp *render.Compositor

	BeforeEach(func() {
		var err error
		comp, err = render.New(render.NewCanvas(64, 48), config.Presets, 3, options(), nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("renders the requested number of frames at a fixed interval", func() {
		loop := render.NewLoop(comp, 100*time.Millisecond)
		var seen []int
		err := loop.Run(context.Background(), 5, func(frame int, c *render.Compositor) error {
			seen = append(seen, frame)
			return nil
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(Equal([]int{0, 1, 2, 3, 4}))
		Expect(comp.State().Phase).To(BeNumerically("~", 0.35, 1e-12))
	})

	It("falls back to 30 fps for a non-positive interval", func() {
		Expect(render.NewLoop(comp, 0).Interval()).To(Equal(time.Second / 30))
	})

	It("stops cleanly when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		loop := render.NewLoop(comp, time.Millisecond)

		err := loop.Run(ctx, 100, func(frame int, _ *render.Compositor) error {
			if frame == 2 {
				cancel()
			}
			return nil
		})
		Expect(errors.Is(err, dynamo.ErrContextCanceled)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("after 3 frames"))
	})

	It("propagates sink errors", func() {
		boom := errors.New("disk full")
		err := render.NewLoop(comp, time.Millisecond).Run(context.Background(), 4, func(frame int, _ *render.Compositor) error {
			if frame == 1 {
				return boom
			}
			return nil
		})
		Expect(errors.Is(err, boom)).To(BeTrue())
	})
})
