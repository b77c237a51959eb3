package render

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/attractor/internal/dynamo"
)

// FrameSink is called after every rendered frame.
type FrameSink func(frame int, c *Compositor) error

// Loop drives a compositor at a fixed frame interval without a wall
// clock. It is the offline counterpart of the live terminal host.
type Loop struct {
	comp     *Compositor
	interval time.Duration
}

func NewLoop(comp *Compositor, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = time.Second / 30
	}
	return &Loop{comp: comp, interval: interval}
}

func (l *Loop) Interval() time.Duration { return l.interval }

// Run renders frames frames. Cancelling ctx stops the loop before the
// next frame is drawn.
func (l *Loop) Run(ctx context.Context, frames int, sink FrameSink) error {
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w after %d frames: %v", dynamo.ErrContextCanceled, i, ctx.Err())
		default:
		}

		l.comp.Frame(l.interval)
		if sink == nil {
			continue
		}
		if err := sink(i, l.comp); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}
