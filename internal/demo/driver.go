package demo

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Advancer moves the scene forward by one frame.
type Advancer interface {
	Advance()
}

// Surface is the display the driver draws to.
type Surface interface {
	// PollQuit drains pending events and reports whether to stop.
	PollQuit() bool
	// Render draws the current scene state.
	Render() error
	// Present shows the frame just rendered.
	Present()
}

// FrameHook runs after a frame has been presented. frame counts from 1.
type FrameHook func(frame uint64) error

// Driver runs the update-then-render cycle until stopped.
type Driver struct {
	model   Advancer
	surface Surface
	log     *zap.Logger

	// MaxFrames stops the loop after that many frames; 0 means never.
	MaxFrames uint64

	hooks []FrameHook
	frame uint64
}

// NewDriver creates a driver over a model and a surface.
func NewDriver(model Advancer, surface Surface, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{
		model:   model,
		surface: surface,
		log:     log,
	}
}

// OnFrame registers a hook to run after every presented frame.
func (d *Driver) OnFrame(h FrameHook) {
	d.hooks = append(d.hooks, h)
}

// Frames returns the number of frames presented so far.
func (d *Driver) Frames() uint64 {
	return d.frame
}

// Run loops until the surface asks to quit, ctx is cancelled, or MaxFrames
// is reached. Each frame advances the model exactly once and only then
// renders, so every rendered frame reflects a completed update.
func (d *Driver) Run(ctx context.Context) error {
	d.log.Info("starting frame loop", zap.Uint64("max_frames", d.MaxFrames))

	for {
		select {
		case <-ctx.Done():
			d.log.Info("frame loop cancelled", zap.Uint64("frames", d.frame))
			return nil
		default:
		}

		if d.surface.PollQuit() {
			d.log.Info("quit requested", zap.Uint64("frames", d.frame))
			return nil
		}

		d.model.Advance()

		if err := d.surface.Render(); err != nil {
			return fmt.Errorf("render frame %d: %w", d.frame+1, err)
		}
		d.surface.Present()
		d.frame++

		for _, h := range d.hooks {
			if err := h(d.frame); err != nil {
				return fmt.Errorf("frame %d hook: %w", d.frame, err)
			}
		}

		if d.MaxFrames > 0 && d.frame >= d.MaxFrames {
			d.log.Info("frame limit reached", zap.Uint64("frames", d.frame))
			return nil
		}
	}
}
