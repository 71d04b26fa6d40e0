package demo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cube-orbitals/internal/config"
	"github.com/Faultbox/cube-orbitals/internal/engine/camera"
	"github.com/Faultbox/cube-orbitals/internal/engine/debug"
	"github.com/Faultbox/cube-orbitals/internal/engine/input"
	"github.com/Faultbox/cube-orbitals/internal/engine/renderer"
	"github.com/Faultbox/cube-orbitals/internal/engine/window"
	"github.com/Faultbox/cube-orbitals/internal/logger"
)

// traceEvery is how often motion state is logged at debug level.
const traceEvery = 60

// App binds a variant to a real window.
type App struct {
	config   *config.Config
	log      *zap.Logger
	variant  *Variant
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	capture  *debug.FrameCapture
}

// New opens the window, sizes the camera to it and builds the variant.
func New(cfg *config.Config, build Builder) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("demo"),
	}

	// Title is only known once the variant exists; it is set after sizing.
	var err error
	a.window, err = window.New(window.Config{
		Title:      "Cube Orbitals",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The viewport is read once; the window is not resizable.
	width, height := a.window.DrawableSize()
	a.variant = build(camera.AspectRatio(width, height))
	a.window.SetTitle(a.variant.Title)

	// Renderer needs the OpenGL context the window just created
	a.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	if cfg.Debug.CaptureFrame > 0 {
		a.capture = debug.NewFrameCapture(cfg.Debug.CaptureDir, a.variant.Name)
	}

	a.log.Info("demo initialized",
		zap.String("variant", a.variant.Name),
		zap.Int("meshes", len(a.variant.Scene.Meshes())),
		zap.Float32("aspect", a.variant.Camera.Aspect),
	)
	return a, nil
}

// Variant returns the running variant.
func (a *App) Variant() *Variant {
	return a.variant
}

// PollQuit implements Surface.
func (a *App) PollQuit() bool {
	return a.input.Update()
}

// Render implements Surface. A configured capture is read back here, before
// the buffers are swapped.
func (a *App) Render() error {
	if err := a.renderer.Render(a.variant.Scene, a.variant.Camera); err != nil {
		return err
	}

	frame := a.variant.Motion.Frame()
	if a.capture == nil || frame != uint64(a.config.Debug.CaptureFrame) {
		return nil
	}
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.capture.SavePixels(frame, pixels, w, h)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	a.log.Info("frame captured", zap.Uint64("frame", frame), zap.String("path", path))
	return nil
}

// Present implements Surface.
func (a *App) Present() {
	a.window.SwapBuffers()
}

// Run drives the variant until the window closes, ctx is cancelled, or the
// configured frame limit is reached.
func (a *App) Run(ctx context.Context) error {
	d := NewDriver(a.variant.Motion, a, a.log)
	d.MaxFrames = uint64(a.config.Debug.MaxFrames)

	if a.config.Debug.LogFPS {
		d.OnFrame(FPSLogger(a.log, nil))
	}
	d.OnFrame(MotionTracer(a.log, a.variant, traceEvery))

	return d.Run(ctx)
}

// Close releases the renderer and the window.
func (a *App) Close() {
	a.log.Info("closing demo")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// LoggerOptions maps logging config onto logger options.
func LoggerOptions(cfg *config.Config) logger.Options {
	return logger.Options{
		Level: cfg.Logging.Level,
		File: logger.FileConfig{
			Path:       cfg.Logging.LogFile,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		},
		Console: true,
	}
}
