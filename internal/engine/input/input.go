// Package input polls SDL2 events. The demos take no input; the only events
// that matter are the ones that end the program.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Input drains the SDL event queue once per frame.
type Input struct {
	quit bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{}
}

// Update polls all pending SDL events.
// Returns true once the window has been closed or Escape pressed.
func (i *Input) Update() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if IsQuitEvent(event) {
			i.quit = true
		}
	}
	return i.quit
}

// Quit reports whether a quit event has been seen.
func (i *Input) Quit() bool {
	return i.quit
}

// IsQuitEvent reports whether an event should end the program: the window
// close button, or Escape. Everything else, resizes included, is ignored.
func IsQuitEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true
	case *sdl.WindowEvent:
		return e.Event == sdl.WINDOWEVENT_CLOSE
	case *sdl.KeyboardEvent:
		return e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE
	}
	return false
}
