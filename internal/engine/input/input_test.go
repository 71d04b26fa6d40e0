package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestIsQuitEvent(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, true},
		{"window close", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_CLOSE}, true},
		{"window resize", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600}, false},
		{"escape down", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}}, true},
		{"escape up", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}}, false},
		{"other key", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}}, false},
		{"mouse motion", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsQuitEvent(tt.event); got != tt.want {
				t.Errorf("IsQuitEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}
