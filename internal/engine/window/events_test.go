package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/orbitscene/internal/engine/input"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  input.Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, input.Event{Type: input.EventQuit}, true},
		{"resize", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 640, Data2: 480},
			input.Event{Type: input.EventWindowResize, Width: 640, Height: 480}, true},
		{"window moved", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED}, input.Event{}, false},
		{"escape", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}},
			input.Event{Type: input.EventKeyDown, Key: input.KeyEscape}, true},
		{"f1 up", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F1}},
			input.Event{Type: input.EventKeyUp, Key: input.KeyF1}, true},
		{"f1 repeat", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F1}},
			input.Event{}, false},
		{"unbound key", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A}},
			input.Event{}, false},
		{"motion", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 3, Y: 4},
			input.Event{Type: input.EventMouseMove, X: 3, Y: 4}, true},
		{"left down", &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 1, Y: 2},
			input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft, X: 1, Y: 2}, true},
		{"right up", &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT},
			input.Event{Type: input.EventMouseUp, Button: input.ButtonRight}, true},
		{"wheel", &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2},
			input.Event{Type: input.EventScroll, ScrollY: 2}, true},
		{"wheel flipped", &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
			input.Event{Type: input.EventScroll, ScrollY: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestButtonNumbering(t *testing.T) {
	assert.Equal(t, input.Button(sdl.BUTTON_LEFT), input.ButtonLeft)
	assert.Equal(t, input.Button(sdl.BUTTON_MIDDLE), input.ButtonMiddle)
	assert.Equal(t, input.Button(sdl.BUTTON_RIGHT), input.ButtonRight)
}
