package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/orbitscene/internal/engine/input"
)

// PollEvents drains the SDL queue and appends translated events to dst.
func (w *Window) PollEvents(dst []input.Event) []input.Event {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := translate(event); ok {
			dst = append(dst, e)
		}
	}
	return dst
}

var keys = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
	sdl.SCANCODE_F1:     input.KeyF1,
	sdl.SCANCODE_F2:     input.KeyF2,
	sdl.SCANCODE_F12:    input.KeyF12,
}

// translate converts one SDL event. Unbound keys, key repeats and
// unrelated event types are dropped.
func translate(event sdl.Event) (input.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return input.Event{Type: input.EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return input.Event{
				Type:   input.EventWindowResize,
				Width:  e.Data1,
				Height: e.Data2,
			}, true
		}

	case *sdl.KeyboardEvent:
		key, ok := keys[e.Keysym.Scancode]
		if !ok || e.Repeat != 0 {
			return input.Event{}, false
		}
		if e.Type == sdl.KEYDOWN {
			return input.Event{Type: input.EventKeyDown, Key: key}, true
		}
		if e.Type == sdl.KEYUP {
			return input.Event{Type: input.EventKeyUp, Key: key}, true
		}

	case *sdl.MouseMotionEvent:
		return input.Event{Type: input.EventMouseMove, X: e.X, Y: e.Y}, true

	case *sdl.MouseButtonEvent:
		ev := input.Event{X: e.X, Y: e.Y, Button: input.Button(e.Button)}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev.Type = input.EventMouseDown
			return ev, true
		}
		if e.Type == sdl.MOUSEBUTTONUP {
			ev.Type = input.EventMouseUp
			return ev, true
		}

	case *sdl.MouseWheelEvent:
		dy := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		return input.Event{Type: input.EventScroll, ScrollY: dy}, true
	}

	return input.Event{}, false
}
