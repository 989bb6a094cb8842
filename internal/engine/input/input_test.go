package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	s := NewState(6)
	assert.Equal(t, float32(6), s.Zoom)
	assert.True(t, s.Culling)
	assert.False(t, s.Wireframe)
	assert.False(t, s.Dragging)
}

func TestDrag(t *testing.T) {
	s := NewState(6)

	s.Apply(Event{Type: EventMouseDown, Button: ButtonRight, X: 1, Y: 1})
	assert.False(t, s.Dragging, "only the left button drags")

	s.ApplyAll([]Event{
		{Type: EventMouseDown, Button: ButtonLeft, X: 10, Y: 20},
		{Type: EventMouseMove, X: 15, Y: 25},
	})
	assert.True(t, s.Dragging)
	assert.Equal(t, int32(15), s.CursorX)
	assert.Equal(t, int32(25), s.CursorY)

	s.Apply(Event{Type: EventMouseUp, Button: ButtonLeft, X: 16, Y: 26})
	assert.False(t, s.Dragging)
	assert.Equal(t, int32(16), s.CursorX)
}

func TestScroll(t *testing.T) {
	s := NewState(6)

	s.Apply(Event{Type: EventScroll, ScrollY: 1})
	assert.Equal(t, float32(5.5), s.Zoom)
	s.Apply(Event{Type: EventScroll, ScrollY: -3})
	assert.Equal(t, float32(7), s.Zoom)

	s.Apply(Event{Type: EventScroll, ScrollY: 100})
	assert.Equal(t, float32(MinZoom), s.Zoom)
}

func TestKeyBindings(t *testing.T) {
	s := NewState(6)

	s.Apply(Event{Type: EventKeyDown, Key: KeyF1})
	assert.True(t, s.Wireframe)
	s.Apply(Event{Type: EventKeyUp, Key: KeyF1})
	assert.True(t, s.Wireframe, "key up does not toggle")
	s.Apply(Event{Type: EventKeyDown, Key: KeyF1})
	assert.False(t, s.Wireframe)

	s.Apply(Event{Type: EventKeyDown, Key: KeyF2})
	assert.False(t, s.Culling)

	s.Apply(Event{Type: EventKeyDown, Key: KeyF12})
	assert.True(t, s.Screenshot)

	s.Apply(Event{Type: EventKeyDown, Key: KeyUnknown})
	assert.False(t, s.Quit)
	s.Apply(Event{Type: EventKeyDown, Key: KeyEscape})
	assert.True(t, s.Quit)
}

func TestQuitAndResize(t *testing.T) {
	s := NewState(6)
	s.ApplyAll([]Event{
		{Type: EventWindowResize, Width: 1024, Height: 768},
		{Type: EventQuit},
	})
	assert.True(t, s.Quit)
	assert.True(t, s.Resized)
	assert.Equal(t, int32(1024), s.Width)
	assert.Equal(t, int32(768), s.Height)
}

func TestBeginFrame(t *testing.T) {
	s := NewState(6)
	s.ApplyAll([]Event{
		{Type: EventKeyDown, Key: KeyF12},
		{Type: EventKeyDown, Key: KeyF1},
		{Type: EventWindowResize, Width: 10, Height: 10},
		{Type: EventQuit},
	})

	s.BeginFrame()
	assert.False(t, s.Screenshot)
	assert.False(t, s.Resized)
	assert.True(t, s.Wireframe, "toggles persist")
	assert.True(t, s.Quit, "quit persists")
}
