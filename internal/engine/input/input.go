// Package input folds window events into the per-frame input state.
//
// Events are produced by the window package; this package has no
// platform dependency so the state logic can be tested headless.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventScroll
)

// Key is a keyboard key the application binds.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF1
	KeyF2
	KeyF12
)

// Button is a mouse button, numbered as SDL numbers them.
type Button uint8

const (
	ButtonLeft   Button = 1
	ButtonMiddle Button = 2
	ButtonRight  Button = 3
)

// Event represents a processed input event.
type Event struct {
	Type    EventType
	Key     Key
	Button  Button
	X, Y    int32
	ScrollY float32
	Width   int32
	Height  int32
}

const (
	// ZoomStep is the zoom change per scroll notch.
	ZoomStep = 0.5
	// MinZoom is the smallest zoom distance kept in the state.
	MinZoom = 0.2
)

// State is the input the frame driver hands to the camera and renderer.
type State struct {
	CursorX, CursorY int32
	Zoom             float32
	Dragging         bool

	// Toggles.
	Wireframe bool
	Culling   bool

	// One-shot flags, cleared by BeginFrame.
	Quit       bool
	Screenshot bool
	Resized    bool

	Width, Height int32
}

// NewState returns a state with the given zoom distance and back-face
// culling enabled.
func NewState(zoom float32) *State {
	return &State{Zoom: zoom, Culling: true}
}

// BeginFrame clears one-shot flags. Quit stays set once requested.
func (s *State) BeginFrame() {
	s.Screenshot = false
	s.Resized = false
}

// Apply folds one event into the state.
func (s *State) Apply(e Event) {
	switch e.Type {
	case EventQuit:
		s.Quit = true

	case EventWindowResize:
		s.Width, s.Height = e.Width, e.Height
		s.Resized = true

	case EventKeyDown:
		switch e.Key {
		case KeyEscape:
			s.Quit = true
		case KeyF1:
			s.Wireframe = !s.Wireframe
		case KeyF2:
			s.Culling = !s.Culling
		case KeyF12:
			s.Screenshot = true
		}

	case EventMouseMove:
		s.CursorX, s.CursorY = e.X, e.Y

	case EventMouseDown:
		s.CursorX, s.CursorY = e.X, e.Y
		if e.Button == ButtonLeft {
			s.Dragging = true
		}

	case EventMouseUp:
		s.CursorX, s.CursorY = e.X, e.Y
		if e.Button == ButtonLeft {
			s.Dragging = false
		}

	case EventScroll:
		s.Zoom -= e.ScrollY * ZoomStep
		if s.Zoom < MinZoom {
			s.Zoom = MinZoom
		}
	}
}

// ApplyAll folds events in order.
func (s *State) ApplyAll(events []Event) {
	for _, e := range events {
		s.Apply(e)
	}
}
