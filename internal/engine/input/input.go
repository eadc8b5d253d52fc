// Package input turns SDL2 events into demo actions and camera gestures.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
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
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	// DX and DY hold the relative motion for EventMouseMove and the
	// scroll amount for EventMouseWheel.
	DX     float32
	DY     float32
	Button uint8
}

// Action is a demo command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleRayTracing
	ActionResetRotation
	ActionScreenshot
	ActionToggleFullscreen
)

// Bindings maps scancodes to actions.
type Bindings map[sdl.Scancode]Action

// DefaultBindings returns the demo key map.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_Q:      ActionQuit,
		sdl.SCANCODE_ESCAPE: ActionQuit,
		sdl.SCANCODE_T:      ActionToggleRayTracing,
		sdl.SCANCODE_R:      ActionResetRotation,
		sdl.SCANCODE_F12:    ActionScreenshot,
		sdl.SCANCODE_F11:    ActionToggleFullscreen,
	}
}

// Drag accumulates mouse motion while the left button is held, plus wheel
// scrolling, for one frame.
type Drag struct {
	DX, DY float32
	Wheel  float32
}

// Input handles all input processing.
type Input struct {
	events   []Event
	bindings Bindings
	dragging bool
	drag     Drag
}

// New creates a new input handler with the default bindings.
func New() *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		bindings: DefaultBindings(),
	}
}

// SetBindings replaces the key map.
func (i *Input) SetBindings(b Bindings) {
	i.bindings = b
}

// Update polls SDL events. It returns true if the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := translate(event)
		if !ok {
			continue
		}
		i.Push(e)
		if e.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		if e.Type == sdl.KEYDOWN {
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		}
		if e.Type == sdl.KEYUP {
			return Event{Type: EventKeyUp, Key: e.Keysym.Scancode}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			DX:     float32(e.XRel),
			DY:     float32(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventMouseDown
		}
		return Event{
			Type:   t,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
		}, true

	case *sdl.MouseWheelEvent:
		return Event{
			Type: EventMouseWheel,
			DX:   float32(e.X),
			DY:   float32(e.Y),
		}, true
	}
	return Event{}, false
}

// Push records an event as if it came from SDL. Update clears the list at
// the start of each frame.
func (i *Input) Push(e Event) {
	if len(i.events) == 0 {
		i.drag.DX, i.drag.DY, i.drag.Wheel = 0, 0, 0
	}
	i.events = append(i.events, e)

	switch e.Type {
	case EventMouseDown:
		if e.Button == sdl.BUTTON_LEFT {
			i.dragging = true
		}
	case EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT {
			i.dragging = false
		}
	case EventMouseMove:
		if i.dragging {
			i.drag.DX += e.DX
			i.drag.DY += e.DY
		}
	case EventMouseWheel:
		i.drag.Wheel += e.DY
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// Actions returns the bound actions triggered this frame, in event order.
func (i *Input) Actions() []Action {
	var actions []Action
	for _, e := range i.events {
		if e.Type != EventKeyDown {
			continue
		}
		if a, ok := i.bindings[e.Key]; ok && a != ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

// Resized reports the last window size change this frame.
func (i *Input) Resized() (width, height int, ok bool) {
	for _, e := range i.events {
		if e.Type == EventWindowResize {
			width, height, ok = e.Width, e.Height, true
		}
	}
	return width, height, ok
}

// Drag returns the camera gesture accumulated this frame.
func (i *Input) Drag() Drag {
	if len(i.events) == 0 {
		return Drag{}
	}
	return i.drag
}
