// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/controls"
)

// EventType identifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    rune // Keycode, printable keys are their character
	Width  int
	Height int
	MouseX int
	MouseY int
	Button controls.Button
	Wheel  int
}

// Input polls SDL and keeps the events of the current frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them.
// Returns true if the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  keyRune(e.Keysym.Sym),
				})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			ev := Event{
				Type:   EventMouseDown,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: button(e.Button),
			}
			if e.Type == sdl.MOUSEBUTTONUP {
				ev.Type = EventMouseUp
			}
			i.events = append(i.events, ev)

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type:  EventMouseWheel,
				Wheel: int(e.Y),
			})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// keyRune folds keypad keys onto their main keyboard character.
func keyRune(sym sdl.Keycode) rune {
	switch sym {
	case sdl.K_KP_PLUS:
		return '+'
	case sdl.K_KP_MINUS:
		return '-'
	case sdl.K_KP_1:
		return '1'
	case sdl.K_KP_2:
		return '2'
	case sdl.K_KP_3:
		return '3'
	}
	return rune(sym)
}

func button(b uint8) controls.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return controls.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return controls.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return controls.ButtonRight
	}
	return controls.ButtonNone
}
