package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"panes/internal/gesture"
)

// pointerEvent converts a terminal mouse message into a pointer event.
// Wheel messages are not pointer events and report false.
func pointerEvent(msg tea.MouseMsg) (gesture.Event, bool) {
	ev := gesture.Event{
		Pointer: gesture.Mouse,
		Button:  mouseButton(msg.Button),
		Pos:     gesture.Point{X: float64(msg.X), Y: float64(msg.Y)},
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if tea.MouseEvent(msg).IsWheel() {
			return gesture.Event{}, false
		}
		ev.Kind = gesture.Down
	case tea.MouseActionMotion:
		ev.Kind = gesture.Move
	case tea.MouseActionRelease:
		ev.Kind = gesture.Up
	default:
		return gesture.Event{}, false
	}
	return ev, true
}

func mouseButton(b tea.MouseButton) gesture.Button {
	switch b {
	case tea.MouseButtonLeft:
		return gesture.ButtonPrimary
	case tea.MouseButtonMiddle:
		return gesture.ButtonMiddle
	case tea.MouseButtonRight:
		return gesture.ButtonSecondary
	default:
		return gesture.ButtonNone
	}
}
