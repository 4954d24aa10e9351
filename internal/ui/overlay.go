package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay is a popup drawn over the panel group, such as the drag history.
// While open it receives every key the keybind system does not claim.
type Overlay struct {
	View    View
	Dismiss []string // keys that close it
}

// IsDismissKey reports whether key closes o.
func (o *Overlay) IsDismissKey(key string) bool {
	return slices.Contains(o.Dismiss, key)
}

// OverlayStack holds the open overlays; only the topmost is drawn and
// receives input.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens o above the others.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes the topmost overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the topmost overlay.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len is the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop feeds msg to the topmost overlay. ok is false when none is
// open, in which case msg is left for the panel group.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	top.View, cmd = top.View.Update(msg)
	return cmd, true
}

// Render centres the topmost overlay in a width x height area.
func (s *OverlayStack) Render(width, height int) (string, bool) {
	top, ok := s.Peek()
	if !ok {
		return "", false
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, top.View.View()), true
}
