// Package notify carries layout change notifications out of the UI loop to
// whoever is listening (the log consumer in cmd/panes, tests).
package notify

import (
	"time"

	"panes/internal/gesture"
	"panes/internal/panel"
)

// Kind identifies what changed.
type Kind string

const (
	KindResizeStart Kind = "resize_start" // Divider pressed
	KindResizeEnd   Kind = "resize_end"   // Divider released
	KindReconciled  Kind = "reconciled"   // Window resize folded into the group
	KindReloaded    Kind = "reloaded"     // Config file re-read
	KindError       Kind = "error"        // Something went wrong; see Message
)

// Event describes one layout change.
type Event struct {
	Kind      Kind
	Divider   int       // -1 when not about a divider
	Sizes     []float64 // Panel sizes after the change
	Message   string
	Timestamp time.Time
}

// Emitter accepts events.
type Emitter interface {
	Emit(Event)
}

// ChanEmitter emits events to a channel.
type ChanEmitter struct {
	Ch chan<- Event
}

// Emit sends the event to the channel (non-blocking; drops if full).
func (e *ChanEmitter) Emit(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case e.Ch <- ev:
	default:
		// Channel full; drop to avoid stalling the UI
	}
}

// Hooks reports drag start and end to e. Moves are too chatty to forward.
func Hooks(e Emitter) gesture.Hooks {
	return gesture.Hooks{
		OnResizeStart: func(divider int, panels []panel.Panel) {
			e.Emit(Event{Kind: KindResizeStart, Divider: divider, Sizes: panel.Sizes(panels)})
		},
		OnResizeEnd: func(divider int, panels []panel.Panel) {
			e.Emit(Event{Kind: KindResizeEnd, Divider: divider, Sizes: panel.Sizes(panels)})
		},
	}
}
