package trace

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// EventType identifies a step in a divider drag.
type EventType string

const (
	EventDragStart EventType = "drag_start" // Divider pressed
	EventDragMove  EventType = "drag_move"  // Pointer moved while dragging
	EventDragEnd   EventType = "drag_end"   // Divider released or cancelled
)

// Move is one resize request made during a drag.
type Move struct {
	Requested float64
	Applied   float64
	At        time.Time
}

// Gesture is the record of one divider drag from press to release.
type Gesture struct {
	TraceID   string
	SpanID    string
	Divider   int
	StartTime time.Time
	Duration  time.Duration
	Before    []float64 // Panel sizes at press
	After     []float64 // Panel sizes at release
	Moves     []Move
	Status    string // "running" or "completed"
}

// Requested is the total pointer travel asked of the solver.
func (g *Gesture) Requested() float64 {
	var sum float64
	for _, m := range g.Moves {
		sum += m.Requested
	}
	return sum
}

// Applied is the total distance the divider actually moved.
func (g *Gesture) Applied() float64 {
	var sum float64
	for _, m := range g.Moves {
		sum += m.Applied
	}
	return sum
}

// Clamped counts the moves the solver could not honour in full.
func (g *Gesture) Clamped() int {
	n := 0
	for _, m := range g.Moves {
		if m.Applied != m.Requested {
			n++
		}
	}
	return n
}

// NewTraceID generates a random 16-byte trace ID as hex string (32 characters)
func NewTraceID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// NewSpanID generates a random 8-byte span ID as hex string (16 characters)
func NewSpanID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
