// Package group holds a panel group: an ordered row or column of panels
// separated by dividers. It owns the constraint solver that redistributes
// space when a divider moves, the reconciler that absorbs container size
// changes, and the projector that turns sizes into renderable boxes.
//
// A Group is not safe for concurrent use. Every mutation is expected to run
// to completion inside a single event handler.
package group

import (
	"errors"
	"fmt"

	"panes/internal/panel"
)

// ErrUnmeasured is the precondition violation raised (via panic) when a
// resize is attempted before the host has measured the group.
var ErrUnmeasured = errors.New("group: bounding geometry not measured")

// Direction is the flow axis of a group.
type Direction int

const (
	Row    Direction = iota // panels left to right
	Column                  // panels top to bottom
)

func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "row", "":
		*d = Row
	case "column":
		*d = Column
	default:
		return fmt.Errorf("unknown direction %q (want row or column)", string(b))
	}
	return nil
}

// Size is a measured bounding box.
type Size struct {
	Width  float64
	Height float64
}

// Measurer reports the group's current bounding box. ok is false until the
// host has laid the group out at least once.
type Measurer interface {
	Measure() (Size, bool)
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func() (Size, bool)

// Measure implements Measurer.
func (f MeasureFunc) Measure() (Size, bool) { return f() }

// Fixed returns a Measurer that always reports the given box.
func Fixed(width, height float64) Measurer {
	return MeasureFunc(func() (Size, bool) {
		return Size{Width: width, Height: height}, true
	})
}

// Group is a row or column of panels.
type Group struct {
	panels    []panel.Panel
	spacing   float64
	direction Direction
	measurer  Measurer
}

// Options configures a Group.
type Options struct {
	Spacing   float64
	Direction Direction
}

// New creates a group over panels. The slice is copied.
func New(panels []panel.Panel, m Measurer, opts Options) *Group {
	return &Group{
		panels:    panel.CloneAll(panels),
		spacing:   opts.Spacing,
		direction: opts.Direction,
		measurer:  m,
	}
}

// Panels returns a snapshot of the current panel state.
func (g *Group) Panels() []panel.Panel {
	return panel.CloneAll(g.panels)
}

// Panel returns a copy of panel i.
func (g *Group) Panel(i int) panel.Panel {
	return g.panels[i].Clone()
}

// Len is the number of panels.
func (g *Group) Len() int { return len(g.panels) }

// Dividers is the number of dividers (panels - 1, never negative).
func (g *Group) Dividers() int {
	if len(g.panels) == 0 {
		return 0
	}
	return len(g.panels) - 1
}

// Spacing is the divider thickness.
func (g *Group) Spacing() float64 { return g.spacing }

// Direction is the flow axis.
func (g *Group) Direction() Direction { return g.direction }

// Sizes returns every panel's size.
func (g *Group) Sizes() []float64 { return panel.Sizes(g.panels) }

// Total is the sum of panel sizes, excluding dividers.
func (g *Group) Total() float64 {
	var sum float64
	for _, p := range g.panels {
		sum += p.Size
	}
	return sum
}

// gaps is the space taken by dividers.
func (g *Group) gaps() float64 {
	return g.spacing * float64(g.Dividers())
}

// Measured reports whether the measurer currently has geometry.
func (g *Group) Measured() bool {
	if g.measurer == nil {
		return false
	}
	_, ok := g.measurer.Measure()
	return ok
}

// FlowLength is the measured length of the group along its flow axis,
// dividers included.
func (g *Group) FlowLength() (float64, bool) {
	if g.measurer == nil {
		return 0, false
	}
	sz, ok := g.measurer.Measure()
	if !ok {
		return 0, false
	}
	if g.direction == Column {
		return sz.Height, true
	}
	return sz.Width, true
}

// BoundingSize is the space available to panels: the measured flow length
// minus divider spacing. It panics with ErrUnmeasured when the group has
// not been measured.
func (g *Group) BoundingSize() float64 {
	l, ok := g.FlowLength()
	if !ok {
		panic(fmt.Errorf("bounding size of %d-panel group: %w", len(g.panels), ErrUnmeasured))
	}
	return l - g.gaps()
}

// Settled reports whether the sizes add up to the bounding size.
func (g *Group) Settled() bool {
	l, ok := g.FlowLength()
	if !ok {
		return false
	}
	d := l - g.gaps() - g.Total()
	return d <= DriftEpsilon && d >= -DriftEpsilon
}
