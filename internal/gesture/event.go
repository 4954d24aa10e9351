// Package gesture turns raw pointer input into divider drags. A Divider is
// a two-state machine (Idle, Dragging); while dragging it holds the only
// subscription on a Hub, which stands in for document-level move/up
// listeners.
package gesture

// Kind is the phase of a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Pointer is the input device.
type Pointer int

const (
	Mouse Pointer = iota
	Touch
)

// Button identifies a mouse button. Touch events leave it at ButtonNone.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// Point is a position in the host's coordinate space.
type Point struct {
	X, Y float64
}

// Event is one pointer sample.
type Event struct {
	Kind    Kind
	Pointer Pointer
	Button  Button
	Pos     Point
}

// Axis is the flow axis a divider moves along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Along projects p onto the axis.
func (a Axis) Along(p Point) float64 {
	if a == Vertical {
		return p.Y
	}
	return p.X
}

// Advance moves p by d along the axis.
func (a Axis) Advance(p Point, d float64) Point {
	if a == Vertical {
		p.Y += d
	} else {
		p.X += d
	}
	return p
}
