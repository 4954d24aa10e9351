package ui

// AppMode is what the keyboard currently drives.
type AppMode int

const (
	ModeNormal   AppMode = iota // Nudging dividers, leader commands
	ModeDragging                // A mouse drag holds the pointer
	ModeHistory                 // Gesture history overlay is open
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeDragging:
		return "Dragging"
	case ModeHistory:
		return "History"
	default:
		return "Unknown"
	}
}
