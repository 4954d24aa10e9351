package gesture

import "panes/internal/panel"

// Target is the panel group a divider drags.
type Target interface {
	// Resize moves divider i by delta and returns the realized delta.
	Resize(divider int, delta float64) float64
	// Panels is a snapshot handed to the start/end hooks.
	Panels() []panel.Panel
}

// Hooks lets collaborators observe a drag. Any field may be nil.
type Hooks struct {
	OnResizeStart func(divider int, panels []panel.Panel)
	OnResize      func(divider int, requested, applied float64)
	OnResizeEnd   func(divider int, panels []panel.Panel)
}

// Chain returns hooks that call each of hs in order.
func Chain(hs ...Hooks) Hooks {
	return Hooks{
		OnResizeStart: func(divider int, panels []panel.Panel) {
			for _, h := range hs {
				if h.OnResizeStart != nil {
					h.OnResizeStart(divider, panels)
				}
			}
		},
		OnResize: func(divider int, requested, applied float64) {
			for _, h := range hs {
				if h.OnResize != nil {
					h.OnResize(divider, requested, applied)
				}
			}
		},
		OnResizeEnd: func(divider int, panels []panel.Panel) {
			for _, h := range hs {
				if h.OnResizeEnd != nil {
					h.OnResizeEnd(divider, panels)
				}
			}
		},
	}
}

// State is the drag state of a divider.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "Dragging"
	}
	return "Idle"
}

// Divider tracks the drag of one divider.
type Divider struct {
	index  int
	axis   Axis
	target Target
	source Source
	hooks  Hooks

	state State
	// ref is where the pointer would be if the divider had followed it
	// exactly. It advances only by what the target actually applied.
	ref         Point
	unsubscribe func()
}

var _ Handler = (*Divider)(nil)

// NewDivider creates an idle divider.
func NewDivider(index int, axis Axis, target Target, source Source, hooks Hooks) *Divider {
	return &Divider{
		index:  index,
		axis:   axis,
		target: target,
		source: source,
		hooks:  hooks,
	}
}

// Index is the divider's position in the group.
func (d *Divider) Index() int { return d.index }

// State is the current drag state.
func (d *Divider) State() State { return d.state }

// Dragging reports whether a drag is in progress.
func (d *Divider) Dragging() bool { return d.state == Dragging }

// Press starts a drag on a primary-button mouse down or any touch start.
// It reports whether a drag began.
func (d *Divider) Press(ev Event) bool {
	if ev.Kind != Down || d.state == Dragging {
		return false
	}
	if ev.Pointer == Mouse && ev.Button != ButtonPrimary {
		return false
	}
	d.state = Dragging
	d.ref = ev.Pos
	d.unsubscribe = d.source.Subscribe(d)
	if d.hooks.OnResizeStart != nil {
		d.hooks.OnResizeStart(d.index, d.target.Panels())
	}
	return true
}

// HandlePointer implements Handler for the subscription taken in Press.
func (d *Divider) HandlePointer(ev Event) {
	if d.state != Dragging {
		return
	}
	switch ev.Kind {
	case Move:
		d.move(ev.Pos)
	case Up, Cancel:
		d.release()
	}
}

// Close ends any drag in progress, as when the divider goes away.
func (d *Divider) Close() {
	d.release()
}

func (d *Divider) move(pos Point) {
	requested := d.axis.Along(pos) - d.axis.Along(d.ref)
	applied := d.target.Resize(d.index, requested)
	d.ref = d.axis.Advance(d.ref, applied)
	if d.hooks.OnResize != nil {
		d.hooks.OnResize(d.index, requested, applied)
	}
}

func (d *Divider) release() {
	if d.state != Dragging {
		return
	}
	d.state = Idle
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	if d.hooks.OnResizeEnd != nil {
		d.hooks.OnResizeEnd(d.index, d.target.Panels())
	}
}
