package gesture

// Handler receives the move, up and cancel events of an active drag.
type Handler interface {
	HandlePointer(Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(Event)

// HandlePointer implements Handler.
func (f HandlerFunc) HandlePointer(ev Event) { f(ev) }

// Source hands out drag subscriptions. The returned func releases the
// subscription and is safe to call more than once.
type Source interface {
	Subscribe(Handler) (unsubscribe func())
}

// Hub routes pointer events to at most one subscriber. A new subscription
// cancels the previous one, so only one drag can be live at a time.
type Hub struct {
	active Handler
	seq    uint64
}

var _ Source = (*Hub)(nil)

// Subscribe makes h the receiver of all dispatched events.
func (h *Hub) Subscribe(handler Handler) func() {
	if prev := h.active; prev != nil {
		h.active = nil
		prev.HandlePointer(Event{Kind: Cancel})
	}
	h.seq++
	seq := h.seq
	h.active = handler
	return func() {
		// A stale release must not drop a newer subscriber.
		if h.seq == seq {
			h.active = nil
		}
	}
}

// Active reports whether a drag currently holds the hub.
func (h *Hub) Active() bool {
	return h.active != nil
}

// Dispatch delivers ev to the subscriber. It reports whether anyone was
// listening.
func (h *Hub) Dispatch(ev Event) bool {
	if h.active == nil {
		return false
	}
	h.active.HandlePointer(ev)
	return true
}

// CancelAll cancels the active drag, if any.
func (h *Hub) CancelAll() {
	h.Dispatch(Event{Kind: Cancel})
}
