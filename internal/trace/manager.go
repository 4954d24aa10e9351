package trace

import (
	"context"
	"sync"
	"time"

	"panes/internal/gesture"
	"panes/internal/panel"
)

// Event is a single step of a drag as reported by a divider.
type Event struct {
	Type      EventType
	Divider   int
	Sizes     []float64 // Panel sizes, set on start and end
	Requested float64   // Set on move
	Applied   float64   // Set on move
	Timestamp time.Time
}

// Manager records divider drags and keeps the most recent ones.
type Manager struct {
	mu          sync.RWMutex
	active      *Gesture      // Drag in progress, if any
	recent      []*Gesture    // Oldest first
	maxGestures int           // Max gestures to keep (default 10)
	onChange    func()        // Callback when gesture state changes
	exporter    *OTLPExporter // OTLP exporter for completed gestures
	now         func() time.Time
}

// NewManager creates a gesture manager. A nil exporter disables export.
func NewManager(maxGestures int, exporter *OTLPExporter) *Manager {
	if maxGestures <= 0 {
		maxGestures = 10
	}
	return &Manager{
		recent:      make([]*Gesture, 0, maxGestures),
		maxGestures: maxGestures,
		exporter:    exporter,
		now:         time.Now,
	}
}

// Hooks returns divider hooks that feed this manager.
func (m *Manager) Hooks() gesture.Hooks {
	return gesture.Hooks{
		OnResizeStart: func(divider int, panels []panel.Panel) {
			m.HandleEvent(Event{Type: EventDragStart, Divider: divider, Sizes: panel.Sizes(panels)})
		},
		OnResize: func(divider int, requested, applied float64) {
			m.HandleEvent(Event{Type: EventDragMove, Divider: divider, Requested: requested, Applied: applied})
		},
		OnResizeEnd: func(divider int, panels []panel.Panel) {
			m.HandleEvent(Event{Type: EventDragEnd, Divider: divider, Sizes: panel.Sizes(panels)})
		},
	}
}

// HandleEvent processes a drag event and returns the affected gesture.
// Moves and ends for a divider that is not being dragged are ignored.
func (m *Manager) HandleEvent(event Event) *Gesture {
	m.mu.Lock()
	defer m.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = m.now()
	}

	switch event.Type {
	case EventDragStart:
		return m.handleStart(event)
	case EventDragMove:
		return m.handleMove(event)
	case EventDragEnd:
		return m.handleEnd(event)
	}
	return nil
}

// Must be called with m.mu.Lock() held
func (m *Manager) handleStart(event Event) *Gesture {
	if m.active != nil {
		// A start without an end means the previous drag was dropped.
		m.finish(m.active, event.Timestamp, m.active.Before)
	}
	g := &Gesture{
		TraceID:   NewTraceID(),
		SpanID:    NewSpanID(),
		Divider:   event.Divider,
		StartTime: event.Timestamp,
		Before:    append([]float64(nil), event.Sizes...),
		Status:    "running",
	}
	m.active = g
	m.addToRecent(g)
	m.callOnChange()
	return g
}

// Must be called with m.mu.Lock() held
func (m *Manager) handleMove(event Event) *Gesture {
	g := m.active
	if g == nil || g.Divider != event.Divider {
		return nil
	}
	g.Moves = append(g.Moves, Move{
		Requested: event.Requested,
		Applied:   event.Applied,
		At:        event.Timestamp,
	})
	m.callOnChange()
	return g
}

// Must be called with m.mu.Lock() held
func (m *Manager) handleEnd(event Event) *Gesture {
	g := m.active
	if g == nil || g.Divider != event.Divider {
		return nil
	}
	m.finish(g, event.Timestamp, event.Sizes)
	m.callOnChange()
	return g
}

// finish completes g and exports it synchronously; drags are short and
// the export must land before a quick quit.
func (m *Manager) finish(g *Gesture, end time.Time, sizes []float64) {
	g.Duration = end.Sub(g.StartTime)
	g.After = append([]float64(nil), sizes...)
	g.Status = "completed"
	m.active = nil

	if m.exporter != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		// Export errors stay silent; log output would tear the TUI.
		_ = m.exporter.ExportGesture(ctx, g)
		cancel()
	}
}

// addToRecent appends g, evicting the oldest gesture if needed
func (m *Manager) addToRecent(g *Gesture) {
	m.recent = append(m.recent, g)
	if len(m.recent) > m.maxGestures {
		m.recent = m.recent[1:]
	}
}

// callOnChange calls the onChange callback if set (must be called with lock held)
func (m *Manager) callOnChange() {
	if m.onChange != nil {
		m.onChange()
	}
}

// Active returns a copy of the drag in progress.
func (m *Manager) Active() (Gesture, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.active == nil {
		return Gesture{}, false
	}
	return *m.active, true
}

// Last returns the most recently completed gesture.
func (m *Manager) Last() (Gesture, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.recent) - 1; i >= 0; i-- {
		if m.recent[i].Status == "completed" {
			return *m.recent[i], true
		}
	}
	return Gesture{}, false
}

// Recent returns copies of recent gestures (newest first)
func (m *Manager) Recent() []Gesture {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Gesture, 0, len(m.recent))
	for i := len(m.recent) - 1; i >= 0; i-- {
		result = append(result, *m.recent[i])
	}
	return result
}

// SetOnChange sets callback for state changes (thread-safe)
func (m *Manager) SetOnChange(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Shutdown flushes pending exports and closes the OTLP exporter.
// Must be called before process exit to ensure gestures are exported.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	exporter := m.exporter
	m.mu.Unlock()

	if exporter != nil {
		return exporter.Shutdown(ctx)
	}
	return nil
}
