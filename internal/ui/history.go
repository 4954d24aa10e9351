package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"panes/internal/trace"
)

// HistoryView lists recent divider drags, newest first.
type HistoryView struct {
	traces   *trace.Manager
	viewport viewport.Model
	width    int
	height   int
}

// Ensure HistoryView implements View
var _ View = (*HistoryView)(nil)

// NewHistoryView creates a history view over the given manager.
func NewHistoryView(traces *trace.Manager) *HistoryView {
	v := &HistoryView{
		traces:   traces,
		viewport: viewport.New(60, 12),
		width:    60,
		height:   12,
	}
	v.Refresh()
	return v
}

// Init implements View
func (v *HistoryView) Init() tea.Cmd {
	return nil
}

// Update implements View
func (v *HistoryView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "j", "down":
			v.viewport.LineDown(1)
			return v, nil
		case "k", "up":
			v.viewport.LineUp(1)
			return v, nil
		case "ctrl+d", "pgdown":
			v.viewport.ViewDown()
			return v, nil
		case "ctrl+u", "pgup":
			v.viewport.ViewUp()
			return v, nil
		case "g", "home":
			v.viewport.GotoTop()
			return v, nil
		case "G", "end":
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View
func (v *HistoryView) View() string {
	title := Styles.Title.Render("Drag history")
	hint := Styles.Hint.Render("esc close · j/k scroll")
	return Styles.Box.Render(title + "\n" + v.viewport.View() + "\n" + hint)
}

// SetSize fits the view inside a width x height area.
func (v *HistoryView) SetSize(width, height int) {
	// Box border and padding take 4 columns; title, hint and border take 4 rows.
	v.width = max(10, min(90, width-4))
	v.height = max(1, height-4)
	v.viewport.Width = v.width
	v.viewport.Height = v.height
	v.Refresh()
}

// Refresh rebuilds the list from the manager.
func (v *HistoryView) Refresh() {
	if v.traces == nil {
		v.viewport.SetContent(Styles.Empty.Render("History is disabled"))
		return
	}
	gestures := v.traces.Recent()
	if len(gestures) == 0 {
		v.viewport.SetContent(Styles.Empty.Render("No drags yet"))
		return
	}
	lines := make([]string, 0, len(gestures))
	for i, g := range gestures {
		lines = append(lines, v.renderGesture(i+1, g))
	}
	v.viewport.SetContent(strings.Join(lines, "\n"))
}

func (v *HistoryView) renderGesture(n int, g trace.Gesture) string {
	status := "✓"
	if g.Status == "running" {
		status = "●"
	}
	line := fmt.Sprintf("%s %2d. divider %d  %+.0f of %+.0f  %d moves  %s",
		status, n, g.Divider+1, g.Applied(), g.Requested(), len(g.Moves), formatDuration(g.Duration))
	if c := g.Clamped(); c > 0 {
		line += "  " + Styles.Warning.Render(fmt.Sprintf("%d clamped", c))
	}
	line += "  " + Styles.Muted.Render(shortTraceID(g.TraceID))
	return line
}

// formatDuration formats a drag duration in a human-readable way.
func formatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "-"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		d = d.Round(time.Second)
		return fmt.Sprintf("%dm%ds", d/time.Minute, (d%time.Minute)/time.Second)
	}
}

// shortTraceID returns the first 8 characters of a trace ID.
func shortTraceID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
