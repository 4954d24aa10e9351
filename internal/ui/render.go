package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"panes/internal/group"
	"panes/internal/ui/textutil"
)

// renderGroup draws panels and dividers into the body area.
func (m *AppModel) renderGroup() string {
	arr := m.arrangement()
	var parts []string
	for i, r := range arr.Panels {
		if r.W > 0 && r.H > 0 {
			parts = append(parts, m.Panels[i].View())
		}
		if i < len(arr.Dividers) {
			if d := arr.Dividers[i]; d.W > 0 && d.H > 0 {
				parts = append(parts, m.renderDivider(i, d))
			}
		}
	}
	var out string
	switch {
	case len(parts) == 0:
	case arr.Direction == group.Column:
		out = lipgloss.JoinVertical(lipgloss.Left, parts...)
	default:
		out = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return textutil.Fit(out, m.width, m.bodyHeight())
}

// renderDivider draws divider i filling r. With handles shown, three cells
// in the middle of the divider use a heavier glyph.
func (m *AppModel) renderDivider(i int, r Rect) string {
	column := m.Group.Direction() == group.Column
	glyph, handle := "│", "┃"
	if column {
		glyph, handle = "─", "━"
	}
	rows := make([]string, r.H)
	for y := range rows {
		var line strings.Builder
		for x := 0; x < r.W; x++ {
			if m.ShowHandles && isHandleCell(column, x, y, r) {
				line.WriteString(handle)
			} else {
				line.WriteString(glyph)
			}
		}
		rows[y] = line.String()
	}
	return m.dividerStyle(i).Render(strings.Join(rows, "\n"))
}

func isHandleCell(column bool, x, y int, r Rect) bool {
	if column {
		mid := r.W / 2
		return x >= mid-1 && x <= mid+1
	}
	mid := r.H / 2
	return y >= mid-1 && y <= mid+1
}

// dividerStyle picks the divider colour: dragging beats focus, which beats
// the configured border colour. A panel's own borderColor overrides the
// group's for the divider on its trailing edge.
func (m *AppModel) dividerStyle(i int) lipgloss.Style {
	switch {
	case m.Dividers[i].Dragging():
		return Styles.DividerDragging
	case m.Focus.Current == i:
		return Styles.DividerFocused
	}
	color := m.Config.BorderColor
	if c := m.Group.Panel(i).Style.BorderColor; c != "" {
		color = c
	}
	if color == "" {
		return Styles.Divider
	}
	return Styles.Divider.Foreground(lipgloss.Color(color))
}

// renderStatus draws the status line: focus and the last message on the
// left, panel sizes on the right.
func (m *AppModel) renderStatus() string {
	right := Styles.Muted.Render(formatSizes(m.Group.Sizes()) + "  SPC menu")
	room := max(0, m.width-lipgloss.Width(right)-1)

	var left string
	if m.Focus.Focused() {
		left = "[divider " + strconv.Itoa(m.Focus.Current+1) + "] "
	}
	if m.Hub.Active() && m.Traces != nil {
		if g, ok := m.Traces.Active(); ok {
			left += "dragging divider " + strconv.Itoa(g.Divider+1) + " " + formatDelta(g.Applied())
		}
	} else if m.status != "" {
		left += m.status
	}

	style := Styles.Status
	if m.err != nil {
		left = "error: " + firstLine(m.err.Error())
		style = Styles.Error
	}
	line := style.Render(textutil.PadRightVisual(left, room)) + " " + right
	return textutil.Fit(line, m.width, 1)
}

// overBottom replaces the last lines of body with block.
func overBottom(body, block string) string {
	lines := strings.Split(body, "\n")
	h := lipgloss.Height(block)
	if h >= len(lines) {
		return block
	}
	return strings.Join(lines[:len(lines)-h], "\n") + "\n" + block
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// formatCells prints a size with at most one decimal.
func formatCells(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

func formatDelta(v float64) string {
	s := formatCells(v)
	if v > 0 {
		s = "+" + s
	}
	return s
}

func formatSizes(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = formatCells(s)
	}
	return strings.Join(parts, " | ")
}
