package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - focused divider, titles
	ColorHighlight = "205" // Magenta - divider being dragged
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - dividers, hints
	ColorText      = "252" // Light gray - normal text
	ColorWarning   = "208" // Orange - clamped moves
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - panel and overlay titles
	Box     lipgloss.Style // Rounded box for overlays
	Muted   lipgloss.Style // Dimmed text
	Hint    lipgloss.Style // Help/hint text
	Status  lipgloss.Style // Status line
	Error   lipgloss.Style // Error text in the status line
	Warning lipgloss.Style // Clamped drags in the history
	Empty   lipgloss.Style // Empty state text (muted, italic)

	Divider         lipgloss.Style // Idle divider
	DividerFocused  lipgloss.Style // Divider selected for keyboard nudging
	DividerDragging lipgloss.Style // Divider under a live drag
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	DividerFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	DividerDragging: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
}
