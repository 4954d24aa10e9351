// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the visual width of a string, accounting for unicode characters.
// This is the number of terminal columns the string will occupy.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a plain string to fit within maxWidth visual columns,
// ending in … when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRightVisual pads a string to the right to reach targetWidth visual columns.
// Uses spaces for padding. If the string is already wider than targetWidth, it's truncated.
func PadRightVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-currentWidth)
}

// Wrap word-wraps plain text to width columns. Words longer than a line
// are broken hard so no line exceeds width.
func Wrap(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return wrap.String(wordwrap.String(s, width), width)
}

// Fit clips or pads every line of a possibly styled block to exactly width
// columns and height lines. Escape sequences are preserved.
func Fit(block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(block, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	blank := strings.Repeat(" ", width)
	out := make([]string, height)
	for i := range out {
		if i >= len(lines) {
			out[i] = blank
			continue
		}
		line := truncate.String(lines[i], uint(width))
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}
