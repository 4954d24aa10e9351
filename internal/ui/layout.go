package ui

import (
	"math"

	"panes/internal/group"
)

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Arrangement is a group layout mapped onto whole terminal cells.
type Arrangement struct {
	Direction group.Direction
	Panels    []Rect
	Dividers  []Rect
	// cells is the layout re-expressed in cells, used for hit testing so
	// that handles line up with what was drawn.
	cells group.Layout
}

// Arrange places l into a width x height cell area.
func Arrange(l group.Layout, width, height int) Arrangement {
	flow, cross := width, height
	if l.Direction == group.Column {
		flow, cross = height, width
	}
	sizes := l.Cells(flow)
	gap := int(math.Round(l.Spacing))

	a := Arrangement{
		Direction: l.Direction,
		Panels:    make([]Rect, len(sizes)),
		cells: group.Layout{
			Direction: l.Direction,
			Spacing:   float64(gap),
			Boxes:     make([]group.Box, len(sizes)),
		},
	}
	if len(sizes) > 1 {
		a.Dividers = make([]Rect, len(sizes)-1)
	}

	offset := 0
	for i, n := range sizes {
		a.Panels[i] = a.rect(offset, n, cross)
		a.cells.Boxes[i] = group.Box{Index: i, Offset: float64(offset), Size: float64(n)}
		offset += n
		if i < len(a.Dividers) {
			a.Dividers[i] = a.rect(offset, gap, cross)
			offset += gap
		}
	}
	return a
}

func (a Arrangement) rect(offset, size, cross int) Rect {
	if a.Direction == group.Column {
		return Rect{X: 0, Y: offset, W: cross, H: size}
	}
	return Rect{X: offset, Y: 0, W: size, H: cross}
}

// along is the flow-axis coordinate of a cell.
func (a Arrangement) along(x, y int) int {
	if a.Direction == group.Column {
		return y
	}
	return x
}

// DividerAt returns the divider whose handle covers the cell (x, y).
// bleed widens each handle by that many cells on both sides.
func (a Arrangement) DividerAt(x, y int, bleed float64) (int, bool) {
	if len(a.Panels) == 0 || !a.bounds().Contains(x, y) {
		return -1, false
	}
	// Hit test against the centre of the cell.
	return a.cells.DividerAt(float64(a.along(x, y))+0.5, bleed)
}

// PanelAt returns the panel drawn at cell (x, y).
func (a Arrangement) PanelAt(x, y int) (int, bool) {
	for i, r := range a.Panels {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// bounds is the whole area the arrangement covers.
func (a Arrangement) bounds() Rect {
	first, last := a.Panels[0], a.Panels[len(a.Panels)-1]
	return Rect{
		X: first.X,
		Y: first.Y,
		W: last.X + last.W - first.X,
		H: last.Y + last.H - first.Y,
	}
}
