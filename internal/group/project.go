package group

import (
	"math"
	"sort"

	"panes/internal/panel"
)

// Box is the renderable geometry of one panel. Flow-axis values are in the
// same unit as panel sizes; the cross axis always spans the full group.
type Box struct {
	Index  int
	Offset float64 // start along the flow axis
	Size   float64 // extent along the flow axis
	// MinSize is the flow-axis floor the renderer must respect: the panel
	// size for non-stretch panels, zero for stretch panels.
	MinSize float64
	// Grow and Shrink mark stretch panels, which soak up container changes.
	Grow   bool
	Shrink bool
}

// Dims maps the box onto width and height for a group of the given
// direction whose cross-axis extent is cross.
func (b Box) Dims(dir Direction, cross float64) (w, h float64) {
	if dir == Column {
		return cross, b.Size
	}
	return b.Size, cross
}

// Layout is everything a renderer needs for one frame.
type Layout struct {
	Direction Direction
	Spacing   float64
	Boxes     []Box
	// MinSize is the smallest flow length at which every panel fits.
	MinSize float64
}

// Project derives the layout of panels. It has no side effects.
func Project(panels []panel.Panel, dir Direction, spacing float64) Layout {
	l := Layout{
		Direction: dir,
		Spacing:   spacing,
		Boxes:     make([]Box, len(panels)),
		MinSize:   MinSize(panels, spacing),
	}
	var offset float64
	for i, p := range panels {
		stretch := p.Mode.Stretches()
		b := Box{
			Index:  i,
			Offset: offset,
			Size:   p.Size,
			Grow:   stretch,
			Shrink: stretch,
		}
		if !stretch {
			b.MinSize = p.Size
		}
		l.Boxes[i] = b
		offset += p.Size + spacing
	}
	return l
}

// MinSize is the sum of effective minimums plus divider spacing.
func MinSize(panels []panel.Panel, spacing float64) float64 {
	if len(panels) == 0 {
		return 0
	}
	var sum float64
	for _, p := range panels {
		sum += p.Min()
	}
	return sum + spacing*float64(len(panels)-1)
}

// Layout projects the group's current state.
func (g *Group) Layout() Layout {
	return Project(g.panels, g.direction, g.spacing)
}

// MinSize is the group's minimum flow length.
func (g *Group) MinSize() float64 {
	return MinSize(g.panels, g.spacing)
}

// DividerAt returns the divider whose handle covers pos on the flow axis.
// Handles are spacing wide plus bleed on each side; when two handles
// overlap the nearer one wins.
func (l Layout) DividerAt(pos, bleed float64) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for i := 0; i+1 < len(l.Boxes); i++ {
		start := l.Boxes[i].Offset + l.Boxes[i].Size
		end := start + l.Spacing
		if pos < start-bleed || pos >= end+bleed {
			continue
		}
		mid := (start + end) / 2
		if d := math.Abs(pos - mid); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// Cells rounds the boxes to whole cells so that panels plus dividers fill
// exactly total cells. Fractions are resolved by largest remainder; any
// mismatch between the sizes and total beyond that lands on the stretch
// panels (the last one first), never below zero.
func (l Layout) Cells(total int) []int {
	n := len(l.Boxes)
	cells := make([]int, n)
	if n == 0 {
		return cells
	}
	gap := int(math.Round(l.Spacing))
	avail := total - gap*(n-1)
	if avail < 0 {
		avail = 0
	}

	type frac struct {
		i int
		f float64
	}
	fracs := make([]frac, n)
	used := 0
	for i, b := range l.Boxes {
		size := math.Max(0, b.Size)
		whole := math.Floor(size)
		cells[i] = int(whole)
		used += cells[i]
		fracs[i] = frac{i, size - whole}
	}
	sort.SliceStable(fracs, func(a, b int) bool { return fracs[a].f > fracs[b].f })
	for k := 0; used < avail && k < n && fracs[k].f > 0; k++ {
		cells[fracs[k].i]++
		used++
	}

	rest := avail - used
	for i := n - 1; i >= 0 && rest != 0; i-- {
		if !l.Boxes[i].Grow {
			continue
		}
		c := cells[i] + rest
		if c < 0 {
			c = 0
		}
		rest -= c - cells[i]
		cells[i] = c
	}
	// No stretch panel could take it: trim from the end.
	for i := n - 1; i >= 0 && rest < 0; i-- {
		take := min(cells[i], -rest)
		cells[i] -= take
		rest += take
	}
	return cells
}
