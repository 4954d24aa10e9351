package group

import (
	"math"

	"panes/internal/panel"
)

const (
	// DriftEpsilon is how far the panel total may stray from the bounding
	// size before a resize folds the difference back in.
	DriftEpsilon = 0.01
	// SnapThreshold is the distance at which a snap point captures a panel.
	SnapThreshold = 20.0
)

// Resize moves the divider between panels[divider] and panels[divider+1] by
// delta (positive grows the left panel) and returns the delta actually
// realized at that divider. Bound violations cascade to further dividers;
// whatever no panel can absorb is dropped, so callers must trust the
// return value rather than the request. A delta that nobody can absorb
// returns 0 and leaves the sizes alone.
//
// Before moving, any drift between the panel total and the measured
// bounding size is folded into the left panel. Resize panics with
// ErrUnmeasured when the group has no geometry yet.
func (g *Group) Resize(divider int, delta float64) float64 {
	bounding := g.BoundingSize()
	if divider < 0 || divider >= g.Dividers() {
		return 0
	}
	s := &solver{panels: panel.CloneAll(g.panels), bounding: bounding}
	applied := s.resize(divider, delta)
	g.panels = s.panels
	return applied
}

// solver works on a private copy of the panels, indexed by position.
// Cascades walk the slice in one direction only, so recursion depth never
// exceeds the panel count.
type solver struct {
	panels   []panel.Panel
	bounding float64
}

func (s *solver) resize(i int, delta float64) float64 {
	s.correctDrift(i)
	applied := s.shift(i, delta)
	if delta != 0 {
		applied += s.snap(i)
	}
	return applied
}

func (s *solver) total() float64 {
	var sum float64
	for _, p := range s.panels {
		sum += p.Size
	}
	return sum
}

func (s *solver) correctDrift(i int) {
	drift := s.bounding - s.total()
	if math.Abs(drift) <= DriftEpsilon {
		return
	}
	s.panels[i].Size += drift
	s.settle(i)
}

// settle brings panel i back inside its bounds by trading space with the
// panels before it, then the panels after it.
func (s *solver) settle(i int) {
	p := &s.panels[i]
	if short := p.Min() - p.Size; short > 0 {
		got := s.shrink(i-1, -1, short)
		got += s.shrink(i+1, 1, short-got)
		p.Size += got
	}
	if p.Bounded() && p.Size > p.Max() {
		excess := p.Size - p.Max()
		put := s.grow(i-1, -1, excess)
		put += s.grow(i+1, 1, excess-put)
		p.Size -= put
	}
}

// shift moves divider i by delta. The delta is first clamped to what both
// sides can absorb, so each cascade below always completes.
func (s *solver) shift(i int, delta float64) float64 {
	delta = s.clamp(i, delta)
	if delta == 0 {
		return 0
	}
	left, right := &s.panels[i], &s.panels[i+1]
	left.Size += delta
	right.Size -= delta

	// left-min, left-max: the previous divider gives or takes the overflow.
	if short := left.Min() - left.Size; short > 0 {
		left.Size += s.shrink(i-1, -1, short)
	}
	if left.Bounded() && left.Size > left.Max() {
		left.Size -= s.grow(i-1, -1, left.Size-left.Max())
	}
	// right-min, right-max: the next divider does.
	if short := right.Min() - right.Size; short > 0 {
		right.Size += s.shrink(i+2, 1, short)
	}
	if right.Bounded() && right.Size > right.Max() {
		right.Size -= s.grow(i+2, 1, right.Size-right.Max())
	}
	return delta
}

// clamp limits delta to the room on both sides of divider i.
func (s *solver) clamp(i int, delta float64) float64 {
	switch {
	case delta > 0:
		return math.Min(delta, math.Min(s.room(i, -1, true), s.room(i+1, 1, false)))
	case delta < 0:
		return -math.Min(-delta, math.Min(s.room(i, -1, false), s.room(i+1, 1, true)))
	}
	return 0
}

// room is how far the panels from i onward, walking by step, can grow or
// shrink in total.
func (s *solver) room(i, step int, growing bool) float64 {
	var total float64
	for ; i >= 0 && i < len(s.panels); i += step {
		p := s.panels[i]
		if !growing {
			total += math.Max(0, p.Size-p.Min())
			continue
		}
		if !p.Bounded() {
			return math.Inf(1)
		}
		total += math.Max(0, p.Max()-p.Size)
	}
	return total
}

// shrink takes up to amount from the panels starting at i, nearest first,
// never below a minimum. It returns what it took.
func (s *solver) shrink(i, step int, amount float64) float64 {
	if amount <= 0 || i < 0 || i >= len(s.panels) {
		return 0
	}
	p := &s.panels[i]
	take := math.Min(amount, math.Max(0, p.Size-p.Min()))
	p.Size -= take
	return take + s.shrink(i+step, step, amount-take)
}

// grow gives up to amount to the panels starting at i, nearest first,
// never above a maximum. It returns what it gave.
func (s *solver) grow(i, step int, amount float64) float64 {
	if amount <= 0 || i < 0 || i >= len(s.panels) {
		return 0
	}
	p := &s.panels[i]
	give := amount
	if p.Bounded() {
		give = math.Min(amount, math.Max(0, p.Max()-p.Size))
	}
	p.Size += give
	return give + s.grow(i+step, step, amount-give)
}

// snap lands divider i on a snap point of either adjacent panel when that
// panel is within SnapThreshold of it. Left points are tried before right
// ones, and a right snap may move the left panel off a point it just
// reached. Snaps that would put either panel out of bounds are skipped.
func (s *solver) snap(i int) float64 {
	left, right := &s.panels[i], &s.panels[i+1]
	var applied float64
	for _, pt := range left.Snap {
		d := pt - left.Size
		if !s.snappable(i, d) {
			continue
		}
		left.Size = pt
		right.Size -= d
		applied += d
	}
	for _, pt := range right.Snap {
		d := right.Size - pt
		if !s.snappable(i, d) {
			continue
		}
		right.Size = pt
		left.Size += d
		applied += d
	}
	return applied
}

func (s *solver) snappable(i int, d float64) bool {
	if d == 0 || math.Abs(d) >= SnapThreshold {
		return false
	}
	left, right := s.panels[i], s.panels[i+1]
	return left.Fits(left.Size+d) && right.Fits(right.Size-d)
}
