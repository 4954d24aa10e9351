package group

import "math"

// Reconcile records a size for panel i that was imposed from outside a
// drag, typically a stretch panel following its container. A size below
// the panel's minimum is clamped, and the shortfall is taken from dynamic
// panels in index order (never below their own minimum). A zero-delta
// resize on the adjacent divider then re-normalizes the group total.
// done, if non-nil, runs once the sizes have settled. Reconcile returns the
// part of the shortfall no donor could cover.
func (g *Group) Reconcile(i int, observed float64, done func()) float64 {
	if done != nil {
		defer done()
	}
	if i < 0 || i >= len(g.panels) || observed == g.panels[i].Size {
		return 0
	}
	short := g.apply(i, observed)
	g.normalize(i)
	return short
}

// ReconcileAll records every entry of observed that differs from the
// tracked size before re-normalizing once, so panels that changed together
// are not measured against each other's stale sizes. It returns the total
// shortfall no donor could cover.
func (g *Group) ReconcileAll(observed []float64, done func()) float64 {
	if done != nil {
		defer done()
	}
	first := -1
	var short float64
	for i := 0; i < len(observed) && i < len(g.panels); i++ {
		if observed[i] == g.panels[i].Size {
			continue
		}
		if first < 0 {
			first = i
		}
		short += g.apply(i, observed[i])
	}
	if first >= 0 {
		g.normalize(first)
	}
	return short
}

// apply sets panel i to observed, clamped to its minimum.
func (g *Group) apply(i int, observed float64) float64 {
	p := &g.panels[i]
	if min := p.Min(); observed < min {
		p.Size = min
		return g.takeShortfall(i, min-observed)
	}
	p.Size = observed
	return 0
}

// normalize runs a zero-delta resize on the divider before panel i.
func (g *Group) normalize(i int) {
	if g.Dividers() == 0 {
		return
	}
	g.Resize(max(i-1, 0), 0)
}

// takeShortfall sweeps the panels other than skip and lets donors give up
// their slack until short is covered. It returns what was left uncovered.
func (g *Group) takeShortfall(skip int, short float64) float64 {
	for j := range g.panels {
		if short <= 0 {
			break
		}
		d := &g.panels[j]
		if j == skip || !d.Mode.Donor() {
			continue
		}
		cut := math.Min(short, math.Max(0, d.Size-d.Min()))
		d.Size -= cut
		short -= cut
	}
	return short
}

// Flex returns the size each panel would take if the container laid the
// group out at bounding: stretch panels split the free space evenly and
// never go below zero, every other panel keeps its size. The host compares
// these against the tracked sizes to decide what to Reconcile.
func (g *Group) Flex(bounding float64) []float64 {
	sizes := g.Sizes()
	var stretch []int
	for i, p := range g.panels {
		if p.Mode.Stretches() {
			stretch = append(stretch, i)
		}
	}
	free := bounding - g.Total()
	// A stretch panel that bottoms out at zero passes the rest of its share
	// to the ones still standing.
	for len(stretch) > 0 && math.Abs(free) > DriftEpsilon {
		share := free / float64(len(stretch))
		free = 0
		var next []int
		for _, i := range stretch {
			sizes[i] += share
			if sizes[i] < 0 {
				free += sizes[i]
				sizes[i] = 0
				continue
			}
			next = append(next, i)
		}
		stretch = next
	}
	return sizes
}
