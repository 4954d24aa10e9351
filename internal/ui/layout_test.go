package ui

import (
	"testing"

	"panes/internal/group"
	"panes/internal/panel"
)

func rowLayout(spacing float64, sizes ...float64) group.Layout {
	panels := make([]panel.Panel, len(sizes))
	for i, s := range sizes {
		panels[i] = panel.Panel{Size: s, Mode: panel.Dynamic}
	}
	panels[len(panels)-1].Mode = panel.Stretch
	return group.Project(panels, group.Row, spacing)
}

func TestArrange_Row(t *testing.T) {
	a := Arrange(rowLayout(1, 40, 59), 100, 20)

	want := []Rect{{X: 0, Y: 0, W: 40, H: 20}, {X: 41, Y: 0, W: 59, H: 20}}
	for i, r := range want {
		if a.Panels[i] != r {
			t.Errorf("panel %d: expected %+v, got %+v", i, r, a.Panels[i])
		}
	}
	if len(a.Dividers) != 1 || a.Dividers[0] != (Rect{X: 40, Y: 0, W: 1, H: 20}) {
		t.Errorf("dividers: got %+v", a.Dividers)
	}
}

func TestArrange_ColumnRoundsToCells(t *testing.T) {
	panels := []panel.Panel{
		{Size: 4.6, Mode: panel.Dynamic},
		{Size: 4.4, Mode: panel.Stretch},
	}
	a := Arrange(group.Project(panels, group.Column, 1), 30, 10)

	if a.Panels[0].H+a.Panels[1].H+a.Dividers[0].H != 10 {
		t.Errorf("rows should fill the height exactly: %+v %+v", a.Panels, a.Dividers)
	}
	if a.Panels[0].H != 5 || a.Panels[1].H != 4 {
		t.Errorf("heights: expected 5 and 4, got %d and %d", a.Panels[0].H, a.Panels[1].H)
	}
	if a.Panels[1].Y != 6 || a.Panels[1].W != 30 {
		t.Errorf("second panel: got %+v", a.Panels[1])
	}
}

func TestArrangement_DividerAt(t *testing.T) {
	a := Arrange(rowLayout(1, 40, 59), 100, 20)

	tests := []struct {
		x     int
		bleed float64
		hit   bool
	}{
		{x: 40, bleed: 0, hit: true},
		{x: 39, bleed: 0, hit: false},
		{x: 39, bleed: 1, hit: true},
		{x: 41, bleed: 1, hit: true},
		{x: 38, bleed: 1, hit: false},
		{x: 42, bleed: 1, hit: false},
	}
	for _, tt := range tests {
		i, hit := a.DividerAt(tt.x, 5, tt.bleed)
		if hit != tt.hit {
			t.Errorf("DividerAt(%d, bleed %v): expected hit=%v, got %v", tt.x, tt.bleed, tt.hit, hit)
		}
		if hit && i != 0 {
			t.Errorf("DividerAt(%d): expected divider 0, got %d", tt.x, i)
		}
	}

	if _, hit := a.DividerAt(40, 25, 1); hit {
		t.Error("points below the group should miss")
	}
}

func TestArrangement_DividerAtPicksNearest(t *testing.T) {
	// Two dividers three cells apart: their bleeds overlap at 21 and 22.
	a := Arrange(rowLayout(1, 20, 2, 76), 100, 10)

	if i, _ := a.DividerAt(20, 0, 2); i != 0 {
		t.Errorf("x=20: expected divider 0, got %d", i)
	}
	if i, _ := a.DividerAt(23, 0, 2); i != 1 {
		t.Errorf("x=23: expected divider 1, got %d", i)
	}
}

func TestArrangement_PanelAt(t *testing.T) {
	a := Arrange(rowLayout(1, 40, 59), 100, 20)

	if i, ok := a.PanelAt(10, 3); !ok || i != 0 {
		t.Errorf("PanelAt(10,3): got %d %v", i, ok)
	}
	if i, ok := a.PanelAt(90, 3); !ok || i != 1 {
		t.Errorf("PanelAt(90,3): got %d %v", i, ok)
	}
	if _, ok := a.PanelAt(40, 3); ok {
		t.Error("the divider column belongs to no panel")
	}
}
