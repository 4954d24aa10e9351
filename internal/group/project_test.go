package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panes/internal/panel"
)

func TestProject_Boxes(t *testing.T) {
	panels := panel.New([]panel.Config{fixed(100), dyn(200, 50), stretch(300, 48)})
	l := Project(panels, Row, 2)

	require.Len(t, l.Boxes, 3)
	assert.Equal(t, Box{Index: 0, Offset: 0, Size: 100, MinSize: 100}, l.Boxes[0])
	assert.Equal(t, Box{Index: 1, Offset: 102, Size: 200, MinSize: 200}, l.Boxes[1])
	assert.Equal(t, Box{Index: 2, Offset: 304, Size: 300, Grow: true, Shrink: true}, l.Boxes[2])
}

func TestProject_MinSizeCountsFixedAtFrozenSize(t *testing.T) {
	panels := panel.New([]panel.Config{fixed(100), dyn(200, 50), stretch(300, 48)})

	assert.Equal(t, 100+50+48+2*2.0, MinSize(panels, 2))
	assert.Zero(t, MinSize(nil, 2))
}

func TestBox_Dims(t *testing.T) {
	b := Box{Size: 30}

	w, h := b.Dims(Row, 10)
	assert.Equal(t, [2]float64{30, 10}, [2]float64{w, h})

	w, h = b.Dims(Column, 10)
	assert.Equal(t, [2]float64{10, 30}, [2]float64{w, h})
}

func TestLayout_DividerAt(t *testing.T) {
	l := Project(panel.New([]panel.Config{dyn(10, 1), stretch(20, 1)}), Row, 1)

	tests := []struct {
		pos  float64
		want bool
	}{
		{5, false},
		{9, true},
		{10, true},
		{11.5, true},
		{12, false},
	}
	for _, tt := range tests {
		i, ok := l.DividerAt(tt.pos, 1)
		assert.Equal(t, tt.want, ok, "pos %v", tt.pos)
		if ok {
			assert.Equal(t, 0, i)
		}
	}
}

func TestLayout_DividerAtPicksNearest(t *testing.T) {
	l := Project(panel.New([]panel.Config{dyn(10, 1), dyn(2, 1), stretch(10, 1)}), Row, 1)

	// Divider 0 covers [10,11), divider 1 covers [13,14); with a bleed of
	// 2 they overlap around 12.
	i, ok := l.DividerAt(11, 2)
	require.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = l.DividerAt(13, 2)
	require.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestLayout_CellsLargestRemainder(t *testing.T) {
	l := Layout{Spacing: 1, Boxes: []Box{{Size: 10.4}, {Size: 20.6}, {Size: 9}}}

	assert.Equal(t, []int{10, 21, 9}, l.Cells(42))
}

func TestLayout_CellsStretchTakesSlack(t *testing.T) {
	l := Layout{Spacing: 1, Boxes: []Box{{Size: 10}, {Size: 10, Grow: true}}}

	assert.Equal(t, []int{10, 19}, l.Cells(30))
	assert.Equal(t, []int{10, 4}, l.Cells(15))
}

func TestLayout_CellsTrimsWithoutStretch(t *testing.T) {
	l := Layout{Spacing: 0, Boxes: []Box{{Size: 10}, {Size: 10}}}

	assert.Equal(t, []int{10, 5}, l.Cells(15))
}

func TestGroup_LayoutFollowsResize(t *testing.T) {
	g := newGroup(600, 1, dyn(256, 48), stretch(343, 48))
	g.Resize(0, 44)

	l := g.Layout()
	assert.Equal(t, 300.0, l.Boxes[0].Size)
	assert.Equal(t, 301.0, l.Boxes[1].Offset)
	assert.Equal(t, 48+48+1.0, g.MinSize())
}
