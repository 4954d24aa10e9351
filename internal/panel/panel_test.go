package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	panels := New([]Config{{}, {}})
	require.Len(t, panels, 2)
	for i, p := range panels {
		assert.Equal(t, DefaultSize, p.Size, "panel %d size", i)
		assert.Equal(t, DefaultMinSize, p.MinSize, "panel %d min", i)
		assert.Equal(t, DefaultMaxSize, p.MaxSize, "panel %d max", i)
		assert.Equal(t, Stretch, p.Mode, "panel %d mode", i)
		assert.Empty(t, p.Snap, "panel %d snap", i)
	}
}

func TestNew_PromotesLastPanelWhenNoStretch(t *testing.T) {
	panels := New([]Config{
		{Resize: ModeOf(Dynamic)},
		{Resize: ModeOf(Fixed), Size: Float(100)},
		{Resize: ModeOf(Dynamic)},
	})
	assert.Equal(t, Dynamic, panels[0].Mode)
	assert.Equal(t, Fixed, panels[1].Mode)
	assert.Equal(t, Stretch, panels[2].Mode)
}

func TestNew_KeepsExplicitStretch(t *testing.T) {
	panels := New([]Config{
		{Resize: ModeOf(Stretch)},
		{Resize: ModeOf(Dynamic)},
	})
	assert.Equal(t, Stretch, panels[0].Mode)
	assert.Equal(t, Dynamic, panels[1].Mode, "last panel must not be promoted when a stretch panel exists")
}

func TestNew_FreezesFixedSize(t *testing.T) {
	panels := New([]Config{
		{Resize: ModeOf(Fixed), Size: Float(120), MinSize: Float(10), MaxSize: Float(500)},
		{},
	})
	p := panels[0]
	assert.Equal(t, 120.0, p.FixedSize)
	assert.Equal(t, 120.0, p.Min())
	assert.Equal(t, 120.0, p.Max())

	p.Size = 300
	assert.Equal(t, 120.0, p.Min(), "fixed bounds must not follow the live size")
}

func TestNew_CopiesSnapPoints(t *testing.T) {
	snap := []float64{100, 200}
	panels := New([]Config{{Snap: snap}})
	snap[0] = 999
	assert.Equal(t, []float64{100, 200}, panels[0].Snap)
}

func TestPanel_Fits(t *testing.T) {
	p := Panel{MinSize: 50, MaxSize: 200, Mode: Dynamic}
	assert.False(t, p.Fits(49))
	assert.True(t, p.Fits(50))
	assert.True(t, p.Fits(200))
	assert.False(t, p.Fits(201))

	p.MaxSize = 0
	assert.True(t, p.Fits(1e9), "zero max means unbounded")
}

func TestPanel_ZeroSizeFixedIsBounded(t *testing.T) {
	p := New([]Config{{Resize: ModeOf(Fixed), Size: Float(0)}, {}})[0]
	assert.True(t, p.Bounded())
	assert.True(t, p.Fits(0))
	assert.False(t, p.Fits(1))
}

func TestMode_Traits(t *testing.T) {
	tests := []struct {
		mode      Mode
		donor     bool
		stretches bool
		frozen    bool
	}{
		{Stretch, false, true, false},
		{Dynamic, true, false, false},
		{Fixed, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.donor, tt.mode.Donor())
			assert.Equal(t, tt.stretches, tt.mode.Stretches())
			assert.Equal(t, tt.frozen, tt.mode.Frozen())
		})
	}
}

func TestMode_Text(t *testing.T) {
	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("fixed")))
	assert.Equal(t, Fixed, m)

	b, err := Dynamic.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "dynamic", string(b))

	assert.Error(t, m.UnmarshalText([]byte("elastic")))
	assert.Equal(t, "Unknown", Mode(42).String())
}
