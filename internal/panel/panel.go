// Package panel models the resizable regions of a panel group: their sizes,
// bounds, resize mode and snap points, and the defaults applied when a
// group is built from partial configuration.
package panel

const (
	DefaultSize    = 256.0
	DefaultMinSize = 48.0
	DefaultMaxSize = 0.0 // unbounded
)

// Style carries cosmetic overrides. The resize algorithm never reads it.
type Style struct {
	Foreground  string `yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty" json:"background,omitempty"`
	BorderColor string `yaml:"borderColor,omitempty" json:"borderColor,omitempty"`
}

// Panel is one resizable region of a group. Sizes are measured along the
// group's flow axis.
type Panel struct {
	ID    string
	Title string

	Size    float64
	MinSize float64
	MaxSize float64 // 0 = unbounded

	// FixedSize is the size a Fixed panel was built with.
	FixedSize float64

	Mode  Mode
	Snap  []float64
	Style Style
}

// Min is the effective minimum size.
func (p Panel) Min() float64 {
	if p.Mode.Frozen() {
		return p.FixedSize
	}
	return p.MinSize
}

// Max is the effective maximum size; 0 means unbounded.
func (p Panel) Max() float64 {
	if p.Mode.Frozen() {
		return p.FixedSize
	}
	return p.MaxSize
}

// Bounded reports whether the panel has a finite effective maximum. A
// Fixed panel is always bounded, even at size zero.
func (p Panel) Bounded() bool {
	return p.Mode.Frozen() || p.Max() > 0
}

// Fits reports whether size lies within the panel's effective bounds.
func (p Panel) Fits(size float64) bool {
	if size < p.Min() {
		return false
	}
	return !p.Bounded() || size <= p.Max()
}

// Clone returns a copy that shares no slices with p.
func (p Panel) Clone() Panel {
	if p.Snap != nil {
		p.Snap = append([]float64(nil), p.Snap...)
	}
	return p
}

// Config is the user-facing description of a panel. Nil fields take the
// package defaults.
type Config struct {
	ID      string    `yaml:"id,omitempty" json:"id,omitempty"`
	Title   string    `yaml:"title,omitempty" json:"title,omitempty"`
	Size    *float64  `yaml:"size,omitempty" json:"size,omitempty"`
	MinSize *float64  `yaml:"minSize,omitempty" json:"minSize,omitempty"`
	MaxSize *float64  `yaml:"maxSize,omitempty" json:"maxSize,omitempty"`
	Resize  *Mode     `yaml:"resize,omitempty" json:"resize,omitempty"`
	Snap    []float64 `yaml:"snap,omitempty" json:"snap,omitempty"`
	Style   Style     `yaml:"style,omitempty" json:"style,omitempty"`
}

// New builds panels from configs, applying defaults. If no panel ends up
// in Stretch mode the last one is promoted. Fixed panels have FixedSize
// frozen here.
func New(configs []Config) []Panel {
	panels := make([]Panel, len(configs))
	stretch := false
	for i, c := range configs {
		p := Panel{
			ID:      c.ID,
			Title:   c.Title,
			Size:    orDefault(c.Size, DefaultSize),
			MinSize: orDefault(c.MinSize, DefaultMinSize),
			MaxSize: orDefault(c.MaxSize, DefaultMaxSize),
			Mode:    Stretch,
			Style:   c.Style,
		}
		if c.Resize != nil {
			p.Mode = *c.Resize
		}
		if len(c.Snap) > 0 {
			p.Snap = append([]float64(nil), c.Snap...)
		}
		if p.Mode.Stretches() {
			stretch = true
		}
		panels[i] = p
	}
	if !stretch && len(panels) > 0 {
		panels[len(panels)-1].Mode = Stretch
	}
	for i := range panels {
		if panels[i].Mode.Frozen() {
			panels[i].FixedSize = panels[i].Size
		}
	}
	return panels
}

// Defaults returns n panels built entirely from defaults.
func Defaults(n int) []Panel {
	return New(make([]Config, n))
}

// Sizes returns the size of each panel.
func Sizes(panels []Panel) []float64 {
	out := make([]float64, len(panels))
	for i, p := range panels {
		out[i] = p.Size
	}
	return out
}

// CloneAll deep-copies a panel slice.
func CloneAll(panels []Panel) []Panel {
	out := make([]Panel, len(panels))
	for i, p := range panels {
		out[i] = p.Clone()
	}
	return out
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// Float is a convenience for filling Config pointer fields.
func Float(v float64) *float64 { return &v }

// ModeOf is a convenience for filling Config.Resize.
func ModeOf(m Mode) *Mode { return &m }
