// Package config loads panel group descriptions from YAML or JSON files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"panes/internal/group"
	"panes/internal/jsonutil"
	"panes/internal/panel"
)

// ErrInvalid marks a config that parsed but describes an impossible group.
var ErrInvalid = errors.New("invalid config")

// EnvPath names the config file when no -config flag is given.
const EnvPath = "PANES_CONFIG"

// DefaultHandleBleed widens each divider's hit area by this many cells on
// either side.
const DefaultHandleBleed = 1.0

// Panel is one entry of the panels list.
type Panel struct {
	panel.Config `yaml:",inline"`

	// Content is literal text shown in the panel.
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
	// File is a text or markdown file shown in the panel, relative to the
	// config file.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Markdown reports whether File should be rendered as markdown.
func (p Panel) Markdown() bool {
	switch strings.ToLower(filepath.Ext(p.File)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// Group is the top-level config document.
type Group struct {
	Direction   group.Direction `yaml:"direction,omitempty" json:"direction,omitempty"`
	Spacing     float64         `yaml:"spacing,omitempty" json:"spacing,omitempty"`
	ShowHandles bool            `yaml:"showHandles,omitempty" json:"showHandles,omitempty"`
	BorderColor string          `yaml:"borderColor,omitempty" json:"borderColor,omitempty"`
	HandleBleed *float64        `yaml:"handleBleed,omitempty" json:"handleBleed,omitempty"`
	Panels      []Panel         `yaml:"panels" json:"panels"`

	// dir is where the config was read from; panel files resolve against it.
	dir string
}

// DefaultMinCells is the minimum size of panels built by Default. The
// panel package default is sized for pixels and would pin a terminal.
const DefaultMinCells = 4.0

// Default returns a group of n stretch panels that share the space evenly.
func Default(n int) *Group {
	if n < 1 {
		n = 1
	}
	g := &Group{Spacing: 1, Panels: make([]Panel, n)}
	for i := range g.Panels {
		g.Panels[i].MinSize = panel.Float(DefaultMinCells)
		g.Panels[i].Title = fmt.Sprintf("panel %d", i+1)
	}
	return g
}

// Resolve picks the config path: the flag wins, then $PANES_CONFIG.
// An empty result means "no config file".
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvPath)
}

// Load reads and validates the config at path. Files ending in .json are
// parsed as JSON, everything else as YAML.
func Load(path string) (*Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	g, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config.Load %s: %w", path, err)
	}
	g.dir = filepath.Dir(path)
	return g, nil
}

// Parse decodes and validates a config document in the given format
// ("yaml" or "json").
func Parse(data []byte, format string) (*Group, error) {
	var g Group
	switch format {
	case "json":
		if err := jsonutil.UnmarshalStrict(data, &g, "parse json"); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&g); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Validate reports every problem with g, joined.
func (g *Group) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if len(g.Panels) == 0 {
		invalid("no panels")
	}
	if g.Spacing < 0 {
		invalid("spacing %v is negative", g.Spacing)
	}
	if g.HandleBleed != nil && *g.HandleBleed < 0 {
		invalid("handleBleed %v is negative", *g.HandleBleed)
	}

	ids := make(map[string]int)
	for i, p := range g.Panels {
		for _, f := range []struct {
			name string
			v    *float64
		}{{"size", p.Size}, {"minSize", p.MinSize}, {"maxSize", p.MaxSize}} {
			if f.v != nil && *f.v < 0 {
				invalid("panels[%d]: %s %v is negative", i, f.name, *f.v)
			}
		}
		if p.Resize != nil && *p.Resize == panel.Fixed && p.Size != nil && *p.Size == 0 {
			invalid("panels[%d]: fixed panel needs a positive size", i)
		}
		if p.MinSize != nil && p.MaxSize != nil && *p.MaxSize > 0 && *p.MinSize > *p.MaxSize {
			invalid("panels[%d]: minSize %v exceeds maxSize %v", i, *p.MinSize, *p.MaxSize)
		}
		for _, s := range p.Snap {
			if s < 0 {
				invalid("panels[%d]: snap point %v is negative", i, s)
			}
		}
		if p.Content != "" && p.File != "" {
			invalid("panels[%d]: content and file are mutually exclusive", i)
		}
		if p.ID != "" {
			if j, dup := ids[p.ID]; dup {
				invalid("panels[%d]: id %q already used by panels[%d]", i, p.ID, j)
			}
			ids[p.ID] = i
		}
	}
	return errors.Join(errs...)
}

// Bleed is the effective handle bleed.
func (g *Group) Bleed() float64 {
	if g.HandleBleed == nil {
		return DefaultHandleBleed
	}
	return *g.HandleBleed
}

// PanelModels builds the solver's panels, applying defaults.
func (g *Group) PanelModels() []panel.Panel {
	configs := make([]panel.Config, len(g.Panels))
	for i, p := range g.Panels {
		configs[i] = p.Config
	}
	return panel.New(configs)
}

// Options returns the group options described by g.
func (g *Group) Options() group.Options {
	return group.Options{Spacing: g.Spacing, Direction: g.Direction}
}

// Content returns what panel i should display: its literal content, or
// the contents of its file. Missing files are an error.
func (g *Group) Content(i int) (string, error) {
	p := g.Panels[i]
	if p.File == "" {
		return p.Content, nil
	}
	path := p.File
	if !filepath.IsAbs(path) && g.dir != "" {
		path = filepath.Join(g.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("config.Content panels[%d]: %w", i, err)
	}
	return string(data), nil
}
