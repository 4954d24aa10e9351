package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panes/internal/group"
	"panes/internal/panel"
)

const sampleYAML = `
direction: column
spacing: 1
showHandles: true
borderColor: "63"
handleBleed: 2
panels:
  - id: tree
    title: Files
    size: 30
    minSize: 20
    maxSize: 60
    resize: dynamic
    snap: [40]
    content: hello
  - id: editor
    resize: stretch
    file: notes.md
  - id: status
    size: 3
    resize: fixed
`

func TestParse_YAML(t *testing.T) {
	g, err := Parse([]byte(sampleYAML), "yaml")
	require.NoError(t, err)

	assert.Equal(t, group.Column, g.Direction)
	assert.Equal(t, 1.0, g.Spacing)
	assert.True(t, g.ShowHandles)
	assert.Equal(t, "63", g.BorderColor)
	assert.Equal(t, 2.0, g.Bleed())
	require.Len(t, g.Panels, 3)

	tree := g.Panels[0]
	assert.Equal(t, "tree", tree.ID)
	assert.Equal(t, "Files", tree.Title)
	require.NotNil(t, tree.Resize)
	assert.Equal(t, panel.Dynamic, *tree.Resize)
	assert.Equal(t, []float64{40}, tree.Snap)
	assert.Equal(t, "hello", tree.Content)

	assert.True(t, g.Panels[1].Markdown())
	assert.False(t, g.Panels[0].Markdown())
}

func TestParse_JSON(t *testing.T) {
	doc := `{"direction":"row","panels":[{"size":100,"resize":"fixed"},{"resize":"stretch"}]}`

	g, err := Parse([]byte(doc), "json")
	require.NoError(t, err)

	assert.Equal(t, group.Row, g.Direction)
	require.Len(t, g.Panels, 2)
	require.NotNil(t, g.Panels[0].Size)
	assert.Equal(t, 100.0, *g.Panels[0].Size)
	assert.Equal(t, panel.Fixed, *g.Panels[0].Resize)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("panels:\n  - sise: 10\n"), "yaml")
	assert.Error(t, err)

	_, err = Parse([]byte(`{"panels":[{"sise":10}]}`), "json")
	assert.Error(t, err)
}

func TestParse_JSONRejectsTrailingBracket(t *testing.T) {
	_, err := Parse([]byte(`{"panels":[{}]}}`), "json")
	assert.Error(t, err)

	_, err = Parse([]byte(`{"panels":[{}]}]`), "json")
	assert.Error(t, err)
}

func TestValidate_RejectsZeroSizeFixedPanel(t *testing.T) {
	_, err := Parse([]byte("panels:\n  - {size: 0, resize: fixed}\n  - {}\n"), "yaml")
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "fixed panel needs a positive size")

	_, err = Parse([]byte("panels:\n  - {size: 0, resize: dynamic}\n  - {}\n"), "yaml")
	assert.NoError(t, err, "only fixed panels need a size")
}

func TestParse_RejectsBadEnums(t *testing.T) {
	_, err := Parse([]byte("direction: diagonal\npanels: [{}]\n"), "yaml")
	assert.Error(t, err)

	_, err = Parse([]byte("panels:\n  - resize: wobbly\n"), "yaml")
	assert.Error(t, err)
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), "toml")
	assert.Error(t, err)
}

func TestParse_EmptyDocumentHasNoPanels(t *testing.T) {
	_, err := Parse(nil, "yaml")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate_JoinsEveryProblem(t *testing.T) {
	g := &Group{
		Spacing:     -1,
		HandleBleed: panel.Float(-2),
		Panels: []Panel{
			{Config: panel.Config{ID: "a", MinSize: panel.Float(80), MaxSize: panel.Float(40)}},
			{Config: panel.Config{ID: "a", Size: panel.Float(-5), Snap: []float64{-1}}},
			{Config: panel.Config{}, Content: "x", File: "y.txt"},
		},
	}

	err := g.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	assert.Len(t, joined.Unwrap(), 7)
	assert.Contains(t, err.Error(), "minSize 80 exceeds maxSize 40")
	assert.Contains(t, err.Error(), `id "a" already used by panels[0]`)
}

func TestValidate_UnboundedMaxAllowsAnyMin(t *testing.T) {
	g := &Group{Panels: []Panel{
		{Config: panel.Config{MinSize: panel.Float(500), MaxSize: panel.Float(0)}},
	}}
	assert.NoError(t, g.Validate())
}

func TestDefault(t *testing.T) {
	g := Default(3)
	require.NoError(t, g.Validate())

	panels := g.PanelModels()
	require.Len(t, panels, 3)
	for i, p := range panels {
		assert.Equal(t, panel.Stretch, p.Mode)
		assert.Equal(t, DefaultMinCells, p.MinSize)
		assert.Equal(t, fmt.Sprintf("panel %d", i+1), p.Title)
	}
	assert.Equal(t, 1.0, g.Spacing)
	assert.Equal(t, DefaultHandleBleed, g.Bleed())

	assert.Len(t, Default(0).Panels, 1)
}

func TestOptions(t *testing.T) {
	g := &Group{Spacing: 2, Direction: group.Column}
	assert.Equal(t, group.Options{Spacing: 2, Direction: group.Column}, g.Options())
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvPath, "/from/env.yaml")
	assert.Equal(t, "/from/flag.yaml", Resolve("/from/flag.yaml"))
	assert.Equal(t, "/from/env.yaml", Resolve(""))

	t.Setenv(EnvPath, "")
	assert.Equal(t, "", Resolve(""))
}

func TestLoad_ReadsContentRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# Notes"), 0o644))
	path := filepath.Join(dir, "panes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	g, err := Load(path)
	require.NoError(t, err)

	text, err := g.Content(0)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	md, err := g.Content(1)
	require.NoError(t, err)
	assert.Equal(t, "# Notes", md)

	empty, err := g.Content(2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLoad_JSONByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"panels":[{}]}`), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, g.Panels, 1)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spacing: -3\npanels: [{}]\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestContent_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("panels:\n  - file: gone.txt\n"), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	_, err = g.Content(0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
