package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"panes/internal/panel"
	"panes/internal/ui/textutil"
)

// PanelView hosts the content of one panel. It renders plain text
// word-wrapped, or markdown through glamour, at whatever size the group
// currently gives it. Content taller than the panel scrolls with the mouse
// wheel.
type PanelView struct {
	Title    string
	Meta     string // Shown after the title, e.g. the panel size
	Style    panel.Style
	content  string
	markdown bool

	width, height int
	viewport      viewport.Model
	// renderer is rebuilt only when the width changes.
	renderer      *glamour.TermRenderer
	rendererWidth int
}

var _ View = (*PanelView)(nil)

// NewPanelView creates a panel view. Size it with SetSize before rendering.
func NewPanelView(title, content string, markdown bool, style panel.Style) *PanelView {
	return &PanelView{
		Title:    title,
		Style:    style,
		content:  content,
		markdown: markdown,
		viewport: viewport.New(0, 0),
	}
}

// Init implements View
func (v *PanelView) Init() tea.Cmd {
	return nil
}

// Update implements View. Only mouse wheel scrolling is handled; keys
// belong to the divider bindings.
func (v *PanelView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok {
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}
	return v, nil
}

// SetSize resizes the panel, re-rendering its body if the width changed.
func (v *PanelView) SetSize(width, height int) {
	widthChanged := width != v.width
	v.width, v.height = width, height
	v.viewport.Width = width
	v.viewport.Height = max(0, height-v.headerHeight())
	if widthChanged {
		v.refreshContent()
	}
}

// SetContent replaces the panel body.
func (v *PanelView) SetContent(content string, markdown bool) {
	v.content = content
	v.markdown = markdown
	v.refreshContent()
}

// Size returns the current size in cells.
func (v *PanelView) Size() (width, height int) {
	return v.width, v.height
}

// View implements View
func (v *PanelView) View() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	var parts []string
	if v.headerHeight() > 0 {
		parts = append(parts, v.header())
	}
	if v.viewport.Height > 0 {
		parts = append(parts, v.viewport.View())
	}
	block := textutil.Fit(strings.Join(parts, "\n"), v.width, v.height)
	return v.style().Render(block)
}

func (v *PanelView) headerHeight() int {
	if (v.Title == "" && v.Meta == "") || v.height < 2 {
		return 0
	}
	return 1
}

func (v *PanelView) header() string {
	title := textutil.Truncate(v.Title, v.width)
	line := Styles.Title.Render(title)
	if v.Meta != "" {
		room := v.width - textutil.VisualWidth(title)
		if title != "" {
			room--
			line += " "
		}
		line += Styles.Muted.Render(textutil.Truncate(v.Meta, room))
	}
	return line
}

func (v *PanelView) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if v.Style.Foreground != "" {
		s = s.Foreground(lipgloss.Color(v.Style.Foreground))
	}
	if v.Style.Background != "" {
		s = s.Background(lipgloss.Color(v.Style.Background))
	}
	return s
}

// refreshContent re-renders the body at the current width
func (v *PanelView) refreshContent() {
	if v.width <= 0 {
		v.viewport.SetContent("")
		return
	}
	if v.content == "" {
		v.viewport.SetContent(Styles.Empty.Render(textutil.Truncate("(empty)", v.width)))
		return
	}
	if v.markdown {
		if out, err := v.renderMarkdown(); err == nil {
			v.viewport.SetContent(strings.TrimRight(out, "\n"))
			return
		}
		// Fall through to plain text if glamour cannot render.
	}
	v.viewport.SetContent(textutil.Wrap(v.content, v.width))
}

func (v *PanelView) renderMarkdown() (string, error) {
	if v.renderer == nil || v.rendererWidth != v.width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(v.width),
		)
		if err != nil {
			return "", err
		}
		v.renderer = r
		v.rendererWidth = v.width
	}
	return v.renderer.Render(v.content)
}
