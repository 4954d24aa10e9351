package ui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"panes/internal/config"
	"panes/internal/gesture"
	"panes/internal/group"
	"panes/internal/notify"
	"panes/internal/panel"
	"panes/internal/trace"
)

// statusHeight is the number of rows reserved below the group.
const statusHeight = 1

// Keyboard nudge steps, in cells.
const (
	nudgeStep    = 1.0
	nudgeStepBig = 8.0
)

// Options configures NewAppModel.
type Options struct {
	// Path is the config file SPC r reloads; empty disables reloading.
	Path   string
	Traces *trace.Manager // nil disables drag history
	Notify notify.Emitter // nil disables notifications
}

// AppModel is the root model: one panel group filling the terminal above a
// status line.
type AppModel struct {
	Config      *config.Group
	Path        string
	Group       *group.Group
	Hub         *gesture.Hub
	Dividers    []*gesture.Divider
	Panels      []*PanelView
	Focus       *FocusManager
	Overlays    OverlayStack
	KeyHandler  *KeyHandler
	Traces      *trace.Manager
	Notify      notify.Emitter
	ShowHandles bool

	width, height int
	status        string
	err           error
	historyDirty  bool
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.layoutPanels()
	if a.historyDirty {
		a.refreshHistory()
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if !a.measured() {
		return ""
	}
	body, ok := a.Overlays.Render(a.width, a.bodyHeight())
	if !ok {
		body = a.renderGroup()
	}
	if a.KeyHandler.LeaderWaiting {
		if help := RenderKeybindHelp(a.KeyHandler, a.Mode()); help != "" {
			body = overBottom(body, help)
		}
	}
	return body + "\n" + a.renderStatus()
}

// NewAppModel creates the root application model for cfg.
func NewAppModel(cfg *config.Group, opts Options) *AppModel {
	reg := NewKeybindRegistry()
	m := &AppModel{
		Path:       opts.Path,
		Hub:        &gesture.Hub{},
		Focus:      NewFocusManager(0),
		KeyHandler: NewKeyHandler(reg),
		Traces:     opts.Traces,
		Notify:     opts.Notify,
	}
	m.bindKeys(reg)
	m.Focus.OnChange = func(_, to int) {
		if to < 0 {
			m.status = "focus cleared"
			return
		}
		m.status = fmt.Sprintf("divider %d focused", to+1)
	}
	if m.Traces != nil {
		m.Traces.SetOnChange(func() { m.historyDirty = true })
	}
	m.apply(cfg)
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

func (m *AppModel) bindKeys(reg *KeybindRegistry) {
	send := func(msg tea.Msg) tea.Cmd {
		return func() tea.Msg { return msg }
	}
	normal := []AppMode{ModeNormal}

	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC r", send(ReloadMsg{}), "Reload config")
	reg.BindWithDescForMode("SPC d r", send(ResetSizesMsg{}), "Reset sizes", normal)
	reg.BindWithDescForMode("SPC d c", send(ClearFocusMsg{}), "Clear focus", normal)
	reg.BindWithDesc("SPC v h", send(ToggleHandlesMsg{}), "Toggle handles")
	reg.BindWithDescForMode("SPC v t", send(ShowHistoryMsg{}), "Drag history", normal)

	reg.BindWithDescForMode("tab", send(FocusNextMsg{}), "Next divider", normal)
	reg.BindWithDescForMode("shift+tab", send(FocusPrevMsg{}), "Previous divider", normal)
	for _, k := range []struct {
		keys  []string
		delta float64
	}{
		{[]string{"h", "left", "k", "up"}, -nudgeStep},
		{[]string{"l", "right", "j", "down"}, nudgeStep},
		{[]string{"H", "K"}, -nudgeStepBig},
		{[]string{"L", "J"}, nudgeStepBig},
	} {
		for _, seq := range k.keys {
			reg.BindWithDescForMode(seq, send(NudgeMsg{Delta: k.delta}), "", normal)
		}
	}
}

// Mode reports what the keyboard currently drives.
func (m *AppModel) Mode() AppMode {
	if m.Overlays.Len() > 0 {
		return ModeHistory
	}
	if m.Hub.Active() {
		return ModeDragging
	}
	return ModeNormal
}

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.reconcile()
		for _, o := range m.Overlays.Stack {
			if h, ok := o.View.(*HistoryView); ok {
				h.SetSize(m.width, m.bodyHeight())
			}
		}
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case ReloadMsg:
		return m.reload()
	case ConfigLoadedMsg:
		m.apply(msg.Config)
		m.err = nil
		m.status = "config reloaded"
		m.emit(notify.Event{Kind: notify.KindReloaded, Divider: -1, Sizes: m.Group.Sizes()})
	case ConfigErrorMsg:
		m.err = msg.Err
		m.emit(notify.Event{Kind: notify.KindError, Divider: -1, Message: msg.Err.Error()})
	case ToggleHandlesMsg:
		m.ShowHandles = !m.ShowHandles
	case ShowHistoryMsg:
		m.showHistory()
	case ResetSizesMsg:
		m.apply(m.Config)
		m.status = "sizes reset"
	case FocusNextMsg:
		m.Focus.Next()
	case FocusPrevMsg:
		m.Focus.Prev()
	case ClearFocusMsg:
		m.Focus.Clear()
	case NudgeMsg:
		m.nudge(msg.Delta)
	}
	return nil
}

// apply replaces the group with one built from cfg. Any drag in progress
// is cancelled first.
func (m *AppModel) apply(cfg *config.Group) {
	m.Hub.CancelAll()
	for _, d := range m.Dividers {
		d.Close()
	}

	m.Config = cfg
	m.ShowHandles = cfg.ShowHandles
	m.Group = group.New(cfg.PanelModels(), group.MeasureFunc(m.measure), cfg.Options())

	axis := gesture.Horizontal
	if m.Group.Direction() == group.Column {
		axis = gesture.Vertical
	}
	hooks := m.hooks()
	m.Dividers = make([]*gesture.Divider, m.Group.Dividers())
	for i := range m.Dividers {
		m.Dividers[i] = gesture.NewDivider(i, axis, m.Group, m.Hub, hooks)
	}
	m.Focus.Resize(len(m.Dividers))

	m.Panels = make([]*PanelView, m.Group.Len())
	for i, p := range m.Group.Panels() {
		content, err := cfg.Content(i)
		markdown := cfg.Panels[i].Markdown()
		if err != nil {
			m.err = err
			content, markdown = err.Error(), false
		}
		m.Panels[i] = NewPanelView(panelTitle(i, p), content, markdown, p.Style)
	}
	m.reconcile()
}

// hooks wires divider drags to the status line, the drag history and
// notifications. The status hook runs last so it sees the finished gesture.
func (m *AppModel) hooks() gesture.Hooks {
	var hs []gesture.Hooks
	if m.Traces != nil {
		hs = append(hs, m.Traces.Hooks())
	}
	if m.Notify != nil {
		hs = append(hs, notify.Hooks(m.Notify))
	}
	hs = append(hs, gesture.Hooks{
		OnResizeEnd: func(divider int, _ []panel.Panel) {
			m.status = fmt.Sprintf("divider %d released", divider+1)
			if m.Traces == nil {
				return
			}
			if g, ok := m.Traces.Last(); ok && g.Divider == divider {
				m.status = fmt.Sprintf("divider %d moved %s", divider+1, formatDelta(g.Applied()))
			}
		},
	})
	return gesture.Chain(hs...)
}

// measure implements group.Measurer over the last window size.
func (m *AppModel) measure() (group.Size, bool) {
	if !m.measured() {
		return group.Size{}, false
	}
	return group.Size{Width: float64(m.width), Height: float64(m.bodyHeight())}, true
}

func (m *AppModel) measured() bool {
	return m.width > 0 && m.bodyHeight() > 0
}

func (m *AppModel) bodyHeight() int {
	return max(0, m.height-statusHeight)
}

// reconcile folds a new terminal size into the group: every stretch panel
// whose flexed size differs from its tracked size is reconciled, the way a
// browser reports each stretched panel after a container resize.
func (m *AppModel) reconcile() {
	if !m.measured() {
		return
	}
	g := m.Group
	target := g.Flex(g.BoundingSize())
	stale := false
	for i, size := range g.Sizes() {
		if math.Abs(target[i]-size) <= group.DriftEpsilon {
			target[i] = size
			continue
		}
		stale = true
	}
	changed := false
	var short float64
	if stale {
		short = g.ReconcileAll(target, func() { changed = true })
	}
	if !g.Settled() && g.Dividers() > 0 {
		g.Resize(0, 0)
		changed = true
	}
	if !changed {
		return
	}
	ev := notify.Event{Kind: notify.KindReconciled, Divider: -1, Sizes: g.Sizes()}
	if short > group.DriftEpsilon {
		ev.Message = formatCells(short) + " cells short"
		m.status = "window too small: " + ev.Message
	}
	m.emit(ev)
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if top, ok := m.Overlays.Peek(); ok && !m.KeyHandler.LeaderWaiting && top.IsDismissKey(msg.String()) {
		m.Overlays.Pop()
		return nil
	}
	if consumed, cmd := m.KeyHandler.Handle(msg, m.Mode()); consumed {
		return cmd
	}
	if cmd, ok := m.Overlays.UpdateTop(msg); ok {
		return cmd
	}
	if msg.String() == "esc" {
		if m.Hub.Active() {
			m.Hub.CancelAll()
			m.status = "drag cancelled"
		} else {
			m.Focus.Clear()
		}
	}
	return nil
}

func (m *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if cmd, ok := m.Overlays.UpdateTop(msg); ok {
		return cmd
	}
	if !m.measured() {
		return nil
	}
	ev, ok := pointerEvent(msg)
	if !ok {
		// Wheel: scroll whichever panel is under the pointer.
		if i, hit := m.arrangement().PanelAt(msg.X, msg.Y); hit {
			_, cmd := m.Panels[i].Update(msg)
			return cmd
		}
		return nil
	}
	if ev.Kind != gesture.Down {
		m.Hub.Dispatch(ev)
		return nil
	}
	if m.Hub.Active() {
		// Another button went down mid-drag; the drag keeps going.
		return nil
	}
	if i, hit := m.arrangement().DividerAt(msg.X, msg.Y, m.Config.Bleed()); hit {
		if m.Dividers[i].Press(ev) {
			m.Focus.SetFocus(i)
			m.status = fmt.Sprintf("dragging divider %d", i+1)
		}
	}
	return nil
}

// nudge moves the focused divider, focusing the first one if none is.
func (m *AppModel) nudge(delta float64) {
	if !m.measured() || len(m.Dividers) == 0 {
		return
	}
	if !m.Focus.Focused() {
		m.Focus.Next()
	}
	i := m.Focus.Current
	applied := m.Group.Resize(i, delta)
	if applied == 0 {
		m.status = fmt.Sprintf("divider %d is at its limit", i+1)
		return
	}
	m.status = fmt.Sprintf("divider %d moved %s", i+1, formatDelta(applied))
	m.emit(notify.Event{Kind: notify.KindResizeEnd, Divider: i, Sizes: m.Group.Sizes()})
}

func (m *AppModel) reload() tea.Cmd {
	if m.Path == "" {
		m.status = "no config file to reload"
		return nil
	}
	path := m.Path
	return func() tea.Msg {
		cfg, err := config.Load(path)
		if err != nil {
			return ConfigErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

func (m *AppModel) showHistory() {
	h := NewHistoryView(m.Traces)
	h.SetSize(m.width, m.bodyHeight())
	m.Overlays.Push(Overlay{View: h, Dismiss: []string{"esc"}})
}

func (m *AppModel) refreshHistory() {
	for _, o := range m.Overlays.Stack {
		if h, ok := o.View.(*HistoryView); ok {
			h.Refresh()
		}
	}
	m.historyDirty = false
}

func (m *AppModel) emit(ev notify.Event) {
	if m.Notify != nil {
		m.Notify.Emit(ev)
	}
}

func (m *AppModel) arrangement() Arrangement {
	return Arrange(m.Group.Layout(), m.width, m.bodyHeight())
}

// layoutPanels sizes every panel view to its current cell rectangle.
func (m *AppModel) layoutPanels() {
	if !m.measured() {
		return
	}
	for i, r := range m.arrangement().Panels {
		p := m.Group.Panel(i)
		m.Panels[i].Meta = fmt.Sprintf("%s · %s", formatCells(p.Size), p.Mode)
		m.Panels[i].SetSize(r.W, r.H)
	}
}

func panelTitle(i int, p panel.Panel) string {
	switch {
	case p.Title != "":
		return p.Title
	case p.ID != "":
		return p.ID
	default:
		return fmt.Sprintf("panel %d", i+1)
	}
}
