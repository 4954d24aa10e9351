package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leader is the canonical spelling of the space bar in sequences.
const leader = "SPC"

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty = every mode
}

func (b binding) appliesTo(mode AppMode) bool {
	if len(b.modes) == 0 {
		return true
	}
	for _, m := range b.modes {
		if m == mode {
			return true
		}
	}
	return false
}

// KeybindRegistry maps key sequences to commands. Sequences are written
// the way they are typed, separated by spaces: "q", "ctrl+c", "SPC r",
// "SPC d r". "space" and " " are accepted for SPC.
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq for every mode with no help text.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForMode(seq, cmd, "", nil)
}

// BindWithDesc registers seq for every mode. desc is shown in the leader
// help bar.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers seq for the given modes only. A later
// registration of the same sequence replaces the earlier one.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command bound to seq in any mode.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

func (r *KeybindRegistry) lookupForMode(seq string, mode AppMode) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.appliesTo(mode) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether some longer sequence starts with seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for s := range r.bindings {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// submenuLabels name the leader keys that open a submenu.
var submenuLabels = map[string]string{
	"d": "Divider",
	"v": "View",
}

// LeaderHints lists what can be typed after currentSeq ("" means right
// after SPC), keyed by the next key. Keys that open a submenu are shown by
// their submenu label rather than by one of the actions inside.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	prefix := leader
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq)
	}
	hints := make(map[string]string)
	for seq, b := range r.bindings {
		rest, ok := strings.CutPrefix(seq, prefix+" ")
		if !ok || b.cmd == nil || !b.appliesTo(mode) {
			continue
		}
		next, _, _ := strings.Cut(rest, " ")
		switch {
		case r.HasPrefix(prefix + " " + next):
			if label, ok := submenuLabels[next]; ok {
				hints[next] = label
			} else {
				hints[next] = next + "…"
			}
		case b.desc != "":
			hints[next] = b.desc
		default:
			hints[next] = seq
		}
	}
	return hints
}

// normalizeSeq rewrites the space bar as SPC and collapses whitespace.
func normalizeSeq(seq string) string {
	if seq == " " {
		return leader
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = leader
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler turns key presses into commands, tracking leader sequences
// in progress.
type KeyHandler struct {
	Registry *KeybindRegistry
	// LeaderWaiting is true between SPC and the end of a sequence.
	LeaderWaiting bool
	// Buffer holds the sequence typed so far, starting with SPC.
	Buffer []string
}

// NewKeyHandler creates a handler over reg with SPC as the leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes one key press in the given mode. consumed reports
// whether the key belonged to the keybind system; unconsumed keys go on to
// the focused view. Bindings registered for other modes are ignored.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	s := keyToSeqPart(msg.String())

	switch {
	case s == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.reset()
		return true, nil
	case s == leader && !h.LeaderWaiting:
		h.LeaderWaiting = true
		h.Buffer = []string{leader}
		return true, nil
	case !h.LeaderWaiting:
		if c := h.Registry.lookupForMode(s, mode); c != nil {
			return true, c
		}
		return false, nil
	}

	// Inside a leader sequence every key is consumed: it either completes
	// a binding, extends the sequence, or abandons it.
	h.Buffer = append(h.Buffer, s)
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.lookupForMode(seq, mode); c != nil {
		h.reset()
		return true, c
	}
	if !h.Registry.HasPrefix(seq) {
		h.reset()
	}
	return true, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart maps a tea key string onto sequence notation.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return leader
	}
	return s
}

var _ help.KeyMap = (*KeyMap)(nil)

// KeyMap adapts the leader hints for the current mode and sequence to
// bubbles/help.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap creates a KeyMap for the given registry, handler, and mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) *KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, mode: mode}
}

// ShortHelp returns one binding per hint, sorted by key, followed by esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.LeaderHints(km.currentSeq(), km.mode)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// currentSeq is the leader sequence typed so far, or "" at the top level.
func (km *KeyMap) currentSeq() string {
	if km.keyHandler == nil || len(km.keyHandler.Buffer) <= 1 {
		return ""
	}
	return strings.Join(km.keyHandler.Buffer, " ")
}

// FullHelp is ShortHelp as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}
