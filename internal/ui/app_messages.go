package ui

import "panes/internal/config"

// ReloadMsg asks the app to re-read its config file (SPC r, or the file watcher).
type ReloadMsg struct{}

// ConfigLoadedMsg carries a freshly loaded config to apply.
type ConfigLoadedMsg struct {
	Config *config.Group
}

// ConfigErrorMsg reports a config that failed to load; the current layout stays.
type ConfigErrorMsg struct {
	Err error
}

// ToggleHandlesMsg shows or hides divider handles (SPC v h).
type ToggleHandlesMsg struct{}

// ShowHistoryMsg opens the drag history overlay (SPC v t).
type ShowHistoryMsg struct{}

// ResetSizesMsg rebuilds the group from the configured sizes (SPC d r).
type ResetSizesMsg struct{}

// FocusNextMsg and FocusPrevMsg cycle keyboard focus across dividers.
type FocusNextMsg struct{}

type FocusPrevMsg struct{}

// ClearFocusMsg drops divider focus (SPC d c).
type ClearFocusMsg struct{}

// NudgeMsg moves the focused divider by Delta cells.
type NudgeMsg struct {
	Delta float64
}
