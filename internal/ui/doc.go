// Package ui hosts a panel group in a Bubble Tea program.
//
// The app measures the group from window size messages, reconciles stretch
// panels when the terminal resizes, turns mouse messages into divider
// drags, and lets the keyboard nudge a focused divider. Everything runs
// inside Update; the group itself is never touched from another goroutine.
//
// Building blocks:
//   - View: a region with its own Init/Update/View (panel bodies, overlays)
//   - Arrangement: the group mapped onto terminal cells, with hit testing
//   - FocusManager: which divider keyboard nudges act on
//   - KeybindRegistry/KeyHandler: single keys plus SPC leader sequences
//   - OverlayStack: popups such as the drag history
package ui
