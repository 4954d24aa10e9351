package ui

// FocusManager tracks which divider keyboard nudges act on. Current is -1
// when no divider has focus.
type FocusManager struct {
	Current  int
	Count    int // Number of dividers
	OnChange func(from, to int)
}

// NewFocusManager creates a manager over count dividers with nothing focused.
func NewFocusManager(count int) *FocusManager {
	return &FocusManager{Current: -1, Count: count}
}

// Focused reports whether a divider has focus.
func (f *FocusManager) Focused() bool {
	return f.Current >= 0 && f.Current < f.Count
}

// Next moves focus to the next divider, wrapping around. With nothing
// focused it starts at the first one. Returns the new focus.
func (f *FocusManager) Next() int {
	if f.Count == 0 {
		return -1
	}
	return f.set((f.Current + 1) % f.Count)
}

// Prev moves focus to the previous divider, wrapping around. With nothing
// focused it starts at the last one.
func (f *FocusManager) Prev() int {
	if f.Count == 0 {
		return -1
	}
	i := f.Current - 1
	if i < 0 {
		i = f.Count - 1
	}
	return f.set(i)
}

// SetFocus focuses divider i. Returns false if i is out of range.
func (f *FocusManager) SetFocus(i int) bool {
	if i < 0 || i >= f.Count {
		return false
	}
	f.set(i)
	return true
}

// Clear drops focus.
func (f *FocusManager) Clear() {
	f.set(-1)
}

// Resize changes the number of dividers, dropping focus if it no longer
// points at one.
func (f *FocusManager) Resize(count int) {
	f.Count = count
	if f.Current >= count {
		f.Clear()
	}
}

func (f *FocusManager) set(i int) int {
	from := f.Current
	f.Current = i
	if f.OnChange != nil && from != i {
		f.OnChange(from, i)
	}
	return i
}
