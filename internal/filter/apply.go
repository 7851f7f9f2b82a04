package filter

import (
	"fmt"

	"hailview/internal/model"
)

// ViewMode selects which taxonomy classifies events.
type ViewMode string

const (
	ViewUnified ViewMode = "unified"
	ViewNative  ViewMode = "native"
)

// ParseViewMode validates a mode string from flags or config.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewUnified, ViewNative:
		return ViewMode(s), nil
	case "":
		return ViewUnified, nil
	default:
		return "", fmt.Errorf("invalid view mode: %s", s)
	}
}

// Options builds the option set for the active taxonomy.
func Options(tool string, events []model.Event, idx []int, mode ViewMode) ([]Option, error) {
	if mode == ViewNative {
		return NativeOptions(tool, events, idx)
	}
	return UnifiedOptions(events, idx), nil
}

// Apply returns the positions within idx whose classification key is in
// enabled. Native mode without a registered adapter yields an
// UnsupportedViewModeError so the caller can fall back and notify the user.
func Apply(tool string, events []model.Event, idx []int, mode ViewMode, enabled map[string]bool) ([]int, error) {
	classify := UnifiedKey
	if mode == ViewNative {
		adapter, ok := NativeAdapterFor(tool)
		if !ok {
			return nil, &UnsupportedViewModeError{Tool: tool}
		}
		classify = adapter.Classify
	}

	if idx == nil {
		idx = make([]int, len(events))
		for i := range idx {
			idx[i] = i
		}
	}

	kept := make([]int, 0, len(idx))
	for _, pos := range idx {
		if enabled[classify(events[pos])] {
			kept = append(kept, pos)
		}
	}
	return kept, nil
}

// EnableAll returns an enabled set covering every option key.
func EnableAll(options []Option) map[string]bool {
	enabled := make(map[string]bool, len(options))
	for _, opt := range options {
		enabled[opt.Key] = true
	}
	return enabled
}

// Toggle flips membership of the option at 1-based position digit (the
// digit-key shortcut contract: 1–9 address the first nine options of the
// active taxonomy). It reports whether the digit addressed an option.
func Toggle(enabled map[string]bool, options []Option, digit int) bool {
	if digit < 1 || digit > 9 || digit > len(options) {
		return false
	}
	key := options[digit-1].Key
	if enabled[key] {
		delete(enabled, key)
	} else {
		enabled[key] = true
	}
	return true
}

// ClampCursor keeps a selection cursor inside [0, length). A cursor left
// pointing past a shrunken option list clamps to the last valid index.
func ClampCursor(cursor, length int) int {
	if length <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
