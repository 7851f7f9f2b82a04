package filter

import (
	"fmt"

	"hailview/internal/model"
)

// NativeAdapter provides an adapter-specific grouping for sessions recorded
// by one originating tool. Adapters register themselves at init time, the
// same way the parser implementations do.
type NativeAdapter interface {
	// Tool is the agent tool name the adapter serves (Session.Agent.Tool).
	Tool() string
	// Groups returns the taxonomy in stable display order.
	Groups() []Group
	// Classify maps an event to one of the adapter's group keys.
	Classify(ev model.Event) string
}

var nativeAdapters = map[string]NativeAdapter{}

// RegisterNativeAdapter makes an adapter available for its tool name.
func RegisterNativeAdapter(adapter NativeAdapter) {
	nativeAdapters[adapter.Tool()] = adapter
}

// NativeAdapterFor looks up the adapter registered for tool.
func NativeAdapterFor(tool string) (NativeAdapter, bool) {
	adapter, ok := nativeAdapters[tool]
	return adapter, ok
}

// UnsupportedViewModeError reports a native-mode request for a session
// whose tool has no registered native grouping. The caller is expected to
// fall back to unified mode and may surface a notice; the engine never
// substitutes silently.
type UnsupportedViewModeError struct {
	Tool string
}

func (e *UnsupportedViewModeError) Error() string {
	return fmt.Sprintf("native view is not supported for tool %q", e.Tool)
}

// NativeOptions builds the native option set for tool over the subset idx.
func NativeOptions(tool string, events []model.Event, idx []int) ([]Option, error) {
	adapter, ok := NativeAdapterFor(tool)
	if !ok {
		return nil, &UnsupportedViewModeError{Tool: tool}
	}
	return countOptions(adapter.Groups(), adapter.Classify, events, idx), nil
}
