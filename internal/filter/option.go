// Package filter derives the unified and native filter-option taxonomies
// from an event subset and applies an enabled-key selection to it. Options
// are pure functions of the candidate set: any change to the set (a search
// narrowing it, boilerplate toggling) rebuilds them from scratch.
package filter

import "hailview/internal/model"

// Option is one selectable filter entry. Key is stable across recomputation
// and addressable by position for digit shortcuts; Count is live for the
// candidate set the option was built from. Zero-count options stay listed
// so shortcut numbering does not shift.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Group is a taxonomy entry before counting.
type Group struct {
	Key   string
	Label string
}

// unifiedGroups is the tool-agnostic taxonomy, in display order. Every
// event type maps to exactly one group, so option counts partition the
// candidate set.
var unifiedGroups = []Group{
	{Key: "user", Label: "User messages"},
	{Key: "agent", Label: "Agent messages"},
	{Key: "system", Label: "System messages"},
	{Key: "thinking", Label: "Thinking"},
	{Key: "tools", Label: "Tool calls"},
	{Key: "files", Label: "File operations"},
	{Key: "shell", Label: "Shell commands"},
	{Key: "search", Label: "Searches"},
	{Key: "web", Label: "Web fetches"},
	{Key: "media", Label: "Media generation"},
	{Key: "tasks", Label: "Tasks"},
}

// UnifiedKey classifies an event into its unified group.
func UnifiedKey(ev model.Event) string {
	switch ev.Type.(type) {
	case model.UserMessage:
		return "user"
	case model.AgentMessage:
		return "agent"
	case model.SystemMessage:
		return "system"
	case model.Thinking:
		return "thinking"
	case model.ToolCall, model.ToolResult:
		return "tools"
	case model.FileRead, model.FileEdit, model.FileCreate, model.FileDelete:
		return "files"
	case model.ShellCommand:
		return "shell"
	case model.WebSearch, model.CodeSearch, model.FileSearch:
		return "search"
	case model.WebFetch:
		return "web"
	case model.ImageGenerate:
		return "media"
	case model.TaskStart, model.TaskEnd:
		return "tasks"
	default:
		return "system"
	}
}

// UnifiedOptions builds the unified option set with live counts over the
// subset idx (positions into events; nil means all).
func UnifiedOptions(events []model.Event, idx []int) []Option {
	return countOptions(unifiedGroups, UnifiedKey, events, idx)
}

func countOptions(groups []Group, classify func(model.Event) string, events []model.Event, idx []int) []Option {
	counts := make(map[string]int)
	if idx == nil {
		for _, ev := range events {
			counts[classify(ev)]++
		}
	} else {
		for _, pos := range idx {
			counts[classify(events[pos])]++
		}
	}

	options := make([]Option, len(groups))
	for i, g := range groups {
		options[i] = Option{Key: g.Key, Label: g.Label, Count: counts[g.Key]}
	}
	return options
}
