package filter

import "hailview/internal/model"

// codexAdapter groups events along the Codex JSONL vocabulary: response
// items (messages, reasoning, function calls and their outputs) versus
// event_msg protocol entries.
type codexAdapter struct{}

func init() {
	RegisterNativeAdapter(codexAdapter{})
}

func (codexAdapter) Tool() string { return "codex" }

func (codexAdapter) Groups() []Group {
	return []Group{
		{Key: "message", Label: "Messages"},
		{Key: "reasoning", Label: "Reasoning"},
		{Key: "function_call", Label: "Function calls"},
		{Key: "function_call_output", Label: "Function outputs"},
		{Key: "shell", Label: "Shell"},
		{Key: "event_msg", Label: "Protocol events"},
	}
}

func (codexAdapter) Classify(ev model.Event) string {
	switch ev.Type.(type) {
	case model.UserMessage, model.AgentMessage:
		return "message"
	case model.Thinking:
		return "reasoning"
	case model.ToolResult:
		return "function_call_output"
	case model.ShellCommand:
		return "shell"
	case model.SystemMessage, model.TaskStart, model.TaskEnd:
		return "event_msg"
	default:
		return "function_call"
	}
}
