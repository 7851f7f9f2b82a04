package filter

import "hailview/internal/model"

// claudeCodeAdapter groups events the way Claude Code transcripts are
// structured: everything an assistant does mid-turn is a tool_use block
// answered by a tool_result, and sub-agent delegation is a Task tool.
type claudeCodeAdapter struct{}

func init() {
	RegisterNativeAdapter(claudeCodeAdapter{})
}

func (claudeCodeAdapter) Tool() string { return "claude-code" }

func (claudeCodeAdapter) Groups() []Group {
	return []Group{
		{Key: "prompt", Label: "Prompts"},
		{Key: "assistant", Label: "Assistant"},
		{Key: "thinking", Label: "Thinking"},
		{Key: "tool_use", Label: "Tool use"},
		{Key: "tool_result", Label: "Tool results"},
		{Key: "task", Label: "Sub-agent tasks"},
		{Key: "meta", Label: "Meta"},
	}
}

func (claudeCodeAdapter) Classify(ev model.Event) string {
	switch ev.Type.(type) {
	case model.UserMessage:
		return "prompt"
	case model.AgentMessage:
		return "assistant"
	case model.Thinking:
		return "thinking"
	case model.ToolResult:
		return "tool_result"
	case model.TaskStart, model.TaskEnd:
		return "task"
	case model.SystemMessage:
		return "meta"
	default:
		// File operations, shell, searches, and fetches are all tool_use
		// blocks in the native stream.
		return "tool_use"
	}
}
