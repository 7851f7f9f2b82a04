package model

import (
	"encoding/json"
	"fmt"
)

// Kind is the event_type discriminator value.
type Kind string

const (
	KindUserMessage   Kind = "user_message"
	KindAgentMessage  Kind = "agent_message"
	KindSystemMessage Kind = "system_message"
	KindThinking      Kind = "thinking"
	KindToolCall      Kind = "tool_call"
	KindToolResult    Kind = "tool_result"
	KindFileRead      Kind = "file_read"
	KindFileEdit      Kind = "file_edit"
	KindFileCreate    Kind = "file_create"
	KindFileDelete    Kind = "file_delete"
	KindShellCommand  Kind = "shell_command"
	KindWebSearch     Kind = "web_search"
	KindWebFetch      Kind = "web_fetch"
	KindCodeSearch    Kind = "code_search"
	KindFileSearch    Kind = "file_search"
	KindImageGenerate Kind = "image_generate"
	KindTaskStart     Kind = "task_start"
	KindTaskEnd       Kind = "task_end"
)

// EventType is the closed variant set of timeline entry types. Consumers
// dispatch with a type switch; only ToolCall and ToolResult carry a tool
// name and thus participate in call/result correlation.
type EventType interface {
	Kind() Kind
	isEventType()
}

// UserMessage is a message typed by the user.
type UserMessage struct{}

// AgentMessage is a message produced by the assistant.
type AgentMessage struct{}

// SystemMessage is an injected system or environment message.
type SystemMessage struct{}

// Thinking is an extended-reasoning block emitted by the assistant.
type Thinking struct{}

// ToolCall is an invocation of a named tool.
type ToolCall struct {
	Name string
}

// ToolResult is the outcome of a tool invocation. CallID, when present,
// links the result back to its call explicitly.
type ToolResult struct {
	Name    string
	IsError bool
	CallID  string
}

// FileRead records a file being read.
type FileRead struct {
	Path string
}

// FileEdit records a file modification, optionally with a unified diff.
type FileEdit struct {
	Path string
	Diff string
}

// FileCreate records a file being created.
type FileCreate struct {
	Path string
}

// FileDelete records a file being deleted.
type FileDelete struct {
	Path string
}

// ShellCommand records a shell execution. ExitCode is nil when the command
// was still running (or its status was never reported).
type ShellCommand struct {
	Command  string
	ExitCode *int
}

// WebSearch records a web search.
type WebSearch struct {
	Query string
}

// WebFetch records a URL fetch.
type WebFetch struct {
	URL string
}

// CodeSearch records a code/content search.
type CodeSearch struct {
	Query string
}

// FileSearch records a filename/glob search.
type FileSearch struct {
	Pattern string
}

// ImageGenerate records an image generation request.
type ImageGenerate struct {
	Prompt string
}

// TaskStart marks the delegation point of a task or sub-agent.
type TaskStart struct {
	Title string
}

// TaskEnd marks a task or sub-agent completing.
type TaskEnd struct {
	Summary string
}

func (UserMessage) Kind() Kind   { return KindUserMessage }
func (AgentMessage) Kind() Kind  { return KindAgentMessage }
func (SystemMessage) Kind() Kind { return KindSystemMessage }
func (Thinking) Kind() Kind      { return KindThinking }
func (ToolCall) Kind() Kind      { return KindToolCall }
func (ToolResult) Kind() Kind    { return KindToolResult }
func (FileRead) Kind() Kind      { return KindFileRead }
func (FileEdit) Kind() Kind      { return KindFileEdit }
func (FileCreate) Kind() Kind    { return KindFileCreate }
func (FileDelete) Kind() Kind    { return KindFileDelete }
func (ShellCommand) Kind() Kind  { return KindShellCommand }
func (WebSearch) Kind() Kind     { return KindWebSearch }
func (WebFetch) Kind() Kind      { return KindWebFetch }
func (CodeSearch) Kind() Kind    { return KindCodeSearch }
func (FileSearch) Kind() Kind    { return KindFileSearch }
func (ImageGenerate) Kind() Kind { return KindImageGenerate }
func (TaskStart) Kind() Kind     { return KindTaskStart }
func (TaskEnd) Kind() Kind       { return KindTaskEnd }

func (UserMessage) isEventType()   {}
func (AgentMessage) isEventType()  {}
func (SystemMessage) isEventType() {}
func (Thinking) isEventType()      {}
func (ToolCall) isEventType()      {}
func (ToolResult) isEventType()    {}
func (FileRead) isEventType()      {}
func (FileEdit) isEventType()      {}
func (FileCreate) isEventType()    {}
func (FileDelete) isEventType()    {}
func (ShellCommand) isEventType()  {}
func (WebSearch) isEventType()     {}
func (CodeSearch) isEventType()    {}
func (WebFetch) isEventType()      {}
func (FileSearch) isEventType()    {}
func (ImageGenerate) isEventType() {}
func (TaskStart) isEventType()     {}
func (TaskEnd) isEventType()       {}

// eventTypePayload covers every typed field any variant can carry.
type eventTypePayload struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	IsError  bool   `json:"is_error"`
	CallID   string `json:"call_id"`
	Path     string `json:"path"`
	Diff     string `json:"diff"`
	Command  string `json:"command"`
	ExitCode *int   `json:"exit_code"`
	Query    string `json:"query"`
	URL      string `json:"url"`
	Pattern  string `json:"pattern"`
	Prompt   string `json:"prompt"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
}

// DecodeEventType decodes a tagged event_type object. An unrecognized
// discriminator is a hard error: unlike content blocks, the classifier and
// correlator must be able to match exhaustively over event types.
func DecodeEventType(raw json.RawMessage) (EventType, error) {
	var p eventTypePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("unmarshal event_type: %w", err)
	}

	switch Kind(p.Type) {
	case KindUserMessage:
		return UserMessage{}, nil
	case KindAgentMessage:
		return AgentMessage{}, nil
	case KindSystemMessage:
		return SystemMessage{}, nil
	case KindThinking:
		return Thinking{}, nil
	case KindToolCall:
		return ToolCall{Name: p.Name}, nil
	case KindToolResult:
		return ToolResult{Name: p.Name, IsError: p.IsError, CallID: p.CallID}, nil
	case KindFileRead:
		return FileRead{Path: p.Path}, nil
	case KindFileEdit:
		return FileEdit{Path: p.Path, Diff: p.Diff}, nil
	case KindFileCreate:
		return FileCreate{Path: p.Path}, nil
	case KindFileDelete:
		return FileDelete{Path: p.Path}, nil
	case KindShellCommand:
		return ShellCommand{Command: p.Command, ExitCode: p.ExitCode}, nil
	case KindWebSearch:
		return WebSearch{Query: p.Query}, nil
	case KindWebFetch:
		return WebFetch{URL: p.URL}, nil
	case KindCodeSearch:
		return CodeSearch{Query: p.Query}, nil
	case KindFileSearch:
		return FileSearch{Pattern: p.Pattern}, nil
	case KindImageGenerate:
		return ImageGenerate{Prompt: p.Prompt}, nil
	case KindTaskStart:
		return TaskStart{Title: p.Title}, nil
	case KindTaskEnd:
		return TaskEnd{Summary: p.Summary}, nil
	default:
		return nil, &MalformedSessionError{
			Reason: ReasonUnknownVariant,
			Field:  "event_type.type",
			Detail: p.Type,
		}
	}
}
