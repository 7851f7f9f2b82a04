package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"hailview/internal/model"
)

// EventLabel returns the short header label for an event.
func EventLabel(ev model.Event) string {
	switch t := ev.Type.(type) {
	case model.UserMessage:
		return "user"
	case model.AgentMessage:
		return "agent"
	case model.SystemMessage:
		return "system"
	case model.Thinking:
		return "thinking"
	case model.ToolCall:
		return "tool:" + t.Name
	case model.ToolResult:
		if t.IsError {
			return "result:" + t.Name + "!"
		}
		return "result:" + t.Name
	case model.FileRead:
		return "read " + t.Path
	case model.FileEdit:
		return "edit " + t.Path
	case model.FileCreate:
		return "create " + t.Path
	case model.FileDelete:
		return "delete " + t.Path
	case model.ShellCommand:
		return "$ " + t.Command
	case model.WebSearch:
		return "web-search " + t.Query
	case model.WebFetch:
		return "fetch " + t.URL
	case model.CodeSearch:
		return "grep " + t.Query
	case model.FileSearch:
		return "glob " + t.Pattern
	case model.ImageGenerate:
		return "image " + t.Prompt
	case model.TaskStart:
		if t.Title != "" {
			return "task: " + t.Title
		}
		return "task start"
	case model.TaskEnd:
		return "task end"
	default:
		return string(ev.Type.Kind())
	}
}

// RenderEventLines returns the formatted body lines for an event.
func RenderEventLines(ev model.Event, wrapWidth int) []string {
	parts := make([]string, 0, len(ev.Content.Blocks))
	for _, block := range ev.Content.Blocks {
		switch b := block.(type) {
		case model.TextBlock:
			parts = append(parts, wrapBody(strings.TrimSpace(b.Text), wrapWidth))
		case model.CodeBlock:
			parts = append(parts, "```"+b.Language, strings.TrimRight(b.Code, "\n"), "```")
		case model.JSONBlock:
			parts = append(parts, formatJSON(string(b.Data)))
		case model.FileBlock:
			if b.Content != "" {
				parts = append(parts, fmt.Sprintf("File %s:", b.Path), b.Content)
			} else {
				parts = append(parts, fmt.Sprintf("File %s", b.Path))
			}
		case model.ImageBlock:
			if b.Alt != "" {
				parts = append(parts, fmt.Sprintf("[image] %s (%s)", b.URL, b.Alt))
			} else {
				parts = append(parts, fmt.Sprintf("[image] %s", b.URL))
			}
		case model.AudioBlock:
			parts = append(parts, fmt.Sprintf("[audio] %s", b.URL))
		case model.VideoBlock:
			parts = append(parts, fmt.Sprintf("[video] %s", b.URL))
		case model.ReferenceBlock:
			parts = append(parts, fmt.Sprintf("[%s] %s", b.MediaType, b.URI))
		case model.UnknownBlock:
			parts = append(parts, fmt.Sprintf("[%s] %s", b.Type, string(b.Raw)))
		}
	}

	body := strings.Join(parts, "\n")
	if body == "" {
		return nil
	}
	return strings.Split(body, "\n")
}

func wrapBody(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)

	return strings.Join(lines, "\n")
}

func formatJSON(raw string) string {
	if raw == "" {
		return raw
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err == nil {
		return buf.String()
	}
	return raw
}
