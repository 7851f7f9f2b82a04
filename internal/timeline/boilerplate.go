package timeline

import (
	"strings"

	"hailview/internal/model"
)

// shellAliases are the tool names whose results carry shell-session control
// chatter rather than command output.
var shellAliases = map[string]struct{}{
	"write_stdin":     {},
	"exec_command":    {},
	"shell":           {},
	"bash":            {},
	"execute_command": {},
	"spawn_process":   {},
}

// progressPhrases are words that mark a thinking block as a progress
// ticker rather than substantive reasoning.
var progressPhrases = []string{
	"evaluating",
	"planning",
	"adjusting",
	"confirming",
	"summarizing",
}

// IsBoilerplate reports whether an event is tool-internal noise that the
// primary timeline hides by default. The rules are deliberately narrow:
// showing noise is acceptable, hiding real content is not.
func IsBoilerplate(ev model.Event) bool {
	switch t := ev.Type.(type) {
	case model.ToolCall:
		return strings.EqualFold(t.Name, "write_stdin")
	case model.ToolResult:
		if _, ok := shellAliases[strings.ToLower(t.Name)]; !ok {
			return false
		}
		return isRunningStatusLine(firstNonEmptyLine(eventText(ev)))
	case model.Thinking:
		return isProgressTicker(firstNonEmptyLine(eventText(ev)))
	default:
		return false
	}
}

// VisibleIndices returns the positions of all non-boilerplate events.
func VisibleIndices(events []model.Event) []int {
	visible := make([]int, 0, len(events))
	for i, ev := range events {
		if !IsBoilerplate(ev) {
			visible = append(visible, i)
		}
	}
	return visible
}

// isRunningStatusLine matches the known "session is running" status lines
// emitted by shell tools. Anything else is real output and must be kept.
func isRunningStatusLine(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	switch lower {
	case "", "ok", "output:":
		return true
	}
	return strings.Contains(lower, "process running with session id")
}

// isProgressTicker matches short bold markdown headings such as
// "**Planning next steps**" that some assistants emit as progress ticks.
func isProgressTicker(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) <= 4 || !strings.HasPrefix(line, "**") || !strings.HasSuffix(line, "**") {
		return false
	}
	inner := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**"))
	for _, phrase := range progressPhrases {
		if strings.Contains(inner, phrase) {
			return true
		}
	}
	return false
}

// eventText joins the text blocks of an event with newlines.
func eventText(ev model.Event) string {
	var builder strings.Builder
	for _, block := range ev.Content.Blocks {
		text, ok := block.(model.TextBlock)
		if !ok {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(text.Text)
	}
	return builder.String()
}

func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}
