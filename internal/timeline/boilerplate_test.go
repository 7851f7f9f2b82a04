package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hailview/internal/model"
)

func resultWithText(name, text string) model.Event {
	return model.Event{
		Type:    model.ToolResult{Name: name},
		Content: textContent(text),
	}
}

func TestWriteStdinCallIsBoilerplate(t *testing.T) {
	assert.True(t, IsBoilerplate(model.Event{Type: model.ToolCall{Name: "write_stdin"}}))
	assert.True(t, IsBoilerplate(model.Event{Type: model.ToolCall{Name: "WRITE_STDIN"}}))
	assert.False(t, IsBoilerplate(model.Event{Type: model.ToolCall{Name: "read_file"}}))
}

func TestShellResultStatusLines(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"ok", "ok", true},
		{"output marker", "output:", true},
		{"running session", "process running with session id 12ab", true},
		{"real output", "main.go:12: undefined variable", false},
		{"multiline real output", "\n\ntotal 40\ndrwxr-xr-x", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsBoilerplate(resultWithText("exec_command", tc.text)))
		})
	}
}

func TestShellAliasCoverage(t *testing.T) {
	for _, name := range []string{"write_stdin", "exec_command", "shell", "bash", "execute_command", "spawn_process"} {
		assert.True(t, IsBoilerplate(resultWithText(name, "ok")), name)
	}
	// Non-shell tools never match the status-line rule.
	assert.False(t, IsBoilerplate(resultWithText("read_file", "")))
}

func TestShellResultWithRealOutputNeverSuppressed(t *testing.T) {
	// Conservativeness: real output survives even right after a
	// write_stdin call.
	events := []model.Event{
		{Type: model.ToolCall{Name: "write_stdin"}},
		resultWithText("shell", "PASS: 42 tests"),
	}

	visible := VisibleIndices(events)
	assert.Equal(t, []int{1}, visible)
}

func TestThinkingProgressTicker(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"planning tick", "**Planning next steps**\nmore text", true},
		{"evaluating tick", "  \n**Evaluating the output**", true},
		{"confirming tick", "**Confirming approach**", true},
		{"substantive bold", "**Root cause analysis**", false},
		{"unbolded phrase", "planning next steps", false},
		{"too short", "****", false},
		{"plain reasoning", "The bug is in the retry loop.", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := model.Event{Type: model.Thinking{}, Content: textContent(tc.text)}
			assert.Equal(t, tc.want, IsBoilerplate(ev))
		})
	}
}

func TestOtherEventsNeverBoilerplate(t *testing.T) {
	events := []model.Event{
		{Type: model.UserMessage{}, Content: textContent("")},
		{Type: model.AgentMessage{}, Content: textContent("ok")},
		{Type: model.ShellCommand{Command: "ls"}},
		{Type: model.TaskStart{}},
	}
	for _, ev := range events {
		assert.False(t, IsBoilerplate(ev))
	}
}

func TestVisibleIndicesScenario(t *testing.T) {
	events := []model.Event{
		{Type: model.ToolCall{Name: "write_stdin"}},
		resultWithText("write_stdin", ""),
		{Type: model.UserMessage{}, Content: textContent("hello")},
	}

	assert.Equal(t, []int{2}, VisibleIndices(events))
}
