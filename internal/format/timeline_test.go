package format

import (
	"strings"
	"testing"
	"time"

	"hailview/internal/model"
	"hailview/internal/timeline"
)

func textEvent(ts time.Time, text string) model.Event {
	return model.Event{
		Timestamp: ts,
		Type:      model.UserMessage{},
		Content:   model.Content{Blocks: []model.ContentBlock{model.TextBlock{Text: text}}},
	}
}

func TestRenderTimelinePairingNotes(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	events := []model.Event{
		textEvent(ts, "please read the file"),
		{Timestamp: ts, Type: model.ToolCall{Name: "read_file"}},
		{Timestamp: ts, Type: model.ToolResult{Name: "read_file"}},
		{Timestamp: ts, Type: model.ToolCall{Name: "web_fetch"}},
		{Timestamp: ts, Type: model.ToolCall{Name: "grep"}},
		{Timestamp: ts, Type: model.ToolResult{Name: "grep", IsError: true}},
	}
	idx := []int{0, 1, 2, 3, 4, 5}
	lanes := timeline.AssignLanes(events, idx)
	pairs := map[int]int{1: 2, 4: 5}

	lines := RenderTimeline(events, idx, lanes, pairs, TimelineOptions{Width: 100})
	if len(lines) != len(idx) {
		t.Fatalf("expected %d lines, got %d", len(idx), len(lines))
	}

	if !strings.Contains(lines[0], "user") || !strings.Contains(lines[0], "please read the file") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "tool:read_file") || !strings.Contains(lines[1], "→ ok") {
		t.Fatalf("paired call missing ok note: %q", lines[1])
	}
	if !strings.Contains(lines[3], "→ (no result)") {
		t.Fatalf("unpaired call missing note: %q", lines[3])
	}
	if !strings.Contains(lines[4], "→ error") {
		t.Fatalf("error result missing note: %q", lines[4])
	}
	if strings.Contains(lines[2], "→") {
		t.Fatalf("results never carry a pairing note: %q", lines[2])
	}
}

func TestRenderTimelineForkAndMerge(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	events := []model.Event{
		textEvent(ts, "start"),
		{Timestamp: ts, Type: model.TaskStart{Title: "verify"}, TaskID: "t1"},
		{Timestamp: ts, Type: model.ShellCommand{Command: "go test"}, TaskID: "t1"},
		{Timestamp: ts, Type: model.TaskEnd{}, TaskID: "t1"},
		textEvent(ts, "done"),
	}
	idx := []int{0, 1, 2, 3, 4}
	lanes := timeline.AssignLanes(events, idx)

	lines := RenderTimeline(events, idx, lanes, nil, TimelineOptions{Width: 100})

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "├─╮") {
		t.Fatalf("missing fork connector:\n%s", joined)
	}
	if !strings.Contains(joined, "├─╯") {
		t.Fatalf("missing merge connector:\n%s", joined)
	}

	// The fork connector follows the event before the task, the merge
	// connector precedes the event after it.
	if !strings.HasPrefix(lines[1], "├─╮") {
		t.Fatalf("fork connector misplaced: %q", lines[1])
	}
	if !strings.Contains(lines[2], "│ ") {
		t.Fatalf("task event missing lane rail: %q", lines[2])
	}
	if !strings.HasPrefix(lines[len(lines)-2], "├─╯") {
		t.Fatalf("merge connector misplaced: %q", lines[len(lines)-2])
	}
}

func TestRenderTimelineShowBody(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	events := []model.Event{textEvent(ts, "line one\nline two")}
	lanes := timeline.AssignLanes(events, nil)

	lines := RenderTimeline(events, []int{0}, lanes, nil, TimelineOptions{Width: 100, ShowBody: true})
	if len(lines) != 3 {
		t.Fatalf("expected header plus two body lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[1], "line one") || !strings.Contains(lines[2], "line two") {
		t.Fatalf("body lines missing: %v", lines)
	}
}
