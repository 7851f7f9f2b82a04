package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hailview/internal/model"
)

func textEvent(text string) model.Event {
	return model.Event{
		Type:    model.AgentMessage{},
		Content: model.Content{Blocks: []model.ContentBlock{model.TextBlock{Text: text}}},
	}
}

func TestSearchRoundTrip(t *testing.T) {
	// Indexing then querying an event's literal text always finds it.
	events := []model.Event{
		textEvent("the retry loop never resets its counter"),
		textEvent("unrelated message"),
	}

	index := BuildIndex(events)
	matches := index.Matches("the retry loop never resets its counter", nil)
	assert.Equal(t, []int{0}, matches)
}

func TestSearchCaseInsensitive(t *testing.T) {
	index := BuildIndex([]model.Event{textEvent("Fix the Bug")})
	assert.Equal(t, []int{0}, index.Matches("FIX THE", nil))
}

func TestSearchCoversTypedPayloadAndAttributes(t *testing.T) {
	events := []model.Event{
		{Type: model.ShellCommand{Command: "go test ./internal/..."}},
		{Type: model.FileEdit{Path: "cmd/hailview/main.go"}},
		{
			Type:       model.ToolCall{Name: "web_fetch"},
			Attributes: model.Attributes{"semantic.call_id": model.StringValue("c-77")},
			TaskID:     "task-9",
		},
	}

	index := BuildIndex(events)
	assert.Equal(t, []int{0}, index.Matches("./internal/", nil))
	assert.Equal(t, []int{1}, index.Matches("hailview/main.go", nil))
	assert.Equal(t, []int{2}, index.Matches("c-77", nil))
	assert.Equal(t, []int{2}, index.Matches("task-9", nil))
}

func TestSearchCoversBlockVariants(t *testing.T) {
	events := []model.Event{
		{Type: model.AgentMessage{}, Content: model.Content{Blocks: []model.ContentBlock{
			model.CodeBlock{Code: "func Retry()", Language: "go"},
			model.JSONBlock{Data: json.RawMessage(`{"attempts":3}`)},
			model.ReferenceBlock{URI: "doc://runbook", MediaType: "text/markdown"},
		}}},
	}

	index := BuildIndex(events)
	assert.Len(t, index.Matches("func retry()", nil), 1)
	assert.Len(t, index.Matches(`"attempts"`, nil), 1)
	assert.Len(t, index.Matches("doc://runbook", nil), 1)
}

func TestSearchEmptyQueryMatchesNothing(t *testing.T) {
	index := BuildIndex([]model.Event{textEvent("anything")})
	assert.Empty(t, index.Matches("", nil))
}

func TestSearchRespectsVisibleSubset(t *testing.T) {
	events := []model.Event{textEvent("needle"), textEvent("needle")}
	index := BuildIndex(events)
	assert.Equal(t, []int{1}, index.Matches("needle", []int{1}))
}

func TestCursorWrapsForward(t *testing.T) {
	c := NewCursor()

	pos, ok := c.Next(3)
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	c.Next(3)
	c.Next(3)
	pos, _ = c.Next(3)
	assert.Equal(t, 0, pos, "next wraps circularly")
}

func TestCursorWrapsBackward(t *testing.T) {
	c := NewCursor()

	pos, ok := c.Prev(3)
	require.True(t, ok)
	assert.Equal(t, 2, pos, "prev from unset starts at the last match")

	pos, _ = c.Prev(3)
	assert.Equal(t, 1, pos)
}

func TestCursorResetsWhenResultSetShrinks(t *testing.T) {
	c := NewCursor()
	for i := 0; i < 5; i++ {
		c.Next(5)
	}
	require.Equal(t, 4, c.Pos())

	// The result set shrank to 2; the stale position resets rather than
	// erroring.
	pos, ok := c.Next(2)
	require.True(t, ok)
	assert.Equal(t, 0, pos)
}

func TestCursorNoMatches(t *testing.T) {
	c := NewCursor()
	_, ok := c.Next(0)
	assert.False(t, ok)
	_, ok = c.Prev(0)
	assert.False(t, ok)
	assert.Equal(t, -1, c.Pos())
}
