package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEventTypeVariants(t *testing.T) {
	exitCode := 0
	cases := []struct {
		name string
		raw  string
		want EventType
	}{
		{"user message", `{"type":"user_message"}`, UserMessage{}},
		{"tool call", `{"type":"tool_call","name":"read_file"}`, ToolCall{Name: "read_file"}},
		{
			"tool result",
			`{"type":"tool_result","name":"read_file","is_error":true,"call_id":"c1"}`,
			ToolResult{Name: "read_file", IsError: true, CallID: "c1"},
		},
		{"file edit", `{"type":"file_edit","path":"main.go","diff":"+x\n-y"}`, FileEdit{Path: "main.go", Diff: "+x\n-y"}},
		{
			"shell command",
			`{"type":"shell_command","command":"go test ./...","exit_code":0}`,
			ShellCommand{Command: "go test ./...", ExitCode: &exitCode},
		},
		{"task start", `{"type":"task_start","title":"explore"}`, TaskStart{Title: "explore"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeEventType(json.RawMessage(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeEventTypeUnknownVariant(t *testing.T) {
	_, err := DecodeEventType(json.RawMessage(`{"type":"teleport"}`))
	var malformed *MalformedSessionError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, ReasonUnknownVariant, malformed.Reason)
	assert.Equal(t, "teleport", malformed.Detail)
}

func TestDecodeContentBlockKnownTypes(t *testing.T) {
	block, err := DecodeContentBlock(json.RawMessage(`{"type":"code","code":"x := 1","language":"go","start_line":10}`))
	require.NoError(t, err)
	assert.Equal(t, CodeBlock{Code: "x := 1", Language: "go", StartLine: 10}, block)

	block, err = DecodeContentBlock(json.RawMessage(`{"type":"reference","uri":"doc://runbook","media_type":"text/markdown"}`))
	require.NoError(t, err)
	assert.Equal(t, ReferenceBlock{URI: "doc://runbook", MediaType: "text/markdown"}, block)
}

func TestDecodeContentBlockUnknownPreserved(t *testing.T) {
	raw := `{"type":"hologram","frames":3}`
	block, err := DecodeContentBlock(json.RawMessage(raw))
	require.NoError(t, err)

	unknown, ok := block.(UnknownBlock)
	require.True(t, ok, "unknown block types must be preserved, not rejected")
	assert.Equal(t, "hologram", unknown.Type)
	assert.JSONEq(t, raw, string(unknown.Raw))
}

func TestAttrValueUnmarshalVariants(t *testing.T) {
	var attrs Attributes
	err := json.Unmarshal([]byte(`{
		"semantic.call_id": "c9",
		"retries": 2,
		"cached": true,
		"usage": {"in": 10}
	}`), &attrs)
	require.NoError(t, err)

	assert.Equal(t, AttrString, attrs["semantic.call_id"].Kind())
	assert.Equal(t, "c9", attrs.String("semantic.call_id"))
	assert.Equal(t, AttrNumber, attrs["retries"].Kind())
	assert.Equal(t, "2", attrs["retries"].Text())
	assert.Equal(t, AttrBool, attrs["cached"].Kind())
	assert.Equal(t, AttrJSON, attrs["usage"].Kind())

	// Non-string variants never satisfy the string accessor.
	assert.Equal(t, "", attrs.String("retries"))
}

func TestMalformedSessionErrorMessage(t *testing.T) {
	err := &MalformedSessionError{Reason: ReasonMissingField, Field: "session_id"}
	assert.Equal(t, "malformed session: missing_field session_id", err.Error())

	var target *MalformedSessionError
	assert.True(t, errors.As(err, &target))
}
