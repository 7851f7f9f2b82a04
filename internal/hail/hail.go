// Package hail loads canonical HAIL session streams into model.Session
// values. Two source shapes are accepted: a JSONL stream (one session
// record followed by event records) and a single JSON document with an
// inline events array. Validation is fail-fast: a malformed session yields
// an error and no partial result.
package hail

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"hailview/internal/model"
)

// Scanner capacity allows large inline payloads such as file contents.
const maxRecordSize = 8 * 1024 * 1024

type agentPayload struct {
	Provider    string `json:"provider"`
	Model       string `json:"model"`
	Tool        string `json:"tool"`
	ToolVersion string `json:"tool_version"`
}

type contextPayload struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Tags              []string `json:"tags"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
	RelatedSessionIDs []string `json:"related_session_ids"`
}

type statsPayload struct {
	EventCount      int `json:"event_count"`
	MessageCount    int `json:"message_count"`
	ToolCallCount   int `json:"tool_call_count"`
	TaskCount       int `json:"task_count"`
	InputTokens     int `json:"input_tokens"`
	OutputTokens    int `json:"output_tokens"`
	DurationSeconds int `json:"duration_seconds"`
	FilesChanged    int `json:"files_changed"`
	LinesAdded      int `json:"lines_added"`
	LinesRemoved    int `json:"lines_removed"`
}

type eventPayload struct {
	EventID    string                     `json:"event_id"`
	Timestamp  string                     `json:"timestamp"`
	EventType  json.RawMessage            `json:"event_type"`
	TaskID     string                     `json:"task_id"`
	Content    contentPayload             `json:"content"`
	DurationMS int64                      `json:"duration_ms"`
	Attributes map[string]model.AttrValue `json:"attributes"`
}

type contentPayload struct {
	Blocks []json.RawMessage `json:"blocks"`
}

// sessionRecord doubles as the JSONL session record and the single-document
// envelope; only the document form carries Events.
type sessionRecord struct {
	Type      string            `json:"type"`
	SessionID string            `json:"session_id"`
	Agent     json.RawMessage   `json:"agent"`
	Context   *contextPayload   `json:"context"`
	Stats     *statsPayload     `json:"stats"`
	Events    []json.RawMessage `json:"events"`
}

type eventRecord struct {
	Type string `json:"type"`
	eventPayload
}

// LoadFile reads one session from path.
func LoadFile(path string) (*model.Session, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open session file: %w", err)
	}
	defer file.Close()
	return Load(file)
}

// Load reads one session from r, auto-detecting JSONL versus a single
// JSON document.
func Load(r io.Reader) (*model.Session, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	if isSingleDocument(data) {
		return loadDocument(data)
	}
	return loadStream(data)
}

// isSingleDocument reports whether data holds exactly one JSON value.
func isSingleDocument(data []byte) bool {
	dec := json.NewDecoder(bytes.NewReader(data))
	var first json.RawMessage
	if err := dec.Decode(&first); err != nil {
		return false
	}
	var second json.RawMessage
	return dec.Decode(&second) == io.EOF
}

func loadDocument(data []byte) (*model.Session, error) {
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session document: %w", err)
	}
	if rec.Events == nil {
		return nil, &model.MalformedSessionError{Reason: model.ReasonMissingField, Field: "events"}
	}

	session, err := buildSession(rec)
	if err != nil {
		return nil, err
	}

	for _, raw := range rec.Events {
		var p eventPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("unmarshal event: %w", err)
		}
		event, err := buildEvent(p, 0)
		if err != nil {
			return nil, err
		}
		session.Events = append(session.Events, event)
	}

	return session, nil
}

func loadStream(data []byte) (*model.Session, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	buf := make([]byte, 1024)
	scanner.Buffer(buf, maxRecordSize)

	var session *model.Session
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var probe struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return nil, fmt.Errorf("unmarshal record at line %d: %w", line, err)
		}

		switch probe.Type {
		case "session":
			var rec sessionRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, fmt.Errorf("unmarshal session record: %w", err)
			}
			built, err := buildSession(rec)
			if err != nil {
				return nil, err
			}
			session = built
		case "event":
			if session == nil {
				return nil, &model.MalformedSessionError{
					Reason: model.ReasonMissingField,
					Field:  "session",
					Detail: "event record before session record",
					Line:   line,
				}
			}
			var rec eventRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, fmt.Errorf("unmarshal event record: %w", err)
			}
			event, err := buildEvent(rec.eventPayload, line)
			if err != nil {
				return nil, err
			}
			session.Events = append(session.Events, event)
		default:
			return nil, &model.MalformedSessionError{
				Reason: model.ReasonUnknownVariant,
				Field:  "type",
				Detail: probe.Type,
				Line:   line,
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}

	if session == nil {
		return nil, &model.MalformedSessionError{Reason: model.ReasonMissingField, Field: "session_id"}
	}
	if session.Events == nil {
		session.Events = []model.Event{}
	}
	return session, nil
}

func buildSession(rec sessionRecord) (*model.Session, error) {
	if rec.SessionID == "" {
		return nil, &model.MalformedSessionError{Reason: model.ReasonMissingField, Field: "session_id"}
	}
	if len(rec.Agent) == 0 || bytes.Equal(rec.Agent, []byte("null")) {
		return nil, &model.MalformedSessionError{Reason: model.ReasonMissingField, Field: "agent"}
	}

	var agent agentPayload
	if err := json.Unmarshal(rec.Agent, &agent); err != nil {
		return nil, fmt.Errorf("unmarshal agent: %w", err)
	}

	session := &model.Session{
		ID: rec.SessionID,
		Agent: model.Agent{
			Provider:    agent.Provider,
			Model:       agent.Model,
			Tool:        agent.Tool,
			ToolVersion: agent.ToolVersion,
		},
	}

	if rec.Context != nil {
		created, err := parseOptionalTimestamp(rec.Context.CreatedAt, "context.created_at")
		if err != nil {
			return nil, err
		}
		updated, err := parseOptionalTimestamp(rec.Context.UpdatedAt, "context.updated_at")
		if err != nil {
			return nil, err
		}
		session.Context = model.SessionContext{
			Title:             rec.Context.Title,
			Description:       rec.Context.Description,
			Tags:              rec.Context.Tags,
			CreatedAt:         created,
			UpdatedAt:         updated,
			RelatedSessionIDs: rec.Context.RelatedSessionIDs,
		}
	}

	if rec.Stats != nil {
		session.Stats = model.Stats{
			EventCount:      rec.Stats.EventCount,
			MessageCount:    rec.Stats.MessageCount,
			ToolCallCount:   rec.Stats.ToolCallCount,
			TaskCount:       rec.Stats.TaskCount,
			InputTokens:     rec.Stats.InputTokens,
			OutputTokens:    rec.Stats.OutputTokens,
			DurationSeconds: rec.Stats.DurationSeconds,
			FilesChanged:    rec.Stats.FilesChanged,
			LinesAdded:      rec.Stats.LinesAdded,
			LinesRemoved:    rec.Stats.LinesRemoved,
		}
	}

	return session, nil
}

func buildEvent(p eventPayload, line int) (model.Event, error) {
	if len(p.EventType) == 0 {
		return model.Event{}, &model.MalformedSessionError{
			Reason: model.ReasonMissingField,
			Field:  "event_type",
			Line:   line,
		}
	}

	eventType, err := model.DecodeEventType(p.EventType)
	if err != nil {
		if malformed, ok := err.(*model.MalformedSessionError); ok && malformed.Line == 0 {
			malformed.Line = line
		}
		return model.Event{}, err
	}

	ts, err := parseOptionalTimestamp(p.Timestamp, "timestamp")
	if err != nil {
		if malformed, ok := err.(*model.MalformedSessionError); ok {
			malformed.Line = line
		}
		return model.Event{}, err
	}

	blocks := make([]model.ContentBlock, 0, len(p.Content.Blocks))
	for _, raw := range p.Content.Blocks {
		block, err := model.DecodeContentBlock(raw)
		if err != nil {
			return model.Event{}, fmt.Errorf("unmarshal content block: %w", err)
		}
		blocks = append(blocks, block)
	}

	id := p.EventID
	if id == "" {
		// Correlation falls back to the event id, so every event needs one.
		id = uuid.NewString()
	}

	return model.Event{
		ID:         id,
		Timestamp:  ts,
		Type:       eventType,
		TaskID:     p.TaskID,
		Content:    model.Content{Blocks: blocks},
		DurationMS: p.DurationMS,
		Attributes: model.Attributes(p.Attributes),
	}, nil
}

// parseOptionalTimestamp parses an RFC3339 instant, tolerating nanosecond
// precision. Empty input yields the zero time.
func parseOptionalTimestamp(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &model.MalformedSessionError{
			Reason: model.ReasonInvalidTimestamp,
			Field:  field,
			Detail: value,
		}
	}
	return ts, nil
}
