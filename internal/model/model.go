// Package model provides the canonical session and event types shared by
// every engine stage. A Session is produced once by the hail loader and is
// immutable afterwards; all derived artifacts reference events by their
// position in Session.Events.
package model

import "time"

// Agent identifies the assistant that produced a session.
type Agent struct {
	Provider    string
	Model       string
	Tool        string
	ToolVersion string
}

// SessionContext holds descriptive metadata about a session.
type SessionContext struct {
	Title             string
	Description       string
	Tags              []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	RelatedSessionIDs []string
}

// Stats holds aggregate counters for a session. Sessions may arrive with
// stats already populated; DeriveStats recomputes them from the event list.
type Stats struct {
	EventCount      int
	MessageCount    int
	ToolCallCount   int
	TaskCount       int
	InputTokens     int
	OutputTokens    int
	DurationSeconds int
	FilesChanged    int
	LinesAdded      int
	LinesRemoved    int
}

// Session is one recorded interaction. Event order is chronological and
// load-bearing: correlation maps, filter subsets, and lane assignments all
// reference positions in Events.
type Session struct {
	ID      string
	Agent   Agent
	Context SessionContext
	Stats   Stats
	Events  []Event
}

// Content wraps the ordered block sequence of an event. Block order reflects
// emission order and is preserved through every transformation.
type Content struct {
	Blocks []ContentBlock
}

// Event is one timeline entry.
type Event struct {
	ID         string
	Timestamp  time.Time
	Type       EventType
	TaskID     string
	Content    Content
	DurationMS int64
	Attributes Attributes
}
