package model

import "fmt"

// MalformedReason classifies why a session failed to load.
type MalformedReason string

const (
	ReasonMissingField     MalformedReason = "missing_field"
	ReasonUnknownVariant   MalformedReason = "unknown_variant"
	ReasonInvalidTimestamp MalformedReason = "invalid_timestamp"
)

// MalformedSessionError is fatal to a session load: no partial session is
// returned alongside it. Line is 1-based when the source was JSONL, 0 for a
// single-document source.
type MalformedSessionError struct {
	Reason MalformedReason
	Field  string
	Detail string
	Line   int
}

func (e *MalformedSessionError) Error() string {
	msg := fmt.Sprintf("malformed session: %s %s", e.Reason, e.Field)
	if e.Detail != "" {
		msg += fmt.Sprintf(" (%s)", e.Detail)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	return msg
}
