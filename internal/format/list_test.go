package format

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"hailview/internal/store"
)

func sampleSummaries() []store.Summary {
	return []store.Summary{
		{
			ID:              "session-a",
			Path:            "/tmp/session-a.hail.jsonl",
			Tool:            "claude-code",
			StartedAt:       time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
			Title:           "Fix retry loop",
			Summary:         "fix the retry loop",
			EventCount:      9,
			DurationSeconds: 60,
		},
		{
			ID:              "session-b",
			Path:            "/tmp/session-b.hail.json",
			Tool:            "codex",
			StartedAt:       time.Date(2026, 2, 1, 14, 0, 0, 0, time.UTC),
			Title:           "Refactor config loader",
			Summary:         "refactor the\nconfig loader",
			EventCount:      4,
			DurationSeconds: 15,
		},
	}
}

func TestWriteSummariesPlain(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteSummaries(&buf, sampleSummaries(), true, "plain"); err != nil {
		t.Fatalf("WriteSummaries plain returned error: %v", err)
	}

	expected := strings.Join([]string{
		"started_at\tsession_id\ttool\tduration\tevents\tsummary",
		"2026-03-14T09:00:00Z\tsession-a\tclaude-code\t00:01:00\t9\tfix the retry loop",
		"2026-02-01T14:00:00Z\tsession-b\tcodex\t00:00:15\t4\trefactor the\\nconfig loader",
	}, "\n") + "\n"

	if got := buf.String(); got != expected {
		t.Fatalf("plain output mismatch:\nexpected: %q\nactual:   %q", expected, got)
	}
}

func TestWriteSummariesTable(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteSummaries(&buf, sampleSummaries(), true, "table"); err != nil {
		t.Fatalf("WriteSummaries table returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "SESSION ID") || !strings.Contains(out, "DURATION") {
		t.Fatalf("table header missing expected columns:\n%s", out)
	}
	if !strings.Contains(out, "session-a") || !strings.Contains(out, "00:01:00") {
		t.Fatalf("table body missing expected row content:\n%s", out)
	}
}

func TestWriteSummariesInvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummaries(&buf, sampleSummaries(), true, "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWriteSummariesJSONL(t *testing.T) {
	var buf bytes.Buffer
	items := sampleSummaries()

	if err := WriteSummaries(&buf, items, false, "jsonl"); err != nil {
		t.Fatalf("WriteSummaries jsonl returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(items) {
		t.Fatalf("expected %d lines, got %d", len(items), len(lines))
	}
	if !strings.Contains(lines[0], `"session_id":"session-a"`) || !strings.Contains(lines[0], `"duration_seconds":60`) {
		t.Fatalf("first jsonl line unexpected: %s", lines[0])
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00:00"},
		{-5, "00:00:00"},
		{59, "00:00:59"},
		{61, "00:01:01"},
		{3661, "01:01:01"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.expected {
			t.Fatalf("FormatDuration(%d) = %q, expected %q", tc.seconds, got, tc.expected)
		}
	}
}
