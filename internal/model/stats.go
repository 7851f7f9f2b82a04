package model

import "strings"

// DeriveStats recomputes the aggregate counters from an event list. It is
// used when a session arrives without precomputed stats, and by the info
// command to cross-check what the producer reported.
func DeriveStats(events []Event) Stats {
	stats := Stats{EventCount: len(events)}

	files := map[string]struct{}{}
	tasks := map[string]struct{}{}

	var first, last int = -1, -1
	for i, ev := range events {
		if !ev.Timestamp.IsZero() {
			if first < 0 {
				first = i
			}
			last = i
		}

		switch t := ev.Type.(type) {
		case UserMessage, AgentMessage:
			stats.MessageCount++
		case ToolCall:
			stats.ToolCallCount++
		case TaskStart:
			if ev.TaskID != "" {
				tasks[ev.TaskID] = struct{}{}
			} else {
				stats.TaskCount++
			}
		case FileRead:
			files[t.Path] = struct{}{}
		case FileCreate:
			files[t.Path] = struct{}{}
		case FileDelete:
			files[t.Path] = struct{}{}
		case FileEdit:
			files[t.Path] = struct{}{}
			added, removed := countDiffLines(t.Diff)
			stats.LinesAdded += added
			stats.LinesRemoved += removed
		}
	}

	stats.TaskCount += len(tasks)
	stats.FilesChanged = len(files)

	if first >= 0 && last >= first {
		d := events[last].Timestamp.Sub(events[first].Timestamp)
		if d > 0 {
			stats.DurationSeconds = int(d.Seconds())
		}
	}

	return stats
}

// countDiffLines tallies added and removed lines in a unified diff,
// skipping the +++/--- file headers.
func countDiffLines(diff string) (added, removed int) {
	if diff == "" {
		return 0, 0
	}
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}
	return added, removed
}
