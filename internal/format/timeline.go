package format

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"hailview/internal/model"
	"hailview/internal/timeline"
)

// TimelineOptions controls timeline rendering.
type TimelineOptions struct {
	Width    int
	Color    bool
	ShowBody bool
}

// RenderTimeline renders the filtered subset idx as one line per event,
// indented by lane with fork/merge connectors. lanes must be parallel to
// idx; pairs maps absolute call positions to their result positions.
func RenderTimeline(events []model.Event, idx []int, lanes []timeline.Lane, pairs map[int]int, opts TimelineOptions) []string {
	if opts.Width <= 0 {
		opts.Width = 80
	}

	lines := make([]string, 0, len(idx)*2)
	for i, pos := range idx {
		ev := events[pos]
		lane := lanes[i]
		rail := strings.Repeat("│ ", lane.Lane)

		if lane.Merge {
			lines = append(lines, Colorize(opts.Color, AnsiLane, rail+"├─╯"))
		}

		lines = append(lines, renderTimelineLine(events, ev, pos, rail, pairs, opts))

		if opts.ShowBody {
			for _, body := range RenderEventLines(ev, opts.Width-len(rail)-4) {
				lines = append(lines, rail+"  "+Colorize(opts.Color, AnsiDim, body))
			}
		}

		if lane.Fork {
			lines = append(lines, Colorize(opts.Color, AnsiLane, rail+"├─╮"))
		}
	}
	return lines
}

func renderTimelineLine(events []model.Event, ev model.Event, pos int, rail string, pairs map[int]int, opts TimelineOptions) string {
	ts := "--:--:--"
	if !ev.Timestamp.IsZero() {
		ts = ev.Timestamp.Format("15:04:05")
	}

	label := EventLabel(ev)
	head := fmt.Sprintf("%s● %s %s", rail, ts, label)
	plainWidth := runewidth.StringWidth(head)

	if opts.Color {
		head = fmt.Sprintf("%s● %s %s",
			Colorize(true, AnsiLane, rail),
			Colorize(true, AnsiTimestamp, ts),
			Colorize(true, KindColor(ev.Type.Kind()), label),
		)
	}

	if note := pairingNote(events, ev, pos, pairs); note != "" {
		head += " " + Colorize(opts.Color, AnsiDim, note)
		plainWidth += 1 + runewidth.StringWidth(note)
	}

	if snippet := firstTextLine(ev); snippet != "" {
		remaining := opts.Width - plainWidth - 3
		if remaining > 8 {
			head += "  " + Colorize(opts.Color, AnsiDim, runewidth.Truncate(snippet, remaining, "…"))
		}
	}

	return head
}

// pairingNote annotates tool calls with their correlated outcome. An
// unpaired call is a valid state and renders as call-only.
func pairingNote(events []model.Event, ev model.Event, pos int, pairs map[int]int) string {
	if _, ok := ev.Type.(model.ToolCall); !ok {
		return ""
	}
	resultPos, ok := pairs[pos]
	if !ok {
		return "→ (no result)"
	}
	if result, ok := events[resultPos].Type.(model.ToolResult); ok && result.IsError {
		return "→ error"
	}
	return "→ ok"
}

func firstTextLine(ev model.Event) string {
	text := ev.Content.FirstText()
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
