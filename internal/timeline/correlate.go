// Package timeline derives per-render artifacts from an immutable event
// list: call/result pairing, boilerplate visibility, and lane assignment.
// Every function here is pure; callers recompute whenever the underlying
// event subset changes.
package timeline

import "hailview/internal/model"

// correlationWindow bounds the positional fallback scan. Tool streams from
// different assistants interleave, and an unbounded scan would risk pairing
// a call with an unrelated, much-later result.
const correlationWindow = 7

// correlationID resolves the explicit correlation id for an event:
// semantic.call_id first, then a ToolResult's own call_id, then the legacy
// call_id attribute. Returns "" when none is present.
func correlationID(ev model.Event) string {
	if id := ev.Attributes.String("semantic.call_id"); id != "" {
		return id
	}
	if result, ok := ev.Type.(model.ToolResult); ok && result.CallID != "" {
		return result.CallID
	}
	return ev.Attributes.String("call_id")
}

// PairToolCallResults associates each ToolCall in the subset idx (positions
// into events; nil means all) with the ToolResult that answers it. The
// returned map is keyed and valued by absolute event positions. Events with
// no resolvable pairing are simply absent; pairing never fails.
func PairToolCallResults(events []model.Event, idx []int) map[int]int {
	if idx == nil {
		idx = allIndices(len(events))
	}

	// Last writer wins on duplicate ids: a retried tool result supersedes
	// its predecessor.
	resultsByID := make(map[string]int)
	for _, pos := range idx {
		if _, ok := events[pos].Type.(model.ToolResult); !ok {
			continue
		}
		if id := correlationID(events[pos]); id != "" {
			resultsByID[id] = pos
		}
	}

	pairs := make(map[int]int)
	for i, pos := range idx {
		call, ok := events[pos].Type.(model.ToolCall)
		if !ok {
			continue
		}

		id := correlationID(events[pos])
		if id == "" {
			id = events[pos].ID
		}
		if resultPos, ok := resultsByID[id]; ok && resultPos != pos {
			pairs[pos] = resultPos
			continue
		}

		// Positional fallback: scan a bounded window, stopping at the next
		// ToolCall so a result is never claimed across an intervening call.
		for j := i + 1; j <= i+correlationWindow && j < len(idx); j++ {
			next := events[idx[j]]
			if _, isCall := next.Type.(model.ToolCall); isCall {
				break
			}
			if result, isResult := next.Type.(model.ToolResult); isResult && result.Name == call.Name {
				pairs[pos] = idx[j]
				break
			}
		}
	}

	return pairs
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
