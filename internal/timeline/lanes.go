package timeline

import "hailview/internal/model"

// Lane is the rendering rail computed for one event. Lane 0 is the main
// timeline; each open sub-agent task occupies its own rail. Fork marks the
// event immediately before entry into a new lane, Merge the event
// immediately after return to the parent.
type Lane struct {
	Lane  int
	Fork  bool
	Merge bool
}

// AssignLanes computes a lane per event in the subset idx (positions into
// events; nil means all), in a single left-to-right pass. A TaskStart opens
// the lowest unused lane for its task_id; the matching TaskEnd retires it,
// after which the integer may be reused. Lanes of concurrently open tasks
// never collide.
func AssignLanes(events []model.Event, idx []int) []Lane {
	if idx == nil {
		idx = allIndices(len(events))
	}

	lanes := make([]Lane, len(idx))
	open := make(map[string]int)
	inUse := map[int]bool{0: true}
	pendingMerge := false

	for i, pos := range idx {
		ev := events[pos]

		if pendingMerge {
			lanes[i].Merge = true
			pendingMerge = false
		}

		lane := 0
		if ev.TaskID != "" {
			if l, ok := open[ev.TaskID]; ok {
				lane = l
			} else if _, isStart := ev.Type.(model.TaskStart); isStart {
				lane = lowestFreeLane(inUse)
				open[ev.TaskID] = lane
				inUse[lane] = true
				if i > 0 {
					lanes[i-1].Fork = true
				}
			}
		}
		lanes[i].Lane = lane

		if _, isEnd := ev.Type.(model.TaskEnd); isEnd && ev.TaskID != "" {
			if l, ok := open[ev.TaskID]; ok {
				delete(open, ev.TaskID)
				delete(inUse, l)
				pendingMerge = true
			}
		}
	}

	return lanes
}

func lowestFreeLane(inUse map[int]bool) int {
	for lane := 1; ; lane++ {
		if !inUse[lane] {
			return lane
		}
	}
}
