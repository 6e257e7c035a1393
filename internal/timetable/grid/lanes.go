package grid

import (
	"sort"

	"gymgrid/pkg/model"
)

// active is one still-open interval during the sweep: the minute its event
// ends and the lane it occupies.
type active struct {
	end  int
	lane int
}

// PackLanes assigns each time-eligible event of a single day to a horizontal
// lane so that no two overlapping events share one. Intervals are half-open:
// an event ending at minute M does not conflict with one starting at M, and
// may reuse its lane.
//
// The sweep sorts by (start, end) ascending. The sort is stable, so
// identical intervals keep their input order and the assignment is
// deterministic. Each event evicts expired intervals from the active set and
// takes the smallest free lane (first fit). LaneCount
// on every placement is the day-wide maximum concurrency, so all events of a
// day divide column width by the same denominator.
func PackLanes(events []model.ScheduleEvent) []model.LanePlacement {
	if len(events) == 0 {
		return nil
	}

	order := make([]int, len(events))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ea, eb := events[order[a]], events[order[b]]
		if ea.StartMinute != eb.StartMinute {
			return ea.StartMinute < eb.StartMinute
		}
		return ea.EndMinute < eb.EndMinute
	})

	placements := make([]model.LanePlacement, len(events))
	var open []active
	maxConcurrent := 0

	for _, idx := range order {
		ev := events[idx]

		// Evict everything that ended on or before this start.
		kept := open[:0]
		for _, a := range open {
			if a.end > ev.StartMinute {
				kept = append(kept, a)
			}
		}
		open = kept

		lane := firstFreeLane(open)
		open = append(open, active{end: ev.EndMinute, lane: lane})
		if len(open) > maxConcurrent {
			maxConcurrent = len(open)
		}

		placements[idx] = model.LanePlacement{
			EventID: ev.ID,
			Lane:    lane,
		}
	}

	for i := range placements {
		placements[i].LaneCount = maxConcurrent
	}
	return placements
}

// firstFreeLane returns the smallest non-negative lane not used by any open
// interval.
func firstFreeLane(open []active) int {
	used := make(map[int]bool, len(open))
	for _, a := range open {
		used[a.lane] = true
	}
	for lane := 0; ; lane++ {
		if !used[lane] {
			return lane
		}
	}
}
