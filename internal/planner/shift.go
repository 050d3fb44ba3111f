package planner

import (
	"sort"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timeutil"
)

// Recalculate restores a plan's derived fields from its block list: blocks are
// sorted by planned start, indexes reassigned 0..n-1, study and break minute
// totals summed, and the plan-level start/end taken from the first and last
// block. It is the sole writer of these fields. An empty block list leaves the
// plan-level times untouched.
func Recalculate(plan *models.DayPlan) {
	sort.SliceStable(plan.Blocks, func(i, j int) bool {
		return timeutil.ParseClock(plan.Blocks[i].PlannedStartTime) < timeutil.ParseClock(plan.Blocks[j].PlannedStartTime)
	})

	study, brk := 0, 0
	for i := range plan.Blocks {
		plan.Blocks[i].Index = i
		if plan.Blocks[i].Type == models.BlockTypeBreak {
			brk += plan.Blocks[i].PlannedDurationMinutes
		} else {
			study += plan.Blocks[i].PlannedDurationMinutes
		}
	}
	plan.TotalStudyMinutesPlanned = study
	plan.TotalBreakMinutes = brk

	if len(plan.Blocks) > 0 {
		plan.StartTimePlanned = plan.Blocks[0].PlannedStartTime
		plan.EstimatedEndTime = plan.Blocks[len(plan.Blocks)-1].PlannedEndTime
	}
}

// shiftWithOverflow slides every non-terminal block at or after index from by
// delta minutes, skipping the block with excludeID. Blocks whose new start
// lands at or past midnight are removed from the plan, re-dated to the
// following day with their clock times normalized, and returned for the
// caller to merge into that day's plan. Blocks before from, and done/skipped
// blocks, are never moved.
func shiftWithOverflow(plan *models.DayPlan, from, delta int, excludeID string) ([]models.Block, error) {
	nextDate, err := timeutil.AddDays(plan.Date, 1)
	if err != nil {
		return nil, err
	}

	kept := plan.Blocks[:0:0]
	var overflow []models.Block
	for i, b := range plan.Blocks {
		if i < from || b.Status.Terminal() || (excludeID != "" && b.ID == excludeID) {
			kept = append(kept, b)
			continue
		}

		newStart := timeutil.ParseClock(b.PlannedStartTime) + delta
		newEnd := timeutil.ParseClock(b.PlannedEndTime) + delta
		b.PlannedStartTime = timeutil.FormatClock(newStart)
		b.PlannedEndTime = timeutil.FormatClock(newEnd)

		if newStart >= constants.MinutesPerDay {
			b.Date = nextDate
			overflow = append(overflow, b)
			continue
		}
		kept = append(kept, b)
	}
	plan.Blocks = kept
	return overflow, nil
}

// stackBefore re-times the backlog chain so its final block ends exactly at
// anchorMin, walking the list in reverse and butting each block's end against
// the start of the one after it. Dates are rewritten to the target date.
func stackBefore(backlog []models.Block, anchorMin int, date string) {
	cursor := anchorMin
	for i := len(backlog) - 1; i >= 0; i-- {
		b := &backlog[i]
		b.Date = date
		b.PlannedEndTime = timeutil.FormatClock(cursor)
		b.PlannedStartTime = timeutil.FormatClock(cursor - b.PlannedDurationMinutes)
		cursor -= b.PlannedDurationMinutes
	}
}
