package planner

import (
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timeutil"
)

// Reflection carries the post-completion fields supplied when a block is
// finished.
type Reflection struct {
	CompletionStatus    models.CompletionStatus
	ActualPagesCovered  []int
	CarryForwardPages   []int
	ActualNotes         string
	Interruptions       []models.Interruption
	GeneratedLogIDs     []string
	GeneratedTimeLogIDs []string
}

// FinishBlock closes the target block at the effective end time (the override
// when given, the current clock otherwise) and marks it done with the
// reflection attached. Actual duration is the sum of segment durations for
// study blocks, so paused time never counts; break blocks use the plain
// wall-clock delta. If the block over- or under-ran its planned end, every
// subsequent non-terminal block is shifted by the overrun, and blocks pushed
// past midnight migrate to the front of the next day's plan.
func (s *Service) FinishBlock(date, blockID string, reflection Reflection, endTimeOverride string) (*models.DayPlan, error) {
	plan, err := s.load(date)
	if err != nil || plan == nil {
		return nil, err
	}
	target := plan.FindBlock(blockID)
	if target == nil {
		return nil, nil
	}

	end := endTimeOverride
	if end == "" {
		end = s.clock()
	}

	closeOpenSegment(target, end)
	closeOpenInterruption(target, end)
	target.Interruptions = append(target.Interruptions, reflection.Interruptions...)

	if target.Type == models.BlockTypeBreak {
		start := target.ActualStartTime
		if start == "" {
			start = target.PlannedStartTime
		}
		target.ActualDurationMinutes = clockDelta(start, end)
	} else {
		total := 0
		for _, seg := range target.Segments {
			if seg.End == "" {
				continue
			}
			total += clockDelta(seg.Start, seg.End)
		}
		target.ActualDurationMinutes = total
	}

	target.ActualEndTime = end
	target.Status = models.BlockDone
	target.CompletionStatus = reflection.CompletionStatus
	target.ActualPagesCovered = reflection.ActualPagesCovered
	target.CarryForwardPages = reflection.CarryForwardPages
	if reflection.ActualNotes != "" {
		target.ActualNotes = reflection.ActualNotes
	}
	target.GeneratedLogIDs = append(target.GeneratedLogIDs, reflection.GeneratedLogIDs...)
	target.GeneratedTimeLogIDs = append(target.GeneratedTimeLogIDs, reflection.GeneratedTimeLogIDs...)

	// Overrun is wrapped into the half-day window so a block finished just
	// after midnight against a 23:xx planned end reads as a small positive
	// overrun, not a huge negative one.
	overrun := timeutil.WrapHalfDay(timeutil.ParseClock(end) - timeutil.ParseClock(target.PlannedEndTime))

	var overflow []models.Block
	if overrun != 0 {
		pivot := indexOf(plan.Blocks, blockID)
		overflow, err = shiftWithOverflow(plan, pivot+1, overrun, "")
		if err != nil {
			return nil, err
		}
		logger.Debug("Shifted blocks after finish", "date", date, "overrun", overrun, "overflowed", len(overflow))
	}

	Recalculate(plan)
	if err := s.save(plan); err != nil {
		return nil, err
	}

	if len(overflow) > 0 {
		if _, err := s.PushBacklogToDate(overflow[0].Date, overflow); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

func indexOf(blocks []models.Block, id string) int {
	for i := range blocks {
		if blocks[i].ID == id {
			return i
		}
	}
	return -1
}

// clockDelta is the minute distance from start to end, treating a negative
// result as a midnight crossing.
func clockDelta(start, end string) int {
	d := timeutil.ParseClock(end) - timeutil.ParseClock(start)
	if d < 0 {
		d += constants.MinutesPerDay
	}
	return d
}
