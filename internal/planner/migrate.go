package planner

import (
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timeutil"
)

const carryOverPrefix = "(Carry Over) "

// CheckAndMigrateOverdueTasks rolls yesterday's unfinished blocks onto today's
// plan. "Today" is the logical date: before 04:00 local time the previous
// calendar date still counts, so a nightly run shortly after midnight does not
// roll tasks forward prematurely. Returns (nil, nil) when there is nothing to
// migrate.
func (s *Service) CheckAndMigrateOverdueTasks() (*models.DayPlan, error) {
	today := timeutil.LogicalDate(s.Now())
	yesterday, err := timeutil.AddDays(today, -1)
	if err != nil {
		return nil, err
	}

	yPlan, err := s.load(yesterday)
	if err != nil || yPlan == nil {
		return nil, err
	}

	var backlog, kept []models.Block
	for _, b := range yPlan.Blocks {
		if isOverdue(b) {
			backlog = append(backlog, resetForCarryOver(b))
		} else {
			kept = append(kept, b)
		}
	}
	if len(backlog) == 0 {
		return nil, nil
	}

	yPlan.Blocks = kept
	Recalculate(yPlan)
	if err := s.save(yPlan); err != nil {
		return nil, err
	}

	logger.Info("Migrating overdue blocks", "from", yesterday, "to", today, "count", len(backlog))
	return s.PushBacklogToDate(today, backlog)
}

// isOverdue reports whether a block should carry over: never started, left
// paused, or finished with work remaining.
func isOverdue(b models.Block) bool {
	if b.Status == models.BlockNotStarted || b.Status == models.BlockPaused {
		return true
	}
	return b.CompletionStatus == models.CompletionPartial || b.CompletionStatus == models.CompletionNotDone
}

// resetForCarryOver regenerates a block for its new day: fresh id, execution
// state cleared, and a carry-over tag on the title when not already present.
func resetForCarryOver(b models.Block) models.Block {
	b.ID = uuid.NewString()
	b.Status = models.BlockNotStarted
	b.ActualStartTime = ""
	b.ActualEndTime = ""
	b.ActualDurationMinutes = 0
	b.Segments = nil
	b.Interruptions = nil
	b.CompletionStatus = ""
	b.ActualPagesCovered = nil
	b.ActualNotes = ""
	b.RescheduledTo = ""
	if !strings.HasPrefix(b.Title, carryOverPrefix) {
		b.Title = carryOverPrefix + b.Title
	}
	return b
}

// PushBacklogToDate front-loads the backlog onto the given day's plan: the
// chain is stacked in reverse so its last block ends exactly at the day's
// current earliest start (or the plan-declared start time, when that is
// earlier), leaving already-planned blocks untouched. When the target plan has
// no blocks and no declared start, the backlog keeps its incoming times. The
// plan is created lazily when absent.
func (s *Service) PushBacklogToDate(date string, backlog []models.Block) (*models.DayPlan, error) {
	if len(backlog) == 0 {
		return nil, nil
	}

	plan, err := s.load(date)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		plan = &models.DayPlan{Date: date}
	}

	anchor, ok := backlogAnchor(plan)
	if ok {
		stackBefore(backlog, anchor, date)
	} else {
		for i := range backlog {
			backlog[i].Date = date
		}
	}

	plan.Blocks = append(plan.Blocks, backlog...)
	Recalculate(plan)
	if err := s.save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func backlogAnchor(plan *models.DayPlan) (int, bool) {
	hasAnchor := false
	anchor := 0
	if len(plan.Blocks) > 0 {
		earliest := timeutil.ParseClock(plan.Blocks[0].PlannedStartTime)
		for _, b := range plan.Blocks[1:] {
			if m := timeutil.ParseClock(b.PlannedStartTime); m < earliest {
				earliest = m
			}
		}
		anchor = earliest
		hasAnchor = true
	}
	if plan.StartTimePlanned != "" {
		declared := timeutil.ParseClock(plan.StartTimePlanned)
		if !hasAnchor || declared < anchor {
			anchor = declared
			hasAnchor = true
		}
	}
	return anchor, hasAnchor
}
