package planner

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timeutil"
)

const mergedSuffix = " (+ moved tasks)"

// MoveTasksToNextBlock reassigns the given task positions from the source
// block to the next non-terminal, non-break block of the same day, retitling
// the receiver to flag the merge. Returns (nil, nil) when the plan, block, or
// an eligible receiver is missing.
func (s *Service) MoveTasksToNextBlock(date, blockID string, taskIndexes []int) (*models.DayPlan, error) {
	plan, err := s.load(date)
	if err != nil || plan == nil {
		return nil, err
	}
	srcIdx := indexOf(plan.Blocks, blockID)
	if srcIdx < 0 {
		return nil, nil
	}

	var receiver *models.Block
	for i := srcIdx + 1; i < len(plan.Blocks); i++ {
		b := &plan.Blocks[i]
		if !b.Status.Terminal() && b.Type != models.BlockTypeBreak {
			receiver = b
			break
		}
	}
	if receiver == nil {
		return nil, nil
	}

	src := &plan.Blocks[srcIdx]
	moved, remaining := splitTasks(src.Tasks, taskIndexes)
	if len(moved) == 0 {
		return nil, nil
	}
	src.Tasks = remaining
	receiver.Tasks = append(receiver.Tasks, moved...)
	if !strings.HasSuffix(receiver.Title, mergedSuffix) {
		receiver.Title += mergedSuffix
	}

	Recalculate(plan)
	if err := s.save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// MoveTasksToFuturePlan strips the given tasks from the source block and
// appends them as a fresh block at the end of another day's plan, which is
// created lazily when absent.
func (s *Service) MoveTasksToFuturePlan(date, blockID, targetDate string, taskIndexes []int) (*models.DayPlan, error) {
	plan, err := s.load(date)
	if err != nil || plan == nil {
		return nil, err
	}
	srcIdx := indexOf(plan.Blocks, blockID)
	if srcIdx < 0 {
		return nil, nil
	}
	src := &plan.Blocks[srcIdx]
	moved, remaining := splitTasks(src.Tasks, taskIndexes)
	if len(moved) == 0 {
		return nil, nil
	}
	src.Tasks = remaining
	srcTitle := src.Title
	srcType := src.Type
	srcDuration := src.PlannedDurationMinutes

	Recalculate(plan)
	if err := s.save(plan); err != nil {
		return nil, err
	}

	target, err := s.load(targetDate)
	if err != nil {
		return nil, err
	}
	if target == nil {
		target = &models.DayPlan{Date: targetDate}
	}

	start := timeutil.ParseClock(target.StartTimePlanned)
	if n := len(target.Blocks); n > 0 {
		start = timeutil.ParseClock(target.Blocks[n-1].PlannedEndTime)
	}

	target.Blocks = append(target.Blocks, models.Block{
		ID:                     uuid.NewString(),
		Date:                   targetDate,
		PlannedStartTime:       timeutil.FormatClock(start),
		PlannedEndTime:         timeutil.FormatClock(start + srcDuration),
		PlannedDurationMinutes: srcDuration,
		Type:                   srcType,
		Title:                  fmt.Sprintf("Moved from %s: %s", date, srcTitle),
		Tasks:                  moved,
		Status:                 models.BlockNotStarted,
	})

	Recalculate(target)
	if err := s.save(target); err != nil {
		return nil, err
	}
	return target, nil
}

// splitTasks partitions tasks into the ones at the given positions and the
// rest, preserving order. Out-of-range positions are ignored.
func splitTasks(tasks []models.Task, indexes []int) (moved, remaining []models.Task) {
	pick := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		if idx >= 0 && idx < len(tasks) {
			pick[idx] = true
		}
	}
	for i, t := range tasks {
		if pick[i] {
			moved = append(moved, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	return moved, remaining
}
