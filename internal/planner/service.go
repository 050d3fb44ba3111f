// Package planner owns every mutation of a day's block list. Each operation
// is an independent read-modify-write round trip against the store: load the
// plan, mutate in memory, recompute derived stats, write back. Operations
// addressing a missing plan or block return (nil, nil) so callers can treat
// not-found as a no-op; store failures are wrapped and returned unchanged.
//
// There is no locking across operations. A single user's device is the only
// writer and the caller is responsible for not issuing overlapping mutations
// for the same date.
package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timeutil"
)

// Store is the persistence contract the planner consumes. A nil plan with a
// nil error means no plan exists for the date yet.
type Store interface {
	GetDayPlan(date string) (*models.DayPlan, error)
	SaveDayPlan(plan models.DayPlan) error
}

// Service applies scheduling mutations to stored day plans.
type Service struct {
	store Store
	// Now is the clock used for segment and interruption timestamps.
	// Overridable in tests.
	Now func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, Now: time.Now}
}

func (s *Service) clock() string {
	return timeutil.ClockNow(s.Now())
}

func (s *Service) load(date string) (*models.DayPlan, error) {
	plan, err := s.store.GetDayPlan(date)
	if err != nil {
		logger.Error("Failed to load day plan", "date", date, "error", err)
		return nil, fmt.Errorf("failed to load plan for %s: %w", date, err)
	}
	return plan, nil
}

func (s *Service) save(plan *models.DayPlan) error {
	if err := s.store.SaveDayPlan(*plan); err != nil {
		logger.Error("Failed to save day plan", "date", plan.Date, "error", err)
		return fmt.Errorf("failed to save plan for %s: %w", plan.Date, err)
	}
	return nil
}

// StartBlock transitions the target block to in-progress, opening a new work
// segment. Any other block currently in progress is forced to paused with its
// open segment closed, so at most one block is ever active. Resuming a paused
// block closes its most recent open interruption. Returns (nil, nil) when the
// plan or block does not exist.
func (s *Service) StartBlock(date, blockID string) (*models.DayPlan, error) {
	plan, err := s.load(date)
	if err != nil || plan == nil {
		return nil, err
	}
	target := plan.FindBlock(blockID)
	if target == nil {
		return nil, nil
	}

	now := s.clock()
	for i := range plan.Blocks {
		b := &plan.Blocks[i]
		if b.ID != blockID && b.Status == models.BlockInProgress {
			closeOpenSegment(b, now)
			b.Status = models.BlockPaused
			b.Interruptions = append(b.Interruptions, models.Interruption{
				Start:  now,
				Reason: "Switched to new task",
			})
		}
	}

	if target.Status == models.BlockPaused {
		closeOpenInterruption(target, now)
	}
	if target.ActualStartTime == "" {
		target.ActualStartTime = now
	}
	target.Status = models.BlockInProgress
	target.Segments = append(target.Segments, models.Segment{Start: now})

	if plan.StartTimeActual == "" {
		plan.StartTimeActual = target.ActualStartTime
	}

	Recalculate(plan)
	if err := s.save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// BlockUpdate is a partial update: nil fields are left untouched.
type BlockUpdate struct {
	Title                  *string
	Description            *string
	Type                   *models.BlockType
	Status                 *models.BlockStatus
	Tasks                  *[]models.Task
	PlannedStartTime       *string
	PlannedEndTime         *string
	PlannedDurationMinutes *int
	ActualNotes            *string
	CompletionStatus       *models.CompletionStatus
	ActualPagesCovered     *[]int
	CarryForwardPages      *[]int
	RescheduledTo          *string
}

// UpdateBlock merges a partial update onto the target block. Setting status to
// paused while the block is in progress closes the open segment and records an
// interruption whose reason comes from actual notes of the form
// "Paused: <reason>", falling back to the literal "Paused".
func (s *Service) UpdateBlock(date, blockID string, update BlockUpdate) (*models.DayPlan, error) {
	plan, err := s.load(date)
	if err != nil || plan == nil {
		return nil, err
	}
	target := plan.FindBlock(blockID)
	if target == nil {
		return nil, nil
	}

	pausing := update.Status != nil &&
		*update.Status == models.BlockPaused &&
		target.Status == models.BlockInProgress

	applyUpdate(target, update)

	if pausing {
		now := s.clock()
		closeOpenSegment(target, now)
		target.Interruptions = append(target.Interruptions, models.Interruption{
			Start:  now,
			Reason: pauseReason(target.ActualNotes),
		})
	}

	Recalculate(plan)
	if err := s.save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func applyUpdate(b *models.Block, u BlockUpdate) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Description != nil {
		b.Description = *u.Description
	}
	if u.Type != nil {
		b.Type = *u.Type
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.Tasks != nil {
		b.Tasks = *u.Tasks
	}
	if u.PlannedStartTime != nil {
		b.PlannedStartTime = *u.PlannedStartTime
	}
	if u.PlannedEndTime != nil {
		b.PlannedEndTime = *u.PlannedEndTime
	}
	if u.PlannedDurationMinutes != nil {
		b.PlannedDurationMinutes = *u.PlannedDurationMinutes
	}
	if u.ActualNotes != nil {
		b.ActualNotes = *u.ActualNotes
	}
	if u.CompletionStatus != nil {
		b.CompletionStatus = *u.CompletionStatus
	}
	if u.ActualPagesCovered != nil {
		b.ActualPagesCovered = *u.ActualPagesCovered
	}
	if u.CarryForwardPages != nil {
		b.CarryForwardPages = *u.CarryForwardPages
	}
	if u.RescheduledTo != nil {
		b.RescheduledTo = *u.RescheduledTo
	}
}

func pauseReason(notes string) string {
	const prefix = "Paused:"
	if strings.HasPrefix(notes, prefix) {
		if reason := strings.TrimSpace(notes[len(prefix):]); reason != "" {
			return reason
		}
	}
	return "Paused"
}

func closeOpenSegment(b *models.Block, end string) {
	if n := len(b.Segments); n > 0 && b.Segments[n-1].End == "" {
		b.Segments[n-1].End = end
	}
}

func closeOpenInterruption(b *models.Block, end string) {
	if n := len(b.Interruptions); n > 0 && b.Interruptions[n-1].End == "" {
		b.Interruptions[n-1].End = end
	}
}
