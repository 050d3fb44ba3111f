package planner

import (
	"github.com/google/uuid"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timeutil"
)

// InsertRequest describes a block to insert into a day's plan.
type InsertRequest struct {
	Date            string
	StartTime       string // HH:MM format
	DurationMinutes int
	Tasks           []models.Task
	Title           string
	Type            models.BlockType
	Description     string
	ID              string             // optional, generated when empty
	InitialStatus   models.BlockStatus // optional, defaults to not started
}

// InsertBlockAndShift places a new block into the plan's sorted block list.
// If an existing non-terminal block collides with the insertion point, the
// minimal shift that removes that single overlap is applied to it and
// everything after it, with midnight overflow handling. The day's plan is
// created lazily when none exists yet.
func (s *Service) InsertBlockAndShift(req InsertRequest) (*models.DayPlan, error) {
	plan, err := s.load(req.Date)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		plan = &models.DayPlan{Date: req.Date}
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	status := req.InitialStatus
	if status == "" {
		status = models.BlockNotStarted
	}
	blockType := req.Type
	if blockType == "" {
		blockType = models.BlockTypeOther
	}

	startMin := timeutil.ParseClock(req.StartTime)
	block := models.Block{
		ID:                     id,
		Date:                   req.Date,
		PlannedStartTime:       timeutil.FormatClock(startMin),
		PlannedEndTime:         timeutil.FormatClock(startMin + req.DurationMinutes),
		PlannedDurationMinutes: req.DurationMinutes,
		Type:                   blockType,
		Title:                  req.Title,
		Description:            req.Description,
		Tasks:                  req.Tasks,
		Status:                 status,
	}

	plan.Blocks = append(plan.Blocks, block)
	Recalculate(plan)

	newEnd := startMin + req.DurationMinutes
	var overflow []models.Block
	if idx := firstCollision(plan.Blocks, id, startMin); idx >= 0 {
		collStart := timeutil.ParseClock(plan.Blocks[idx].PlannedStartTime)
		if collStart < newEnd {
			overflow, err = shiftWithOverflow(plan, idx, newEnd-collStart, id)
			if err != nil {
				return nil, err
			}
		}
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

// firstCollision returns the index of the earliest non-terminal block, other
// than the inserted one, still running at startMin or starting after it; -1
// when every other block ends before the insertion point.
func firstCollision(blocks []models.Block, insertedID string, startMin int) int {
	for i := range blocks {
		b := blocks[i]
		if b.ID == insertedID || b.Status.Terminal() {
			continue
		}
		if timeutil.ParseClock(b.PlannedStartTime)+b.PlannedDurationMinutes > startMin {
			return i
		}
	}
	return -1
}

// DeleteBlock removes a block by id and recomputes the plan's stats. Other
// blocks keep their times; the deleted block simply leaves a gap.
func (s *Service) DeleteBlock(date, blockID string) (*models.DayPlan, error) {
	plan, err := s.load(date)
	if err != nil || plan == nil {
		return nil, err
	}
	idx := indexOf(plan.Blocks, blockID)
	if idx < 0 {
		return nil, nil
	}

	plan.Blocks = append(plan.Blocks[:idx], plan.Blocks[idx+1:]...)
	Recalculate(plan)
	if err := s.save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}
