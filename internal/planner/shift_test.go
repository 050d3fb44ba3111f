package planner

import (
	"testing"

	"github.com/julianstephens/studylit/internal/models"
)

func TestRecalculate(t *testing.T) {
	brk := testBlock("lunch", "13:00", 30, models.BlockTypeBreak)
	plan := models.DayPlan{
		Date: "2024-06-01",
		Blocks: []models.Block{
			testBlock("late", "14:00", 45, models.BlockTypeQBank),
			brk,
			testBlock("early", "09:00", 60, models.BlockTypeVideo),
		},
	}

	Recalculate(&plan)

	if plan.Blocks[0].ID != "early" || plan.Blocks[1].ID != "lunch" || plan.Blocks[2].ID != "late" {
		t.Errorf("order = %s, %s, %s", plan.Blocks[0].ID, plan.Blocks[1].ID, plan.Blocks[2].ID)
	}
	for i, b := range plan.Blocks {
		if b.Index != i {
			t.Errorf("block %s index = %d, want %d", b.ID, b.Index, i)
		}
	}
	if plan.TotalStudyMinutesPlanned != 105 {
		t.Errorf("study total = %d, want 105 (breaks excluded)", plan.TotalStudyMinutesPlanned)
	}
	if plan.TotalBreakMinutes != 30 {
		t.Errorf("break total = %d, want 30", plan.TotalBreakMinutes)
	}
	if plan.StartTimePlanned != "09:00" || plan.EstimatedEndTime != "14:45" {
		t.Errorf("plan span = %s-%s, want 09:00-14:45", plan.StartTimePlanned, plan.EstimatedEndTime)
	}
}

func TestRecalculateStableForEqualStarts(t *testing.T) {
	plan := models.DayPlan{
		Date: "2024-06-01",
		Blocks: []models.Block{
			testBlock("a", "09:00", 30, models.BlockTypeVideo),
			testBlock("b", "09:00", 30, models.BlockTypeQBank),
		},
	}

	Recalculate(&plan)

	if plan.Blocks[0].ID != "a" || plan.Blocks[1].ID != "b" {
		t.Errorf("equal starts reordered: %s, %s", plan.Blocks[0].ID, plan.Blocks[1].ID)
	}
}

func TestRecalculateEmptyKeepsDeclaredTimes(t *testing.T) {
	plan := models.DayPlan{
		Date:             "2024-06-01",
		StartTimePlanned: "07:00",
		EstimatedEndTime: "22:00",
	}

	Recalculate(&plan)

	if plan.StartTimePlanned != "07:00" || plan.EstimatedEndTime != "22:00" {
		t.Errorf("empty plan times rewritten: %s-%s", plan.StartTimePlanned, plan.EstimatedEndTime)
	}
	if plan.TotalStudyMinutesPlanned != 0 || plan.TotalBreakMinutes != 0 {
		t.Errorf("totals = %d/%d, want 0/0", plan.TotalStudyMinutesPlanned, plan.TotalBreakMinutes)
	}
}

func TestShiftWithOverflowSkipsEarlierAndTerminal(t *testing.T) {
	done := testBlock("done", "10:00", 30, models.BlockTypeVideo)
	done.Status = models.BlockDone
	plan := models.DayPlan{
		Date: "2024-06-01",
		Blocks: []models.Block{
			testBlock("before", "09:00", 30, models.BlockTypeVideo),
			done,
			testBlock("after", "10:30", 30, models.BlockTypeQBank),
		},
	}

	overflow, err := shiftWithOverflow(&plan, 1, 20, "")
	if err != nil {
		t.Fatalf("shiftWithOverflow: %v", err)
	}
	if len(overflow) != 0 {
		t.Fatalf("unexpected overflow: %+v", overflow)
	}

	if b := plan.FindBlock("before"); b.PlannedStartTime != "09:00" {
		t.Errorf("block before the pivot moved to %s", b.PlannedStartTime)
	}
	if b := plan.FindBlock("done"); b.PlannedStartTime != "10:00" {
		t.Errorf("terminal block moved to %s", b.PlannedStartTime)
	}
	if b := plan.FindBlock("after"); b.PlannedStartTime != "10:50" || b.PlannedEndTime != "11:20" {
		t.Errorf("after = %s-%s, want 10:50-11:20", b.PlannedStartTime, b.PlannedEndTime)
	}
}

func TestStackBefore(t *testing.T) {
	backlog := []models.Block{
		testBlock("first", "18:00", 40, models.BlockTypeVideo),
		testBlock("second", "19:00", 20, models.BlockTypeQBank),
	}

	stackBefore(backlog, 600, "2024-06-02") // anchor 10:00

	if backlog[1].PlannedStartTime != "09:40" || backlog[1].PlannedEndTime != "10:00" {
		t.Errorf("second = %s-%s, want 09:40-10:00", backlog[1].PlannedStartTime, backlog[1].PlannedEndTime)
	}
	if backlog[0].PlannedStartTime != "09:00" || backlog[0].PlannedEndTime != "09:40" {
		t.Errorf("first = %s-%s, want 09:00-09:40", backlog[0].PlannedStartTime, backlog[0].PlannedEndTime)
	}
	for _, b := range backlog {
		if b.Date != "2024-06-02" {
			t.Errorf("block %s date = %s, want 2024-06-02", b.ID, b.Date)
		}
	}
}
