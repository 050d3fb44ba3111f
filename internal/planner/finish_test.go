package planner

import (
	"testing"

	"github.com/julianstephens/studylit/internal/models"
)

func TestFinishBlockSumsSegments(t *testing.T) {
	s, store, clock := testService(t)
	seedPlan(t, store, "2024-06-01", testBlock("a", "09:00", 60, models.BlockTypeVideo))

	paused := models.BlockPaused
	pause := func(hhmm string) {
		t.Helper()
		at(t, clock, hhmm)
		if _, err := s.UpdateBlock("2024-06-01", "a", BlockUpdate{Status: &paused}); err != nil {
			t.Fatalf("pause at %s: %v", hhmm, err)
		}
	}
	start := func(hhmm string) {
		t.Helper()
		at(t, clock, hhmm)
		if _, err := s.StartBlock("2024-06-01", "a"); err != nil {
			t.Fatalf("start at %s: %v", hhmm, err)
		}
	}

	start("09:00")
	pause("09:20")
	start("09:25")
	pause("09:45")
	start("09:50")

	plan, err := s.FinishBlock("2024-06-01", "a",
		Reflection{CompletionStatus: models.CompletionCompleted}, "10:05")
	if err != nil {
		t.Fatalf("FinishBlock: %v", err)
	}

	a := plan.FindBlock("a")
	if a.Status != models.BlockDone {
		t.Errorf("status = %s, want %s", a.Status, models.BlockDone)
	}
	// 20 + 20 + 15 worked minutes; the two pauses never count even though
	// the wall clock shows 65.
	if a.ActualDurationMinutes != 55 {
		t.Errorf("actual duration = %d, want 55", a.ActualDurationMinutes)
	}
	if a.ActualEndTime != "10:05" {
		t.Errorf("actual end = %q, want 10:05", a.ActualEndTime)
	}
	if a.CompletionStatus != models.CompletionCompleted {
		t.Errorf("completion = %s, want %s", a.CompletionStatus, models.CompletionCompleted)
	}
	if len(a.Segments) != 3 || a.Segments[2].End != "10:05" {
		t.Errorf("segments = %+v, want 3 with the last closed at 10:05", a.Segments)
	}
}

func TestFinishBreakUsesWallClock(t *testing.T) {
	s, store, clock := testService(t)
	seedPlan(t, store, "2024-06-01", testBlock("lunch", "13:00", 30, models.BlockTypeBreak))

	at(t, clock, "13:00")
	if _, err := s.StartBlock("2024-06-01", "lunch"); err != nil {
		t.Fatalf("start: %v", err)
	}
	at(t, clock, "13:10")
	paused := models.BlockPaused
	if _, err := s.UpdateBlock("2024-06-01", "lunch", BlockUpdate{Status: &paused}); err != nil {
		t.Fatalf("pause: %v", err)
	}
	at(t, clock, "13:20")
	if _, err := s.StartBlock("2024-06-01", "lunch"); err != nil {
		t.Fatalf("resume: %v", err)
	}

	plan, err := s.FinishBlock("2024-06-01", "lunch", Reflection{}, "13:40")
	if err != nil {
		t.Fatalf("FinishBlock: %v", err)
	}

	// Breaks are wall-clock: 13:00 to 13:40, pause included.
	if got := plan.FindBlock("lunch").ActualDurationMinutes; got != 40 {
		t.Errorf("actual duration = %d, want 40", got)
	}
}

func TestFinishBlockOverrunShiftsLaterBlocks(t *testing.T) {
	s, store, clock := testService(t)
	done := testBlock("c", "10:30", 30, models.BlockTypeAnki)
	done.Status = models.BlockDone
	seedPlan(t, store, "2024-06-01",
		testBlock("a", "09:00", 60, models.BlockTypeVideo),
		testBlock("b", "10:00", 30, models.BlockTypeQBank),
		done,
		testBlock("d", "11:00", 30, models.BlockTypeRevisionFA),
	)

	at(t, clock, "09:00")
	if _, err := s.StartBlock("2024-06-01", "a"); err != nil {
		t.Fatalf("start: %v", err)
	}
	plan, err := s.FinishBlock("2024-06-01", "a",
		Reflection{CompletionStatus: models.CompletionCompleted}, "10:15")
	if err != nil {
		t.Fatalf("FinishBlock: %v", err)
	}

	b := plan.FindBlock("b")
	if b.PlannedStartTime != "10:15" || b.PlannedEndTime != "10:45" {
		t.Errorf("b = %s-%s, want 10:15-10:45", b.PlannedStartTime, b.PlannedEndTime)
	}
	d := plan.FindBlock("d")
	if d.PlannedStartTime != "11:15" || d.PlannedEndTime != "11:45" {
		t.Errorf("d = %s-%s, want 11:15-11:45", d.PlannedStartTime, d.PlannedEndTime)
	}
	// Terminal blocks never move, even when the shift overlaps them.
	c := plan.FindBlock("c")
	if c.PlannedStartTime != "10:30" {
		t.Errorf("done block moved to %s", c.PlannedStartTime)
	}
	// Indexes follow the re-sort.
	for i, blk := range plan.Blocks {
		if blk.Index != i {
			t.Errorf("block %s index = %d, want %d", blk.ID, blk.Index, i)
		}
	}
}

func TestFinishBlockUnderrunPullsLaterBlocksEarlier(t *testing.T) {
	s, store, clock := testService(t)
	seedPlan(t, store, "2024-06-01",
		testBlock("a", "09:00", 60, models.BlockTypeVideo),
		testBlock("b", "10:00", 30, models.BlockTypeQBank),
	)

	at(t, clock, "09:00")
	if _, err := s.StartBlock("2024-06-01", "a"); err != nil {
		t.Fatalf("start: %v", err)
	}
	plan, err := s.FinishBlock("2024-06-01", "a",
		Reflection{CompletionStatus: models.CompletionCompleted}, "09:40")
	if err != nil {
		t.Fatalf("FinishBlock: %v", err)
	}

	b := plan.FindBlock("b")
	if b.PlannedStartTime != "09:40" || b.PlannedEndTime != "10:10" {
		t.Errorf("b = %s-%s, want 09:40-10:10", b.PlannedStartTime, b.PlannedEndTime)
	}
}

func TestFinishBlockMidnightOverflow(t *testing.T) {
	s, store, clock := testService(t)
	seedPlan(t, store, "2024-06-01",
		testBlock("a", "22:30", 30, models.BlockTypeVideo),
		testBlock("b", "23:00", 30, models.BlockTypeQBank),
		testBlock("c", "23:30", 25, models.BlockTypeAnki),
	)

	at(t, clock, "22:30")
	if _, err := s.StartBlock("2024-06-01", "a"); err != nil {
		t.Fatalf("start: %v", err)
	}
	// Finished 90 minutes past the planned 23:00 end: the wrapped overrun is
	// +90, not -1350.
	plan, err := s.FinishBlock("2024-06-01", "a",
		Reflection{CompletionStatus: models.CompletionCompleted}, "00:30")
	if err != nil {
		t.Fatalf("FinishBlock: %v", err)
	}

	if len(plan.Blocks) != 1 {
		t.Fatalf("today keeps %d blocks, want 1", len(plan.Blocks))
	}
	if plan.Blocks[0].ID != "a" {
		t.Errorf("today keeps %s, want a", plan.Blocks[0].ID)
	}

	next := mustGet(t, store, "2024-06-02")
	if len(next.Blocks) != 2 {
		t.Fatalf("next day has %d blocks, want 2", len(next.Blocks))
	}
	b, c := next.FindBlock("b"), next.FindBlock("c")
	if b == nil || c == nil {
		t.Fatalf("overflowed blocks missing: %+v", next.Blocks)
	}
	if b.Date != "2024-06-02" || c.Date != "2024-06-02" {
		t.Errorf("overflow dates = %s, %s, want 2024-06-02", b.Date, c.Date)
	}
	// An empty next day has no anchor, so the shifted clock times stick.
	if b.PlannedStartTime != "00:30" || b.PlannedEndTime != "01:00" {
		t.Errorf("b = %s-%s, want 00:30-01:00", b.PlannedStartTime, b.PlannedEndTime)
	}
	if c.PlannedStartTime != "01:00" || c.PlannedEndTime != "01:25" {
		t.Errorf("c = %s-%s, want 01:00-01:25", c.PlannedStartTime, c.PlannedEndTime)
	}
	if next.TotalStudyMinutesPlanned != 55 {
		t.Errorf("next day study total = %d, want 55", next.TotalStudyMinutesPlanned)
	}
}

func TestFinishBlockNotFound(t *testing.T) {
	s, store, _ := testService(t)

	plan, err := s.FinishBlock("2024-06-01", "missing", Reflection{}, "")
	if err != nil || plan != nil {
		t.Errorf("missing plan: got (%v, %v), want (nil, nil)", plan, err)
	}

	seedPlan(t, store, "2024-06-01", testBlock("a", "09:00", 30, models.BlockTypeVideo))
	plan, err = s.FinishBlock("2024-06-01", "missing", Reflection{}, "")
	if err != nil || plan != nil {
		t.Errorf("missing block: got (%v, %v), want (nil, nil)", plan, err)
	}
}
