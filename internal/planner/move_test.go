package planner

import (
	"testing"

	"github.com/julianstephens/studylit/internal/models"
)

func blockWithTasks(id, start string, minutes int, blockType models.BlockType, details ...string) models.Block {
	b := testBlock(id, start, minutes, blockType)
	for _, d := range details {
		b.Tasks = append(b.Tasks, models.Task{Type: models.TaskTypePages, Detail: d})
	}
	return b
}

func TestMoveTasksToNextBlock(t *testing.T) {
	s, store, _ := testService(t)
	done := blockWithTasks("done", "09:30", 30, models.BlockTypeQBank, "x")
	done.Status = models.BlockDone
	seedPlan(t, store, "2024-06-01",
		blockWithTasks("src", "09:00", 30, models.BlockTypeRevisionFA, "page 10", "page 11", "page 12"),
		done,
		testBlock("break", "10:00", 15, models.BlockTypeBreak),
		blockWithTasks("dst", "10:15", 30, models.BlockTypeRevisionFA, "page 20"),
	)

	plan, err := s.MoveTasksToNextBlock("2024-06-01", "src", []int{0, 2})
	if err != nil {
		t.Fatalf("MoveTasksToNextBlock: %v", err)
	}

	src := plan.FindBlock("src")
	if len(src.Tasks) != 1 || src.Tasks[0].Detail != "page 11" {
		t.Errorf("src tasks = %+v, want only page 11", src.Tasks)
	}

	// Done blocks and breaks are skipped as receivers.
	dst := plan.FindBlock("dst")
	if len(dst.Tasks) != 3 {
		t.Fatalf("dst tasks = %+v, want 3", dst.Tasks)
	}
	if dst.Tasks[1].Detail != "page 10" || dst.Tasks[2].Detail != "page 12" {
		t.Errorf("moved tasks = %q, %q", dst.Tasks[1].Detail, dst.Tasks[2].Detail)
	}
	if dst.Title != "dst (+ moved tasks)" {
		t.Errorf("dst title = %q", dst.Title)
	}
}

func TestMoveTasksToNextBlockNoReceiver(t *testing.T) {
	s, store, _ := testService(t)
	seedPlan(t, store, "2024-06-01",
		blockWithTasks("src", "09:00", 30, models.BlockTypeRevisionFA, "page 10"),
		testBlock("break", "09:30", 15, models.BlockTypeBreak),
	)

	plan, err := s.MoveTasksToNextBlock("2024-06-01", "src", []int{0})
	if err != nil || plan != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", plan, err)
	}
	// The source must be untouched when nothing can receive.
	stored := mustGet(t, store, "2024-06-01")
	if len(stored.FindBlock("src").Tasks) != 1 {
		t.Error("tasks were removed despite no receiver")
	}
}

func TestMoveTasksToFuturePlan(t *testing.T) {
	s, store, _ := testService(t)
	seedPlan(t, store, "2024-06-01",
		blockWithTasks("src", "09:00", 45, models.BlockTypeRevisionFA, "page 10", "page 11"),
	)
	seedPlan(t, store, "2024-06-03",
		testBlock("existing", "08:00", 60, models.BlockTypeVideo),
	)

	target, err := s.MoveTasksToFuturePlan("2024-06-01", "src", "2024-06-03", []int{1})
	if err != nil {
		t.Fatalf("MoveTasksToFuturePlan: %v", err)
	}

	if target.Date != "2024-06-03" {
		t.Errorf("target date = %s", target.Date)
	}
	if len(target.Blocks) != 2 {
		t.Fatalf("target has %d blocks, want 2", len(target.Blocks))
	}
	moved := target.Blocks[1]
	if moved.Title != "Moved from 2024-06-01: src" {
		t.Errorf("moved title = %q", moved.Title)
	}
	// Appended after the target's last block with the source's duration.
	if moved.PlannedStartTime != "09:00" || moved.PlannedEndTime != "09:45" {
		t.Errorf("moved = %s-%s, want 09:00-09:45", moved.PlannedStartTime, moved.PlannedEndTime)
	}
	if len(moved.Tasks) != 1 || moved.Tasks[0].Detail != "page 11" {
		t.Errorf("moved tasks = %+v", moved.Tasks)
	}
	if moved.Type != models.BlockTypeRevisionFA || moved.Status != models.BlockNotStarted {
		t.Errorf("moved block = %s/%s", moved.Type, moved.Status)
	}

	src := mustGet(t, store, "2024-06-01").FindBlock("src")
	if len(src.Tasks) != 1 || src.Tasks[0].Detail != "page 10" {
		t.Errorf("src tasks = %+v, want only page 10", src.Tasks)
	}
}

func TestMoveTasksOutOfRangeIndexes(t *testing.T) {
	s, store, _ := testService(t)
	seedPlan(t, store, "2024-06-01",
		blockWithTasks("src", "09:00", 30, models.BlockTypeRevisionFA, "page 10"),
		blockWithTasks("dst", "09:30", 30, models.BlockTypeRevisionFA, "page 20"),
	)

	plan, err := s.MoveTasksToNextBlock("2024-06-01", "src", []int{5, -1})
	if err != nil || plan != nil {
		t.Errorf("got (%v, %v), want (nil, nil) when nothing valid to move", plan, err)
	}
}
