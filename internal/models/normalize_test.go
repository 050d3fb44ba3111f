package models

import (
	"encoding/json"
	"testing"
)

func TestListsAcceptBareObjects(t *testing.T) {
	// AI-authored plan JSON often hands back a single object where the
	// schema says array.
	raw := `{
		"date": "2024-06-01",
		"blocks": [],
		"videos": {"title": "Cardio", "duration_minutes": 60},
		"fa_pages": 12,
		"breaks": {"label": "Lunch", "start": "13:00", "end": "13:30"}
	}`

	var plan DayPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(plan.Videos) != 1 || plan.Videos[0].Title != "Cardio" {
		t.Errorf("videos = %+v, want single Cardio entry", plan.Videos)
	}
	if len(plan.FAPages) != 1 || plan.FAPages[0] != 12 {
		t.Errorf("fa_pages = %v, want [12]", plan.FAPages)
	}
	if len(plan.Breaks) != 1 || plan.Breaks[0].Label != "Lunch" {
		t.Errorf("breaks = %+v, want single Lunch entry", plan.Breaks)
	}
}

func TestListsAcceptArrays(t *testing.T) {
	raw := `{"date": "2024-06-01", "fa_pages": [1, 2, 3], "videos": [{"title": "A"}, {"title": "B"}]}`

	var plan DayPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(plan.FAPages) != 3 {
		t.Errorf("fa_pages = %v, want 3 entries", plan.FAPages)
	}
	if len(plan.Videos) != 2 {
		t.Errorf("videos = %+v, want 2 entries", plan.Videos)
	}
}

func TestEffectiveMinutes(t *testing.T) {
	tests := []struct {
		name  string
		video Video
		want  int
	}{
		{"plain duration", Video{DurationMinutes: 60}, 60},
		{"zero speed means 1x", Video{DurationMinutes: 60, Speed: 0}, 60},
		{"speeded up", Video{DurationMinutes: 60, Speed: 1.5}, 40},
		{"rounds to nearest", Video{DurationMinutes: 50, Speed: 1.5}, 33},
		{"range fallback", Video{MinStart: 10, MinEnd: 55}, 45},
	}
	for _, tt := range tests {
		if got := tt.video.EffectiveMinutes(); got != tt.want {
			t.Errorf("%s: EffectiveMinutes() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFindBlock(t *testing.T) {
	plan := DayPlan{Blocks: []Block{{ID: "a"}, {ID: "b"}}}

	if b := plan.FindBlock("b"); b == nil || b.ID != "b" {
		t.Errorf("FindBlock(b) = %+v", b)
	}
	if b := plan.FindBlock("missing"); b != nil {
		t.Errorf("FindBlock(missing) = %+v, want nil", b)
	}

	// The pointer must alias the plan's own slice.
	plan.FindBlock("a").Title = "changed"
	if plan.Blocks[0].Title != "changed" {
		t.Error("FindBlock returned a copy instead of a pointer into Blocks")
	}
}

func TestTerminal(t *testing.T) {
	tests := []struct {
		status BlockStatus
		want   bool
	}{
		{BlockNotStarted, false},
		{BlockInProgress, false},
		{BlockPaused, false},
		{BlockDone, true},
		{BlockSkipped, true},
	}
	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
