package models

// Video is one source video in a day's high-level plan.
type Video struct {
	Title           string  `json:"title"`
	DurationMinutes int     `json:"duration_minutes"`
	MinStart        int     `json:"min_start,omitempty"`
	MinEnd          int     `json:"min_end,omitempty"`
	Speed           float64 `json:"speed,omitempty"` // playback multiplier, 0 means 1x
}

// EffectiveMinutes returns the wall-clock minutes needed to watch the video at
// its configured playback speed.
func (v Video) EffectiveMinutes() int {
	d := v.DurationMinutes
	if d == 0 && v.MinEnd > v.MinStart {
		d = v.MinEnd - v.MinStart
	}
	if v.Speed > 0 {
		return int(float64(d)/v.Speed + 0.5)
	}
	return d
}

// PracticeTarget describes a QBank or Anki goal for the day.
type PracticeTarget struct {
	PlannedMinutes int `json:"planned_minutes"`
	Questions      int `json:"questions,omitempty"`
	Cards          int `json:"cards,omitempty"`
}

// BreakWindow is a configured break with its own fixed start and end.
type BreakWindow struct {
	Label string `json:"label,omitempty"`
	Start string `json:"start"` // HH:MM format
	End   string `json:"end"`   // HH:MM format
}

// DayPlan is the aggregate root: one per calendar date. The summary fields
// (TotalStudyMinutesPlanned, TotalBreakMinutes, StartTimePlanned,
// EstimatedEndTime) are derived from Blocks and are only ever written by the
// planner's recalculation routine.
type DayPlan struct {
	Date   string  `json:"date"` // YYYY-MM-DD format
	Blocks []Block `json:"blocks"`

	TotalStudyMinutesPlanned int    `json:"total_study_minutes_planned"`
	TotalBreakMinutes        int    `json:"total_break_minutes"`
	StartTimePlanned         string `json:"start_time_planned,omitempty"` // HH:MM format
	StartTimeActual          string `json:"start_time_actual,omitempty"`  // HH:MM format
	EstimatedEndTime         string `json:"estimated_end_time,omitempty"` // HH:MM format

	// High-level generation inputs. The list types tolerate AI-authored JSON
	// that carries a bare object where an array was expected.
	Videos  VideoList       `json:"videos,omitempty"`
	FAPages IntList         `json:"fa_pages,omitempty"`
	Anki    *PracticeTarget `json:"anki,omitempty"`
	QBank   *PracticeTarget `json:"qbank,omitempty"`
	Breaks  BreakList       `json:"breaks,omitempty"`
}

// FindBlock returns a pointer into Blocks for the block with the given id, or
// nil if no such block exists.
func (p *DayPlan) FindBlock(id string) *Block {
	for i := range p.Blocks {
		if p.Blocks[i].ID == id {
			return &p.Blocks[i]
		}
	}
	return nil
}
