package models

type BlockType string

const (
	BlockTypeVideo        BlockType = "video"
	BlockTypeRevisionFA   BlockType = "revision_fa"
	BlockTypeAnki         BlockType = "anki"
	BlockTypeQBank        BlockType = "qbank"
	BlockTypeBreak        BlockType = "break"
	BlockTypeOther        BlockType = "other"
	BlockTypeMixed        BlockType = "mixed"
	BlockTypeFMGERevision BlockType = "fmge_revision"
)

type BlockStatus string

const (
	BlockNotStarted BlockStatus = "not_started"
	BlockInProgress BlockStatus = "in_progress"
	BlockPaused     BlockStatus = "paused"
	BlockDone       BlockStatus = "done"
	BlockSkipped    BlockStatus = "skipped"
)

// Terminal reports whether the status is final. Terminal blocks are frozen:
// the planner never shifts their times.
func (s BlockStatus) Terminal() bool {
	return s == BlockDone || s == BlockSkipped
}

type CompletionStatus string

const (
	CompletionCompleted CompletionStatus = "completed"
	CompletionPartial   CompletionStatus = "partial"
	CompletionNotDone   CompletionStatus = "not_done"
)

type TaskType string

const (
	TaskTypeVideo    TaskType = "video"
	TaskTypePages    TaskType = "pages"
	TaskTypeAnki     TaskType = "anki"
	TaskTypeQBank    TaskType = "qbank"
	TaskTypeFreeform TaskType = "freeform"
)

// TaskMeta carries type-specific task fields. Zero values mean "not set".
type TaskMeta struct {
	Page          int     `json:"page,omitempty"`
	CardCount     int     `json:"card_count,omitempty"`
	QuestionCount int     `json:"question_count,omitempty"`
	VideoMinStart int     `json:"video_min_start,omitempty"`
	VideoMinEnd   int     `json:"video_min_end,omitempty"`
	Speed         float64 `json:"speed,omitempty"`
}

// Task is one unit of content inside a block.
type Task struct {
	Type      TaskType `json:"type"`
	Detail    string   `json:"detail"`
	Completed bool     `json:"completed"`
	Meta      TaskMeta `json:"meta,omitempty"`
}

// Segment records one contiguous interval of active work on a block. A block
// paused and resumed twice has three segments. End is empty while the segment
// is still open.
type Segment struct {
	Start string `json:"start"` // HH:MM format
	End   string `json:"end,omitempty"`
}

// Interruption records a pause with its reason. End is empty while the
// interruption is still open.
type Interruption struct {
	Start  string `json:"start"` // HH:MM format
	End    string `json:"end,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Block is the atomic unit of a schedule: one time-boxed study activity
// belonging to a single calendar day. Index is its position within the day's
// sorted block list and is recomputed on every mutation.
type Block struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
	Date  string `json:"date"` // YYYY-MM-DD format

	PlannedStartTime       string `json:"planned_start_time"` // HH:MM format
	PlannedEndTime         string `json:"planned_end_time"`   // HH:MM format
	PlannedDurationMinutes int    `json:"planned_duration_minutes"`

	Type        BlockType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tasks       []Task    `json:"tasks,omitempty"`

	Status                BlockStatus    `json:"status"`
	ActualStartTime       string         `json:"actual_start_time,omitempty"`
	ActualEndTime         string         `json:"actual_end_time,omitempty"`
	ActualDurationMinutes int            `json:"actual_duration_minutes,omitempty"`
	Segments              []Segment      `json:"segments,omitempty"`
	Interruptions         []Interruption `json:"interruptions,omitempty"`

	CompletionStatus   CompletionStatus `json:"completion_status,omitempty"`
	ActualPagesCovered []int            `json:"actual_pages_covered,omitempty"`
	CarryForwardPages  []int            `json:"carry_forward_pages,omitempty"`
	ActualNotes        string           `json:"actual_notes,omitempty"`
	RescheduledTo      string           `json:"rescheduled_to,omitempty"` // YYYY-MM-DD format

	// Idempotency keys for records created in external stores when this
	// block was finished.
	GeneratedLogIDs     []string `json:"generated_log_ids,omitempty"`
	GeneratedTimeLogIDs []string `json:"generated_time_log_ids,omitempty"`
}
