// Package validation checks stored day plans for scheduling conflicts and
// stale derived fields. It only reports; repairs go through the planner.
package validation

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timeutil"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictOverlappingBlocks ConflictType = "overlapping_blocks"
	ConflictSparseIndexes     ConflictType = "sparse_indexes"
	ConflictStaleStats        ConflictType = "stale_stats"
	ConflictInvalidDuration   ConflictType = "invalid_duration"
	ConflictInvalidDateTime   ConflictType = "invalid_datetime"
)

// Conflict represents a detected conflict in a day plan
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format
	Items       []string // Block titles involved
	TimeRange   string   // Human-readable time range (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected.\n"
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates day plans for conflicts
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidatePlan checks a single plan: block times must parse, durations must be
// positive, non-terminal blocks must not overlap, indexes must be dense, and
// the stored totals must match what the blocks sum to. Done and skipped blocks
// are exempt from the overlap check since a finish-time shift deliberately
// leaves them in place.
func (v *Validator) ValidatePlan(plan models.DayPlan) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if _, err := time.Parse(constants.DateFormat, plan.Date); err != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Invalid plan date: %s", plan.Date),
			Date:        plan.Date,
		})
		return result
	}

	for _, b := range plan.Blocks {
		if !isValidTimeFormat(b.PlannedStartTime) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("%s: Block %q has invalid start time: %s", plan.Date, b.Title, b.PlannedStartTime),
				Date:        plan.Date,
				Items:       []string{b.Title},
			})
		}
		if !isValidTimeFormat(b.PlannedEndTime) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("%s: Block %q has invalid end time: %s", plan.Date, b.Title, b.PlannedEndTime),
				Date:        plan.Date,
				Items:       []string{b.Title},
			})
		}
		if b.PlannedDurationMinutes <= 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDuration,
				Description: fmt.Sprintf("%s: Block %q has non-positive duration: %d", plan.Date, b.Title, b.PlannedDurationMinutes),
				Date:        plan.Date,
				Items:       []string{b.Title},
			})
		}
	}

	result.Conflicts = append(result.Conflicts, checkOverlaps(plan)...)
	result.Conflicts = append(result.Conflicts, checkIndexes(plan)...)
	result.Conflicts = append(result.Conflicts, checkStats(plan)...)

	return result
}

// checkOverlaps reports every pair of overlapping non-terminal blocks.
// O(n²) complexity - acceptable for typical daily plans.
func checkOverlaps(plan models.DayPlan) []Conflict {
	var active []models.Block
	for _, b := range plan.Blocks {
		if !b.Status.Terminal() {
			active = append(active, b)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return timeutil.ParseClock(active[i].PlannedStartTime) < timeutil.ParseClock(active[j].PlannedStartTime)
	})

	var conflicts []Conflict
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			b1, b2 := active[i], active[j]
			s1 := timeutil.ParseClock(b1.PlannedStartTime)
			e1 := s1 + b1.PlannedDurationMinutes
			s2 := timeutil.ParseClock(b2.PlannedStartTime)
			e2 := s2 + b2.PlannedDurationMinutes
			if s1 < e2 && s2 < e1 {
				conflicts = append(conflicts, Conflict{
					Type: ConflictOverlappingBlocks,
					Description: fmt.Sprintf("%s: %s-%s %q overlaps %q",
						plan.Date, b1.PlannedStartTime, b1.PlannedEndTime, b1.Title, b2.Title),
					Date:      plan.Date,
					Items:     []string{b1.Title, b2.Title},
					TimeRange: fmt.Sprintf("%s-%s", b1.PlannedStartTime, b1.PlannedEndTime),
				})
			}
		}
	}
	return conflicts
}

// checkIndexes verifies blocks carry a dense 0..n-1 index sequence in list
// order.
func checkIndexes(plan models.DayPlan) []Conflict {
	for i, b := range plan.Blocks {
		if b.Index != i {
			return []Conflict{{
				Type:        ConflictSparseIndexes,
				Description: fmt.Sprintf("%s: Block %q has index %d at position %d", plan.Date, b.Title, b.Index, i),
				Date:        plan.Date,
				Items:       []string{b.Title},
			}}
		}
	}
	return nil
}

// checkStats recomputes the plan-level totals and flags drift from the stored
// values.
func checkStats(plan models.DayPlan) []Conflict {
	study, brk := 0, 0
	for _, b := range plan.Blocks {
		if b.Type == models.BlockTypeBreak {
			brk += b.PlannedDurationMinutes
		} else {
			study += b.PlannedDurationMinutes
		}
	}

	var conflicts []Conflict
	if study != plan.TotalStudyMinutesPlanned {
		conflicts = append(conflicts, Conflict{
			Type: ConflictStaleStats,
			Description: fmt.Sprintf("%s: Stored study total %d does not match computed %d",
				plan.Date, plan.TotalStudyMinutesPlanned, study),
			Date: plan.Date,
		})
	}
	if brk != plan.TotalBreakMinutes {
		conflicts = append(conflicts, Conflict{
			Type: ConflictStaleStats,
			Description: fmt.Sprintf("%s: Stored break total %d does not match computed %d",
				plan.Date, plan.TotalBreakMinutes, brk),
			Date: plan.Date,
		})
	}
	return conflicts
}

func isValidTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}
