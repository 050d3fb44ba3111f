package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/planner"
	"github.com/julianstephens/studylit/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Planner *planner.Service
}

// resolveDate accepts "today", "tomorrow", or a YYYY-MM-DD string.
func resolveDate(date string) (string, error) {
	switch date {
	case "", "today":
		return time.Now().Format(constants.DateFormat), nil
	case "tomorrow":
		return time.Now().AddDate(0, 0, 1).Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD, 'today', or 'tomorrow': %w", err)
	}
	return date, nil
}

// resolveBlockID accepts either a block id or a numeric position within the
// day's sorted block list.
func resolveBlockID(plan *models.DayPlan, ref string) (string, error) {
	if plan == nil {
		return "", fmt.Errorf("no plan found")
	}
	if idx, err := strconv.Atoi(ref); err == nil {
		if idx < 0 || idx >= len(plan.Blocks) {
			return "", fmt.Errorf("block index %d out of range (plan has %d blocks)", idx, len(plan.Blocks))
		}
		return plan.Blocks[idx].ID, nil
	}
	if plan.FindBlock(ref) == nil {
		return "", fmt.Errorf("no block with id %s", ref)
	}
	return ref, nil
}

func (c *Context) loadPlan(date string) (*models.DayPlan, error) {
	plan, err := c.Store.GetDayPlan(date)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("no plan found for %s", date)
	}
	return plan, nil
}
