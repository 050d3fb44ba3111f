package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timeutil"
)

type NowCmd struct{}

// Run shows the block covering the current wall-clock time, preferring a
// block that is actually in progress.
func (c *NowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date := time.Now().Format(constants.DateFormat)
	plan, err := ctx.loadPlan(date)
	if err != nil {
		return err
	}

	for _, b := range plan.Blocks {
		if b.Status == models.BlockInProgress {
			fmt.Printf("In progress: %s (%s-%s)\n", b.Title, b.PlannedStartTime, b.PlannedEndTime)
			return nil
		}
	}

	nowMin := timeutil.ParseClock(timeutil.ClockNow(time.Now()))
	for _, b := range plan.Blocks {
		start := timeutil.ParseClock(b.PlannedStartTime)
		if nowMin >= start && nowMin < start+b.PlannedDurationMinutes && !b.Status.Terminal() {
			fmt.Printf("Scheduled now: %s (%s-%s) [%s]\n", b.Title, b.PlannedStartTime, b.PlannedEndTime, b.Status)
			return nil
		}
	}

	fmt.Println("Nothing scheduled right now")
	return nil
}
