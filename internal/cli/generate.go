package cli

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/generator"
	"github.com/julianstephens/studylit/internal/planner"
)

type GenerateCmd struct {
	Date     string `arg:"" help:"Date to generate blocks for (YYYY-MM-DD or 'today')." default:"today"`
	BlockMin int    `help:"Block duration in minutes (0 uses the configured default)."`
	Force    bool   `help:"Regenerate even if the plan already has blocks."`
}

// Run expands a plan's high-level inputs (videos, FA pages, practice targets,
// breaks) into scheduled blocks.
func (c *GenerateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	plan, err := ctx.loadPlan(date)
	if err != nil {
		return err
	}
	if len(plan.Blocks) > 0 && !c.Force {
		return fmt.Errorf("plan for %s already has %d blocks (use --force to regenerate)", date, len(plan.Blocks))
	}

	blockMin := c.BlockMin
	if blockMin <= 0 {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		blockMin = settings.DefaultBlockMin
	}
	if plan.StartTimePlanned == "" {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		plan.StartTimePlanned = settings.DayStart
	}

	plan.Blocks = generator.Generate(*plan, blockMin)
	planner.Recalculate(plan)

	if err := ctx.Store.SaveDayPlan(*plan); err != nil {
		return err
	}
	fmt.Printf("Generated %d blocks for %s (%dm study, %dm break)\n",
		len(plan.Blocks), date, plan.TotalStudyMinutesPlanned, plan.TotalBreakMinutes)
	return nil
}
