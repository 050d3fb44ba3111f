package cli

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/validation"
)

type ValidateCmd struct {
	Date string `arg:"" optional:"" help:"Date to validate (validates every stored plan when omitted)."`
}

func (c *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	validator := validation.New()

	if c.Date != "" {
		date, err := resolveDate(c.Date)
		if err != nil {
			return err
		}
		plan, err := ctx.loadPlan(date)
		if err != nil {
			return err
		}
		result := validator.ValidatePlan(*plan)
		fmt.Print(result.FormatReport())
		if result.HasConflicts() {
			return fmt.Errorf("%d conflict(s) found", len(result.Conflicts))
		}
		return nil
	}

	plans, err := ctx.Store.GetAllDayPlans()
	if err != nil {
		return err
	}
	total := 0
	for _, plan := range plans {
		result := validator.ValidatePlan(plan)
		if result.HasConflicts() {
			fmt.Print(result.FormatReport())
			total += len(result.Conflicts)
		}
	}
	if total > 0 {
		return fmt.Errorf("%d conflict(s) found across %d plan(s)", total, len(plans))
	}
	fmt.Printf("No conflicts detected across %d plan(s).\n", len(plans))
	return nil
}
