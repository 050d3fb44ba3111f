package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/studylit/internal/parser"
)

type ImportCmd struct {
	File          string `arg:"" optional:"" help:"Schedule text file to import (reads stdin when omitted)." type:"existingfile"`
	ReferenceDate string `help:"Date that DAY=1 resolves to (YYYY-MM-DD)." default:"today"`
	DryRun        bool   `help:"Parse and print without saving."`
}

// Run parses schedule text (structured or legacy grammar) into day plans and
// persists them. This is the seam where a chat assistant's schedule output
// enters the store.
func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	refDate, err := resolveDate(c.ReferenceDate)
	if err != nil {
		return err
	}

	var data []byte
	if c.File != "" {
		data, err = os.ReadFile(c.File)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read schedule text: %w", err)
	}

	plans := parser.ParseSchedule(string(data), refDate)
	if len(plans) == 0 {
		return fmt.Errorf("no schedule lines recognized")
	}

	for _, plan := range plans {
		fmt.Printf("%s: %d blocks, %dm study, %dm break\n",
			plan.Date, len(plan.Blocks), plan.TotalStudyMinutesPlanned, plan.TotalBreakMinutes)
		if c.DryRun {
			continue
		}
		if err := ctx.Store.SaveDayPlan(plan); err != nil {
			return err
		}
	}
	if c.DryRun {
		fmt.Println("Dry run, nothing saved")
	} else {
		fmt.Printf("Imported %d plan(s)\n", len(plans))
	}
	return nil
}
