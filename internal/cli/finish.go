package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/planner"
)

type FinishCmd struct {
	Block  string `arg:"" help:"Block index or id."`
	Date   string `help:"Plan date (YYYY-MM-DD or 'today')." default:"today"`
	Status string `help:"Completion status (completed, partial, not_done). Prompts when omitted." enum:"completed,partial,not_done," default:""`
	Notes  string `help:"Reflection notes."`
	Pages  []int  `help:"Pages actually covered."`
	Carry  []int  `help:"Pages to carry forward."`
	EndAt  string `help:"Override the end time (HH:MM)."`
}

func (c *FinishCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, blockID, err := resolveTarget(ctx, c.Date, c.Block)
	if err != nil {
		return err
	}

	status := c.Status
	notes := c.Notes
	if status == "" {
		if err := reflectionForm(&status, &notes); err != nil {
			return err
		}
	}

	plan, err := ctx.Planner.FinishBlock(date, blockID, planner.Reflection{
		CompletionStatus:   models.CompletionStatus(status),
		ActualPagesCovered: c.Pages,
		CarryForwardPages:  c.Carry,
		ActualNotes:        notes,
	}, c.EndAt)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("block not found")
	}

	b := plan.FindBlock(blockID)
	fmt.Printf("Finished %q: %dm actual across %d segment(s)\n",
		b.Title, b.ActualDurationMinutes, len(b.Segments))
	return nil
}

// reflectionForm collects the post-completion reflection interactively.
func reflectionForm(status, notes *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How did it go?").
				Options(
					huh.NewOption("Completed", string(models.CompletionCompleted)),
					huh.NewOption("Partial", string(models.CompletionPartial)),
					huh.NewOption("Not done", string(models.CompletionNotDone)),
				).
				Value(status),
			huh.NewInput().
				Title("Notes").
				Placeholder("anything worth remembering").
				Value(notes),
		),
	).Run()
}
