package cli

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/planner"
)

type StartCmd struct {
	Block string `arg:"" help:"Block index or id."`
	Date  string `help:"Plan date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *StartCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, blockID, err := resolveTarget(ctx, c.Date, c.Block)
	if err != nil {
		return err
	}

	plan, err := ctx.Planner.StartBlock(date, blockID)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("block not found")
	}
	fmt.Printf("Started %q\n", plan.FindBlock(blockID).Title)
	return nil
}

type PauseCmd struct {
	Block  string `arg:"" help:"Block index or id."`
	Date   string `help:"Plan date (YYYY-MM-DD or 'today')." default:"today"`
	Reason string `help:"Why the block is being paused."`
}

func (c *PauseCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, blockID, err := resolveTarget(ctx, c.Date, c.Block)
	if err != nil {
		return err
	}

	paused := models.BlockPaused
	update := planner.BlockUpdate{Status: &paused}
	if c.Reason != "" {
		notes := "Paused: " + c.Reason
		update.ActualNotes = &notes
	}

	plan, err := ctx.Planner.UpdateBlock(date, blockID, update)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("block not found")
	}
	fmt.Printf("Paused %q\n", plan.FindBlock(blockID).Title)
	return nil
}

type InsertCmd struct {
	Title    string `arg:"" help:"Block title."`
	Start    string `help:"Planned start time (HH:MM)." required:""`
	Duration int    `help:"Duration in minutes." required:""`
	Date     string `help:"Plan date (YYYY-MM-DD or 'today')." default:"today"`
	Type     string `help:"Block type (video, revision_fa, anki, qbank, break, other, mixed)." default:"other"`
	Desc     string `help:"Block description."`
}

func (c *InsertCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	plan, err := ctx.Planner.InsertBlockAndShift(planner.InsertRequest{
		Date:            date,
		StartTime:       c.Start,
		DurationMinutes: c.Duration,
		Title:           c.Title,
		Type:            models.BlockType(c.Type),
		Description:     c.Desc,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Inserted %q at %s; plan now has %d blocks\n", c.Title, c.Start, len(plan.Blocks))
	return nil
}

type DeleteCmd struct {
	Block string `arg:"" help:"Block index or id."`
	Date  string `help:"Plan date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, blockID, err := resolveTarget(ctx, c.Date, c.Block)
	if err != nil {
		return err
	}

	plan, err := ctx.Planner.DeleteBlock(date, blockID)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("block not found")
	}
	fmt.Printf("Deleted block; plan now has %d blocks\n", len(plan.Blocks))
	return nil
}

type MoveNextCmd struct {
	Block string `arg:"" help:"Source block index or id."`
	Tasks []int  `help:"Task positions to move (all when omitted)."`
	Date  string `help:"Plan date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *MoveNextCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, blockID, err := resolveTarget(ctx, c.Date, c.Block)
	if err != nil {
		return err
	}

	indexes, err := taskIndexes(ctx, date, blockID, c.Tasks)
	if err != nil {
		return err
	}
	plan, err := ctx.Planner.MoveTasksToNextBlock(date, blockID, indexes)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("nothing moved: block, tasks, or an eligible receiver is missing")
	}
	fmt.Printf("Moved %d task(s) to the next block\n", len(indexes))
	return nil
}

type MoveFutureCmd struct {
	Block string `arg:"" help:"Source block index or id."`
	To    string `help:"Target date (YYYY-MM-DD or 'tomorrow')." required:""`
	Tasks []int  `help:"Task positions to move (all when omitted)."`
	Date  string `help:"Plan date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *MoveFutureCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	date, blockID, err := resolveTarget(ctx, c.Date, c.Block)
	if err != nil {
		return err
	}
	targetDate, err := resolveDate(c.To)
	if err != nil {
		return err
	}

	indexes, err := taskIndexes(ctx, date, blockID, c.Tasks)
	if err != nil {
		return err
	}
	plan, err := ctx.Planner.MoveTasksToFuturePlan(date, blockID, targetDate, indexes)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("nothing moved: block or tasks missing")
	}
	fmt.Printf("Moved %d task(s) to %s\n", len(indexes), targetDate)
	return nil
}

// resolveTarget resolves a date alias and a block reference together.
func resolveTarget(ctx *Context, dateArg, blockRef string) (date, blockID string, err error) {
	date, err = resolveDate(dateArg)
	if err != nil {
		return "", "", err
	}
	plan, err := ctx.loadPlan(date)
	if err != nil {
		return "", "", err
	}
	blockID, err = resolveBlockID(plan, blockRef)
	if err != nil {
		return "", "", err
	}
	return date, blockID, nil
}

// taskIndexes defaults an empty selection to every task on the block.
func taskIndexes(ctx *Context, date, blockID string, selected []int) ([]int, error) {
	if len(selected) > 0 {
		return selected, nil
	}
	plan, err := ctx.loadPlan(date)
	if err != nil {
		return nil, err
	}
	block := plan.FindBlock(blockID)
	if block == nil || len(block.Tasks) == 0 {
		return nil, fmt.Errorf("block has no tasks to move")
	}
	indexes := make([]int, len(block.Tasks))
	for i := range indexes {
		indexes[i] = i
	}
	return indexes, nil
}
