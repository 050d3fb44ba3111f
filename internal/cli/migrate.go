package cli

import "fmt"

type MigrateCmd struct{}

// Run rolls yesterday's unfinished blocks to the front of today's plan.
// "Today" follows the 04:00 logical day boundary, so running this just after
// midnight still targets the day that is ending.
func (c *MigrateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	plan, err := ctx.Planner.CheckAndMigrateOverdueTasks()
	if err != nil {
		return err
	}
	if plan == nil {
		fmt.Println("Nothing to migrate")
		return nil
	}
	fmt.Printf("Migrated backlog onto %s; plan now has %d blocks starting at %s\n",
		plan.Date, len(plan.Blocks), plan.StartTimePlanned)
	return nil
}
