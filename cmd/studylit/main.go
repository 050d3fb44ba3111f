package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/errors"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/planner"
	"github.com/julianstephens/studylit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path (.db for SQLite, .json for a JSON store)." type:"path" default:"~/.config/studylit/studylit.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize studylit storage."`
	Import   cli.ImportCmd   `cmd:"" help:"Import a schedule from text."`
	Generate cli.GenerateCmd `cmd:"" help:"Generate blocks from a plan's study inputs."`
	Day      cli.DayCmd      `cmd:"" help:"Show the plan for a day." default:"1"`
	Now      cli.NowCmd      `cmd:"" help:"Show the current block."`
	Start    cli.StartCmd    `cmd:"" help:"Start (or resume) a block."`
	Pause    cli.PauseCmd    `cmd:"" help:"Pause the active block."`
	Finish   cli.FinishCmd   `cmd:"" help:"Finish a block with a reflection."`
	Insert   cli.InsertCmd   `cmd:"" help:"Insert a block, shifting later ones."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete a block."`
	Move     struct {
		Next   cli.MoveNextCmd   `cmd:"" help:"Move tasks to the next block."`
		Future cli.MoveFutureCmd `cmd:"" help:"Move tasks to another day."`
	} `cmd:"" help:"Move tasks between blocks."`
	Migrate  cli.MigrateCmd  `cmd:"" help:"Roll yesterday's unfinished blocks onto today."`
	Validate cli.ValidateCmd `cmd:"" help:"Check plans for scheduling conflicts."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Settings struct {
		Show cli.SettingsShowCmd `cmd:"" help:"Show settings." default:"1"`
		Set  cli.SettingsSetCmd  `cmd:"" help:"Update settings."`
	} `cmd:"" help:"Manage application settings."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("studylit"),
		kong.Description("Study-block day planner with backlog migration"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	store := storage.NewProvider(CLI.Config)
	appCtx := &cli.Context{
		Store:   store,
		Planner: planner.NewService(store),
	}

	err := kctx.Run(appCtx)
	_ = store.Close()
	errors.Fatal(err)
}
