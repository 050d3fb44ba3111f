package cli

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/timeutil"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	fmt.Printf("day-start:          %s\n", settings.DayStart)
	fmt.Printf("day-end:            %s\n", settings.DayEnd)
	fmt.Printf("default-block-min:  %d\n", settings.DefaultBlockMin)
	fmt.Printf("timezone:           %s\n", settings.Timezone)
	return nil
}

type SettingsSetCmd struct {
	DayStart        string `help:"Day start time (HH:MM)."`
	DayEnd          string `help:"Day end time (HH:MM)."`
	DefaultBlockMin int    `help:"Default block duration in minutes."`
	Timezone        string `help:"IANA timezone name."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.DayStart != "" {
		if !validClock(c.DayStart) {
			return fmt.Errorf("invalid day start %q, use HH:MM", c.DayStart)
		}
		settings.DayStart = c.DayStart
	}
	if c.DayEnd != "" {
		if !validClock(c.DayEnd) {
			return fmt.Errorf("invalid day end %q, use HH:MM", c.DayEnd)
		}
		settings.DayEnd = c.DayEnd
	}
	if c.DefaultBlockMin > 0 {
		settings.DefaultBlockMin = c.DefaultBlockMin
	}
	if c.Timezone != "" {
		settings.Timezone = c.Timezone
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Println("Settings updated")
	return nil
}

// validClock checks HH:MM without the parser's zero fallback masking typos.
func validClock(s string) bool {
	return s == "00:00" || timeutil.ParseClock(s) != 0
}
