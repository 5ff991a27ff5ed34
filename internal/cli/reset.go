package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ResetCmd struct {
	Currency     bool `help:"Reset the $GRASS ledger to the starting balance."`
	Achievements bool `help:"Lock every achievement again."`
	Stats        bool `help:"Clear daily and all-time session stats."`
	Pomodoro     bool `help:"Clear the lifetime pomodoro counters."`
	All          bool `help:"Reset everything."`
	Yes          bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if c.All {
		c.Currency, c.Achievements, c.Stats, c.Pomodoro = true, true, true, true
	}
	if !c.Currency && !c.Achievements && !c.Stats && !c.Pomodoro {
		return fmt.Errorf("nothing selected: pass --currency, --achievements, --stats, --pomodoro, or --all")
	}

	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Reset selected progress?").
			Description("This cannot be undone. A backup of the database is kept under the config directory.").
			Affirmative("Reset").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	// Snapshot before destroying anything.
	ctx.PerformAutomaticBackup()

	svc, err := ctx.Services()
	if err != nil {
		return err
	}
	if c.Currency {
		svc.Ledger.Reset()
		fmt.Println("✓ Currency reset.")
	}
	if c.Achievements {
		svc.Achievements.Reset()
		fmt.Println("✓ Achievements locked.")
	}
	if c.Stats {
		svc.Sessions.Reset()
		fmt.Println("✓ Session stats cleared.")
	}
	if c.Pomodoro {
		svc.Pomodoro.ResetStats()
		fmt.Println("✓ Pomodoro counters cleared.")
	}
	return nil
}
