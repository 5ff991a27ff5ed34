package cli

import (
	"fmt"

	"grasspit/internal/utils"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	svc, err := ctx.Services()
	if err != nil {
		return err
	}

	currency := svc.Ledger.Stats()
	stats := svc.Sessions.Stats()
	unlocked, total := svc.Achievements.Progress()
	pomo := svc.Pomodoro.State()

	fmt.Printf("$GRASS balance:    %d\n", currency.Balance)
	fmt.Printf("Degeneracy:        %s (%d%%)\n", stats.DegeneracyLevel, svc.Sessions.DegeneracyPercent())
	fmt.Printf("Achievements:      %d/%d\n", unlocked, total)
	fmt.Printf("Pomodoros done:    %d\n", pomo.SessionsCompleted)
	fmt.Printf("Brainrot today:    %s\n", utils.FormatDurationMs(stats.Today.BrainrotTimeMs))
	fmt.Printf("Brainrot all-time: %s\n", utils.FormatDurationMs(stats.AllTime.TotalBrainrotTimeMs))
	fmt.Printf("Days active:       %d\n", stats.AllTime.DaysActive)
	return nil
}

