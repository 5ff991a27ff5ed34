package cli

import (
	"fmt"

	"grasspit/internal/utils"
)

type PomoCmd struct {
	ResetStats bool `help:"Clear the lifetime pomodoro counters."`
}

func (c *PomoCmd) Run(ctx *Context) error {
	svc, err := ctx.Services()
	if err != nil {
		return err
	}

	if c.ResetStats {
		svc.Pomodoro.ResetStats()
		fmt.Println("Pomodoro stats cleared.")
		return nil
	}

	state := svc.Pomodoro.State()
	fmt.Println("Pomodoro")
	fmt.Printf("  Sessions completed: %d\n", state.SessionsCompleted)
	fmt.Printf("  Total work time:    %s\n", utils.FormatDurationMs(int64(state.TotalWorkTimeSec)*1000))
	fmt.Printf("  Total break time:   %s\n", utils.FormatDurationMs(int64(state.TotalBreakTimeSec)*1000))
	fmt.Printf("  Next phase:         %s (%s)\n", state.Mode, utils.FormatClock(state.TimeRemainingSec))
	return nil
}

