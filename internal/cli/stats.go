package cli

import (
	"fmt"

	"grasspit/internal/constants"
	"grasspit/internal/utils"
)

type StatsCmd struct {
	Sessions int `help:"Number of recent brainrot sessions to show." default:"5"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	svc, err := ctx.Services()
	if err != nil {
		return err
	}
	stats := svc.Sessions.Stats()

	fmt.Println("Today:")
	fmt.Printf("  Brainrot time:      %s\n", utils.FormatDurationMs(stats.Today.BrainrotTimeMs))
	fmt.Printf("  Games played:       %d\n", stats.Today.GamesPlayed)
	fmt.Printf("  Achievements:       %d\n", stats.Today.AchievementsUnlocked)
	fmt.Printf("  AI generations:     %d\n", stats.Today.AIGenerationsDetected)

	fmt.Println("\nAll time:")
	fmt.Printf("  Brainrot time:      %s\n", utils.FormatDurationMs(stats.AllTime.TotalBrainrotTimeMs))
	fmt.Printf("  Longest session:    %s\n", utils.FormatDurationMs(stats.AllTime.LongestBrainrotMs))
	fmt.Printf("  Games played:       %d\n", stats.AllTime.TotalGamesPlayed)
	fmt.Printf("  Days active:        %d\n", stats.AllTime.DaysActive)
	fmt.Printf("  Degeneracy:         %s (%d%%)\n", stats.DegeneracyLevel, svc.Sessions.DegeneracyPercent())

	if len(stats.AllTime.GameHighScores) > 0 {
		fmt.Println("\nHigh scores:")
		for _, game := range constants.AllGames() {
			if score, ok := stats.AllTime.GameHighScores[game]; ok {
				fmt.Printf("  %-8s %d (played %d)\n", game, score, stats.AllTime.GamesPlayedByType[game])
			}
		}
	}

	sessions, err := ctx.Store.GetRecentBrainrotSessions(c.Sessions)
	if err == nil && len(sessions) > 0 {
		fmt.Println("\nRecent sessions:")
		for _, s := range sessions {
			fmt.Printf("  %s  %s\n", s.StartedAt.Local().Format("2006-01-02 15:04"), utils.FormatDurationMs(s.DurationMs))
		}
	}

	return nil
}
