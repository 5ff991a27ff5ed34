// Package games holds the commands a game host uses to report outcomes. The
// games themselves render elsewhere; only their results flow through here.
package games

import (
	"fmt"

	"grasspit/internal/cli"
	"grasspit/internal/constants"
)

func parseGame(name string) (constants.Game, error) {
	for _, g := range constants.AllGames() {
		if string(g) == name {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown game %q (want one of %v)", name, constants.AllGames())
}

type GamePlayedCmd struct {
	Game string `arg:"" help:"Game that was started (snake, flappy, plinko, slots)."`
}

func (c *GamePlayedCmd) Run(ctx *cli.Context) error {
	game, err := parseGame(c.Game)
	if err != nil {
		return err
	}
	svc, err := ctx.Services()
	if err != nil {
		return err
	}
	svc.Sessions.RecordGamePlayed(game)
	fmt.Printf("Recorded a round of %s.\n", game)
	return nil
}

type GameScoreCmd struct {
	Game  string `arg:"" help:"Game that finished."`
	Score int    `arg:"" help:"Final score."`
}

func (c *GameScoreCmd) Run(ctx *cli.Context) error {
	game, err := parseGame(c.Game)
	if err != nil {
		return err
	}
	if c.Score < 0 {
		return fmt.Errorf("score cannot be negative")
	}
	svc, err := ctx.Services()
	if err != nil {
		return err
	}
	svc.Sessions.RecordGameScore(game, c.Score)

	stats := svc.Sessions.Stats()
	if stats.AllTime.GameHighScores[game] == c.Score {
		fmt.Printf("New %s high score: %d!\n", game, c.Score)
	} else {
		fmt.Printf("Recorded %s score %d (best: %d).\n", game, c.Score, stats.AllTime.GameHighScores[game])
	}
	return nil
}
