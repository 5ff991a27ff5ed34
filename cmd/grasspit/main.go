package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"grasspit/internal/cli"
	"grasspit/internal/cli/backups"
	"grasspit/internal/cli/casino"
	"grasspit/internal/cli/games"
	"grasspit/internal/cli/settings"
	"grasspit/internal/cli/system"
	"grasspit/internal/constants"
	"grasspit/internal/errors"
	"grasspit/internal/events"
	"grasspit/internal/logger"
	"grasspit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"string" default:"~/.config/grasspit/grasspit.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize grasspit storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Panel  system.PanelCmd  `cmd:"" help:"Launch the interactive distraction panel." default:"1"`

	Status       cli.StatusCmd       `cmd:"" help:"Show a one-screen summary of today."`
	Stats        cli.StatsCmd        `cmd:"" help:"Show detailed session statistics."`
	Achievements cli.AchievementsCmd `cmd:"" help:"List achievements."`
	Pomo         cli.PomoCmd         `cmd:"" help:"Show or reset pomodoro stats."`
	Reset        cli.ResetCmd        `cmd:"" help:"Reset progress."`

	Game struct {
		Played games.GamePlayedCmd `cmd:"" help:"Record that a game round started."`
		Score  games.GameScoreCmd  `cmd:"" help:"Record a finished game's score."`
	} `cmd:"" help:"Record game outcomes."`

	Casino struct {
		Bet     casino.BetCmd     `cmd:"" help:"Place a wager."`
		Payout  casino.PayoutCmd  `cmd:"" help:"Record a win."`
		Loss    casino.LossCmd    `cmd:"" help:"Record a settled loss."`
		Balance casino.BalanceCmd `cmd:"" help:"Show the $GRASS ledger." default:"1"`
	} `cmd:"" help:"Settle casino bets."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`

	Settings   settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	TraySecret system.TraySecretCmd `cmd:"" name:"tray-secret" help:"Manage the tray helper's webhook secret."`
	Notify     system.NotifyCmd     `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("grasspit"),
		kong.Description("Productivity gremlin: earn $GRASS while the AI talks, lose it at the tables"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := filepath.Dir(storage.ExpandPath(CLI.Config))
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := storage.NewSQLiteStore(CLI.Config)

	appCtx := &cli.Context{
		Store: store,
		Bus:   events.NewBus(),
	}

	// Load the store before running the command. Init and doctor handle their
	// own loading, and the panel loads after its pre-flight backup.
	if ctx.Selected() != nil {
		switch ctx.Selected().Name {
		case "init", "doctor", "panel", "tray-secret":
		default:
			errors.Fatal(store.Load())
		}
	}

	errors.Fatal(ctx.Run(appCtx))
}
