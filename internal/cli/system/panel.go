package system

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"

	"grasspit/internal/activity"
	"grasspit/internal/cli"
	"grasspit/internal/logger"
	"grasspit/internal/models"
	"grasspit/internal/tui"
	"grasspit/internal/utils"
)

type PanelCmd struct{}

// Run launches the distraction panel: the TUI plus the background jobs that
// make up the panel daemon (activity sweep, autosave, wall-clock achievement
// checks).
func (c *PanelCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	svc, err := ctx.Services()
	if err != nil {
		return err
	}
	defer svc.Pomodoro.Close()

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	watcherCfg := activity.DefaultConfig()
	watcherCfg.Patterns = utils.SplitPatterns(settings.AIPatterns)
	watcherCfg.StartDebounce = time.Duration(settings.StartDebounceMs) * time.Millisecond
	watcherCfg.MaxGenerationTime = time.Duration(settings.IdleTimeoutSec) * time.Second
	watcher := activity.NewWatcher(ctx.Bus, watcherCfg)

	// Orchestration: generation events drive the brainrot session, completed
	// work phases and balance changes feed the achievement checks.
	ctx.Bus.OnGenerationStart(func() { svc.Sessions.StartBrainrot() })
	ctx.Bus.OnGenerationEnd(func() { svc.Sessions.EndBrainrot() })
	ctx.Bus.OnWorkComplete(func() {
		svc.Achievements.CheckPomodoroSessions(svc.Pomodoro.State().SessionsCompleted)
	})
	ctx.Bus.OnBalanceChanged(func(balance int) {
		svc.Achievements.CheckBalance(balance)
	})

	jobs := cron.New(cron.WithSeconds())
	if _, err := jobs.AddFunc("*/5 * * * * *", watcher.Sweep); err != nil {
		return fmt.Errorf("failed to schedule activity sweep: %w", err)
	}
	if _, err := jobs.AddFunc("*/30 * * * * *", svc.Sessions.Save); err != nil {
		return fmt.Errorf("failed to schedule autosave: %w", err)
	}
	if _, err := jobs.AddFunc("0 * * * * *", svc.Achievements.CheckClock); err != nil {
		return fmt.Errorf("failed to schedule clock check: %w", err)
	}
	jobs.Start()
	defer jobs.Stop()

	p := tea.NewProgram(tui.NewModel(ctx.Store, svc, watcher), tea.WithAltScreen())

	ctx.Bus.OnAchievementUnlocked(func(a models.Achievement) {
		p.Send(tui.AchievementMsg{Achievement: a})
	})
	ctx.Bus.OnGenerationStart(func() { p.Send(tui.GenerationMsg{Active: true}) })
	ctx.Bus.OnGenerationEnd(func() { p.Send(tui.GenerationMsg{Active: false}) })
	ctx.Bus.OnWorkComplete(func() { p.Send(tui.PhaseCompleteMsg{Work: true}) })
	ctx.Bus.OnBreakComplete(func() { p.Send(tui.PhaseCompleteMsg{Work: false}) })

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("panel crashed: %w", err)
	}

	// Fold any open session into the totals before exit.
	svc.Sessions.EndBrainrot()
	svc.Sessions.Save()
	logger.Info("Panel closed")
	return nil
}
