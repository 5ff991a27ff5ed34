package cli

import (
	"grasspit/internal/achievements"
	"grasspit/internal/backup"
	"grasspit/internal/economy"
	"grasspit/internal/events"
	"grasspit/internal/logger"
	"grasspit/internal/models"
	"grasspit/internal/notifier"
	"grasspit/internal/pomodoro"
	"grasspit/internal/session"
	"grasspit/internal/storage"
)

type Context struct {
	Store storage.Provider
	Bus   *events.Bus
}

// Services bundles the constructed managers. They are built once per command
// invocation, after the store has loaded, so initialization order is a
// construction-time concern rather than a runtime check.
type Services struct {
	Ledger       *economy.Ledger
	Achievements *achievements.Registry
	Sessions     *session.Tracker
	Pomodoro     *pomodoro.Timer
}

// Services constructs the managers against the loaded store and wires the
// cross-cutting subscriptions.
func (c *Context) Services() (*Services, error) {
	reg, err := achievements.NewRegistry(c.Store, c.Bus)
	if err != nil {
		return nil, err
	}
	reg.SetNotifier(notifier.New(), func() bool {
		settings, err := c.Store.GetSettings()
		if err != nil {
			return false
		}
		return settings.AchievementNotifications
	})

	ledger, err := economy.NewLedger(c.Store, c.Bus)
	if err != nil {
		return nil, err
	}

	tracker, err := session.NewTracker(c.Store, reg)
	if err != nil {
		return nil, err
	}
	c.Bus.OnAchievementUnlocked(func(_ models.Achievement) {
		tracker.NoteAchievementUnlocked()
	})

	timer, err := pomodoro.New(c.Store, c.Bus, pomodoro.DefaultConfig())
	if err != nil {
		return nil, err
	}

	return &Services{
		Ledger:       ledger,
		Achievements: reg,
		Sessions:     tracker,
		Pomodoro:     timer,
	}, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
