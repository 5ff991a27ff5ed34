package storage

import "grasspit/internal/models"

// Provider is the host key-value store plus the settings surface. Each manager
// exclusively owns its persisted slice; writes are best-effort and callers are
// expected to log and continue on failure.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Currency slice
	GetCurrencyStats() (models.CurrencyStats, error)
	SaveCurrencyStats(models.CurrencyStats) error

	// Achievement slice (ordered list of unlocked IDs)
	GetUnlockedAchievements() ([]string, error)
	SaveUnlockedAchievements([]string) error

	// Session stats slice
	GetSessionStats() (models.SessionStats, error)
	SaveSessionStats(models.SessionStats) error
	GetLastActiveDate() (string, error)
	SaveLastActiveDate(string) error

	// Pomodoro slice (counters only, never the live countdown)
	GetPomodoroCounters() (models.PomodoroCounters, error)
	SavePomodoroCounters(models.PomodoroCounters) error

	// Brainrot session log
	AddBrainrotSession(models.BrainrotSession) error
	GetRecentBrainrotSessions(limit int) ([]models.BrainrotSession, error)

	// Utils
	GetConfigPath() string
}
