package constants

import "time"

// Game identifies one of the hosted minigames. The games themselves are
// rendered by the host; the core only tracks their outcomes.
type Game string

// Rarity represents the flavor tier of an achievement.
type Rarity string

// DegeneracyLevel classifies cumulative brainrot time.
type DegeneracyLevel string

const (
	AppName           = "grasspit"
	DefaultConfigPath = "~/.config/grasspit/grasspit.db"
	Version           = "v0.3.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "grasspit-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "grasspit-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.grasspit.tray"
	TrayExecutablePrefix   = "grasspit-tray"
	TraySecretKeyringUser  = "tray-secret"

	// State store keys (the host key-value slice each manager owns)
	StateKeyAchievements   = "achievements"
	StateKeyCurrency       = "currency"
	StateKeyStats          = "stats"
	StateKeyLastActiveDate = "lastActiveDate"
	StateKeyPomodoro       = "pomodoro-state"

	// Currency constants
	StartingBalance = 100

	// Game constants
	GameSnake  Game = "snake"
	GameFlappy Game = "flappy"
	GamePlinko Game = "plinko"
	GameSlots  Game = "slots"

	// Rarity tiers
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
	RarityCursed    Rarity = "cursed"

	// Degeneracy levels, lowest to highest
	DegeneracyTouchingGrass DegeneracyLevel = "touching-grass"
	DegeneracyCasual        DegeneracyLevel = "casual"
	DegeneracyDegenerate    DegeneracyLevel = "degenerate"
	DegeneracyTerminal      DegeneracyLevel = "terminal"

	// Pomodoro mode durations in seconds
	DefaultWorkDurationSec      = 25 * 60
	DefaultBreakDurationSec     = 5 * 60
	DefaultLongBreakDurationSec = 15 * 60
	SessionsUntilLongBreak      = 4

	// Activity heuristic cadences
	StartDebounce      = 2 * time.Second
	ActivitySweepEvery = 5 * time.Second
	MaxGenerationTime  = 5 * time.Minute

	// Background cadences for the panel daemon
	AutosaveEvery   = 30 * time.Second
	ClockCheckEvery = 60 * time.Second

	// Session stat bounds
	RecentGameTimesMax  = 10
	RageQuitWindowMs    = 120_000
	SpeedDeathCeilingMs = 3_000
)

// AllGames returns the hosted games in display order.
func AllGames() []Game {
	return []Game{GameSnake, GameFlappy, GamePlinko, GameSlots}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityLegendary:
		return "Legendary"
	case RarityCursed:
		return "Cursed"
	default:
		return string(r)
	}
}
