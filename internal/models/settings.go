package models

// Settings represents application-wide settings
type Settings struct {
	AchievementNotifications bool   `json:"achievement_notifications"` // whether unlocks trigger a tray notification
	CasinoEnabled            bool   `json:"casino_enabled"`            // whether betting commands are accepted
	IdleTimeoutSec           int    `json:"idle_timeout_sec"`          // force-end a generation after this many seconds
	StartDebounceMs          int    `json:"start_debounce_ms"`         // delay before announcing a detected generation
	AIPatterns               string `json:"ai_patterns"`               // comma-separated terminal/process name keywords
	CoinsPerMinute           int    `json:"coins_per_minute"`          // coin-earning rate while a work phase runs
	Intensity                string `json:"intensity"`                 // display flavor: chill, normal, unhinged
}
