package constants

const (
	// Feature flags
	SettingAchievementNotifications = "achievement_notifications"
	SettingCasinoEnabled            = "casino_enabled"

	// Activity settings
	SettingIdleTimeoutSec  = "idle_timeout_sec"
	SettingStartDebounceMs = "start_debounce_ms"
	SettingAIPatterns      = "ai_patterns"

	// Economy settings
	SettingCoinsPerMinute = "coins_per_minute"

	// Display settings
	SettingIntensity = "intensity"
)

const (
	DefaultAchievementNotifications = true
	DefaultCasinoEnabled            = true
	DefaultIdleTimeoutSec           = 300
	DefaultStartDebounceMs          = 2000
	DefaultAIPatterns               = "claude,cursor,copilot,ai,agent"
	DefaultCoinsPerMinute           = 10
	DefaultIntensity                = "unhinged"
)
