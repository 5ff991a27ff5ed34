package models

import (
	"fmt"

	"grasspit/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Missing keys fall back to the defaults; present keys win even when they
// carry a zero value.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := DefaultSettings()

	for key, value := range data {
		switch key {
		case constants.SettingAchievementNotifications:
			settings.AchievementNotifications = value == "true"
		case constants.SettingCasinoEnabled:
			settings.CasinoEnabled = value == "true"
		case constants.SettingIdleTimeoutSec:
			if _, err := fmt.Sscanf(value, "%d", &settings.IdleTimeoutSec); err != nil {
				return Settings{}, fmt.Errorf("parsing idle_timeout_sec: %w", err)
			}
		case constants.SettingStartDebounceMs:
			if _, err := fmt.Sscanf(value, "%d", &settings.StartDebounceMs); err != nil {
				return Settings{}, fmt.Errorf("parsing start_debounce_ms: %w", err)
			}
		case constants.SettingAIPatterns:
			settings.AIPatterns = value
		case constants.SettingCoinsPerMinute:
			if _, err := fmt.Sscanf(value, "%d", &settings.CoinsPerMinute); err != nil {
				return Settings{}, fmt.Errorf("parsing coins_per_minute: %w", err)
			}
		case constants.SettingIntensity:
			settings.Intensity = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingAchievementNotifications: fmt.Sprintf("%v", settings.AchievementNotifications),
		constants.SettingCasinoEnabled:            fmt.Sprintf("%v", settings.CasinoEnabled),
		constants.SettingIdleTimeoutSec:           fmt.Sprintf("%d", settings.IdleTimeoutSec),
		constants.SettingStartDebounceMs:          fmt.Sprintf("%d", settings.StartDebounceMs),
		constants.SettingAIPatterns:               settings.AIPatterns,
		constants.SettingCoinsPerMinute:           fmt.Sprintf("%d", settings.CoinsPerMinute),
		constants.SettingIntensity:                settings.Intensity,
	}
}

// DefaultSettings returns the settings record used on first run.
func DefaultSettings() Settings {
	return Settings{
		AchievementNotifications: constants.DefaultAchievementNotifications,
		CasinoEnabled:            constants.DefaultCasinoEnabled,
		IdleTimeoutSec:           constants.DefaultIdleTimeoutSec,
		StartDebounceMs:          constants.DefaultStartDebounceMs,
		AIPatterns:               constants.DefaultAIPatterns,
		CoinsPerMinute:           constants.DefaultCoinsPerMinute,
		Intensity:                constants.DefaultIntensity,
	}
}
