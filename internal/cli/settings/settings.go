package settings

import (
	"fmt"

	"grasspit/internal/cli"
	"grasspit/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	AchievementNotifications *bool   `help:"Enable or disable unlock notifications."`
	CasinoEnabled            *bool   `help:"Enable or disable betting commands."`
	IdleTimeoutSec           *int    `help:"Seconds of silence before a generation is force-ended."`
	StartDebounceMs          *int    `help:"Milliseconds to wait before announcing a detected generation."`
	AIPatterns               *string `help:"Comma-separated terminal name keywords that count as AI activity."`
	CoinsPerMinute           *int    `help:"Coins earned per minute of an active work phase."`
	Intensity                *string `help:"Display flavor: chill, normal, or unhinged."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Achievement Notifications: %v\n", settings.AchievementNotifications)
		fmt.Printf("  Casino Enabled:            %v\n", settings.CasinoEnabled)
		fmt.Printf("  Idle Timeout:              %d sec\n", settings.IdleTimeoutSec)
		fmt.Printf("  Start Debounce:            %d ms\n", settings.StartDebounceMs)
		fmt.Printf("  AI Patterns:               %s\n", settings.AIPatterns)
		fmt.Printf("  Coins Per Minute:          %d\n", settings.CoinsPerMinute)
		fmt.Printf("  Intensity:                 %s\n", settings.Intensity)
		return nil
	}

	updated := false
	if c.AchievementNotifications != nil {
		settings.AchievementNotifications = *c.AchievementNotifications
		updated = true
	}
	if c.CasinoEnabled != nil {
		settings.CasinoEnabled = *c.CasinoEnabled
		updated = true
	}
	if c.IdleTimeoutSec != nil {
		settings.IdleTimeoutSec = *c.IdleTimeoutSec
		updated = true
	}
	if c.StartDebounceMs != nil {
		settings.StartDebounceMs = *c.StartDebounceMs
		updated = true
	}
	if c.AIPatterns != nil {
		settings.AIPatterns = *c.AIPatterns
		updated = true
	}
	if c.CoinsPerMinute != nil {
		settings.CoinsPerMinute = *c.CoinsPerMinute
		updated = true
	}
	if c.Intensity != nil {
		settings.Intensity = *c.Intensity
		updated = true
	}

	if updated {
		if problems := validation.ValidateSettings(settings); len(problems) > 0 {
			for _, p := range problems {
				fmt.Printf("  ❌ %s\n", p)
			}
			return fmt.Errorf("invalid settings")
		}
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
