package validation

import (
	"testing"

	"grasspit/internal/models"
)

func TestValidateSettingsDefaults(t *testing.T) {
	problems := ValidateSettings(models.DefaultSettings())
	if len(problems) != 0 {
		t.Errorf("ValidateSettings(defaults) = %v, want no problems", problems)
	}
}

func TestValidateSettingsCatchesEachField(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Settings)
		wantField string
	}{
		{"zero idle timeout", func(s *models.Settings) { s.IdleTimeoutSec = 0 }, "idle_timeout_sec"},
		{"huge idle timeout", func(s *models.Settings) { s.IdleTimeoutSec = 7200 }, "idle_timeout_sec"},
		{"negative debounce", func(s *models.Settings) { s.StartDebounceMs = -1 }, "start_debounce_ms"},
		{"huge debounce", func(s *models.Settings) { s.StartDebounceMs = 120_000 }, "start_debounce_ms"},
		{"empty patterns", func(s *models.Settings) { s.AIPatterns = " , ," }, "ai_patterns"},
		{"negative rate", func(s *models.Settings) { s.CoinsPerMinute = -5 }, "coins_per_minute"},
		{"bad intensity", func(s *models.Settings) { s.Intensity = "feral" }, "intensity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := models.DefaultSettings()
			tt.mutate(&settings)

			problems := ValidateSettings(settings)
			if len(problems) != 1 {
				t.Fatalf("ValidateSettings() = %v, want exactly 1 problem", problems)
			}
			if problems[0].Field != tt.wantField {
				t.Errorf("problem field = %q, want %q", problems[0].Field, tt.wantField)
			}
		})
	}
}
