// Package validation checks user-editable settings for values that would
// misconfigure the activity heuristic or the economy.
package validation

import (
	"fmt"

	"grasspit/internal/models"
	"grasspit/internal/utils"
)

// Problem describes one invalid setting.
type Problem struct {
	Field   string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Field, p.Message)
}

const (
	maxIdleTimeoutSec  = 3600
	maxStartDebounceMs = 60_000
	maxCoinsPerMinute  = 1000
)

// ValidateSettings returns every problem found, empty when the settings are
// usable.
func ValidateSettings(s models.Settings) []Problem {
	var problems []Problem

	if s.IdleTimeoutSec <= 0 {
		problems = append(problems, Problem{"idle_timeout_sec", "must be positive"})
	} else if s.IdleTimeoutSec > maxIdleTimeoutSec {
		problems = append(problems, Problem{"idle_timeout_sec", fmt.Sprintf("must be at most %d", maxIdleTimeoutSec)})
	}

	if s.StartDebounceMs < 0 {
		problems = append(problems, Problem{"start_debounce_ms", "cannot be negative"})
	} else if s.StartDebounceMs > maxStartDebounceMs {
		problems = append(problems, Problem{"start_debounce_ms", fmt.Sprintf("must be at most %d", maxStartDebounceMs)})
	}

	if len(utils.SplitPatterns(s.AIPatterns)) == 0 {
		problems = append(problems, Problem{"ai_patterns", "needs at least one keyword"})
	}

	if s.CoinsPerMinute < 0 {
		problems = append(problems, Problem{"coins_per_minute", "cannot be negative"})
	} else if s.CoinsPerMinute > maxCoinsPerMinute {
		problems = append(problems, Problem{"coins_per_minute", fmt.Sprintf("must be at most %d", maxCoinsPerMinute)})
	}

	switch s.Intensity {
	case "chill", "normal", "unhinged":
	default:
		problems = append(problems, Problem{"intensity", "must be chill, normal, or unhinged"})
	}

	return problems
}
