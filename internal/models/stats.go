package models

import "grasspit/internal/constants"

// DailyStats are the counters that reset on each calendar-day rollover.
type DailyStats struct {
	BrainrotTimeMs        int64 `json:"brainrot_time_ms"`
	GamesPlayed           int   `json:"games_played"`
	AchievementsUnlocked  int   `json:"achievements_unlocked"`
	AIGenerationsDetected int   `json:"ai_generations_detected"`
}

// AllTimeStats accumulate for the lifetime of the install.
type AllTimeStats struct {
	TotalBrainrotTimeMs    int64                  `json:"total_brainrot_time_ms"`
	TotalGamesPlayed       int                    `json:"total_games_played"`
	GameHighScores         map[constants.Game]int `json:"game_high_scores"`
	GamesPlayedByType      map[constants.Game]int `json:"games_played_by_type"`
	LongestBrainrotMs      int64                  `json:"longest_brainrot_ms"`
	DaysActive             int                    `json:"days_active"`
	RecentGameTimesMs      []int64                `json:"recent_game_times_ms"` // FIFO, bounded
}

// SessionStats is the persisted record for usage tracking.
type SessionStats struct {
	Today           DailyStats                `json:"today"`
	AllTime         AllTimeStats              `json:"all_time"`
	DegeneracyLevel constants.DegeneracyLevel `json:"degeneracy_level"`

	// PendingGameStartMs is the unix-millis timestamp of the last game start
	// that has not yet been matched by a score. It is persisted because the
	// start and the score usually arrive in separate CLI invocations.
	PendingGameStartMs int64 `json:"pending_game_start_ms,omitempty"`
}

// DefaultSessionStats returns a zeroed stats record with maps allocated.
func DefaultSessionStats() SessionStats {
	return SessionStats{
		AllTime: AllTimeStats{
			GameHighScores:    make(map[constants.Game]int),
			GamesPlayedByType: make(map[constants.Game]int),
		},
		DegeneracyLevel: constants.DegeneracyTouchingGrass,
	}
}

// EnsureMaps allocates the score maps after a JSON round trip that may have
// left them nil.
func (s *SessionStats) EnsureMaps() {
	if s.AllTime.GameHighScores == nil {
		s.AllTime.GameHighScores = make(map[constants.Game]int)
	}
	if s.AllTime.GamesPlayedByType == nil {
		s.AllTime.GamesPlayedByType = make(map[constants.Game]int)
	}
}
