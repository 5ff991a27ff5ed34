package achievements

import (
	"time"

	"grasspit/internal/constants"
)

// The batch checks below translate metrics pushed in by the orchestrator into
// unlock attempts. Cross-manager values (balance, lifetime lost) arrive as
// arguments; the registry never reaches back into another manager.

var snakeThresholds = map[int]string{100: "snake-100", 500: "snake-500", 1000: "snake-1000"}
var flappyThresholds = map[int]string{10: "flappy-10", 50: "flappy-50", 100: "flappy-100"}

// CheckGameScore evaluates the per-game score thresholds.
func (r *Registry) CheckGameScore(game constants.Game, score int) {
	var thresholds map[int]string
	switch game {
	case constants.GameSnake:
		thresholds = snakeThresholds
	case constants.GameFlappy:
		thresholds = flappyThresholds
	default:
		return
	}
	for threshold, id := range thresholds {
		if score >= threshold {
			r.Check(id)
		}
	}
}

// CheckGamesPlayed evaluates total play volume and the all-games predicate.
func (r *Registry) CheckGamesPlayed(total int, byType map[constants.Game]int) {
	if total >= 10 {
		r.Check("games-10")
	}
	if total >= 100 {
		r.Check("games-100")
	}
	playedAll := true
	for _, g := range constants.AllGames() {
		if byType[g] == 0 {
			playedAll = false
			break
		}
	}
	if playedAll {
		r.Check("jack-of-all-trades")
	}
}

// CheckGameTiming evaluates the cursed speed checks. durationMs is how long
// the finished game lasted; recentMs is the bounded history of recent game
// durations, newest last.
func (r *Registry) CheckGameTiming(durationMs int64, recentMs []int64) {
	if durationMs > 0 && durationMs <= constants.SpeedDeathCeilingMs {
		r.Check("speed-death")
	}
	if len(recentMs) >= 5 {
		var sum int64
		for _, ms := range recentMs[len(recentMs)-5:] {
			sum += ms
		}
		if sum < constants.RageQuitWindowMs {
			r.Check("rage-quit")
		}
	}
}

// CheckPomodoroSessions evaluates completed-work-session milestones.
func (r *Registry) CheckPomodoroSessions(completed int) {
	if completed >= 1 {
		r.Check("first-pomodoro")
	}
	if completed >= 5 {
		r.Check("pomodoro-5")
	}
	if completed >= 25 {
		r.Check("pomodoro-25")
	}
}

// CheckBrainrotDuration evaluates the single-session brainrot thresholds.
// sessionMs is the current uninterrupted session's accumulated duration, not
// the lifetime total.
func (r *Registry) CheckBrainrotDuration(sessionMs int64) {
	if sessionMs >= time.Hour.Milliseconds() {
		r.Check("hour-of-rot")
	}
	if sessionMs >= (24 * time.Hour).Milliseconds() {
		r.Check("day-of-rot")
	}
}

// CheckFirstBrainrot unlocks the starter achievement on the first detected
// generation.
func (r *Registry) CheckFirstBrainrot() {
	r.Check("first-brainrot")
}

// CheckClock evaluates the wall-clock predicates against the injected time
// source.
func (r *Registry) CheckClock() {
	now := r.now()
	hour := now.Hour()
	if hour >= 2 && hour < 5 {
		r.Check("midnight-coder")
	}
	if now.Weekday() == time.Monday && hour < 9 {
		r.Check("monday-morning")
	}
	if now.Weekday() == time.Friday && hour >= 16 {
		r.Check("friday-afternoon")
	}
}

// CheckBet evaluates a successfully placed bet.
func (r *Registry) CheckBet(amount int) {
	r.Check("first-gamble")
	if amount >= 1000 {
		r.Check("high-roller")
	}
}

// CheckPayout evaluates a single casino payout.
func (r *Registry) CheckPayout(amount int) {
	if amount >= 500 {
		r.Check("jackpot")
	}
}

// CheckBalance evaluates the whale/broke predicates against the current
// balance, pushed in by the orchestrator after a balance change.
func (r *Registry) CheckBalance(balance int) {
	if balance >= 10000 {
		r.Check("whale")
	}
	if balance == 0 {
		r.Check("broke")
	}
}

// CheckLifetimeLost evaluates the cumulative-loss predicate.
func (r *Registry) CheckLifetimeLost(total int) {
	if total >= 1000 {
		r.Check("house-always-wins")
	}
}

// CheckBlackjackWins evaluates the blackjack milestone.
func (r *Registry) CheckBlackjackWins(count int) {
	if count >= 10 {
		r.Check("blackjack-dealer")
	}
}

// CheckDaysActive evaluates the dedication streaks.
func (r *Registry) CheckDaysActive(days int) {
	if days >= 7 {
		r.Check("week-streak")
	}
	if days >= 30 {
		r.Check("month-streak")
	}
}

// CheckDegeneracy evaluates the terminal-degeneracy predicate.
func (r *Registry) CheckDegeneracy(level constants.DegeneracyLevel) {
	if level == constants.DegeneracyTerminal {
		r.Check("terminally-online")
	}
}
