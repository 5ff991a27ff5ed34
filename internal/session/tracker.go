// Package session tracks daily and all-time usage counters along with the
// degeneracy classification derived from them.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"grasspit/internal/achievements"
	"grasspit/internal/constants"
	"grasspit/internal/logger"
	"grasspit/internal/models"
	"grasspit/internal/storage"
	"grasspit/internal/utils"
)

type Tracker struct {
	mu    sync.Mutex
	store storage.Provider
	reg   *achievements.Registry
	stats models.SessionStats

	lastActiveDate string

	// Live markers, never persisted.
	sessionStart     time.Time // zero when no brainrot session is running
	sessionID        string
	currentSessionMs int64 // accumulated duration of the uninterrupted session

	now func() time.Time
}

func NewTracker(store storage.Provider, reg *achievements.Registry) (*Tracker, error) {
	stats, err := store.GetSessionStats()
	if err != nil {
		return nil, err
	}
	lastActive, err := store.GetLastActiveDate()
	if err != nil {
		return nil, err
	}

	t := &Tracker{
		store:          store,
		reg:            reg,
		stats:          stats,
		lastActiveDate: lastActive,
		now:            time.Now,
	}

	t.mu.Lock()
	rolled, days := t.rolloverLocked()
	t.mu.Unlock()
	if rolled {
		reg.CheckDaysActive(days)
	}
	return t, nil
}

// rolloverLocked resets the daily counters when the calendar date has moved on
// since the last activity. It must run before any other read or write, so
// every public method calls it first. Achievement checks are left to the
// caller: unlock events can re-enter the tracker, so they must fire outside
// the lock.
func (t *Tracker) rolloverLocked() (rolled bool, daysActive int) {
	today := utils.DayKey(t.now())
	if t.lastActiveDate == today {
		return false, t.stats.AllTime.DaysActive
	}
	if t.lastActiveDate != "" {
		t.stats.Today = models.DailyStats{}
	}
	t.stats.AllTime.DaysActive++
	t.lastActiveDate = today
	if err := t.store.SaveLastActiveDate(today); err != nil {
		logger.Warn("Failed to persist last active date", "error", err)
	}
	t.persistLocked()
	return true, t.stats.AllTime.DaysActive
}

// checkRollover applies the pending days-active achievement check after the
// lock has been released.
func (t *Tracker) checkRollover(rolled bool, days int) {
	if rolled {
		t.reg.CheckDaysActive(days)
	}
}

// StartBrainrot marks the beginning of a brainrot session. Calling it again
// without an intervening EndBrainrot just resets the start marker.
func (t *Tracker) StartBrainrot() {
	t.mu.Lock()
	rolled, days := t.rolloverLocked()
	t.sessionStart = t.now()
	t.sessionID = uuid.NewString()
	t.currentSessionMs = 0
	t.stats.Today.AIGenerationsDetected++
	t.persistLocked()
	t.mu.Unlock()

	t.checkRollover(rolled, days)
	t.reg.CheckFirstBrainrot()
}

// EndBrainrot closes the running session, folds its duration into the totals,
// and logs the session record. A no-op when no session is running.
func (t *Tracker) EndBrainrot() {
	t.mu.Lock()
	if t.sessionStart.IsZero() {
		t.mu.Unlock()
		return
	}
	started := t.sessionStart
	ended := t.now()
	id := t.sessionID
	t.sessionStart = time.Time{}
	t.sessionID = ""
	t.mu.Unlock()

	durationMs := ended.Sub(started).Milliseconds()
	if err := t.store.AddBrainrotSession(models.BrainrotSession{
		ID:         id,
		StartedAt:  started,
		EndedAt:    ended,
		DurationMs: durationMs,
	}); err != nil {
		logger.Warn("Failed to log brainrot session", "error", err)
	}

	t.AddBrainrotTime(durationMs)
}

// AddBrainrotTime folds a duration into the daily and all-time totals, updates
// the longest-session record, recomputes the degeneracy level, and runs the
// duration-based achievement checks against the current uninterrupted
// session's accumulated time.
func (t *Tracker) AddBrainrotTime(durationMs int64) {
	if durationMs <= 0 {
		return
	}
	t.mu.Lock()
	rolled, days := t.rolloverLocked()
	t.stats.Today.BrainrotTimeMs += durationMs
	t.stats.AllTime.TotalBrainrotTimeMs += durationMs
	t.currentSessionMs += durationMs
	if t.currentSessionMs > t.stats.AllTime.LongestBrainrotMs {
		t.stats.AllTime.LongestBrainrotMs = t.currentSessionMs
	}
	t.stats.DegeneracyLevel = degeneracyLevel(t.stats.AllTime.TotalBrainrotTimeMs)
	level := t.stats.DegeneracyLevel
	sessionMs := t.currentSessionMs
	t.persistLocked()
	t.mu.Unlock()

	t.checkRollover(rolled, days)
	t.reg.CheckBrainrotDuration(sessionMs)
	t.reg.CheckDegeneracy(level)
}

// RecordGamePlayed increments the play counters and marks the game start time
// for the timing-based checks. The start marker is persisted with the stats
// because the matching score usually arrives in a later process.
func (t *Tracker) RecordGamePlayed(game constants.Game) {
	t.mu.Lock()
	rolled, days := t.rolloverLocked()
	t.stats.PendingGameStartMs = t.now().UnixMilli()
	t.stats.Today.GamesPlayed++
	t.stats.AllTime.TotalGamesPlayed++
	t.stats.AllTime.GamesPlayedByType[game]++
	total := t.stats.AllTime.TotalGamesPlayed
	byType := copyGameCounts(t.stats.AllTime.GamesPlayedByType)
	t.persistLocked()
	t.mu.Unlock()

	t.checkRollover(rolled, days)
	t.reg.CheckGamesPlayed(total, byType)
}

// RecordGameScore records a finished game. The elapsed time since the matching
// RecordGamePlayed call feeds the bounded duration history used for the
// rage-quit check; the high score only moves when exceeded.
func (t *Tracker) RecordGameScore(game constants.Game, score int) {
	t.mu.Lock()
	rolled, days := t.rolloverLocked()

	var durationMs int64
	if t.stats.PendingGameStartMs > 0 {
		durationMs = t.now().UnixMilli() - t.stats.PendingGameStartMs
		t.stats.PendingGameStartMs = 0
		t.stats.AllTime.RecentGameTimesMs = append(t.stats.AllTime.RecentGameTimesMs, durationMs)
		if len(t.stats.AllTime.RecentGameTimesMs) > constants.RecentGameTimesMax {
			t.stats.AllTime.RecentGameTimesMs = t.stats.AllTime.RecentGameTimesMs[1:]
		}
	}
	if score > t.stats.AllTime.GameHighScores[game] {
		t.stats.AllTime.GameHighScores[game] = score
	}
	recent := append([]int64{}, t.stats.AllTime.RecentGameTimesMs...)
	t.persistLocked()
	t.mu.Unlock()

	t.checkRollover(rolled, days)
	t.reg.CheckGameScore(game, score)
	if durationMs > 0 {
		t.reg.CheckGameTiming(durationMs, recent)
	}
}

// NoteAchievementUnlocked bumps the daily unlock counter. The orchestrator
// calls it from its achievement-unlocked subscription.
func (t *Tracker) NoteAchievementUnlocked() {
	t.mu.Lock()
	rolled, days := t.rolloverLocked()
	t.stats.Today.AchievementsUnlocked++
	t.persistLocked()
	t.mu.Unlock()

	t.checkRollover(rolled, days)
}

// Stats returns a deep copy of the current stats record.
func (t *Tracker) Stats() models.SessionStats {
	t.mu.Lock()
	rolled, days := t.rolloverLocked()
	out := t.stats
	out.AllTime.GameHighScores = copyGameCounts(t.stats.AllTime.GameHighScores)
	out.AllTime.GamesPlayedByType = copyGameCounts(t.stats.AllTime.GamesPlayedByType)
	out.AllTime.RecentGameTimesMs = append([]int64{}, t.stats.AllTime.RecentGameTimesMs...)
	t.mu.Unlock()

	t.checkRollover(rolled, days)
	return out
}

// DegeneracyPercent maps all-time brainrot hours onto 0-100, saturating at 10
// hours.
func (t *Tracker) DegeneracyPercent() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	hours := float64(t.stats.AllTime.TotalBrainrotTimeMs) / float64(time.Hour.Milliseconds())
	percent := int(hours / 10 * 100)
	if percent > 100 {
		percent = 100
	}
	return percent
}

// Save flushes the current stats. The panel daemon calls this on the autosave
// cadence to bound data loss on abnormal termination.
func (t *Tracker) Save() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.persistLocked()
}

// Reset restores a zeroed stats record.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats = models.DefaultSessionStats()
	t.currentSessionMs = 0
	t.persistLocked()
}

func (t *Tracker) persistLocked() {
	if err := t.store.SaveSessionStats(t.stats); err != nil {
		logger.Warn("Failed to persist session stats", "error", err)
	}
}

func degeneracyLevel(totalMs int64) constants.DegeneracyLevel {
	hours := float64(totalMs) / float64(time.Hour.Milliseconds())
	switch {
	case hours < 0.5:
		return constants.DegeneracyTouchingGrass
	case hours < 2:
		return constants.DegeneracyCasual
	case hours < 5:
		return constants.DegeneracyDegenerate
	default:
		return constants.DegeneracyTerminal
	}
}

func copyGameCounts(in map[constants.Game]int) map[constants.Game]int {
	out := make(map[constants.Game]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
