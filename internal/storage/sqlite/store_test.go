package sqlite

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"grasspit/internal/constants"
	"grasspit/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "grasspit.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadBeforeInitFails(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}

func TestInitWritesDefaultSettings(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if !reflect.DeepEqual(settings, models.DefaultSettings()) {
		t.Errorf("GetSettings() = %+v, want defaults %+v", settings, models.DefaultSettings())
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	settings := models.DefaultSettings()
	settings.CasinoEnabled = false
	settings.AIPatterns = "claude,codex"
	settings.CoinsPerMinute = 42

	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if !reflect.DeepEqual(got, settings) {
		t.Errorf("GetSettings() = %+v, want %+v", got, settings)
	}

	// A stored zero is a deliberate choice, not a gap to fill with defaults.
	settings.CoinsPerMinute = 0
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	got, err = store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got.CoinsPerMinute != 0 {
		t.Errorf("CoinsPerMinute = %d after saving 0, want 0", got.CoinsPerMinute)
	}
}

func TestFreshStateReadsReturnDefaults(t *testing.T) {
	store := newTestStore(t)

	currency, err := store.GetCurrencyStats()
	if err != nil {
		t.Fatalf("GetCurrencyStats() failed: %v", err)
	}
	if currency.Balance != constants.StartingBalance {
		t.Errorf("fresh Balance = %d, want %d", currency.Balance, constants.StartingBalance)
	}

	ids, err := store.GetUnlockedAchievements()
	if err != nil {
		t.Fatalf("GetUnlockedAchievements() failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("fresh unlocked achievements = %v, want none", ids)
	}

	stats, err := store.GetSessionStats()
	if err != nil {
		t.Fatalf("GetSessionStats() failed: %v", err)
	}
	if stats.DegeneracyLevel != constants.DegeneracyTouchingGrass {
		t.Errorf("fresh DegeneracyLevel = %q, want %q", stats.DegeneracyLevel, constants.DegeneracyTouchingGrass)
	}
	if stats.AllTime.GameHighScores == nil || stats.AllTime.GamesPlayedByType == nil {
		t.Error("fresh session stats must have initialized maps")
	}

	date, err := store.GetLastActiveDate()
	if err != nil {
		t.Fatalf("GetLastActiveDate() failed: %v", err)
	}
	if date != "" {
		t.Errorf("fresh last active date = %q, want empty", date)
	}
}

func TestStateRoundTrips(t *testing.T) {
	store := newTestStore(t)

	currency := models.CurrencyStats{Balance: 7, LifetimeEarned: 9, LifetimeWagered: 3, LifetimeWon: 2, LifetimeLost: 1, BlackjackWins: 4}
	if err := store.SaveCurrencyStats(currency); err != nil {
		t.Fatalf("SaveCurrencyStats() failed: %v", err)
	}
	gotCurrency, err := store.GetCurrencyStats()
	if err != nil {
		t.Fatalf("GetCurrencyStats() failed: %v", err)
	}
	if gotCurrency != currency {
		t.Errorf("GetCurrencyStats() = %+v, want %+v", gotCurrency, currency)
	}

	ids := []string{"first-gamble", "whale"}
	if err := store.SaveUnlockedAchievements(ids); err != nil {
		t.Fatalf("SaveUnlockedAchievements() failed: %v", err)
	}
	gotIDs, err := store.GetUnlockedAchievements()
	if err != nil {
		t.Fatalf("GetUnlockedAchievements() failed: %v", err)
	}
	if !reflect.DeepEqual(gotIDs, ids) {
		t.Errorf("GetUnlockedAchievements() = %v, want %v (order preserved)", gotIDs, ids)
	}

	if err := store.SaveLastActiveDate("2025-03-05"); err != nil {
		t.Fatalf("SaveLastActiveDate() failed: %v", err)
	}
	date, err := store.GetLastActiveDate()
	if err != nil {
		t.Fatalf("GetLastActiveDate() failed: %v", err)
	}
	if date != "2025-03-05" {
		t.Errorf("GetLastActiveDate() = %q, want %q", date, "2025-03-05")
	}

	counters := models.PomodoroCounters{SessionsCompleted: 3, TotalWorkTimeSec: 4500, TotalBreakTimeSec: 900}
	if err := store.SavePomodoroCounters(counters); err != nil {
		t.Fatalf("SavePomodoroCounters() failed: %v", err)
	}
	gotCounters, err := store.GetPomodoroCounters()
	if err != nil {
		t.Fatalf("GetPomodoroCounters() failed: %v", err)
	}
	if gotCounters != counters {
		t.Errorf("GetPomodoroCounters() = %+v, want %+v", gotCounters, counters)
	}
}

func TestBrainrotSessionLog(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		session := models.BrainrotSession{
			ID:         string(rune('a' + i)),
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			EndedAt:    base.Add(time.Duration(i)*time.Hour + 10*time.Minute),
			DurationMs: 600_000,
		}
		if err := store.AddBrainrotSession(session); err != nil {
			t.Fatalf("AddBrainrotSession() failed: %v", err)
		}
	}

	sessions, err := store.GetRecentBrainrotSessions(2)
	if err != nil {
		t.Fatalf("GetRecentBrainrotSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	// Newest first.
	if sessions[0].ID != "c" || sessions[1].ID != "b" {
		t.Errorf("session order = [%s %s], want [c b]", sessions[0].ID, sessions[1].ID)
	}
	if !sessions[0].StartedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("StartedAt = %v, want %v", sessions[0].StartedAt, base.Add(2*time.Hour))
	}
}

func TestLoadAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grasspit.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := store.SaveLastActiveDate("2025-03-05"); err != nil {
		t.Fatalf("SaveLastActiveDate() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	date, err := reopened.GetLastActiveDate()
	if err != nil {
		t.Fatalf("GetLastActiveDate() failed: %v", err)
	}
	if date != "2025-03-05" {
		t.Errorf("GetLastActiveDate() = %q after reopen, want %q", date, "2025-03-05")
	}
}
