package achievements

import (
	"path/filepath"
	"testing"
	"time"

	"grasspit/internal/events"
	"grasspit/internal/models"
	"grasspit/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestRegistry(t *testing.T) (*Registry, *events.Bus) {
	t.Helper()
	bus := events.NewBus()
	reg, err := NewRegistry(newTestStore(t), bus)
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}
	return reg, bus
}

func TestCheckFirstUnlockOnly(t *testing.T) {
	reg, bus := newTestRegistry(t)

	var unlocks []string
	bus.OnAchievementUnlocked(func(a models.Achievement) { unlocks = append(unlocks, a.ID) })

	if !reg.Check("first-gamble") {
		t.Error("Check() = false on first unlock, want true")
	}
	if reg.Check("first-gamble") {
		t.Error("Check() = true on repeat unlock, want false")
	}
	if len(unlocks) != 1 {
		t.Errorf("published %d unlock events, want 1", len(unlocks))
	}
}

func TestCheckUnknownIDIsNoop(t *testing.T) {
	reg, bus := newTestRegistry(t)

	fired := false
	bus.OnAchievementUnlocked(func(models.Achievement) { fired = true })

	if reg.Check("does-not-exist") {
		t.Error("Check(unknown) = true, want false")
	}
	if fired {
		t.Error("Check(unknown) published an unlock event")
	}
	if unlocked, _ := reg.Progress(); unlocked != 0 {
		t.Errorf("Progress() unlocked = %d, want 0", unlocked)
	}
}

func TestVisibleOmitsLockedSecrets(t *testing.T) {
	reg, _ := newTestRegistry(t)

	for _, v := range reg.Visible() {
		if v.Secret {
			t.Errorf("Visible() includes locked secret %q", v.ID)
		}
	}

	reg.Check("speed-death")

	found := false
	for _, v := range reg.Visible() {
		if v.ID == "speed-death" {
			found = true
			if !v.Unlocked {
				t.Error("unlocked secret reported as locked")
			}
		}
	}
	if !found {
		t.Error("Visible() omits an unlocked secret")
	}
}

func TestNewRegistryDropsUnknownPersistedIDs(t *testing.T) {
	store := newTestStore(t)
	if err := store.SaveUnlockedAchievements([]string{"first-gamble", "removed-achievement"}); err != nil {
		t.Fatalf("SaveUnlockedAchievements() failed: %v", err)
	}

	reg, err := NewRegistry(store, events.NewBus())
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	if !reg.IsUnlocked("first-gamble") {
		t.Error("known persisted ID was not restored")
	}
	if reg.IsUnlocked("removed-achievement") {
		t.Error("unknown persisted ID survived the load")
	}
	if unlocked, _ := reg.Progress(); unlocked != 1 {
		t.Errorf("Progress() unlocked = %d, want 1", unlocked)
	}
}

func TestUnlocksPersistAcrossReload(t *testing.T) {
	store := newTestStore(t)
	bus := events.NewBus()
	reg, err := NewRegistry(store, bus)
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	reg.Check("first-pomodoro")
	reg.Check("jackpot")

	reloaded, err := NewRegistry(store, bus)
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}
	if !reloaded.IsUnlocked("first-pomodoro") || !reloaded.IsUnlocked("jackpot") {
		t.Error("unlocks did not survive a reload")
	}
}

func TestCheckGameScoreThresholds(t *testing.T) {
	reg, _ := newTestRegistry(t)

	reg.CheckGameScore("snake", 500)

	if !reg.IsUnlocked("snake-100") || !reg.IsUnlocked("snake-500") {
		t.Error("score 500 should unlock both lower snake thresholds")
	}
	if reg.IsUnlocked("snake-1000") {
		t.Error("score 500 should not unlock snake-1000")
	}

	reg.CheckGameScore("flappy", 10)
	if !reg.IsUnlocked("flappy-10") {
		t.Error("score 10 should unlock flappy-10")
	}
	if reg.IsUnlocked("flappy-50") {
		t.Error("score 10 should not unlock flappy-50")
	}
}

func TestCheckGameScoreIgnoresScorelessGames(t *testing.T) {
	reg, _ := newTestRegistry(t)

	reg.CheckGameScore("plinko", 100000)

	if unlocked, _ := reg.Progress(); unlocked != 0 {
		t.Errorf("plinko score unlocked %d achievements, want 0", unlocked)
	}
}

func TestCheckGameTimingSpeedDeath(t *testing.T) {
	reg, _ := newTestRegistry(t)

	reg.CheckGameTiming(3001, nil)
	if reg.IsUnlocked("speed-death") {
		t.Error("3001ms game should not unlock speed-death")
	}

	reg.CheckGameTiming(3000, nil)
	if !reg.IsUnlocked("speed-death") {
		t.Error("3000ms game should unlock speed-death")
	}
}

func TestCheckGameTimingRageQuit(t *testing.T) {
	reg, _ := newTestRegistry(t)

	// Five games summing to exactly the window are not fast enough.
	reg.CheckGameTiming(24_000, []int64{24_000, 24_000, 24_000, 24_000, 24_000})
	if reg.IsUnlocked("rage-quit") {
		t.Error("sum equal to the window should not unlock rage-quit")
	}

	reg.CheckGameTiming(23_999, []int64{24_000, 24_000, 24_000, 24_000, 23_999})
	if !reg.IsUnlocked("rage-quit") {
		t.Error("sum under the window should unlock rage-quit")
	}
}

func TestCheckGameTimingRageQuitNeedsFiveGames(t *testing.T) {
	reg, _ := newTestRegistry(t)

	reg.CheckGameTiming(1000, []int64{1000, 1000, 1000, 1000})
	if reg.IsUnlocked("rage-quit") {
		t.Error("fewer than five recent games should never unlock rage-quit")
	}
}

func TestCheckClock(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want []string
	}{
		{"3am", time.Date(2025, 3, 5, 3, 0, 0, 0, time.Local), []string{"midnight-coder"}},
		{"5am boundary", time.Date(2025, 3, 5, 5, 0, 0, 0, time.Local), nil},
		{"monday 8am", time.Date(2025, 3, 3, 8, 30, 0, 0, time.Local), []string{"monday-morning"}},
		{"monday 9am", time.Date(2025, 3, 3, 9, 0, 0, 0, time.Local), nil},
		{"friday 4pm", time.Date(2025, 3, 7, 16, 0, 0, 0, time.Local), []string{"friday-afternoon"}},
		{"friday 3pm", time.Date(2025, 3, 7, 15, 59, 0, 0, time.Local), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := newTestRegistry(t)
			reg.now = func() time.Time { return tt.at }

			reg.CheckClock()

			unlocked, _ := reg.Progress()
			if unlocked != len(tt.want) {
				t.Fatalf("unlocked %d achievements, want %d", unlocked, len(tt.want))
			}
			for _, id := range tt.want {
				if !reg.IsUnlocked(id) {
					t.Errorf("expected %q unlocked", id)
				}
			}
		})
	}
}

func TestCheckBalance(t *testing.T) {
	reg, _ := newTestRegistry(t)

	reg.CheckBalance(50)
	if reg.IsUnlocked("broke") || reg.IsUnlocked("whale") {
		t.Error("balance 50 should unlock nothing")
	}

	reg.CheckBalance(0)
	if !reg.IsUnlocked("broke") {
		t.Error("balance 0 should unlock broke")
	}

	reg.CheckBalance(10_000)
	if !reg.IsUnlocked("whale") {
		t.Error("balance 10000 should unlock whale")
	}
}

func TestCheckPomodoroSessions(t *testing.T) {
	reg, _ := newTestRegistry(t)

	reg.CheckPomodoroSessions(5)

	if !reg.IsUnlocked("first-pomodoro") || !reg.IsUnlocked("pomodoro-5") {
		t.Error("5 sessions should unlock the first two milestones")
	}
	if reg.IsUnlocked("pomodoro-25") {
		t.Error("5 sessions should not unlock pomodoro-25")
	}
}

func TestNotifierRespectsSettingsFlag(t *testing.T) {
	reg, _ := newTestRegistry(t)

	notified := 0
	enabled := false
	reg.SetNotifier(notifierFunc(func(models.Achievement) error {
		notified++
		return nil
	}), func() bool { return enabled })

	reg.Check("first-gamble")
	if notified != 0 {
		t.Error("notifier fired while disabled")
	}

	enabled = true
	reg.Check("jackpot")
	if notified != 1 {
		t.Errorf("notifier fired %d times, want 1", notified)
	}
}

type notifierFunc func(a models.Achievement) error

func (f notifierFunc) NotifyAchievement(a models.Achievement) error { return f(a) }
