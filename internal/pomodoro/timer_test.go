package pomodoro

import (
	"path/filepath"
	"testing"

	"grasspit/internal/events"
	"grasspit/internal/models"
	"grasspit/internal/storage"
)

func newTestTimer(t *testing.T) (*Timer, *events.Bus, storage.Provider) {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	bus := events.NewBus()
	timer, err := New(store, bus, DefaultConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(timer.Close)
	return timer, bus, store
}

func TestInitialState(t *testing.T) {
	timer, _, _ := newTestTimer(t)

	state := timer.State()
	if state.IsActive {
		t.Error("a fresh timer should be paused")
	}
	if state.Mode != models.ModeWork {
		t.Errorf("Mode = %q, want %q", state.Mode, models.ModeWork)
	}
	if state.TimeRemainingSec != 25*60 {
		t.Errorf("TimeRemainingSec = %d, want %d", state.TimeRemainingSec, 25*60)
	}
}

func TestSkipWorkMovesToBreak(t *testing.T) {
	timer, bus, _ := newTestTimer(t)

	workDone := 0
	bus.OnWorkComplete(func() { workDone++ })

	timer.Skip()

	state := timer.State()
	if state.Mode != models.ModeBreak {
		t.Errorf("Mode = %q after skipping work, want %q", state.Mode, models.ModeBreak)
	}
	if state.TimeRemainingSec != 5*60 {
		t.Errorf("TimeRemainingSec = %d, want %d", state.TimeRemainingSec, 5*60)
	}
	if state.SessionsCompleted != 1 {
		t.Errorf("SessionsCompleted = %d, want 1", state.SessionsCompleted)
	}
	if workDone != 1 {
		t.Errorf("work-complete fired %d times, want 1", workDone)
	}
	if state.IsActive {
		t.Error("timer should be paused after a skip")
	}
}

func TestSkipBreakDoesNotCountSession(t *testing.T) {
	timer, bus, _ := newTestTimer(t)

	breakDone := 0
	bus.OnBreakComplete(func() { breakDone++ })

	timer.Skip() // work -> break
	timer.Skip() // break -> work

	state := timer.State()
	if state.Mode != models.ModeWork {
		t.Errorf("Mode = %q, want %q", state.Mode, models.ModeWork)
	}
	if state.SessionsCompleted != 1 {
		t.Errorf("SessionsCompleted = %d after skipping a break, want 1", state.SessionsCompleted)
	}
	if breakDone != 1 {
		t.Errorf("break-complete fired %d times, want 1", breakDone)
	}
}

func TestEveryFourthBreakIsLong(t *testing.T) {
	timer, _, _ := newTestTimer(t)

	for i := 1; i <= 4; i++ {
		timer.Skip() // complete work phase i
		state := timer.State()
		if i < 4 {
			if state.Mode != models.ModeBreak {
				t.Fatalf("after work session %d, Mode = %q, want %q", i, state.Mode, models.ModeBreak)
			}
		} else {
			if state.Mode != models.ModeLongBreak {
				t.Fatalf("after work session 4, Mode = %q, want %q", state.Mode, models.ModeLongBreak)
			}
			if state.TimeRemainingSec != 15*60 {
				t.Errorf("TimeRemainingSec = %d, want %d", state.TimeRemainingSec, 15*60)
			}
		}
		timer.Skip() // complete the break
	}
}

func TestTickCompletesPhase(t *testing.T) {
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	bus := events.NewBus()
	cfg := DefaultConfig()
	cfg.WorkDurationSec = 2
	timer, err := New(store, bus, cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(timer.Close)

	workDone := 0
	bus.OnWorkComplete(func() { workDone++ })

	// Drive the countdown directly instead of waiting on the ticker.
	timer.active = true
	timer.tick()
	if timer.State().TimeRemainingSec != 1 {
		t.Fatalf("TimeRemainingSec = %d after one tick, want 1", timer.State().TimeRemainingSec)
	}
	timer.active = true
	timer.tick()

	state := timer.State()
	if workDone != 1 {
		t.Errorf("work-complete fired %d times, want 1", workDone)
	}
	if state.Mode != models.ModeBreak {
		t.Errorf("Mode = %q after expiry, want %q", state.Mode, models.ModeBreak)
	}
	if state.SessionsCompleted != 1 {
		t.Errorf("SessionsCompleted = %d, want 1", state.SessionsCompleted)
	}
	if state.TotalWorkTimeSec != 2 {
		t.Errorf("TotalWorkTimeSec = %d, want 2", state.TotalWorkTimeSec)
	}
}

func TestSkipMatchesNaturalExpiry(t *testing.T) {
	// Two timers, one expiring naturally and one skipped, must land in the
	// same state.
	natural, _, _ := newTestTimer(t)
	natural.active = true
	natural.timeRemaining = 1
	natural.tick()

	skipped, _, _ := newTestTimer(t)
	skipped.Skip()

	ns, ss := natural.State(), skipped.State()
	if ns.Mode != ss.Mode || ns.SessionsCompleted != ss.SessionsCompleted ||
		ns.TimeRemainingSec != ss.TimeRemainingSec || ns.IsActive != ss.IsActive {
		t.Errorf("natural expiry state %+v differs from skip state %+v", ns, ss)
	}
}

func TestResetRestoresFullDuration(t *testing.T) {
	timer, _, _ := newTestTimer(t)

	timer.active = true
	timer.tick()
	timer.Reset()

	state := timer.State()
	if state.TimeRemainingSec != 25*60 {
		t.Errorf("TimeRemainingSec = %d after Reset, want %d", state.TimeRemainingSec, 25*60)
	}
	if state.IsActive {
		t.Error("timer should be paused after Reset")
	}
}

func TestStartBreakSwitchesMode(t *testing.T) {
	timer, _, _ := newTestTimer(t)

	timer.StartBreak()
	t.Cleanup(timer.Close)

	state := timer.State()
	if state.Mode != models.ModeBreak {
		t.Errorf("Mode = %q, want %q", state.Mode, models.ModeBreak)
	}
	if !state.IsActive {
		t.Error("StartBreak should leave the timer running")
	}
}

func TestCountersPersistAcrossReload(t *testing.T) {
	timer, bus, store := newTestTimer(t)

	timer.Skip()
	timer.Skip()
	timer.Skip() // two work sessions completed

	reloaded, err := New(store, bus, DefaultConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(reloaded.Close)

	state := reloaded.State()
	if state.SessionsCompleted != 2 {
		t.Errorf("SessionsCompleted = %d after reload, want 2", state.SessionsCompleted)
	}
	// The live countdown is never persisted.
	if state.Mode != models.ModeWork || state.TimeRemainingSec != 25*60 || state.IsActive {
		t.Errorf("reloaded timer not fresh: %+v", state)
	}
}

func TestResetStats(t *testing.T) {
	timer, _, _ := newTestTimer(t)

	timer.Skip()
	timer.ResetStats()

	if got := timer.State().SessionsCompleted; got != 0 {
		t.Errorf("SessionsCompleted = %d after ResetStats, want 0", got)
	}
}
