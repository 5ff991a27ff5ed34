// Package pomodoro implements the work/break countdown state machine.
package pomodoro

import (
	"sync"
	"time"

	"grasspit/internal/constants"
	"grasspit/internal/events"
	"grasspit/internal/logger"
	"grasspit/internal/models"
	"grasspit/internal/storage"
)

// Config holds the per-mode durations in seconds and the long-break divisor.
type Config struct {
	WorkDurationSec        int
	BreakDurationSec       int
	LongBreakDurationSec   int
	SessionsUntilLongBreak int
}

func DefaultConfig() Config {
	return Config{
		WorkDurationSec:        constants.DefaultWorkDurationSec,
		BreakDurationSec:       constants.DefaultBreakDurationSec,
		LongBreakDurationSec:   constants.DefaultLongBreakDurationSec,
		SessionsUntilLongBreak: constants.SessionsUntilLongBreak,
	}
}

// Timer cycles work -> break/longBreak -> work indefinitely. Only the
// counters are persisted; a reloaded timer always starts paused at the full
// duration of its mode.
type Timer struct {
	mu    sync.Mutex
	store storage.Provider
	bus   *events.Bus
	cfg   Config

	mode          models.PomodoroMode
	timeRemaining int // seconds
	active        bool
	counters      models.PomodoroCounters

	stop chan struct{} // closed to tear down the tick loop
}

func New(store storage.Provider, bus *events.Bus, cfg Config) (*Timer, error) {
	if cfg.SessionsUntilLongBreak <= 0 {
		cfg.SessionsUntilLongBreak = constants.SessionsUntilLongBreak
	}
	counters, err := store.GetPomodoroCounters()
	if err != nil {
		return nil, err
	}
	return &Timer{
		store:         store,
		bus:           bus,
		cfg:           cfg,
		mode:          models.ModeWork,
		timeRemaining: cfg.WorkDurationSec,
		counters:      counters,
	}, nil
}

// Start begins the 1-second tick loop. A no-op when already active.
func (t *Timer) Start() {
	t.mu.Lock()
	if t.active {
		t.mu.Unlock()
		return
	}
	t.active = true
	stop := make(chan struct{})
	t.stop = stop
	state := t.stateLocked()
	t.mu.Unlock()

	go t.run(stop)
	t.bus.PublishPomodoroChanged(state)
}

func (t *Timer) run(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.tick()
		}
	}
}

// Pause stops ticking and preserves the remaining time. A no-op when
// inactive.
func (t *Timer) Pause() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.pauseLocked()
	state := t.stateLocked()
	t.mu.Unlock()

	t.bus.PublishPomodoroChanged(state)
}

// Reset pauses and restores the full duration of the current mode.
func (t *Timer) Reset() {
	t.mu.Lock()
	t.pauseLocked()
	t.timeRemaining = t.durationFor(t.mode)
	state := t.stateLocked()
	t.mu.Unlock()

	t.bus.PublishPomodoroChanged(state)
}

// Skip completes the current phase immediately. Its effect is identical to
// the countdown naturally reaching zero.
func (t *Timer) Skip() {
	t.mu.Lock()
	t.pauseLocked()
	workDone := t.completePhaseLocked()
	state := t.stateLocked()
	t.mu.Unlock()

	t.announcePhase(workDone, state)
}

// StartWork switches to a fresh work phase and starts ticking.
func (t *Timer) StartWork() {
	t.setMode(models.ModeWork)
}

// StartBreak switches to a fresh break phase and starts ticking.
func (t *Timer) StartBreak() {
	t.setMode(models.ModeBreak)
}

func (t *Timer) setMode(mode models.PomodoroMode) {
	t.mu.Lock()
	t.pauseLocked()
	t.mode = mode
	t.timeRemaining = t.durationFor(mode)
	t.mu.Unlock()

	t.Start()
}

// tick advances the countdown by one second.
func (t *Timer) tick() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.timeRemaining--
	if t.mode == models.ModeWork {
		t.counters.TotalWorkTimeSec++
	} else {
		t.counters.TotalBreakTimeSec++
	}
	if t.timeRemaining > 0 {
		t.mu.Unlock()
		return
	}
	workDone := t.completePhaseLocked()
	state := t.stateLocked()
	t.mu.Unlock()

	t.announcePhase(workDone, state)
}

// completePhaseLocked performs the shared phase-completion transition used by
// both natural expiry and Skip. Returns true when a work phase finished.
func (t *Timer) completePhaseLocked() bool {
	t.pauseLocked()
	workDone := t.mode == models.ModeWork
	if workDone {
		t.counters.SessionsCompleted++
		if t.counters.SessionsCompleted%t.cfg.SessionsUntilLongBreak == 0 {
			t.mode = models.ModeLongBreak
		} else {
			t.mode = models.ModeBreak
		}
	} else {
		t.mode = models.ModeWork
	}
	t.timeRemaining = t.durationFor(t.mode)
	t.persistLocked()
	return workDone
}

func (t *Timer) announcePhase(workDone bool, state models.PomodoroState) {
	if workDone {
		t.bus.PublishWorkComplete()
	} else {
		t.bus.PublishBreakComplete()
	}
	t.bus.PublishPomodoroChanged(state)
}

func (t *Timer) pauseLocked() {
	if !t.active {
		return
	}
	t.active = false
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *Timer) durationFor(mode models.PomodoroMode) int {
	switch mode {
	case models.ModeBreak:
		return t.cfg.BreakDurationSec
	case models.ModeLongBreak:
		return t.cfg.LongBreakDurationSec
	default:
		return t.cfg.WorkDurationSec
	}
}

// State returns a snapshot of the timer.
func (t *Timer) State() models.PomodoroState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateLocked()
}

func (t *Timer) stateLocked() models.PomodoroState {
	return models.PomodoroState{
		IsActive:          t.active,
		Mode:              t.mode,
		TimeRemainingSec:  t.timeRemaining,
		SessionsCompleted: t.counters.SessionsCompleted,
		TotalWorkTimeSec:  t.counters.TotalWorkTimeSec,
		TotalBreakTimeSec: t.counters.TotalBreakTimeSec,
	}
}

// ResetStats clears the persisted counters.
func (t *Timer) ResetStats() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counters = models.PomodoroCounters{}
	t.persistLocked()
}

// Close tears down the tick loop.
func (t *Timer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pauseLocked()
}

func (t *Timer) persistLocked() {
	if err := t.store.SavePomodoroCounters(t.counters); err != nil {
		logger.Warn("Failed to persist pomodoro counters", "error", err)
	}
}
