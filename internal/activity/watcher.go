// Package activity infers whether an AI code-generation tool is producing
// output, from indirect signals only. It is a best-effort classifier: false
// positives and negatives are expected and acceptable.
package activity

import (
	"strings"
	"sync"
	"time"

	"github.com/mitchellh/go-ps"

	"grasspit/internal/constants"
	"grasspit/internal/events"
	"grasspit/internal/logger"
)

// processesFunc is swapped out in tests.
var processesFunc = ps.Processes

// Config exposes the heuristic's knobs so tests can substitute synthetic
// values instead of waiting on real timers.
type Config struct {
	Patterns          []string // case-insensitive substrings of AI-tool names
	StartDebounce     time.Duration
	MaxGenerationTime time.Duration
	ProcessProbe      bool // also scan the process table on each sweep
}

func DefaultConfig() Config {
	return Config{
		Patterns:          strings.Split(constants.DefaultAIPatterns, ","),
		StartDebounce:     constants.StartDebounce,
		MaxGenerationTime: constants.MaxGenerationTime,
		ProcessProbe:      true,
	}
}

// Watcher tracks the generating/idle state and emits generation-start and
// generation-end events on the bus. The start event is debounced so that
// short-lived terminal flashes never open the panel.
type Watcher struct {
	mu  sync.Mutex
	bus *events.Bus
	cfg Config

	generating     bool
	announced      bool // start event published for the current generation
	startedAt      time.Time
	activeTerminal string
	pending        *time.Timer // scheduled debounced start, nil when none

	now func() time.Time
}

func NewWatcher(bus *events.Bus, cfg Config) *Watcher {
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = strings.Split(constants.DefaultAIPatterns, ",")
	}
	return &Watcher{bus: bus, cfg: cfg, now: time.Now}
}

// HandleTerminalOpened processes a terminal-opened signal.
func (w *Watcher) HandleTerminalOpened(name string) {
	w.handleActive(name)
}

// HandleTerminalFocused processes a terminal-focus-changed signal.
func (w *Watcher) HandleTerminalFocused(name string) {
	w.handleActive(name)
}

func (w *Watcher) handleActive(name string) {
	if !w.matches(name) {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.generating {
		return
	}
	w.generating = true
	w.announced = false
	w.startedAt = w.now()
	w.activeTerminal = name
	logger.Debug("AI terminal detected", "name", name)

	// Debounce the start announcement so a terminal that flashes open and
	// closed never reaches the UI.
	w.pending = time.AfterFunc(w.cfg.StartDebounce, w.fireStart)
}

// HandleTerminalClosed processes a terminal-closed signal. Closing the active
// AI terminal ends the generation immediately, with no debounce.
func (w *Watcher) HandleTerminalClosed(name string) {
	w.mu.Lock()
	if !w.generating || name != w.activeTerminal {
		w.mu.Unlock()
		return
	}
	w.endLocked()
	w.mu.Unlock()

	w.bus.PublishGenerationEnd()
}

// TriggerStart is the manual start: it bypasses the debounce and announces
// immediately.
func (w *Watcher) TriggerStart() {
	w.mu.Lock()
	w.cancelPendingLocked()
	if !w.generating {
		w.generating = true
		w.startedAt = w.now()
		w.activeTerminal = ""
	}
	w.announced = true
	w.mu.Unlock()

	w.bus.PublishGenerationStart()
}

// TriggerEnd is the manual end: it force-ends any generation immediately.
func (w *Watcher) TriggerEnd() {
	w.mu.Lock()
	if !w.generating {
		w.mu.Unlock()
		return
	}
	w.endLocked()
	w.mu.Unlock()

	w.bus.PublishGenerationEnd()
}

// Sweep force-ends a generation that has run past the maximum, treating it as
// stuck or completed without a close signal we caught. The panel daemon calls
// it on a fixed cadence, along with the optional process probe.
func (w *Watcher) Sweep() {
	w.mu.Lock()
	expired := w.generating && w.now().Sub(w.startedAt) > w.cfg.MaxGenerationTime
	if expired {
		logger.Debug("Generation timed out", "terminal", w.activeTerminal)
		w.endLocked()
	}
	w.mu.Unlock()

	if expired {
		w.bus.PublishGenerationEnd()
		return
	}
	if w.cfg.ProcessProbe {
		w.probeProcesses()
	}
}

// probeProcesses scans the process table and synthesizes open/close signals
// for matching executables. This covers hosts that provide no terminal
// events at all.
func (w *Watcher) probeProcesses() {
	procs, err := processesFunc()
	if err != nil {
		logger.Debug("Process probe failed", "error", err)
		return
	}

	var found string
	for _, p := range procs {
		if w.matches(p.Executable()) {
			found = p.Executable()
			break
		}
	}

	w.mu.Lock()
	generating, active := w.generating, w.activeTerminal
	w.mu.Unlock()

	switch {
	case found != "" && !generating:
		w.HandleTerminalOpened(found)
	case found == "" && generating && active != "":
		w.HandleTerminalClosed(active)
	}
}

// IsGenerating reports whether a generation is currently believed active.
func (w *Watcher) IsGenerating() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generating
}

// GenerationStart returns the start time of the current generation, or the
// zero time when idle.
func (w *Watcher) GenerationStart() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.generating {
		return time.Time{}
	}
	return w.startedAt
}

func (w *Watcher) fireStart() {
	w.mu.Lock()
	if !w.generating || w.announced {
		w.mu.Unlock()
		return
	}
	w.announced = true
	w.pending = nil
	w.mu.Unlock()

	w.bus.PublishGenerationStart()
}

// endLocked clears all generation state and cancels any pending debounced
// start so it can never fire after the end.
func (w *Watcher) endLocked() {
	w.cancelPendingLocked()
	w.generating = false
	w.announced = false
	w.startedAt = time.Time{}
	w.activeTerminal = ""
}

func (w *Watcher) cancelPendingLocked() {
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
}

func (w *Watcher) matches(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range w.cfg.Patterns {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" && strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
