// Package tui renders the distraction panel: pomodoro countdown, $GRASS
// balance, AI-generation indicator, and the day's degeneracy readout.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"grasspit/internal/activity"
	"grasspit/internal/cli"
	"grasspit/internal/constants"
	"grasspit/internal/models"
	"grasspit/internal/storage"
)

// AchievementMsg is sent into the program when an achievement unlocks.
type AchievementMsg struct {
	Achievement models.Achievement
}

// GenerationMsg is sent when an AI generation starts or ends.
type GenerationMsg struct {
	Active bool
}

// PhaseCompleteMsg is sent when a pomodoro phase finishes.
type PhaseCompleteMsg struct {
	Work bool
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type KeyMap struct {
	Start  key.Binding
	Pause  key.Binding
	Skip   key.Binding
	Reset  key.Binding
	Work   key.Binding
	Break  key.Binding
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Skip:   key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "skip phase")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset phase")),
		Work:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "work")),
		Break:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "break")),
		Toggle: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "toggle generation")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type Model struct {
	store   storage.Provider
	svc     *cli.Services
	watcher *activity.Watcher

	keys     KeyMap
	help     help.Model
	progress progress.Model

	pomo       models.PomodoroState
	balance    int
	generating bool

	coinsPerMinute int
	workSeconds    int // seconds of active work since the last coin award

	toast      string
	toastUntil time.Time

	width    int
	height   int
	quitting bool
}

func NewModel(store storage.Provider, svc *cli.Services, watcher *activity.Watcher) Model {
	coinsPerMinute := constants.DefaultCoinsPerMinute
	if settings, err := store.GetSettings(); err == nil {
		coinsPerMinute = settings.CoinsPerMinute
	}

	return Model{
		store:          store,
		svc:            svc,
		watcher:        watcher,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		progress:       progress.New(progress.WithDefaultGradient()),
		pomo:           svc.Pomodoro.State(),
		balance:        svc.Ledger.Balance(),
		generating:     watcher.IsGenerating(),
		coinsPerMinute: coinsPerMinute,
	}
}

func (m Model) ShortHelp() []key.Binding {
	if m.pomo.IsActive {
		return []key.Binding{m.keys.Pause, m.keys.Skip, m.keys.Toggle, m.keys.Quit, m.keys.Help}
	}
	return []key.Binding{m.keys.Start, m.keys.Work, m.keys.Break, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Start, m.keys.Pause, m.keys.Skip, m.keys.Reset},
		{m.keys.Work, m.keys.Break, m.keys.Toggle},
		{m.keys.Help, m.keys.Quit},
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}
