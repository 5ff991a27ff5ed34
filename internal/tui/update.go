package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"grasspit/internal/economy"
	"grasspit/internal/models"
)

const toastDuration = 5 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(msg.Width-8, 60)
		return m, nil

	case TickMsg:
		m.pomo = m.svc.Pomodoro.State()
		m.balance = m.svc.Ledger.Balance()
		m.generating = m.watcher.IsGenerating()

		// Working earns $GRASS, one award per full minute of active work.
		if m.pomo.IsActive && m.pomo.Mode == models.ModeWork {
			m.workSeconds++
			if m.workSeconds >= 60 {
				m.workSeconds = 0
				m.svc.Ledger.AddCoins(m.coinsPerMinute, economy.SourceCoding)
			}
		}

		if m.toast != "" && time.Now().After(m.toastUntil) {
			m.toast = ""
		}
		return m, tick()

	case AchievementMsg:
		a := msg.Achievement
		m.toast = fmt.Sprintf("%s %s unlocked: %s", a.Icon, a.Rarity.DisplayName(), a.Name)
		m.toastUntil = time.Now().Add(toastDuration)
		return m, nil

	case GenerationMsg:
		m.generating = msg.Active
		return m, nil

	case PhaseCompleteMsg:
		if msg.Work {
			m.toast = "Work phase complete. Go rot your brain."
		} else {
			m.toast = "Break over. Back to the mines."
		}
		m.toastUntil = time.Now().Add(toastDuration)
		m.pomo = m.svc.Pomodoro.State()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Start):
			m.svc.Pomodoro.Start()
			m.pomo = m.svc.Pomodoro.State()
		case key.Matches(msg, m.keys.Pause):
			m.svc.Pomodoro.Pause()
			m.pomo = m.svc.Pomodoro.State()
		case key.Matches(msg, m.keys.Skip):
			m.svc.Pomodoro.Skip()
			m.pomo = m.svc.Pomodoro.State()
		case key.Matches(msg, m.keys.Reset):
			m.svc.Pomodoro.Reset()
			m.workSeconds = 0
			m.pomo = m.svc.Pomodoro.State()
		case key.Matches(msg, m.keys.Work):
			m.svc.Pomodoro.StartWork()
			m.workSeconds = 0
			m.pomo = m.svc.Pomodoro.State()
		case key.Matches(msg, m.keys.Break):
			m.svc.Pomodoro.StartBreak()
			m.workSeconds = 0
			m.pomo = m.svc.Pomodoro.State()
		case key.Matches(msg, m.keys.Toggle):
			if m.watcher.IsGenerating() {
				m.watcher.TriggerEnd()
			} else {
				m.watcher.TriggerStart()
			}
			m.generating = m.watcher.IsGenerating()
		}
		return m, nil
	}

	return m, nil
}
