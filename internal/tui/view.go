package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"grasspit/internal/constants"
	"grasspit/internal/models"
	"grasspit/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("grasspit"),
		m.viewPomodoro(),
		m.viewStatus(),
	}

	if m.toast != "" {
		sections = append(sections, toastStyle.Render(m.toast))
	}
	sections = append(sections, m.help.View(m))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewPomodoro() string {
	label := modeLabel(m.pomo.Mode)
	if !m.pomo.IsActive {
		label += " (paused)"
	}

	total := phaseDuration(m.pomo.Mode)
	percent := 0.0
	if total > 0 {
		percent = 1 - float64(m.pomo.TimeRemainingSec)/float64(total)
	}
	if percent < 0 {
		percent = 0
	}

	clock := utils.FormatClock(m.pomo.TimeRemainingSec)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		modeStyle.Render(label)+"  "+clockStyle.Render(clock),
		m.progress.ViewAs(percent),
		dimStyle.Render(fmt.Sprintf("%d sessions completed", m.pomo.SessionsCompleted)),
	)
}

func (m Model) viewStatus() string {
	generation := dimStyle.Render("● idle")
	if m.generating {
		generation = generationStyle.Render("● AI generating, go play")
	}

	stats := m.svc.Sessions.Stats()
	unlocked, total := m.svc.Achievements.Progress()

	lines := []string{
		fmt.Sprintf("%s  %s", balanceStyle.Render(fmt.Sprintf("%d $GRASS", m.balance)), generation),
		fmt.Sprintf("Today: %s brainrot, %d games", utils.FormatDurationMs(stats.Today.BrainrotTimeMs), stats.Today.GamesPlayed),
		fmt.Sprintf("Degeneracy: %s (%d%%)", stats.DegeneracyLevel, m.svc.Sessions.DegeneracyPercent()),
		fmt.Sprintf("Achievements: %d/%d", unlocked, total),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func modeLabel(mode models.PomodoroMode) string {
	switch mode {
	case models.ModeBreak:
		return "Break"
	case models.ModeLongBreak:
		return "Long break"
	default:
		return "Work"
	}
}

func phaseDuration(mode models.PomodoroMode) int {
	switch mode {
	case models.ModeBreak:
		return constants.DefaultBreakDurationSec
	case models.ModeLongBreak:
		return constants.DefaultLongBreakDurationSec
	default:
		return constants.DefaultWorkDurationSec
	}
}

