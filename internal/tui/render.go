package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/erkinbekov/tomatea/internal/timer"
)

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("toma") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true).Render("tea")
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}

// controlLabel names the action the space key performs next.
func controlLabel(e *timer.Engine) string {
	if e.Running() {
		return "Pause"
	}
	if e.Started() {
		return "Resume"
	}
	return "Start"
}

// phaseLabel is READY until the first start after a reset, then the
// active phase name.
func phaseLabel(e *timer.Engine) string {
	if !e.Started() {
		return "READY"
	}
	return e.Phase().String()
}

func (m Model) phaseStyle() lipgloss.Style {
	if !m.engine.Started() {
		return m.theme.Ready
	}
	if m.engine.Phase().IsBreak() {
		return m.theme.Break
	}
	return m.theme.Focused
}

// cycleDots marks completed focus phases within the current round.
func cycleDots(count, cycles int) string {
	if cycles <= 0 {
		return ""
	}
	filled := count % cycles
	if filled == 0 && count > 0 {
		filled = cycles
	}
	var b strings.Builder
	for i := 0; i < cycles; i++ {
		if i < filled {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	return b.String()
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := fmt.Sprintf("%s v%s", renderLogo(), versionLabel())

	phase := m.phaseStyle().Render(phaseLabel(m.engine))
	countdown := m.theme.Countdown.Render(timer.FormatMMSS(m.engine.Remaining()))
	bar := m.progress.ViewAs(m.engine.Progress())
	control := m.theme.Dim.Render(fmt.Sprintf("[space] %s  [r] Reset", controlLabel(m.engine)))
	dots := m.theme.Highlight.Render(cycleDots(m.engine.CycleCount(), m.inputs.CyclesBeforeLong()))

	timerPane := lipgloss.JoinVertical(lipgloss.Center,
		phase,
		countdown,
		bar,
		dots,
		control,
	)

	settingsPane := m.renderSettings()
	today := m.theme.Dim.Render(fmt.Sprintf("Today: %d focus %s", m.todayFocus, pluralSessions(m.todayFocus)))

	sections := []string{header, "", timerPane, "", settingsPane, today}
	if m.status != "" {
		sections = append(sections, m.theme.Highlight.Render(truncateLabel(m.status, m.width-4)))
	}
	sections = append(sections, m.renderFooter())

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)
	return m.theme.Base.Render(frame.Render(body))
}

func (m Model) renderSettings() string {
	labels := [fieldCount]string{"Focus", "Short", "Long", "Cycles"}
	parts := make([]string, 0, fieldCount)
	for i := 0; i < fieldCount; i++ {
		label := m.theme.Dim.Render(labels[i])
		if m.inputs.focused == i {
			label = m.theme.Focused.Render(labels[i])
		}
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, label, m.theme.Input.Render(m.inputs.fields[i].View())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderFooter() string {
	help := "[tab] Settings  [d] Report  [t] Theme  [q] Quit"
	if m.inputs.anyFocused() {
		help = "[enter] Apply  [tab] Next field  [esc] Done"
	}
	return m.theme.Dim.Render(truncateLabel(help, m.width-4))
}

func pluralSessions(n int) string {
	if n == 1 {
		return "session"
	}
	return "sessions"
}
