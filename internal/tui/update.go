package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/erkinbekov/tomatea/internal/config"
	"github.com/erkinbekov/tomatea/internal/models"
	"github.com/erkinbekov/tomatea/internal/timer"
	"github.com/erkinbekov/tomatea/internal/util"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, m.inputs.update(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressBarWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinProgressBarWidth {
			target = config.MinProgressBarWidth
		}
		m.progress.Width = target
	}
	return m
}

// handleTick advances the countdown by one redraw step. Messages from
// a superseded tick chain are dropped so pause and reset reliably kill
// the loop they interrupt.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.tickSeq || !m.engine.Running() {
		return m, nil
	}
	if done, ok := m.engine.Tick(msg.At); ok {
		m.recordCompletion(done)
	}
	return m, tickCmd(m.tickSeq)
}

func (m *Model) recordCompletion(done timer.Completion) {
	session := models.Session{
		Phase:       done.Phase.Key(),
		StartedAt:   done.StartedAt,
		EndedAt:     done.EndedAt,
		DurationSec: int(done.Duration.Seconds()),
		CycleIndex:  done.CycleCount,
	}
	if _, err := m.store.RecordSession(m.ctx, session); err != nil {
		util.LogError("record session", err)
		m.status = fmt.Sprintf("Could not record session: %v", err)
		return
	}
	if done.Phase == models.PhaseFocus {
		m.todayFocus++
		m.status = fmt.Sprintf("Focus complete. Time for a %s.", m.engine.Phase())
	} else {
		m.status = "Break over. Back to focus."
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.inputs.anyFocused() {
		return m.handleFieldKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ":
		return m.handleToggle()
	case "r":
		return m.handleReset(), nil
	case "tab":
		m.inputs.focusField(fieldFocus)
		return m, nil
	case "t":
		return m.handleThemeCycle(), nil
	case "d":
		return m.handleReport(), nil
	}
	return m, nil
}

// handleFieldKey routes keys while one of the settings fields has
// focus. Leaving a field commits it, which is when ratio propagation
// and persistence happen.
func (m Model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEscape:
		m = m.commitFocusedField()
		m.inputs.blur()
		return m, nil
	case tea.KeyTab:
		m = m.commitFocusedField()
		m.inputs.focusNext()
		return m, nil
	case tea.KeyShiftTab:
		m = m.commitFocusedField()
		m.inputs.focusPrev()
		return m, nil
	}
	return m, m.inputs.update(msg)
}

func (m Model) commitFocusedField() Model {
	edited := m.inputs.focused
	d, cycles := m.inputs.synchronize()
	m.persistSettings(d, cycles)
	// A duration edit takes effect immediately when idle; while running
	// it waits for the next phase transition. The cycles field is read
	// at each transition and never restarts the countdown.
	if edited != fieldCycles && !m.engine.Running() {
		m = m.handleReset()
	}
	return m
}

func (m Model) persistSettings(d models.Durations, cycles int) {
	util.LogError("save focus setting", m.store.SetSetting(m.ctx, config.SettingFocusMinutes, strconv.Itoa(d.Focus)))
	util.LogError("save short setting", m.store.SetSetting(m.ctx, config.SettingShortMinutes, strconv.Itoa(d.Short)))
	util.LogError("save long setting", m.store.SetSetting(m.ctx, config.SettingLongMinutes, strconv.Itoa(d.Long)))
	util.LogError("save cycles setting", m.store.SetSetting(m.ctx, config.SettingCycles, strconv.Itoa(cycles)))
}

func (m Model) handleToggle() (tea.Model, tea.Cmd) {
	m.status = ""
	m.tickSeq++
	if m.engine.Toggle() {
		return m, tickCmd(m.tickSeq)
	}
	return m, nil
}

func (m Model) handleReset() Model {
	m.tickSeq++
	m.engine.Reset()
	m.status = ""
	return m
}

func (m Model) handleThemeCycle() Model {
	m.themeName = nextThemeName(m.themeName)
	m.theme = themeByName(m.themeName)
	util.LogError("save theme setting", m.store.SetSetting(m.ctx, config.SettingTheme, m.themeName))
	return m
}

func (m Model) handleReport() Model {
	path, err := GeneratePDFReport(m.ctx, m.store, time.Now().Format("2006-01-02"))
	if err != nil {
		m.status = fmt.Sprintf("Report failed: %v", err)
		return m
	}
	m.status = fmt.Sprintf("Report written to %s", path)
	return m
}
