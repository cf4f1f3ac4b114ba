package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/erkinbekov/tomatea/internal/config"
)

// TickMsg drives the countdown redraw. Seq ties the message to the
// tick chain that scheduled it: every start, pause, and reset bumps the
// model's sequence, so a message from a superseded chain is dropped and
// at most one chain is ever live.
type TickMsg struct {
	Seq int
	At  time.Time
}

func tickCmd(seq int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{Seq: seq, At: t} })
}
