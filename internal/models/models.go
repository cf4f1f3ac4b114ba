package models

import "time"

// Phase enumerates the interval kinds of the pomodoro cycle.
type Phase int

const (
	PhaseFocus Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

// String returns the display label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseShortBreak:
		return "SHORT BREAK"
	case PhaseLongBreak:
		return "LONG BREAK"
	default:
		return "FOCUS"
	}
}

// Key returns the stable identifier persisted in the session log.
func (p Phase) Key() string {
	switch p {
	case PhaseShortBreak:
		return "short_break"
	case PhaseLongBreak:
		return "long_break"
	default:
		return "focus"
	}
}

// IsBreak reports whether the phase is one of the two break kinds.
func (p Phase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

// Durations holds the three configured interval lengths in minutes.
type Durations struct {
	Focus int
	Short int
	Long  int
}

// Session is one completed phase as recorded in the session log.
// Interrupted phases are never recorded.
type Session struct {
	ID          int64
	Phase       string // focus, short_break, long_break
	StartedAt   time.Time
	EndedAt     time.Time
	DurationSec int
	CycleIndex  int // completed focus count at the time of recording
}
