// Package timer implements the pomodoro phase state machine and the
// ratio arithmetic linking the three configured interval lengths. It is
// free of any UI concern: the caller drives it with Tick and renders
// whatever the accessors report.
package timer

import (
	"time"

	"github.com/erkinbekov/tomatea/internal/models"
)

// ConfigSource supplies the user-configured interval lengths. The
// engine reads it at every phase transition and never mutates it.
// Implementations are expected to return already-validated values.
type ConfigSource interface {
	Durations() models.Durations
	CyclesBeforeLong() int
}

// Completion describes a phase that ran to its full duration.
type Completion struct {
	Phase     models.Phase
	StartedAt time.Time
	EndedAt   time.Time
	Duration  time.Duration
	// CycleCount is the completed focus count after the transition.
	CycleCount int
}

// Engine owns the countdown state. All methods must be called from a
// single goroutine; the Bubble Tea update loop satisfies that.
type Engine struct {
	clock  Clock
	source ConfigSource

	phase      models.Phase
	cycleCount int
	running    bool
	started    bool
	hasRef     bool
	startRef   time.Time
	duration   time.Duration
	elapsed    time.Duration
}

// NewEngine returns an engine at FOCUS, not running, with the duration
// taken from the current configuration.
func NewEngine(clock Clock, source ConfigSource) *Engine {
	e := &Engine{clock: clock, source: source, phase: models.PhaseFocus}
	e.duration = e.configuredDuration(models.PhaseFocus)
	return e
}

func (e *Engine) configuredDuration(p models.Phase) time.Duration {
	d := e.source.Durations()
	minutes := d.Focus
	switch p {
	case models.PhaseShortBreak:
		minutes = d.Short
	case models.PhaseLongBreak:
		minutes = d.Long
	}
	return time.Duration(minutes) * time.Minute
}

// SetPhase moves the engine to the given phase at zero elapsed time and
// recomputes the duration from configuration.
func (e *Engine) SetPhase(p models.Phase) {
	e.setPhaseAt(p, e.clock.Now())
}

func (e *Engine) setPhaseAt(p models.Phase, now time.Time) {
	e.phase = p
	e.elapsed = 0
	e.startRef = now
	e.hasRef = true
	e.started = true
	e.duration = e.configuredDuration(p)
}

// Start begins or resumes the countdown. No-op while already running.
func (e *Engine) Start() {
	if e.running {
		return
	}
	if !e.started && e.elapsed == 0 {
		e.SetPhase(models.PhaseFocus)
	} else {
		// Rebase the reference so previously elapsed time is preserved.
		e.startRef = e.clock.Now().Add(-e.elapsed)
		e.hasRef = true
	}
	e.running = true
}

// Pause freezes the countdown. No-op while not running.
func (e *Engine) Pause() {
	if !e.running {
		return
	}
	e.syncElapsed(e.clock.Now())
	e.running = false
}

// Toggle pauses if running, otherwise starts. Returns the new running
// state.
func (e *Engine) Toggle() bool {
	if e.running {
		e.Pause()
	} else {
		e.Start()
	}
	return e.running
}

// Reset returns to FOCUS at cycle zero, not running, with the duration
// recomputed from the current focus configuration.
func (e *Engine) Reset() {
	e.running = false
	e.started = false
	e.hasRef = false
	e.phase = models.PhaseFocus
	e.cycleCount = 0
	e.elapsed = 0
	e.duration = e.configuredDuration(models.PhaseFocus)
}

// Tick advances the countdown to now. When the current phase runs out
// it performs the transition atomically and reports the completed
// phase; callers observe only the state after the transition.
func (e *Engine) Tick(now time.Time) (Completion, bool) {
	if !e.running {
		return Completion{}, false
	}
	if !e.hasRef {
		e.startRef = now
		e.hasRef = true
	}
	e.syncElapsed(now)
	if e.elapsed < e.duration {
		return Completion{}, false
	}
	done := Completion{
		Phase:     e.phase,
		StartedAt: e.startRef,
		EndedAt:   now,
		Duration:  e.duration,
	}
	e.advance(now)
	done.CycleCount = e.cycleCount
	return done, true
}

func (e *Engine) syncElapsed(now time.Time) {
	e.elapsed = now.Sub(e.startRef)
	if e.elapsed < 0 {
		e.elapsed = 0
	}
	if e.elapsed > e.duration {
		e.elapsed = e.duration
	}
}

// advance performs the phase transition. The cycle count increments
// only when a focus phase ends.
func (e *Engine) advance(now time.Time) {
	next := models.PhaseFocus
	if e.phase == models.PhaseFocus {
		e.cycleCount++
		cycles := e.source.CyclesBeforeLong()
		if cycles > 0 && e.cycleCount%cycles == 0 {
			next = models.PhaseLongBreak
		} else {
			next = models.PhaseShortBreak
		}
	}
	e.setPhaseAt(next, now)
}

// Running reports whether the countdown is advancing.
func (e *Engine) Running() bool { return e.running }

// Started reports whether any phase has begun since the last reset.
func (e *Engine) Started() bool { return e.started }

// Phase returns the current interval kind.
func (e *Engine) Phase() models.Phase { return e.phase }

// CycleCount returns the number of focus phases completed since reset.
func (e *Engine) CycleCount() int { return e.cycleCount }

// Elapsed returns the time consumed in the current phase.
func (e *Engine) Elapsed() time.Duration { return e.elapsed }

// Duration returns the total length of the current phase.
func (e *Engine) Duration() time.Duration { return e.duration }

// Remaining returns the time left in the current phase, never negative.
func (e *Engine) Remaining() time.Duration {
	rem := e.duration - e.elapsed
	if rem < 0 {
		return 0
	}
	return rem
}

// Progress returns elapsed/duration in [0, 1], or 0 for a zero duration.
func (e *Engine) Progress() float64 {
	if e.duration <= 0 {
		return 0
	}
	p := float64(e.elapsed) / float64(e.duration)
	if p > 1 {
		return 1
	}
	return p
}
