package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erkinbekov/tomatea/internal/config"
	"github.com/erkinbekov/tomatea/internal/models"
	"github.com/erkinbekov/tomatea/internal/timer"
)

// Field indices in tab order.
const (
	fieldFocus = iota
	fieldShort
	fieldLong
	fieldCycles
	fieldCount
)

// inputSet owns the four numeric settings fields. It implements
// timer.ConfigSource, parsing its current field values on demand so the
// engine always sees validated numbers. Held by pointer so the engine's
// view stays current as the Bubble Tea model is copied around.
type inputSet struct {
	fields  [fieldCount]textinput.Model
	focused int // index into fields, or -1 when none
}

func newNumericInput(value int) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = config.MaxFieldDigits
	ti.Width = config.FieldInputWidth
	ti.Prompt = ""
	ti.SetValue(strconv.Itoa(value))
	return ti
}

func newInputSet(cfg config.FileConfig) *inputSet {
	s := &inputSet{focused: -1}
	s.fields[fieldFocus] = newNumericInput(cfg.FocusMinutes)
	s.fields[fieldShort] = newNumericInput(cfg.ShortMinutes)
	s.fields[fieldLong] = newNumericInput(cfg.LongMinutes)
	s.fields[fieldCycles] = newNumericInput(cfg.CyclesBeforeLong)
	return s
}

// Durations implements timer.ConfigSource.
func (s *inputSet) Durations() models.Durations {
	return models.Durations{
		Focus: timer.ParseMinutes(s.fields[fieldFocus].Value(), config.DefaultFocusMinutes, config.MinFocusMinutes),
		Short: timer.ParseMinutes(s.fields[fieldShort].Value(), config.DefaultShortMinutes, config.MinShortMinutes),
		Long:  timer.ParseMinutes(s.fields[fieldLong].Value(), config.DefaultLongMinutes, config.MinLongMinutes),
	}
}

// CyclesBeforeLong implements timer.ConfigSource.
func (s *inputSet) CyclesBeforeLong() int {
	return timer.ParseMinutes(s.fields[fieldCycles].Value(), config.DefaultCyclesBeforeLong, config.MinCycles)
}

func (s *inputSet) anyFocused() bool { return s.focused >= 0 }

func (s *inputSet) focusField(idx int) {
	s.blur()
	if idx < 0 || idx >= fieldCount {
		return
	}
	s.focused = idx
	s.fields[idx].Focus()
}

func (s *inputSet) focusNext() {
	if s.focused < 0 {
		s.focusField(fieldFocus)
		return
	}
	s.focusField((s.focused + 1) % fieldCount)
}

func (s *inputSet) focusPrev() {
	if s.focused < 0 {
		s.focusField(fieldCycles)
		return
	}
	s.focusField((s.focused + fieldCount - 1) % fieldCount)
}

func (s *inputSet) blur() {
	if s.focused >= 0 {
		s.fields[s.focused].Blur()
	}
	s.focused = -1
}

// update forwards a message to the focused field.
func (s *inputSet) update(msg tea.Msg) tea.Cmd {
	if s.focused < 0 {
		return nil
	}
	var cmd tea.Cmd
	s.fields[s.focused], cmd = s.fields[s.focused].Update(msg)
	return cmd
}

// synchronize commits the focused field: the edited value is parsed
// (falling back to its default), the two linked duration fields are
// recomputed to hold the 1 : 0.2 : 0.6 ratio, and all fields are
// rewritten with the validated numbers. The cycles field is not
// ratio-linked. Returns the resulting configuration.
func (s *inputSet) synchronize() (models.Durations, int) {
	var d models.Durations
	switch s.focused {
	case fieldShort:
		d = timer.SyncFromShort(timer.ParseMinutes(s.fields[fieldShort].Value(), config.DefaultShortMinutes, config.MinShortMinutes))
	case fieldLong:
		d = timer.SyncFromLong(timer.ParseMinutes(s.fields[fieldLong].Value(), config.DefaultLongMinutes, config.MinLongMinutes))
	case fieldCycles:
		// Not ratio-linked; just revalidate what is already there.
		d = s.Durations()
	default:
		d = timer.SyncFromFocus(timer.ParseMinutes(s.fields[fieldFocus].Value(), config.DefaultFocusMinutes, config.MinFocusMinutes))
	}
	cycles := s.CyclesBeforeLong()
	s.setValues(d, cycles)
	return d, cycles
}

func (s *inputSet) setValues(d models.Durations, cycles int) {
	s.fields[fieldFocus].SetValue(strconv.Itoa(d.Focus))
	s.fields[fieldShort].SetValue(strconv.Itoa(d.Short))
	s.fields[fieldLong].SetValue(strconv.Itoa(d.Long))
	s.fields[fieldCycles].SetValue(strconv.Itoa(cycles))
}
