package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erkinbekov/tomatea/internal/config"
	"github.com/erkinbekov/tomatea/internal/timer"
	"github.com/erkinbekov/tomatea/internal/util"
)

// Model is the root bubbletea model: one screen holding the countdown,
// the progress bar, and the settings fields.
type Model struct {
	ctx    context.Context
	store  Store
	engine *timer.Engine
	inputs *inputSet

	progress   progress.Model
	theme      Theme
	themeName  string
	tickSeq    int
	todayFocus int
	status     string

	width, height int
}

// NewModel builds the model from file configuration, letting stored
// database settings override it.
func NewModel(ctx context.Context, store Store, cfg config.FileConfig) Model {
	cfg = overlayStoredSettings(ctx, store, cfg)

	inputs := newInputSet(cfg)
	m := Model{
		ctx:       ctx,
		store:     store,
		inputs:    inputs,
		engine:    timer.NewEngine(timer.SystemClock, inputs),
		progress:  progress.New(progress.WithDefaultGradient()),
		theme:     themeByName(cfg.Theme),
		themeName: cfg.Theme,
	}
	m.progress.Width = config.ProgressBarWidth

	count, err := store.CountFocusForDate(ctx, time.Now().Format("2006-01-02"))
	if err != nil {
		util.LogError("count focus sessions", err)
	}
	m.todayFocus = count
	return m
}

// overlayStoredSettings replaces file-config values with settings
// previously saved from the UI.
func overlayStoredSettings(ctx context.Context, store Store, cfg config.FileConfig) config.FileConfig {
	if v, ok := storedInt(ctx, store, config.SettingFocusMinutes); ok {
		cfg.FocusMinutes = v
	}
	if v, ok := storedInt(ctx, store, config.SettingShortMinutes); ok {
		cfg.ShortMinutes = v
	}
	if v, ok := storedInt(ctx, store, config.SettingLongMinutes); ok {
		cfg.LongMinutes = v
	}
	if v, ok := storedInt(ctx, store, config.SettingCycles); ok {
		cfg.CyclesBeforeLong = v
	}
	if v, ok := store.GetSetting(ctx, config.SettingTheme); ok {
		cfg.Theme = v
	}
	return cfg
}

func storedInt(ctx context.Context, store Store, key string) (int, bool) {
	raw, ok := store.GetSetting(ctx, key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
