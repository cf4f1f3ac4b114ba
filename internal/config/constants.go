package config

import "time"

// Default interval lengths in minutes. Used whenever a field is empty,
// non-numeric, or below its minimum.
const (
	DefaultFocusMinutes = 25
	DefaultShortMinutes = 5
	DefaultLongMinutes  = 15

	// DefaultCyclesBeforeLong is how many focus phases complete before
	// a long break replaces the short one.
	DefaultCyclesBeforeLong = 4
)

// Field bounds. Focus and long break share the higher floor; the short
// break and the cycle count may go down to 1.
const (
	MinFocusMinutes = 5
	MinShortMinutes = 1
	MinLongMinutes  = 5
	MinCycles       = 1
	MaxMinutes      = 9000
)

// TickInterval is how often the countdown redraws while running.
const TickInterval = time.Second

// Database/application settings.
const (
	AppName    = "tomatea"
	DBFileName = "tomatea.db"
)

// Keys persisted in the settings table.
const (
	SettingFocusMinutes = "focus_minutes"
	SettingShortMinutes = "short_minutes"
	SettingLongMinutes  = "long_minutes"
	SettingCycles       = "cycles_before_long"
	SettingTheme        = "theme"
)
