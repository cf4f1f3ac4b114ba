package timer

import (
	"math"
	"strconv"
	"strings"

	"github.com/erkinbekov/tomatea/internal/config"
	"github.com/erkinbekov/tomatea/internal/models"
	"github.com/erkinbekov/tomatea/internal/util"
)

// The three duration fields keep the standard pomodoro ratio
// Focus : Short : Long = 1 : 0.2 : 0.6. Editing any one field
// recomputes the other two.

// ParseMinutes converts raw field input to a validated minute count.
// Empty, non-numeric, or below-minimum input falls back to def; values
// above the ceiling are clamped.
func ParseMinutes(raw string, def, min int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < min {
		v = def
	}
	return util.Clamp(v, min, config.MaxMinutes)
}

// SyncFromFocus derives the break lengths from an edited focus length.
func SyncFromFocus(focus int) models.Durations {
	focus = util.Clamp(focus, config.MinFocusMinutes, config.MaxMinutes)
	return models.Durations{
		Focus: focus,
		Short: util.Clamp(round(float64(focus)/5), config.MinShortMinutes, config.MaxMinutes),
		Long:  util.Clamp(round(float64(focus)*0.6), config.MinLongMinutes, config.MaxMinutes),
	}
}

// SyncFromShort derives the focus and long-break lengths from an edited
// short-break length.
func SyncFromShort(short int) models.Durations {
	short = util.Clamp(short, config.MinShortMinutes, config.MaxMinutes)
	return models.Durations{
		Focus: util.Clamp(short*5, config.MinFocusMinutes, config.MaxMinutes),
		Short: short,
		Long:  util.Clamp(short*3, config.MinLongMinutes, config.MaxMinutes),
	}
}

// SyncFromLong derives the focus and short-break lengths from an edited
// long-break length.
func SyncFromLong(long int) models.Durations {
	long = util.Clamp(long, config.MinLongMinutes, config.MaxMinutes)
	return models.Durations{
		Focus: util.Clamp(round(float64(long)/0.6), config.MinFocusMinutes, config.MaxMinutes),
		Short: util.Clamp(round(float64(long)/3), config.MinShortMinutes, config.MaxMinutes),
		Long:  long,
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
