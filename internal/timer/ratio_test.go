package timer

import (
	"testing"

	"github.com/erkinbekov/tomatea/internal/config"
)

func TestSyncFromFocusRatios(t *testing.T) {
	d := SyncFromFocus(25)
	if d.Focus != 25 || d.Short != 5 || d.Long != 15 {
		t.Fatalf("SyncFromFocus(25) = %+v", d)
	}

	// Derived values respect their own floors.
	d = SyncFromFocus(5)
	if d.Short != 1 {
		t.Fatalf("short for 5m focus = %d, want 1", d.Short)
	}
	if d.Long != 5 {
		t.Fatalf("long for 5m focus = %d, want floor 5", d.Long)
	}

	// The edited field itself is clamped before propagation.
	d = SyncFromFocus(3)
	if d.Focus != config.MinFocusMinutes {
		t.Fatalf("sub-minimum focus not clamped: %d", d.Focus)
	}
	d = SyncFromFocus(100000)
	if d.Focus != config.MaxMinutes {
		t.Fatalf("oversized focus not clamped: %d", d.Focus)
	}
}

func TestSyncFromShortRatios(t *testing.T) {
	d := SyncFromShort(5)
	if d.Focus != 25 || d.Long != 15 {
		t.Fatalf("SyncFromShort(5) = %+v", d)
	}
	d = SyncFromShort(1)
	if d.Focus != 5 {
		t.Fatalf("focus for 1m short = %d, want 5", d.Focus)
	}
	if d.Long != 5 {
		t.Fatalf("long for 1m short = %d, want floor 5", d.Long)
	}
}

func TestSyncFromLongRatios(t *testing.T) {
	d := SyncFromLong(15)
	if d.Focus != 25 || d.Short != 5 {
		t.Fatalf("SyncFromLong(15) = %+v", d)
	}
	d = SyncFromLong(5)
	if d.Focus != 8 || d.Short != 2 {
		t.Fatalf("SyncFromLong(5) = %+v", d)
	}
}

func TestRatioRoundTripThroughShort(t *testing.T) {
	// For focus lengths on the 5-minute grid the short edit path
	// reproduces the focus length exactly.
	for _, focus := range []int{5, 10, 25, 90, 1000, 9000} {
		d := SyncFromFocus(focus)
		back := SyncFromShort(d.Short)
		if back.Focus != focus {
			t.Errorf("focus %d -> short %d -> focus %d", focus, d.Short, back.Focus)
		}
	}
}

func TestRatioRoundTripThroughLong(t *testing.T) {
	for _, focus := range []int{25, 50, 123, 777, 9000} {
		d := SyncFromFocus(focus)
		back := SyncFromLong(d.Long)
		if diff := back.Focus - focus; diff < -1 || diff > 1 {
			t.Errorf("focus %d -> long %d -> focus %d (off by %d)", focus, d.Long, back.Focus, diff)
		}
	}
}

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		def, min int
		want     int
	}{
		{"empty", "", 25, 5, 25},
		{"non-numeric", "abc", 25, 5, 25},
		{"below minimum", "3", 25, 5, 25},
		{"zero", "0", 4, 1, 4},
		{"valid", "30", 25, 5, 30},
		{"whitespace", " 42 ", 25, 5, 42},
		{"over ceiling", "99999", 25, 5, config.MaxMinutes},
		{"at minimum", "5", 25, 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseMinutes(tc.raw, tc.def, tc.min); got != tc.want {
				t.Fatalf("ParseMinutes(%q, %d, %d) = %d, want %d", tc.raw, tc.def, tc.min, got, tc.want)
			}
		})
	}
}
