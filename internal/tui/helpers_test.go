package tui

import (
	"context"
	"testing"
	"time"

	"github.com/erkinbekov/tomatea/internal/config"
	"github.com/erkinbekov/tomatea/internal/timer"
	"github.com/golang/mock/gomock"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestModel builds a model on a mock store and a manual clock.
// Settings lookups and writes are allowed freely; session expectations
// are left to individual tests.
func newTestModel(t *testing.T) (Model, *MockStore, *manualClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any(), gomock.Any()).Return("", false).AnyTimes()
	store.EXPECT().SetSetting(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().CountFocusForDate(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	m := NewModel(context.Background(), store, config.DefaultFileConfig())
	clock := &manualClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	m.engine = timer.NewEngine(clock, m.inputs)
	m.width, m.height = 100, 40
	return m, store, clock
}
