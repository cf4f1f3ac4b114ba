package tui

import (
	"context"

	"github.com/erkinbekov/tomatea/internal/database"
	"github.com/erkinbekov/tomatea/internal/models"
)

// Store defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui
type Store interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error

	RecordSession(ctx context.Context, s models.Session) (int64, error)
	SessionsForDate(ctx context.Context, date string) ([]models.Session, error)
	CountFocusForDate(ctx context.Context, date string) (int, error)
}

var _ Store = (*database.Database)(nil)
