package database

import (
	"context"

	"github.com/erkinbekov/tomatea/internal/models"
)

// SessionRepository defines session-log operations.
type SessionRepository interface {
	RecordSession(ctx context.Context, s models.Session) (int64, error)
	SessionsForDate(ctx context.Context, date string) ([]models.Session, error)
	CountFocusForDate(ctx context.Context, date string) (int, error)
}

// SettingsRepository defines key/value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Store combines all repository interfaces.
type Store interface {
	SessionRepository
	SettingsRepository
}

var _ Store = (*Database)(nil)
