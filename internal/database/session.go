package database

import (
	"context"

	"github.com/erkinbekov/tomatea/internal/models"
)

// RecordSession appends one completed phase to the session log and
// returns its row ID.
func (d *Database) RecordSession(ctx context.Context, s models.Session) (int64, error) {
	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO sessions (phase, started_at, ended_at, duration_seconds, cycle_index)
		VALUES (?, ?, ?, ?, ?)`,
		s.Phase, s.StartedAt, s.EndedAt, s.DurationSec, s.CycleIndex)
	if err != nil {
		return 0, wrapSessionErr("record", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapSessionErr("record", 0, err)
	}
	return id, nil
}

// SessionsForDate returns all sessions whose start falls on the given
// local date (formatted 2006-01-02), oldest first.
func (d *Database) SessionsForDate(ctx context.Context, date string) ([]models.Session, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, phase, started_at, ended_at, duration_seconds, cycle_index
		FROM sessions
		WHERE date(started_at, 'localtime') = ?
		ORDER BY started_at ASC`, date)
	if err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.Phase, &s.StartedAt, &s.EndedAt, &s.DurationSec, &s.CycleIndex); err != nil {
			return nil, wrapSessionErr("scan", 0, err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// CountFocusForDate returns how many focus phases completed on the
// given local date.
func (d *Database) CountFocusForDate(ctx context.Context, date string) (int, error) {
	var count int
	err := d.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sessions
		WHERE phase = 'focus' AND date(started_at, 'localtime') = ?`, date).Scan(&count)
	if err != nil {
		return 0, wrapSessionErr("count", 0, err)
	}
	return count, nil
}
