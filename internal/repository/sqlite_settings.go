package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/alexanderramin/slotlog/internal/domain"
)

type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

// Get returns the stored settings with invalid values replaced by defaults.
func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	var (
		s    domain.Settings
		mode string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT interval_min, clock_format, notification_mode FROM settings WHERE id = 'default'`).
		Scan(&s.Interval, &s.ClockFormat, &mode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wrapNotFound("settings")
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	s.NotificationMode = domain.NotificationMode(mode)
	s.Normalize()
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s domain.Settings) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings (id, interval_min, clock_format, notification_mode) VALUES ('default', ?, ?, ?)`,
		s.Interval, s.ClockFormat, string(s.NotificationMode))
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
