package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/slotlog/internal/domain"
)

// Migrate runs all schema migrations. Statements are idempotent so the whole
// list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tags (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '#8B8B8B',
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
	)`,

	// Schedule columns stay nullable: rows written by older versions or
	// imported by hand are repaired by the normalizer on read.
	`CREATE TABLE IF NOT EXISTS schedules (
		id           TEXT PRIMARY KEY,
		tag_id       TEXT,
		start_minute INTEGER,
		end_minute   INTEGER,
		weekdays     TEXT,
		starts_on    TEXT,
		position     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedules_position ON schedules(position)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_tag ON schedules(tag_id)`,

	`CREATE TABLE IF NOT EXISTS entries (
		date   TEXT NOT NULL,
		slot   INTEGER NOT NULL CHECK(slot >= 0),
		kind   TEXT NOT NULL CHECK(kind IN ('clear','assigned')),
		tag_id TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (date, slot)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_tag ON entries(tag_id)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                TEXT PRIMARY KEY DEFAULT 'default',
		interval_min      INTEGER NOT NULL DEFAULT 30,
		clock_format      INTEGER NOT NULL DEFAULT 24,
		notification_mode TEXT NOT NULL DEFAULT 'notify'
	)`,

	`CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// Seed inserts the default tags and the settings row the first time a
// database is opened. Later opens leave user data alone, including deleted
// default tags.
func Seed(db *sql.DB) error {
	ctx := context.Background()

	var seeded string
	err := db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'seeded'`).Scan(&seeded)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking seed marker: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, t := range domain.DefaultTags() {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO tags (id, name, color) VALUES (?, ?, ?)`,
			t.ID, t.Name, t.Color); err != nil {
			return fmt.Errorf("seeding tag %s: %w", t.ID, err)
		}
	}

	def := domain.DefaultSettings()
	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (id, interval_min, clock_format, notification_mode) VALUES ('default', ?, ?, ?)`,
		def.Interval, def.ClockFormat, string(def.NotificationMode)); err != nil {
		return fmt.Errorf("seeding settings: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES ('seeded', '1')`); err != nil {
		return fmt.Errorf("writing seed marker: %w", err)
	}
	return tx.Commit()
}
