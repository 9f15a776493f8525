package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/alexanderramin/slotlog/internal/domain"
)

type SQLiteEntryRepo struct {
	db db.DBTX
}

func NewSQLiteEntryRepo(conn db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: conn}
}

func (r *SQLiteEntryRepo) List(ctx context.Context) ([]domain.TimeEntry, error) {
	return r.query(ctx, `SELECT date, slot, kind, tag_id FROM entries ORDER BY date, slot`)
}

func (r *SQLiteEntryRepo) ListByDate(ctx context.Context, date string) ([]domain.TimeEntry, error) {
	return r.query(ctx, `SELECT date, slot, kind, tag_id FROM entries WHERE date = ? ORDER BY slot`, date)
}

// ReplaceAll swaps the stored collection for entries. Callers run it inside a
// unit of work so readers never see a partial collection. Later entries for
// the same (date, slot) win.
func (r *SQLiteEntryRepo) ReplaceAll(ctx context.Context, entries []domain.TimeEntry) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}
	for _, e := range entries {
		if !e.Override.IsSet() {
			continue
		}
		tagID := ""
		if e.Override.Kind == domain.OverrideAssigned {
			tagID = e.Override.TagID
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO entries (date, slot, kind, tag_id) VALUES (?, ?, ?, ?)`,
			e.Date, e.Slot, string(e.Override.Kind), tagID)
		if err != nil {
			return fmt.Errorf("inserting entry %s/%d: %w", e.Date, e.Slot, err)
		}
	}
	return nil
}

// DeleteAssignedTag drops every entry assigning tagID. Clear entries stay.
func (r *SQLiteEntryRepo) DeleteAssignedTag(ctx context.Context, tagID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE kind = 'assigned' AND tag_id = ?`, tagID)
	if err != nil {
		return 0, fmt.Errorf("deleting entries for tag: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteEntryRepo) query(ctx context.Context, query string, args ...any) ([]domain.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		var (
			e           domain.TimeEntry
			kind, tagID string
		)
		if err := rows.Scan(&e.Date, &e.Slot, &kind, &tagID); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if domain.OverrideKind(kind) == domain.OverrideClear {
			e.Override = domain.Clear()
		} else {
			e.Override = domain.OverrideFromTagID(tagID)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}
