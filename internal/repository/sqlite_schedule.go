package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/resolver"
)

const scheduleColumns = `id, tag_id, start_minute, end_minute, weekdays, starts_on`

// SQLiteScheduleRepo keeps schedules ordered by a position column assigned on
// insert. Rows are repaired by the normalizer on the way out, never rewritten.
type SQLiteScheduleRepo struct {
	db  db.DBTX
	now func() time.Time
}

func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn, now: time.Now}
}

func (r *SQLiteScheduleRepo) ListRaw(ctx context.Context) ([]domain.RawSchedule, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+scheduleColumns+` FROM schedules ORDER BY position, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var raws []domain.RawSchedule
	for rows.Next() {
		raw, err := scanRawSchedule(rows)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}
	return raws, nil
}

func (r *SQLiteScheduleRepo) List(ctx context.Context) ([]domain.DailySchedule, error) {
	raws, err := r.ListRaw(ctx)
	if err != nil {
		return nil, err
	}
	return resolver.NormalizeSchedules(raws, r.now()), nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.DailySchedule, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = ?`, id)
	raw, err := scanRawSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wrapNotFound("schedule " + id)
		}
		return nil, err
	}
	s := resolver.NormalizeSchedule(raw, r.now())
	return &s, nil
}

// Create appends s after every existing schedule.
func (r *SQLiteScheduleRepo) Create(ctx context.Context, s domain.DailySchedule) error {
	query := `INSERT INTO schedules (` + scheduleColumns + `, position)
		VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM schedules))`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.TagID, s.StartMinute, s.EndMinute, encodeWeekdays(s.Weekdays), s.StartsOn)
	if err != nil {
		return fmt.Errorf("creating schedule: %w", err)
	}
	return nil
}

// Update rewrites every field of s in place; its position is unchanged.
func (r *SQLiteScheduleRepo) Update(ctx context.Context, s domain.DailySchedule) error {
	query := `UPDATE schedules SET tag_id = ?, start_minute = ?, end_minute = ?, weekdays = ?, starts_on = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.TagID, s.StartMinute, s.EndMinute, encodeWeekdays(s.Weekdays), s.StartsOn, s.ID)
	if err != nil {
		return fmt.Errorf("updating schedule: %w", err)
	}
	return requireAffected(res, "schedule "+s.ID)
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	return requireAffected(res, "schedule "+id)
}

func (r *SQLiteScheduleRepo) DeleteByTag(ctx context.Context, tagID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE tag_id = ?`, tagID)
	if err != nil {
		return 0, fmt.Errorf("deleting schedules for tag: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteScheduleRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedules`); err != nil {
		return fmt.Errorf("clearing schedules: %w", err)
	}
	return nil
}

func scanRawSchedule(s rowScanner) (domain.RawSchedule, error) {
	var (
		id, tagID, weekdays, startsOn sql.NullString
		start, end                    any
	)
	if err := s.Scan(&id, &tagID, &start, &end, &weekdays, &startsOn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RawSchedule{}, err
		}
		return domain.RawSchedule{}, fmt.Errorf("scanning schedule: %w", err)
	}
	return domain.RawSchedule{
		ID:          nullableString(id),
		TagID:       nullableString(tagID),
		StartMinute: looseInt(start),
		EndMinute:   looseInt(end),
		Weekdays:    decodeWeekdays(weekdays),
		StartsOn:    nullableString(startsOn),
	}, nil
}
