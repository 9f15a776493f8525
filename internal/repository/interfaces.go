package repository

import (
	"context"

	"github.com/alexanderramin/slotlog/internal/domain"
)

type TagRepo interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id string) (*domain.Tag, error)
	Create(ctx context.Context, t domain.Tag) error
	Update(ctx context.Context, t domain.Tag) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// ScheduleRepo stores schedules in insertion order. List and GetByID return
// normalized schedules; ListRaw returns the rows as stored.
type ScheduleRepo interface {
	List(ctx context.Context) ([]domain.DailySchedule, error)
	ListRaw(ctx context.Context) ([]domain.RawSchedule, error)
	GetByID(ctx context.Context, id string) (*domain.DailySchedule, error)
	Create(ctx context.Context, s domain.DailySchedule) error
	Update(ctx context.Context, s domain.DailySchedule) error
	Delete(ctx context.Context, id string) error
	DeleteByTag(ctx context.Context, tagID string) (int64, error)
	DeleteAll(ctx context.Context) error
}

// EntryRepo stores manual overrides. The collection is written as a whole.
type EntryRepo interface {
	List(ctx context.Context) ([]domain.TimeEntry, error)
	ListByDate(ctx context.Context, date string) ([]domain.TimeEntry, error)
	ReplaceAll(ctx context.Context, entries []domain.TimeEntry) error
	DeleteAssignedTag(ctx context.Context, tagID string) (int64, error)
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s domain.Settings) error
}
