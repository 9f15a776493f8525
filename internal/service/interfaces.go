package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/slotlog/internal/app"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/resolver"
)

type TagService interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id string) (*domain.Tag, error)
	// Add stores a new tag. The id is derived from the name; an empty color
	// picks the next palette color.
	Add(ctx context.Context, name, color string) (*domain.Tag, error)
	Update(ctx context.Context, id string, patch TagPatch) (*domain.Tag, error)
	// Delete removes the tag together with its schedules and the entries that
	// assign it. Clear entries stay.
	Delete(ctx context.Context, id string) (*TagDeleteResult, error)
}

type TagPatch struct {
	Name  *string
	Color *string
}

type TagDeleteResult struct {
	SchedulesRemoved int64
	EntriesRemoved   int64
}

type ScheduleService interface {
	List(ctx context.Context) ([]domain.DailySchedule, error)
	GetByID(ctx context.Context, id string) (*domain.DailySchedule, error)
	// Add normalizes raw and appends it after every existing schedule.
	Add(ctx context.Context, raw domain.RawSchedule) (*domain.DailySchedule, error)
	// Update merges patch over the stored schedule and re-normalizes it. The
	// id and position are kept.
	Update(ctx context.Context, id string, patch domain.SchedulePatch) (*domain.DailySchedule, error)
	Delete(ctx context.Context, id string) error
}

type DayService interface {
	Day(ctx context.Context, req app.DayRequest) (*app.DayResponse, error)
	SetEntry(ctx context.Context, date string, slot int, tagID string) (*app.SetEntriesResult, error)
	SetEntries(ctx context.Context, req app.SetEntriesRequest) (*app.SetEntriesResult, error)
	Override(ctx context.Context, date string, slot int) (domain.Override, error)
}

type StatsService interface {
	DayStats(ctx context.Context, date string) (*resolver.DayStats, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error)
}

type ReminderService interface {
	PreviousSlotLogged(ctx context.Context, now time.Time) (bool, error)
	Settings(ctx context.Context) (*domain.Settings, error)
}

type SnapshotService interface {
	Export(ctx context.Context, w io.Writer) (*app.SnapshotCounts, error)
	Import(ctx context.Context, r io.Reader) (*app.SnapshotCounts, error)
}
