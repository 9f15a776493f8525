package app

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/slotlog/internal/domain"
)

type DayUseCase interface {
	Day(ctx context.Context, req DayRequest) (*DayResponse, error)
}

type LogSlotsUseCase interface {
	SetEntries(ctx context.Context, req SetEntriesRequest) (*SetEntriesResult, error)
}

type ReminderUseCase interface {
	PreviousSlotLogged(ctx context.Context, now time.Time) (bool, error)
}

type SettingsUseCase interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// SnapshotCounts reports how many records an export or import carried.
type SnapshotCounts struct {
	Tags      int
	Schedules int
	Entries   int
}

type SnapshotUseCase interface {
	Export(ctx context.Context, w io.Writer) (*SnapshotCounts, error)
	Import(ctx context.Context, r io.Reader) (*SnapshotCounts, error)
}
