package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/repository"
	"github.com/alexanderramin/slotlog/internal/testutil"
	"github.com/stretchr/testify/require"
)

const (
	monday  = "2026-10-12"
	tuesday = "2026-10-13"
)

// fixedNow is Monday 2026-10-12 09:35 local time, inside slot 19 at 30 minutes.
var fixedNow = time.Date(2026, 10, 12, 9, 35, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

type testEnv struct {
	db        *sql.DB
	uow       db.UnitOfWork
	tags      *repository.SQLiteTagRepo
	schedules *repository.SQLiteScheduleRepo
	entries   *repository.SQLiteEntryRepo
	settings  *repository.SQLiteSettingsRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		tags:      repository.NewSQLiteTagRepo(database),
		schedules: repository.NewSQLiteScheduleRepo(database),
		entries:   repository.NewSQLiteEntryRepo(database),
		settings:  repository.NewSQLiteSettingsRepo(database),
	}
}

func (e *testEnv) dayService() *dayService {
	svc := NewDayService(e.tags, e.schedules, e.entries, e.settings, e.uow).(*dayService)
	svc.now = clock
	return svc
}

func (e *testEnv) addSchedule(t *testing.T, s domain.DailySchedule) {
	t.Helper()
	require.NoError(t, e.schedules.Create(context.Background(), s))
}

func (e *testEnv) storedEntries(t *testing.T) []domain.TimeEntry {
	t.Helper()
	entries, err := e.entries.List(context.Background())
	require.NoError(t, err)
	return entries
}
