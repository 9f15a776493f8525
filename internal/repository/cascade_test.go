package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// removeTag runs the same three deletes the tag service issues when a tag is
// removed. The schema has no foreign keys, so the sweep lives in one unit of
// work.
func removeTag(ctx context.Context, uow db.UnitOfWork, tagID string) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := NewSQLiteTagRepo(tx).Delete(ctx, tagID); err != nil {
			return err
		}
		if _, err := NewSQLiteScheduleRepo(tx).DeleteByTag(ctx, tagID); err != nil {
			return err
		}
		_, err := NewSQLiteEntryRepo(tx).DeleteAssignedTag(ctx, tagID)
		return err
	})
}

func seedCascade(t *testing.T, ctx context.Context, conn db.DBTX) {
	t.Helper()
	require.NoError(t, NewSQLiteTagRepo(conn).Create(ctx, testutil.NewTestTag("gym")))

	schedRepo := NewSQLiteScheduleRepo(conn)
	require.NoError(t, schedRepo.Create(ctx, testutil.NewTestSchedule("gym", 360, 420, testutil.WithScheduleID("s-gym"))))
	require.NoError(t, schedRepo.Create(ctx, testutil.NewTestSchedule("work", 540, 1020, testutil.WithScheduleID("s-work"))))

	require.NoError(t, NewSQLiteEntryRepo(conn).ReplaceAll(ctx, []domain.TimeEntry{
		testutil.NewTestEntry("2026-10-12", 12, domain.Assign("gym")),
		testutil.NewTestEntry("2026-10-12", 13, domain.Clear()),
		testutil.NewTestEntry("2026-10-12", 20, domain.Assign("work")),
	}))
}

func TestCascadeDelete_TagSweepsSchedulesAndAssignedEntries(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	seedCascade(t, ctx, database)

	require.NoError(t, removeTag(ctx, db.NewSQLiteUnitOfWork(database), "gym"))

	_, err := NewSQLiteTagRepo(database).GetByID(ctx, "gym")
	assert.ErrorIs(t, err, ErrNotFound)

	schedules, err := NewSQLiteScheduleRepo(database).List(ctx)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "s-work", schedules[0].ID)

	entries, err := NewSQLiteEntryRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeEntry{
		testutil.NewTestEntry("2026-10-12", 13, domain.Clear()),
		testutil.NewTestEntry("2026-10-12", 20, domain.Assign("work")),
	}, entries)
}

func TestCascadeDelete_FailedSweepRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	seedCascade(t, ctx, database)

	boom := errors.New("disk full")
	// The third exec is the entry delete; the tag and schedule deletes before
	// it must be undone.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: boom}
	require.ErrorIs(t, removeTag(ctx, uow, "gym"), boom)

	_, err := NewSQLiteTagRepo(database).GetByID(ctx, "gym")
	require.NoError(t, err)

	schedules, err := NewSQLiteScheduleRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Len(t, schedules, 2)

	entries, err := NewSQLiteEntryRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
