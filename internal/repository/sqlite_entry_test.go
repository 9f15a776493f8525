package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/slotlog/internal/domain"
	"github.com/alexanderramin/slotlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRepo_ReplaceAllAndList(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	entries := []domain.TimeEntry{
		testutil.NewTestEntry("2026-10-13", 2, domain.Assign("work")),
		testutil.NewTestEntry("2026-10-12", 5, domain.Clear()),
		testutil.NewTestEntry("2026-10-12", 1, domain.Assign("sleep")),
	}
	require.NoError(t, repo.ReplaceAll(ctx, entries))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeEntry{entries[2], entries[1], entries[0]}, got)

	day, err := repo.ListByDate(ctx, "2026-10-12")
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeEntry{entries[2], entries[1]}, day)
}

func TestEntryRepo_ReplaceAllDropsPreviousCollection(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.TimeEntry{testutil.NewTestEntry("2026-10-12", 1, domain.Clear())}))
	require.NoError(t, repo.ReplaceAll(ctx, []domain.TimeEntry{testutil.NewTestEntry("2026-10-12", 9, domain.Assign("work"))}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 9, got[0].Slot)
}

func TestEntryRepo_ReplaceAllSkipsInheritAndDuplicates(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.TimeEntry{
		testutil.NewTestEntry("2026-10-12", 1, domain.Inherit()),
		testutil.NewTestEntry("2026-10-12", 2, domain.Assign("work")),
		testutil.NewTestEntry("2026-10-12", 2, domain.Assign("break")),
	}))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Assign("break"), got[0].Override)
}

func TestEntryRepo_ReplaceAllEmptyClearsEverything(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.TimeEntry{testutil.NewTestEntry("2026-10-12", 1, domain.Clear())}))
	require.NoError(t, repo.ReplaceAll(ctx, nil))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEntryRepo_DeleteAssignedTagKeepsClears(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.TimeEntry{
		testutil.NewTestEntry("2026-10-12", 1, domain.Assign("work")),
		testutil.NewTestEntry("2026-10-12", 2, domain.Clear()),
		testutil.NewTestEntry("2026-10-13", 1, domain.Assign("work")),
		testutil.NewTestEntry("2026-10-13", 2, domain.Assign("sleep")),
	}))

	n, err := repo.DeleteAssignedTag(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeEntry{
		testutil.NewTestEntry("2026-10-12", 2, domain.Clear()),
		testutil.NewTestEntry("2026-10-13", 2, domain.Assign("sleep")),
	}, got)
}

func TestEntryRepo_LegacyClearTagReadsAsClear(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteEntryRepo(database)
	ctx := context.Background()

	_, err := database.Exec(`INSERT INTO entries (date, slot, kind, tag_id) VALUES ('2026-10-12', 4, 'assigned', ?)`,
		domain.LegacyClearTagID)
	require.NoError(t, err)

	got, err := repo.ListByDate(ctx, "2026-10-12")
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeEntry{testutil.NewTestEntry("2026-10-12", 4, domain.Clear())}, got)

	var tagID string
	require.NoError(t, database.QueryRow(`SELECT tag_id FROM entries WHERE slot = 4`).Scan(&tagID))
	assert.Equal(t, domain.LegacyClearTagID, tagID, "opening the database rewrites nothing")
}
