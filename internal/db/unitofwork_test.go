package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func countEntries(t *testing.T, uow *db.SQLiteUnitOfWork) int {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	})
	require.NoError(t, err)
	return n
}

func insertEntry(ctx context.Context, tx db.DBTX, slot int) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO entries (date, slot, kind, tag_id) VALUES ('2026-10-12', ?, 'assigned', 'work')`, slot)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertEntry(ctx, tx, 1); err != nil {
			return err
		}
		return insertEntry(ctx, tx, 2)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countEntries(t, uow))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newUoW(t)
	boom := errors.New("replace failed halfway")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertEntry(ctx, tx, 1); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countEntries(t, uow))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertEntry(ctx, tx, 1)
			panic("boom")
		})
	})
	assert.Equal(t, 0, countEntries(t, uow))
}
