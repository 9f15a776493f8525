package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/slotlog/internal/db"
	"github.com/alexanderramin/slotlog/internal/domain"
)

type SQLiteTagRepo struct {
	db db.DBTX
}

func NewSQLiteTagRepo(conn db.DBTX) *SQLiteTagRepo {
	return &SQLiteTagRepo{db: conn}
}

func (r *SQLiteTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color FROM tags ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}
	return tags, nil
}

func (r *SQLiteTagRepo) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.QueryRowContext(ctx, `SELECT id, name, color FROM tags WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.Color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wrapNotFound("tag " + id)
		}
		return nil, fmt.Errorf("getting tag: %w", err)
	}
	return &t, nil
}

func (r *SQLiteTagRepo) Create(ctx context.Context, t domain.Tag) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO tags (id, name, color) VALUES (?, ?, ?)`, t.ID, t.Name, t.Color)
	if err != nil {
		return fmt.Errorf("creating tag: %w", err)
	}
	return nil
}

func (r *SQLiteTagRepo) Update(ctx context.Context, t domain.Tag) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tags SET name = ?, color = ? WHERE id = ?`, t.Name, t.Color, t.ID)
	if err != nil {
		return fmt.Errorf("updating tag: %w", err)
	}
	return requireAffected(res, "tag "+t.ID)
}

func (r *SQLiteTagRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}
	return requireAffected(res, "tag "+id)
}

func (r *SQLiteTagRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tags`); err != nil {
		return fmt.Errorf("clearing tags: %w", err)
	}
	return nil
}
