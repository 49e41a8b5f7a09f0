package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"wikiwalk/internal/domain"
)

// TrophyStore persists trophy progress. Only the trophy engine writes
// through it; everything else reads.
type TrophyStore struct {
	db *sqlx.DB
}

func NewTrophyStore(db *sqlx.DB) *TrophyStore {
	return &TrophyStore{db: db}
}

type trophyRow struct {
	ID          string        `db:"id"`
	Value       int           `db:"value"`
	CompletedAt sql.NullInt64 `db:"completed_at"`
}

func (r trophyRow) toDomain() domain.TrophyProgress {
	return domain.TrophyProgress{
		ID:          r.ID,
		Value:       r.Value,
		CompletedAt: fromNullMillis(r.CompletedAt),
	}
}

// UpsertValue writes the recomputed progress value, inserting the row on
// first sight. completed_at is never touched here.
func (s *TrophyStore) UpsertValue(ctx context.Context, id string, value int) error {
	query := `
		INSERT INTO trophy_progress (id, value)
		VALUES (?, ?)
		ON CONFLICT (id) DO UPDATE SET value = excluded.value`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, value)
	return err
}

// Complete stamps completed_at if it is still null and reports whether this
// call performed the transition. Completion is never revoked.
func (s *TrophyStore) Complete(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE trophy_progress SET completed_at = ? WHERE id = ? AND completed_at IS NULL",
		toMillis(at),
		id,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *TrophyStore) Get(ctx context.Context, id string) (*domain.TrophyProgress, error) {
	var row trophyRow
	query := "SELECT id, value, completed_at FROM trophy_progress WHERE id = ?"

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	progress := row.toDomain()
	return &progress, nil
}

func (s *TrophyStore) List(ctx context.Context) ([]domain.TrophyProgress, error) {
	var rows []trophyRow
	query := "SELECT id, value, completed_at FROM trophy_progress ORDER BY id"

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query); err != nil {
		return nil, err
	}

	progress := make([]domain.TrophyProgress, len(rows))
	for i, r := range rows {
		progress[i] = r.toDomain()
	}
	return progress, nil
}
