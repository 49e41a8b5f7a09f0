package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"wikiwalk/internal/domain"
)

type AreaStore struct {
	db *sqlx.DB
}

func NewAreaStore(db *sqlx.DB) *AreaStore {
	return &AreaStore{db: db}
}

type areaRow struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	ArticleURL     string         `db:"article_url"`
	ThumbnailURL   sql.NullString `db:"thumbnail_url"`
	Country        string         `db:"country"`
	Type           string         `db:"type"`
	DiscoveredAt   int64          `db:"discovered_at"`
	TotalCount     int            `db:"total_count"`
	CollectedCount int            `db:"collected_count"`
}

func (r areaRow) toDomain() domain.Area {
	area := domain.Area{
		ID:             r.ID,
		Name:           r.Name,
		ArticleURL:     r.ArticleURL,
		Country:        r.Country,
		Type:           r.Type,
		DiscoveredAt:   fromMillis(r.DiscoveredAt),
		TotalCount:     r.TotalCount,
		CollectedCount: r.CollectedCount,
	}
	if r.ThumbnailURL.Valid {
		area.ThumbnailURL = &r.ThumbnailURL.String
	}
	return area
}

// Discover inserts the area if its id is unknown. Re-discovery is a no-op:
// descriptive fields and discovered_at keep their first-written values.
func (s *AreaStore) Discover(ctx context.Context, area *domain.Area) error {
	query := `
		INSERT OR IGNORE INTO areas (id, name, article_url, thumbnail_url, country, type, discovered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		area.ID,
		area.Name,
		area.ArticleURL,
		area.ThumbnailURL,
		area.Country,
		area.Type,
		toMillis(time.Now()),
	)
	return err
}

// areaSelect derives total_count and collected_count at read time rather
// than maintaining counter columns that could drift.
const areaSelect = `
	SELECT t.id, t.name, t.article_url, t.thumbnail_url, t.country, t.type, t.discovered_at,
		COUNT(a.id) AS total_count,
		COALESCE(SUM(CASE WHEN a.collected_at IS NOT NULL THEN 1 ELSE 0 END), 0) AS collected_count
	FROM areas t
	LEFT JOIN articles a ON a.area_id = t.id`

func (s *AreaStore) List(ctx context.Context) ([]domain.Area, error) {
	var rows []areaRow
	query := areaSelect + `
	GROUP BY t.id
	ORDER BY t.discovered_at, t.id`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query); err != nil {
		return nil, err
	}

	areas := make([]domain.Area, len(rows))
	for i, r := range rows {
		areas[i] = r.toDomain()
	}
	return areas, nil
}

func (s *AreaStore) Get(ctx context.Context, id string) (*domain.Area, error) {
	var row areaRow
	query := areaSelect + `
	WHERE t.id = ?
	GROUP BY t.id`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	area := row.toDomain()
	return &area, nil
}

// Count reports the number of discovered areas, the aggregate behind the
// discover_areas trophies.
func (s *AreaStore) Count(ctx context.Context) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, "SELECT COUNT(*) FROM areas")
	return count, err
}
