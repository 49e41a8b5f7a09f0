package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"wikiwalk/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

type articleRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	ArticleURL   string         `db:"article_url"`
	ThumbnailURL sql.NullString `db:"thumbnail_url"`
	AreaID       string         `db:"area_id"`
	Latitude     float64        `db:"latitude"`
	Longitude    float64        `db:"longitude"`
	CollectedAt  sql.NullInt64  `db:"collected_at"`
}

func (r articleRow) toDomain() domain.Article {
	article := domain.Article{
		ID:         r.ID,
		Name:       r.Name,
		ArticleURL: r.ArticleURL,
		AreaID:     r.AreaID,
		Coords: domain.Coordinate{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
		CollectedAt: fromNullMillis(r.CollectedAt),
	}
	if r.ThumbnailURL.Valid {
		article.ThumbnailURL = &r.ThumbnailURL.String
	}
	return article
}

const articleSelect = `
	SELECT id, name, article_url, thumbnail_url, area_id, latitude, longitude, collected_at
	FROM articles`

// Discover inserts the article if its id is unknown; re-discovery is a no-op.
func (s *ArticleStore) Discover(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT OR IGNORE INTO articles (id, name, article_url, thumbnail_url, area_id, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		article.ID,
		article.Name,
		article.ArticleURL,
		article.ThumbnailURL,
		article.AreaID,
		article.Coords.Latitude,
		article.Coords.Longitude,
	)
	return err
}

// DiscoverBatch inserts every unknown article in the slice. Run it inside a
// transaction when all-or-nothing visibility is required; the statements
// join the transaction carried by ctx.
func (s *ArticleStore) DiscoverBatch(ctx context.Context, articles []domain.Article) error {
	for i := range articles {
		if err := s.Discover(ctx, &articles[i]); err != nil {
			return err
		}
	}
	return nil
}

// Claim marks the article collected. The article is discovered first, so a
// claim on a never-seen id yields both rows' states in one call, and the
// guarded update leaves an existing collected_at untouched.
func (s *ArticleStore) Claim(ctx context.Context, article *domain.Article) error {
	if err := s.Discover(ctx, article); err != nil {
		return err
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE articles SET collected_at = ? WHERE id = ? AND collected_at IS NULL",
		toMillis(time.Now()),
		article.ID,
	)
	return err
}

func (s *ArticleStore) ListByArea(ctx context.Context, areaID string) ([]domain.Article, error) {
	var rows []articleRow
	query := articleSelect + " WHERE area_id = ? ORDER BY name"

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, areaID); err != nil {
		return nil, err
	}
	return mapRows(rows), nil
}

// ListCollected is the source of truth for the collected-ids projection.
func (s *ArticleStore) ListCollected(ctx context.Context) ([]domain.Article, error) {
	var rows []articleRow
	query := articleSelect + " WHERE collected_at IS NOT NULL"

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query); err != nil {
		return nil, err
	}
	return mapRows(rows), nil
}

func mapRows(rows []articleRow) []domain.Article {
	articles := make([]domain.Article, len(rows))
	for i, r := range rows {
		articles[i] = r.toDomain()
	}
	return articles
}

// CountCollected reports the number of collected articles.
func (s *ArticleStore) CountCollected(ctx context.Context) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		"SELECT COUNT(*) FROM articles WHERE collected_at IS NOT NULL")
	return count, err
}

// CountCompleteAreas reports how many areas have at least one article and
// every article collected. An empty areaType counts all settlement classes.
// Areas with zero articles never match; the inner join excludes them.
func (s *ArticleStore) CountCompleteAreas(ctx context.Context, areaType string) (int, error) {
	query := `
		SELECT COUNT(*) FROM (
			SELECT a.area_id
			FROM articles a
			JOIN areas t ON t.id = a.area_id
			WHERE ? = '' OR t.type = ?
			GROUP BY a.area_id
			HAVING COUNT(a.id) = SUM(CASE WHEN a.collected_at IS NOT NULL THEN 1 ELSE 0 END)
		)`

	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, query, areaType, areaType)
	return count, err
}

// CountCollectedMatching reports collected articles whose name matches the
// LIKE pattern. Backs the one-off wetherspoons trophy.
func (s *ArticleStore) CountCollectedMatching(ctx context.Context, pattern string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		"SELECT COUNT(*) FROM articles WHERE collected_at IS NOT NULL AND name LIKE ?",
		pattern)
	return count, err
}
