// Package tracker drives the discovery loop: it follows the user's position
// and feeds nearby areas and articles into the collection.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"wikiwalk/internal/domain"
	"wikiwalk/internal/geo"
)

// Source supplies the current user position. ok is false until the feed has
// produced a first fix.
type Source interface {
	Current(ctx context.Context) (coord domain.Coordinate, ok bool, err error)
}

// Provider resolves candidate areas and articles around a coordinate.
type Provider interface {
	SettlementAround(ctx context.Context, coord domain.Coordinate) (*domain.Area, error)
	ArticlesIn(ctx context.Context, areaID string) ([]domain.Article, error)
}

// Collection is the facade surface the tracker mutates.
type Collection interface {
	DiscoverArea(ctx context.Context, area *domain.Area)
	DiscoverArticles(ctx context.Context, articles []domain.Article)
	ClaimArticle(ctx context.Context, article *domain.Article)
	IsArticleCollected(id string) bool
}

type Tracker struct {
	source     Source
	provider   Provider
	collection Collection
	interval   time.Duration
	rangeKm    float64
	logger     *slog.Logger
}

func NewTracker(
	source Source,
	provider Provider,
	collection Collection,
	interval time.Duration,
	rangeKm float64,
	logger *slog.Logger,
) *Tracker {
	return &Tracker{
		source:     source,
		provider:   provider,
		collection: collection,
		interval:   interval,
		rangeKm:    rangeKm,
		logger:     logger.With("component", "tracker"),
	}
}

// Start runs the discovery loop until ctx is cancelled.
func (t *Tracker) Start(ctx context.Context) error {
	t.logger.Info("tracker started", "interval", t.interval, "range_km", t.rangeKm)

	t.tick(ctx)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("tracker stopped")
			return ctx.Err()
		case <-ticker.C:
			t.tick(ctx)
		}
	}
}

func (t *Tracker) tick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, t.interval*4)
	defer cancel()

	if err := t.Visit(tickCtx); err != nil && !errors.Is(err, domain.ErrNotFound) {
		t.logger.Error("visit failed", "error", err)
	}
}

// Visit performs one pass: resolve the surrounding settlement, discover it
// and its articles, then claim every discovered article within range.
func (t *Tracker) Visit(ctx context.Context) error {
	coord, ok, err := t.source.Current(ctx)
	if err != nil {
		return err
	}
	if !ok {
		t.logger.Debug("no position fix yet")
		return nil
	}

	area, err := t.provider.SettlementAround(ctx, coord)
	if err != nil {
		return err
	}

	t.collection.DiscoverArea(ctx, area)

	articles, err := t.provider.ArticlesIn(ctx, area.ID)
	if err != nil {
		return err
	}

	t.collection.DiscoverArticles(ctx, articles)

	for i := range articles {
		article := &articles[i]
		if t.collection.IsArticleCollected(article.ID) {
			continue
		}
		if !geo.IsWithinRange(coord, article.Coords, t.rangeKm) {
			continue
		}
		t.collection.ClaimArticle(ctx, article)
	}

	return nil
}
