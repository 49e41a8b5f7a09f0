package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"wikiwalk/internal/domain"
)

// ErrNotReady is returned by read methods before the store has been
// initialized and the projections primed.
var ErrNotReady = errors.New("collection store not ready")

// CollectionService is the single entry point for collection state. It
// composes the stores and the trophy engine into atomic use-cases and keeps
// read-optimized projections for synchronous UI queries.
//
// Mutating calls swallow store failures: the error is logged, the
// projections keep their last-known-good values, and the next user-triggered
// mutation naturally re-attempts.
type CollectionService struct {
	areas     AreaStore
	articles  ArticleStore
	engine    TrophyEngine
	progress  TrophyProgressReader
	txManager TransactionManager
	notifier  Notifier
	logger    *slog.Logger

	// mu serializes mutations so recompute passes never interleave.
	mu    sync.Mutex
	ready atomic.Bool

	projMu         sync.RWMutex
	collectedIDs   map[string]struct{}
	trophyProgress map[string]domain.TrophyProgress
}

func NewCollectionService(
	areas AreaStore,
	articles ArticleStore,
	engine TrophyEngine,
	progress TrophyProgressReader,
	txManager TransactionManager,
	notifier Notifier,
	logger *slog.Logger,
) *CollectionService {
	return &CollectionService{
		areas:          areas,
		articles:       articles,
		engine:         engine,
		progress:       progress,
		txManager:      txManager,
		notifier:       notifier,
		logger:         logger.With("component", "collection"),
		collectedIDs:   make(map[string]struct{}),
		trophyProgress: make(map[string]domain.TrophyProgress),
	}
}

// Start primes the in-memory projections and marks the service ready.
// Until it succeeds every call short-circuits as a no-op.
func (s *CollectionService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.engine.Recompute(ctx); err != nil {
		return fmt.Errorf("initial recompute: %w", err)
	}
	if err := s.refreshProjections(ctx); err != nil {
		return fmt.Errorf("prime projections: %w", err)
	}

	s.ready.Store(true)
	return nil
}

// DiscoverArea records the area if it is unknown. Re-discovery is a no-op.
func (s *CollectionService) DiscoverArea(ctx context.Context, area *domain.Area) {
	if !s.ready.Load() {
		s.logger.Warn("discover area skipped, store not ready", "area_id", area.ID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.areas.Discover(ctx, area); err != nil {
		s.logger.Error("discover area failed", "area_id", area.ID, "error", err)
		return
	}

	s.finishMutation(ctx)
}

// DiscoverArticles records every unknown article in the batch as one atomic
// unit; a mid-batch failure leaves none of it visible.
func (s *CollectionService) DiscoverArticles(ctx context.Context, articles []domain.Article) {
	if !s.ready.Load() {
		s.logger.Warn("discover articles skipped, store not ready")
		return
	}
	if len(articles) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.articles.DiscoverBatch(txCtx, articles)
	})
	if err != nil {
		s.logger.Error("discover articles failed", "count", len(articles), "error", err)
		return
	}

	s.finishMutation(ctx)
}

// ClaimArticle marks the article collected, discovering it first if needed.
// A repeated claim never moves the collection timestamp.
func (s *CollectionService) ClaimArticle(ctx context.Context, article *domain.Article) {
	if !s.ready.Load() {
		s.logger.Warn("claim skipped, store not ready", "article_id", article.ID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.articles.Claim(txCtx, article)
	})
	if err != nil {
		s.logger.Error("claim article failed", "article_id", article.ID, "error", err)
		return
	}

	s.logger.Info("article claimed", "article_id", article.ID, "name", article.Name)
	s.finishMutation(ctx)
}

// UpdateTrophies runs one recomputation pass and returns the just-unlocked
// trophies. The same list is handed to the notifier.
func (s *CollectionService) UpdateTrophies(ctx context.Context) []domain.Unlock {
	if !s.ready.Load() {
		s.logger.Warn("trophy update skipped, store not ready")
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.finishMutation(ctx)
}

// finishMutation recomputes trophies, refreshes the projections, and emits
// unlock events. Callers hold s.mu. On failure the projections are left at
// their last-known-good values.
func (s *CollectionService) finishMutation(ctx context.Context) []domain.Unlock {
	unlocked, err := s.engine.Recompute(ctx)
	if err != nil {
		s.logger.Error("trophy recompute failed", "error", err)
		return nil
	}

	if err := s.refreshProjections(ctx); err != nil {
		s.logger.Error("projection refresh failed", "error", err)
		return unlocked
	}

	if s.notifier != nil && len(unlocked) > 0 {
		if err := s.notifier.NotifyUnlocks(ctx, unlocked); err != nil {
			s.logger.Error("unlock notification failed", "error", err)
		}
	}

	return unlocked
}

func (s *CollectionService) refreshProjections(ctx context.Context) error {
	collected, err := s.articles.ListCollected(ctx)
	if err != nil {
		return fmt.Errorf("list collected: %w", err)
	}
	progress, err := s.progress.List(ctx)
	if err != nil {
		return fmt.Errorf("list trophy progress: %w", err)
	}

	ids := make(map[string]struct{}, len(collected))
	for _, a := range collected {
		ids[a.ID] = struct{}{}
	}
	trackers := make(map[string]domain.TrophyProgress, len(progress))
	for _, p := range progress {
		trackers[p.ID] = p
	}

	s.projMu.Lock()
	s.collectedIDs = ids
	s.trophyProgress = trackers
	s.projMu.Unlock()
	return nil
}

// IsArticleCollected answers from the cached projection only; UI code calls
// it on every render so it must never touch the database.
func (s *CollectionService) IsArticleCollected(id string) bool {
	s.projMu.RLock()
	defer s.projMu.RUnlock()
	_, ok := s.collectedIDs[id]
	return ok
}

// GetTrophyProgress answers from the cached projection.
func (s *CollectionService) GetTrophyProgress(id string) (domain.TrophyProgress, error) {
	s.projMu.RLock()
	defer s.projMu.RUnlock()

	progress, ok := s.trophyProgress[id]
	if !ok {
		return domain.TrophyProgress{}, domain.ErrNotFound
	}
	return progress, nil
}

func (s *CollectionService) GetAreas(ctx context.Context) ([]domain.Area, error) {
	if !s.ready.Load() {
		return nil, ErrNotReady
	}
	return s.areas.List(ctx)
}

func (s *CollectionService) GetFullAreaInfo(ctx context.Context, areaID string) (*domain.Area, error) {
	if !s.ready.Load() {
		return nil, ErrNotReady
	}
	return s.areas.Get(ctx, areaID)
}

func (s *CollectionService) GetArticlesForArea(ctx context.Context, areaID string) ([]domain.Article, error) {
	if !s.ready.Load() {
		return nil, ErrNotReady
	}
	return s.articles.ListByArea(ctx, areaID)
}
