package trophy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wikiwalk/internal/domain"
)

// AreaCounter exposes the area aggregate the engine needs.
type AreaCounter interface {
	Count(ctx context.Context) (int, error)
}

// ArticleCounter exposes the article aggregates the engine needs.
type ArticleCounter interface {
	CountCollected(ctx context.Context) (int, error)
	CountCompleteAreas(ctx context.Context, areaType string) (int, error)
	CountCollectedMatching(ctx context.Context, pattern string) (int, error)
}

// ProgressStore is the trophy_progress write surface. The engine is its only
// writer.
type ProgressStore interface {
	UpsertValue(ctx context.Context, id string, value int) error
	Complete(ctx context.Context, id string, at time.Time) (bool, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// rule computes the current aggregate value for one requirement type.
type rule func(ctx context.Context) (int, error)

type Config struct {
	// Catalogue overrides the built-in trophy list; tests use small ones.
	Catalogue []domain.Trophy
	// WetherspoonsPattern is the LIKE pattern behind the one-off special
	// trophy. The product never pinned down the predicate, so it stays
	// configuration rather than schema.
	WetherspoonsPattern string
}

// Engine recomputes every trophy's progress from store state and detects
// trophies completing for the first time.
type Engine struct {
	catalogue []domain.Trophy
	rules     map[domain.RequirementType]rule
	progress  ProgressStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewEngine(
	areas AreaCounter,
	articles ArticleCounter,
	progress ProgressStore,
	txManager TransactionManager,
	logger *slog.Logger,
	cfg Config,
) *Engine {
	catalogue := cfg.Catalogue
	if catalogue == nil {
		catalogue = Catalogue
	}
	spoons := cfg.WetherspoonsPattern
	if spoons == "" {
		spoons = "%Wetherspoon%"
	}

	return &Engine{
		catalogue: catalogue,
		rules: map[domain.RequirementType]rule{
			domain.RequireCollectArticles: articles.CountCollected,
			domain.RequireDiscoverAreas:   areas.Count,
			domain.RequireCompleteAreas: func(ctx context.Context) (int, error) {
				return articles.CountCompleteAreas(ctx, "")
			},
			domain.RequireCompleteVillage: func(ctx context.Context) (int, error) {
				return articles.CountCompleteAreas(ctx, domain.AreaVillage)
			},
			domain.RequireCompleteTown: func(ctx context.Context) (int, error) {
				return articles.CountCompleteAreas(ctx, domain.AreaTown)
			},
			domain.RequireCompleteCity: func(ctx context.Context) (int, error) {
				return articles.CountCompleteAreas(ctx, domain.AreaCity)
			},
			domain.RequireWetherspoons: func(ctx context.Context) (int, error) {
				return articles.CountCollectedMatching(ctx, spoons)
			},
		},
		progress:  progress,
		txManager: txManager,
		logger:    logger.With("component", "trophy_engine"),
	}
}

// Recompute runs one aggregate-and-sweep pass inside a single transaction
// and returns the trophies that completed during it, in catalogue order.
// Callers must not overlap Recompute invocations.
func (e *Engine) Recompute(ctx context.Context) ([]domain.Unlock, error) {
	var unlocked []domain.Unlock

	err := e.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		unlocked = unlocked[:0]

		counts := make(map[domain.RequirementType]int, len(e.rules))
		for _, t := range e.catalogue {
			if _, ok := counts[t.Requirement]; ok {
				continue
			}
			r, ok := e.rules[t.Requirement]
			if !ok {
				return fmt.Errorf("no rule for requirement %q", t.Requirement)
			}
			value, err := r(txCtx)
			if err != nil {
				return fmt.Errorf("count %s: %w", t.Requirement, err)
			}
			counts[t.Requirement] = value
		}

		for _, t := range e.catalogue {
			if err := e.progress.UpsertValue(txCtx, t.ID, counts[t.Requirement]); err != nil {
				return fmt.Errorf("upsert progress %s: %w", t.ID, err)
			}
		}

		now := time.Now()
		for _, t := range e.catalogue {
			if counts[t.Requirement] < t.Threshold {
				continue
			}
			done, err := e.progress.Complete(txCtx, t.ID, now)
			if err != nil {
				return fmt.Errorf("complete %s: %w", t.ID, err)
			}
			if done {
				unlocked = append(unlocked, domain.Unlock{ID: t.ID, Title: t.Title})
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(unlocked) > 0 {
		e.logger.Info("trophies unlocked", "count", len(unlocked))
	}

	return unlocked, nil
}
