package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"wikiwalk/internal/domain"
)

type AreaStore interface {
	Discover(ctx context.Context, area *domain.Area) error
	List(ctx context.Context) ([]domain.Area, error)
	Get(ctx context.Context, id string) (*domain.Area, error)
}

type ArticleStore interface {
	DiscoverBatch(ctx context.Context, articles []domain.Article) error
	Claim(ctx context.Context, article *domain.Article) error
	ListByArea(ctx context.Context, areaID string) ([]domain.Article, error)
	ListCollected(ctx context.Context) ([]domain.Article, error)
}

type TrophyEngine interface {
	Recompute(ctx context.Context) ([]domain.Unlock, error)
}

type TrophyProgressReader interface {
	List(ctx context.Context) ([]domain.TrophyProgress, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	NotifyUnlocks(ctx context.Context, unlocks []domain.Unlock) error
	Close() error
}
