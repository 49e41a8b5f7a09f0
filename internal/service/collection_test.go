package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"wikiwalk/internal/domain"
	"wikiwalk/internal/service/mocks"
	"wikiwalk/testdata/utils"
)

type CollectionServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	areas     *mocks.MockAreaStore
	articles  *mocks.MockArticleStore
	engine    *mocks.MockTrophyEngine
	progress  *mocks.MockTrophyProgressReader
	txManager *mocks.MockTransactionManager
	notifier  *mocks.MockNotifier

	service *CollectionService
	logger  *slog.Logger
}

func (s *CollectionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.areas = mocks.NewMockAreaStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.engine = mocks.NewMockTrophyEngine(s.ctrl)
	s.progress = mocks.NewMockTrophyProgressReader(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewCollectionService(
		s.areas,
		s.articles,
		s.engine,
		s.progress,
		s.txManager,
		s.notifier,
		s.logger,
	)
}

func (s *CollectionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCollectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionServiceTestSuite))
}

// start primes the service with the given persisted state.
func (s *CollectionServiceTestSuite) start(collected []domain.Article, progress []domain.TrophyProgress) {
	ctx := context.Background()
	s.engine.EXPECT().Recompute(ctx).Return(nil, nil)
	s.articles.EXPECT().ListCollected(ctx).Return(collected, nil)
	s.progress.EXPECT().List(ctx).Return(progress, nil)
	s.Require().NoError(s.service.Start(ctx))
}

func (s *CollectionServiceTestSuite) passTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *CollectionServiceTestSuite) TestStart_RecomputeError() {
	ctx := context.Background()
	s.engine.EXPECT().Recompute(ctx).Return(nil, errors.New("db locked"))

	err := s.service.Start(ctx)
	s.Error(err)

	_, err = s.service.GetAreas(ctx)
	s.ErrorIs(err, ErrNotReady)
}

func (s *CollectionServiceTestSuite) TestNotReady_MutationsNoOp() {
	ctx := context.Background()

	// No expectations set: any store call would fail the test.
	s.service.DiscoverArea(ctx, &domain.Area{ID: "Q1"})
	s.service.ClaimArticle(ctx, &domain.Article{ID: "A1"})
	s.service.DiscoverArticles(ctx, []domain.Article{{ID: "A1"}})
	s.Nil(s.service.UpdateTrophies(ctx))
	s.False(s.service.IsArticleCollected("A1"))
}

func (s *CollectionServiceTestSuite) TestDiscoverArea_RecomputesAndNotifies() {
	s.start(nil, nil)
	ctx := context.Background()

	area := &domain.Area{ID: "Q1", Name: "Nettleham", Type: domain.AreaVillage}
	unlocks := []domain.Unlock{{ID: "discover_areas_first", Title: "Traveller"}}

	s.areas.EXPECT().Discover(ctx, area).Return(nil)
	s.engine.EXPECT().Recompute(ctx).Return(unlocks, nil)
	s.articles.EXPECT().ListCollected(ctx).Return(nil, nil)
	s.progress.EXPECT().List(ctx).Return([]domain.TrophyProgress{
		{ID: "discover_areas_first", Value: 3, CompletedAt: utils.Ptr(time.Now())},
	}, nil)
	s.notifier.EXPECT().NotifyUnlocks(ctx, unlocks).Return(nil)

	s.service.DiscoverArea(ctx, area)

	progress, err := s.service.GetTrophyProgress("discover_areas_first")
	s.NoError(err)
	s.Equal(3, progress.Value)
	s.NotNil(progress.CompletedAt)
}

func (s *CollectionServiceTestSuite) TestDiscoverArea_StoreErrorKeepsProjection() {
	s.start([]domain.Article{{ID: "A1"}}, nil)
	ctx := context.Background()

	s.areas.EXPECT().Discover(ctx, gomock.Any()).Return(errors.New("disk full"))

	s.service.DiscoverArea(ctx, &domain.Area{ID: "Q1"})

	// Last-known-good projection survives the failed call.
	s.True(s.service.IsArticleCollected("A1"))
}

func (s *CollectionServiceTestSuite) TestDiscoverArticles_Batch() {
	s.start(nil, nil)
	ctx := context.Background()

	batch := []domain.Article{{ID: "A1", AreaID: "Q1"}, {ID: "A2", AreaID: "Q1"}}

	s.passTransaction(ctx)
	s.articles.EXPECT().DiscoverBatch(ctx, batch).Return(nil)
	s.engine.EXPECT().Recompute(ctx).Return(nil, nil)
	s.articles.EXPECT().ListCollected(ctx).Return(nil, nil)
	s.progress.EXPECT().List(ctx).Return(nil, nil)

	s.service.DiscoverArticles(ctx, batch)
}

func (s *CollectionServiceTestSuite) TestDiscoverArticles_EmptyBatch() {
	s.start(nil, nil)

	// An empty batch touches nothing, not even the trophy engine.
	s.service.DiscoverArticles(context.Background(), nil)
}

func (s *CollectionServiceTestSuite) TestClaimArticle_UpdatesProjection() {
	s.start(nil, nil)
	ctx := context.Background()

	article := &domain.Article{ID: "A1", Name: "All Saints Church", AreaID: "Q1"}

	s.passTransaction(ctx)
	s.articles.EXPECT().Claim(ctx, article).Return(nil)
	s.engine.EXPECT().Recompute(ctx).Return(nil, nil)
	s.articles.EXPECT().ListCollected(ctx).Return([]domain.Article{
		{ID: "A1", CollectedAt: utils.Ptr(time.Now())},
	}, nil)
	s.progress.EXPECT().List(ctx).Return(nil, nil)

	s.False(s.service.IsArticleCollected("A1"))
	s.service.ClaimArticle(ctx, article)
	s.True(s.service.IsArticleCollected("A1"))
}

func (s *CollectionServiceTestSuite) TestClaimArticle_StoreErrorKeepsProjection() {
	s.start(nil, nil)
	ctx := context.Background()

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).Return(errors.New("constraint violated"))

	s.service.ClaimArticle(ctx, &domain.Article{ID: "A1"})
	s.False(s.service.IsArticleCollected("A1"))
}

func (s *CollectionServiceTestSuite) TestUpdateTrophies_ReturnsUnlocks() {
	s.start(nil, nil)
	ctx := context.Background()

	unlocks := []domain.Unlock{{ID: "special_complete_village", Title: "It Takes a Village"}}

	s.engine.EXPECT().Recompute(ctx).Return(unlocks, nil)
	s.articles.EXPECT().ListCollected(ctx).Return(nil, nil)
	s.progress.EXPECT().List(ctx).Return(nil, nil)
	s.notifier.EXPECT().NotifyUnlocks(ctx, unlocks).Return(nil)

	result := s.service.UpdateTrophies(ctx)
	s.Equal(unlocks, result)
}

func (s *CollectionServiceTestSuite) TestUpdateTrophies_NotifierErrorIsSwallowed() {
	s.start(nil, nil)
	ctx := context.Background()

	unlocks := []domain.Unlock{{ID: "collect_articles_first", Title: "First Steps"}}

	s.engine.EXPECT().Recompute(ctx).Return(unlocks, nil)
	s.articles.EXPECT().ListCollected(ctx).Return(nil, nil)
	s.progress.EXPECT().List(ctx).Return(nil, nil)
	s.notifier.EXPECT().NotifyUnlocks(ctx, unlocks).Return(errors.New("broker down"))

	result := s.service.UpdateTrophies(ctx)
	s.Equal(unlocks, result)
}

func (s *CollectionServiceTestSuite) TestNilNotifier() {
	service := NewCollectionService(s.areas, s.articles, s.engine, s.progress, s.txManager, nil, s.logger)
	ctx := context.Background()

	s.engine.EXPECT().Recompute(ctx).Return(nil, nil)
	s.articles.EXPECT().ListCollected(ctx).Return(nil, nil)
	s.progress.EXPECT().List(ctx).Return(nil, nil)
	s.Require().NoError(service.Start(ctx))

	unlocks := []domain.Unlock{{ID: "collect_articles_first", Title: "First Steps"}}
	s.engine.EXPECT().Recompute(ctx).Return(unlocks, nil)
	s.articles.EXPECT().ListCollected(ctx).Return(nil, nil)
	s.progress.EXPECT().List(ctx).Return(nil, nil)

	result := service.UpdateTrophies(ctx)
	s.Equal(unlocks, result)
}

func (s *CollectionServiceTestSuite) TestGetFullAreaInfo_NotFound() {
	s.start(nil, nil)
	ctx := context.Background()

	s.areas.EXPECT().Get(ctx, "Q404").Return(nil, domain.ErrNotFound)

	_, err := s.service.GetFullAreaInfo(ctx, "Q404")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *CollectionServiceTestSuite) TestGetTrophyProgress_NotFound() {
	s.start(nil, nil)

	_, err := s.service.GetTrophyProgress("never_tracked")
	s.ErrorIs(err, domain.ErrNotFound)
}
