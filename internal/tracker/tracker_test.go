package tracker

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikiwalk/internal/domain"
)

type stubSource struct {
	coord domain.Coordinate
	ok    bool
}

func (s *stubSource) Current(context.Context) (domain.Coordinate, bool, error) {
	return s.coord, s.ok, nil
}

type stubProvider struct {
	area     *domain.Area
	articles []domain.Article
}

func (p *stubProvider) SettlementAround(context.Context, domain.Coordinate) (*domain.Area, error) {
	if p.area == nil {
		return nil, domain.ErrNotFound
	}
	return p.area, nil
}

func (p *stubProvider) ArticlesIn(context.Context, string) ([]domain.Article, error) {
	return p.articles, nil
}

type recordingCollection struct {
	discoveredAreas    []string
	discoveredArticles int
	claimed            []string
	alreadyCollected   map[string]bool
}

func (c *recordingCollection) DiscoverArea(_ context.Context, area *domain.Area) {
	c.discoveredAreas = append(c.discoveredAreas, area.ID)
}

func (c *recordingCollection) DiscoverArticles(_ context.Context, articles []domain.Article) {
	c.discoveredArticles += len(articles)
}

func (c *recordingCollection) ClaimArticle(_ context.Context, article *domain.Article) {
	c.claimed = append(c.claimed, article.ID)
}

func (c *recordingCollection) IsArticleCollected(id string) bool {
	return c.alreadyCollected[id]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestVisit_ClaimsOnlyInRange(t *testing.T) {
	user := domain.Coordinate{Latitude: 51.5007, Longitude: -0.1246}

	provider := &stubProvider{
		area: &domain.Area{ID: "Q1", Name: "Westminster", Type: domain.AreaCity},
		articles: []domain.Article{
			{ID: "near", Coords: domain.Coordinate{Latitude: 51.5008, Longitude: -0.1247}},
			{ID: "far", Coords: domain.Coordinate{Latitude: 51.5033, Longitude: -0.1196}},
		},
	}
	collection := &recordingCollection{alreadyCollected: map[string]bool{}}

	tr := NewTracker(&stubSource{coord: user, ok: true}, provider, collection, 0, 0.1, testLogger())

	require.NoError(t, tr.Visit(context.Background()))

	assert.Equal(t, []string{"Q1"}, collection.discoveredAreas)
	assert.Equal(t, 2, collection.discoveredArticles)
	assert.Equal(t, []string{"near"}, collection.claimed)
}

func TestVisit_SkipsCollected(t *testing.T) {
	user := domain.Coordinate{Latitude: 51.5007, Longitude: -0.1246}

	provider := &stubProvider{
		area: &domain.Area{ID: "Q1"},
		articles: []domain.Article{
			{ID: "near", Coords: user},
		},
	}
	collection := &recordingCollection{alreadyCollected: map[string]bool{"near": true}}

	tr := NewTracker(&stubSource{coord: user, ok: true}, provider, collection, 0, 0.1, testLogger())

	require.NoError(t, tr.Visit(context.Background()))
	assert.Empty(t, collection.claimed)
}

func TestVisit_NoFix(t *testing.T) {
	collection := &recordingCollection{}
	tr := NewTracker(&stubSource{ok: false}, &stubProvider{}, collection, 0, 0.1, testLogger())

	require.NoError(t, tr.Visit(context.Background()))
	assert.Empty(t, collection.discoveredAreas)
}

func TestFeedSource(t *testing.T) {
	feed := strings.NewReader(`{"latitude": 51.5, "longitude": -0.12}
not json
{"latitude": 53.23, "longitude": -0.54}
`)
	source := NewFeedSource(feed, testLogger())

	_, ok, err := source.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	source.Run(context.Background())

	coord, ok, err := source.Current(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 53.23, coord.Latitude)
	assert.Equal(t, -0.54, coord.Longitude)
}
