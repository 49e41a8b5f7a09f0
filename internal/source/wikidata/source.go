// Package wikidata resolves areas and articles around a coordinate through
// the Wikidata query service.
package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wikiwalk/internal/domain"
)

// settlementQuery finds the nearest settlement-class entity within 2 km of
// the coordinate, closest first.
const settlementQuery = `
SELECT DISTINCT ?settlementCode ?settlementLabel ?typeLabel ?countryCode WHERE {
	SERVICE wikibase:around {
		?place wdt:P625 ?coord .
		bd:serviceParam wikibase:center "Point(%f %f)"^^geo:wktLiteral .
		bd:serviceParam wikibase:radius "2" .
		bd:serviceParam wikibase:distance ?distance .
	}

	?place wdt:P131+ ?settlement .

	?settlement wdt:P31 ?type .
	FILTER(?type IN (
		wd:Q515,
		wd:Q3957,
		wd:Q532,
		wd:Q5084,
		wd:Q15221373,
		wd:Q1549591,
		wd:Q486972
	))

	OPTIONAL {
		?settlement wdt:P17 ?country .
		?country wdt:P297 ?countryCode .
	}

	SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
	BIND(STRAFTER(STR(?settlement), "/entity/") AS ?settlementCode)
}
ORDER BY ASC(?distance)
LIMIT 1`

// articlesQuery lists geo-tagged places inside the settlement that have an
// English Wikipedia article.
const articlesQuery = `
SELECT ?articleCode ?placeLabel ?lat ?lon ?article WHERE {
	?place wdt:P131 wd:%s .
	?place wdt:P625 ?coord .

	?article schema:about ?place .
	?article schema:isPartOf <https://en.wikipedia.org/> .

	BIND(geof:latitude(?coord) AS ?lat)
	BIND(geof:longitude(?coord) AS ?lon)
	BIND(STRAFTER(STR(?place), "/entity/") AS ?articleCode)

	SERVICE wikibase:label { bd:serviceParam wikibase:language "en" . }
}`

// Config holds Wikidata client configuration.
type Config struct {
	Endpoint       string
	UserAgent      string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source queries the Wikidata SPARQL endpoint.
type Source struct {
	httpClient     *http.Client
	endpoint       string
	userAgent      string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new Wikidata source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint:       cfg.Endpoint,
		userAgent:      cfg.UserAgent,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "wikidata"),
	}
}

// SettlementAround resolves the settlement containing the coordinate, or
// domain.ErrNotFound when nothing is within range. The WKT literal takes
// longitude before latitude.
func (s *Source) SettlementAround(ctx context.Context, coord domain.Coordinate) (*domain.Area, error) {
	query := fmt.Sprintf(settlementQuery, coord.Longitude, coord.Latitude)

	resp, err := s.runQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("settlement query: %w", err)
	}
	if len(resp.Results.Bindings) == 0 {
		return nil, domain.ErrNotFound
	}

	b := resp.Results.Bindings[0]
	code := b.get("settlementCode")
	area := &domain.Area{
		ID:         code,
		Name:       b.get("settlementLabel"),
		ArticleURL: "https://www.wikidata.org/wiki/" + code,
		Country:    b.get("countryCode"),
		Type:       normalizeType(b.get("typeLabel")),
	}

	s.logger.Debug("resolved settlement", "id", area.ID, "name", area.Name, "type", area.Type)
	return area, nil
}

// ArticlesIn lists the collectible articles inside a settlement.
func (s *Source) ArticlesIn(ctx context.Context, areaID string) ([]domain.Article, error) {
	query := fmt.Sprintf(articlesQuery, areaID)

	resp, err := s.runQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("articles query: %w", err)
	}

	articles := make([]domain.Article, 0, len(resp.Results.Bindings))
	seen := make(map[string]struct{}, len(resp.Results.Bindings))
	for _, b := range resp.Results.Bindings {
		code := b.get("articleCode")
		if code == "" || code == areaID {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}

		lat, err := strconv.ParseFloat(b.get("lat"), 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(b.get("lon"), 64)
		if err != nil {
			continue
		}

		articles = append(articles, domain.Article{
			ID:         code,
			Name:       b.get("placeLabel"),
			ArticleURL: b.get("article"),
			AreaID:     areaID,
			Coords:     domain.Coordinate{Latitude: lat, Longitude: lon},
		})
	}

	s.logger.Debug("fetched articles", "area_id", areaID, "count", len(articles))
	return articles, nil
}

func (s *Source) runQuery(ctx context.Context, query string) (*sparqlResponse, error) {
	var resp *sparqlResponse
	var err error

	backoff := s.initialBackoff
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, query)
		if err == nil {
			return resp, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		s.logger.Warn("query failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > s.maxBackoff {
			backoff = s.maxBackoff
		}
	}

	return nil, err
}

func (s *Source) doRequest(ctx context.Context, query string) (*sparqlResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/sparql-results+json")

	httpResp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", httpResp.StatusCode, string(body))
	}

	var resp sparqlResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &resp, nil
}

// normalizeType maps a Wikidata settlement-class label onto the area types
// the trophy engine filters by.
func normalizeType(label string) string {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "city"):
		return domain.AreaCity
	case strings.Contains(l, "town"):
		return domain.AreaTown
	case strings.Contains(l, "village"), strings.Contains(l, "hamlet"), strings.Contains(l, "parish"):
		return domain.AreaVillage
	default:
		return l
	}
}
