package tracker

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"wikiwalk/internal/domain"
)

// FeedSource reads line-delimited JSON coordinates from a reader (a GPS
// bridge or a replayed trace) and retains the most recent fix.
type FeedSource struct {
	reader io.Reader
	logger *slog.Logger

	mu      sync.RWMutex
	current domain.Coordinate
	hasFix  bool
}

func NewFeedSource(reader io.Reader, logger *slog.Logger) *FeedSource {
	return &FeedSource{
		reader: reader,
		logger: logger.With("component", "position_feed"),
	}
}

// Run consumes the feed until it ends or ctx is cancelled. Malformed lines
// are skipped.
func (f *FeedSource) Run(ctx context.Context) {
	scanner := bufio.NewScanner(f.reader)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		var coord domain.Coordinate
		if err := json.Unmarshal(scanner.Bytes(), &coord); err != nil {
			f.logger.Warn("skipping malformed position line", "error", err)
			continue
		}

		f.mu.Lock()
		f.current = coord
		f.hasFix = true
		f.mu.Unlock()
	}

	if err := scanner.Err(); err != nil {
		f.logger.Error("position feed read failed", "error", err)
	}
}

// Current returns the last known fix. ok is false before the first line.
func (f *FeedSource) Current(_ context.Context) (domain.Coordinate, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current, f.hasFix, nil
}
