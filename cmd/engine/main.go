package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"wikiwalk/internal/config"
	"wikiwalk/internal/notifier"
	"wikiwalk/internal/service"
	"wikiwalk/internal/source/wikidata"
	"wikiwalk/internal/storage/sqlite"
	"wikiwalk/internal/tracker"
	"wikiwalk/internal/trophy"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	feedPath := flag.String("feed", "-", "position feed file, - for stdin")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sqlite.InitSchema(ctx, db); err != nil {
		logger.Error("failed to initialize schema", "error", err)
		os.Exit(1)
	}
	logger.Info("database ready", "path", cfg.Database.Path)

	// Initialize stores
	areaStore := sqlite.NewAreaStore(db)
	articleStore := sqlite.NewArticleStore(db)
	trophyStore := sqlite.NewTrophyStore(db)
	txManager := sqlite.NewTransactionManager(db)

	engine := trophy.NewEngine(areaStore, articleStore, trophyStore, txManager, logger, trophy.Config{})

	// Unlock notifications are optional; without a broker the engine still
	// tracks everything locally.
	var unlockNotifier service.Notifier
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := notifier.NewRabbitMQ(notifier.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		unlockNotifier = rabbitMQ
	}

	collection := service.NewCollectionService(
		areaStore,
		articleStore,
		engine,
		trophyStore,
		txManager,
		unlockNotifier,
		logger,
	)
	if err := collection.Start(ctx); err != nil {
		logger.Error("failed to start collection service", "error", err)
		os.Exit(1)
	}

	provider := wikidata.New(wikidata.Config{
		Endpoint:       cfg.Wikidata.Endpoint,
		UserAgent:      cfg.Wikidata.UserAgent,
		Timeout:        cfg.Wikidata.Timeout,
		MaxAttempts:    cfg.Wikidata.Retry.MaxAttempts,
		InitialBackoff: cfg.Wikidata.Retry.InitialBackoff,
		MaxBackoff:     cfg.Wikidata.Retry.MaxBackoff,
	}, logger)

	feed, err := openFeed(*feedPath)
	if err != nil {
		logger.Error("failed to open position feed", "error", err)
		os.Exit(1)
	}

	positions := tracker.NewFeedSource(feed, logger)
	go positions.Run(ctx)

	trk := tracker.NewTracker(
		positions,
		provider,
		collection,
		cfg.Tracker.Interval,
		cfg.Tracker.ClaimRangeKm,
		logger,
	)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting wikiwalk engine",
		"interval", cfg.Tracker.Interval,
		"claim_range_km", cfg.Tracker.ClaimRangeKm,
	)

	if err := trk.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("tracker error", "error", err)
		os.Exit(1)
	}
}

func openFeed(path string) (io.Reader, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
