package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/potionshop/internal/catalog"
	"github.com/osse101/potionshop/internal/config"
	"github.com/osse101/potionshop/internal/console"
	"github.com/osse101/potionshop/internal/economy"
	"github.com/osse101/potionshop/internal/event"
	"github.com/osse101/potionshop/internal/eventlog"
	"github.com/osse101/potionshop/internal/logger"
	"github.com/osse101/potionshop/internal/metrics"
	"github.com/osse101/potionshop/internal/naming"
	"github.com/osse101/potionshop/internal/server"
)

// shutdownTimeout bounds how long the metrics server gets to drain
const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithSessionID(ctx, logger.NewSessionID())

	if err := run(ctx, cfg); err != nil {
		logger.FromContext(ctx).Error("Session ended with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.FromContext(ctx)

	cat, err := catalog.NewLoader(config.ConfigPathCatalogSchema).Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	log.Info("Catalog loaded", "path", cfg.CatalogPath, "markets", len(cat.Markets()), "recipes", len(cat.Recipes()))

	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return err
	}

	journal := eventlog.NewService(eventlog.NewMemoryRepository())
	if err := journal.Subscribe(bus); err != nil {
		return err
	}
	eventlog.NewCleanupJob(journal, cfg.JournalRetentionDays).Register(bus)

	engine, err := economy.NewEngine(cat, cfg.StartingCoins, rulesFromConfig(cfg), economy.WithPublisher(bus))
	if err != nil {
		return err
	}
	log.Info(economy.LogMsgEngineInitiated, "coins", engine.Coins(), "rules", engine.Rules())

	if cfg.MetricsPort > 0 {
		srv := server.NewServer(cfg.MetricsPort, cfg.ServiceName, cfg.Version)
		go func() {
			if err := srv.Start(ctx); err != nil {
				log.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Warn("Metrics server shutdown failed", "error", err)
			}
		}()
	}

	// A blocked stdin read would otherwise outlive the interrupt
	go func() {
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	shop := console.New(engine, naming.NewResolver(cat), os.Stdout, console.WithJournal(journal))
	if err := shop.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func rulesFromConfig(cfg *config.Config) economy.Rules {
	return economy.Rules{
		MaxSelection:           cfg.MaxSelection,
		MinMergeSelection:      cfg.MinMergeSelection,
		DefaultSellPrice:       cfg.DefaultSellPrice,
		ClearSelectionOnMarket: cfg.ClearSelectionOnMarket,
	}
}
