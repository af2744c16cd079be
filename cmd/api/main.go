// @title Pet activity log API
// @version 1.0
// @description Registro de actividades de la mascota: CRUD sobre una sola tabla.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-activity-log/internal/adapters/notify/kafkapub"
	mem "pet-activity-log/internal/adapters/storage/memory"
	pg "pet-activity-log/internal/adapters/storage/postgres"
	"pet-activity-log/internal/adapters/storage/sqlite"
	"pet-activity-log/internal/config"
	"pet-activity-log/internal/domain/acts"
	"pet-activity-log/internal/domain/timeline"
	"pet-activity-log/internal/platform/logger"
	"pet-activity-log/internal/router"
)

func main() {
	cfg := config.Load()
	log := logger.NewFromEnv()
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if wd, err := os.Getwd(); err == nil {
		log.Info("current directory", map[string]any{"dir": wd})
	}

	repo, closeRepo, err := openRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	var notifier acts.Notifier
	if len(cfg.KafkaBrokers) > 0 {
		pub := kafkapub.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		defer func() { _ = pub.Close() }()
		notifier = pub
		log.Info("publishing act changes", map[string]any{"brokers": cfg.KafkaBrokers, "topic": cfg.KafkaTopic})
	}

	r := router.NewRouter(router.Options{
		Repo:     repo,
		Notifier: notifier,
		Logger:   log,
		Timeline: timeline.Options{
			SlotWidth: cfg.SlotWidth,
			Slots:     cfg.TimelineSlots,
			Location:  cfg.Location,
		},
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.HTTPAddress, "storage": cfg.Storage})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("shutting down", nil)
	return srv.Shutdown(shutdownCtx)
}

// openRepository elige el storage según config y crea la tabla si hace falta.
func openRepository(ctx context.Context, cfg config.Config, log logger.Logger) (acts.Repository, func(), error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg.NewActsRepo(db), func() { _ = db.Close() }, nil

	case config.StorageMemory:
		log.Warn("using in-memory storage; data is lost on restart", nil)
		return mem.NewActRepo(), func() {}, nil

	default:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := sqlite.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("using sqlite storage", map[string]any{"path": cfg.SQLitePath})
		return sqlite.NewActsRepo(db), func() { _ = db.Close() }, nil
	}
}
