package cmd

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ascent-cms/config"
	"github.com/ascent-cms/database"
	"github.com/ascent-cms/events"
	"github.com/ascent-cms/repositories"
	"github.com/ascent-cms/services"
	"github.com/ascent-cms/storage"
)

// app is the wired service graph shared by the serve and seed commands
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	repos    *repositories.Set
	bus      events.Bus
	content  *services.Content
	settings *services.SettingsService
	closers  []func() error
}

func openDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	if cfg.Database.Driver != "postgres" {
		return nil, fmt.Errorf("the %s database driver has no schema to manage", cfg.Database.Driver)
	}
	return database.Open(cfg.Database, log)
}

// newApp connects the configured backends and builds the services over them
func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	switch cfg.Database.Driver {
	case "postgres":
		db, err := database.Open(cfg.Database, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error { return database.Close(db) })
		a.repos = repositories.NewGormSet(db)
	default:
		log.Warn("Using in-memory database, content is lost on restart")
		a.repos = repositories.NewMemorySet()
	}

	var store storage.ObjectStorage
	switch cfg.Storage.Driver {
	case "s3":
		client, err := storage.NewS3Client(cfg.Storage)
		if err != nil {
			a.Close()
			return nil, err
		}
		store = storage.NewS3Storage(client, cfg.Storage)
	default:
		log.Warn("Using in-memory object storage, images are lost on restart")
		store = storage.NewMemoryStorage(cfg.Storage.PublicBaseURL)
	}

	if cfg.Redis.Addr != "" {
		client := events.NewRedisClient(cfg.Redis)
		bus := events.NewRedisBus(client, cfg.Redis.Channel, log)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := bus.Ping(pingCtx)
		cancel()
		if err != nil {
			client.Close()
			a.Close()
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		a.bus = bus
	} else {
		a.bus = events.NewHub()
	}

	deps := services.ManagerDeps{
		Storage:   store,
		Publisher: a.bus,
		Timeout:   cfg.RequestTimeout,
		Logger:    log,
	}
	a.content = services.NewContent(a.repos, deps)
	a.settings = services.NewSettingsService(a.repos.Settings, deps)
	return a, nil
}

// Close releases the backend connections
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("Failed to close backend", zap.Error(err))
		}
	}
	a.closers = nil
}
