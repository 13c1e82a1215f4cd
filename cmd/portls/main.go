package main

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/portls-labs/portls/internal/httpapi/handlers"
	"github.com/portls-labs/portls/internal/httpapi/server"
	"github.com/portls-labs/portls/internal/seed"
	"github.com/portls-labs/portls/pkg/cache"
	"github.com/portls-labs/portls/pkg/cache/inmemory"
	"github.com/portls-labs/portls/pkg/cache/redis"
	"github.com/portls-labs/portls/pkg/config"
	"github.com/portls-labs/portls/pkg/docstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	if cfg.App.Environment == "local" {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// A store that cannot be configured is a degraded mode, never fatal.
	store, err := docstore.New(cfg)
	if err != nil {
		logrus.WithError(err).Warn("document store unavailable, serving default data")
		store = docstore.Unconfigured()
	}

	cacheStore := newCache(cfg)

	seedPlanets(store)

	h := handlers.NewHandlers(cfg, store, cacheStore)
	if err := server.NewAPIServer(cfg, h).Start(); err != nil {
		logrus.WithError(err).Fatal("http API server failed")
	}
}

func newCache(cfg *config.AppConfig) cache.Cache {
	if cfg.Cache.Backend == "redis" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c, err := redis.NewCache(ctx, &cfg.Cache.Redis)
		if err == nil {
			return c
		}
		logrus.WithError(err).Warn("redis cache unavailable, falling back to in-memory cache")
	}

	c, err := inmemory.NewCache(&inmemory.Config{
		DefaultExpiration: cfg.Cache.TTLSeconds,
		CleanupInterval:   2 * cfg.Cache.TTLSeconds,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize in-memory cache")
	}
	return c
}

func seedPlanets(store docstore.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := seed.Planets(ctx, store)
	switch {
	case errors.Is(err, docstore.ErrUnavailable):
		logrus.Info("document store not configured, skipping seeding")
	case err != nil:
		logrus.WithError(err).Warn("failed to seed default planets")
	case n > 0:
		logrus.WithField("count", n).Info("seeded default planets")
	}
}
