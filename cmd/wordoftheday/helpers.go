package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordoftheday/internal/cache"
	"github.com/at-ishikawa/wordoftheday/internal/config"
	"github.com/at-ishikawa/wordoftheday/internal/dailyword"
	"github.com/at-ishikawa/wordoftheday/internal/database"
	"github.com/at-ishikawa/wordoftheday/internal/wordnik"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newResolver wires the Wordnik client and the configured cache store.
// The returned close function releases the memory cache and the database connection, if any.
func newResolver(cfg *config.Config) (*dailyword.Resolver, func(ctx context.Context) error, error) {
	var closers []func() error
	closeFunc := func(context.Context) error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}

	var db *sqlx.DB
	if cfg.Cache.Backend == config.CacheBackendMySQL {
		var err error
		db, err = database.Open(cfg.Database)
		if err != nil {
			return nil, closeFunc, fmt.Errorf("database.Open > %w", err)
		}
		closers = append(closers, db.Close)
	}

	store, err := cache.NewStore(cfg.Cache, db)
	if err != nil {
		_ = closeFunc(context.Background())
		closers = nil
		return nil, closeFunc, fmt.Errorf("cache.NewStore > %w", err)
	}
	if cfg.Cache.Memory {
		memoryStore, err := cache.NewMemoryStore(store)
		if err != nil {
			_ = closeFunc(context.Background())
			closers = nil
			return nil, closeFunc, fmt.Errorf("cache.NewMemoryStore > %w", err)
		}
		closers = append(closers, func() error {
			memoryStore.Close()
			return nil
		})
		store = memoryStore
	}

	client := wordnik.NewClient(wordnik.Config{
		BaseURL: cfg.Wordnik.BaseURL,
		APIKey:  cfg.Wordnik.APIKey,
		Timeout: cfg.Wordnik.Timeout,
	})
	return dailyword.NewResolver(client, store), closeFunc, nil
}
