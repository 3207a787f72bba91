// Package cache persists the resolved word of the day.
package cache

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordoftheday/internal/config"
	"github.com/at-ishikawa/wordoftheday/internal/dailyword"
)

var (
	_ dailyword.Store = (*FileStore)(nil)
	_ dailyword.Store = (*DBStore)(nil)
)

// NewStore returns the store for the configured backend. db is only used by the mysql backend.
func NewStore(cfg config.CacheConfig, db *sqlx.DB) (dailyword.Store, error) {
	switch cfg.Backend {
	case config.CacheBackendFile, "":
		return NewFileStore(cfg.File), nil
	case config.CacheBackendMySQL:
		if db == nil {
			return nil, fmt.Errorf("cache backend %s requires a database connection", cfg.Backend)
		}
		return NewDBStore(db), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}
