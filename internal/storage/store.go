// Package storage persists small key-value preferences such as the sort order.
package storage

import (
	"context"
	"fmt"

	"github.com/bilgisen/headlines/internal/config"
)

// Store reads and writes string values by key. Get returns "" for absent keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// New opens the backend selected by cfg.PrefsBackend
func New(cfg *config.Config) (Store, error) {
	switch cfg.PrefsBackend {
	case "", "file":
		return NewFileStore(cfg.PrefsPath)
	case "redis":
		return NewRedisStore(cfg)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown preference backend %q", cfg.PrefsBackend)
	}
}
