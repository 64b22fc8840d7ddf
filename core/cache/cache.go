package cache

import (
	"context"
	"fmt"
	"time"
)

// Store is the narrow key-value contract the word service relies on.
// A zero ttl stores the value without expiration.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// New builds the store selected by cfg.Driver.
func New(cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverRedis, "":
		return NewRedis(cfg)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported cache driver: %s", cfg.Driver)
	}
}

// Keys builds namespaced cache keys.
type Keys struct {
	Namespace string
}

// Word is the key of a cached word record.
func (k Keys) Word(word string) string {
	return k.Namespace + ":word:" + word
}

// Failed is the key of a memoized failed lookup.
func (k Keys) Failed(word string) string {
	return k.Namespace + ":failed:" + word
}
