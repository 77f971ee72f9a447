package store

import (
	"context"
	"fmt"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend        string
	SQLiteDSN      string
	RedisURL       string
	RedisKeyPrefix string
}

// Open constructs the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendSQLite:
		s, err := NewSQLiteStore(ctx, opts.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendRedis:
		s, err := NewRedisStore(ctx, opts.RedisURL, opts.RedisKeyPrefix)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, opts.Backend)
	}
}
