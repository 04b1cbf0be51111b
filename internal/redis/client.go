// Package redis wraps the go-redis client so stores can be tested against
// miniredis or a mock.
package redis

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/paladin/internal/errors"
)

// Options configures the client
type Options struct {
	PoolSize    int
	MaxRetries  int
	DialTimeout time.Duration
	DB          int
}

// NewClient creates a client for a single redis instance. Redis connects
// lazily, so an unreachable server surfaces on first use.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:        endpoint,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: opts.DialTimeout,
	}), nil
}
