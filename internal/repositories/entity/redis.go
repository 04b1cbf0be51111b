package entity

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/paladin/internal/errors"
	redisclient "github.com/KirkDiggler/paladin/internal/redis"
)

const entityKeyPrefix = "entity:"

type redisStore struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis store
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed store
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisStore{client: cfg.Client}, nil
}

func (r *redisStore) Destination(name string) string {
	return entityKeyPrefix + name
}

func (r *redisStore) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := ValidateName(input.Name); err != nil {
		return nil, err
	}
	if input.Record == nil {
		return nil, errors.InvalidArgument("record cannot be nil")
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal entity record")
	}

	key := r.Destination(input.Name)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save entity %s", input.Name)
	}

	return &SaveOutput{Destination: key}, nil
}

func (r *redisStore) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := ValidateName(input.Name); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, r.Destination(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("entity %s not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get entity %s", input.Name)
	}

	var record Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal entity %s", input.Name)
	}

	return &LoadOutput{Record: &record}, nil
}
