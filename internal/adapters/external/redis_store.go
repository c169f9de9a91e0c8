package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"wristweather.app/internal/config"
	"wristweather.app/pkg/errors"
)

// RedisStoreAdapter implements StoreBackend using Redis. Keys are namespaced by a prefix
// and stored without expiry.
type RedisStoreAdapter struct {
	client *redis.Client
	prefix string
}

// NewRedisStoreAdapter creates a new Redis store adapter
func NewRedisStoreAdapter(config *config.RedisConfig) (*RedisStoreAdapter, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisStoreAdapter{
		client: client,
		prefix: config.KeyPrefix,
	}, nil
}

// Get retrieves a value from Redis
func (r *RedisStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("store key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.NewNotFoundError("key not found: " + key)
		}
		return "", errors.NewExternalAPIError("redis get operation failed", err)
	}

	return val, nil
}

// Set stores a value in Redis
func (r *RedisStoreAdapter) Set(ctx context.Context, key string, value string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return errors.NewExternalAPIError("redis set operation failed", err)
	}

	return nil
}

// Delete removes a value from Redis
func (r *RedisStoreAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete operation failed", err)
	}

	return nil
}

// Close closes the Redis client connection
func (r *RedisStoreAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisStoreAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}
