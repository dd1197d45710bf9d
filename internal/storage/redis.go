package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const saveKey = "pilar:save"

// RedisStore implements Store using Redis.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStore implements Store interface
var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a new Redis store instance
func NewRedisStore(redisURL string, logger *slog.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})
	return &RedisStore{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStore) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("redis not available after %d attempts", maxRetries)
}

func (r *RedisStore) SaveRebooted(ctx context.Context) error {
	save := SaveState{
		Rebooted: true,
		SavedAt:  time.Now().UTC(),
	}
	data, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("failed to marshal save state: %w", err)
	}
	if err := r.client.Set(ctx, saveKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write save state: %w", err)
	}
	return nil
}

func (r *RedisStore) Rebooted(ctx context.Context) (bool, error) {
	data, err := r.client.Get(ctx, saveKey).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read save state: %w", err)
	}

	var save SaveState
	if err := json.Unmarshal([]byte(data), &save); err != nil {
		return false, fmt.Errorf("failed to unmarshal save state: %w", err)
	}
	return save.Rebooted, nil
}

// Reset deletes the save. Dev convenience for replaying from the start.
func (r *RedisStore) Reset(ctx context.Context) error {
	if err := r.client.Del(ctx, saveKey).Err(); err != nil {
		return fmt.Errorf("failed to delete save state: %w", err)
	}
	return nil
}
