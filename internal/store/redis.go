// internal/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis is a store tier backed by a Redis instance. Values are stored as
// JSON strings without expiration. Redis errors are logged and degrade to
// "absent"; the chain's next tier takes over.
type Redis struct {
	client *redis.Client
	logger *logrus.Logger
}

// NewRedis creates a Redis-backed store tier
func NewRedis(client *redis.Client, logger *logrus.Logger) *Redis {
	return &Redis{
		client: client,
		logger: logger,
	}
}

// Get unmarshals the value stored under key
func (r *Redis) Get(ctx context.Context, key string, dest interface{}) bool {
	raw, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		r.logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Redis read failed, degrading")
		return false
	}

	if err := decode([]byte(raw), dest); err != nil {
		r.logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Discarding corrupted value in redis store")
		return false
	}
	return true
}

// Set stores the marshaled value under key
func (r *Redis) Set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		r.logger.WithFields(logrus.Fields{"key": key, "error": err}).Error("Failed to marshal value for redis store")
		return
	}

	if err := r.client.Set(ctx, key, raw, 0).Err(); err != nil {
		r.logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Redis write failed, degrading")
	}
}

// Delete removes the key
func (r *Redis) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Redis delete failed")
	}
}
