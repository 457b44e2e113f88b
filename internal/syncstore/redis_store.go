package syncstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists snapshots as JSON values in Redis, one key per user
// and collection.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed snapshot store
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func redisKey(userID int64, collection string) string {
	return "zonosign:" + collection + ":" + strconv.FormatInt(userID, 10)
}

// Save overwrites the snapshot document for a user and collection
func (s *RedisStore) Save(ctx context.Context, userID int64, collection string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s snapshot: %w", collection, err)
	}
	return s.client.Set(ctx, redisKey(userID, collection), data, 0).Err()
}

// Load returns the stored snapshot, or found == false when none exists
func (s *RedisStore) Load(ctx context.Context, userID int64, collection string) (json.RawMessage, bool, error) {
	data, err := s.client.Get(ctx, redisKey(userID, collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s snapshot: %w", collection, err)
	}
	return json.RawMessage(data), true, nil
}

// Clear overwrites the snapshot with a zero document
func (s *RedisStore) Clear(ctx context.Context, userID int64, collection string, zeroDoc any) error {
	return s.Save(ctx, userID, collection, zeroDoc)
}

// Close releases the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
