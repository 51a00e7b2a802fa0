package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"learning_assistant_backend/internal/chatbot"
	"time"

	"github.com/go-redis/redis/v8"
)

// SnapshotCache keeps the latest chat context per student in Redis so the
// chatbot can personalize replies for callers that only send a student_id.
type SnapshotCache struct {
	Redis  *redis.Client
	ttl    time.Duration
	prefix string
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		Redis:  rdb,
		ttl:    ttl,
		prefix: "learning_assistant:snapshot:",
	}
}

func (c *SnapshotCache) key(studentID string) string {
	return c.prefix + studentID
}

func (c *SnapshotCache) Set(ctx context.Context, studentID string, snapshot *chatbot.Context) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return c.Redis.Set(ctx, c.key(studentID), data, c.ttl).Err()
}

// Get returns (nil, nil) on a cache miss.
func (c *SnapshotCache) Get(ctx context.Context, studentID string) (*chatbot.Context, error) {
	data, err := c.Redis.Get(ctx, c.key(studentID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snapshot chatbot.Context
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snapshot, nil
}

func (c *SnapshotCache) Ping(ctx context.Context) error {
	return c.Redis.Ping(ctx).Err()
}
