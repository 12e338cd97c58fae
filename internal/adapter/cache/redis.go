package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
)

const keyPrefix = "quickcamp:reference:"

// Redis keeps reference lists in redis so that every replica of the service
// can fall back to the same last known answer.
type Redis struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ port.ReferenceCache = (*Redis)(nil)

func NewRedis(client redis.Cmdable, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) ([]domain.ReferenceItem, bool, error) {
	raw, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	var items []domain.ReferenceItem
	if err = json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return items, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, items []domain.ReferenceItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	ttl := r.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err = r.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
