// Package cache fronts the org-tree read paths with Redis. Entries are
// invalidated wholesale per company on every relevant write, never patched
// incrementally; read paths must tolerate misses and fall back to the store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "orgtree"

// TreeCache caches resolved presentation trees keyed by company, manager and
// score window. A nil TreeCache is valid and behaves as a pass-through, so
// the service layer can run without Redis (tests, local dev).
type TreeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect opens a Redis connection and pings it
func Connect(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewTreeCache creates a tree cache over an existing client
func NewTreeCache(client *redis.Client, ttl time.Duration) *TreeCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TreeCache{client: client, ttl: ttl}
}

// Key builds the cache key for one resolved tree
func Key(companyID, managerID string, windowFrom, windowTo time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%d:%d", keyPrefix, companyID, managerID, windowFrom.Unix(), windowTo.Unix())
}

// Get loads a cached tree into dest. Returns false on miss or on any cache
// error; errors are logged, never propagated, because the store is always
// the fallback.
func (c *TreeCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Warn("tree cache read failed, falling back to store")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logrus.WithError(err).Warn("tree cache entry corrupt, falling back to store")
		return false
	}
	return true
}

// Set stores a resolved tree. Failures are logged and swallowed.
func (c *TreeCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).Warn("tree cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("tree cache write failed")
	}
}

// InvalidateCompany drops every cached tree of a company. Called from write
// paths after commit; a reader racing the invalidation sees either the old
// entry or a miss, both of which it must tolerate.
func (c *TreeCache) InvalidateCompany(ctx context.Context, companyID string) {
	if c == nil || c.client == nil {
		return
	}
	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, companyID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logrus.WithError(err).Warn("tree cache scan failed during invalidation")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logrus.WithError(err).Warn("tree cache invalidation failed")
	}
}
