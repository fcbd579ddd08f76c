package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "vinom-maze"
	mazeKeyFmt    = "%s:maze:%dx%d:seed_%d"
	lockSuffix    = ":generate_lock"
)

// RedisMazeCache caches seeded mazes in Redis with TTL support.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, prefix string, ttlSeconds int) (i.MazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if prefix == "" {
		prefix = defaultPrefix
	}

	c := &RedisMazeCache{
		client: client,
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c, nil
}

func (c *RedisMazeCache) key(width, height int, seed int64) string {
	return fmt.Sprintf(mazeKeyFmt, c.prefix, width, height, seed)
}

// Get returns the cached record, or nil when the key is absent.
func (c *RedisMazeCache) Get(ctx context.Context, width, height int, seed int64) (*dmn.MazeRecord, error) {
	data, err := c.client.Get(ctx, c.key(width, height, seed)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record dmn.MazeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding cached maze: %w", err)
	}
	return &record, nil
}

// Set stores the record under its width, height and seed with the configured TTL.
func (c *RedisMazeCache) Set(ctx context.Context, record *dmn.MazeRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(record.Width, record.Height, record.Seed), data, c.ttl).Err()
}

// Delete removes the cached record for the key. A missing key is not an error.
func (c *RedisMazeCache) Delete(ctx context.Context, width, height int, seed int64) error {
	return c.client.Del(ctx, c.key(width, height, seed)).Err()
}

// Lock acquires a distributed mutex for the key.
func (c *RedisMazeCache) Lock(ctx context.Context, width, height int, seed int64) (func(), error) {
	mutex := c.locker.NewMutex(c.key(width, height, seed) + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
