package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisKeyPrefix = "groupproof:"

// Redis is a cache shared by all service replicas.
// Expiry is delegated to redis, which never returns an expired key.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	l      logrus.FieldLogger
}

var _ Cache = &Redis{}

// NewRedis creates new Redis instance.
func NewRedis(client *redis.Client, ttl time.Duration, l logrus.FieldLogger) (*Redis, error) {
	if ttl <= 0 {
		return nil, errors.New("cache ttl must be greater than 0")
	}

	return &Redis{
		client: client,
		ttl:    ttl,
		l:      l,
	}, nil
}

// Get returns value stored for key if it hasn't expired yet.
func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.l.Errorf("reading cache key %s: %v", key, err)
		return nil, false
	}

	return data, true
}

// Set stores value for key, replacing any previous entry.
func (c *Redis) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, redisKeyPrefix+key, value, c.ttl).Err(); err != nil {
		c.l.Errorf("writing cache key %s: %v", key, err)
	}
}

// Invalidate removes entry for key.
func (c *Redis) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		c.l.Errorf("deleting cache key %s: %v", key, err)
	}
}

// Clear removes all entries written by this cache. Other keys in the database are kept.
func (c *Redis) Clear(ctx context.Context) {
	var keys []string
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.l.Errorf("scanning cache keys: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.l.Errorf("clearing cache: %v", err)
	}
}
