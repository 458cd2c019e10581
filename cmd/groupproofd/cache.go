package main

import (
	"fmt"

	"github.com/groupproof/groupproof/internal/cache"
	"github.com/groupproof/groupproof/internal/database"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// newCache creates cache backend selected in config.
// The returned func releases backend resources.
func newCache(conf Config, l logrus.FieldLogger) (cache.Cache, func(), error) {
	ttl := conf.CacheTTL()
	l = l.WithField("component", "cache")

	switch conf.CacheBackend {
	case cacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		})
		c, err := cache.NewRedis(client, ttl, l)
		if err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("creating redis cache: %w", err)
		}
		return c, func() { client.Close() }, nil

	case cacheBackendBolt:
		kvStore, err := database.NewBoltKVStore(conf.BoltPath, conf.BoltBucket)
		if err != nil {
			return nil, nil, fmt.Errorf("creating bolt kv store: %w", err)
		}
		c, err := cache.NewKV(kvStore, ttl, l)
		if err != nil {
			kvStore.Close()
			return nil, nil, fmt.Errorf("creating bolt cache: %w", err)
		}
		return c, func() { kvStore.Close() }, nil

	default:
		c, err := cache.NewMemory(conf.CacheSize, ttl)
		if err != nil {
			return nil, nil, fmt.Errorf("creating memory cache: %w", err)
		}
		return c, func() {}, nil
	}
}
