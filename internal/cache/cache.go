// Package cache provides time-to-live caches for contract read results.
//
// Every backend applies a single ttl to all entries. An entry is returned only while it
// is younger than the ttl; an expired entry is treated as absent and dropped on read.
package cache

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Cache is a string keyed store of encoded values.
// Get never fails: backend errors are reported as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Invalidate(ctx context.Context, key string)
	Clear(ctx context.Context)
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Load returns the value cached under key, decoded into T.
// On a miss it calls fill and caches the result. Errors returned by fill are passed
// through unchanged and nothing is cached. An entry that can't be decoded is dropped
// and treated as a miss.
func Load[T any](ctx context.Context, c Cache, key string, fill func(context.Context) (T, error)) (T, error) {
	if data, ok := c.Get(ctx, key); ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return v, nil
		}
		c.Invalidate(ctx, key)
	}

	v, err := fill(ctx)
	if err != nil {
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return v, fmt.Errorf("encoding cache entry %s: %w", key, err)
	}
	c.Set(ctx, key, data)

	return v, nil
}
