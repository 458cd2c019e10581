package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// Memory is an in-process cache.
// The lru size only guards memory; below it entries leave the cache by expiry alone.
type Memory struct {
	m     sync.Mutex
	store *lru.Cache
	ttl   time.Duration

	now func() time.Time
}

var _ Cache = &Memory{}

// NewMemory creates new Memory instance.
func NewMemory(size int, ttl time.Duration) (*Memory, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	if ttl <= 0 {
		return nil, errors.New("cache ttl must be greater than 0")
	}
	store, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache: %w", err)
	}

	return &Memory{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}, nil
}

// Get returns value stored for key if it hasn't expired yet.
func (c *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	c.m.Lock()
	defer c.m.Unlock()

	val, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	e := val.(memoryEntry)
	if c.now().Sub(e.stored) >= c.ttl {
		c.store.Remove(key)
		return nil, false
	}

	return e.value, true
}

// Set stores value for key, replacing any previous entry.
func (c *Memory) Set(_ context.Context, key string, value []byte) {
	c.m.Lock()
	defer c.m.Unlock()

	c.store.Add(key, memoryEntry{
		stored: c.now(),
		value:  value,
	})
}

// Invalidate removes entry for key.
func (c *Memory) Invalidate(_ context.Context, key string) {
	c.m.Lock()
	defer c.m.Unlock()

	c.store.Remove(key)
}

// Clear removes all entries.
func (c *Memory) Clear(context.Context) {
	c.m.Lock()
	defer c.m.Unlock()

	c.store.Purge()
}

// Len returns number of stored entries, including expired ones not read yet.
func (c *Memory) Len() int {
	c.m.Lock()
	defer c.m.Unlock()

	return c.store.Len()
}

type memoryEntry struct {
	stored time.Time
	value  []byte
}
