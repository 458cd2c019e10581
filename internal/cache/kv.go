package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
	DeleteKey(key []byte) error
	DeleteAll() error
}

// KV keeps cache entries in a KVStore, so they survive process restarts.
// Entries are saved together with their creation time and expire lazily on read.
// The mutex makes read-check-delete in Get atomic with respect to Set.
type KV struct {
	m     sync.Mutex
	store KVStore
	ttl   time.Duration
	l     logrus.FieldLogger

	now func() time.Time
}

var _ Cache = &KV{}

// NewKV creates new KV instance.
func NewKV(store KVStore, ttl time.Duration, l logrus.FieldLogger) (*KV, error) {
	if ttl <= 0 {
		return nil, errors.New("cache ttl must be greater than 0")
	}

	return &KV{
		store: store,
		ttl:   ttl,
		l:     l,
		now:   time.Now,
	}, nil
}

// Get returns value stored for key if it hasn't expired yet.
func (c *KV) Get(_ context.Context, key string) ([]byte, bool) {
	c.m.Lock()
	defer c.m.Unlock()

	data, err := c.store.ReadKey([]byte(key))
	if err != nil {
		c.l.Errorf("reading cache key %s: %v", key, err)
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var entry kvEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.l.Warnf("unmarshalling cache entry %s: %v", key, err)
		c.delete(key)
		return nil, false
	}
	if c.now().Sub(time.Unix(0, entry.Created)) >= c.ttl {
		c.delete(key)
		return nil, false
	}

	return entry.Data, true
}

// Set stores value for key, replacing any previous entry.
func (c *KV) Set(_ context.Context, key string, value []byte) {
	data, err := json.Marshal(kvEntry{
		Created: c.now().UnixNano(),
		Data:    value,
	})
	if err != nil {
		c.l.Errorf("marshalling cache entry %s: %v", key, err)
		return
	}

	c.m.Lock()
	defer c.m.Unlock()

	if err := c.store.UpdateKey([]byte(key), data); err != nil {
		c.l.Errorf("writing cache key %s: %v", key, err)
	}
}

// Invalidate removes entry for key.
func (c *KV) Invalidate(_ context.Context, key string) {
	c.m.Lock()
	defer c.m.Unlock()

	c.delete(key)
}

// Clear removes all entries.
func (c *KV) Clear(context.Context) {
	c.m.Lock()
	defer c.m.Unlock()

	if err := c.store.DeleteAll(); err != nil {
		c.l.Errorf("clearing cache: %v", err)
	}
}

func (c *KV) delete(key string) {
	if err := c.store.DeleteKey([]byte(key)); err != nil {
		c.l.Errorf("deleting cache key %s: %v", key, err)
	}
}

type kvEntry struct {
	Created int64
	Data    []byte
}
