package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Add(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestMemory(t *testing.T, ttl time.Duration) (*Memory, *fakeClock) {
	c, err := NewMemory(10, ttl)
	require.NoError(t, err)
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	c.now = clock.Now

	return c, clock
}

func TestNewMemory(t *testing.T) {
	t.Parallel()

	_, err := NewMemory(0, time.Minute)
	assert.Error(t, err)

	_, err = NewMemory(1, 0)
	assert.Error(t, err)

	_, err = NewMemory(1, time.Minute)
	assert.NoError(t, err)
}

func TestMemoryExpiry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		age     time.Duration
		wantHit bool
	}{
		{
			name:    "just stored",
			age:     0,
			wantHit: true,
		},
		{
			name:    "younger than ttl",
			age:     59 * time.Second,
			wantHit: true,
		},
		{
			name:    "just below ttl",
			age:     time.Minute - time.Nanosecond,
			wantHit: true,
		},
		{
			name:    "exactly ttl",
			age:     time.Minute,
			wantHit: false,
		},
		{
			name:    "older than ttl",
			age:     time.Hour,
			wantHit: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			c, clock := newTestMemory(t, time.Minute)

			c.Set(ctx, "k", []byte("v"))
			clock.Add(tt.age)

			got, ok := c.Get(ctx, "k")
			require.Equal(t, tt.wantHit, ok)
			if tt.wantHit {
				assert.Equal(t, []byte("v"), got)
				assert.Equal(t, 1, c.Len())
			} else {
				assert.Nil(t, got)
				assert.Equal(t, 0, c.Len(), "expired entry should be evicted on read")
			}
		})
	}
}

func TestMemoryMissingKey(t *testing.T) {
	t.Parallel()

	c, _ := newTestMemory(t, time.Minute)
	got, ok := c.Get(context.Background(), "missing")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemorySetOverwritesAndRestampsEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, clock := newTestMemory(t, time.Minute)

	c.Set(ctx, "k", []byte("old"))
	clock.Add(50 * time.Second)
	c.Set(ctx, "k", []byte("new"))
	clock.Add(50 * time.Second)

	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestMemoryInvalidateAndClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestMemory(t, time.Minute)

	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))
	c.Set(ctx, "c", []byte("3"))

	c.Invalidate(ctx, "a")
	c.Invalidate(ctx, "missing")
	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "b")
	assert.True(t, ok)

	c.Clear(ctx)
	assert.Equal(t, 0, c.Len())
	_, ok = c.Get(ctx, "c")
	assert.False(t, ok)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, err := NewMemory(100, time.Millisecond)
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 1000; j++ {
				c.Set(ctx, "k", []byte("v"))
				if v, ok := c.Get(ctx, "k"); ok {
					assert.Equal(t, []byte("v"), v)
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
