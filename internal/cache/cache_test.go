package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loadTestValue struct {
	Name  string
	Items []int
}

func TestLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, clock := newTestMemory(t, time.Minute)

	var fills int
	fill := func(context.Context) (loadTestValue, error) {
		fills++
		return loadTestValue{Name: "v", Items: []int{fills}}, nil
	}

	got, err := Load(ctx, c, "k", fill)
	require.NoError(t, err)
	assert.Equal(t, loadTestValue{Name: "v", Items: []int{1}}, got)

	// Mutating a returned value must not leak into the cache.
	got.Items[0] = 100

	got, err = Load(ctx, c, "k", fill)
	require.NoError(t, err)
	assert.Equal(t, loadTestValue{Name: "v", Items: []int{1}}, got)
	assert.Equal(t, 1, fills)

	clock.Add(time.Minute)
	got, err = Load(ctx, c, "k", fill)
	require.NoError(t, err)
	assert.Equal(t, loadTestValue{Name: "v", Items: []int{2}}, got)
	assert.Equal(t, 2, fills)
}

func TestLoadFillError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestMemory(t, time.Minute)

	fillErr := errors.New("rpc failure")
	_, err := Load(ctx, c, "k", func(context.Context) (int, error) {
		return 0, fillErr
	})
	assert.Same(t, fillErr, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoadUndecodableEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _ := newTestMemory(t, time.Minute)
	c.Set(ctx, "k", []byte("{broken"))

	got, err := Load(ctx, c, "k", func(context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	data, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("7"), data)
}
