package limiter

import (
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/time/rate"
)

// ClientLimiter limits request rate per client key, usually the remote ip.
// Each client may burst up to max requests, refilled evenly over window.
// Least recently seen clients are forgotten once size clients are tracked.
type ClientLimiter struct {
	limiters *lru.Cache
	limit    rate.Limit
	burst    int
}

// NewClientLimiter creates new ClientLimiter instance.
func NewClientLimiter(max int, window time.Duration, size int) (*ClientLimiter, error) {
	if max <= 0 {
		return nil, errors.New("max requests must be greater than 0")
	}
	if window <= 0 {
		return nil, errors.New("window must be greater than 0")
	}
	limiters, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for limiters: %w", err)
	}

	return &ClientLimiter{
		limiters: limiters,
		limit:    rate.Every(window / time.Duration(max)),
		burst:    max,
	}, nil
}

// Allow reports whether client may send a request now and consumes a token if so.
func (l *ClientLimiter) Allow(client string) bool {
	// ContainsOrAdd keeps the first limiter when two requests of a new client race.
	l.limiters.ContainsOrAdd(client, rate.NewLimiter(l.limit, l.burst))
	v, ok := l.limiters.Get(client)
	if !ok {
		return true
	}

	return v.(*rate.Limiter).Allow()
}
