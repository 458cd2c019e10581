package limiter

import (
	"fmt"
	"net/http"

	"github.com/groupproof/groupproof/internal/app"
	"golang.org/x/time/rate"
)

// limitedRoundTripper wraps http.RoundTripper and sends requests with maximum rate limit.
type limitedRoundTripper struct {
	rt      http.RoundTripper
	limiter *rate.Limiter
}

// NewRoundTripper creates rate limited http.RoundTripper.
// maxRate - maximum number of requests per second.
func NewRoundTripper(rt http.RoundTripper, maxRate float64) http.RoundTripper {
	return &limitedRoundTripper{
		rt:      rt,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

// RoundTrip executes http request. If limit is exceeded, blocks until call rate is within limit.
func (t *limitedRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		return nil, app.TooManyRequestsError(fmt.Sprintf("waiting for rpc limiter: %v", err))
	}

	return t.rt.RoundTrip(r)
}
