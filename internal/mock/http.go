package mock

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// RoundTripper mocks http.RoundTripper.
type RoundTripper struct {
	Statuses []int
	Bodies   [][]byte

	RoundTripFunc func(*http.Request) (*http.Response, error)

	m sync.Mutex
	i int
}

// RoundTrip fakes executing http request.
func (rt *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	rt.m.Lock()
	i := rt.i
	rt.i++
	rt.m.Unlock()

	if rt.RoundTripFunc != nil {
		return rt.RoundTripFunc(r)
	}

	status := http.StatusOK
	if len(rt.Statuses) > 0 {
		status = rt.Statuses[i%len(rt.Statuses)]
	}
	var data []byte
	if len(rt.Bodies) > 0 {
		data = rt.Bodies[i%len(rt.Bodies)]
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     http.Header{},
		Request:    r,
	}, nil
}

// Count returns number of executed requests.
func (rt *RoundTripper) Count() int {
	rt.m.Lock()
	defer rt.m.Unlock()

	return rt.i
}
