package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/distropop"
	"golang.org/x/time/rate"
)

// DefaultBurst lets one request through at a time, so requests to a host
// are spaced 1/rps apart from the first one on.
const DefaultBurst = 1

var _ distropop.HostLimiter = (*HostLimiter)(nil)

// HostLimiter spaces out requests with one token bucket per host.
// Hosts never wait on each other.
type HostLimiter struct {
	limit rate.Limit
	burst int

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewHostLimiter returns a limiter allowing rps requests per second to each
// host, with up to burst requests admitted without waiting. A burst below 1
// is treated as DefaultBurst.
func NewHostLimiter(rps float64, burst int) *HostLimiter {
	if burst < 1 {
		burst = DefaultBurst
	}
	return &HostLimiter{
		limit: rate.Limit(rps),
		burst: burst,
		hosts: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	if err := l.bucket(host).Wait(ctx); err != nil {
		return fmt.Errorf("wait for %s: %w", host, err)
	}
	return nil
}

func (l *HostLimiter) bucket(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.hosts[host]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.hosts[host] = b
	}
	return b
}
