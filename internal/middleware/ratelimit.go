package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/stpnv0/HotelBooker/internal/metrics"
	"github.com/wb-go/wbf/ginext"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps a token bucket per client IP. Buckets idle for longer than ttl are
// dropped on the next sweep.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	r        rate.Limit
	b        int
	ttl      time.Duration
	now      func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int, ttl time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		r:        r,
		b:        b,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.r, l.b)}
		l.visitors[ip] = v
	}
	v.lastSeen = l.now()

	return v.limiter.AllowN(v.lastSeen, 1)
}

// Cleanup drops idle buckets and returns how many are left.
func (l *IPRateLimiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.ttl)
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
		}
	}
	return len(l.visitors)
}

// RunCleanup sweeps idle buckets every interval until ctx is done.
func (l *IPRateLimiter) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}

func RateLimit(l *IPRateLimiter) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if !l.Allow(c.ClientIP()) {
			metrics.RateLimitHits.Inc()
			c.Set("error", "rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
