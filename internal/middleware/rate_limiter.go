package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an IP may stay silent before its bucket is
// dropped.
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter holds one token bucket per client IP. Idle buckets are swept
// lazily so the map tracks only recently active clients.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows perMinute requests per IP with the given burst.
// perMinute <= 0 disables limiting.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limit:     limit,
		burst:     burst,
		visitors:  make(map[string]*visitor),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (r *RateLimiter) getLimiter(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= limiterIdleTTL {
		r.sweep(now)
	}

	v, exists := r.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep drops idle visitors. Caller holds r.mu.
func (r *RateLimiter) sweep(now time.Time) {
	for ip, v := range r.visitors {
		if now.Sub(v.lastSeen) >= limiterIdleTTL {
			delete(r.visitors, ip)
		}
	}
	r.lastSweep = now
}

func (r *RateLimiter) tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Allow reports whether ip may make another request now.
func (r *RateLimiter) Allow(ip string) bool {
	return r.getLimiter(ip).Allow()
}

// Middleware rejects requests over the limit with 429.
func (r *RateLimiter) Middleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := ClientIP(c)
		if !r.Allow(ip) {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
