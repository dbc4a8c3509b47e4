package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/dto/response"
	"golang.org/x/time/rate"
)

// IPRateLimiter limits requests per client IP. Stale entries are evicted
// while serving requests.
type IPRateLimiter struct {
	limiters  map[string]*rateLimiterEntry
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	entryTTL  time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterConfig holds configuration for the rate limiter
type RateLimiterConfig struct {
	Requests int           // Requests allowed per window, also the burst size
	Window   time.Duration // Window over which Requests are allowed
	EntryTTL time.Duration // How long to keep unused entries
}

// NewIPRateLimiter creates a new per-IP rate limiter
func NewIPRateLimiter(cfg RateLimiterConfig) *IPRateLimiter {
	if cfg.Requests < 1 {
		cfg.Requests = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.EntryTTL <= 0 {
		cfg.EntryTTL = 10 * cfg.Window
	}
	return &IPRateLimiter{
		limiters: make(map[string]*rateLimiterEntry),
		rate:     rate.Every(cfg.Window / time.Duration(cfg.Requests)),
		burst:    cfg.Requests,
		entryTTL: cfg.EntryTTL,
		now:      time.Now,
	}
}

// getLimiter returns the rate limiter for a client IP
func (rl *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > rl.entryTTL {
		rl.sweep(now)
	}

	if entry, exists := rl.limiters[ip]; exists {
		entry.lastSeen = now
		return entry.limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[ip] = &rateLimiterEntry{
		limiter:  limiter,
		lastSeen: now,
	}
	return limiter
}

// sweep removes entries that haven't been used recently. Callers hold mu.
func (rl *IPRateLimiter) sweep(now time.Time) {
	cutoff := now.Add(-rl.entryTTL)
	for ip, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, ip)
		}
	}
	rl.lastSweep = now
}

// Middleware returns a Gin middleware that applies per-IP rate limiting
func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getLimiter(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
		if !limiter.Allow() {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(int(rl.retryAfter().Seconds())+1))
			response.TooManyRequests(c, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}

func (rl *IPRateLimiter) retryAfter() time.Duration {
	return time.Duration(float64(time.Second) / float64(rl.rate))
}

// Len returns the number of tracked clients
func (rl *IPRateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}
