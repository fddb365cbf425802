package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore maps client IPs to their token buckets. Buckets idle
// longer than limiterIdleTTL are swept so the map does not grow unbounded.
type rateLimiterStore struct {
	limiters map[string]*clientLimiter
	mu       sync.Mutex

	every time.Duration
	burst int
}

func newRateLimiterStore(perMinute, burst int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters: make(map[string]*clientLimiter),
		every:    time.Minute / time.Duration(perMinute),
		burst:    burst,
	}
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.limiters[ip]
	if !exists {
		entry = &clientLimiter{limiter: rate.NewLimiter(rate.Every(s.every), s.burst)}
		s.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (s *rateLimiterStore) removeStale(olderThan time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ip, entry := range s.limiters {
		if entry.lastSeen.Before(olderThan) {
			delete(s.limiters, ip)
		}
	}
}

func (s *rateLimiterStore) sweep(interval time.Duration) {
	for range time.Tick(interval) {
		s.removeStale(time.Now().Add(-limiterIdleTTL))
	}
}

// RateLimit throttles a route group per client IP. The public intake
// endpoints answer 429 once the bucket runs dry.
func RateLimit(perMinute, burst int) gin.HandlerFunc {
	store := newRateLimiterStore(perMinute, burst)
	go store.sweep(limiterIdleTTL)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.getLimiter(ip).Allow() {
			log.Printf("rate_limited client_ip=%s path=%s", ip, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": "Too many requests, try again later",
				},
			})
			return
		}
		c.Next()
	}
}
