package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit_BurstThen429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(60, 3), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimit_PerClientBuckets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(60, 1), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	r.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	blocked := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	r.ServeHTTP(blocked, req)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)

	other := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "198.51.100.9:4321"
	r.ServeHTTP(other, req)
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRateLimiterStore_SweepsIdleBuckets(t *testing.T) {
	store := newRateLimiterStore(60, 1)

	limiter := store.getLimiter("203.0.113.7")
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())

	// Nothing is stale yet, the drained bucket survives.
	store.removeStale(time.Now().Add(-limiterIdleTTL))
	assert.False(t, store.getLimiter("203.0.113.7").Allow())

	// Once idle past the cutoff, the client starts over with a fresh bucket.
	store.removeStale(time.Now().Add(time.Second))
	assert.True(t, store.getLimiter("203.0.113.7").Allow())
}
