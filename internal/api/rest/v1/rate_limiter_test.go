//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter_Disabled(t *testing.T) {
	assert.Nil(t, NewRateLimiter(0))
	assert.Nil(t, NewRateLimiter(-5))
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(3)
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should pass", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// Separate clients have separate buckets
	assert.True(t, rl.Allow("10.0.0.2"))

	// One token comes back every 20 seconds
	now = now.Add(20 * time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.Len(t, rl.limiters, 1)

	now = now.Add(limiterIdleTTL + time.Minute)
	assert.True(t, rl.Allow("10.0.0.2"))
	assert.Len(t, rl.limiters, 1)
	assert.Contains(t, rl.limiters, "10.0.0.2")
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nil limiter allows everything", func(t *testing.T) {
		var rl *RateLimiter
		r := gin.New()
		r.GET("/auth/me", rl.Middleware(), func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

		for i := 0; i < 10; i++ {
			w := testutil.PerformRequest(t, r, http.MethodGet, "/auth/me", nil, nil)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("rejects over the limit", func(t *testing.T) {
		rl := NewRateLimiter(2)
		r := gin.New()
		r.GET("/auth/me", rl.Middleware(), func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

		assert.Equal(t, http.StatusOK, testutil.PerformRequest(t, r, http.MethodGet, "/auth/me", nil, nil).Code)
		assert.Equal(t, http.StatusOK, testutil.PerformRequest(t, r, http.MethodGet, "/auth/me", nil, nil).Code)

		w := testutil.PerformRequest(t, r, http.MethodGet, "/auth/me", nil, nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "30", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "too many requests")
	})
}
