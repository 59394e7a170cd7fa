package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (f *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allowed, f.err
}

func setupRateLimitRouter(limiter Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/join", RateLimitMiddleware(limiter), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRateLimitMiddleware_NilLimiterPassesThrough(t *testing.T) {
	router := setupRateLimitRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/join", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware_Allowed(t *testing.T) {
	limiter := &fakeLimiter{allowed: true}
	router := setupRateLimitRouter(limiter)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/join", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, limiter.keys, 1)
}

func TestRateLimitMiddleware_Blocked(t *testing.T) {
	router := setupRateLimitRouter(&fakeLimiter{allowed: false})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/join", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	router := setupRateLimitRouter(&fakeLimiter{err: errors.New("redis down")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/join", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
