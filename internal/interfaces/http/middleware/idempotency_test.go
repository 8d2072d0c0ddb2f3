package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin"
	"trade-admin.backend/internal/interfaces/http/middleware"
	"trade-admin.backend/pkg/redis"
)

func newIdempotencyRouter(t *testing.T, handler gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/users/:id/balance", middleware.Idempotency(time.Minute), handler)
	return r
}

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { redis.SetClient(nil) })
	return mr
}

func postBalance(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/42/balance", nil)
	if key != "" {
		req.Header.Set(middleware.IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_DuplicateKeyIsRejected(t *testing.T) {
	withMiniredis(t)
	calls := 0
	r := newIdempotencyRouter(t, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	first := postBalance(r, "abc-123")
	require.Equal(t, http.StatusCreated, first.Code)

	second := postBalance(r, "abc-123")
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Contains(t, second.Body.String(), "duplicate_request")
	assert.Equal(t, 1, calls)
}

func TestIdempotency_DistinctKeysBothPass(t *testing.T) {
	withMiniredis(t)
	calls := 0
	r := newIdempotencyRouter(t, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	require.Equal(t, http.StatusCreated, postBalance(r, "key-one").Code)
	require.Equal(t, http.StatusCreated, postBalance(r, "key-two").Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotency_FailedRequestReleasesKey(t *testing.T) {
	withMiniredis(t)
	calls := 0
	r := newIdempotencyRouter(t, func(c *gin.Context) {
		calls++
		if calls == 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	require.Equal(t, http.StatusUnprocessableEntity, postBalance(r, "retry-me").Code)

	// The failure released the key, so the retry reaches the handler.
	retried := postBalance(r, "retry-me")
	assert.Equal(t, http.StatusCreated, retried.Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotency_MissingHeaderPassesThrough(t *testing.T) {
	withMiniredis(t)
	calls := 0
	r := newIdempotencyRouter(t, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	require.Equal(t, http.StatusCreated, postBalance(r, "").Code)
	require.Equal(t, http.StatusCreated, postBalance(r, "").Code)
	assert.Equal(t, 2, calls)
}

func TestIdempotency_NoRedisPassesThrough(t *testing.T) {
	redis.SetClient(nil)
	calls := 0
	r := newIdempotencyRouter(t, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	require.Equal(t, http.StatusCreated, postBalance(r, "some-key").Code)
	require.Equal(t, http.StatusCreated, postBalance(r, "some-key").Code)
	assert.Equal(t, 2, calls)
}
