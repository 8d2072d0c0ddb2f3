package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"trade-admin.backend/internal/interfaces/http/response"
	"trade-admin.backend/pkg/logger"
	"trade-admin.backend/pkg/redis"
)

// IdempotencyKeyHeader lets callers flag money-moving requests for
// duplicate suppression.
const IdempotencyKeyHeader = "Idempotency-Key"

// Idempotency rejects a repeated mutation carrying an already-seen key.
// Requests without the header pass through; so do requests when Redis is
// down, availability wins over duplicate suppression here.
func Idempotency(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || redis.GetClient() == nil {
			c.Next()
			return
		}

		storageKey := fmt.Sprintf("idempotency:%s:%s:%s", c.Request.Method, c.FullPath(), key)
		acquired, err := redis.SetNX(c.Request.Context(), storageKey, "1", ttl)
		if err != nil {
			logger.Warn(c.Request.Context(), "idempotency check unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			c.JSON(http.StatusConflict, response.Body{
				Success: false,
				Error: &response.ErrorBody{
					Kind:    "duplicate_request",
					Message: "a request with this idempotency key was already processed",
				},
			})
			c.Abort()
			return
		}

		c.Next()

		// A failed mutation releases the key so the caller may retry.
		if c.Writer.Status() >= http.StatusBadRequest {
			if err := redis.Del(c.Request.Context(), storageKey); err != nil {
				logger.Warn(c.Request.Context(), "failed to release idempotency key", zap.Error(err))
			}
		}
	}
}
