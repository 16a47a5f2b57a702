package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-timesheet/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyHeader        = "Idempotency-Key"
	IdempotentReplayedHeader = "Idempotent-Replayed"
	idempotencyCacheKey      = "idempotency_cache_key"
	idempotencyLockKey       = "idempotency_lock_key"

	idempotencyLockTTL     = 30 * time.Second
	idempotencyResponseTTL = 24 * time.Hour
)

// Idempotency replays the stored response of a POST that carried the same
// Idempotency-Key and rejects a duplicate that arrives while the first one
// is still running.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString(ActorIDKey), idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached json.RawMessage = []byte(val)
			c.Header(IdempotentReplayedHeader, "true")
			c.AbortWithStatusJSON(http.StatusCreated, response.ApiEnvelope{Ok: true, Data: cached})
			return
		}

		// The lock expires on its own if the process dies mid request.
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err == nil && !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "A request with this Idempotency-Key is still being processed", nil)
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)

		c.Next()

		rdb.Del(ctx, lockKey)
	}
}

// RememberIdempotentResponse stores a successful response body under the
// request's idempotency key. It is a no-op when the request had none.
func RememberIdempotentResponse(c *gin.Context, rdb *redis.Client, data any) {
	if rdb == nil {
		return
	}
	key := c.GetString(idempotencyCacheKey)
	if key == "" {
		return
	}
	if payload, err := json.Marshal(data); err == nil {
		_ = rdb.Set(c.Request.Context(), key, payload, idempotencyResponseTTL).Err()
	}
}
