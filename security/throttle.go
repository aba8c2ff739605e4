package security

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Throttle counts submissions per client and path in Redis. It backs up the
// session's in-flight guard on the delayed endpoints (login, payment): the
// data layer does not deduplicate, so a client hammering submit past the
// limit is cut off here.
type Throttle struct {
	redis *redis.Client
}

func NewThrottle(redisClient *redis.Client) *Throttle {
	return &Throttle{redis: redisClient}
}

func (t *Throttle) LimitSubmissions(limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("throttle:%s:%s", c.ClientIP(), c.FullPath())

		count, err := t.redis.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Throttling is best effort; a broken counter must not block
			// the booking flow.
			c.Next()
			return
		}

		if count == 1 {
			t.redis.Expire(c.Request.Context(), key, window)
		}

		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many submissions. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
