package middleware

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "rl"

var errRateLimited = errors.New("rate limit exceeded")

// Fixed window: the first hit in a window sets the expiry.
var fixedWindowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return { count, redis.call('PTTL', KEYS[1]) }
`)

// NewRateLimiter limits requests per caller and route. Without Redis, or when
// Redis errors, requests pass through.
func NewRateLimiter(cfg config.RedisConfig, rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil || cfg.RateLimitRequests <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limit := int64(cfg.RateLimitRequests)
	windowMs := cfg.RateLimitWindow.Milliseconds()

	return func(c *gin.Context) {
		key := rateLimitKey(c)
		vals, err := fixedWindowScript.Run(c.Request.Context(), rdb, []string{key}, windowMs).Int64Slice()
		if err != nil || len(vals) != 2 {
			slog.Warn("rate limiter unavailable", "key", key, "error", errString(err))
			c.Next()
			return
		}
		count, ttlMs := vals[0], vals[1]

		remaining := max(limit-count, 0)
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > limit {
			secs := int(math.Ceil(float64(max(ttlMs, 0)) / float64(time.Second/time.Millisecond)))
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", gin.H{"retryAfter": secs})
			return
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	caller := "ip:" + c.ClientIP()
	if userID, ok := GetUserID(c); ok {
		caller = "user:" + userID.String()
	}
	return strings.Join([]string{rateLimitPrefix, caller, c.Request.Method, c.FullPath()}, ":")
}

func errString(err error) string {
	if err == nil {
		return "unexpected script result"
	}
	return err.Error()
}
