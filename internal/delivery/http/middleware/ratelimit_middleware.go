package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bazaar/config"
	"bazaar/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// tokenBucketScript implements an atomic token bucket per key. State lives in
// a Redis hash so concurrent requests across instances share one budget.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local refill_tokens = tonumber(ARGV[3])
	local interval_ms = tonumber(ARGV[4])
	local ttl_seconds = tonumber(ARGV[5])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	if interval_ms > 0 and refill_tokens > 0 then
		local elapsed = math.max(0, now_ms - last_refill)
		local intervals = math.floor(elapsed / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + (intervals * refill_tokens))
			last_refill = last_refill + (intervals * interval_ms)
		end
	end

	local allowed = 0
	local retry_after_ms = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	else
		local until_next = interval_ms - (now_ms - last_refill)
		if until_next < 0 then until_next = 0 end
		retry_after_ms = until_next
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('EXPIRE', key, ttl_seconds)

	return { allowed, tokens, retry_after_ms }
`)

// RateLimitMiddleware throttles credential endpoints with a Redis token
// bucket keyed by client IP and route. When Redis is unreachable the limiter
// fails open: availability of login beats strictness of the limit.
type RateLimitMiddleware struct {
	cfg    *config.RateLimitConfig
	client *redis.Client
	logger *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(cfg *config.Config, client *redis.Client, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		cfg:    cfg.RateLimit,
		client: client,
		logger: logger,
	}
}

// Limit returns the echo middleware enforcing the configured bucket.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if m.cfg == nil || !m.cfg.Enabled || m.client == nil {
		return next
	}

	return func(c echo.Context) error {
		key := m.bucketKey(c)

		args := []any{
			time.Now().UnixMilli(),
			m.cfg.Capacity,
			m.cfg.RefillTokens,
			m.cfg.RefillInterval.Milliseconds(),
			int64(m.cfg.TTL / time.Second),
		}

		vals, err := tokenBucketScript.Run(c.Request().Context(), m.client, []string{key}, args...).Result()
		if err != nil {
			m.logger.Warn("Rate limiter unavailable, failing open", slog.String("key", key), slog.Any("error", err))

			return next(c)
		}

		arr, ok := vals.([]any)
		if !ok || len(arr) != 3 {
			m.logger.Warn("Unexpected rate limiter reply", slog.String("key", key))

			return next(c)
		}

		allowed := asInt64(arr[0]) == 1
		remaining := asInt64(arr[1])
		retryMs := asInt64(arr[2])

		c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(m.cfg.Capacity))
		c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			if secs < 0 {
				secs = 0
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(secs))

			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later", "")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) bucketKey(c echo.Context) string {
	ip := c.RealIP()
	if ip == "" {
		ip = "unknown"
	}

	return strings.Join([]string{m.cfg.Prefix, "ip", ip, "route", c.Request().Method + " " + c.Path()}, ":")
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}

	return 0
}
