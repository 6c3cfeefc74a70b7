package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// upstreamQuotaPrefix namespaces limiter keys for the enrichment endpoints.
const upstreamQuotaPrefix = "external"

// NewRateLimiter builds an in-memory limiter from a formatted rate such as "60-M".
func NewRateLimiter(formattedRate string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formattedRate, err)
	}
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          upstreamQuotaPrefix,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	})
	return limiter.New(store, rate), nil
}

// RateLimit throttles each client IP and answers 429 once the quota is spent.
func RateLimit(l *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		logger := GetLoggerFromCtx(c.Request.Context())

		quota, err := l.Get(c.Request.Context(), ip)
		if err != nil {
			logger.Error("Rate limiter lookup failed", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.FormatInt(quota.Limit, 10))
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(quota.Remaining, 10))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(quota.Reset, 10))

		if quota.Reached {
			logger.Warn("External quota exhausted", slog.String("ip", ip), slog.Int64("limit", quota.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, retry after the rate limit window resets"})
			return
		}

		c.Next()
	}
}
