package router

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cuongbtq/jobboard/internal/api/dto"
	"github.com/cuongbtq/jobboard/internal/api/handler"
	"github.com/cuongbtq/jobboard/internal/api/policy"
	"github.com/cuongbtq/jobboard/shared/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// LoggerMiddleware logs HTTP requests with slog
func LoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		attrs := []any{
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("query", query),
			slog.String("ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
			slog.Duration("latency", latency),
			slog.Int("body_size", c.Writer.Size()),
		}
		if caller := handler.Caller(c); caller != nil {
			attrs = append(attrs, slog.String("account_id", caller.ID))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("HTTP Request", attrs...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.Warn("HTTP Request", attrs...)
		default:
			logger.Info("HTTP Request", attrs...)
		}

		for _, e := range c.Errors {
			logger.Error("Request error",
				slog.String("error", e.Error()),
				slog.Uint64("type", uint64(e.Type)),
			)
		}
	}
}

// MetricsMiddleware records request counts and latency per route template
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// CORSMiddleware allows the configured origins, or any origin when none are set
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
		config.AllowCredentials = true
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.MaxAge = 12 * time.Hour
	return cors.New(config)
}

// Authenticate resolves the bearer token to an account and stores it on the
// request. Missing or invalid tokens abort with 401.
func Authenticate(auth handler.AuthService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")

		account, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			handler.RespondError(c, logger, err)
			return
		}

		handler.SetCaller(c, account)
		c.Next()
	}
}

// Authorize gates a route on the caller's role. It must run after Authenticate.
func Authorize(action policy.Action, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := policy.Authorize(handler.Caller(c), action, ""); err != nil {
			handler.RespondError(c, logger, err)
			return
		}
		c.Next()
	}
}

// ipLimiter hands out one token bucket per client IP. Idle buckets expire.
type ipLimiter struct {
	mu       sync.Mutex
	limiters *gocache.Cache
	limit    rate.Limit
	burst    int
}

func newIPLimiter(perMinute float64, burst int) *ipLimiter {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(perMinute / 60)
	}
	return &ipLimiter{
		limiters: gocache.New(10*time.Minute, 20*time.Minute),
		limit:    limit,
		burst:    burst,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var limiter *rate.Limiter
	if v, found := l.limiters.Get(ip); found {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	// refresh expiry on every attempt
	l.limiters.SetDefault(ip, limiter)

	return limiter.Allow()
}

// RateLimit throttles a route per client IP with 429 responses.
// A non-positive rate disables throttling.
func RateLimit(perMinute float64, burst int) gin.HandlerFunc {
	limiter := newIPLimiter(perMinute, burst)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Success: false,
				Message: "Too many login attempts, please try again later",
			})
			return
		}
		c.Next()
	}
}
