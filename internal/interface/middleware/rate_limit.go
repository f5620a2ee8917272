package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-ddd-recipe-api/pkg/response"
)

// ipFromCtx extracts the client IP from Gin context, falling back to "unknown"
func ipFromCtx(c *gin.Context) string {
	if ip := c.GetString(RealIPKey); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// KeyFunc identifies the client a request is counted against.
type KeyFunc func(c *gin.Context) string

// AllowFunc returns true for requests that skip the limiter entirely.
type AllowFunc func(*gin.Context) bool

func KeyByIP() KeyFunc {
	return func(c *gin.Context) string { return "ip:" + ipFromCtx(c) }
}

// KeyByIPAndPath gives every route its own per-client budget.
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		return "route:" + route + ":ip:" + ipFromCtx(c)
	}
}

// KeyByUserID counts signed-in users by id and anonymous callers by IP.
func KeyByUserID() KeyFunc {
	return func(c *gin.Context) string {
		if uid := c.GetString(CtxUserIDKey); uid != "" {
			return "user:" + uid
		}
		return "anon:ip:" + ipFromCtx(c)
	}
}

// IsWrite matches requests that change state.
func IsWrite(c *gin.Context) bool {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}

// LargeWrite matches writes whose body exceeds minBytes. Recipe writes only
// get that big when they carry a base64 photo.
func LargeWrite(minBytes int64) func(*gin.Context) bool {
	return func(c *gin.Context) bool {
		return IsWrite(c) && c.Request.ContentLength > minBytes
	}
}

// Limit is one fixed-window budget. Name namespaces the redis key so several
// limits can share a KeyFunc without sharing a counter.
type Limit struct {
	Name   string
	Max    int
	Window time.Duration
	Key    KeyFunc
	// Applies restricts counting to matching requests; nil counts all but OPTIONS.
	Applies func(*gin.Context) bool
	Bypass  AllowFunc
}

// INCR plus PEXPIRE on the first hit, returning the count and remaining ms.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// RateLimit enforces l against redis. A nil client or an unusable limit
// disables it, and redis errors let the request through.
func RateLimit(rdb *redis.Client, l Limit) gin.HandlerFunc {
	if rdb == nil || l.Max <= 0 || l.Window <= 0 || l.Key == nil {
		return func(c *gin.Context) { c.Next() }
	}
	prefix := "rl:" + l.Name + ":"
	if l.Name == "" {
		prefix = "rl:"
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			(l.Applies != nil && !l.Applies(c)) ||
			(l.Bypass != nil && l.Bypass(c)) {
			c.Next()
			return
		}

		vals, err := incrExpireScript.Run(c.Request.Context(), rdb, []string{prefix + l.Key(c)}, l.Window.Milliseconds()).Int64Slice()
		if err != nil || len(vals) != 2 {
			c.Next()
			return
		}
		count, resetSec := int(vals[0]), 0
		if vals[1] > 0 {
			resetSec = int((vals[1] + 999) / 1000)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.Max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(l.Max-count, 0)))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > l.Max {
			if resetSec > 0 {
				c.Header("Retry-After", strconv.Itoa(resetSec))
			}
			response.JSONError(c, http.StatusTooManyRequests, "rate limit exceeded", response.ErrorBody{Type: "rate_limited", Details: map[string]string{"limit": l.Name}})
			return
		}
		c.Next()
	}
}
