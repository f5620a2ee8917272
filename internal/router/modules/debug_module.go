package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-ddd-recipe-api/internal/interface/middleware"
)

// DebugModule serves the liveness probe and, when enabled, expvar metrics.
type DebugModule struct {
	RDB          *redis.Client
	MetricsOn    bool
	HealthChecks map[string]func(*gin.Context) error
}

func NewDebugModule(rdb *redis.Client, metricsOn bool) *DebugModule {
	return &DebugModule{RDB: rdb, MetricsOn: metricsOn}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", m.healthz)
	if !m.MetricsOn {
		return
	}
	// Public metrics endpoint (expvar), rate-limited per IP; private networks bypass the limit
	rl := middleware.RateLimit(m.RDB, middleware.Limit{
		Name: "debug", Max: 120, Window: time.Minute,
		Key: middleware.KeyByIP(), Bypass: middleware.AllowPrivateIP(),
	})
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}

func (m *DebugModule) healthz(c *gin.Context) {
	checks := gin.H{}
	status := http.StatusOK
	for name, check := range m.HealthChecks {
		if err := check(c); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}
	c.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
}
