package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BoraOzcoban/sukoc/internal/shared/config"
	"github.com/BoraOzcoban/sukoc/internal/shared/server/middleware"
	"github.com/BoraOzcoban/sukoc/internal/shared/server/respond"
)

// RouteRegistrar is anything that can mount its endpoints on a group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the wired handlers into the router.
type RouterDeps struct {
	Config   config.Config
	Handlers []RouteRegistrar
}

const readRateLimitGroup = "READ"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	cfg := deps.Config
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT":          {Rate: cfg.RateLimitRate, Burst: cfg.RateLimitBurst},
				readRateLimitGroup: {Rate: cfg.RateLimitRate * 3, Burst: cfg.RateLimitBurst * 3},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodGet {
					return readRateLimitGroup
				}
				return ""
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	for _, h := range deps.Handlers {
		h.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
