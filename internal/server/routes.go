package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youth-policy-backend/internal/explain"
	"youth-policy-backend/internal/matching"
	"youth-policy-backend/internal/orchestrator"
	"youth-policy-backend/internal/policies"
	"youth-policy-backend/internal/profiles"
	"youth-policy-backend/internal/services/health"
	"youth-policy-backend/internal/sessions"
	"youth-policy-backend/internal/shared/metrics"
)

// Handlers collects the route handlers wired by bootstrap.
type Handlers struct {
	Profiles     *profiles.Handler
	Policies     *policies.Handler
	Matching     *matching.Handler
	Explain      *explain.Handler
	Sessions     *sessions.Handler
	Orchestrator *orchestrator.Handler
	Health       *health.Service
	Gateway      *policies.Gateway
}

func registerRoutes(r *gin.Engine, h Handlers) {
	r.GET("/", func(c *gin.Context) {
		conn := h.Gateway.TestConnection(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"service":            "청년 정책 추천 API",
			"status":             "running",
			"database_connected": conn.Connected,
			"endpoints": gin.H{
				"profile":      "POST /api/profile",
				"policies":     "GET /api/policies",
				"match":        "POST /api/match",
				"explain":      "POST /api/explain",
				"orchestrator": "POST /api/orchestrator",
				"history":      "GET /api/user/{user_id}/history",
				"health":       "GET /health",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, h.Health.Status(c.Request.Context()))
	})

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	h.Profiles.RegisterRoutes(api)
	h.Policies.RegisterRoutes(api)
	h.Matching.RegisterRoutes(api)
	h.Explain.RegisterRoutes(api)
	h.Sessions.RegisterRoutes(api)
	h.Orchestrator.RegisterRoutes(api)
}
