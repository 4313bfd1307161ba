package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"tesla-buddy/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Tesla Buddy checklist API"
	HealthVersion = "1.0.0"
	ServiceName   = "tesla-buddy"
)

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck reports ready together with the number of live checklist sessions.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := healthBody("ready")
	body["sessions"] = srv.countSessions(c.Request.Context())
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}

func (srv HTTPServer) countSessions(ctx context.Context) int {
	if srv.repo == nil {
		return 0
	}
	return srv.repo.CountSessions(ctx)
}
