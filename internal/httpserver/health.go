package httpserver

import (
	"github.com/gin-gonic/gin"

	"task-calendar/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Task calendar API is up"
	HealthVersion = "1.0.0"
	ServiceName   = "task-calendar"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.status(c, "healthy")
}

// readyCheck handles readiness check
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.status(c, "ready")
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.status(c, "alive")
}

func (srv HTTPServer) status(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":      status,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}
