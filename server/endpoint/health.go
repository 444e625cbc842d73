// Package endpoint provides the built-in operational HTTP endpoints.
package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check is the health status of one dependency.
type Check struct {
	Name   string `json:"name"`
	Status string `json:"status"` // "healthy" or "degraded"
	Detail string `json:"detail,omitempty"`
}

// HealthChecker returns health status for the service's dependencies.
type HealthChecker func(ctx context.Context) []Check

// Health returns a handler that reports service health. A degraded dependency
// (e.g. the scoring collaborator running in fallback mode) does not fail the
// check, it is only reported.
func Health(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		var checks []Check

		if checker != nil {
			checks = checker(c.Request.Context())
			for _, ch := range checks {
				if ch.Status == "degraded" {
					status = "degraded"
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"service":   serviceName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"checks":    checks,
		})
	}
}
