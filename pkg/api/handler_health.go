package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/conductorhq/conductor/pkg/database"
	"github.com/conductorhq/conductor/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthResponse is the body for GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck describes the state of one dependency.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// healthHandler handles GET /health: overall status plus a database check.
// Answers 503 only when the state store is down.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := &HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
		Checks:  make(map[string]HealthCheck),
	}

	if s.db != nil {
		dbStatus, err := database.Health(ctx, s.db.DB())
		if err != nil {
			resp.Status = healthStatusUnhealthy
			resp.Checks["database"] = HealthCheck{
				Status:  healthStatusUnhealthy,
				Message: err.Error(),
			}
		} else {
			resp.Checks["database"] = HealthCheck{
				Status:  healthStatusHealthy,
				Details: dbStatus,
			}
		}
	} else {
		resp.Status = healthStatusDegraded
		resp.Checks["database"] = HealthCheck{
			Status:  healthStatusDegraded,
			Message: "not configured",
		}
	}

	status := http.StatusOK
	if resp.Status == healthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, resp)
}
