package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conductorhq/conductor/pkg/services"
	"github.com/conductorhq/conductor/pkg/workflow"
)

// ErrorResponse is the canonical error body: a machine-readable kind, a
// human-readable message, and optional detail.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// respondError maps a service or engine error to its HTTP status and the
// canonical error body.
func respondError(c *echo.Context, err error) error {
	status, body := mapError(err)
	return c.JSON(status, body)
}

func mapError(err error) (int, *ErrorResponse) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, &ErrorResponse{
			Error: "validation_error", Message: validErr.Error(),
		}
	}

	switch {
	case errors.Is(err, workflow.ErrTemplateNotFound),
		errors.Is(err, workflow.ErrTemplate):
		return http.StatusBadRequest, &ErrorResponse{
			Error: "validation_error", Message: err.Error(),
		}
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, &ErrorResponse{
			Error: "not_found", Message: "resource not found",
		}
	case errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict, &ErrorResponse{
			Error: "already_exists", Message: "a conflicting decision or resource already exists",
		}
	case errors.Is(err, workflow.ErrNotPaused):
		return http.StatusConflict, &ErrorResponse{
			Error: "not_paused", Message: err.Error(),
		}
	case errors.Is(err, services.ErrConcurrentUpdate),
		errors.Is(err, services.ErrVersionConflict):
		return http.StatusConflict, &ErrorResponse{
			Error: "concurrent_update", Message: "workflow was modified concurrently",
		}
	case errors.Is(err, services.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, &ErrorResponse{
			Error: "storage_unavailable", Message: "state store is unavailable",
		}
	}

	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, &ErrorResponse{
		Error: "internal_error", Message: "internal server error",
	}
}

// badRequest is the canonical body for request-shape problems.
func badRequest(c *echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorResponse{
		Error: "validation_error", Message: message,
	})
}

// unavailable answers for endpoints whose dependency was not wired.
func unavailable(c *echo.Context, message string) error {
	return c.JSON(http.StatusServiceUnavailable, &ErrorResponse{
		Error: "unavailable", Message: message,
	})
}
