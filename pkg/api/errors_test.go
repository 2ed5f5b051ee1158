package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conductorhq/conductor/pkg/services"
	"github.com/conductorhq/conductor/pkg/workflow"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectKind string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("template_name", "missing field"),
			expectCode: http.StatusBadRequest,
			expectKind: "validation_error",
		},
		{
			name:       "unknown template maps to 400",
			err:        fmt.Errorf("wrapped: %w", workflow.ErrTemplateNotFound),
			expectCode: http.StatusBadRequest,
			expectKind: "validation_error",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectKind: "not_found",
		},
		{
			name:       "conflicting decision maps to 409",
			err:        services.ErrAlreadyExists,
			expectCode: http.StatusConflict,
			expectKind: "already_exists",
		},
		{
			name:       "resume of a running workflow maps to 409",
			err:        workflow.ErrNotPaused,
			expectCode: http.StatusConflict,
			expectKind: "not_paused",
		},
		{
			name:       "concurrent update maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrConcurrentUpdate),
			expectCode: http.StatusConflict,
			expectKind: "concurrent_update",
		},
		{
			name:       "storage outage maps to 503",
			err:        services.ErrStorageUnavailable,
			expectCode: http.StatusServiceUnavailable,
			expectKind: "storage_unavailable",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectKind: "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapError(tt.err)
			assert.Equal(t, tt.expectCode, status)
			assert.Equal(t, tt.expectKind, body.Error)
			assert.NotEmpty(t, body.Message)
		})
	}
}
