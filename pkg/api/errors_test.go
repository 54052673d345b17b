package api

import (
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/steward-io/steward/pkg/store"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        store.NewValidationError("name", "missing field"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "missing field",
		},
		{
			name:       "validation error carries envelope",
			err:        store.NewValidationError("brief", "role is required"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "Validation failed",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", store.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "version conflict maps to 409",
			err:        &store.ConflictError{ArtifactID: "art-1", Expected: 1, Actual: 2},
			expectCode: http.StatusConflict,
			expectMsg:  "expected 1, actual 2",
		},
		{
			name:       "lifecycle conflict maps to 409",
			err:        fmt.Errorf("agent not pausable: %w", store.ErrConflict),
			expectCode: http.StatusConflict,
			expectMsg:  "not pausable",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", store.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}
