package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/store"
)

// validationFailed builds the 400 envelope returned for every rejected body
// or parameter: {"error": "Validation failed", "details": ...}.
func validationFailed(details string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
		"error":   "Validation failed",
		"details": details,
	})
}

// mapServiceError maps store/service-layer errors to HTTP error responses.
// Validation never reaches core state; conflicts cover optimistic-concurrency
// and lifecycle transition failures; everything else is a 500 with the error
// text preserved for the operator.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *store.ValidationError
	if errors.As(err, &validErr) {
		return validationFailed(validErr.Error())
	}
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	var conflictErr *store.ConflictError
	if errors.As(err, &conflictErr) {
		return echo.NewHTTPError(http.StatusConflict, conflictErr.Error())
	}
	if errors.Is(err, store.ErrConflict) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if errors.Is(err, store.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{
		"error":   "internal server error",
		"message": err.Error(),
	})
}
