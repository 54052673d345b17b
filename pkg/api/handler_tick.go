package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/tick"
)

// --- Handlers ---

// advanceTickHandler handles POST /api/tick/advance. Only legal in manual
// tick mode; in timer mode the clock belongs to the interval loop and a
// manual advance would race it.
func (s *Server) advanceTickHandler(c *echo.Context) error {
	if s.ticks == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "tick service not configured")
	}
	if s.ticks.Mode() != tick.ModeManual {
		return echo.NewHTTPError(http.StatusConflict, "tick mode is not manual")
	}

	var req struct {
		Ticks int64 `json:"ticks"`
	}
	// Body is optional; default advances one tick.
	_ = c.Bind(&req)
	if req.Ticks == 0 {
		req.Ticks = 1
	}
	if req.Ticks < 0 {
		return validationFailed("ticks must be positive")
	}

	current, err := s.ticks.Advance(c.Request().Context(), req.Ticks)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"tick": current})
}
