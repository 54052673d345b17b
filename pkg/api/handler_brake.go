package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/brake"
)

// --- Response types ---

// BrakeReleaseResponse is returned by POST /api/brake/release.
type BrakeReleaseResponse struct {
	Released []*brake.Brake `json:"released"`
	Resumed  int            `json:"resumed"`
}

// --- Handlers ---

// engageBrakeHandler handles POST /api/brake: the emergency stop. Behavior
// defaults from configuration so the panic button works with a bare
// {"scope":"all"} body.
func (s *Server) engageBrakeHandler(c *echo.Context) error {
	if s.brakes == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "brake not configured")
	}

	var req brake.Request
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}
	if req.Behavior == "" && s.cfg != nil && s.cfg.Brake != nil {
		req.Behavior = s.cfg.Brake.DefaultBehavior
	}
	if req.Reason == "" {
		req.Reason = "engaged by " + extractAuthor(c)
	}

	engaged, err := s.brakes.Engage(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, engaged)
}

// releaseBrakeHandler handles POST /api/brake/release. An empty or missing
// brakeId releases every active brake.
func (s *Server) releaseBrakeHandler(c *echo.Context) error {
	if s.brakes == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "brake not configured")
	}

	var req struct {
		BrakeID string `json:"brakeId"`
	}
	_ = c.Bind(&req)

	released, err := s.brakes.Release(c.Request().Context(), req.BrakeID)
	if err != nil {
		return mapServiceError(err)
	}
	resumed := 0
	for _, b := range released {
		if b.Behavior == brake.BehaviorPause {
			resumed += len(b.AffectedAgentIDs)
		}
	}
	return c.JSON(http.StatusOK, &BrakeReleaseResponse{Released: released, Resumed: resumed})
}
