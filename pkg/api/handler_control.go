package api

import (
	"net/http"

	"log/slog"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/models"
)

// --- Response types ---

// ControlModeResponse is returned by both control-mode endpoints.
type ControlModeResponse struct {
	Mode     models.ControlMode `json:"mode"`
	Previous models.ControlMode `json:"previous,omitempty"`
	Changed  bool               `json:"changed,omitempty"`
}

// --- Handlers ---

// getControlModeHandler handles GET /api/control-mode.
func (s *Server) getControlModeHandler(c *echo.Context) error {
	if s.control == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "control mode not configured")
	}
	return c.JSON(http.StatusOK, &ControlModeResponse{Mode: s.control.Current()})
}

// setControlModeHandler handles PUT /api/control-mode.
//
// Steps:
//  1. Validate the requested mode.
//  2. Swap the shared state; the tool gate and injection scheduler read it
//     live, so no re-registration is needed.
//  3. On change, push a state_sync frame and tell every running sandbox
//     best-effort through a brief update.
func (s *Server) setControlModeHandler(c *echo.Context) error {
	if s.control == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "control mode not configured")
	}

	var req struct {
		Mode string `json:"mode"`
	}
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}
	mode, err := models.ParseControlMode(req.Mode)
	if err != nil {
		return validationFailed(err.Error())
	}

	prev, changed := s.control.Set(mode)
	if changed {
		s.BroadcastStateSync()
		s.propagateControlMode(c, mode)
		slog.Info("Control mode changed",
			"from", prev, "to", mode, "by", extractAuthor(c))
	}
	return c.JSON(http.StatusOK, &ControlModeResponse{
		Mode:     mode,
		Previous: prev,
		Changed:  changed,
	})
}

// propagateControlMode notifies running sandboxes of the new mode so their
// harnesses can adjust prompting. Failures are logged, never surfaced: the
// gate enforces the mode server-side regardless.
func (s *Server) propagateControlMode(c *echo.Context, mode models.ControlMode) {
	if s.gateway == nil {
		return
	}
	patch := map[string]any{"controlMode": string(mode)}
	for _, handle := range s.gateway.ListHandles() {
		if handle.Status != models.AgentRunning {
			continue
		}
		if err := s.gateway.UpdateBrief(c.Request().Context(), handle.AgentID, patch); err != nil {
			slog.Warn("Control mode not delivered to sandbox",
				"agent_id", handle.AgentID, "error", err)
		}
	}
}
