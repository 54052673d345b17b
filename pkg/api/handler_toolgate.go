package api

import (
	"encoding/json"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// --- Response types ---

// ApprovalResponse is returned by POST /api/tool-gate/request-approval once
// the blocking wait resolves. Action mirrors the resolution the human or the
// gate produced: approve, approve_always, modify (with modifiedArgs), or
// reject.
type ApprovalResponse struct {
	DecisionID   string          `json:"decisionId"`
	Action       string          `json:"action"`
	ModifiedArgs json.RawMessage `json:"modifiedArgs,omitempty"`
	Rationale    string          `json:"rationale,omitempty"`
	AutoResolved bool            `json:"autoResolved"`
	TimedOut     bool            `json:"timedOut,omitempty"`
}

// --- Handlers ---

// requestApprovalHandler handles POST /api/tool-gate/request-approval. The
// request parks until a human resolves the decision, the gate auto-resolves
// it under the active control mode, or the approval timeout rejects it.
// Sandboxes must size their HTTP client timeout above the gate timeout.
func (s *Server) requestApprovalHandler(c *echo.Context) error {
	if s.gate == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "tool gate not configured")
	}

	var req struct {
		AgentID   string          `json:"agentId"`
		ToolName  string          `json:"toolName"`
		ToolInput json.RawMessage `json:"toolInput"`
		ToolUseID string          `json:"toolUseId"`
	}
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}
	// A verified agent token pins the caller identity.
	if claims, ok := claimsFrom(c); ok && claims.Subject != "" {
		req.AgentID = claims.Subject
	}

	result, err := s.gate.RequestApproval(c.Request().Context(), req.AgentID, req.ToolName, req.ToolInput, req.ToolUseID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ApprovalResponse{
		DecisionID:   result.DecisionID,
		Action:       result.Resolution.Action,
		ModifiedArgs: result.Resolution.ModifiedArgs,
		Rationale:    result.Resolution.Rationale,
		AutoResolved: result.AutoResolved,
		TimedOut:     result.TimedOut,
	})
}

// toolGateStatsHandler handles GET /api/tool-gate/stats.
func (s *Server) toolGateStatsHandler(c *echo.Context) error {
	if s.gate == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "tool gate not configured")
	}
	return c.JSON(http.StatusOK, s.gate.GetStats())
}
