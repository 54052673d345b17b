package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/models"
)

// --- Handlers ---

// listDecisionsHandler handles GET /api/decisions. Default view is the open
// queue (pending only, priority order); status=all includes every tracked
// decision and a specific status filters to it. agentId narrows either view.
func (s *Server) listDecisionsHandler(c *echo.Context) error {
	if s.queue == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "decision queue not configured")
	}
	agentID := c.QueryParam("agentId")
	status := c.QueryParam("status")

	switch status {
	case "":
		return c.JSON(http.StatusOK, s.queue.ListPending(agentID))
	case "all":
		return c.JSON(http.StatusOK, filterDecisions(s.queue.ListAll(), agentID, ""))
	case decision.StatusPending, decision.StatusSuspended, decision.StatusTriage,
		decision.StatusResolved, decision.StatusTimedOut:
		return c.JSON(http.StatusOK, filterDecisions(s.queue.ListAll(), agentID, status))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+status)
	}
}

// resolveDecisionHandler handles POST /api/decisions/:id/resolve, the human
// half of the oversight loop. The resolver applies trust deltas, audits,
// forwards to the agent, and broadcasts decision_resolved.
func (s *Server) resolveDecisionHandler(c *echo.Context) error {
	decisionID := c.Param("id")
	if decisionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "decision id is required")
	}
	if s.resolver == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "resolver not configured")
	}

	var req struct {
		Resolution models.Resolution `json:"resolution"`
		AgentID    string            `json:"agentId"`
	}
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}
	if req.Resolution.Type == "" {
		return validationFailed("resolution.type is required")
	}
	if req.AgentID != "" {
		if item, ok := s.queue.Get(decisionID); ok && item.Event.AgentID != req.AgentID {
			return validationFailed("agentId does not match the decision's agent")
		}
	}

	item, err := s.resolver.Resolve(c.Request().Context(), decisionID, req.Resolution, extractAuthor(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// filterDecisions narrows a full queue listing by agent and status.
func filterDecisions(items []decision.Item, agentID, status string) []decision.Item {
	out := make([]decision.Item, 0, len(items))
	for _, it := range items {
		if agentID != "" && it.Event.AgentID != agentID {
			continue
		}
		if status != "" && it.Status != status {
			continue
		}
		out = append(out, it)
	}
	return out
}
