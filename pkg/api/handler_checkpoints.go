package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/pkg/models"
)

// --- Response types ---

// CheckpointView is one serialized-state row. The checkpoint payload itself
// is provider-specific and opaque to the dashboard; the view exposes the
// metadata needed to pick a resume point.
type CheckpointView struct {
	CheckpointID string    `json:"checkpointId"`
	AgentID      string    `json:"agentId"`
	SerializedBy string    `json:"serializedBy"`
	DecisionID   string    `json:"decisionId,omitempty"`
	LastSequence int64     `json:"lastSequence"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newCheckpointView(cp *ent.Checkpoint) *CheckpointView {
	if cp == nil {
		return nil
	}
	view := &CheckpointView{
		CheckpointID: cp.ID,
		AgentID:      cp.AgentID,
		SerializedBy: string(cp.SerializedBy),
		LastSequence: cp.State.LastSequence,
		CreatedAt:    cp.CreatedAt,
	}
	if cp.DecisionID != nil {
		view.DecisionID = *cp.DecisionID
	}
	return view
}

// --- Handlers ---

// captureCheckpointHandler handles POST /api/agents/:id/checkpoint: an
// on-demand serialization of a live agent, without pausing it.
func (s *Server) captureCheckpointHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}
	if s.checkpoints == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "checkpoints not configured")
	}

	var req struct {
		DecisionID string `json:"decisionId"`
	}
	// Body is optional; an empty body captures an undirected checkpoint.
	_ = c.Bind(&req)

	cp, err := s.checkpoints.Capture(c.Request().Context(), agentID, req.DecisionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newCheckpointView(cp))
}

// listCheckpointsHandler handles GET /api/agents/:id/checkpoints, newest
// first.
func (s *Server) listCheckpointsHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}
	if s.checkpoints == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "checkpoints not configured")
	}

	rows, err := s.checkpoints.List(c.Request().Context(), agentID)
	if err != nil {
		return mapServiceError(err)
	}
	views := make([]*CheckpointView, 0, len(rows))
	for _, cp := range rows {
		views = append(views, newCheckpointView(cp))
	}
	return c.JSON(http.StatusOK, views)
}

// latestCheckpointHandler handles GET /api/agents/:id/checkpoints/latest.
// Includes the full serialized state: this is the resume preview.
func (s *Server) latestCheckpointHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}
	if s.checkpoints == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "checkpoints not configured")
	}

	cp, err := s.checkpoints.Latest(c.Request().Context(), agentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &struct {
		*CheckpointView
		State models.SerializedAgentState `json:"state"`
	}{
		CheckpointView: newCheckpointView(cp),
		State:          cp.State,
	})
}
