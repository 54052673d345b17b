package api

import (
	"net/http"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/pkg/models"
)

// --- Response types ---

// AgentView is one roster row: the persisted record overlaid with the live
// sandbox status when the agent is attached to this process.
type AgentView struct {
	AgentID    string    `json:"agentId"`
	Role       string    `json:"role"`
	Workstream string    `json:"workstream"`
	Status     string    `json:"status"`
	PluginName string    `json:"pluginName"`
	SessionID  string    `json:"sessionId,omitempty"`
	TrustScore int       `json:"trustScore"`
	Live       bool      `json:"live"`
	SpawnedAt  time.Time `json:"spawnedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AgentDetail extends AgentView with the full brief and oversight counters.
type AgentDetail struct {
	AgentView
	Brief            models.AgentBrief `json:"brief"`
	DomainTrust      map[string]int    `json:"domainTrust,omitempty"`
	CheckpointCount  int               `json:"checkpointCount"`
	PendingDecisions int               `json:"pendingDecisions"`
}

// SpawnResponse is returned by POST /api/agents/spawn.
type SpawnResponse struct {
	Agent *models.AgentHandle `json:"agent"`
}

// KillResponse is returned by POST /api/agents/:id/kill.
type KillResponse struct {
	AgentID            string `json:"agentId"`
	CleanShutdown      bool   `json:"cleanShutdown"`
	ArtifactsExtracted int    `json:"artifactsExtracted"`
	CheckpointStored   bool   `json:"checkpointStored"`
}

// PatchBriefResponse is returned by PATCH /api/agents/:id/brief.
type PatchBriefResponse struct {
	Brief    *models.AgentBrief `json:"brief"`
	Injected bool               `json:"injected"`
}

// --- Handlers ---

// listAgentsHandler handles GET /api/agents. An optional status query
// parameter filters by persisted status (comma-separated).
func (s *Server) listAgentsHandler(c *echo.Context) error {
	var statuses []string
	if v := c.QueryParam("status"); v != "" {
		for _, st := range strings.Split(v, ",") {
			if !models.KnownAgentStatus(st) {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+st)
			}
			statuses = append(statuses, st)
		}
	}

	records, err := s.store.ListAgents(c.Request().Context(), statuses...)
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]AgentView, 0, len(records))
	for _, rec := range records {
		views = append(views, s.agentView(rec))
	}
	return c.JSON(http.StatusOK, views)
}

// getAgentHandler handles GET /api/agents/:id.
func (s *Server) getAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	rec, err := s.store.GetAgent(c.Request().Context(), agentID)
	if err != nil {
		return mapServiceError(err)
	}

	detail := AgentDetail{
		AgentView: s.agentView(rec),
		Brief:     rec.Brief,
	}
	if s.trust != nil {
		detail.DomainTrust = s.trust.GetDomainScores(agentID)
	}
	if s.checkpoints != nil {
		if n, cerr := s.checkpoints.Count(c.Request().Context(), agentID); cerr == nil {
			detail.CheckpointCount = n
		}
	}
	if s.queue != nil {
		detail.PendingDecisions = len(s.queue.ListPending(agentID))
	}
	return c.JSON(http.StatusOK, &detail)
}

// spawnAgentHandler handles POST /api/agents/spawn.
//
// Steps:
//  1. Bind and validate the brief.
//  2. Spawn through the agent service (sandbox, registry, trust, scheduler).
//  3. Return the live handle.
func (s *Server) spawnAgentHandler(c *echo.Context) error {
	var req struct {
		Brief models.AgentBrief `json:"brief"`
	}
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}

	handle, err := s.agents.Spawn(c.Request().Context(), req.Brief)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &SpawnResponse{Agent: handle})
}

// killAgentHandler handles POST /api/agents/:id/kill.
func (s *Server) killAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	result, err := s.agents.Kill(c.Request().Context(), agentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &KillResponse{
		AgentID:            agentID,
		CleanShutdown:      result.CleanShutdown,
		ArtifactsExtracted: result.ArtifactsExtracted,
		CheckpointStored:   result.State != nil,
	})
}

// pauseAgentHandler handles POST /api/agents/:id/pause.
func (s *Server) pauseAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	cp, err := s.agents.Pause(c.Request().Context(), agentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newCheckpointView(cp))
}

// resumeAgentHandler handles POST /api/agents/:id/resume. Fails with 404
// when the agent has no checkpoint to resume from.
func (s *Server) resumeAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	handle, err := s.agents.Resume(c.Request().Context(), agentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &SpawnResponse{Agent: handle})
}

// patchBriefHandler handles PATCH /api/agents/:id/brief. The body is a
// partial brief; the merged result is persisted and a required context
// injection accompanies the change.
func (s *Server) patchBriefHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return validationFailed(err.Error())
	}

	merged, injected, err := s.agents.PatchBrief(c.Request().Context(), agentID, patch)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &PatchBriefResponse{Brief: merged, Injected: injected})
}

// agentView builds a roster row, preferring the live handle status over the
// persisted one.
func (s *Server) agentView(rec *ent.AgentRecord) AgentView {
	view := AgentView{
		AgentID:    rec.ID,
		Role:       rec.Role,
		Workstream: rec.Workstream,
		Status:     string(rec.Status),
		PluginName: rec.PluginName,
		SpawnedAt:  rec.SpawnedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	if rec.SessionID != nil {
		view.SessionID = *rec.SessionID
	}
	if s.gateway != nil {
		if handle, ok := s.gateway.Handle(rec.ID); ok {
			view.Status = handle.Status
			view.Live = true
			if handle.SessionID != "" {
				view.SessionID = handle.SessionID
			}
		}
	}
	if s.trust != nil {
		view.TrustScore = s.trust.GetScore(rec.ID)
	}
	return view
}
