package api

import (
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/brake"
	"github.com/steward-io/steward/pkg/models"
)

// The bridge is the HTTP surface sandboxed agents call home on: event
// ingestion for adapters without a WebSocket server, pull-based context for
// harnesses that cannot receive pushes, and the brake poll.

// --- Response types ---

// BridgeIngestResponse is returned by POST /api/bridge/events.
type BridgeIngestResponse struct {
	Stored        bool      `json:"stored"`
	SourceEventID string    `json:"sourceEventId"`
	IngestedAt    time.Time `json:"ingestedAt"`
}

// BridgeRegisterResponse is returned by POST /api/bridge/register.
type BridgeRegisterResponse struct {
	Registered bool   `json:"registered"`
	AgentID    string `json:"agentId"`
	Tick       int64  `json:"tick"`
}

// BridgeBrakeResponse is returned by GET /api/bridge/brake/:agentId.
type BridgeBrakeResponse struct {
	Engaged bool         `json:"engaged"`
	Brake   *brake.Brake `json:"brake,omitempty"`
}

// --- Handlers ---

// bridgeAgentID resolves the calling agent: a verified agent token always
// wins; with auth disabled the fallback (body or path value) is trusted.
func bridgeAgentID(c *echo.Context, fallback string) string {
	if claims, ok := claimsFrom(c); ok && claims.Subject != "" {
		return claims.Subject
	}
	return fallback
}

// bridgeEventsHandler handles POST /api/bridge/events: adapter event
// ingestion over plain HTTP. The agent id comes from the verified token, so
// a sandbox can never publish under another agent's identity.
func (s *Server) bridgeEventsHandler(c *echo.Context) error {
	if s.ingest == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "ingest not configured")
	}

	var ev models.AdapterEvent
	if err := c.Bind(&ev); err != nil {
		return validationFailed(err.Error())
	}
	agentID := bridgeAgentID(c, c.QueryParam("agentId"))
	if agentID == "" {
		return validationFailed("agentId is required")
	}

	env, stored, err := s.ingest.IngestAdapter(c.Request().Context(), agentID, &ev)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &BridgeIngestResponse{
		Stored:        stored,
		SourceEventID: env.SourceEventID,
		IngestedAt:    env.IngestedAt,
	})
}

// bridgeRegisterHandler handles POST /api/bridge/register: an adapter
// announcing it is up and attached. Records the session id and flips the
// handle to running.
func (s *Server) bridgeRegisterHandler(c *echo.Context) error {
	var req struct {
		AgentID   string `json:"agentId"`
		SessionID string `json:"sessionId"`
	}
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}
	agentID := bridgeAgentID(c, req.AgentID)
	if agentID == "" {
		return validationFailed("agentId is required")
	}

	if s.gateway != nil {
		if ok := s.gateway.SetStatus(agentID, models.AgentRunning); !ok {
			slog.Warn("Bridge register for unknown handle", "agent_id", agentID)
		}
	}
	if s.store != nil && req.SessionID != "" {
		if err := s.store.SetAgentSession(c.Request().Context(), agentID, req.SessionID); err != nil {
			slog.Warn("Failed to record bridge session", "agent_id", agentID, "error", err)
		}
	}

	var tick int64
	if s.ticks != nil {
		tick = s.ticks.Current()
	}
	return c.JSON(http.StatusOK, &BridgeRegisterResponse{
		Registered: true,
		AgentID:    agentID,
		Tick:       tick,
	})
}

// bridgeContextHandler handles GET /api/bridge/context/:agentId: pull-based
// context for harnesses that cannot receive injection pushes. The payload
// matches what the scheduler would push, so both transports feed the agent
// the same shape.
func (s *Server) bridgeContextHandler(c *echo.Context) error {
	agentID := c.Param("agentId")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}
	if claims, ok := claimsFrom(c); ok && claims.Subject != "" && claims.Subject != agentID {
		return echo.NewHTTPError(http.StatusForbidden, "token does not match agent")
	}
	if s.snaps == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "snapshots not configured")
	}

	snap, err := s.snaps.Snapshot(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	content, err := json.Marshal(snap)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &models.ContextInjection{
		Content:         string(content),
		Format:          "json",
		SnapshotVersion: snap.Version,
		EstimatedTokens: snap.EstimatedTokens,
		Priority:        models.PriorityRecommended,
		Reason:          "bridge_poll",
	})
}

// bridgeBrakeHandler handles GET /api/bridge/brake/:agentId: the poll an
// adapter makes between tool calls to learn whether it should stop.
func (s *Server) bridgeBrakeHandler(c *echo.Context) error {
	agentID := c.Param("agentId")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}
	if claims, ok := claimsFrom(c); ok && claims.Subject != "" && claims.Subject != agentID {
		return echo.NewHTTPError(http.StatusForbidden, "token does not match agent")
	}
	if s.brakes == nil {
		return c.JSON(http.StatusOK, &BridgeBrakeResponse{Engaged: false})
	}

	b, engaged := s.brakes.ForAgent(agentID)
	return c.JSON(http.StatusOK, &BridgeBrakeResponse{Engaged: engaged, Brake: b})
}
