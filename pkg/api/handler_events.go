package api

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
)

// --- Response types ---

// EventView is one history row: the stored envelope fields re-assembled.
type EventView struct {
	SourceEventID    string            `json:"sourceEventId"`
	SourceSequence   int64             `json:"sourceSequence"`
	SourceOccurredAt time.Time         `json:"sourceOccurredAt"`
	RunID            string            `json:"runId"`
	AgentID          string            `json:"agentId"`
	IngestedAt       time.Time         `json:"ingestedAt"`
	Event            models.AgentEvent `json:"event"`
}

// --- Handlers ---

// listEventsHandler handles GET /api/events. Filters: agentId, runId, types
// (comma-separated), since (RFC3339), limit (default 100, capped at 1000).
func (s *Server) listEventsHandler(c *echo.Context) error {
	filter := store.EventFilter{
		AgentID: c.QueryParam("agentId"),
		RunID:   c.QueryParam("runId"),
	}

	if v := c.QueryParam("types"); v != "" {
		for _, t := range strings.Split(v, ",") {
			t = strings.TrimSpace(t)
			if !slices.Contains(models.KnownEventTypes, t) {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid event type: "+t)
			}
			filter.Types = append(filter.Types, t)
		}
	}
	if v := c.QueryParam("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since: must be RFC3339")
		}
		filter.Since = t
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
			filter.Limit = n
		}
	}

	rows, err := s.store.GetEvents(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]EventView, 0, len(rows))
	for _, row := range rows {
		views = append(views, EventView{
			SourceEventID:    row.SourceEventID,
			SourceSequence:   row.SourceSequence,
			SourceOccurredAt: row.SourceOccurredAt,
			RunID:            row.RunID,
			AgentID:          row.AgentID,
			IngestedAt:       row.IngestedAt,
			Event:            row.Payload,
		})
	}
	return c.JSON(http.StatusOK, views)
}
