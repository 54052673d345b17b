package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/ent"
)

// --- Response types ---

// QuarantinedEventView is one rejected-event row. Raw is the original
// payload verbatim when it was valid JSON, else a quoted string.
type QuarantinedEventView struct {
	ID            int             `json:"id"`
	Raw           json.RawMessage `json:"raw"`
	Reason        string          `json:"reason"`
	Source        string          `json:"source,omitempty"`
	QuarantinedAt time.Time       `json:"quarantinedAt"`
}

func newQuarantinedEventView(row *ent.QuarantinedEvent) QuarantinedEventView {
	raw := json.RawMessage(row.Raw)
	if !json.Valid(raw) {
		quoted, _ := json.Marshal(row.Raw)
		raw = quoted
	}
	return QuarantinedEventView{
		ID:            row.ID,
		Raw:           raw,
		Reason:        row.Reason,
		Source:        row.Source,
		QuarantinedAt: row.QuarantinedAt,
	}
}

// --- Handlers ---

// listQuarantineHandler handles GET /api/quarantine, newest first. An
// optional limit query parameter bounds the page.
func (s *Server) listQuarantineHandler(c *echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	rows, err := s.store.ListQuarantined(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(err)
	}
	views := make([]QuarantinedEventView, 0, len(rows))
	for _, row := range rows {
		views = append(views, newQuarantinedEventView(row))
	}
	return c.JSON(http.StatusOK, views)
}

// clearQuarantineHandler handles DELETE /api/quarantine.
func (s *Server) clearQuarantineHandler(c *echo.Context) error {
	removed, err := s.store.ClearQuarantined(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"removed": removed})
}
