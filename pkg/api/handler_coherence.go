package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/ent"
)

// --- Response types ---

// CoherenceIssueView is the wire shape of one cross-workstream issue.
type CoherenceIssueView struct {
	IssueID             string     `json:"issueId"`
	Kind                string     `json:"kind"`
	Summary             string     `json:"summary"`
	Severity            string     `json:"severity"`
	Status              string     `json:"status"`
	AffectedWorkstreams []string   `json:"affectedWorkstreams,omitempty"`
	AffectedArtifactIDs []string   `json:"affectedArtifactIds,omitempty"`
	DetectedBy          string     `json:"detectedBy,omitempty"`
	DetectedAtTick      int64      `json:"detectedAtTick"`
	CreatedAt           time.Time  `json:"createdAt"`
	ResolvedAt          *time.Time `json:"resolvedAt,omitempty"`
	Resolution          string     `json:"resolution,omitempty"`
}

func newCoherenceIssueView(issue *ent.CoherenceIssue) CoherenceIssueView {
	view := CoherenceIssueView{
		IssueID:             issue.ID,
		Kind:                string(issue.Kind),
		Summary:             issue.Summary,
		Severity:            string(issue.Severity),
		Status:              string(issue.Status),
		AffectedWorkstreams: issue.AffectedWorkstreams,
		AffectedArtifactIDs: issue.AffectedArtifacts,
		DetectedAtTick:      issue.DetectedAtTick,
		CreatedAt:           issue.CreatedAt,
		ResolvedAt:          issue.ResolvedAt,
	}
	if issue.DetectedBy != nil {
		view.DetectedBy = *issue.DetectedBy
	}
	if issue.Resolution != nil {
		view.Resolution = *issue.Resolution
	}
	return view
}

// --- Handlers ---

// listCoherenceHandler handles GET /api/coherence. Defaults to open issues;
// status=resolved or status=all widens the view.
func (s *Server) listCoherenceHandler(c *echo.Context) error {
	if s.coherence == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "coherence not configured")
	}

	status := c.QueryParam("status")
	switch status {
	case "":
		status = "open"
	case "open", "resolved":
	case "all":
		status = ""
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status: must be open, resolved, or all")
	}

	issues, err := s.coherence.List(c.Request().Context(), status)
	if err != nil {
		return mapServiceError(err)
	}
	views := make([]CoherenceIssueView, 0, len(issues))
	for _, issue := range issues {
		views = append(views, newCoherenceIssueView(issue))
	}
	return c.JSON(http.StatusOK, views)
}

// resolveCoherenceHandler handles POST /api/coherence/:id/resolve. The
// creators of the affected artifacts earn the resolution trust credit.
func (s *Server) resolveCoherenceHandler(c *echo.Context) error {
	issueID := c.Param("id")
	if issueID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "issue id is required")
	}
	if s.coherence == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "coherence not configured")
	}

	var req struct {
		Resolution string `json:"resolution"`
	}
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}
	if req.Resolution == "" {
		return validationFailed("resolution is required")
	}

	issue, err := s.coherence.Resolve(c.Request().Context(), issueID, req.Resolution, extractAuthor(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newCoherenceIssueView(issue))
}
