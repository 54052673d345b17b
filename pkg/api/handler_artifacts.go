package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/ent"
)

// --- Response types ---

// ArtifactView is the wire shape of one artifact row.
type ArtifactView struct {
	ArtifactID        string    `json:"artifactId"`
	Name              string    `json:"name"`
	Kind              string    `json:"kind"`
	Workstream        string    `json:"workstream"`
	Status            string    `json:"status"`
	QualityScore      float64   `json:"qualityScore,omitempty"`
	Summary           string    `json:"summary,omitempty"`
	Version           int       `json:"version"`
	CreatedBy         string    `json:"createdBy"`
	SourceArtifactIDs []string  `json:"sourceArtifactIds,omitempty"`
	URI               string    `json:"uri,omitempty"`
	MimeType          string    `json:"mimeType,omitempty"`
	SizeBytes         int64     `json:"sizeBytes,omitempty"`
	ContentHash       string    `json:"contentHash,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// UploadArtifactResponse is returned by POST /api/artifacts.
type UploadArtifactResponse struct {
	URI    string `json:"uri"`
	Stored bool   `json:"stored"`
}

func newArtifactView(a *ent.Artifact) ArtifactView {
	view := ArtifactView{
		ArtifactID:        a.ID,
		Name:              a.Name,
		Kind:              string(a.Kind),
		Workstream:        a.Workstream,
		Status:            string(a.Status),
		QualityScore:      a.QualityScore,
		Version:           a.Version,
		CreatedBy:         a.CreatedBy,
		SourceArtifactIDs: a.Sources,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if a.Summary != nil {
		view.Summary = *a.Summary
	}
	if a.URI != nil {
		view.URI = *a.URI
	}
	if a.MimeType != nil {
		view.MimeType = *a.MimeType
	}
	if a.SizeBytes != nil {
		view.SizeBytes = *a.SizeBytes
	}
	if a.ContentHash != nil {
		view.ContentHash = *a.ContentHash
	}
	return view
}

// --- Handlers ---

// listArtifactsHandler handles GET /api/artifacts. An optional workstream
// query parameter narrows the index.
func (s *Server) listArtifactsHandler(c *echo.Context) error {
	rows, err := s.store.ListArtifacts(c.Request().Context(), c.QueryParam("workstream"))
	if err != nil {
		return mapServiceError(err)
	}
	views := make([]ArtifactView, 0, len(rows))
	for _, a := range rows {
		views = append(views, newArtifactView(a))
	}
	return c.JSON(http.StatusOK, views)
}

// getArtifactHandler handles GET /api/artifacts/:id.
func (s *Server) getArtifactHandler(c *echo.Context) error {
	artifactID := c.Param("id")
	if artifactID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "artifact id is required")
	}

	a, err := s.store.GetArtifact(c.Request().Context(), artifactID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newArtifactView(a))
}

// getArtifactContentHandler handles GET /api/artifacts/:id/content, serving
// the stored bytes with their recorded MIME type. An agentId query parameter
// disambiguates when several agents uploaded under the same artifact id.
func (s *Server) getArtifactContentHandler(c *echo.Context) error {
	artifactID := c.Param("id")
	if artifactID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "artifact id is required")
	}

	row, err := s.store.GetArtifactContent(c.Request().Context(), c.QueryParam("agentId"), artifactID)
	if err != nil {
		return mapServiceError(err)
	}
	mime := row.MimeType
	if mime == "" {
		mime = "application/octet-stream"
	}
	c.Response().Header().Set("Content-Length", strconv.Itoa(len(row.Content)))
	return c.Blob(http.StatusOK, mime, row.Content)
}

// uploadArtifactHandler handles POST /api/artifacts: the sandbox-side
// content upload named in AGENT_BOOTSTRAP. Content travels base64-encoded in
// JSON; a verified agent token pins the uploader identity. The returned URI
// is the artifact:// locator referenced from artifact events.
func (s *Server) uploadArtifactHandler(c *echo.Context) error {
	var req struct {
		AgentID    string `json:"agentId"`
		ArtifactID string `json:"artifactId"`
		Content    []byte `json:"content"`
		MimeType   string `json:"mimeType"`
	}
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}
	if claims, ok := claimsFrom(c); ok && claims.Subject != "" {
		req.AgentID = claims.Subject
	}
	if len(req.Content) == 0 {
		return validationFailed("content is required")
	}

	result, err := s.store.StoreArtifactContent(c.Request().Context(), req.AgentID, req.ArtifactID, req.Content, req.MimeType)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &UploadArtifactResponse{
		URI:    result.BackendURI,
		Stored: result.Stored,
	})
}
