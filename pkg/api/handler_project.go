package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/pkg/services"
	"github.com/steward-io/steward/pkg/store"
)

// --- Response types ---

// projectResponse is the wire shape of the project row, shared with the
// state_sync frame.
type projectResponse struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func newProjectResponse(p *ent.Project) *projectResponse {
	if p == nil {
		return nil
	}
	return &projectResponse{
		Name:        p.Name,
		Description: p.Description,
		Config:      p.Config,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// --- Handlers ---

// seedProjectHandler handles POST /api/project/seed?mode=create|merge.
// Create refuses to overwrite an existing project; merge deep-merges config.
func (s *Server) seedProjectHandler(c *echo.Context) error {
	if s.projects == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "project service not configured")
	}

	var req store.ProjectInput
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}
	if req.Name == "" {
		return validationFailed("name is required")
	}

	project, err := s.projects.Seed(c.Request().Context(), c.QueryParam("mode"), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newProjectResponse(project))
}

// getProjectHandler handles GET /api/project.
func (s *Server) getProjectHandler(c *echo.Context) error {
	if s.projects == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "project service not configured")
	}
	project, err := s.projects.Get(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newProjectResponse(project))
}

// patchProjectHandler handles PATCH /api/project: a deep merge into the
// config map. Name and description change through seed, not here.
func (s *Server) patchProjectHandler(c *echo.Context) error {
	if s.projects == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "project service not configured")
	}

	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return validationFailed(err.Error())
	}

	project, err := s.projects.Patch(c.Request().Context(), patch)
	if err != nil {
		return mapServiceError(err)
	}
	s.BroadcastStateSync()
	return c.JSON(http.StatusOK, newProjectResponse(project))
}

// draftBriefHandler handles POST /api/project/draft-brief: assembles a
// spawn-ready brief from the project configuration without spawning. The
// caller reviews and edits, then submits it to /api/agents/spawn.
func (s *Server) draftBriefHandler(c *echo.Context) error {
	if s.projects == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "project service not configured")
	}

	var req services.DraftBriefInput
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}

	brief, err := s.projects.DraftBrief(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"brief": brief})
}
