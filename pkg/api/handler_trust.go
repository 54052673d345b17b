package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/trust"
)

// --- Response types ---

// TrustProfilesResponse is returned by GET /api/trust/profiles.
type TrustProfilesResponse struct {
	Profiles []string     `json:"profiles"`
	Config   trust.Config `json:"config"`
}

// TrustConfigUpdateFrame is the trust_config_update WebSocket frame pushed
// after a profile switch.
type TrustConfigUpdateFrame struct {
	Profile string       `json:"profile"`
	Config  trust.Config `json:"config"`
}

// --- Handlers ---

// getTrustHandler handles GET /api/trust/:agentId. Scores come from the
// engine, the runtime truth; agents the engine has never seen report the
// configured initial score.
func (s *Server) getTrustHandler(c *echo.Context) error {
	agentID := c.Param("agentId")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}
	if s.trust == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "trust engine not configured")
	}
	return c.JSON(http.StatusOK, &models.TrustProfile{
		AgentID: agentID,
		Score:   s.trust.GetScore(agentID),
		Domains: s.trust.GetDomainScores(agentID),
	})
}

// trustProfilesHandler handles GET /api/trust/profiles: the selectable
// calibration profiles plus the configuration currently in force.
func (s *Server) trustProfilesHandler(c *echo.Context) error {
	if s.trust == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "trust engine not configured")
	}
	return c.JSON(http.StatusOK, &TrustProfilesResponse{
		Profiles: trust.ProfileNames(),
		Config:   s.trust.Config(),
	})
}

// applyTrustProfileHandler handles POST /api/trust/profile/:name. Switching
// profiles broadcasts trust_config_update so dashboards re-render thresholds.
func (s *Server) applyTrustProfileHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "profile name is required")
	}
	if s.trust == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "trust engine not configured")
	}

	cfg, err := s.trust.ApplyProfile(name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound,
			"unknown profile: must be "+strings.Join(trust.ProfileNames(), ", "))
	}
	if s.connManager != nil {
		s.connManager.Broadcast(models.WSTypeTrustConfigUpdate, &TrustConfigUpdateFrame{
			Profile: name,
			Config:  cfg,
		})
	}
	return c.JSON(http.StatusOK, &TrustProfilesResponse{
		Profiles: trust.ProfileNames(),
		Config:   cfg,
	})
}
