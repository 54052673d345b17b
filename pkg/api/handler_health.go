package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/version"
)

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Tick    int64  `json:"tick"`
	Version string `json:"version,omitempty"`
}

// healthHandler handles GET /api/health. Unauthenticated; reports the
// current tick so probes double as clock checks. A reachable server is a
// healthy server: the store is embedded and has no separate liveness.
func (s *Server) healthHandler(c *echo.Context) error {
	var tick int64
	if s.ticks != nil {
		tick = s.ticks.Current()
	}
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:  "ok",
		Tick:    tick,
		Version: version.GitCommit,
	})
}

// metricsHandler handles GET /metrics by delegating to the Prometheus
// registry handler.
func (s *Server) metricsHandler(c *echo.Context) error {
	if s.metrics == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "metrics not configured")
	}
	s.metrics.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}
