package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/auth"
)

// --- Response types ---

// AgentTokenResponse is returned by POST /api/token/renew.
type AgentTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// --- Handlers ---

// loginHandler handles POST /api/auth/login.
func (s *Server) loginHandler(c *echo.Context) error {
	if s.authMgr == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "authentication not configured")
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}
	if req.Username == "" || req.Password == "" {
		return validationFailed("username and password are required")
	}

	pair, err := s.authMgr.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, pair)
}

// refreshHandler handles POST /api/auth/refresh: trades a refresh token for
// a fresh pair.
func (s *Server) refreshHandler(c *echo.Context) error {
	if s.authMgr == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "authentication not configured")
	}

	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.Bind(&req); err != nil {
		return validationFailed(err.Error())
	}
	if req.RefreshToken == "" {
		return validationFailed("refreshToken is required")
	}

	pair, err := s.authMgr.Refresh(req.RefreshToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return c.JSON(http.StatusOK, pair)
}

// meHandler handles GET /api/auth/me: the claims of the presented token, so
// the dashboard can render who is signed in.
func (s *Server) meHandler(c *echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		// Auth disabled: report an anonymous operator so the dashboard
		// still has something to render.
		claims = auth.Claims{Subject: "anonymous", Kind: auth.KindUser, Role: "admin"}
	}
	return c.JSON(http.StatusOK, claims)
}

// renewTokenHandler handles POST /api/token/renew: a long-running agent
// trading its still-valid token for a fresh one before expiry.
func (s *Server) renewTokenHandler(c *echo.Context) error {
	if s.authMgr == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "authentication not configured")
	}

	token := bearerToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	renewed, expiresAt, err := s.authMgr.RenewAgentToken(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return c.JSON(http.StatusOK, &AgentTokenResponse{Token: renewed, ExpiresAt: expiresAt})
}
