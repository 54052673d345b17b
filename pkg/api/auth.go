package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-io/steward/pkg/auth"
)

// claimsContextKey is the echo context key holding verified token claims.
const claimsContextKey = "steward.claims"

// bearerToken pulls the token out of the Authorization header. WebSocket
// upgrades cannot set headers from browsers, so a token query parameter is
// accepted there as fallback.
func bearerToken(c *echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.QueryParam("token")
}

// claimsFrom returns the claims stored by an auth middleware, if any.
func claimsFrom(c *echo.Context) (auth.Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(auth.Claims)
	return claims, ok
}

// requireUser returns middleware admitting only verified user tokens. A nil
// manager disables authentication entirely (no secret configured).
func requireUser(mgr *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if mgr == nil {
				return next(c)
			}
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			claims, err := mgr.VerifyUser(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// requireAgent returns middleware admitting only verified agent tokens,
// used on the bridge surface the sandboxes call back into.
func requireAgent(mgr *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if mgr == nil {
				return next(c)
			}
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			claims, err := mgr.VerifyAgent(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// extractAuthor resolves who performed a mutating request, for audit trails
// and resolution attribution. Priority: verified token subject >
// X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy) > "api-client".
func extractAuthor(c *echo.Context) string {
	if claims, ok := claimsFrom(c); ok && claims.Subject != "" {
		return claims.Subject
	}
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.Request().Header.Get("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}
