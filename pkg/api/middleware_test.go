package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	want := map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
	}
	for header, value := range want {
		assert.Equal(t, value, rec.Header().Get(header), header)
	}
}

func TestRequestLogger(t *testing.T) {
	e := echo.New()
	e.Use(requestLogger())
	e.GET("/ok", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/boom", func(c *echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "boom")
	})
	e.GET("/api/ws", func(c *echo.Context) error {
		// Stands in for the upgrade handler; the logger must not touch it.
		return c.String(http.StatusOK, "upgraded")
	})

	t.Run("passes responses through untouched", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("propagates handler errors", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("skips the websocket path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ws", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "upgraded", rec.Body.String())
	})
}
