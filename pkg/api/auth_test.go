package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/auth"
)

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		subject  string
		expected string
	}{
		{
			name:     "no headers returns default",
			headers:  map[string]string{},
			expected: "api-client",
		},
		{
			name: "X-Forwarded-User takes priority",
			headers: map[string]string{
				"X-Forwarded-User":  "alice",
				"X-Forwarded-Email": "alice@example.com",
			},
			expected: "alice",
		},
		{
			name: "X-Forwarded-Email used when no user",
			headers: map[string]string{
				"X-Forwarded-Email": "bob@example.com",
			},
			expected: "bob@example.com",
		},
		{
			name: "X-Remote-User used for proxied API clients",
			headers: map[string]string{
				"X-Remote-User": "system:serviceaccount:my-namespace:my-api-client",
			},
			expected: "system:serviceaccount:my-namespace:my-api-client",
		},
		{
			name:    "verified token subject beats headers",
			subject: "carol",
			headers: map[string]string{
				"X-Forwarded-User": "alice",
			},
			expected: "carol",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.subject != "" {
				c.Set(claimsContextKey, auth.Claims{Subject: tt.subject, Kind: "user"})
			}

			result := extractAuthor(c)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRequireUser(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	mgr, err := auth.NewManager(auth.Config{
		Secret:         "test-secret-test-secret-test-secret!",
		AccessTokenTTL: time.Hour,
		Users: []auth.User{
			{Username: "admin", PasswordHash: hash, Role: "admin"},
		},
	})
	require.NoError(t, err)
	pair, err := mgr.Login("admin", "s3cret")
	require.NoError(t, err)

	e := echo.New()
	handler := func(c *echo.Context) error { return c.NoContent(http.StatusOK) }
	protected := requireUser(mgr)(handler)

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		err := protected(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		c := e.NewContext(req, httptest.NewRecorder())
		err := protected(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("valid token admits and stores claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		c := e.NewContext(req, httptest.NewRecorder())
		require.NoError(t, protected(c))

		claims, ok := claimsFrom(c)
		require.True(t, ok)
		assert.Equal(t, "admin", claims.Subject)
	})

	t.Run("agent token rejected on user surface", func(t *testing.T) {
		agentToken, _, err := mgr.IssueAgentToken("a1")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+agentToken)
		c := e.NewContext(req, httptest.NewRecorder())
		err = protected(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("nil manager disables auth", func(t *testing.T) {
		open := requireUser(nil)(handler)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		require.NoError(t, open(c))
	})
}
