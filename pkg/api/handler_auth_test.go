package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/auth"
)

// doAuthJSON is doJSON with a bearer token attached.
func (env *serverEnv) doAuthJSON(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload := &bytes.Buffer{}
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.server.Echo().ServeHTTP(rec, req)
	return rec
}

func newTestAuthManager(t *testing.T) *auth.Manager {
	t.Helper()

	hash, err := auth.HashPassword("orbit-pass")
	require.NoError(t, err)

	mgr, err := auth.NewManager(auth.Config{
		Secret: "test-signing-secret",
		Users: []auth.User{
			{Username: "steward", PasswordHash: hash, Role: "admin"},
		},
	})
	require.NoError(t, err)
	return mgr
}

func TestAuthDisabledSurface(t *testing.T) {
	env := newTestServer(t)

	t.Run("login unavailable", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/auth/login", map[string]any{
			"username": "steward", "password": "orbit-pass",
		})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("me falls back to anonymous admin", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/auth/me", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var claims auth.Claims
		decodeJSON(t, rec, &claims)
		assert.Equal(t, "anonymous", claims.Subject)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("protected routes are open", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/agents", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("renew still needs a token to renew", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/token/renew", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLoginRefreshFlow(t *testing.T) {
	mgr := newTestAuthManager(t)
	env := newTestServerWithAuth(t, mgr)

	t.Run("routes closed without a token", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodGet, "/api/agents", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing bearer token")
	})

	t.Run("bad credentials", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/auth/login", map[string]any{
			"username": "steward", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid credentials")
	})

	rec := env.doJSON(t, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "steward", "password": "orbit-pass",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var pair auth.TokenPair
	decodeJSON(t, rec, &pair)
	assert.Equal(t, "steward", pair.Username)
	assert.Equal(t, "admin", pair.Role)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	t.Run("access token opens the dashboard surface", func(t *testing.T) {
		rec := env.doAuthJSON(t, http.MethodGet, "/api/agents", pair.AccessToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("me reflects the verified claims", func(t *testing.T) {
		rec := env.doAuthJSON(t, http.MethodGet, "/api/auth/me", pair.AccessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var claims auth.Claims
		decodeJSON(t, rec, &claims)
		assert.Equal(t, "steward", claims.Subject)
		assert.Equal(t, auth.KindUser, claims.Kind)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("refresh issues a new pair", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/auth/refresh", map[string]any{
			"refreshToken": pair.RefreshToken,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var renewed auth.TokenPair
		decodeJSON(t, rec, &renewed)
		assert.NotEmpty(t, renewed.AccessToken)
		assert.Equal(t, "steward", renewed.Username)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		rec := env.doJSON(t, http.MethodPost, "/api/auth/refresh", map[string]any{
			"refreshToken": pair.AccessToken,
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		rec := env.doAuthJSON(t, http.MethodGet, "/api/agents", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAgentTokenSurface(t *testing.T) {
	mgr := newTestAuthManager(t)
	env := newTestServerWithAuth(t, mgr)

	pair, err := mgr.Login("steward", "orbit-pass")
	require.NoError(t, err)

	rec := env.doAuthJSON(t, http.MethodPost, "/api/agents/spawn", pair.AccessToken, map[string]any{
		"brief": map[string]any{"role": "implementer", "workstream": "ws-core"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var spawned SpawnResponse
	decodeJSON(t, rec, &spawned)
	agentID := spawned.Agent.AgentID

	agentToken, _, err := mgr.IssueAgentToken(agentID)
	require.NoError(t, err)

	t.Run("user token rejected on the bridge", func(t *testing.T) {
		rec := env.doAuthJSON(t, http.MethodPost, "/api/bridge/register", pair.AccessToken, map[string]any{
			"agentId": agentID,
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token subject beats a forged agent id", func(t *testing.T) {
		rec := env.doAuthJSON(t, http.MethodPost, "/api/bridge/events?agentId=someone-else", agentToken, map[string]any{
			"sourceEventId": "ev-forged",
			"runId":         "run-1",
			"event": map[string]any{
				"type":   "status",
				"status": map[string]any{"message": "hi", "state": "working"},
			},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = env.doAuthJSON(t, http.MethodGet, "/api/events?agentId="+agentID, pair.AccessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var events []EventView
		decodeJSON(t, rec, &events)
		require.Len(t, events, 1)
		assert.Equal(t, agentID, events[0].AgentID)
	})

	t.Run("context poll scoped to the token subject", func(t *testing.T) {
		rec := env.doAuthJSON(t, http.MethodGet, "/api/bridge/context/other-agent", agentToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = env.doAuthJSON(t, http.MethodGet, "/api/bridge/context/"+agentID, agentToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("renew rotates the backend token", func(t *testing.T) {
		rec := env.doAuthJSON(t, http.MethodPost, "/api/token/renew", agentToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp AgentTokenResponse
		decodeJSON(t, rec, &resp)
		require.NotEmpty(t, resp.Token)
		assert.Greater(t, resp.ExpiresAt, time.Now().Unix())

		claims, err := mgr.VerifyAgent(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, agentID, claims.Subject)
	})
}
