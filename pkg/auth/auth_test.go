package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T, users ...User) *Manager {
	t.Helper()
	m, err := NewManager(Config{Secret: "test-secret", Users: users})
	require.NoError(t, err)
	return m
}

func testUser(t *testing.T, username, password, role string) User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return User{Username: username, PasswordHash: hash, Role: role}
}

func TestNewManager_Validation(t *testing.T) {
	_, err := NewManager(Config{})
	require.ErrorContains(t, err, "secret")

	_, err = NewManager(Config{Secret: "s", Users: []User{{Username: "a"}}})
	require.ErrorContains(t, err, "passwordHash")

	u := testUser(t, "a", "pw", "")
	_, err = NewManager(Config{Secret: "s", Users: []User{u, u}})
	require.ErrorContains(t, err, "duplicate")
}

func TestManager_LoginAndVerify(t *testing.T) {
	m := testManager(t, testUser(t, "maya", "hunter2", "admin"))

	_, err := m.Login("maya", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = m.Login("nobody", "hunter2")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	pair, err := m.Login("maya", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "maya", pair.Username)
	assert.Equal(t, "admin", pair.Role)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := m.VerifyUser(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "maya", claims.Subject)
	assert.Equal(t, KindUser, claims.Kind)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt, time.Minute)

	// Token families do not cross over.
	_, err = m.VerifyUser(pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.VerifyAgent(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_DefaultRole(t *testing.T) {
	m := testManager(t, testUser(t, "sam", "pw", ""))
	pair, err := m.Login("sam", "pw")
	require.NoError(t, err)
	assert.Equal(t, "operator", pair.Role)
}

func TestManager_Refresh(t *testing.T) {
	user := testUser(t, "maya", "hunter2", "admin")
	m := testManager(t, user)
	pair, err := m.Login("maya", "hunter2")
	require.NoError(t, err)

	renewed, err := m.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	claims, err := m.VerifyUser(renewed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "maya", claims.Subject)

	_, err = m.Refresh(pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	// A refresh token for a user no longer on the roster is rejected even
	// though the signature still checks out.
	m2, err := NewManager(Config{Secret: "test-secret"})
	require.NoError(t, err)
	_, err = m2.Refresh(pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestManager_AgentTokens(t *testing.T) {
	m := testManager(t)

	token, expiresAt, err := m.IssueAgentToken("agent-7")
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 60)

	claims, err := m.VerifyAgent(token)
	require.NoError(t, err)
	assert.Equal(t, "agent-7", claims.Subject)
	assert.Equal(t, KindAgent, claims.Kind)

	renewed, _, err := m.RenewAgentToken(token)
	require.NoError(t, err)
	claims, err = m.VerifyAgent(renewed)
	require.NoError(t, err)
	assert.Equal(t, "agent-7", claims.Subject)

	_, _, err = m.IssueAgentToken("")
	require.Error(t, err)
}

func TestManager_ExpiredTokenRejected(t *testing.T) {
	m := testManager(t)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.IssueAgentToken("agent-7")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.VerifyAgent(token)
	require.ErrorIs(t, err, ErrInvalidToken)
	_, _, err = m.RenewAgentToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ForeignSecretRejected(t *testing.T) {
	m := testManager(t)
	token, _, err := m.IssueAgentToken("agent-7")
	require.NoError(t, err)

	other, err := NewManager(Config{Secret: "other-secret"})
	require.NoError(t, err)
	_, err = other.VerifyAgent(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
