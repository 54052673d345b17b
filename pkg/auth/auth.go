// Package auth issues and verifies the two token families the server hands
// out: dashboard user tokens (login/refresh) and per-agent backend tokens
// minted at spawn and renewed by the sandbox. All tokens are HS256 JWTs
// signed with one shared secret; the kind claim keeps the families apart.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Token kinds.
const (
	KindUser    = "user"
	KindRefresh = "refresh"
	KindAgent   = "agent"
)

// Sentinel errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// User is a dashboard account declared in config. PasswordHash is a bcrypt
// hash; plaintext passwords never appear in config files.
type User struct {
	Username     string `yaml:"username" json:"username"`
	PasswordHash string `yaml:"passwordHash" json:"-"`
	Role         string `yaml:"role" json:"role"`
}

// Config carries the signing secret, token lifetimes, and the user roster.
type Config struct {
	Secret          string        `yaml:"secret"`
	Issuer          string        `yaml:"issuer"`
	AccessTokenTTL  time.Duration `yaml:"accessTokenTtl"`
	RefreshTokenTTL time.Duration `yaml:"refreshTokenTtl"`
	AgentTokenTTL   time.Duration `yaml:"agentTokenTtl"`
	Users           []User        `yaml:"users"`
}

// Claims is the verified view of a steward token.
type Claims struct {
	Subject   string    `json:"subject"`
	Kind      string    `json:"kind"`
	Role      string    `json:"role,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenPair is the login/refresh response payload.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Username     string    `json:"username"`
	Role         string    `json:"role,omitempty"`
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Kind string `json:"kind"`
	Role string `json:"role,omitempty"`
}

// Manager signs and verifies tokens and checks dashboard credentials.
type Manager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	agentTTL   time.Duration
	users      map[string]User
	now        func() time.Time
}

// NewManager validates the config and builds the manager. A missing secret is
// a hard error; an empty user roster is allowed (agent tokens still work).
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("auth secret is not configured")
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "steward"
	}
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = 15 * time.Minute
	}
	if cfg.RefreshTokenTTL <= 0 {
		cfg.RefreshTokenTTL = 24 * time.Hour
	}
	if cfg.AgentTokenTTL <= 0 {
		cfg.AgentTokenTTL = time.Hour
	}

	users := make(map[string]User, len(cfg.Users))
	for _, u := range cfg.Users {
		if u.Username == "" || u.PasswordHash == "" {
			return nil, fmt.Errorf("auth user entries need both username and passwordHash")
		}
		if _, dup := users[u.Username]; dup {
			return nil, fmt.Errorf("duplicate auth user %q", u.Username)
		}
		if u.Role == "" {
			u.Role = "operator"
		}
		users[u.Username] = u
	}

	return &Manager{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		agentTTL:   cfg.AgentTokenTTL,
		users:      users,
		now:        time.Now,
	}, nil
}

// Login checks the credentials against the roster and issues a token pair.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (m *Manager) Login(username, password string) (*TokenPair, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return m.issuePair(user)
}

// Refresh exchanges a valid refresh token for a new pair. The user must still
// be on the roster.
func (m *Manager) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := m.Verify(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Kind != KindRefresh {
		return nil, fmt.Errorf("%w: not a refresh token", ErrInvalidToken)
	}
	user, ok := m.users[claims.Subject]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return m.issuePair(user)
}

// Verify parses and validates any steward token.
func (m *Manager) Verify(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(m.issuer))
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	tc, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	var expires time.Time
	if tc.ExpiresAt != nil {
		expires = tc.ExpiresAt.Time
	}
	return Claims{
		Subject:   tc.Subject,
		Kind:      tc.Kind,
		Role:      tc.Role,
		ExpiresAt: expires,
	}, nil
}

// VerifyUser validates a dashboard access token.
func (m *Manager) VerifyUser(token string) (Claims, error) {
	claims, err := m.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.Kind != KindUser {
		return Claims{}, fmt.Errorf("%w: not a user token", ErrInvalidToken)
	}
	return claims, nil
}

// VerifyAgent validates an agent backend token and returns its claims.
func (m *Manager) VerifyAgent(token string) (Claims, error) {
	claims, err := m.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.Kind != KindAgent {
		return Claims{}, fmt.Errorf("%w: not an agent token", ErrInvalidToken)
	}
	return claims, nil
}

// IssueAgentToken mints the scoped backend token a sandbox receives at
// bootstrap. The returned expiry is a unix timestamp in seconds.
func (m *Manager) IssueAgentToken(agentID string) (string, int64, error) {
	if agentID == "" {
		return "", 0, fmt.Errorf("agent id is required")
	}
	expiresAt := m.now().Add(m.agentTTL)
	token, err := m.sign(agentID, KindAgent, "", expiresAt)
	if err != nil {
		return "", 0, err
	}
	return token, expiresAt.Unix(), nil
}

// RenewAgentToken exchanges a still-valid agent token for a fresh one.
// Sandboxes renew ahead of expiry; an expired token cannot be renewed.
func (m *Manager) RenewAgentToken(token string) (string, int64, error) {
	claims, err := m.VerifyAgent(token)
	if err != nil {
		return "", 0, err
	}
	return m.IssueAgentToken(claims.Subject)
}

func (m *Manager) issuePair(user User) (*TokenPair, error) {
	accessExpires := m.now().Add(m.accessTTL)
	access, err := m.sign(user.Username, KindUser, user.Role, accessExpires)
	if err != nil {
		return nil, err
	}
	refresh, err := m.sign(user.Username, KindRefresh, "", m.now().Add(m.refreshTTL))
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpires,
		Username:     user.Username,
		Role:         user.Role,
	}, nil
}

func (m *Manager) sign(subject, kind, role string, expiresAt time.Time) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(m.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Kind: kind,
		Role: role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}
	return signed, nil
}

// HashPassword produces the bcrypt hash stored in config for a dashboard
// user.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
