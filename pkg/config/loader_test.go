package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/gateway"
	"github.com/steward-io/steward/pkg/models"
)

// clearConfigEnv blanks the environment variables the loader consults so
// ambient CI settings cannot leak into assertions.
func clearConfigEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("STEWARD_AUTH_SECRET", "")
}

func TestInitializeDefaults(t *testing.T) {
	clearConfigEnv(t)

	// Empty directory: no steward.yaml, everything from built-in defaults.
	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "steward.db", cfg.Database.Path)
	assert.Equal(t, "0.0.0.0:8080", cfg.ListenAddr())
	assert.Equal(t, TickModeManual, cfg.Tick.Mode)
	assert.Equal(t, 30*time.Second, cfg.Tick.Interval)
	assert.Equal(t, models.ModeAdaptive, cfg.InitialControlMode())
	assert.Nil(t, cfg.Decisions.TimeoutTicks)
	assert.Empty(t, cfg.Trust.Profile)
	assert.Nil(t, cfg.Trust.Overrides)
	assert.Empty(t, cfg.Injection.Policies)
	assert.Equal(t, gateway.InProcessPluginName, cfg.Gateway.DefaultPlugin)
	assert.Equal(t, 9200, cfg.Gateway.PortRangeStart)
	assert.Equal(t, 9299, cfg.Gateway.PortRangeEnd)
	assert.Nil(t, cfg.Gateway.LocalHTTP)
	assert.Nil(t, cfg.Gateway.Container)
	assert.Equal(t, 5*time.Minute, cfg.ToolGate.ApprovalTimeout)
	assert.Equal(t, 3, cfg.Checkpoints.MaxPerAgent)
	assert.Equal(t, int64(10), cfg.Checkpoints.SweepIntervalTicks)
	assert.Equal(t, 15*time.Second, cfg.Checkpoints.SweepCaptureTimeout)
	assert.Equal(t, int64(10), cfg.Coherence.ScanIntervalTicks)
	assert.Equal(t, 30*time.Second, cfg.Coherence.ScanTimeout)
	assert.Equal(t, "pause", cfg.Brake.DefaultBehavior)
	assert.Equal(t, 200, cfg.Quarantine.MaxEntries)
	assert.Equal(t, "http://localhost:5173", cfg.System.DashboardURL)
	assert.False(t, cfg.AuthEnabled())
}

func TestInitialize(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("STEWARD_AUTH_SECRET", "test-secret")

	configDir := t.TempDir()
	stewardYAML := `
system:
  dashboard_url: "https://steward.example.com"
  allowed_ws_origins:
    - "https://*.example.com"

server:
  port: 9090

database:
  driver: sqlite
  path: ":memory:"

tick:
  mode: timer
  interval: 5s

control:
  initial_mode: orchestrator

decisions:
  timeout_ticks: 12

trust:
  profile: conservative
  overrides:
    decayRatePerTick: 3

injection:
  policies:
    ecosystem:
      stalenessThreshold: 4
      cooldownTicks: 2
      reactiveEvents:
        - kind: coherence_issue
          minSeverity: high

gateway:
  default_plugin: local_http
  port_range:
    start: 9300
    end: 9310
  local_http:
    command: ["./bin/shim", "--quiet"]
    work_dir: "/tmp/steward"
    backend_url: "http://127.0.0.1:9090"
    startup_timeout: 10s

toolgate:
  approval_timeout: 90s

checkpoints:
  max_per_agent: 5
  sweep_interval_ticks: 0
  sweep_capture_timeout: 5s

coherence:
  scan_interval_ticks: 25

brake:
  default_behavior: kill

quarantine:
  max_entries: 50

auth:
  issuer: steward-test
  access_token_ttl: 30m
  users:
    - username: admin
      password_hash: "$2a$10$abcdefghijklmnopqrstuv"
      role: admin
`
	err := os.WriteFile(filepath.Join(configDir, "steward.yaml"), []byte(stewardYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// System and server; host keeps the default the YAML left unset.
	assert.Equal(t, "https://steward.example.com", cfg.System.DashboardURL)
	assert.Equal(t, []string{"https://*.example.com"}, cfg.System.AllowedWSOrigins)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Path)

	assert.Equal(t, TickModeTimer, cfg.Tick.Mode)
	assert.Equal(t, 5*time.Second, cfg.Tick.Interval)
	assert.Equal(t, models.ModeOrchestrator, cfg.InitialControlMode())

	require.NotNil(t, cfg.Decisions.TimeoutTicks)
	assert.Equal(t, int64(12), *cfg.Decisions.TimeoutTicks)

	assert.Equal(t, "conservative", cfg.Trust.Profile)
	require.NotNil(t, cfg.Trust.Overrides)
	require.NotNil(t, cfg.Trust.Overrides.DecayRatePerTick)
	assert.Equal(t, 3, *cfg.Trust.Overrides.DecayRatePerTick)

	require.Len(t, cfg.Injection.Policies, 1)
	pol := cfg.Injection.Policies["ecosystem"]
	require.NotNil(t, pol.StalenessThreshold)
	assert.Equal(t, 4, *pol.StalenessThreshold)
	assert.Equal(t, int64(2), pol.CooldownTicks)
	require.Len(t, pol.ReactiveEvents, 1)
	assert.Equal(t, models.TriggerCoherenceIssue, pol.ReactiveEvents[0].Kind)
	assert.Equal(t, models.SeverityHigh, pol.ReactiveEvents[0].MinSeverity)
	modePolicies := cfg.Injection.ModePolicies()
	require.Contains(t, modePolicies, models.ModeEcosystem)

	assert.Equal(t, gateway.LocalHTTPPluginName, cfg.Gateway.DefaultPlugin)
	assert.Equal(t, 9300, cfg.Gateway.PortRangeStart)
	assert.Equal(t, 9310, cfg.Gateway.PortRangeEnd)
	require.NotNil(t, cfg.Gateway.LocalHTTP)
	assert.Equal(t, []string{"./bin/shim", "--quiet"}, cfg.Gateway.LocalHTTP.Command)
	assert.Equal(t, "/tmp/steward", cfg.Gateway.LocalHTTP.WorkDir)
	assert.Equal(t, 10*time.Second, cfg.Gateway.LocalHTTP.StartupTimeout)
	assert.Nil(t, cfg.Gateway.Container)

	assert.Equal(t, 90*time.Second, cfg.ToolGate.ApprovalTimeout)

	// Explicit zero disables the sweep.
	assert.Equal(t, 5, cfg.Checkpoints.MaxPerAgent)
	assert.Equal(t, int64(0), cfg.Checkpoints.SweepIntervalTicks)
	assert.Equal(t, 5*time.Second, cfg.Checkpoints.SweepCaptureTimeout)

	assert.Equal(t, int64(25), cfg.Coherence.ScanIntervalTicks)
	assert.Equal(t, 30*time.Second, cfg.Coherence.ScanTimeout)

	assert.Equal(t, "kill", cfg.Brake.DefaultBehavior)
	assert.Equal(t, 50, cfg.Quarantine.MaxEntries)

	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, "test-secret", cfg.Auth.Secret)
	assert.Equal(t, "steward-test", cfg.Auth.Issuer)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	require.Len(t, cfg.Auth.Users, 1)
	assert.Equal(t, "admin", cfg.Auth.Users[0].Username)
	assert.Equal(t, "admin", cfg.Auth.Users[0].Role)

	stats := cfg.Stats()
	assert.Equal(t, 1, stats.Users)
	assert.Equal(t, 1, stats.InjectionPolicies)
	assert.Equal(t, 1, stats.WSOrigins)

	assert.Equal(t, configDir, cfg.ConfigDir())
}

func TestInitializeInvalidYAML(t *testing.T) {
	clearConfigEnv(t)

	configDir := t.TempDir()
	err := os.WriteFile(filepath.Join(configDir, "steward.yaml"), []byte(`{{{`), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailure(t *testing.T) {
	clearConfigEnv(t)

	configDir := t.TempDir()
	badTick := `
tick:
  mode: warp
`
	err := os.WriteFile(filepath.Join(configDir, "steward.yaml"), []byte(badTick), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "warp")
}

func TestLoadStewardYAML(t *testing.T) {
	configDir := t.TempDir()

	partial := `
server:
  host: "127.0.0.1"

checkpoints:
  sweep_interval_ticks: 0
`
	err := os.WriteFile(filepath.Join(configDir, "steward.yaml"), []byte(partial), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	raw, err := loader.loadStewardYAML()

	require.NoError(t, err)
	require.NotNil(t, raw.Server)
	assert.Equal(t, "127.0.0.1", raw.Server.Host)
	assert.Zero(t, raw.Server.Port)
	require.NotNil(t, raw.Checkpoints)
	require.NotNil(t, raw.Checkpoints.SweepIntervalTicks)
	assert.Equal(t, int64(0), *raw.Checkpoints.SweepIntervalTicks)
	assert.Nil(t, raw.Tick)
	assert.Nil(t, raw.Auth)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TEST_STEWARD_DSN", "postgres://steward:pw@db:5432/steward")

	configDir := t.TempDir()
	config := `
database:
  driver: postgres
  dsn: "{{.TEST_STEWARD_DSN}}"
`
	err := os.WriteFile(filepath.Join(configDir, "steward.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://steward:pw@db:5432/steward", cfg.Database.DSN)
}

func TestEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DATABASE_URL", "postgres://steward@prod-db/steward")
	t.Setenv("HTTP_PORT", "8443")

	configDir := t.TempDir()
	config := `
server:
  port: 9090

database:
  driver: sqlite
  path: "steward.db"
`
	err := os.WriteFile(filepath.Join(configDir, "steward.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver, "DATABASE_URL forces the postgres driver")
	assert.Equal(t, "postgres://steward@prod-db/steward", cfg.Database.DSN)
	assert.Equal(t, 8443, cfg.Server.Port, "HTTP_PORT overrides the YAML port")
}

func TestResolveDurationFallback(t *testing.T) {
	clearConfigEnv(t)

	configDir := t.TempDir()
	config := `
tick:
  interval: "soon"

toolgate:
  approval_timeout: 45s
`
	err := os.WriteFile(filepath.Join(configDir, "steward.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Tick.Interval, "malformed duration falls back to the default")
	assert.Equal(t, 45*time.Second, cfg.ToolGate.ApprovalTimeout)
}
