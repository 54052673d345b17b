package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/auth"
	"github.com/steward-io/steward/pkg/gateway"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/trust"
)

func i64(v int64) *int64      { return &v }
func iptr(v int) *int         { return &v }
func fptr(v float64) *float64 { return &v }

// validConfig mirrors what load() produces for an empty config directory.
func validConfig() *Config {
	return &Config{
		System:      DefaultSystemConfig(),
		Server:      DefaultServerConfig(),
		Database:    DefaultDatabaseConfig(),
		Tick:        DefaultTickConfig(),
		Control:     DefaultControlConfig(),
		Gateway:     DefaultGatewayConfig(),
		Decisions:   DefaultDecisionConfig(),
		Trust:       DefaultTrustConfig(),
		Injection:   DefaultInjectionConfig(),
		ToolGate:    DefaultToolGateConfig(),
		Brake:       DefaultBrakeConfig(),
		Checkpoints: DefaultCheckpointConfig(),
		Coherence:   DefaultCoherenceConfig(),
		Quarantine:  DefaultQuarantineConfig(),
		Auth:        &auth.Config{},
	}
}

func TestValidateAllDefaults(t *testing.T) {
	err := NewValidator(validConfig()).ValidateAll()
	assert.NoError(t, err)
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "server port out of range",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "port",
		},
		{
			name: "postgres driver without dsn",
			mutate: func(c *Config) {
				c.Database.Driver = DriverPostgres
				c.Database.DSN = ""
			},
			wantErr: "dsn",
		},
		{
			name: "sqlite driver without path",
			mutate: func(c *Config) {
				c.Database.Driver = DriverSQLite
				c.Database.Path = ""
			},
			wantErr: "path",
		},
		{
			name:    "unknown database driver",
			mutate:  func(c *Config) { c.Database.Driver = "oracle" },
			wantErr: "driver",
		},
		{
			name:    "unknown tick mode",
			mutate:  func(c *Config) { c.Tick.Mode = "warp" },
			wantErr: "tick validation failed",
		},
		{
			name: "timer mode without interval",
			mutate: func(c *Config) {
				c.Tick.Mode = TickModeTimer
				c.Tick.Interval = 0
			},
			wantErr: "interval",
		},
		{
			name:    "unknown control mode",
			mutate:  func(c *Config) { c.Control.InitialMode = "chaos" },
			wantErr: "initial_mode",
		},
		{
			name:    "zero decision timeout",
			mutate:  func(c *Config) { c.Decisions.TimeoutTicks = i64(0) },
			wantErr: "timeout_ticks",
		},
		{
			name:    "unknown trust profile",
			mutate:  func(c *Config) { c.Trust.Profile = "reckless" },
			wantErr: "profile",
		},
		{
			name: "diminishing return factor out of range",
			mutate: func(c *Config) {
				c.Trust.Overrides = &trust.ConfigPatch{DiminishingReturnFactor: fptr(1.5)}
			},
			wantErr: "diminishingReturnFactor",
		},
		{
			name: "negative risk weight",
			mutate: func(c *Config) {
				c.Trust.Overrides = &trust.ConfigPatch{RiskWeights: map[string]float64{"execution": -1}}
			},
			wantErr: "riskWeights",
		},
		{
			name: "unknown injection mode",
			mutate: func(c *Config) {
				c.Injection.Policies = map[string]models.ContextInjectionPolicy{"chaos": {}}
			},
			wantErr: "injection validation failed",
		},
		{
			name: "zero periodic interval",
			mutate: func(c *Config) {
				c.Injection.Policies = map[string]models.ContextInjectionPolicy{
					"adaptive": {PeriodicIntervalTicks: i64(0)},
				}
			},
			wantErr: "periodicIntervalTicks",
		},
		{
			name: "zero staleness threshold",
			mutate: func(c *Config) {
				c.Injection.Policies = map[string]models.ContextInjectionPolicy{
					"adaptive": {StalenessThreshold: iptr(0)},
				}
			},
			wantErr: "stalenessThreshold",
		},
		{
			name: "unknown trigger kind",
			mutate: func(c *Config) {
				c.Injection.Policies = map[string]models.ContextInjectionPolicy{
					"adaptive": {ReactiveEvents: []models.ReactiveTrigger{{Kind: "comet"}}},
				}
			},
			wantErr: "trigger kind",
		},
		{
			name: "unknown trigger scope",
			mutate: func(c *Config) {
				c.Injection.Policies = map[string]models.ContextInjectionPolicy{
					"adaptive": {ReactiveEvents: []models.ReactiveTrigger{
						{Kind: models.TriggerArtifactApproved, Workstreams: "everything"},
					}},
				}
			},
			wantErr: "workstream scope",
		},
		{
			name: "unknown trigger severity",
			mutate: func(c *Config) {
				c.Injection.Policies = map[string]models.ContextInjectionPolicy{
					"adaptive": {ReactiveEvents: []models.ReactiveTrigger{
						{Kind: models.TriggerCoherenceIssue, MinSeverity: "catastrophic"},
					}},
				}
			},
			wantErr: "severity",
		},
		{
			name:    "unknown gateway plugin",
			mutate:  func(c *Config) { c.Gateway.DefaultPlugin = "warp_drive" },
			wantErr: "default_plugin",
		},
		{
			name: "inverted port range",
			mutate: func(c *Config) {
				c.Gateway.PortRangeStart = 9300
				c.Gateway.PortRangeEnd = 9200
			},
			wantErr: "port_range",
		},
		{
			name:    "local_http default without section",
			mutate:  func(c *Config) { c.Gateway.DefaultPlugin = gateway.LocalHTTPPluginName },
			wantErr: "local_http",
		},
		{
			name: "local_http without command",
			mutate: func(c *Config) {
				c.Gateway.DefaultPlugin = gateway.LocalHTTPPluginName
				c.Gateway.LocalHTTP = &gateway.LocalHTTPConfig{}
			},
			wantErr: "command",
		},
		{
			name: "container without image",
			mutate: func(c *Config) {
				c.Gateway.Container = &gateway.ContainerConfig{}
			},
			wantErr: "image",
		},
		{
			name:    "zero approval timeout",
			mutate:  func(c *Config) { c.ToolGate.ApprovalTimeout = 0 },
			wantErr: "approval_timeout",
		},
		{
			name:    "zero checkpoint cap",
			mutate:  func(c *Config) { c.Checkpoints.MaxPerAgent = 0 },
			wantErr: "max_per_agent",
		},
		{
			name:    "negative sweep interval",
			mutate:  func(c *Config) { c.Checkpoints.SweepIntervalTicks = -1 },
			wantErr: "sweep_interval_ticks",
		},
		{
			name:    "zero sweep capture timeout",
			mutate:  func(c *Config) { c.Checkpoints.SweepCaptureTimeout = 0 },
			wantErr: "sweep_capture_timeout",
		},
		{
			name:    "negative scan interval",
			mutate:  func(c *Config) { c.Coherence.ScanIntervalTicks = -1 },
			wantErr: "scan_interval_ticks",
		},
		{
			name:    "zero scan timeout",
			mutate:  func(c *Config) { c.Coherence.ScanTimeout = 0 },
			wantErr: "scan_timeout",
		},
		{
			name:    "unknown brake behavior",
			mutate:  func(c *Config) { c.Brake.DefaultBehavior = "hibernate" },
			wantErr: "default_behavior",
		},
		{
			name:    "zero quarantine cap",
			mutate:  func(c *Config) { c.Quarantine.MaxEntries = 0 },
			wantErr: "max_entries",
		},
		{
			name: "users without signing secret",
			mutate: func(c *Config) {
				c.Auth.Users = []auth.User{{Username: "admin", PasswordHash: "$2a$10$x"}}
			},
			wantErr: "secret",
		},
		{
			name: "user without username",
			mutate: func(c *Config) {
				c.Auth.Secret = "s3cret"
				c.Auth.Users = []auth.User{{PasswordHash: "$2a$10$x"}}
			},
			wantErr: "username required",
		},
		{
			name: "user without password hash",
			mutate: func(c *Config) {
				c.Auth.Secret = "s3cret"
				c.Auth.Users = []auth.User{{Username: "admin"}}
			},
			wantErr: "password_hash",
		},
		{
			name: "duplicate users",
			mutate: func(c *Config) {
				c.Auth.Secret = "s3cret"
				c.Auth.Users = []auth.User{
					{Username: "admin", PasswordHash: "$2a$10$x"},
					{Username: "admin", PasswordHash: "$2a$10$y"},
				}
			},
			wantErr: "duplicate user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAllWrapsValidationError(t *testing.T) {
	cfg := validConfig()
	cfg.Brake.DefaultBehavior = "hibernate"

	err := NewValidator(cfg).ValidateAll()

	require.Error(t, err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "brake", vErr.Component)
	assert.Equal(t, "default_behavior", vErr.Field)
}
