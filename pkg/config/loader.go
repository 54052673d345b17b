package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/steward-io/steward/pkg/auth"
	"github.com/steward-io/steward/pkg/gateway"
)

// StewardYAMLConfig represents the complete steward.yaml file structure.
// Every section is optional; built-in defaults cover what is left out.
type StewardYAMLConfig struct {
	System      *SystemConfig         `yaml:"system"`
	Server      *ServerConfig         `yaml:"server"`
	Database    *DatabaseConfig       `yaml:"database"`
	Tick        *TickYAMLConfig       `yaml:"tick"`
	Control     *ControlConfig        `yaml:"control"`
	Decisions   *DecisionConfig       `yaml:"decisions"`
	Trust       *TrustConfig          `yaml:"trust"`
	Injection   *InjectionConfig      `yaml:"injection"`
	Gateway     *GatewayYAMLConfig    `yaml:"gateway"`
	ToolGate    *ToolGateYAMLConfig   `yaml:"toolgate"`
	Checkpoints *CheckpointYAMLConfig `yaml:"checkpoints"`
	Coherence   *CoherenceYAMLConfig  `yaml:"coherence"`
	Brake       *BrakeConfig          `yaml:"brake"`
	Quarantine  *QuarantineConfig     `yaml:"quarantine"`
	Auth        *AuthYAMLConfig       `yaml:"auth"`
}

// TickYAMLConfig holds logical-clock settings from YAML.
type TickYAMLConfig struct {
	Mode     string `yaml:"mode,omitempty"`
	Interval string `yaml:"interval,omitempty"` // Parsed to time.Duration
}

// GatewayYAMLConfig holds sandbox gateway settings from YAML.
type GatewayYAMLConfig struct {
	DefaultPlugin string               `yaml:"default_plugin,omitempty"`
	PortRange     *PortRangeYAMLConfig `yaml:"port_range,omitempty"`
	LocalHTTP     *LocalHTTPYAMLConfig `yaml:"local_http,omitempty"`
	Container     *ContainerYAMLConfig `yaml:"container,omitempty"`
}

// PortRangeYAMLConfig bounds the host ports handed to sandbox plugins.
type PortRangeYAMLConfig struct {
	Start int `yaml:"start,omitempty"`
	End   int `yaml:"end,omitempty"`
}

// LocalHTTPYAMLConfig holds local_http plugin settings from YAML.
type LocalHTTPYAMLConfig struct {
	Command                []string `yaml:"command,omitempty"`
	WorkDir                string   `yaml:"work_dir,omitempty"`
	BackendURL             string   `yaml:"backend_url,omitempty"`
	ArtifactUploadEndpoint string   `yaml:"artifact_upload_endpoint,omitempty"`
	StartupTimeout         string   `yaml:"startup_timeout,omitempty"`
}

// ContainerYAMLConfig holds container plugin settings from YAML.
type ContainerYAMLConfig struct {
	Image                  string            `yaml:"image,omitempty"`
	AdapterPort            int               `yaml:"adapter_port,omitempty"`
	BackendURL             string            `yaml:"backend_url,omitempty"`
	ArtifactUploadEndpoint string            `yaml:"artifact_upload_endpoint,omitempty"`
	PollInterval           string            `yaml:"poll_interval,omitempty"`
	StartupTimeout         string            `yaml:"startup_timeout,omitempty"`
	StopTimeout            string            `yaml:"stop_timeout,omitempty"`
	MemoryBytes            int64             `yaml:"memory_bytes,omitempty"`
	NanoCPUs               int64             `yaml:"nano_cpus,omitempty"`
	Env                    map[string]string `yaml:"env,omitempty"`
}

// ToolGateYAMLConfig holds tool-gate settings from YAML.
type ToolGateYAMLConfig struct {
	ApprovalTimeout string `yaml:"approval_timeout,omitempty"`
}

// CheckpointYAMLConfig holds checkpoint settings from YAML. The sweep
// interval is a pointer so an explicit 0 (disable) survives resolution.
type CheckpointYAMLConfig struct {
	MaxPerAgent         int    `yaml:"max_per_agent,omitempty"`
	SweepIntervalTicks  *int64 `yaml:"sweep_interval_ticks,omitempty"`
	SweepCaptureTimeout string `yaml:"sweep_capture_timeout,omitempty"`
}

// CoherenceYAMLConfig holds coherence-scan settings from YAML.
type CoherenceYAMLConfig struct {
	ScanIntervalTicks *int64 `yaml:"scan_interval_ticks,omitempty"`
	ScanTimeout       string `yaml:"scan_timeout,omitempty"`
}

// AuthYAMLConfig holds token settings from YAML. The signing secret comes
// from the secret_env variable unless set inline (typically via {{.VAR}}
// expansion); plaintext secrets do not belong in config files.
type AuthYAMLConfig struct {
	Secret          string           `yaml:"secret,omitempty"`
	SecretEnv       string           `yaml:"secret_env,omitempty"`
	Issuer          string           `yaml:"issuer,omitempty"`
	AccessTokenTTL  string           `yaml:"access_token_ttl,omitempty"`
	RefreshTokenTTL string           `yaml:"refresh_token_ttl,omitempty"`
	AgentTokenTTL   string           `yaml:"agent_token_ttl,omitempty"`
	Users           []UserYAMLConfig `yaml:"users,omitempty"`
}

// UserYAMLConfig declares one dashboard account. PasswordHash is bcrypt.
type UserYAMLConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Role         string `yaml:"role,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load steward.yaml from configDir (a missing file means all defaults)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user settings over built-in defaults
//  5. Apply environment overrides (DATABASE_URL, HTTP_PORT)
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration file and resolve defaults
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"database_driver", cfg.Database.Driver,
		"tick_mode", cfg.Tick.Mode,
		"default_plugin", cfg.Gateway.DefaultPlugin,
		"control_mode", cfg.Control.InitialMode,
		"users", stats.Users,
		"injection_policies", stats.InjectionPolicies)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load steward.yaml (all sections optional)
	raw, err := loader.loadStewardYAML()
	if err != nil {
		return nil, NewLoadError("steward.yaml", err)
	}

	cfg := &Config{configDir: configDir}

	// 2. Merge user YAML over built-in defaults. mergo keeps the default
	// for every field the user left unset.
	if cfg.System, err = mergeSection("system", DefaultSystemConfig(), raw.System); err != nil {
		return nil, err
	}
	if cfg.Server, err = mergeSection("server", DefaultServerConfig(), raw.Server); err != nil {
		return nil, err
	}
	if cfg.Database, err = mergeSection("database", DefaultDatabaseConfig(), raw.Database); err != nil {
		return nil, err
	}
	if cfg.Control, err = mergeSection("control", DefaultControlConfig(), raw.Control); err != nil {
		return nil, err
	}
	if cfg.Decisions, err = mergeSection("decisions", DefaultDecisionConfig(), raw.Decisions); err != nil {
		return nil, err
	}
	if cfg.Trust, err = mergeSection("trust", DefaultTrustConfig(), raw.Trust); err != nil {
		return nil, err
	}
	if cfg.Injection, err = mergeSection("injection", DefaultInjectionConfig(), raw.Injection); err != nil {
		return nil, err
	}
	if cfg.Brake, err = mergeSection("brake", DefaultBrakeConfig(), raw.Brake); err != nil {
		return nil, err
	}
	if cfg.Quarantine, err = mergeSection("quarantine", DefaultQuarantineConfig(), raw.Quarantine); err != nil {
		return nil, err
	}

	// 3. Resolve sections that parse durations or read the environment.
	cfg.Tick = resolveTickConfig(raw.Tick)
	cfg.Gateway = resolveGatewayConfig(raw.Gateway)
	cfg.ToolGate = resolveToolGateConfig(raw.ToolGate)
	cfg.Checkpoints = resolveCheckpointConfig(raw.Checkpoints)
	cfg.Coherence = resolveCoherenceConfig(raw.Coherence)
	cfg.Auth = resolveAuthConfig(raw.Auth)

	// 4. Environment overrides win over YAML.
	applyEnvOverrides(cfg)

	return cfg, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

// mergeSection merges a user-provided section into its defaults. A nil user
// section returns the defaults untouched.
func mergeSection[T any](section string, defaults, user *T) (*T, error) {
	if user == nil {
		return defaults, nil
	}
	if err := mergo.Merge(defaults, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge %s config: %w", section, err)
	}
	return defaults, nil
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// loadStewardYAML reads steward.yaml. A missing file is not an error; the
// server runs on built-in defaults.
func (l *configLoader) loadStewardYAML() (*StewardYAMLConfig, error) {
	var config StewardYAMLConfig

	if err := l.loadYAML("steward.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No steward.yaml found, using built-in defaults", "config_dir", l.configDir)
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// resolveTickConfig resolves logical-clock settings from YAML, applying defaults.
func resolveTickConfig(raw *TickYAMLConfig) *TickConfig {
	cfg := DefaultTickConfig()

	if raw == nil {
		return cfg
	}

	if raw.Mode != "" {
		cfg.Mode = raw.Mode
	}
	cfg.Interval = parseDurationField("tick.interval", raw.Interval, cfg.Interval)

	return cfg
}

// resolveGatewayConfig resolves sandbox gateway settings from YAML, applying
// defaults. Plugin sections stay nil unless configured; zero plugin timeouts
// fall back to the plugin's own defaults.
func resolveGatewayConfig(raw *GatewayYAMLConfig) *GatewayConfig {
	cfg := DefaultGatewayConfig()

	if raw == nil {
		return cfg
	}

	if raw.DefaultPlugin != "" {
		cfg.DefaultPlugin = raw.DefaultPlugin
	}
	if raw.PortRange != nil {
		if raw.PortRange.Start > 0 {
			cfg.PortRangeStart = raw.PortRange.Start
		}
		if raw.PortRange.End > 0 {
			cfg.PortRangeEnd = raw.PortRange.End
		}
	}
	if raw.LocalHTTP != nil {
		cfg.LocalHTTP = &gateway.LocalHTTPConfig{
			Command:                raw.LocalHTTP.Command,
			WorkDir:                raw.LocalHTTP.WorkDir,
			BackendURL:             raw.LocalHTTP.BackendURL,
			ArtifactUploadEndpoint: raw.LocalHTTP.ArtifactUploadEndpoint,
			StartupTimeout:         parseDurationField("gateway.local_http.startup_timeout", raw.LocalHTTP.StartupTimeout, 0),
		}
	}
	if raw.Container != nil {
		cfg.Container = &gateway.ContainerConfig{
			Image:                  raw.Container.Image,
			AdapterPort:            raw.Container.AdapterPort,
			BackendURL:             raw.Container.BackendURL,
			ArtifactUploadEndpoint: raw.Container.ArtifactUploadEndpoint,
			PollInterval:           parseDurationField("gateway.container.poll_interval", raw.Container.PollInterval, 0),
			StartupTimeout:         parseDurationField("gateway.container.startup_timeout", raw.Container.StartupTimeout, 0),
			StopTimeout:            parseDurationField("gateway.container.stop_timeout", raw.Container.StopTimeout, 0),
			MemoryBytes:            raw.Container.MemoryBytes,
			NanoCPUs:               raw.Container.NanoCPUs,
			Env:                    raw.Container.Env,
		}
	}

	return cfg
}

// resolveToolGateConfig resolves tool-gate settings from YAML, applying defaults.
func resolveToolGateConfig(raw *ToolGateYAMLConfig) *ToolGateConfig {
	cfg := DefaultToolGateConfig()

	if raw == nil {
		return cfg
	}

	cfg.ApprovalTimeout = parseDurationField("toolgate.approval_timeout", raw.ApprovalTimeout, cfg.ApprovalTimeout)

	return cfg
}

// resolveCheckpointConfig resolves checkpoint settings from YAML, applying defaults.
func resolveCheckpointConfig(raw *CheckpointYAMLConfig) *CheckpointConfig {
	cfg := DefaultCheckpointConfig()

	if raw == nil {
		return cfg
	}

	if raw.MaxPerAgent > 0 {
		cfg.MaxPerAgent = raw.MaxPerAgent
	}
	if raw.SweepIntervalTicks != nil {
		cfg.SweepIntervalTicks = *raw.SweepIntervalTicks
	}
	cfg.SweepCaptureTimeout = parseDurationField("checkpoints.sweep_capture_timeout", raw.SweepCaptureTimeout, cfg.SweepCaptureTimeout)

	return cfg
}

// resolveCoherenceConfig resolves coherence-scan settings from YAML, applying defaults.
func resolveCoherenceConfig(raw *CoherenceYAMLConfig) *CoherenceConfig {
	cfg := DefaultCoherenceConfig()

	if raw == nil {
		return cfg
	}

	if raw.ScanIntervalTicks != nil {
		cfg.ScanIntervalTicks = *raw.ScanIntervalTicks
	}
	cfg.ScanTimeout = parseDurationField("coherence.scan_timeout", raw.ScanTimeout, cfg.ScanTimeout)

	return cfg
}

// resolveAuthConfig resolves token settings from YAML. Zero TTLs and an
// empty issuer fall back to the auth manager's own defaults. An empty
// resolved secret disables authentication entirely; the server logs a
// warning and runs open.
func resolveAuthConfig(raw *AuthYAMLConfig) *auth.Config {
	cfg := &auth.Config{}
	secretEnv := "STEWARD_AUTH_SECRET"

	if raw != nil {
		cfg.Secret = raw.Secret
		if raw.SecretEnv != "" {
			secretEnv = raw.SecretEnv
		}
		cfg.Issuer = raw.Issuer
		cfg.AccessTokenTTL = parseDurationField("auth.access_token_ttl", raw.AccessTokenTTL, 0)
		cfg.RefreshTokenTTL = parseDurationField("auth.refresh_token_ttl", raw.RefreshTokenTTL, 0)
		cfg.AgentTokenTTL = parseDurationField("auth.agent_token_ttl", raw.AgentTokenTTL, 0)
		for _, u := range raw.Users {
			cfg.Users = append(cfg.Users, auth.User{
				Username:     u.Username,
				PasswordHash: u.PasswordHash,
				Role:         u.Role,
			})
		}
	}

	if cfg.Secret == "" {
		cfg.Secret = os.Getenv(secretEnv)
	}

	return cfg
}

// applyEnvOverrides applies environment variables that take precedence over
// YAML: DATABASE_URL selects the postgres driver outright and HTTP_PORT
// overrides the listen port.
func applyEnvOverrides(cfg *Config) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.Driver = DriverPostgres
		cfg.Database.DSN = dsn
	}
	if port := os.Getenv("HTTP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		} else {
			slog.Warn("Invalid HTTP_PORT, keeping configured port",
				"value", port,
				"port", cfg.Server.Port,
				"error", err)
		}
	}
}

// parseDurationField parses a duration string from YAML, falling back to the
// default on empty or malformed input.
func parseDurationField(field, raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("Invalid duration in config, using default",
			"field", field,
			"value", raw,
			"default", fallback,
			"error", err)
		return fallback
	}
	return d
}
