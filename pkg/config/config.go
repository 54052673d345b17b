package config

import (
	"github.com/steward-io/steward/pkg/auth"
	"github.com/steward-io/steward/pkg/models"
)

// Config is the umbrella configuration object covering every subsystem of
// the control plane. This is the primary object returned by Initialize()
// and threaded through server wiring.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Infrastructure
	System   *SystemConfig
	Server   *ServerConfig
	Database *DatabaseConfig

	// Runtime
	Tick    *TickConfig
	Control *ControlConfig
	Gateway *GatewayConfig

	// Oversight
	Decisions *DecisionConfig
	Trust     *TrustConfig
	Injection *InjectionConfig
	ToolGate  *ToolGateConfig
	Brake     *BrakeConfig

	// Knowledge
	Checkpoints *CheckpointConfig
	Coherence   *CoherenceConfig
	Quarantine  *QuarantineConfig

	// Auth
	Auth *auth.Config
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Users             int
	InjectionPolicies int
	WSOrigins         int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Auth != nil {
		s.Users = len(c.Auth.Users)
	}
	if c.Injection != nil {
		s.InjectionPolicies = len(c.Injection.Policies)
	}
	if c.System != nil {
		s.WSOrigins = len(c.System.AllowedWSOrigins)
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ListenAddr returns the host:port the HTTP server binds.
func (c *Config) ListenAddr() string {
	return c.Server.Addr()
}

// InitialControlMode returns the validated startup control mode.
func (c *Config) InitialControlMode() models.ControlMode {
	mode, err := models.ParseControlMode(c.Control.InitialMode)
	if err != nil {
		// Validation rejects unknown modes before this is reachable.
		return models.ModeAdaptive
	}
	return mode
}

// AuthEnabled reports whether a signing secret is configured.
func (c *Config) AuthEnabled() bool {
	return c.Auth != nil && c.Auth.Secret != ""
}
