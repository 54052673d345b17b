package config

import (
	"time"

	"github.com/steward-io/steward/pkg/gateway"
	"github.com/steward-io/steward/pkg/models"
)

// Tick advancement modes.
const (
	TickModeManual = "manual"
	TickModeTimer  = "timer"
)

// TickConfig drives the logical clock that paces decisions, injections, and
// trust decay.
type TickConfig struct {
	// Mode is manual (ticks advance only via the API) or timer.
	Mode string

	// Interval is the wall-clock period between ticks in timer mode.
	Interval time.Duration
}

// DefaultTickConfig returns the built-in clock defaults. Manual mode keeps
// tests and fresh installs deterministic; timer mode is opt-in.
func DefaultTickConfig() *TickConfig {
	return &TickConfig{
		Mode:     TickModeManual,
		Interval: 30 * time.Second,
	}
}

// ControlConfig seeds the process-wide control mode.
type ControlConfig struct {
	InitialMode string `yaml:"initial_mode"`
}

// DefaultControlConfig starts in adaptive mode, gating tool calls by trust.
func DefaultControlConfig() *ControlConfig {
	return &ControlConfig{
		InitialMode: string(models.ModeAdaptive),
	}
}

// GatewayConfig wires sandbox plugins and the host port pool.
type GatewayConfig struct {
	// DefaultPlugin hosts agents whose brief does not pick a plugin.
	DefaultPlugin string

	// PortRangeStart and PortRangeEnd bound the inclusive host port range
	// handed to the local_http and container plugins.
	PortRangeStart int
	PortRangeEnd   int

	// LocalHTTP is set when the local_http plugin is configured.
	LocalHTTP *gateway.LocalHTTPConfig

	// Container is set when the container plugin is configured.
	Container *gateway.ContainerConfig
}

// DefaultGatewayConfig returns the built-in gateway defaults. Only the
// in-process plugin is available until a plugin section is configured.
func DefaultGatewayConfig() *GatewayConfig {
	return &GatewayConfig{
		DefaultPlugin:  gateway.InProcessPluginName,
		PortRangeStart: gateway.DefaultPortRangeStart,
		PortRangeEnd:   gateway.DefaultPortRangeEnd,
	}
}
