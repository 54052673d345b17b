package config

import (
	"net"
	"strconv"
)

// SystemConfig groups dashboard-facing infrastructure settings.
type SystemConfig struct {
	// DashboardURL is the dashboard origin, used for CORS and as the default
	// WebSocket origin allowlist entry.
	DashboardURL string `yaml:"dashboard_url"`

	// AllowedWSOrigins are additional origin patterns accepted on WebSocket
	// upgrade, on top of DashboardURL.
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// DefaultSystemConfig returns the built-in system defaults.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DashboardURL: "http://localhost:5173",
	}
}

// ServerConfig holds the HTTP listener settings. The HTTP_PORT environment
// variable overrides Port.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DefaultServerConfig returns the built-in listener defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host: "0.0.0.0",
		Port: 8080,
	}
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
