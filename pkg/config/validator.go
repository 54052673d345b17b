package config

import (
	"fmt"

	"github.com/steward-io/steward/pkg/gateway"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/trust"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	if err := v.validateDatabase(); err != nil {
		return fmt.Errorf("database validation failed: %w", err)
	}

	if err := v.validateTick(); err != nil {
		return fmt.Errorf("tick validation failed: %w", err)
	}

	if err := v.validateControl(); err != nil {
		return fmt.Errorf("control validation failed: %w", err)
	}

	if err := v.validateDecisions(); err != nil {
		return fmt.Errorf("decision validation failed: %w", err)
	}

	if err := v.validateTrust(); err != nil {
		return fmt.Errorf("trust validation failed: %w", err)
	}

	if err := v.validateInjection(); err != nil {
		return fmt.Errorf("injection validation failed: %w", err)
	}

	if err := v.validateGateway(); err != nil {
		return fmt.Errorf("gateway validation failed: %w", err)
	}

	if err := v.validateToolGate(); err != nil {
		return fmt.Errorf("toolgate validation failed: %w", err)
	}

	if err := v.validateCheckpoints(); err != nil {
		return fmt.Errorf("checkpoint validation failed: %w", err)
	}

	if err := v.validateCoherence(); err != nil {
		return fmt.Errorf("coherence validation failed: %w", err)
	}

	if err := v.validateBrake(); err != nil {
		return fmt.Errorf("brake validation failed: %w", err)
	}

	if err := v.validateQuarantine(); err != nil {
		return fmt.Errorf("quarantine validation failed: %w", err)
	}

	if err := v.validateAuth(); err != nil {
		return fmt.Errorf("auth validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateServer() error {
	srv := v.cfg.Server

	if srv.Port < 1 || srv.Port > 65535 {
		return NewValidationError("server", "", "port", fmt.Errorf("must be in 1-65535, got %d", srv.Port))
	}

	return nil
}

func (v *ConfigValidator) validateDatabase() error {
	db := v.cfg.Database

	switch db.Driver {
	case DriverPostgres:
		if db.DSN == "" {
			return NewValidationError("database", "", "dsn", fmt.Errorf("required for the postgres driver (or set DATABASE_URL)"))
		}
	case DriverSQLite:
		if db.Path == "" {
			return NewValidationError("database", "", "path", fmt.Errorf("required for the sqlite driver"))
		}
	default:
		return NewValidationError("database", "", "driver", fmt.Errorf("must be %s or %s, got '%s'", DriverPostgres, DriverSQLite, db.Driver))
	}

	return nil
}

func (v *ConfigValidator) validateTick() error {
	tc := v.cfg.Tick

	switch tc.Mode {
	case TickModeManual:
	case TickModeTimer:
		if tc.Interval <= 0 {
			return NewValidationError("tick", "", "interval", fmt.Errorf("must be positive in timer mode"))
		}
	default:
		return NewValidationError("tick", "", "mode", fmt.Errorf("must be %s or %s, got '%s'", TickModeManual, TickModeTimer, tc.Mode))
	}

	return nil
}

func (v *ConfigValidator) validateControl() error {
	if _, err := models.ParseControlMode(v.cfg.Control.InitialMode); err != nil {
		return NewValidationError("control", "", "initial_mode", err)
	}

	return nil
}

func (v *ConfigValidator) validateDecisions() error {
	dc := v.cfg.Decisions

	if dc.TimeoutTicks != nil && *dc.TimeoutTicks < 1 {
		return NewValidationError("decisions", "", "timeout_ticks", fmt.Errorf("must be at least 1 (omit to disable timeouts)"))
	}

	return nil
}

func (v *ConfigValidator) validateTrust() error {
	tc := v.cfg.Trust

	if tc.Profile != "" {
		if _, err := trust.LookupProfile(tc.Profile); err != nil {
			return NewValidationError("trust", "", "profile", err)
		}
	}

	if o := tc.Overrides; o != nil {
		if o.DiminishingReturnFactor != nil && (*o.DiminishingReturnFactor <= 0 || *o.DiminishingReturnFactor > 1) {
			return NewValidationError("trust", "", "overrides.diminishingReturnFactor", fmt.Errorf("must be in (0, 1]"))
		}
		if o.DecayRatePerTick != nil && *o.DecayRatePerTick < 0 {
			return NewValidationError("trust", "", "overrides.decayRatePerTick", fmt.Errorf("must not be negative"))
		}
		if o.InactivityThresholdTicks != nil && *o.InactivityThresholdTicks < 0 {
			return NewValidationError("trust", "", "overrides.inactivityThresholdTicks", fmt.Errorf("must not be negative"))
		}
		for category, weight := range o.RiskWeights {
			if weight <= 0 {
				return NewValidationError("trust", "", "overrides.riskWeights", fmt.Errorf("weight for '%s' must be positive", category))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateInjection() error {
	for name, pol := range v.cfg.Injection.Policies {
		if _, err := models.ParseControlMode(name); err != nil {
			return NewValidationError("injection", name, "", err)
		}

		if pol.PeriodicIntervalTicks != nil && *pol.PeriodicIntervalTicks < 1 {
			return NewValidationError("injection", name, "periodicIntervalTicks", fmt.Errorf("must be at least 1 (omit to disable)"))
		}
		if pol.StalenessThreshold != nil && *pol.StalenessThreshold < 1 {
			return NewValidationError("injection", name, "stalenessThreshold", fmt.Errorf("must be at least 1 (omit to disable)"))
		}
		if pol.CooldownTicks < 0 {
			return NewValidationError("injection", name, "cooldownTicks", fmt.Errorf("must not be negative"))
		}
		if pol.MaxInjectionsPerHour < 0 {
			return NewValidationError("injection", name, "maxInjectionsPerHour", fmt.Errorf("must not be negative"))
		}

		for i, trig := range pol.ReactiveEvents {
			if err := validateTrigger(trig); err != nil {
				return NewValidationError("injection", name, fmt.Sprintf("reactiveEvents[%d]", i), err)
			}
		}
	}

	return nil
}

func validateTrigger(trig models.ReactiveTrigger) error {
	switch trig.Kind {
	case models.TriggerArtifactApproved,
		models.TriggerDecisionResolved,
		models.TriggerCoherenceIssue,
		models.TriggerAgentCompleted,
		models.TriggerBriefUpdated:
	default:
		return fmt.Errorf("unknown trigger kind '%s'", trig.Kind)
	}

	switch trig.Workstreams {
	case "", models.ScopeOwn, models.ScopeReadable, models.ScopeAll:
	default:
		return fmt.Errorf("unknown workstream scope '%s'", trig.Workstreams)
	}

	if trig.MinSeverity != "" && !models.KnownSeverity(trig.MinSeverity) {
		return fmt.Errorf("unknown severity '%s'", trig.MinSeverity)
	}

	return nil
}

func (v *ConfigValidator) validateGateway() error {
	gw := v.cfg.Gateway

	switch gw.DefaultPlugin {
	case gateway.InProcessPluginName, gateway.LocalHTTPPluginName, gateway.ContainerPluginName:
	default:
		return NewValidationError("gateway", "", "default_plugin", fmt.Errorf("unknown plugin '%s'", gw.DefaultPlugin))
	}

	if gw.PortRangeStart < 1 || gw.PortRangeEnd > 65535 || gw.PortRangeStart > gw.PortRangeEnd {
		return NewValidationError("gateway", "", "port_range", fmt.Errorf("invalid range %d-%d", gw.PortRangeStart, gw.PortRangeEnd))
	}

	// Any configured plugin is selectable per brief, so its section must be
	// complete even when it is not the default.
	if gw.LocalHTTP != nil && len(gw.LocalHTTP.Command) == 0 {
		return NewValidationError("gateway", gateway.LocalHTTPPluginName, "command", fmt.Errorf("shim command required"))
	}
	if gw.Container != nil && gw.Container.Image == "" {
		return NewValidationError("gateway", gateway.ContainerPluginName, "image", fmt.Errorf("sandbox image required"))
	}

	if gw.DefaultPlugin == gateway.LocalHTTPPluginName && gw.LocalHTTP == nil {
		return NewValidationError("gateway", "", "local_http", fmt.Errorf("section required when local_http is the default plugin"))
	}
	if gw.DefaultPlugin == gateway.ContainerPluginName && gw.Container == nil {
		return NewValidationError("gateway", "", "container", fmt.Errorf("section required when container is the default plugin"))
	}

	return nil
}

func (v *ConfigValidator) validateToolGate() error {
	if v.cfg.ToolGate.ApprovalTimeout <= 0 {
		return NewValidationError("toolgate", "", "approval_timeout", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateCheckpoints() error {
	cp := v.cfg.Checkpoints

	if cp.MaxPerAgent < 1 {
		return NewValidationError("checkpoints", "", "max_per_agent", fmt.Errorf("must be at least 1"))
	}
	if cp.SweepIntervalTicks < 0 {
		return NewValidationError("checkpoints", "", "sweep_interval_ticks", fmt.Errorf("must not be negative (0 disables the sweep)"))
	}
	if cp.SweepCaptureTimeout <= 0 {
		return NewValidationError("checkpoints", "", "sweep_capture_timeout", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateCoherence() error {
	co := v.cfg.Coherence

	if co.ScanIntervalTicks < 0 {
		return NewValidationError("coherence", "", "scan_interval_ticks", fmt.Errorf("must not be negative (0 disables the scan)"))
	}
	if co.ScanTimeout <= 0 {
		return NewValidationError("coherence", "", "scan_timeout", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateBrake() error {
	switch v.cfg.Brake.DefaultBehavior {
	case "pause", "kill":
		return nil
	default:
		return NewValidationError("brake", "", "default_behavior", fmt.Errorf("must be pause or kill, got '%s'", v.cfg.Brake.DefaultBehavior))
	}
}

func (v *ConfigValidator) validateQuarantine() error {
	if v.cfg.Quarantine.MaxEntries < 1 {
		return NewValidationError("quarantine", "", "max_entries", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateAuth() error {
	ac := v.cfg.Auth

	if len(ac.Users) > 0 && ac.Secret == "" {
		return NewValidationError("auth", "", "secret", fmt.Errorf("users are configured but no signing secret is set (set STEWARD_AUTH_SECRET)"))
	}

	seen := make(map[string]bool, len(ac.Users))
	for _, u := range ac.Users {
		if u.Username == "" {
			return NewValidationError("auth", "", "users", fmt.Errorf("username required"))
		}
		if u.PasswordHash == "" {
			return NewValidationError("auth", u.Username, "password_hash", fmt.Errorf("bcrypt hash required"))
		}
		if seen[u.Username] {
			return NewValidationError("auth", u.Username, "", fmt.Errorf("duplicate user"))
		}
		seen[u.Username] = true
	}

	return nil
}
