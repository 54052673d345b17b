package config

import (
	"time"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/trust"
)

// DecisionConfig tunes the pending-decision queue.
type DecisionConfig struct {
	// TimeoutTicks is the default deadline for decisions that carry no
	// dueByTick of their own. Nil disables timeouts.
	TimeoutTicks *int64 `yaml:"timeout_ticks"`
}

// DefaultDecisionConfig returns the built-in queue defaults. Decisions do
// not time out unless a deadline is configured.
func DefaultDecisionConfig() *DecisionConfig {
	return &DecisionConfig{}
}

// ToolGateConfig tunes blocking tool-approval requests.
type ToolGateConfig struct {
	// ApprovalTimeout bounds how long a gated tool call waits for a human
	// before the fallback ruling applies.
	ApprovalTimeout time.Duration
}

// DefaultToolGateConfig returns the built-in gate defaults.
func DefaultToolGateConfig() *ToolGateConfig {
	return &ToolGateConfig{
		ApprovalTimeout: 5 * time.Minute,
	}
}

// BrakeConfig tunes emergency-stop handling.
type BrakeConfig struct {
	// DefaultBehavior applies when an engage request leaves behavior empty:
	// pause or kill.
	DefaultBehavior string `yaml:"default_behavior"`
}

// DefaultBrakeConfig returns the built-in brake defaults.
func DefaultBrakeConfig() *BrakeConfig {
	return &BrakeConfig{
		DefaultBehavior: "pause",
	}
}

// TrustConfig calibrates the trust engine at startup.
type TrustConfig struct {
	// Profile names a built-in calibration profile (conservative, balanced,
	// permissive). Empty keeps the engine defaults.
	Profile string `yaml:"profile"`

	// Overrides patches individual engine settings after the profile applies.
	Overrides *trust.ConfigPatch `yaml:"overrides"`
}

// DefaultTrustConfig returns the built-in trust defaults: engine defaults,
// no decay, no risk weighting.
func DefaultTrustConfig() *TrustConfig {
	return &TrustConfig{}
}

// InjectionConfig overrides the default context-injection policies per
// control mode. Briefs that carry their own policy are unaffected.
type InjectionConfig struct {
	Policies map[string]models.ContextInjectionPolicy `yaml:"policies"`
}

// DefaultInjectionConfig returns no overrides; the scheduler's compiled-in
// per-mode policies apply.
func DefaultInjectionConfig() *InjectionConfig {
	return &InjectionConfig{}
}

// ModePolicies returns the configured policy overrides keyed by parsed
// control mode. Validation guarantees the keys parse.
func (c *InjectionConfig) ModePolicies() map[models.ControlMode]models.ContextInjectionPolicy {
	if len(c.Policies) == 0 {
		return nil
	}
	out := make(map[models.ControlMode]models.ContextInjectionPolicy, len(c.Policies))
	for name, pol := range c.Policies {
		mode, err := models.ParseControlMode(name)
		if err != nil {
			continue
		}
		out[mode] = pol
	}
	return out
}
