package models

import "fmt"

// ControlMode selects how much autonomy agents get.
type ControlMode string

// Control modes: orchestrator gates everything through a human, adaptive gates
// by trust, ecosystem approves almost everything.
const (
	ModeOrchestrator ControlMode = "orchestrator"
	ModeAdaptive     ControlMode = "adaptive"
	ModeEcosystem    ControlMode = "ecosystem"
)

// ParseControlMode validates a mode string.
func ParseControlMode(s string) (ControlMode, error) {
	switch ControlMode(s) {
	case ModeOrchestrator, ModeAdaptive, ModeEcosystem:
		return ControlMode(s), nil
	default:
		return "", fmt.Errorf("unknown control mode %q", s)
	}
}

// TrustProfile is the wire view of one agent's trust state.
type TrustProfile struct {
	AgentID string         `json:"agentId"`
	Score   int            `json:"score"`
	Domains map[string]int `json:"domains,omitempty"`
}
