package models

// Agent lifecycle states. running↔paused are reversible; completed and error
// are terminal.
const (
	AgentRunning        = "running"
	AgentPaused         = "paused"
	AgentWaitingOnHuman = "waiting_on_human"
	AgentCompleted      = "completed"
	AgentError          = "error"
)

// TerminalAgentStatus reports whether the status admits no further transitions.
func TerminalAgentStatus(status string) bool {
	return status == AgentCompleted || status == AgentError
}

// KnownAgentStatus reports whether status is one of the lifecycle states.
func KnownAgentStatus(status string) bool {
	switch status {
	case AgentRunning, AgentPaused, AgentWaitingOnHuman, AgentCompleted, AgentError:
		return true
	}
	return false
}

// AgentHandle is the runtime descriptor for a spawned agent. The registry owns
// it; status is mutated only through gateway operations.
type AgentHandle struct {
	AgentID    string `json:"agentId"`
	PluginName string `json:"pluginName"`
	Status     string `json:"status"`
	SessionID  string `json:"sessionId,omitempty"`
}

// Checkpoint origins.
const (
	SerializedByPause         = "pause"
	SerializedByKillGrace     = "kill_grace"
	SerializedByCrashRecovery = "crash_recovery"
	SerializedByDecision      = "decision_checkpoint"
)

// SerializedAgentState is the provider-agnostic checkpoint payload returned by
// pause/kill/requestCheckpoint and consumed by resume.
type SerializedAgentState struct {
	AgentID            string         `json:"agentId"`
	Checkpoint         map[string]any `json:"checkpoint,omitempty"`
	Brief              *AgentBrief    `json:"brief,omitempty"`
	LastSequence       int64          `json:"lastSequence"`
	PendingDecisionIDs []string       `json:"pendingDecisionIds,omitempty"`
	SerializedBy       string         `json:"serializedBy"`
}

// KillResult reports the outcome of a kill operation.
type KillResult struct {
	State              *SerializedAgentState `json:"state,omitempty"`
	ArtifactsExtracted int                   `json:"artifactsExtracted"`
	CleanShutdown      bool                  `json:"cleanShutdown"`
}

// KillOptions controls whether the agent gets a grace window to checkpoint.
type KillOptions struct {
	Grace          bool  `json:"grace"`
	GraceTimeoutMs int64 `json:"graceTimeoutMs,omitempty"`
}
