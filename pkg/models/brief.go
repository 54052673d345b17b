package models

import "fmt"

// SessionPolicy bounds a single agent session.
type SessionPolicy struct {
	MaxTurns            *int `json:"maxTurns,omitempty"`
	ContextBudgetTokens *int `json:"contextBudgetTokens,omitempty"`
}

// Workstream scopes accepted by reactive injection triggers.
const (
	ScopeOwn      = "own"
	ScopeReadable = "readable"
	ScopeAll      = "all"
)

// Reactive trigger kinds.
const (
	TriggerArtifactApproved = "artifact_approved"
	TriggerDecisionResolved = "decision_resolved"
	TriggerCoherenceIssue   = "coherence_issue"
	TriggerAgentCompleted   = "agent_completed"
	TriggerBriefUpdated     = "brief_updated"
)

// ReactiveTrigger describes one event pattern that schedules an injection.
type ReactiveTrigger struct {
	Kind        string `json:"kind" yaml:"kind"`
	Workstreams string `json:"workstreams,omitempty" yaml:"workstreams,omitempty"`
	MinSeverity string `json:"minSeverity,omitempty" yaml:"minSeverity,omitempty"`
}

// ContextInjectionPolicy tunes when refreshed context is pushed to an agent.
// Nil interval/threshold fields disable the corresponding trigger.
type ContextInjectionPolicy struct {
	PeriodicIntervalTicks *int64            `json:"periodicIntervalTicks,omitempty" yaml:"periodicIntervalTicks,omitempty"`
	StalenessThreshold    *int              `json:"stalenessThreshold,omitempty" yaml:"stalenessThreshold,omitempty"`
	CooldownTicks         int64             `json:"cooldownTicks,omitempty" yaml:"cooldownTicks,omitempty"`
	MaxInjectionsPerHour  int               `json:"maxInjectionsPerHour,omitempty" yaml:"maxInjectionsPerHour,omitempty"`
	ReactiveEvents        []ReactiveTrigger `json:"reactiveEvents,omitempty" yaml:"reactiveEvents,omitempty"`
}

// AgentBrief is everything handed to an agent at spawn or brief update.
type AgentBrief struct {
	AgentID                string                  `json:"agentId,omitempty"`
	Role                   string                  `json:"role"`
	Workstream             string                  `json:"workstream"`
	ReadableWorkstreams    []string                `json:"readableWorkstreams,omitempty"`
	EscalationProtocol     string                  `json:"escalationProtocol,omitempty"`
	AllowedTools           []string                `json:"allowedTools,omitempty"`
	SessionPolicy          *SessionPolicy          `json:"sessionPolicy,omitempty"`
	ContextInjectionPolicy *ContextInjectionPolicy `json:"contextInjectionPolicy,omitempty"`
	ModelPreference        string                  `json:"modelPreference,omitempty"`
	ProjectBrief           string                  `json:"projectBrief,omitempty"`
	KnowledgeSnapshot      *KnowledgeSnapshot      `json:"knowledgeSnapshot,omitempty"`
	PluginName             string                  `json:"pluginName,omitempty"`
}

// Validate checks required spawn fields.
func (b *AgentBrief) Validate() error {
	if b.Role == "" {
		return fmt.Errorf("role is required")
	}
	if b.Workstream == "" {
		return fmt.Errorf("workstream is required")
	}
	return nil
}

// ReadsWorkstream reports whether the brief can observe events from the given
// workstream, either its own or any listed readable one.
func (b *AgentBrief) ReadsWorkstream(ws string) bool {
	if ws == "" {
		return false
	}
	if b.Workstream == ws {
		return true
	}
	for _, r := range b.ReadableWorkstreams {
		if r == ws {
			return true
		}
	}
	return false
}
