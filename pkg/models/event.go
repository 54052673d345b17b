// Package models contains the wire-level data model shared by the API
// surface, the event pipeline, and the adapter transports.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types carried by an EventEnvelope.
const (
	EventTypeStatus      = "status"
	EventTypeDecision    = "decision"
	EventTypeArtifact    = "artifact"
	EventTypeCoherence   = "coherence"
	EventTypeToolCall    = "tool_call"
	EventTypeCompletion  = "completion"
	EventTypeError       = "error"
	EventTypeDelegation  = "delegation"
	EventTypeGuardrail   = "guardrail"
	EventTypeLifecycle   = "lifecycle"
	EventTypeProgress    = "progress"
	EventTypeRawProvider = "raw_provider"
)

// KnownEventTypes lists every event type accepted at ingestion. Anything else
// is quarantined.
var KnownEventTypes = []string{
	EventTypeStatus, EventTypeDecision, EventTypeArtifact, EventTypeCoherence,
	EventTypeToolCall, EventTypeCompletion, EventTypeError, EventTypeDelegation,
	EventTypeGuardrail, EventTypeLifecycle, EventTypeProgress, EventTypeRawProvider,
}

// EventEnvelope wraps every observable agent action. sourceSequence strictly
// increases per (agentId, runId); ingestion is idempotent on sourceEventId.
type EventEnvelope struct {
	SourceEventID    string     `json:"sourceEventId"`
	SourceSequence   int64      `json:"sourceSequence"`
	SourceOccurredAt time.Time  `json:"sourceOccurredAt"`
	RunID            string     `json:"runId"`
	AgentID          string     `json:"agentId"`
	IngestedAt       time.Time  `json:"ingestedAt"`
	Event            AgentEvent `json:"event"`
}

// AdapterEvent is the envelope as published by the adapter shim over its
// /events WebSocket. The agent id is implied by the connection and stamped
// server-side during ingestion.
type AdapterEvent struct {
	SourceEventID    string     `json:"sourceEventId"`
	SourceSequence   int64      `json:"sourceSequence"`
	SourceOccurredAt time.Time  `json:"sourceOccurredAt"`
	RunID            string     `json:"runId"`
	Event            AgentEvent `json:"event"`
}

// AgentEvent is a tagged union: Type selects which payload pointer is set.
type AgentEvent struct {
	Type       string           `json:"type"`
	Status     *StatusEvent     `json:"status,omitempty"`
	Decision   *DecisionEvent   `json:"decision,omitempty"`
	Artifact   *ArtifactEvent   `json:"artifact,omitempty"`
	Coherence  *CoherenceEvent  `json:"coherence,omitempty"`
	ToolCall   *ToolCallEvent   `json:"toolCall,omitempty"`
	Completion *CompletionEvent `json:"completion,omitempty"`
	Error      *ErrorEvent      `json:"error,omitempty"`
	Delegation *DelegationEvent `json:"delegation,omitempty"`
	Guardrail  *GuardrailEvent  `json:"guardrail,omitempty"`
	Lifecycle  *LifecycleEvent  `json:"lifecycle,omitempty"`
	Progress   *ProgressEvent   `json:"progress,omitempty"`
	Raw        json.RawMessage  `json:"raw,omitempty"`
}

// StatusEvent is a free-text progress/status message from the agent. The tool
// gate caches the most recent one per agent as approval reasoning.
type StatusEvent struct {
	Message string `json:"message"`
	State   string `json:"state,omitempty"`
}

// ArtifactEvent announces a produced or updated artifact.
type ArtifactEvent struct {
	ArtifactID        string   `json:"artifactId"`
	Name              string   `json:"name"`
	Kind              string   `json:"kind"`
	Workstream        string   `json:"workstream"`
	Status            string   `json:"status,omitempty"`
	QualityScore      float64  `json:"qualityScore,omitempty"`
	Summary           string   `json:"summary,omitempty"`
	SourceArtifactIDs []string `json:"sourceArtifactIds,omitempty"`
	URI               string   `json:"uri,omitempty"`
	MimeType          string   `json:"mimeType,omitempty"`
	SizeBytes         int64    `json:"sizeBytes,omitempty"`
	ContentHash       string   `json:"contentHash,omitempty"`
}

// CoherenceEvent reports a cross-workstream inconsistency observed by an agent.
type CoherenceEvent struct {
	IssueID             string   `json:"issueId,omitempty"`
	Kind                string   `json:"kind"`
	Summary             string   `json:"summary"`
	Severity            string   `json:"severity,omitempty"`
	AffectedWorkstreams []string `json:"affectedWorkstreams,omitempty"`
	AffectedArtifactIDs []string `json:"affectedArtifactIds,omitempty"`
}

// ToolCallEvent records an executed (or attempted) tool invocation.
type ToolCallEvent struct {
	ToolName  string          `json:"toolName"`
	ToolArgs  json.RawMessage `json:"toolArgs,omitempty"`
	ToolUseID string          `json:"toolUseId,omitempty"`
	Outcome   string          `json:"outcome,omitempty"`
}

// CompletionEvent signals the agent finished its assignment.
type CompletionEvent struct {
	Summary     string   `json:"summary,omitempty"`
	ArtifactIDs []string `json:"artifactIds,omitempty"`
	Clean       bool     `json:"clean"`
}

// ErrorEvent reports an agent-side failure.
type ErrorEvent struct {
	Message string `json:"message"`
	Fatal   bool   `json:"fatal,omitempty"`
}

// DelegationEvent records work handed from one agent to another.
type DelegationEvent struct {
	TargetRole string `json:"targetRole"`
	Task       string `json:"task"`
}

// GuardrailEvent records a provider-side guardrail intervention.
type GuardrailEvent struct {
	Rule    string `json:"rule"`
	Blocked bool   `json:"blocked"`
	Detail  string `json:"detail,omitempty"`
}

// LifecycleEvent marks transitions driven by the gateway (spawned, paused,
// resumed, killed, checkpointed).
type LifecycleEvent struct {
	Phase  string `json:"phase"`
	Detail string `json:"detail,omitempty"`
}

// Lifecycle phases emitted by the gateway.
const (
	LifecycleSpawned      = "spawned"
	LifecyclePaused       = "paused"
	LifecycleResumed      = "resumed"
	LifecycleKilled       = "killed"
	LifecycleCheckpointed = "checkpointed"
)

// ProgressEvent is a coarse percentage/step counter.
type ProgressEvent struct {
	Percent float64 `json:"percent,omitempty"`
	Step    string  `json:"step,omitempty"`
}

// Validate checks that Type is known and that the payload pointer matching it
// is populated. Malformed events are quarantined, never published.
func (e *AgentEvent) Validate() error {
	switch e.Type {
	case EventTypeStatus:
		if e.Status == nil {
			return fmt.Errorf("status event missing status payload")
		}
	case EventTypeDecision:
		if e.Decision == nil {
			return fmt.Errorf("decision event missing decision payload")
		}
		return e.Decision.Validate()
	case EventTypeArtifact:
		if e.Artifact == nil {
			return fmt.Errorf("artifact event missing artifact payload")
		}
		if e.Artifact.ArtifactID == "" {
			return fmt.Errorf("artifact event missing artifactId")
		}
	case EventTypeCoherence:
		if e.Coherence == nil {
			return fmt.Errorf("coherence event missing coherence payload")
		}
	case EventTypeToolCall:
		if e.ToolCall == nil {
			return fmt.Errorf("tool_call event missing toolCall payload")
		}
	case EventTypeCompletion:
		if e.Completion == nil {
			return fmt.Errorf("completion event missing completion payload")
		}
	case EventTypeError:
		if e.Error == nil {
			return fmt.Errorf("error event missing error payload")
		}
	case EventTypeDelegation:
		if e.Delegation == nil {
			return fmt.Errorf("delegation event missing delegation payload")
		}
	case EventTypeGuardrail:
		if e.Guardrail == nil {
			return fmt.Errorf("guardrail event missing guardrail payload")
		}
	case EventTypeLifecycle:
		if e.Lifecycle == nil {
			return fmt.Errorf("lifecycle event missing lifecycle payload")
		}
	case EventTypeProgress:
		if e.Progress == nil {
			return fmt.Errorf("progress event missing progress payload")
		}
	case EventTypeRawProvider:
		// Raw passthrough, anything goes.
	case "":
		return fmt.Errorf("event type is required")
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	return nil
}

// Validate checks envelope-level required fields plus the inner event.
func (env *EventEnvelope) Validate() error {
	if env.SourceEventID == "" {
		return fmt.Errorf("sourceEventId is required")
	}
	if env.AgentID == "" {
		return fmt.Errorf("agentId is required")
	}
	if env.RunID == "" {
		return fmt.Errorf("runId is required")
	}
	if env.SourceSequence < 0 {
		return fmt.Errorf("sourceSequence must be non-negative")
	}
	return env.Event.Validate()
}
