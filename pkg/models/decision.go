package models

import (
	"encoding/json"
	"fmt"
)

// Decision kinds.
const (
	DecisionKindOption       = "option"
	DecisionKindToolApproval = "tool_approval"
)

// Severity levels, ordered warning < low < medium < high < critical.
const (
	SeverityWarning  = "warning"
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// severityRank orders severities for threshold comparisons.
var severityRank = map[string]int{
	SeverityWarning:  0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// SeverityAtLeast reports whether severity s is at or above threshold.
// Unknown severities rank below warning.
func SeverityAtLeast(s, threshold string) bool {
	sr, ok := severityRank[s]
	if !ok {
		return false
	}
	tr, ok := severityRank[threshold]
	if !ok {
		return false
	}
	return sr >= tr
}

// KnownSeverity reports whether s is one of the ordered severity levels.
func KnownSeverity(s string) bool {
	_, ok := severityRank[s]
	return ok
}

// Blast radius tags.
const (
	BlastTrivial = "trivial"
	BlastSmall   = "small"
	BlastMedium  = "medium"
	BlastLarge   = "large"
	BlastUnknown = "unknown"
)

// DecisionOption is one selectable alternative in an option decision.
type DecisionOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// DecisionEvent is a queued item requiring human or auto resolution. Kind
// selects between an option pick and a tool approval.
type DecisionEvent struct {
	DecisionID string `json:"decisionId"`
	AgentID    string `json:"agentId"`
	Kind       string `json:"kind"`

	// Option decisions.
	Title               string           `json:"title,omitempty"`
	Summary             string           `json:"summary,omitempty"`
	Severity            string           `json:"severity,omitempty"`
	Confidence          float64          `json:"confidence,omitempty"`
	BlastRadius         string           `json:"blastRadius,omitempty"`
	Options             []DecisionOption `json:"options,omitempty"`
	RecommendedOptionID string           `json:"recommendedOptionId,omitempty"`
	AffectedArtifactIDs []string         `json:"affectedArtifactIds,omitempty"`
	RequiresRationale   bool             `json:"requiresRationale,omitempty"`
	DueByTick           *int64           `json:"dueByTick,omitempty"`

	// Tool-approval decisions.
	ToolName  string          `json:"toolName,omitempty"`
	ToolArgs  json.RawMessage `json:"toolArgs,omitempty"`
	Reasoning string          `json:"reasoning,omitempty"`
	ToolUseID string          `json:"toolUseId,omitempty"`
	BashRisk  string          `json:"bashRisk,omitempty"`
}

// Validate checks the kind-specific required fields.
func (d *DecisionEvent) Validate() error {
	if d.DecisionID == "" {
		return fmt.Errorf("decisionId is required")
	}
	if d.AgentID == "" {
		return fmt.Errorf("agentId is required")
	}
	switch d.Kind {
	case DecisionKindOption:
		if len(d.Options) == 0 {
			return fmt.Errorf("option decision requires at least one option")
		}
	case DecisionKindToolApproval:
		if d.ToolName == "" {
			return fmt.Errorf("tool_approval decision requires toolName")
		}
	default:
		return fmt.Errorf("unknown decision kind %q", d.Kind)
	}
	return nil
}

// Resolution actions for tool approvals.
const (
	ResolutionApprove = "approve"
	ResolutionReject  = "reject"
	ResolutionModify  = "modify"
	// ResolutionApproveAlways approves and asks the gate to stop prompting for
	// this tool from this agent.
	ResolutionApproveAlways = "approve_always"
)

// How a resolution was produced.
const (
	ActionKindReview  = "review"
	ActionKindBlind   = "blind"
	ActionKindTimeout = "timeout"
)

// Resolution is the single terminal outcome attached to a decision.
type Resolution struct {
	Type           string          `json:"type"`
	ChosenOptionID string          `json:"chosenOptionId,omitempty"`
	Action         string          `json:"action,omitempty"`
	ModifiedArgs   json.RawMessage `json:"modifiedArgs,omitempty"`
	Rationale      string          `json:"rationale,omitempty"`
	ActionKind     string          `json:"actionKind,omitempty"`
	AutoResolved   bool            `json:"autoResolved,omitempty"`
	ResolvedBy     string          `json:"resolvedBy,omitempty"`
}

// Validate checks the kind-specific required fields of a resolution.
func (r *Resolution) Validate() error {
	switch r.Type {
	case DecisionKindOption:
		if r.ChosenOptionID == "" {
			return fmt.Errorf("option resolution requires chosenOptionId")
		}
	case DecisionKindToolApproval:
		switch r.Action {
		case ResolutionApprove, ResolutionReject, ResolutionModify, ResolutionApproveAlways:
		default:
			return fmt.Errorf("unknown tool_approval action %q", r.Action)
		}
	default:
		return fmt.Errorf("unknown resolution type %q", r.Type)
	}
	return nil
}
