package models

import "time"

// WorkstreamSummary is one workstream row in a snapshot.
type WorkstreamSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	LastActivity string `json:"lastActivity,omitempty"`
}

// ArtifactIndexEntry is one artifact row in a snapshot index.
type ArtifactIndexEntry struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Kind         string  `json:"kind"`
	Workstream   string  `json:"workstream"`
	Status       string  `json:"status"`
	QualityScore float64 `json:"qualityScore,omitempty"`
	Version      int     `json:"version"`
	Summary      string  `json:"summary,omitempty"`
}

// ActiveAgentSummary is one live agent row in a snapshot.
type ActiveAgentSummary struct {
	AgentID    string `json:"agentId"`
	Role       string `json:"role"`
	Workstream string `json:"workstream"`
	Status     string `json:"status"`
}

// CoherenceIssueSummary is one open issue row in a snapshot.
type CoherenceIssueSummary struct {
	ID                  string   `json:"id"`
	Kind                string   `json:"kind"`
	Summary             string   `json:"summary"`
	Severity            string   `json:"severity"`
	Status              string   `json:"status"`
	AffectedWorkstreams []string `json:"affectedWorkstreams,omitempty"`
}

// KnowledgeSnapshot is the versioned read-model of project state. A snapshot
// at version V reflects every mutation with version ≤ V.
type KnowledgeSnapshot struct {
	Version               int64                   `json:"version"`
	GeneratedAt           time.Time               `json:"generatedAt"`
	Workstreams           []WorkstreamSummary     `json:"workstreams"`
	PendingDecisions      []DecisionEvent         `json:"pendingDecisions"`
	RecentCoherenceIssues []CoherenceIssueSummary `json:"recentCoherenceIssues"`
	ArtifactIndex         []ArtifactIndexEntry    `json:"artifactIndex"`
	ActiveAgents          []ActiveAgentSummary    `json:"activeAgents"`
	EstimatedTokens       int                     `json:"estimatedTokens"`
}

// Injection priorities, weakest to strongest. Required injections bypass
// cooldown and rate limits; supplementary ones additionally respect the
// context token budget.
const (
	PrioritySupplementary = "supplementary"
	PriorityRecommended   = "recommended"
	PriorityRequired      = "required"
)

// ContextInjection is the payload delivered to an agent through its plugin.
type ContextInjection struct {
	Content         string `json:"content"`
	Format          string `json:"format"`
	SnapshotVersion int64  `json:"snapshotVersion"`
	EstimatedTokens int    `json:"estimatedTokens"`
	Priority        string `json:"priority"`
	Reason          string `json:"reason,omitempty"`
	IsDelta         bool   `json:"isDelta,omitempty"`
}
