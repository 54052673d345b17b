package injection

import "github.com/steward-io/steward/pkg/models"

// Default injection policies per control mode, used when an agent's brief
// does not carry its own policy. Orchestrator mode syncs agents aggressively
// since a human is steering every decision; ecosystem mode stays out of the
// way and only pushes context when coherence is at risk.
var defaultPolicies = map[models.ControlMode]models.ContextInjectionPolicy{
	models.ModeOrchestrator: {
		PeriodicIntervalTicks: int64Ptr(5),
		StalenessThreshold:    intPtr(3),
		CooldownTicks:         2,
		MaxInjectionsPerHour:  12,
		ReactiveEvents: []models.ReactiveTrigger{
			{Kind: models.TriggerDecisionResolved, Workstreams: models.ScopeAll},
			{Kind: models.TriggerArtifactApproved, Workstreams: models.ScopeReadable},
			{Kind: models.TriggerCoherenceIssue, MinSeverity: models.SeverityMedium},
			{Kind: models.TriggerAgentCompleted, Workstreams: models.ScopeReadable},
			{Kind: models.TriggerBriefUpdated},
		},
	},
	models.ModeAdaptive: {
		PeriodicIntervalTicks: int64Ptr(10),
		StalenessThreshold:    intPtr(5),
		CooldownTicks:         3,
		MaxInjectionsPerHour:  6,
		ReactiveEvents: []models.ReactiveTrigger{
			{Kind: models.TriggerDecisionResolved, Workstreams: models.ScopeReadable},
			{Kind: models.TriggerArtifactApproved, Workstreams: models.ScopeReadable},
			{Kind: models.TriggerCoherenceIssue, MinSeverity: models.SeverityHigh},
			{Kind: models.TriggerBriefUpdated},
		},
	},
	models.ModeEcosystem: {
		StalenessThreshold:   intPtr(8),
		CooldownTicks:        5,
		MaxInjectionsPerHour: 4,
		ReactiveEvents: []models.ReactiveTrigger{
			{Kind: models.TriggerCoherenceIssue, MinSeverity: models.SeverityHigh},
			{Kind: models.TriggerBriefUpdated},
		},
	},
}

// DefaultPolicy returns the fallback injection policy for a control mode.
func DefaultPolicy(mode models.ControlMode) models.ContextInjectionPolicy {
	if pol, ok := defaultPolicies[mode]; ok {
		return pol
	}
	return defaultPolicies[models.ModeAdaptive]
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
