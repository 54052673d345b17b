package trust

// Outcome names the behavioral events that move trust scores.
type Outcome string

const (
	OutcomeTaskCompletedClean       Outcome = "task_completed_clean"
	OutcomeTaskCompletedWithIssues  Outcome = "task_completed_with_issues"
	OutcomeHumanApprovesRecommended Outcome = "human_approves_recommended_option"
	OutcomeHumanApprovesToolCall    Outcome = "human_approves_tool_call"
	OutcomeHumanApprovesAlways      Outcome = "human_approves_always"
	OutcomeHumanRejectsToolCall     Outcome = "human_rejects_tool_call"
	OutcomeHumanOverridesDecision   Outcome = "human_overrides_agent_decision"
	OutcomeCoherenceIssue           Outcome = "coherence_issue_from_this_agent"
	OutcomeCoherenceIssueResolved   Outcome = "coherence_issue_resolved"
	OutcomeArtifactApproved         Outcome = "artifact_approved"
	OutcomeArtifactRejected         Outcome = "artifact_rejected"
	OutcomeGuardrailViolation       Outcome = "guardrail_violation"
)

// outcomeDeltas maps each outcome to its raw score delta before
// diminishing-returns and risk weighting are applied.
var outcomeDeltas = map[Outcome]int{
	OutcomeTaskCompletedClean:       3,
	OutcomeTaskCompletedWithIssues:  -1,
	OutcomeHumanApprovesRecommended: 2,
	OutcomeHumanApprovesToolCall:    1,
	OutcomeHumanApprovesAlways:      3,
	OutcomeHumanRejectsToolCall:     -2,
	OutcomeHumanOverridesDecision:   -3,
	OutcomeCoherenceIssue:           -2,
	OutcomeCoherenceIssueResolved:   1,
	OutcomeArtifactApproved:         2,
	OutcomeArtifactRejected:         -2,
	OutcomeGuardrailViolation:       -3,
}

// Delta returns the raw delta for an outcome. Unknown outcomes carry no
// weight so callers can pass through adapter-defined outcomes safely.
func (o Outcome) Delta() int {
	return outcomeDeltas[o]
}

// Known reports whether the outcome is part of the scoring table.
func (o Outcome) Known() bool {
	_, ok := outcomeDeltas[o]
	return ok
}
