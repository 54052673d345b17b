package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/ent/agentrecord"
	"github.com/steward-io/steward/ent/artifact"
	"github.com/steward-io/steward/ent/coherenceissue"
	"github.com/steward-io/steward/ent/storemeta"
	"github.com/steward-io/steward/ent/workstream"
	"github.com/steward-io/steward/pkg/models"
)

// snapshotRecentIssues caps how many open coherence issues a snapshot carries.
const snapshotRecentIssues = 20

// GetSnapshot assembles the versioned read-model in a single transaction, so
// every list reflects the same version. pendingDecisions comes from the
// decision queue, already priority-sorted; nil is fine.
func (s *Store) GetSnapshot(ctx context.Context, pendingDecisions []models.DecisionEvent) (*models.KnowledgeSnapshot, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	snap := &models.KnowledgeSnapshot{
		GeneratedAt:           time.Now().UTC(),
		Workstreams:           []models.WorkstreamSummary{},
		PendingDecisions:      []models.DecisionEvent{},
		RecentCoherenceIssues: []models.CoherenceIssueSummary{},
		ArtifactIndex:         []models.ArtifactIndexEntry{},
		ActiveAgents:          []models.ActiveAgentSummary{},
	}
	if pendingDecisions != nil {
		snap.PendingDecisions = pendingDecisions
	}

	meta, err := tx.StoreMeta.Query().
		Where(storemeta.ID(metaRowID)).
		Only(ctx)
	switch {
	case err == nil:
		snap.Version = meta.Version
	case ent.IsNotFound(err):
	default:
		return nil, fmt.Errorf("failed to read store version: %w", err)
	}

	workstreams, err := tx.Workstream.Query().
		Order(ent.Desc(workstream.FieldLastActivity)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read workstreams for snapshot: %w", err)
	}
	for _, ws := range workstreams {
		summary := models.WorkstreamSummary{
			ID:     ws.ID,
			Name:   ws.Name,
			Status: ws.Status,
		}
		if ws.LastActivity != nil && *ws.LastActivity != "" {
			summary.LastActivity = *ws.LastActivity
		}
		snap.Workstreams = append(snap.Workstreams, summary)
	}

	issues, err := tx.CoherenceIssue.Query().
		Where(coherenceissue.StatusEQ(coherenceissue.StatusOpen)).
		Order(ent.Desc(coherenceissue.FieldCreatedAt)).
		Limit(snapshotRecentIssues).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read coherence issues for snapshot: %w", err)
	}
	for _, issue := range issues {
		snap.RecentCoherenceIssues = append(snap.RecentCoherenceIssues, models.CoherenceIssueSummary{
			ID:                  issue.ID,
			Kind:                string(issue.Kind),
			Summary:             issue.Summary,
			Severity:            string(issue.Severity),
			Status:              string(issue.Status),
			AffectedWorkstreams: issue.AffectedWorkstreams,
		})
	}

	artifacts, err := tx.Artifact.Query().
		Order(ent.Desc(artifact.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifacts for snapshot: %w", err)
	}
	for _, a := range artifacts {
		entry := models.ArtifactIndexEntry{
			ID:           a.ID,
			Name:         a.Name,
			Kind:         string(a.Kind),
			Workstream:   a.Workstream,
			Status:       string(a.Status),
			QualityScore: a.QualityScore,
			Version:      a.Version,
		}
		if a.Summary != nil {
			entry.Summary = *a.Summary
		}
		snap.ArtifactIndex = append(snap.ArtifactIndex, entry)
	}

	agents, err := tx.AgentRecord.Query().
		Where(agentrecord.StatusIn(
			agentrecord.StatusRunning,
			agentrecord.StatusPaused,
			agentrecord.StatusWaitingOnHuman,
		)).
		Order(ent.Desc(agentrecord.FieldSpawnedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read agents for snapshot: %w", err)
	}
	for _, a := range agents {
		snap.ActiveAgents = append(snap.ActiveAgents, models.ActiveAgentSummary{
			AgentID:    a.ID,
			Role:       a.Role,
			Workstream: a.Workstream,
			Status:     string(a.Status),
		})
	}

	snap.EstimatedTokens = estimateTokens(snap)
	return snap, nil
}

// estimateTokens approximates the snapshot's cost as ceil(JSON length / 4),
// the usual bytes-per-token rule of thumb.
func estimateTokens(snap *models.KnowledgeSnapshot) int {
	raw, err := json.Marshal(snap)
	if err != nil {
		return 0
	}
	return (len(raw) + 3) / 4
}
