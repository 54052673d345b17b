package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/test/util"
)

func TestStore_GetSnapshot(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	// Seed one of everything snapshot-visible.
	_, err := s.RegisterAgent(ctx, "agent-1", "inprocess", "", testBrief("backend"))
	require.NoError(t, err)
	_, err = s.UpsertArtifact(ctx, testArtifactEvent("art-1", "backend"), 0, "agent-1")
	require.NoError(t, err)
	_, err = s.StoreCoherenceIssue(ctx, CoherenceIssueInput{
		Kind:                "contradiction",
		Summary:             "conflicting schema definitions",
		Severity:            "high",
		AffectedWorkstreams: []string{"backend"},
	})
	require.NoError(t, err)

	t.Run("collects all sections", func(t *testing.T) {
		snap, err := s.GetSnapshot(ctx, nil)
		require.NoError(t, err)

		assert.NotZero(t, snap.Version)
		assert.False(t, snap.GeneratedAt.IsZero())

		require.Len(t, snap.Workstreams, 1)
		assert.Equal(t, "backend", snap.Workstreams[0].ID)

		require.Len(t, snap.ArtifactIndex, 1)
		assert.Equal(t, "art-1", snap.ArtifactIndex[0].ID)
		assert.Equal(t, 1, snap.ArtifactIndex[0].Version)

		require.Len(t, snap.ActiveAgents, 1)
		assert.Equal(t, "agent-1", snap.ActiveAgents[0].AgentID)

		require.Len(t, snap.RecentCoherenceIssues, 1)
		assert.Equal(t, "high", snap.RecentCoherenceIssues[0].Severity)

		assert.Empty(t, snap.PendingDecisions)
	})

	t.Run("embeds pending decisions from the queue", func(t *testing.T) {
		pending := []models.DecisionEvent{{
			DecisionID: "dec-1",
			Kind:       models.DecisionKindToolApproval,
			AgentID:    "agent-1",
			Severity:   "high",
		}}
		snap, err := s.GetSnapshot(ctx, pending)
		require.NoError(t, err)
		require.Len(t, snap.PendingDecisions, 1)
		assert.Equal(t, "dec-1", snap.PendingDecisions[0].DecisionID)
	})

	t.Run("estimated tokens tracks JSON size", func(t *testing.T) {
		snap, err := s.GetSnapshot(ctx, nil)
		require.NoError(t, err)

		raw, err := json.Marshal(snap)
		require.NoError(t, err)
		// The estimate is computed before EstimatedTokens itself is set, so
		// allow the few bytes that field adds.
		assert.InDelta(t, (len(raw)+3)/4, snap.EstimatedTokens, 4)
		assert.Greater(t, snap.EstimatedTokens, 0)
	})

	t.Run("resolved issues drop out of the snapshot", func(t *testing.T) {
		issues, err := s.ListCoherenceIssues(ctx, "open")
		require.NoError(t, err)
		require.Len(t, issues, 1)

		_, err = s.ResolveCoherenceIssue(ctx, issues[0].ID, "fixed", "human")
		require.NoError(t, err)

		snap, err := s.GetSnapshot(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, snap.RecentCoherenceIssues)
	})

	t.Run("terminal agents drop out of the snapshot", func(t *testing.T) {
		_, err := s.UpdateAgentStatus(ctx, "agent-1", models.AgentCompleted)
		require.NoError(t, err)

		snap, err := s.GetSnapshot(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, snap.ActiveAgents)
	})
}

func TestStore_VersionMonotonicity(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	v0, err := s.GetVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v0)

	var last int64
	mutate := []func() error{
		func() error {
			_, err := s.UpsertArtifact(ctx, testArtifactEvent("art-m", "backend"), 0, "a")
			return err
		},
		func() error {
			_, err := s.RegisterAgent(ctx, "agent-m", "inprocess", "", testBrief("backend"))
			return err
		},
		func() error {
			_, err := s.StoreCoherenceIssue(ctx, CoherenceIssueInput{Kind: "gap", Summary: "missing tests"})
			return err
		},
		func() error { return s.EnsureWorkstream(ctx, "new-ws", "", "") },
		func() error {
			_, err := s.UpdateAgentStatus(ctx, "agent-m", models.AgentPaused)
			return err
		},
	}
	for i, fn := range mutate {
		require.NoError(t, fn(), "mutation %d", i)
		v, err := s.GetVersion(ctx)
		require.NoError(t, err)
		assert.Greater(t, v, last, "mutation %d must bump the version", i)
		last = v
	}

	// Rejected writes must not bump.
	_, err = s.UpsertArtifact(ctx, testArtifactEvent("art-m", "backend"), 99, "a")
	require.Error(t, err)
	v, err := s.GetVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, last, v)

	// Snapshot version equals the counter.
	snap, err := s.GetSnapshot(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, v, snap.Version)
}
