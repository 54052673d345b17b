package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/test/util"
)

func TestStore_CoherenceIssues(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	t.Run("stores open issue with generated id", func(t *testing.T) {
		issue, err := s.StoreCoherenceIssue(ctx, CoherenceIssueInput{
			Kind:                "contradiction",
			Summary:             "auth flow described twice with different token lifetimes",
			Severity:            "high",
			AffectedWorkstreams: []string{"backend", "docs"},
			AffectedArtifactIDs: []string{"art-1", "art-2"},
			DetectedBy:          "agent-1",
			DetectedAtTick:      12,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, issue.ID)
		assert.Equal(t, "open", string(issue.Status))
		assert.Equal(t, "high", string(issue.Severity))
		assert.Equal(t, int64(12), issue.DetectedAtTick)

		// Affected workstreams get materialized.
		workstreams, err := s.ListWorkstreams(ctx)
		require.NoError(t, err)
		assert.Len(t, workstreams, 2)
	})

	t.Run("defaults severity to medium", func(t *testing.T) {
		issue, err := s.StoreCoherenceIssue(ctx, CoherenceIssueInput{
			Kind:    "duplication",
			Summary: "two agents own the same config file",
		})
		require.NoError(t, err)
		assert.Equal(t, "medium", string(issue.Severity))
	})

	t.Run("list filters by status", func(t *testing.T) {
		open, err := s.ListCoherenceIssues(ctx, "open")
		require.NoError(t, err)
		assert.Len(t, open, 2)

		all, err := s.ListCoherenceIssues(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("resolve transitions open to resolved exactly once", func(t *testing.T) {
		issue, err := s.StoreCoherenceIssue(ctx, CoherenceIssueInput{
			IssueID: "issue-r",
			Kind:    "gap",
			Summary: "no error handling for the retry path",
		})
		require.NoError(t, err)

		resolved, err := s.ResolveCoherenceIssue(ctx, issue.ID, "added retry error handling", "human")
		require.NoError(t, err)
		assert.Equal(t, "resolved", string(resolved.Status))
		require.NotNil(t, resolved.Resolution)
		assert.Equal(t, "added retry error handling", *resolved.Resolution)
		assert.NotNil(t, resolved.ResolvedAt)

		_, err = s.ResolveCoherenceIssue(ctx, issue.ID, "again", "human")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("resolve of unknown issue is not found", func(t *testing.T) {
		_, err := s.ResolveCoherenceIssue(ctx, "ghost", "n/a", "human")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates kind and summary", func(t *testing.T) {
		_, err := s.StoreCoherenceIssue(ctx, CoherenceIssueInput{Summary: "x"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = s.StoreCoherenceIssue(ctx, CoherenceIssueInput{Kind: "gap"})
		require.Error(t, err)
	})
}
