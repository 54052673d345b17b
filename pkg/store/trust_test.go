package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/test/util"
)

func TestStore_TrustScores(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	t.Run("unknown agent defaults to 50 with no domains", func(t *testing.T) {
		profile, err := s.GetTrustProfile(ctx, "fresh")
		require.NoError(t, err)
		assert.Equal(t, 50, profile.Score)
		assert.Empty(t, profile.Domains)
	})

	t.Run("delta applies from the default", func(t *testing.T) {
		score, err := s.UpdateTrust(ctx, "agent-1", +3, "task_completed_clean")
		require.NoError(t, err)
		assert.Equal(t, 53, score)

		score, err = s.UpdateTrust(ctx, "agent-1", -5, "human_rejects_tool_call")
		require.NoError(t, err)
		assert.Equal(t, 48, score)
	})

	t.Run("clamped to bounds", func(t *testing.T) {
		score, err := s.UpdateTrust(ctx, "agent-high", +1000, "bulk")
		require.NoError(t, err)
		assert.Equal(t, 100, score)

		score, err = s.UpdateTrust(ctx, "agent-low", -1000, "bulk")
		require.NoError(t, err)
		assert.Equal(t, 0, score)
	})

	t.Run("set overwrites absolutely", func(t *testing.T) {
		_, err := s.UpdateTrust(ctx, "agent-set", +10, "seed")
		require.NoError(t, err)

		score, err := s.SetTrustScore(ctx, "agent-set", 42, "decay")
		require.NoError(t, err)
		assert.Equal(t, 42, score)

		profile, err := s.GetTrustProfile(ctx, "agent-set")
		require.NoError(t, err)
		assert.Equal(t, 42, profile.Score)
	})
}

func TestStore_DomainTrustScores(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	require.NoError(t, s.StoreDomainTrustScores(ctx, "agent-1", map[string]int{
		"code": 60,
		"doc":  45,
	}))

	scores, err := s.GetDomainTrustScores(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"code": 60, "doc": 45}, scores)

	// Partial update leaves unmentioned domains alone and clamps new values.
	require.NoError(t, s.StoreDomainTrustScores(ctx, "agent-1", map[string]int{
		"code": 130,
	}))

	scores, err = s.GetDomainTrustScores(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"code": 100, "doc": 45}, scores)

	// Domains surface through the profile too.
	profile, err := s.GetTrustProfile(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, 50, profile.Score)
	assert.Equal(t, map[string]int{"code": 100, "doc": 45}, profile.Domains)
}
