package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/test/util"
)

func TestStore_Project(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	t.Run("absent until saved", func(t *testing.T) {
		has, err := s.HasProject(ctx)
		require.NoError(t, err)
		assert.False(t, has)

		_, err = s.GetProject(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		row, err := s.SaveProject(ctx, ProjectInput{
			Name:        "billing revamp",
			Description: "rewrite of the invoicing pipeline",
			Config: map[string]any{
				"controlMode": "adaptive",
				"limits":      map[string]any{"maxAgents": float64(4)},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "billing revamp", row.Name)

		has, err := s.HasProject(ctx)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("save is a single-row upsert", func(t *testing.T) {
		_, err := s.SaveProject(ctx, ProjectInput{Name: "billing revamp v2"})
		require.NoError(t, err)

		row, err := s.GetProject(ctx)
		require.NoError(t, err)
		assert.Equal(t, "billing revamp v2", row.Name)
	})

	t.Run("patch deep-merges config", func(t *testing.T) {
		_, err := s.SaveProject(ctx, ProjectInput{
			Name: "billing revamp",
			Config: map[string]any{
				"controlMode": "adaptive",
				"limits":      map[string]any{"maxAgents": float64(4), "maxTicks": float64(100)},
			},
		})
		require.NoError(t, err)

		row, err := s.PatchProject(ctx, map[string]any{
			"limits": map[string]any{"maxAgents": float64(8)},
		})
		require.NoError(t, err)

		assert.Equal(t, "adaptive", row.Config["controlMode"])
		limits, ok := row.Config["limits"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(8), limits["maxAgents"])
		assert.Equal(t, float64(100), limits["maxTicks"])
	})

	t.Run("patch without a project is not found", func(t *testing.T) {
		fresh := New(util.SetupTestDatabase(t))
		_, err := fresh.PatchProject(ctx, map[string]any{"a": 1})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := s.SaveProject(ctx, ProjectInput{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestStore_AuditLog(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	require.NoError(t, s.AppendAudit(ctx, "brake", "global", "engage", "human", map[string]interface{}{
		"reason": "manual stop",
	}))
	require.NoError(t, s.AppendAudit(ctx, "brake", "global", "release", "human", nil))
	require.NoError(t, s.AppendAudit(ctx, "agent", "agent-1", "kill", "human", nil))

	t.Run("newest first", func(t *testing.T) {
		rows, err := s.ListAuditLog(ctx, "", "")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "kill", rows[0].Action)
		assert.Equal(t, "engage", rows[2].Action)
	})

	t.Run("filters by entity", func(t *testing.T) {
		rows, err := s.ListAuditLog(ctx, "brake", "")
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		rows, err = s.ListAuditLog(ctx, "agent", "agent-1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "kill", rows[0].Action)
	})

	t.Run("store writes audit implicitly", func(t *testing.T) {
		_, err := s.UpsertArtifact(ctx, testArtifactEvent("art-audit", "backend"), 0, "agent-9")
		require.NoError(t, err)

		rows, err := s.ListAuditLog(ctx, "artifact", "art-audit")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "create", rows[0].Action)
		require.NotNil(t, rows[0].CallerAgentID)
		assert.Equal(t, "agent-9", *rows[0].CallerAgentID)
	})

	t.Run("validates entity type and action", func(t *testing.T) {
		err := s.AppendAudit(ctx, "", "x", "y", "", nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
