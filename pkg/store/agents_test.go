package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/test/util"
)

func testBrief(workstream string) models.AgentBrief {
	return models.AgentBrief{
		Role:                "implement the REST layer",
		Workstream:          workstream,
		ReadableWorkstreams: []string{"design"},
		ModelPreference:     "default",
	}
}

func TestStore_RegisterAgent(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	t.Run("creates running agent and its workstream", func(t *testing.T) {
		rec, err := s.RegisterAgent(ctx, "agent-1", "local-http", "sess-1", testBrief("backend"))
		require.NoError(t, err)
		assert.Equal(t, "agent-1", rec.ID)
		assert.Equal(t, "running", string(rec.Status))
		assert.Equal(t, "local-http", rec.PluginName)
		require.NotNil(t, rec.SessionID)
		assert.Equal(t, "sess-1", *rec.SessionID)
		assert.Equal(t, "backend", rec.Brief.Workstream)

		workstreams, err := s.ListWorkstreams(ctx)
		require.NoError(t, err)
		require.Len(t, workstreams, 1)
		assert.Equal(t, "backend", workstreams[0].ID)
	})

	t.Run("rejects duplicate agent id", func(t *testing.T) {
		_, err := s.RegisterAgent(ctx, "agent-dup", "inprocess", "", testBrief("backend"))
		require.NoError(t, err)

		_, err = s.RegisterAgent(ctx, "agent-dup", "inprocess", "", testBrief("backend"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects brief without workstream", func(t *testing.T) {
		brief := testBrief("")
		_, err := s.RegisterAgent(ctx, "agent-bad", "inprocess", "", brief)
		require.Error(t, err)
	})
}

func TestStore_UpdateAgentStatus(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	_, err := s.RegisterAgent(ctx, "agent-1", "inprocess", "", testBrief("backend"))
	require.NoError(t, err)

	t.Run("running to paused and back", func(t *testing.T) {
		rec, err := s.UpdateAgentStatus(ctx, "agent-1", models.AgentPaused)
		require.NoError(t, err)
		assert.Equal(t, "paused", string(rec.Status))

		rec, err = s.UpdateAgentStatus(ctx, "agent-1", models.AgentRunning)
		require.NoError(t, err)
		assert.Equal(t, "running", string(rec.Status))
	})

	t.Run("terminal state cannot be left", func(t *testing.T) {
		_, err := s.UpdateAgentStatus(ctx, "agent-1", models.AgentCompleted)
		require.NoError(t, err)

		_, err = s.UpdateAgentStatus(ctx, "agent-1", models.AgentRunning)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := s.UpdateAgentStatus(ctx, "agent-1", "zombie")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown agent is not found", func(t *testing.T) {
		_, err := s.UpdateAgentStatus(ctx, "ghost", models.AgentPaused)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_ListAgents(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	for _, id := range []string{"agent-a", "agent-b", "agent-c"} {
		_, err := s.RegisterAgent(ctx, id, "inprocess", "", testBrief("backend"))
		require.NoError(t, err)
	}
	_, err := s.UpdateAgentStatus(ctx, "agent-b", models.AgentCompleted)
	require.NoError(t, err)

	all, err := s.ListAgents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := s.ListActiveAgents(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, rec := range active {
		assert.NotEqual(t, "agent-b", rec.ID)
	}
}

func TestStore_RemoveAgent(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	_, err := s.RegisterAgent(ctx, "agent-1", "inprocess", "", testBrief("backend"))
	require.NoError(t, err)

	require.NoError(t, s.RemoveAgent(ctx, "agent-1"))

	_, err = s.GetAgent(ctx, "agent-1")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.RemoveAgent(ctx, "agent-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Workstreams(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	t.Run("ensure is idempotent", func(t *testing.T) {
		require.NoError(t, s.EnsureWorkstream(ctx, "infra", "Infrastructure", ""))
		require.NoError(t, s.EnsureWorkstream(ctx, "infra", "", ""))

		workstreams, err := s.ListWorkstreams(ctx)
		require.NoError(t, err)
		require.Len(t, workstreams, 1)
		assert.Equal(t, "Infrastructure", workstreams[0].Name)
		assert.Equal(t, "active", workstreams[0].Status)
	})

	t.Run("activity touch creates unknown workstreams", func(t *testing.T) {
		require.NoError(t, s.UpdateWorkstreamActivity(ctx, "research"))

		workstreams, err := s.ListWorkstreams(ctx)
		require.NoError(t, err)
		assert.Len(t, workstreams, 2)
	})

	t.Run("empty id rejected", func(t *testing.T) {
		err := s.EnsureWorkstream(ctx, "", "", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
