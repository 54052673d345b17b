package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/test/util"
)

func testArtifactEvent(id, workstream string) *models.ArtifactEvent {
	return &models.ArtifactEvent{
		ArtifactID: id,
		Name:       "api design notes",
		Kind:       "doc",
		Workstream: workstream,
		Status:     "draft",
	}
}

func TestStore_UpsertArtifact(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	t.Run("creates at version 1 when expectedVersion is 0", func(t *testing.T) {
		ev := testArtifactEvent("art-create", "backend")
		ev.QualityScore = 0.8
		ev.Summary = "initial draft"
		ev.SourceArtifactIDs = []string{"art-parent"}

		row, err := s.UpsertArtifact(ctx, ev, 0, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, 1, row.Version)
		assert.Equal(t, "agent-1", row.CreatedBy)
		assert.Equal(t, 0.8, row.QualityScore)
		assert.Equal(t, []string{"art-parent"}, row.Sources)

		// Workstream row materialized alongside the artifact.
		workstreams, err := s.ListWorkstreams(ctx)
		require.NoError(t, err)
		require.Len(t, workstreams, 1)
		assert.Equal(t, "backend", workstreams[0].ID)
	})

	t.Run("increments version on matching expectedVersion", func(t *testing.T) {
		ev := testArtifactEvent("art-seq", "backend")
		_, err := s.UpsertArtifact(ctx, ev, 0, "agent-1")
		require.NoError(t, err)

		ev.Status = "in_review"
		row, err := s.UpsertArtifact(ctx, ev, 1, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, 2, row.Version)

		v, err := s.GetArtifactVersion(ctx, "art-seq")
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	})

	t.Run("conflicts on version mismatch and leaves row unchanged", func(t *testing.T) {
		ev := testArtifactEvent("art-conflict", "backend")
		_, err := s.UpsertArtifact(ctx, ev, 0, "agent-a")
		require.NoError(t, err)

		// Writer B advances the artifact to v2.
		evB := testArtifactEvent("art-conflict", "backend")
		evB.Summary = "b wins"
		_, err = s.UpsertArtifact(ctx, evB, 1, "agent-b")
		require.NoError(t, err)

		// Writer A retries with the version it read before B's write.
		evA := testArtifactEvent("art-conflict", "backend")
		evA.Summary = "a stale"
		_, err = s.UpsertArtifact(ctx, evA, 1, "agent-a")
		require.Error(t, err)

		var conflict *ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, 1, conflict.Expected)
		assert.Equal(t, 2, conflict.Actual)
		assert.True(t, errors.Is(err, ErrConflict))

		row, err := s.GetArtifact(ctx, "art-conflict")
		require.NoError(t, err)
		assert.Equal(t, 2, row.Version)
		require.NotNil(t, row.Summary)
		assert.Equal(t, "b wins", *row.Summary)
	})

	t.Run("conflicts when row absent and expectedVersion nonzero", func(t *testing.T) {
		_, err := s.UpsertArtifact(ctx, testArtifactEvent("art-missing", "backend"), 3, "agent-1")
		require.Error(t, err)

		var conflict *ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, 3, conflict.Expected)
		assert.Equal(t, 0, conflict.Actual)
	})

	t.Run("bumps global version on every accepted write", func(t *testing.T) {
		before, err := s.GetVersion(ctx)
		require.NoError(t, err)

		_, err = s.UpsertArtifact(ctx, testArtifactEvent("art-gv", "backend"), 0, "agent-1")
		require.NoError(t, err)

		after, err := s.GetVersion(ctx)
		require.NoError(t, err)
		assert.Greater(t, after, before)
	})

	t.Run("rejects empty artifact id", func(t *testing.T) {
		_, err := s.UpsertArtifact(ctx, &models.ArtifactEvent{Workstream: "backend"}, 0, "agent-1")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestStore_UpsertArtifact_ConcurrentSameVersion(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	_, err := s.UpsertArtifact(ctx, testArtifactEvent("art-race", "backend"), 0, "seed")
	require.NoError(t, err)

	// Two writers race with the same observed version; exactly one may win.
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ev := testArtifactEvent("art-race", "backend")
			_, results[i] = s.UpsertArtifact(ctx, ev, 1, "racer")
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	v, err := s.GetArtifactVersion(ctx, "art-race")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestStore_StoreArtifact_LegacyUnchecked(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	ev := testArtifactEvent("art-legacy", "frontend")
	row, err := s.StoreArtifact(ctx, ev, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, 1, row.Version)

	// No expectedVersion guard: repeated writes keep incrementing.
	ev.Status = "approved"
	row, err = s.StoreArtifact(ctx, ev, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, 2, row.Version)
	assert.Equal(t, "approved", string(row.Status))
}

func TestStore_GetArtifact(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		_, err := s.GetArtifact(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("version of absent artifact is 0", func(t *testing.T) {
		v, err := s.GetArtifactVersion(ctx, "nope")
		require.NoError(t, err)
		assert.Equal(t, 0, v)
	})

	t.Run("list filters by workstream", func(t *testing.T) {
		_, err := s.StoreArtifact(ctx, testArtifactEvent("art-be", "backend"), "agent-1")
		require.NoError(t, err)
		_, err = s.StoreArtifact(ctx, testArtifactEvent("art-fe", "frontend"), "agent-1")
		require.NoError(t, err)

		all, err := s.ListArtifacts(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 2)

		backend, err := s.ListArtifacts(ctx, "backend")
		require.NoError(t, err)
		require.Len(t, backend, 1)
		assert.Equal(t, "art-be", backend[0].ID)
	})
}

func TestStore_ArtifactContent(t *testing.T) {
	client := util.SetupTestDatabase(t)
	s := New(client)
	ctx := context.Background()

	res, err := s.StoreArtifactContent(ctx, "agent-1", "art-1", []byte("v1 contents"), "text/plain")
	require.NoError(t, err)
	assert.True(t, res.Stored)
	assert.Equal(t, "artifact://agent-1/art-1", res.BackendURI)

	// Upsert keyed by (agent, artifact): same pair overwrites.
	res, err = s.StoreArtifactContent(ctx, "agent-1", "art-1", []byte("v2 contents"), "")
	require.NoError(t, err)
	assert.Equal(t, "artifact://agent-1/art-1", res.BackendURI)

	row, err := s.GetArtifactContent(ctx, "agent-1", "art-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2 contents"), row.Content)
	require.NotNil(t, row.MimeType)
	assert.Equal(t, "text/plain", *row.MimeType)

	// Lookup without agent id resolves the latest upload.
	row, err = s.GetArtifactContent(ctx, "", "art-1")
	require.NoError(t, err)
	assert.Equal(t, "agent-1", row.AgentID)

	_, err = s.GetArtifactContent(ctx, "", "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}
