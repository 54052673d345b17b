package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/test/util"
)

func newProjectService(t *testing.T) (*ProjectService, *store.Store) {
	t.Helper()
	st := store.New(util.SetupTestDatabase(t))
	return NewProjectService(st), st
}

func TestProjectService_SeedCreate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProjectService(t)

	proj, err := svc.Seed(ctx, SeedModeCreate, store.ProjectInput{
		Name:        "Steward",
		Description: "multi-agent control plane",
		Config:      map[string]any{"owner": "platform"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Steward", proj.Name)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "multi-agent control plane", got.Description)
	assert.Equal(t, "platform", got.Config["owner"])

	t.Run("second create refused", func(t *testing.T) {
		_, err := svc.Seed(ctx, SeedModeCreate, store.ProjectInput{Name: "Other"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := svc.Seed(ctx, "replace", store.ProjectInput{Name: "Other"})
		var validErr *store.ValidationError
		require.ErrorAs(t, err, &validErr)
	})

	t.Run("empty mode defaults to create", func(t *testing.T) {
		_, err := svc.Seed(ctx, "", store.ProjectInput{Name: "Other"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestProjectService_SeedMerge(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProjectService(t)

	t.Run("merge without existing creates", func(t *testing.T) {
		proj, err := svc.Seed(ctx, SeedModeMerge, store.ProjectInput{
			Name:   "Steward",
			Config: map[string]any{"owner": "platform", "retention": map[string]any{"days": 30}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Steward", proj.Name)
	})

	t.Run("merge deep-merges config", func(t *testing.T) {
		_, err := svc.Seed(ctx, SeedModeMerge, store.ProjectInput{
			Description: "updated",
			Config:      map[string]any{"retention": map[string]any{"weeks": 4}},
		})
		require.NoError(t, err)

		proj, err := svc.Get(ctx)
		require.NoError(t, err)

		// Name survives because the merge input left it empty.
		assert.Equal(t, "Steward", proj.Name)
		assert.Equal(t, "updated", proj.Description)

		retention, ok := proj.Config["retention"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(30), retention["days"])
		assert.Equal(t, float64(4), retention["weeks"])
		assert.Equal(t, "platform", proj.Config["owner"])
	})
}

func TestProjectService_Patch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProjectService(t)

	_, err := svc.Patch(ctx, map[string]any{})
	var validErr *store.ValidationError
	require.ErrorAs(t, err, &validErr)

	_, err = svc.Patch(ctx, map[string]any{"owner": "x"})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Seed(ctx, SeedModeCreate, store.ProjectInput{
		Name:   "Steward",
		Config: map[string]any{"owner": "platform", "phase": "alpha"},
	})
	require.NoError(t, err)

	proj, err := svc.Patch(ctx, map[string]any{"phase": "beta"})
	require.NoError(t, err)
	assert.Equal(t, "beta", proj.Config["phase"])
	assert.Equal(t, "platform", proj.Config["owner"])
}

func TestProjectService_DraftBrief(t *testing.T) {
	ctx := context.Background()
	svc, st := newProjectService(t)

	t.Run("requires role and workstream", func(t *testing.T) {
		var validErr *store.ValidationError
		_, err := svc.DraftBrief(ctx, DraftBriefInput{Workstream: "ws-core"})
		require.ErrorAs(t, err, &validErr)
		_, err = svc.DraftBrief(ctx, DraftBriefInput{Role: "implementer"})
		require.ErrorAs(t, err, &validErr)
	})

	t.Run("requires a seeded project", func(t *testing.T) {
		_, err := svc.DraftBrief(ctx, DraftBriefInput{Role: "implementer", Workstream: "ws-core"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	_, err := svc.Seed(ctx, SeedModeCreate, store.ProjectInput{
		Name:        "Steward",
		Description: "multi-agent control plane",
		Config: map[string]any{
			"allowedTools":       []string{"Read", "Grep"},
			"escalationProtocol": "page_oncall",
		},
	})
	require.NoError(t, err)

	require.NoError(t, st.EnsureWorkstream(ctx, "ws-core", "Core", ""))
	require.NoError(t, st.EnsureWorkstream(ctx, "ws-api", "API", ""))
	require.NoError(t, st.EnsureWorkstream(ctx, "ws-docs", "Docs", ""))

	t.Run("assembles from project config", func(t *testing.T) {
		brief, err := svc.DraftBrief(ctx, DraftBriefInput{
			Role:       "implementer",
			Workstream: "ws-core",
		})
		require.NoError(t, err)
		require.NoError(t, brief.Validate())

		assert.Equal(t, "implementer", brief.Role)
		assert.Equal(t, "ws-core", brief.Workstream)
		assert.Equal(t, "Steward: multi-agent control plane", brief.ProjectBrief)
		assert.Equal(t, []string{"ws-api", "ws-docs"}, brief.ReadableWorkstreams)
		assert.Equal(t, []string{"Read", "Grep"}, brief.AllowedTools)
		assert.Equal(t, "page_oncall", brief.EscalationProtocol)
		assert.Nil(t, brief.KnowledgeSnapshot)
	})

	t.Run("explicit readable workstreams win", func(t *testing.T) {
		brief, err := svc.DraftBrief(ctx, DraftBriefInput{
			Role:                "reviewer",
			Workstream:          "ws-docs",
			ReadableWorkstreams: []string{"ws-core"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"ws-core"}, brief.ReadableWorkstreams)
	})
}
