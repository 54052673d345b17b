package checkpoint

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/test/util"
)

type fakeGateway struct {
	mu       sync.Mutex
	handles  []models.AgentHandle
	captured []string
	failFor  map[string]error
}

func (f *fakeGateway) RequestCheckpoint(ctx context.Context, agentID, decisionID string) (*models.SerializedAgentState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[agentID]; err != nil {
		return nil, err
	}
	f.captured = append(f.captured, agentID)
	return &models.SerializedAgentState{
		AgentID:      agentID,
		Checkpoint:   map[string]any{"sessionId": "sess-" + agentID},
		LastSequence: 7,
		SerializedBy: models.SerializedByDecision,
	}, nil
}

func (f *fakeGateway) ListHandles() []models.AgentHandle { return f.handles }

func (f *fakeGateway) capturedAgents() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.captured...)
}

func newTestService(t *testing.T, gw *fakeGateway, opts Options) *Service {
	t.Helper()
	client := util.SetupTestDatabase(t)
	return NewService(gw, store.New(client), opts)
}

func TestService_CaptureStampsOrigin(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{}
	svc := newTestService(t, gw, Options{})

	t.Run("decision checkpoint", func(t *testing.T) {
		cp, err := svc.Capture(ctx, "a1", "dec-1")
		require.NoError(t, err)
		assert.Equal(t, models.SerializedByDecision, string(cp.SerializedBy))
		require.NotNil(t, cp.DecisionID)
		assert.Equal(t, "dec-1", *cp.DecisionID)
	})

	t.Run("manual capture becomes crash recovery", func(t *testing.T) {
		cp, err := svc.Capture(ctx, "a1", "")
		require.NoError(t, err)
		assert.Equal(t, models.SerializedByCrashRecovery, string(cp.SerializedBy))
		assert.Nil(t, cp.DecisionID)
	})

	t.Run("capture failure surfaces", func(t *testing.T) {
		gw.failFor = map[string]error{"a2": errors.New("adapter unreachable")}
		_, err := svc.Capture(ctx, "a2", "")
		require.ErrorContains(t, err, "adapter unreachable")
	})
}

func TestService_RecordAndRetention(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fakeGateway{}, Options{MaxPerAgent: 2})

	t.Run("nil state rejected", func(t *testing.T) {
		_, err := svc.Record(ctx, nil, "")
		require.Error(t, err)
		assert.True(t, store.IsValidationError(err))
	})

	state := func(seq int64) *models.SerializedAgentState {
		return &models.SerializedAgentState{
			AgentID:      "a1",
			Checkpoint:   map[string]any{"seq": seq},
			LastSequence: seq,
			SerializedBy: models.SerializedByPause,
		}
	}
	for seq := int64(1); seq <= 4; seq++ {
		_, err := svc.Record(ctx, state(seq), "")
		require.NoError(t, err)
	}

	n, err := svc.Count(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := svc.List(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(4), rows[0].State.LastSequence)
	assert.Equal(t, int64(3), rows[1].State.LastSequence)

	latest, err := svc.LatestState(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), latest.LastSequence)
	assert.Equal(t, models.SerializedByPause, latest.SerializedBy)

	deleted, err := svc.Purge(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	_, err = svc.LatestState(ctx, "a1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestService_SweepCadence(t *testing.T) {
	gw := &fakeGateway{
		handles: []models.AgentHandle{
			{AgentID: "a1", Status: models.AgentRunning},
			{AgentID: "a2", Status: models.AgentPaused},
			{AgentID: "a3", Status: models.AgentRunning},
		},
		failFor: map[string]error{"a3": errors.New("no checkpoint support")},
	}
	svc := newTestService(t, gw, Options{SweepIntervalTicks: 2})
	ctx := context.Background()

	svc.OnTick(1)
	assert.Empty(t, gw.capturedAgents())

	svc.OnTick(2)
	assert.Equal(t, []string{"a1"}, gw.capturedAgents())

	svc.OnTick(3)
	assert.Equal(t, []string{"a1"}, gw.capturedAgents())

	svc.OnTick(4)
	assert.Equal(t, []string{"a1", "a1"}, gw.capturedAgents())

	// Sweep snapshots are stored as crash-recovery states.
	rows, err := svc.List(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.SerializedByCrashRecovery, string(rows[0].SerializedBy))

	n, err := svc.Count(ctx, "a3")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestService_SweepDisabled(t *testing.T) {
	gw := &fakeGateway{handles: []models.AgentHandle{{AgentID: "a1", Status: models.AgentRunning}}}
	svc := newTestService(t, gw, Options{})

	for tick := int64(1); tick <= 5; tick++ {
		svc.OnTick(tick)
	}
	assert.Empty(t, gw.capturedAgents())
}
