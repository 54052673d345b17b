// Package checkpoint persists agent state snapshots and drives the periodic
// capture sweep. Snapshots arrive from four places: pause, kill grace,
// decision checkpoints, and the tick-cadence sweep over running agents.
package checkpoint

import (
	"context"
	"log/slog"
	"time"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
)

// Capturer is the gateway slice the service needs: ask a live agent for a
// fresh snapshot and enumerate who is running.
type Capturer interface {
	RequestCheckpoint(ctx context.Context, agentID, decisionID string) (*models.SerializedAgentState, error)
	ListHandles() []models.AgentHandle
}

// Store is the persistence slice the service writes through.
type Store interface {
	StoreCheckpoint(ctx context.Context, state models.SerializedAgentState, decisionID string, maxPerAgent int) (*ent.Checkpoint, error)
	GetLatestCheckpoint(ctx context.Context, agentID string) (*ent.Checkpoint, error)
	GetCheckpoints(ctx context.Context, agentID string) ([]*ent.Checkpoint, error)
	GetCheckpointCount(ctx context.Context, agentID string) (int, error)
	DeleteCheckpoints(ctx context.Context, agentID string) (int, error)
}

// Options tunes retention and the periodic sweep.
type Options struct {
	// MaxPerAgent bounds retained checkpoints per agent; <= 0 selects the
	// store default.
	MaxPerAgent int
	// SweepIntervalTicks captures a snapshot of every running agent each
	// time the tick counter crosses a multiple of it. 0 disables the sweep.
	SweepIntervalTicks int64
	// SweepCaptureTimeout bounds each per-agent capture during a sweep.
	SweepCaptureTimeout time.Duration
}

const defaultSweepCaptureTimeout = 15 * time.Second

// Service records and serves checkpoints. Capture paths that already hold a
// SerializedAgentState (pause, kill grace) go through Record; Capture asks
// the adapter for a fresh one.
type Service struct {
	gateway Capturer
	store   Store
	opts    Options
}

// NewService builds the checkpoint service.
func NewService(gateway Capturer, st Store, opts Options) *Service {
	if opts.SweepCaptureTimeout <= 0 {
		opts.SweepCaptureTimeout = defaultSweepCaptureTimeout
	}
	return &Service{gateway: gateway, store: st, opts: opts}
}

// Capture asks the adapter for a snapshot of the agent and persists it. The
// service owns the serializedBy stamp for captures it initiates: snapshots
// taken for a decision are decision checkpoints, everything else is a
// crash-recovery snapshot.
func (s *Service) Capture(ctx context.Context, agentID, decisionID string) (*ent.Checkpoint, error) {
	state, err := s.gateway.RequestCheckpoint(ctx, agentID, decisionID)
	if err != nil {
		return nil, err
	}
	if decisionID != "" {
		state.SerializedBy = models.SerializedByDecision
	} else {
		state.SerializedBy = models.SerializedByCrashRecovery
	}
	return s.Record(ctx, state, decisionID)
}

// Record persists a state the caller already holds.
func (s *Service) Record(ctx context.Context, state *models.SerializedAgentState, decisionID string) (*ent.Checkpoint, error) {
	if state == nil {
		return nil, store.NewValidationError("state", "missing serialized state")
	}
	return s.store.StoreCheckpoint(ctx, *state, decisionID, s.opts.MaxPerAgent)
}

// Latest returns the newest checkpoint row for the agent.
func (s *Service) Latest(ctx context.Context, agentID string) (*ent.Checkpoint, error) {
	return s.store.GetLatestCheckpoint(ctx, agentID)
}

// LatestState returns a copy of the newest serialized state, the resume
// input.
func (s *Service) LatestState(ctx context.Context, agentID string) (*models.SerializedAgentState, error) {
	cp, err := s.store.GetLatestCheckpoint(ctx, agentID)
	if err != nil {
		return nil, err
	}
	state := cp.State
	return &state, nil
}

// List returns every retained checkpoint for the agent, newest first.
func (s *Service) List(ctx context.Context, agentID string) ([]*ent.Checkpoint, error) {
	return s.store.GetCheckpoints(ctx, agentID)
}

// Count reports how many checkpoints the agent has retained.
func (s *Service) Count(ctx context.Context, agentID string) (int, error) {
	return s.store.GetCheckpointCount(ctx, agentID)
}

// Purge drops all checkpoints for the agent.
func (s *Service) Purge(ctx context.Context, agentID string) (int, error) {
	return s.store.DeleteCheckpoints(ctx, agentID)
}

// OnTick runs the periodic sweep: on every SweepIntervalTicks-th tick it
// snapshots each running agent, best-effort. Wire as a tick subscriber.
func (s *Service) OnTick(tick int64) {
	if s.opts.SweepIntervalTicks <= 0 || tick <= 0 || tick%s.opts.SweepIntervalTicks != 0 {
		return
	}
	for _, handle := range s.gateway.ListHandles() {
		if handle.Status != models.AgentRunning {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), s.opts.SweepCaptureTimeout)
		_, err := s.Capture(ctx, handle.AgentID, "")
		cancel()
		if err != nil {
			slog.Warn("Periodic checkpoint failed", "agent_id", handle.AgentID, "tick", tick, "error", err)
		}
	}
}
