// Package services holds the orchestration layer between the HTTP surface
// and the core components: agent lifecycle, event ingestion, and project
// configuration. Handlers transform requests into service inputs; services
// own the multi-component side-effect pipelines.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"dario.cat/mergo"

	"github.com/steward-io/steward/ent"
	"github.com/steward-io/steward/pkg/brake"
	"github.com/steward-io/steward/pkg/checkpoint"
	"github.com/steward-io/steward/pkg/decision"
	"github.com/steward-io/steward/pkg/gateway"
	"github.com/steward-io/steward/pkg/injection"
	"github.com/steward-io/steward/pkg/metrics"
	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
	"github.com/steward-io/steward/pkg/trust"
)

// killGraceTimeoutMs is the checkpoint window granted to an agent being
// killed through the API or the brake.
const killGraceTimeoutMs = 5000

// Ticks reports the current logical time.
type Ticks interface {
	Current() int64
}

// StateNotifier pushes a fresh state_sync frame to dashboard clients after
// a roster change. Implemented by the API server.
type StateNotifier interface {
	BroadcastStateSync()
}

// AgentService orchestrates the agent lifecycle. Every spawn, pause, resume,
// and kill flows through here so the persisted registry, trust engine,
// injection scheduler, decision queue, and dashboard stay in step with the
// sandbox state the gateway owns.
type AgentService struct {
	gateway     *gateway.Gateway
	store       *store.Store
	trust       *trust.Engine
	scheduler   *injection.Scheduler
	queue       *decision.Queue
	checkpoints *checkpoint.Service
	ticks       Ticks

	notifier StateNotifier
	metrics  *metrics.Metrics
	snaps    injection.SnapshotProvider

	// agent id → primary workstream, maintained on lifecycle transitions so
	// event classification never queries the store on the hot path.
	mu          sync.RWMutex
	workstreams map[string]string
}

// NewAgentService wires the lifecycle pipeline.
func NewAgentService(gw *gateway.Gateway, st *store.Store, engine *trust.Engine, sched *injection.Scheduler, queue *decision.Queue, checkpoints *checkpoint.Service, ticks Ticks) *AgentService {
	if gw == nil {
		panic("NewAgentService: gateway must not be nil")
	}
	if st == nil {
		panic("NewAgentService: store must not be nil")
	}
	if engine == nil {
		panic("NewAgentService: trust engine must not be nil")
	}
	return &AgentService{
		gateway:     gw,
		store:       st,
		trust:       engine,
		scheduler:   sched,
		queue:       queue,
		checkpoints: checkpoints,
		ticks:       ticks,
		workstreams: make(map[string]string),
	}
}

// SetStateNotifier attaches the dashboard push channel. Optional.
func (s *AgentService) SetStateNotifier(n StateNotifier) { s.notifier = n }

// SetMetrics attaches instrumentation. Optional.
func (s *AgentService) SetMetrics(m *metrics.Metrics) { s.metrics = m }

// SetSnapshots attaches the snapshot source consulted at spawn. Optional.
func (s *AgentService) SetSnapshots(p injection.SnapshotProvider) { s.snaps = p }

// Spawn launches an agent from a brief: sandbox first, then registry, trust,
// and scheduler registration, then a state_sync push. A registry failure
// tears the fresh sandbox down again so no orphan survives the error.
func (s *AgentService) Spawn(ctx context.Context, brief models.AgentBrief) (*models.AgentHandle, error) {
	if err := brief.Validate(); err != nil {
		return nil, store.NewValidationError("brief", err.Error())
	}

	if brief.KnowledgeSnapshot == nil && s.snaps != nil {
		snap, serr := s.snaps.Snapshot(ctx)
		if serr != nil {
			slog.Warn("Spawning without knowledge snapshot", "error", serr)
		} else {
			brief.KnowledgeSnapshot = snap
		}
	}

	handle, err := s.gateway.Spawn(ctx, &brief)
	if err != nil {
		return nil, err
	}
	brief.AgentID = handle.AgentID

	if _, err := s.store.RegisterAgent(ctx, handle.AgentID, handle.PluginName, handle.SessionID, brief); err != nil {
		if _, killErr := s.gateway.Kill(ctx, handle.AgentID, models.KillOptions{}); killErr != nil {
			slog.Error("Failed to tear down sandbox after registry failure",
				"agent_id", handle.AgentID, "error", killErr)
		}
		s.gateway.Remove(handle.AgentID)
		return nil, err
	}

	s.trust.RegisterAgent(handle.AgentID, s.currentTick())
	if s.scheduler != nil {
		s.scheduler.RegisterAgent(handle.AgentID, brief)
	}
	s.setWorkstream(handle.AgentID, brief.Workstream)

	s.publishState()
	s.refreshAgentMetrics()
	if s.metrics != nil {
		s.metrics.SetTrustScore(handle.AgentID, s.trust.GetScore(handle.AgentID))
	}
	return handle, nil
}

// Pause serializes a running agent and persists the checkpoint.
func (s *AgentService) Pause(ctx context.Context, agentID string) (*ent.Checkpoint, error) {
	state, err := s.gateway.Pause(ctx, agentID)
	if err != nil {
		return nil, err
	}

	var cp *ent.Checkpoint
	if s.checkpoints != nil {
		cp, err = s.checkpoints.Record(ctx, state, "")
		if err != nil {
			slog.Error("Pause checkpoint not persisted", "agent_id", agentID, "error", err)
		}
	}
	if _, err := s.store.UpdateAgentStatus(ctx, agentID, models.AgentPaused); err != nil {
		slog.Error("Failed to persist paused status", "agent_id", agentID, "error", err)
	}

	s.publishState()
	s.refreshAgentMetrics()
	return cp, nil
}

// Resume revives an agent from its latest checkpoint. Without one the
// operation fails with NotFound.
func (s *AgentService) Resume(ctx context.Context, agentID string) (*models.AgentHandle, error) {
	if s.checkpoints == nil {
		return nil, fmt.Errorf("checkpoint service unavailable: %w", store.ErrNotFound)
	}
	state, err := s.checkpoints.LatestState(ctx, agentID)
	if err != nil {
		return nil, err
	}

	handle, err := s.gateway.Resume(ctx, state)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.UpdateAgentStatus(ctx, agentID, models.AgentRunning); err != nil {
		slog.Error("Failed to persist resumed status", "agent_id", agentID, "error", err)
	}
	if handle.SessionID != "" {
		if err := s.store.SetAgentSession(ctx, agentID, handle.SessionID); err != nil {
			slog.Warn("Failed to record resumed session", "agent_id", agentID, "error", err)
		}
	}
	if state.Brief != nil {
		if s.scheduler != nil {
			s.scheduler.RegisterAgent(agentID, *state.Brief)
		}
		s.setWorkstream(agentID, state.Brief.Workstream)
	}

	s.publishState()
	s.refreshAgentMetrics()
	return handle, nil
}

// Kill terminates an agent with a checkpoint grace window, persists any
// final state, and elevates the agent's orphaned decisions to triage.
func (s *AgentService) Kill(ctx context.Context, agentID string) (*models.KillResult, error) {
	result, err := s.gateway.Kill(ctx, agentID, models.KillOptions{
		Grace:          true,
		GraceTimeoutMs: killGraceTimeoutMs,
	})
	if err != nil {
		return nil, err
	}

	if result.State != nil && s.checkpoints != nil {
		if _, cerr := s.checkpoints.Record(ctx, result.State, ""); cerr != nil {
			slog.Warn("Kill-grace checkpoint not persisted", "agent_id", agentID, "error", cerr)
		}
	}
	if _, err := s.store.UpdateAgentStatus(ctx, agentID, models.AgentCompleted); err != nil {
		slog.Error("Failed to persist killed status", "agent_id", agentID, "error", err)
	}

	if s.queue != nil {
		orphaned := s.queue.HandleAgentKilled(agentID)
		if len(orphaned) > 0 {
			slog.Info("Elevated orphaned decisions to triage",
				"agent_id", agentID, "count", len(orphaned))
		}
	}
	if s.scheduler != nil {
		s.scheduler.UnregisterAgent(agentID)
	}
	s.trust.RemoveAgent(agentID)
	s.gateway.Remove(agentID)
	s.dropWorkstream(agentID)

	s.publishState()
	s.refreshAgentMetrics()
	if s.metrics != nil {
		s.metrics.DropAgent(agentID)
	}
	return result, nil
}

// PatchBrief merges a partial brief into the stored one, persists the merge,
// forwards the raw patch to a running sandbox, and schedules the required
// injection that accompanies every brief change. Returns the merged brief
// and whether the injection was delivered.
func (s *AgentService) PatchBrief(ctx context.Context, agentID string, patch map[string]any) (*models.AgentBrief, bool, error) {
	if len(patch) == 0 {
		return nil, false, store.NewValidationError("brief", "patch cannot be empty")
	}
	rec, err := s.store.GetAgent(ctx, agentID)
	if err != nil {
		return nil, false, err
	}

	merged, err := mergeBrief(rec.Brief, patch)
	if err != nil {
		return nil, false, store.NewValidationError("brief", err.Error())
	}
	merged.AgentID = agentID
	if err := merged.Validate(); err != nil {
		return nil, false, store.NewValidationError("brief", err.Error())
	}

	if _, err := s.store.UpdateAgentBrief(ctx, agentID, *merged); err != nil {
		return nil, false, err
	}
	s.setWorkstream(agentID, merged.Workstream)

	if status, live := s.gateway.AgentStatus(agentID); live && status == models.AgentRunning {
		if err := s.gateway.UpdateBrief(ctx, agentID, patch); err != nil {
			slog.Warn("Brief patch not delivered to sandbox", "agent_id", agentID, "error", err)
		}
	}

	injected := false
	if s.scheduler != nil {
		s.scheduler.UpdateBrief(agentID, *merged)
		injected = s.scheduler.OnBriefUpdated(agentID)
	}
	return merged, injected, nil
}

// mergeBrief overlays a JSON patch onto an existing brief. Slices and nested
// structs present in the patch replace their stored counterparts wholesale.
func mergeBrief(current models.AgentBrief, patch map[string]any) (*models.AgentBrief, error) {
	raw, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	base := map[string]any{}
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, err
	}
	if err := mergo.Merge(&base, patch, mergo.WithOverride); err != nil {
		return nil, err
	}
	mergedRaw, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	var merged models.AgentBrief
	if err := json.Unmarshal(mergedRaw, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// WorkstreamOf reports the primary workstream of a tracked agent.
func (s *AgentService) WorkstreamOf(agentID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ws, ok := s.workstreams[agentID]
	return ws, ok
}

// RestoreFromStore rehydrates runtime state after a restart. Paused agents
// get their trust scores, scheduler tracking, and workstream mapping back so
// resume works. Agents recorded as running lost their sandbox with the old
// process: they are marked errored and, if no checkpoint exists, a
// crash-recovery checkpoint is reconstructed from the stored brief so the
// work is not stranded.
func (s *AgentService) RestoreFromStore(ctx context.Context) error {
	rows, err := s.store.ListActiveAgents(ctx)
	if err != nil {
		return err
	}

	for _, rec := range rows {
		profile, perr := s.store.GetTrustProfile(ctx, rec.ID)
		if perr == nil {
			s.trust.Hydrate(rec.ID, profile.Score, profile.Domains, s.currentTick())
		} else {
			s.trust.RegisterAgent(rec.ID, s.currentTick())
		}
		if s.scheduler != nil {
			s.scheduler.RegisterAgent(rec.ID, rec.Brief)
		}
		s.setWorkstream(rec.ID, rec.Workstream)

		if string(rec.Status) == models.AgentPaused {
			continue
		}

		// Orphaned by the restart.
		if s.checkpoints != nil {
			if _, lerr := s.checkpoints.Latest(ctx, rec.ID); lerr != nil {
				lastSeq, serr := s.store.LastStoredSequence(ctx, rec.ID)
				if serr != nil || lastSeq < 0 {
					lastSeq = 0
				}
				brief := rec.Brief
				state := models.SerializedAgentState{
					AgentID:      rec.ID,
					Brief:        &brief,
					LastSequence: lastSeq,
					SerializedBy: models.SerializedByCrashRecovery,
				}
				if _, rerr := s.checkpoints.Record(ctx, &state, ""); rerr != nil {
					slog.Warn("Crash-recovery checkpoint not persisted",
						"agent_id", rec.ID, "error", rerr)
				}
			}
		}
		if _, uerr := s.store.UpdateAgentStatus(ctx, rec.ID, models.AgentError); uerr != nil {
			slog.Error("Failed to mark orphaned agent", "agent_id", rec.ID, "error", uerr)
		}
		slog.Warn("Agent orphaned by restart", "agent_id", rec.ID, "role", rec.Role)
	}
	return nil
}

// ActiveAgents returns the live roster for brake target selection.
// Implements brake.Controller.
func (s *AgentService) ActiveAgents() []brake.AgentRef {
	handles := s.gateway.ListHandles()
	refs := make([]brake.AgentRef, 0, len(handles))
	for _, h := range handles {
		if models.TerminalAgentStatus(h.Status) {
			continue
		}
		ws, _ := s.WorkstreamOf(h.AgentID)
		refs = append(refs, brake.AgentRef{AgentID: h.AgentID, Workstream: ws})
	}
	return refs
}

// PauseAgent implements brake.Controller.
func (s *AgentService) PauseAgent(ctx context.Context, agentID string) error {
	_, err := s.Pause(ctx, agentID)
	return err
}

// ResumeAgent implements brake.Controller.
func (s *AgentService) ResumeAgent(ctx context.Context, agentID string) error {
	_, err := s.Resume(ctx, agentID)
	return err
}

// KillAgent implements brake.Controller.
func (s *AgentService) KillAgent(ctx context.Context, agentID string) error {
	_, err := s.Kill(ctx, agentID)
	return err
}

func (s *AgentService) currentTick() int64 {
	if s.ticks == nil {
		return 0
	}
	return s.ticks.Current()
}

func (s *AgentService) setWorkstream(agentID, ws string) {
	s.mu.Lock()
	s.workstreams[agentID] = ws
	s.mu.Unlock()
}

func (s *AgentService) dropWorkstream(agentID string) {
	s.mu.Lock()
	delete(s.workstreams, agentID)
	s.mu.Unlock()
}

func (s *AgentService) publishState() {
	if s.notifier != nil {
		s.notifier.BroadcastStateSync()
	}
}

func (s *AgentService) refreshAgentMetrics() {
	if s.metrics == nil {
		return
	}
	counts := map[string]int{}
	for _, h := range s.gateway.ListHandles() {
		counts[h.Status]++
	}
	for _, status := range []string{models.AgentRunning, models.AgentPaused, models.AgentWaitingOnHuman} {
		s.metrics.SetAgentCount(status, counts[status])
	}
}
