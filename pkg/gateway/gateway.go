package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/steward-io/steward/pkg/models"
	"github.com/steward-io/steward/pkg/store"
)

// Publisher pushes synthetic lifecycle envelopes onto the event bus.
type Publisher interface {
	Publish(env *models.EventEnvelope)
}

// Gateway is the handle registry plus the routing layer in front of the
// registered plugins. It satisfies the agent-directory, context-injection,
// and decision-forwarding interfaces the rest of the control plane consumes.
type Gateway struct {
	mu            sync.RWMutex
	plugins       map[string]Plugin
	handles       map[string]*models.AgentHandle
	defaultPlugin string
	bus           Publisher
}

// New builds an empty gateway. bus may be nil.
func New(defaultPlugin string, bus Publisher) *Gateway {
	return &Gateway{
		plugins:       make(map[string]Plugin),
		handles:       make(map[string]*models.AgentHandle),
		defaultPlugin: defaultPlugin,
		bus:           bus,
	}
}

// RegisterPlugin adds a provider. Later registrations with the same name
// replace earlier ones.
func (g *Gateway) RegisterPlugin(p Plugin) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.plugins[p.Name()] = p
	slog.Info("Registered agent plugin", "plugin", p.Name())
}

// Plugin returns a registered plugin by name, or the default when name is
// empty.
func (g *Gateway) Plugin(name string) (Plugin, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if name == "" {
		name = g.defaultPlugin
	}
	p, ok := g.plugins[name]
	if !ok {
		return nil, fmt.Errorf("plugin %q: %w", name, store.ErrNotFound)
	}
	return p, nil
}

// Spawn starts a new agent through the plugin named by the brief (or the
// default) and registers its handle.
func (g *Gateway) Spawn(ctx context.Context, brief *models.AgentBrief) (*models.AgentHandle, error) {
	p, err := g.Plugin(brief.PluginName)
	if err != nil {
		return nil, err
	}
	handle, err := p.Spawn(ctx, brief)
	if err != nil {
		return nil, fmt.Errorf("spawn via %s failed: %w", p.Name(), err)
	}
	handle.PluginName = p.Name()
	if handle.Status == "" {
		handle.Status = models.AgentRunning
	}

	g.mu.Lock()
	g.handles[handle.AgentID] = handle
	g.mu.Unlock()

	g.publishLifecycle(handle.AgentID, models.LifecycleSpawned, brief.Role)
	slog.Info("Spawned agent", "agent_id", handle.AgentID, "plugin", p.Name(), "role", brief.Role)
	return handle, nil
}

// Pause serializes a running agent and marks its handle paused. The plugin
// owns checkpoint extraction; the gateway owns handle state.
func (g *Gateway) Pause(ctx context.Context, agentID string) (*models.SerializedAgentState, error) {
	handle, p, err := g.handleAndPlugin(agentID)
	if err != nil {
		return nil, err
	}
	if !p.Capabilities().Pause {
		return nil, fmt.Errorf("plugin %s does not support pause", p.Name())
	}
	if handle.Status != models.AgentRunning && handle.Status != models.AgentWaitingOnHuman {
		return nil, fmt.Errorf("agent %s is %s, not pausable: %w", agentID, handle.Status, store.ErrConflict)
	}

	state, err := p.Pause(ctx, &handle)
	if err != nil {
		return nil, fmt.Errorf("pause via %s failed: %w", p.Name(), err)
	}
	g.setStatus(agentID, models.AgentPaused)
	g.publishLifecycle(agentID, models.LifecyclePaused, "")
	return state, nil
}

// Resume restores an agent from serialized state. The revived handle keeps
// the original agent id.
func (g *Gateway) Resume(ctx context.Context, state *models.SerializedAgentState) (*models.AgentHandle, error) {
	pluginName := ""
	if state.Brief != nil {
		pluginName = state.Brief.PluginName
	}
	p, err := g.Plugin(pluginName)
	if err != nil {
		return nil, err
	}
	if !p.Capabilities().Resume {
		return nil, fmt.Errorf("plugin %s does not support resume", p.Name())
	}

	handle, err := p.Resume(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("resume via %s failed: %w", p.Name(), err)
	}
	handle.PluginName = p.Name()
	if handle.Status == "" {
		handle.Status = models.AgentRunning
	}

	g.mu.Lock()
	g.handles[handle.AgentID] = handle
	g.mu.Unlock()

	g.publishLifecycle(handle.AgentID, models.LifecycleResumed, "")
	slog.Info("Resumed agent", "agent_id", handle.AgentID, "plugin", p.Name())
	return handle, nil
}

// Kill terminates an agent. With opts.Grace the plugin first extracts a
// final checkpoint and artifacts. The handle is marked completed but kept in
// the registry until Remove.
func (g *Gateway) Kill(ctx context.Context, agentID string, opts models.KillOptions) (*models.KillResult, error) {
	handle, p, err := g.handleAndPlugin(agentID)
	if err != nil {
		return nil, err
	}

	result, err := p.Kill(ctx, &handle, opts)
	if err != nil {
		return nil, fmt.Errorf("kill via %s failed: %w", p.Name(), err)
	}
	g.setStatus(agentID, models.AgentCompleted)
	g.publishLifecycle(agentID, models.LifecycleKilled, "")
	slog.Info("Killed agent", "agent_id", agentID, "clean_shutdown", result.CleanShutdown, "artifacts_extracted", result.ArtifactsExtracted)
	return result, nil
}

// RequestCheckpoint asks the agent for a serialized snapshot without
// interrupting it, typically ahead of a risky pending decision.
func (g *Gateway) RequestCheckpoint(ctx context.Context, agentID, decisionID string) (*models.SerializedAgentState, error) {
	handle, p, err := g.handleAndPlugin(agentID)
	if err != nil {
		return nil, err
	}
	if !p.Capabilities().Checkpoint {
		return nil, fmt.Errorf("plugin %s does not support checkpoints", p.Name())
	}
	state, err := p.RequestCheckpoint(ctx, &handle, decisionID)
	if err != nil {
		return nil, fmt.Errorf("checkpoint via %s failed: %w", p.Name(), err)
	}
	g.publishLifecycle(agentID, models.LifecycleCheckpointed, decisionID)
	return state, nil
}

// UpdateBrief pushes a partial brief change to the running agent.
func (g *Gateway) UpdateBrief(ctx context.Context, agentID string, patch map[string]any) error {
	handle, p, err := g.handleAndPlugin(agentID)
	if err != nil {
		return err
	}
	if !p.Capabilities().BriefUpdate {
		return fmt.Errorf("plugin %s does not support brief updates", p.Name())
	}
	return p.UpdateBrief(ctx, &handle, patch)
}

// InjectContext delivers a context injection to the agent through its
// plugin. Satisfies the injection scheduler's gateway interface.
func (g *Gateway) InjectContext(ctx context.Context, agentID string, injection *models.ContextInjection) error {
	handle, p, err := g.handleAndPlugin(agentID)
	if err != nil {
		return err
	}
	if !p.Capabilities().ContextInjection {
		return fmt.Errorf("plugin %s does not support context injection", p.Name())
	}
	return p.InjectContext(ctx, &handle, injection)
}

// ResolveDecision forwards a resolution to the agent that raised the
// decision. Satisfies the resolver's forwarder interface.
func (g *Gateway) ResolveDecision(ctx context.Context, agentID, decisionID string, res *models.Resolution) error {
	handle, p, err := g.handleAndPlugin(agentID)
	if err != nil {
		return err
	}
	return p.ResolveDecision(ctx, &handle, decisionID, res)
}

// AgentStatus reports the registered handle's status.
func (g *Gateway) AgentStatus(agentID string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	handle, ok := g.handles[agentID]
	if !ok {
		return "", false
	}
	return handle.Status, true
}

// Handle returns a copy of the registered handle.
func (g *Gateway) Handle(agentID string) (models.AgentHandle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	handle, ok := g.handles[agentID]
	if !ok {
		return models.AgentHandle{}, false
	}
	return *handle, true
}

// ListHandles returns copies of every registered handle, ordered by agent id.
func (g *Gateway) ListHandles() []models.AgentHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]models.AgentHandle, 0, len(g.handles))
	for _, h := range g.handles {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AgentID < out[j].AgentID })
	return out
}

// SetStatus overrides a handle's status, used when agent events report a
// transition the gateway did not drive itself.
func (g *Gateway) SetStatus(agentID, status string) bool {
	return g.setStatus(agentID, status)
}

// Remove drops a handle from the registry.
func (g *Gateway) Remove(agentID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.handles, agentID)
}

func (g *Gateway) setStatus(agentID, status string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	handle, ok := g.handles[agentID]
	if !ok {
		return false
	}
	handle.Status = status
	return true
}

// handleAndPlugin snapshots the handle and resolves its owning plugin.
func (g *Gateway) handleAndPlugin(agentID string) (models.AgentHandle, Plugin, error) {
	g.mu.RLock()
	handle, ok := g.handles[agentID]
	if !ok {
		g.mu.RUnlock()
		return models.AgentHandle{}, nil, fmt.Errorf("agent %s: %w", agentID, store.ErrNotFound)
	}
	snapshot := *handle
	p, pok := g.plugins[handle.PluginName]
	g.mu.RUnlock()
	if !pok {
		return models.AgentHandle{}, nil, fmt.Errorf("plugin %q for agent %s: %w", snapshot.PluginName, agentID, store.ErrNotFound)
	}
	return snapshot, p, nil
}

func (g *Gateway) publishLifecycle(agentID, phase, detail string) {
	if g.bus == nil {
		return
	}
	now := time.Now().UTC()
	g.bus.Publish(&models.EventEnvelope{
		SourceEventID:    fmt.Sprintf("lifecycle-%s-%s-%d", agentID, phase, now.UnixNano()),
		SourceOccurredAt: now,
		RunID:            "control-plane",
		AgentID:          agentID,
		IngestedAt:       now,
		Event: models.AgentEvent{
			Type:      models.EventTypeLifecycle,
			Lifecycle: &models.LifecycleEvent{Phase: phase, Detail: detail},
		},
	})
}
