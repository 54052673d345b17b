package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/steward-io/steward/pkg/models"
)

// InProcessPluginName is the transport used by local development and tests.
const InProcessPluginName = "in_process"

// InProcessPlugin hosts agent sessions inside the control-plane process. It
// implements the full plugin contract with in-memory state and is the default
// provider when no sandbox transport is configured.
type InProcessPlugin struct {
	mu       sync.Mutex
	emit     EventHandler
	sessions map[string]*inProcessSession
}

type inProcessSession struct {
	sessionID    string
	brief        *models.AgentBrief
	lastSequence int64
	injections   []*models.ContextInjection
	resolutions  []ResolvedDecision
	briefPatches []map[string]any
}

// ResolvedDecision is a resolution the control plane forwarded to a session.
type ResolvedDecision struct {
	DecisionID string
	Resolution *models.Resolution
}

// NewInProcessPlugin builds the in-memory provider. emit may be nil; when set
// it receives the session's synthetic events (spawn/resume readiness).
func NewInProcessPlugin(emit EventHandler) *InProcessPlugin {
	return &InProcessPlugin{
		emit:     emit,
		sessions: make(map[string]*inProcessSession),
	}
}

func (p *InProcessPlugin) Name() string { return InProcessPluginName }

// Capabilities reports full support; everything is a map mutation here.
func (p *InProcessPlugin) Capabilities() Capabilities {
	return Capabilities{
		Pause:            true,
		Resume:           true,
		ContextInjection: true,
		BriefUpdate:      true,
		Checkpoint:       true,
	}
}

// Spawn opens a session keyed by the brief's agent id.
func (p *InProcessPlugin) Spawn(ctx context.Context, brief *models.AgentBrief) (*models.AgentHandle, error) {
	if brief.AgentID == "" {
		return nil, fmt.Errorf("brief missing agentId")
	}

	p.mu.Lock()
	if _, exists := p.sessions[brief.AgentID]; exists {
		p.mu.Unlock()
		return nil, fmt.Errorf("agent %s already has a session", brief.AgentID)
	}
	copied := *brief
	sess := &inProcessSession{
		sessionID: uuid.NewString(),
		brief:     &copied,
	}
	p.sessions[brief.AgentID] = sess
	p.mu.Unlock()

	p.emitStatus(brief.AgentID, sess, "Session started")
	return &models.AgentHandle{
		AgentID:    brief.AgentID,
		PluginName: InProcessPluginName,
		Status:     models.AgentRunning,
		SessionID:  sess.sessionID,
	}, nil
}

// Pause serializes the session. The session stays registered so a later
// Resume can reuse its id.
func (p *InProcessPlugin) Pause(ctx context.Context, handle *models.AgentHandle) (*models.SerializedAgentState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sess, ok := p.sessions[handle.AgentID]
	if !ok {
		return nil, fmt.Errorf("no session for agent %s", handle.AgentID)
	}
	return p.serializeLocked(handle.AgentID, sess, models.SerializedByPause, nil), nil
}

// Resume reopens a session from serialized state.
func (p *InProcessPlugin) Resume(ctx context.Context, state *models.SerializedAgentState) (*models.AgentHandle, error) {
	if state.AgentID == "" {
		return nil, fmt.Errorf("state missing agentId")
	}

	p.mu.Lock()
	sess, ok := p.sessions[state.AgentID]
	if !ok {
		sess = &inProcessSession{sessionID: uuid.NewString()}
		p.sessions[state.AgentID] = sess
	}
	if state.Brief != nil {
		copied := *state.Brief
		sess.brief = &copied
	}
	if state.LastSequence > sess.lastSequence {
		sess.lastSequence = state.LastSequence
	}
	if sid, ok := state.Checkpoint["sessionId"].(string); ok && sid != "" {
		sess.sessionID = sid
	}
	p.mu.Unlock()

	p.emitStatus(state.AgentID, sess, "Session resumed")
	return &models.AgentHandle{
		AgentID:    state.AgentID,
		PluginName: InProcessPluginName,
		Status:     models.AgentRunning,
		SessionID:  sess.sessionID,
	}, nil
}

// Kill closes the session. With Grace the final state is serialized first.
func (p *InProcessPlugin) Kill(ctx context.Context, handle *models.AgentHandle, opts models.KillOptions) (*models.KillResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sess, ok := p.sessions[handle.AgentID]
	if !ok {
		return nil, fmt.Errorf("no session for agent %s", handle.AgentID)
	}
	result := &models.KillResult{CleanShutdown: true}
	if opts.Grace {
		result.State = p.serializeLocked(handle.AgentID, sess, models.SerializedByKillGrace, nil)
	}
	delete(p.sessions, handle.AgentID)
	return result, nil
}

// ResolveDecision records the forwarded resolution on the session.
func (p *InProcessPlugin) ResolveDecision(ctx context.Context, handle *models.AgentHandle, decisionID string, res *models.Resolution) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	sess, ok := p.sessions[handle.AgentID]
	if !ok {
		return fmt.Errorf("no session for agent %s", handle.AgentID)
	}
	sess.resolutions = append(sess.resolutions, ResolvedDecision{DecisionID: decisionID, Resolution: res})
	return nil
}

// InjectContext records the injection and advances the session sequence.
func (p *InProcessPlugin) InjectContext(ctx context.Context, handle *models.AgentHandle, injection *models.ContextInjection) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	sess, ok := p.sessions[handle.AgentID]
	if !ok {
		return fmt.Errorf("no session for agent %s", handle.AgentID)
	}
	sess.injections = append(sess.injections, injection)
	sess.lastSequence++
	return nil
}

// UpdateBrief merges recognized top-level fields into the session's brief and
// records the raw patch.
func (p *InProcessPlugin) UpdateBrief(ctx context.Context, handle *models.AgentHandle, patch map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	sess, ok := p.sessions[handle.AgentID]
	if !ok {
		return fmt.Errorf("no session for agent %s", handle.AgentID)
	}
	sess.briefPatches = append(sess.briefPatches, patch)
	if sess.brief != nil {
		if role, ok := patch["role"].(string); ok {
			sess.brief.Role = role
		}
		if pb, ok := patch["projectBrief"].(string); ok {
			sess.brief.ProjectBrief = pb
		}
		if proto, ok := patch["escalationProtocol"].(string); ok {
			sess.brief.EscalationProtocol = proto
		}
	}
	return nil
}

// RequestCheckpoint serializes without interrupting the session.
func (p *InProcessPlugin) RequestCheckpoint(ctx context.Context, handle *models.AgentHandle, decisionID string) (*models.SerializedAgentState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sess, ok := p.sessions[handle.AgentID]
	if !ok {
		return nil, fmt.Errorf("no session for agent %s", handle.AgentID)
	}
	var pending []string
	if decisionID != "" {
		pending = []string{decisionID}
	}
	return p.serializeLocked(handle.AgentID, sess, models.SerializedByDecision, pending), nil
}

// Injections returns the injections delivered to an agent's session.
func (p *InProcessPlugin) Injections(agentID string) []*models.ContextInjection {
	p.mu.Lock()
	defer p.mu.Unlock()
	sess, ok := p.sessions[agentID]
	if !ok {
		return nil
	}
	out := make([]*models.ContextInjection, len(sess.injections))
	copy(out, sess.injections)
	return out
}

// Resolutions returns the decision resolutions forwarded to an agent's session.
func (p *InProcessPlugin) Resolutions(agentID string) []ResolvedDecision {
	p.mu.Lock()
	defer p.mu.Unlock()
	sess, ok := p.sessions[agentID]
	if !ok {
		return nil
	}
	out := make([]ResolvedDecision, len(sess.resolutions))
	copy(out, sess.resolutions)
	return out
}

// BriefPatches returns the brief patches applied to an agent's session.
func (p *InProcessPlugin) BriefPatches(agentID string) []map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	sess, ok := p.sessions[agentID]
	if !ok {
		return nil
	}
	out := make([]map[string]any, len(sess.briefPatches))
	copy(out, sess.briefPatches)
	return out
}

// HasSession reports whether an agent currently has a live session.
func (p *InProcessPlugin) HasSession(agentID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.sessions[agentID]
	return ok
}

func (p *InProcessPlugin) serializeLocked(agentID string, sess *inProcessSession, serializedBy string, pending []string) *models.SerializedAgentState {
	var brief *models.AgentBrief
	if sess.brief != nil {
		copied := *sess.brief
		brief = &copied
	}
	return &models.SerializedAgentState{
		AgentID: agentID,
		Checkpoint: map[string]any{
			"sessionId":  sess.sessionID,
			"injections": len(sess.injections),
		},
		Brief:              brief,
		LastSequence:       sess.lastSequence,
		PendingDecisionIDs: pending,
		SerializedBy:       serializedBy,
	}
}

func (p *InProcessPlugin) emitStatus(agentID string, sess *inProcessSession, message string) {
	if p.emit == nil {
		return
	}
	p.mu.Lock()
	sess.lastSequence++
	seq := sess.lastSequence
	p.mu.Unlock()

	now := time.Now().UTC()
	p.emit(&models.EventEnvelope{
		SourceEventID:    uuid.NewString(),
		SourceSequence:   seq,
		SourceOccurredAt: now,
		RunID:            sess.sessionID,
		AgentID:          agentID,
		IngestedAt:       now,
		Event: models.AgentEvent{
			Type:   models.EventTypeStatus,
			Status: &models.StatusEvent{Message: message, State: "ready"},
		},
	})
}
