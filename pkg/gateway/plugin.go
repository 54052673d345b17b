// Package gateway owns the runtime boundary between the control plane and
// agent providers. A Plugin adapts one provider (in-process, local child
// process, container); the Gateway keeps the handle registry and routes
// every lifecycle operation through the owning plugin.
package gateway

import (
	"context"

	"github.com/steward-io/steward/pkg/models"
)

// Capabilities flags what a plugin transport supports. Operations outside a
// plugin's capabilities fail loudly instead of pretending.
type Capabilities struct {
	Pause            bool `json:"pause"`
	Resume           bool `json:"resume"`
	ContextInjection bool `json:"contextInjection"`
	BriefUpdate      bool `json:"briefUpdate"`
	Checkpoint       bool `json:"checkpoint"`
}

// Plugin is the provider contract. Implementations must be safe for
// concurrent use; every method takes the operation's deadline from ctx.
type Plugin interface {
	Name() string
	Capabilities() Capabilities

	Spawn(ctx context.Context, brief *models.AgentBrief) (*models.AgentHandle, error)
	Pause(ctx context.Context, handle *models.AgentHandle) (*models.SerializedAgentState, error)
	Resume(ctx context.Context, state *models.SerializedAgentState) (*models.AgentHandle, error)
	Kill(ctx context.Context, handle *models.AgentHandle, opts models.KillOptions) (*models.KillResult, error)

	ResolveDecision(ctx context.Context, handle *models.AgentHandle, decisionID string, res *models.Resolution) error
	InjectContext(ctx context.Context, handle *models.AgentHandle, injection *models.ContextInjection) error
	UpdateBrief(ctx context.Context, handle *models.AgentHandle, patch map[string]any) error
	RequestCheckpoint(ctx context.Context, handle *models.AgentHandle, decisionID string) (*models.SerializedAgentState, error)
}

// EventHandler receives envelopes read off a plugin's event stream, already
// stamped with the owning agent id.
type EventHandler func(env *models.EventEnvelope)

// TokenIssuer mints the scoped backend token handed to an agent process at
// bootstrap.
type TokenIssuer interface {
	IssueAgentToken(agentID string) (token string, expiresAt int64, err error)
}
