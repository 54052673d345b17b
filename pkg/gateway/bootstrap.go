package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/steward-io/steward/pkg/models"
)

// agentBootstrap is the JSON payload of the AGENT_BOOTSTRAP env variable the
// sandbox shim reads on startup.
type agentBootstrap struct {
	BackendURL             string `json:"backendUrl"`
	BackendToken           string `json:"backendToken,omitempty"`
	TokenExpiresAt         int64  `json:"tokenExpiresAt,omitempty"`
	AgentID                string `json:"agentId"`
	ArtifactUploadEndpoint string `json:"artifactUploadEndpoint,omitempty"`
}

// buildBootstrap mints the agent's backend token (when an issuer is wired)
// and serializes the bootstrap payload.
func buildBootstrap(tokens TokenIssuer, backendURL, uploadEndpoint, agentID string) (string, error) {
	bootstrap := agentBootstrap{
		BackendURL:             backendURL,
		AgentID:                agentID,
		ArtifactUploadEndpoint: uploadEndpoint,
	}
	if tokens != nil {
		token, expiresAt, err := tokens.IssueAgentToken(agentID)
		if err != nil {
			return "", fmt.Errorf("issue agent token: %w", err)
		}
		bootstrap.BackendToken = token
		bootstrap.TokenExpiresAt = expiresAt
	}
	data, err := json.Marshal(bootstrap)
	if err != nil {
		return "", fmt.Errorf("marshal bootstrap: %w", err)
	}
	return string(data), nil
}

// emitCrashEvent publishes a synthetic fatal error for a sandbox that died
// outside a deliberate pause or kill.
func emitCrashEvent(emit EventHandler, agentID, message string) {
	if emit == nil {
		return
	}
	now := time.Now().UTC()
	emit(&models.EventEnvelope{
		SourceEventID:    fmt.Sprintf("sandbox-exit-%s-%d", agentID, now.UnixNano()),
		SourceOccurredAt: now,
		RunID:            "control-plane",
		AgentID:          agentID,
		IngestedAt:       now,
		Event: models.AgentEvent{
			Type:  models.EventTypeError,
			Error: &models.ErrorEvent{Message: message, Fatal: true},
		},
	})
}
