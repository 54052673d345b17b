package models

// Outbound WebSocket message types pushed to dashboard clients.
const (
	WSTypeEvent             = "event"
	WSTypeStateSync         = "state_sync"
	WSTypeBrake             = "brake"
	WSTypeTrustUpdate       = "trust_update"
	WSTypeDecisionResolved  = "decision_resolved"
	WSTypeTrustConfigUpdate = "trust_config_update"
)
