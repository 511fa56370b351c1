package models

import "time"

// AuditEvent is published to the audit queue for every clinical mutation and
// every denied authorization decision.
type AuditEvent struct {
	RequestID  string    `json:"requestId"`
	ActorID    string    `json:"actorId"`
	ActorRole  Role      `json:"actorRole"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resourceId,omitempty"`
	Decision   string    `json:"decision"`
	OccurredAt time.Time `json:"occurredAt"`
}
