package domain

import "time"

type AuditAction string

const (
	AuditActionRoleUpdate AuditAction = "ROLE_UPDATE"
	AuditActionUserBlock  AuditAction = "USER_BLOCK"
	AuditActionSettings   AuditAction = "SETTINGS_UPDATE"
)

// AuditEntry is an append-only record of who did what to whom. Details
// carries workflow-specific context (kind, from/to roles, request id).
type AuditEntry struct {
	ID        int64             `json:"id"`
	Action    AuditAction       `json:"action"`
	ActorID   int32             `json:"actor_id"`
	TargetID  int32             `json:"target_id"`
	Details   map[string]string `json:"details,omitempty"`
	CreatedOn time.Time         `json:"created_on"`
}
