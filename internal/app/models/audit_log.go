package models

import "time"

// AuditAction names a mutating action recorded in the audit trail
type AuditAction string

const (
	AuditActionCreate     AuditAction = "CREATE"
	AuditActionUpdate     AuditAction = "UPDATE"
	AuditActionDelete     AuditAction = "DELETE"
	AuditActionDeactivate AuditAction = "DEACTIVATE"
	AuditActionImport     AuditAction = "IMPORT"
)

// AuditLog is an append-only record from the 'audit_logs' table
type AuditLog struct {
	ID        int64       `json:"id" db:"id"`
	Action    AuditAction `json:"action" db:"action" example:"CREATE"`
	Entity    string      `json:"entity" db:"entity" example:"student"`
	EntityID  *int64      `json:"entity_id,omitempty" db:"entity_id"`
	ActorID   *int64      `json:"actor_id,omitempty" db:"actor_id"`
	Details   string      `json:"details" db:"details"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}
