package domain

import "time"

// Audit actions.
const (
	AuditCreate = "Create"
	AuditUpdate = "Update"
	AuditDelete = "Delete"
)

// DefaultActor is recorded when no principal email is available.
const DefaultActor = "Admin"

// AuditLog is an append-only record of an administrative mutation.
// ID is a serial in Postgres and a ULID in DynamoDB.
type AuditLog struct {
	ID          string    `json:"id" db:"id" dynamodbav:"id"`
	Action      string    `json:"action" db:"action" dynamodbav:"action"`
	EntityName  string    `json:"entity_name" db:"entity_name" dynamodbav:"entity_name"`
	Description string    `json:"description" db:"description" dynamodbav:"description"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp" dynamodbav:"timestamp"`
	PerformedBy string    `json:"performed_by" db:"performed_by" dynamodbav:"performed_by"`
}
