package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/game-admin-api/internal/domain"
	"github.com/jmoiron/sqlx"
)

// AuditRepo stores the audit trail in the audit_log table.
type AuditRepo struct {
	db *sqlx.DB
}

func NewAuditRepo(db *sqlx.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

func (r *AuditRepo) Append(ctx context.Context, e *domain.AuditLog) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	const q = `INSERT INTO audit_log (action, entity_name, description, "timestamp", performed_by)
		VALUES ($1, $2, $3, $4, $5) RETURNING id::text`
	if err := r.db.GetContext(ctx, &e.ID, q, e.Action, e.EntityName, e.Description, e.Timestamp, e.PerformedBy); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

// Recent returns the newest entries first.
func (r *AuditRepo) Recent(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	out := []domain.AuditLog{}
	const q = `SELECT id::text AS id, action, entity_name, description, "timestamp", performed_by
		FROM audit_log ORDER BY "timestamp" DESC, id DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &out, q, limit); err != nil {
		return nil, fmt.Errorf("recent audit log: %w", err)
	}
	return out, nil
}
