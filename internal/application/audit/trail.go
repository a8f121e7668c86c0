package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/game-admin-api/internal/domain"
	"github.com/game-admin-api/internal/pkg/principal"
)

// Sink persists audit entries.
type Sink interface {
	Append(ctx context.Context, e *domain.AuditLog) error
	Recent(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

// Trail records administrative mutations. Recording is best-effort: Record has
// no error result and sink failures are only logged.
type Trail struct {
	sink   Sink
	now    func() time.Time
	logger *slog.Logger
}

func NewTrail(sink Sink) *Trail {
	return &Trail{sink: sink, now: time.Now, logger: slog.Default()}
}

// Record appends an entry attributed to the principal in ctx. The append
// outlives ctx cancellation so a client disconnecting after a commit does not
// drop the entry.
func (t *Trail) Record(ctx context.Context, action, entity, description string) {
	e := &domain.AuditLog{
		Action:      action,
		EntityName:  entity,
		Description: description,
		Timestamp:   t.now().UTC(),
		PerformedBy: principal.EmailOr(ctx, domain.DefaultActor),
	}
	if err := t.sink.Append(context.WithoutCancel(ctx), e); err != nil {
		t.logger.WarnContext(ctx, "audit append failed",
			"action", action, "entity", entity, "performed_by", e.PerformedBy, "err", err)
	}
}

// Recent returns the newest entries first.
func (t *Trail) Recent(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return t.sink.Recent(ctx, limit)
}
