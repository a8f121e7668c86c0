package dynamo

import (
	"context"
	"testing"
	"time"

	"github.com/game-admin-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_RecentNewestFirst(t *testing.T) {
	repo := NewAuditRepo(newFakeDynamo(), "audit_log")
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, desc := range []string{"first", "second", "third"} {
		e := &domain.AuditLog{
			Action:      domain.AuditCreate,
			EntityName:  "Quest",
			Description: desc,
			Timestamp:   base.Add(time.Duration(i) * time.Second),
			PerformedBy: "Admin",
		}
		require.NoError(t, repo.Append(ctx, e))
		assert.Len(t, e.ID, 26)
	}

	out, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "third", out[0].Description)
	assert.Equal(t, "second", out[1].Description)
	assert.True(t, out[0].Timestamp.Equal(base.Add(2*time.Second)))
}

func TestAuditRepo_AppendPropagatesError(t *testing.T) {
	f := newFakeDynamo()
	f.putErr = errThrottled
	repo := NewAuditRepo(f, "audit_log")

	err := repo.Append(context.Background(), &domain.AuditLog{Action: domain.AuditDelete})
	assert.ErrorIs(t, err, errThrottled)
}
