package ports

import (
	"context"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

// AuditRecorder accepts audit events without blocking the caller.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event domain.AuditEvent) error
}

// IdempotencyStore claims request keys. Claim returns false when the key
// was already claimed within its TTL. Release frees a claim whose request
// did not succeed so the caller can retry with the same key.
type IdempotencyStore interface {
	Claim(ctx context.Context, scope, key string) (bool, error)
	Release(ctx context.Context, scope, key string) error
}
