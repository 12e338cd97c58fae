package port

import (
	"context"

	"quickcamp/internal/core/domain"
)

// ReferenceCache keeps the last successful answer of every reference lookup
// so that a failing lookup can fall back to it.
type ReferenceCache interface {
	// Get returns the cached list and whether it was present.
	Get(ctx context.Context, key string) ([]domain.ReferenceItem, bool, error)
	Set(ctx context.Context, key string, items []domain.ReferenceItem) error
}
