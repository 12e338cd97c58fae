package port

import (
	"context"

	"quickcamp/internal/core/domain"
)

// LedgerRepository persists the record of successful submissions. It is an
// outbound port; implementations must be safe for concurrent use.
type LedgerRepository interface {
	// Record stores entry and fills its ID and SubmittedAt.
	Record(ctx context.Context, entry *domain.LedgerEntry) error
	// ListByAccount returns the newest entries of an ad account first.
	ListByAccount(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error)
	// FindLatest returns the newest entry of a remote campaign, or nil when
	// the campaign was never submitted through this service.
	FindLatest(ctx context.Context, accountID, campaignID string) (*domain.LedgerEntry, error)
}
