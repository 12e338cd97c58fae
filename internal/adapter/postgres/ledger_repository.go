package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
)

// LedgerRepository implements port.LedgerRepository using pgxpool.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

var _ port.LedgerRepository = (*LedgerRepository)(nil)

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const ledgerColumns = `id, campaign_id, name, objective, account_id, new_campaign, creative_count, config, submitted_at`

// Record inserts entry and fills its ID and SubmittedAt from the database.
func (r *LedgerRepository) Record(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
        INSERT INTO submissions (campaign_id, name, objective, account_id, new_campaign, creative_count, config)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, submitted_at`
	var config any
	if len(entry.Config) > 0 {
		config = entry.Config
	}
	err := r.pool.QueryRow(ctx, query,
		entry.CampaignID,
		entry.Name,
		string(entry.Objective),
		entry.AccountID,
		entry.NewCampaign,
		entry.CreativeCount,
		config,
	).Scan(&entry.ID, &entry.SubmittedAt)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// ListByAccount returns the newest submissions of an ad account first.
func (r *LedgerRepository) ListByAccount(ctx context.Context, accountID string, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + ledgerColumns + `
        FROM submissions
        WHERE account_id = $1
        ORDER BY submitted_at DESC, id DESC
        LIMIT $2`
	rows, err := r.pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("scan submissions: %w", err)
	}
	return entries, nil
}

// FindLatest returns the newest submission of a campaign or nil.
func (r *LedgerRepository) FindLatest(ctx context.Context, accountID, campaignID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
        FROM submissions
        WHERE account_id = $1 AND campaign_id = $2
        ORDER BY submitted_at DESC, id DESC
        LIMIT 1`
	rows, err := r.pool.Query(ctx, query, accountID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("query submission: %w", err)
	}
	entry, err := pgx.CollectOneRow(rows, scanEntry)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan submission: %w", err)
	}
	return &entry, nil
}

func scanEntry(row pgx.CollectableRow) (domain.LedgerEntry, error) {
	var (
		e         domain.LedgerEntry
		objective string
		config    []byte
	)
	err := row.Scan(
		&e.ID,
		&e.CampaignID,
		&e.Name,
		&objective,
		&e.AccountID,
		&e.NewCampaign,
		&e.CreativeCount,
		&config,
		&e.SubmittedAt,
	)
	e.Objective = domain.Objective(objective)
	e.Config = config
	return e, err
}
