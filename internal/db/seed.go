package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
)

// Seed records demo submissions for accountID so that the ledger and the
// "add to existing campaign" flow have data in development.
func Seed(ctx context.Context, ledger port.LedgerRepository, accountID string) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	objectives := []domain.Objective{domain.ObjectiveSales, domain.ObjectiveLeads, domain.ObjectiveTraffic}

	for i := 1; i <= 5; i++ {
		objective := objectives[r.Intn(len(objectives))]
		cfg := domain.NewConfiguration(objective, nil, time.Now())
		cfg.PixelID = fmt.Sprintf("px-%d", r.Intn(3)+1)
		cfg.AdSetBudgetValue = fmt.Sprintf("%d.00", 20+r.Intn(80))
		raw, err := json.Marshal(cfg)
		if err != nil {
			return err
		}
		entry := &domain.LedgerEntry{
			CampaignID:    "seed-" + uuid.NewString()[:8],
			Name:          fmt.Sprintf("Campaign %d", i),
			Objective:     objective,
			AccountID:     accountID,
			NewCampaign:   true,
			CreativeCount: 1 + r.Intn(4),
			Config:        raw,
		}
		if err = ledger.Record(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
