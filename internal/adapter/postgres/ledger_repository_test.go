package postgres

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcamp/internal/config/configs"
	"quickcamp/internal/core/domain"
	"quickcamp/internal/db"
)

// newTestRepository connects to PSQL_TEST_ADDRESS and migrates it. The
// tests are skipped when the variable is unset.
func newTestRepository(t *testing.T) *LedgerRepository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	require.NoError(t, db.Migrate(addr))

	u, err := url.Parse(addr)
	require.NoError(t, err)
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE submissions`)
	require.NoError(t, err)
	return NewLedgerRepository(pool)
}

func TestLedgerRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &domain.LedgerEntry{
		CampaignID:    "42",
		Name:          "Spring",
		Objective:     domain.ObjectiveSales,
		AccountID:     "act_1",
		NewCampaign:   true,
		CreativeCount: 2,
		Config:        json.RawMessage(`{"ad_creative_headline":"Old"}`),
	}
	require.NoError(t, repo.Record(ctx, first))
	assert.NotZero(t, first.ID)
	assert.False(t, first.SubmittedAt.IsZero())

	second := &domain.LedgerEntry{CampaignID: "42", Objective: domain.ObjectiveSales, AccountID: "act_1", CreativeCount: 1}
	require.NoError(t, repo.Record(ctx, second))
	require.NoError(t, repo.Record(ctx, &domain.LedgerEntry{CampaignID: "7", AccountID: "act_2", CreativeCount: 1}))

	entries, err := repo.ListByAccount(ctx, "act_1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Empty(t, entries[0].Config)
	assert.JSONEq(t, `{"ad_creative_headline":"Old"}`, string(entries[1].Config))

	latest, err := repo.FindLatest(ctx, "act_1", "42")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)

	missing, err := repo.FindLatest(ctx, "act_1", "7")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLedgerRejectsEmptySubmission(t *testing.T) {
	repo := newTestRepository(t)
	err := repo.Record(context.Background(), &domain.LedgerEntry{CampaignID: "1", AccountID: "act_1"})
	assert.Error(t, err)
}
