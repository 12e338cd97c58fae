package domain

import (
	"encoding/json"
	"time"
)

// Credentials is the access/refresh token pair issued by the auth service.
type Credentials struct {
	Access  string
	Refresh string
}

// Empty reports whether no access token is held.
func (c Credentials) Empty() bool {
	return c.Access == ""
}

// LedgerEntry records one successful submission. Config holds the submitted
// configuration so a later draft for the same campaign can start from it.
type LedgerEntry struct {
	ID            int64           `json:"id"`
	CampaignID    string          `json:"campaign_id"`
	Name          string          `json:"name"`
	Objective     Objective       `json:"objective"`
	AccountID     string          `json:"account_id"`
	NewCampaign   bool            `json:"new_campaign"`
	CreativeCount int             `json:"creative_count"`
	Config        json.RawMessage `json:"config,omitempty"`
	SubmittedAt   time.Time       `json:"submitted_at"`
}

// Overrides decodes the stored configuration into initializer overrides.
// Derived fields are dropped; they are recomputed by the initializer.
func (e LedgerEntry) Overrides() (Overrides, error) {
	if len(e.Config) == 0 {
		return nil, nil
	}
	var o Overrides
	if err := json.Unmarshal(e.Config, &o); err != nil {
		return nil, err
	}
	for _, derived := range []string{"showBidAmount", "showEndDate", "showPredictionId", "allowed_event_types"} {
		delete(o, derived)
	}
	return o, nil
}
