package domain

import (
	"encoding/json"
	"time"
)

// Overrides carries caller supplied values keyed by configuration field name,
// typically the saved configuration of a campaign being edited.
type Overrides map[string]json.RawMessage

const (
	defaultBudgetValue = "50.00"
	scheduleHourUTC    = 4
)

// legacyBudgetKey is accepted as a fallback for ad_set_budget_value.
const legacyBudgetKey = "budget_value"

// DefaultSchedule returns the default start (tomorrow 04:00 UTC) and end (the
// day after, 04:00 UTC) relative to now.
func DefaultSchedule(now time.Time) (start, end time.Time) {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), scheduleHourUTC, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, 1), day.AddDate(0, 0, 2)
}

// NewConfiguration builds a fully populated configuration for objective.
// Every field not present in overrides gets its default; overrides always
// win, and values that cannot be decoded into their field are skipped. No
// cross-field rules run here apart from keeping the event type inside the
// objective's allowed set.
func NewConfiguration(objective Objective, overrides Overrides, now time.Time) Configuration {
	start, end := DefaultSchedule(now)

	cfg := Configuration{
		Objective: objective,

		IsCBO:                      false,
		CampaignBudgetOptimization: BudgetDaily,
		CampaignBudgetValue:        defaultBudgetValue,
		CampaignBidStrategy:        BidLowestCost,
		AdSetBudgetOptimization:    BudgetDaily,
		AdSetBudgetValue:           defaultBudgetValue,
		AdSetBidStrategy:           BidLowestCost,
		BuyingType:                 BuyingAuction,
		StartTime:                  start,
		EndTime:                    end,

		CallToAction: CallToActionShopNow,
		AdFormat:     AdFormatSingleMedia,

		PlacementType:      PlacementAdvantagePlus,
		Platforms:          make(map[Platform]bool, len(Platforms)),
		Placements:         make(map[Placement]bool, len(placementOwner)),
		TargetingType:      TargetingAdvantage,
		Location:           []string{},
		AgeRange:           AgeRange{MinAge, MaxAge},
		Gender:             GenderAll,
		CustomAudiences:    []string{},
		Interests:          []string{},
		AttributionSetting: Attribution7dClick,

		EventType: objective.DefaultEventType(),
	}
	for _, p := range Platforms {
		cfg.Platforms[p] = true
		for _, slot := range platformPlacements[p] {
			cfg.Placements[slot] = true
		}
	}

	if raw, ok := overrides[legacyBudgetKey]; ok {
		if _, set := overrides["ad_set_budget_value"]; !set {
			overlay(&cfg, "ad_set_budget_value", raw)
		}
	}
	for key, raw := range overrides {
		if key == legacyBudgetKey || key == "objective" {
			continue
		}
		overlay(&cfg, key, raw)
	}

	cfg.enforceReserved()
	cfg.normalizeEventType()
	cfg.derive()
	return cfg
}

// overlay decodes a single field into cfg. Decoding errors leave the field
// at its previous value.
func overlay(cfg *Configuration, key string, raw json.RawMessage) {
	doc, err := json.Marshal(map[string]json.RawMessage{key: raw})
	if err != nil {
		return
	}
	next := cfg.Clone()
	if err = json.Unmarshal(doc, &next); err != nil {
		return
	}
	*cfg = next
}
