package domain

import (
	"maps"
	"slices"
	"time"
)

// Configuration is the draft record assembled by the campaign wizard. JSON
// keys are the flat field names the submission service expects.
//
// Both budget levels are kept in memory; IsCBO selects the live one and only
// that one is submitted. The Show* flags and AllowedEventTypes are derived
// and are recomputed by Apply after every mutation.
type Configuration struct {
	Objective Objective `json:"objective"`

	// Budget and schedule.
	IsCBO                      bool               `json:"isCBO"`
	CampaignBudgetOptimization BudgetOptimization `json:"campaign_budget_optimization"`
	CampaignBudgetValue        string             `json:"campaign_budget_value"`
	CampaignBidStrategy        BidStrategy        `json:"campaign_bid_strategy"`
	AdSetBudgetOptimization    BudgetOptimization `json:"ad_set_budget_optimization"`
	AdSetBudgetValue           string             `json:"ad_set_budget_value"`
	AdSetBidStrategy           BidStrategy        `json:"ad_set_bid_strategy"`
	BidAmount                  string             `json:"bid_amount"`
	BuyingType                 BuyingType         `json:"buying_type"`
	StartTime                  time.Time          `json:"app_events"`
	EndTime                    time.Time          `json:"ad_set_end_time"`
	PredictionID               string             `json:"prediction_id"`

	// Creative copy.
	PrimaryText    string       `json:"ad_creative_primary_text"`
	Headline       string       `json:"ad_creative_headline"`
	Description    string       `json:"ad_creative_description"`
	CallToAction   CallToAction `json:"call_to_action"`
	Link           string       `json:"link"`
	DisplayLink    string       `json:"display_link"`
	DestinationURL string       `json:"destination_url"`
	URLParameters  string       `json:"url_parameters"`
	AdFormat       AdFormat     `json:"ad_format"`

	// Delivery and targeting.
	PlacementType      PlacementType      `json:"placement_type"`
	Platforms          map[Platform]bool  `json:"platforms"`
	Placements         map[Placement]bool `json:"placements"`
	TargetingType      TargetingType      `json:"targeting_type"`
	Location           []string           `json:"location"`
	AgeRange           AgeRange           `json:"age_range"`
	Gender             Gender             `json:"gender"`
	CustomAudiences    []string           `json:"custom_audiences"`
	Interests          []string           `json:"interests"`
	AttributionSetting Attribution        `json:"attribution_setting"`

	// Tracking and identity.
	EventType        EventType `json:"event_type"`
	PixelID          string    `json:"pixel_id"`
	FacebookPageID   string    `json:"facebook_page_id"`
	InstagramAccount string    `json:"instagram_account"`

	// Derived.
	ShowBidAmount     bool        `json:"showBidAmount"`
	ShowEndDate       bool        `json:"showEndDate"`
	ShowPredictionID  bool        `json:"showPredictionId"`
	AllowedEventTypes []EventType `json:"allowed_event_types"`
}

// Clone returns a deep copy of c. Apply never aliases the maps or slices of
// its input.
func (c Configuration) Clone() Configuration {
	c.Platforms = maps.Clone(c.Platforms)
	c.Placements = maps.Clone(c.Placements)
	c.Location = slices.Clone(c.Location)
	c.CustomAudiences = slices.Clone(c.CustomAudiences)
	c.Interests = slices.Clone(c.Interests)
	c.AllowedEventTypes = slices.Clone(c.AllowedEventTypes)
	return c
}

// LiveBudgetOptimization returns the budget optimization of the level
// selected by IsCBO.
func (c Configuration) LiveBudgetOptimization() BudgetOptimization {
	if c.IsCBO {
		return c.CampaignBudgetOptimization
	}
	return c.AdSetBudgetOptimization
}

// LiveBidStrategy returns the bid strategy of the level selected by IsCBO.
func (c Configuration) LiveBidStrategy() BidStrategy {
	if c.IsCBO {
		return c.CampaignBidStrategy
	}
	return c.AdSetBidStrategy
}

// LiveBudgetValue returns the budget value of the level selected by IsCBO.
func (c Configuration) LiveBudgetValue() string {
	if c.IsCBO {
		return c.CampaignBudgetValue
	}
	return c.AdSetBudgetValue
}

// ManualPlacements reports whether the platform and placement maps drive
// delivery. Under Advantage+ they are frozen.
func (c Configuration) ManualPlacements() bool {
	return c.PlacementType == PlacementManual
}

// ManualTargeting reports whether audience fields other than location drive
// delivery. Under Advantage targeting they are frozen.
func (c Configuration) ManualTargeting() bool {
	return c.TargetingType == TargetingManual
}

// derive recomputes the visibility flags and the allowed event set.
func (c *Configuration) derive() {
	c.ShowBidAmount = c.LiveBidStrategy().Capped()
	c.ShowEndDate = c.LiveBudgetOptimization() == BudgetLifetime
	c.ShowPredictionID = c.BuyingType == BuyingReserved
	c.AllowedEventTypes = c.Objective.EventTypes()
}

// normalizeEventType resets the event type to the objective default when it
// is not allowed by the objective.
func (c *Configuration) normalizeEventType() {
	if !c.Objective.Allows(c.EventType) {
		c.EventType = c.Objective.DefaultEventType()
	}
}

// enforceReserved applies the reserved-buying invariant: ad set level budget,
// no ad set bid strategy.
func (c *Configuration) enforceReserved() {
	if c.BuyingType != BuyingReserved {
		return
	}
	c.CampaignBudgetOptimization = BudgetAdSetOptimize
	c.AdSetBidStrategy = ""
	c.IsCBO = false
}
