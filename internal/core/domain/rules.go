package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	// ErrInvalidMutation is returned for unknown fields and for values that
	// cannot be decoded or fall outside the field's allowed set.
	ErrInvalidMutation = errors.New("invalid mutation")
	// ErrFieldFrozen is returned when the field is disabled by the current
	// placement, targeting or buying mode.
	ErrFieldFrozen = errors.New("field is frozen by the current mode")
)

// Field names a mutable configuration field. Values match the JSON keys of
// Configuration.
type Field string

const (
	FieldObjective                  Field = "objective"
	FieldIsCBO                      Field = "isCBO"
	FieldCampaignBudgetOptimization Field = "campaign_budget_optimization"
	FieldCampaignBudgetValue        Field = "campaign_budget_value"
	FieldCampaignBidStrategy        Field = "campaign_bid_strategy"
	FieldAdSetBudgetOptimization    Field = "ad_set_budget_optimization"
	FieldAdSetBudgetValue           Field = "ad_set_budget_value"
	FieldAdSetBidStrategy           Field = "ad_set_bid_strategy"
	FieldBidAmount                  Field = "bid_amount"
	FieldBuyingType                 Field = "buying_type"
	FieldStartTime                  Field = "app_events"
	FieldEndTime                    Field = "ad_set_end_time"
	FieldPredictionID               Field = "prediction_id"
	FieldPrimaryText                Field = "ad_creative_primary_text"
	FieldHeadline                   Field = "ad_creative_headline"
	FieldDescription                Field = "ad_creative_description"
	FieldCallToAction               Field = "call_to_action"
	FieldLink                       Field = "link"
	FieldDisplayLink                Field = "display_link"
	FieldDestinationURL             Field = "destination_url"
	FieldURLParameters              Field = "url_parameters"
	FieldAdFormat                   Field = "ad_format"
	FieldPlacementType              Field = "placement_type"
	FieldPlatforms                  Field = "platforms"
	FieldPlacements                 Field = "placements"
	FieldTargetingType              Field = "targeting_type"
	FieldLocation                   Field = "location"
	FieldAgeRange                   Field = "age_range"
	FieldGender                     Field = "gender"
	FieldCustomAudiences            Field = "custom_audiences"
	FieldInterests                  Field = "interests"
	FieldAttributionSetting         Field = "attribution_setting"
	FieldEventType                  Field = "event_type"
	FieldPixelID                    Field = "pixel_id"
	FieldFacebookPageID             Field = "facebook_page_id"
	FieldInstagramAccount           Field = "instagram_account"
)

// Mutation is a single user edit. Key selects the entry of the platforms and
// placements maps and is ignored for scalar fields.
type Mutation struct {
	Field Field           `json:"field"`
	Key   string          `json:"key,omitempty"`
	Value json.RawMessage `json:"value"`
}

// Set builds a mutation assigning value to field.
func Set(field Field, value any) Mutation {
	raw, _ := json.Marshal(value)
	return Mutation{Field: field, Value: raw}
}

// Toggle builds a mutation flipping one platform or placement checkbox.
func Toggle(field Field, key string, on bool) Mutation {
	m := Set(field, on)
	m.Key = key
	return m
}

// Apply returns the configuration that results from applying m to cfg with
// every interdependency rule re-applied. It is pure: cfg is never modified and
// on error it is returned unchanged.
//
// Rules, in order:
//  1. buying type RESERVED forces the campaign level to
//     AD_SET_BUDGET_OPTIMIZATION, clears the ad set bid strategy and turns
//     CBO off;
//  2. a campaign budget optimization other than AD_SET_BUDGET_OPTIMIZATION
//     forces AUCTION buying;
//  3. switching a platform off switches off every placement it owns;
//     switching it on restores nothing;
//  4. showBidAmount and showEndDate follow the live budget level;
//  5. showPredictionId follows RESERVED buying;
//  6. an objective change resets an event type that is no longer allowed.
func Apply(cfg Configuration, m Mutation) (Configuration, error) {
	next := cfg.Clone()
	if err := next.set(m); err != nil {
		return cfg, fmt.Errorf("%s: %w", m.Field, err)
	}
	next.enforceReserved()
	next.derive()
	return next, nil
}

// ApplyAll folds mutations over cfg, stopping at the first error.
func ApplyAll(cfg Configuration, mutations ...Mutation) (Configuration, error) {
	var err error
	for _, m := range mutations {
		if cfg, err = Apply(cfg, m); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func (c *Configuration) set(m Mutation) error {
	if err := c.checkFrozen(m.Field); err != nil {
		return err
	}

	switch m.Field {
	case FieldObjective:
		var s string
		if err := decode(m.Value, &s); err != nil {
			return err
		}
		o, ok := ParseObjective(s)
		if !ok {
			return invalid("unknown objective %q", s)
		}
		c.Objective = o
		c.normalizeEventType()

	case FieldIsCBO:
		var on bool
		if err := decode(m.Value, &on); err != nil {
			return err
		}
		c.IsCBO = on
		if on && c.BuyingType == BuyingReserved {
			// Campaign level budgets are auction only.
			c.BuyingType = BuyingAuction
			if c.CampaignBudgetOptimization == BudgetAdSetOptimize {
				c.CampaignBudgetOptimization = BudgetDaily
			}
		}

	case FieldCampaignBudgetOptimization:
		b, err := decodeEnum(m.Value, BudgetOptimization.ValidCampaign)
		if err != nil {
			return err
		}
		c.CampaignBudgetOptimization = b
		if b != BudgetAdSetOptimize {
			c.BuyingType = BuyingAuction
		}

	case FieldAdSetBudgetOptimization:
		b, err := decodeEnum(m.Value, BudgetOptimization.ValidAdSet)
		if err != nil {
			return err
		}
		c.AdSetBudgetOptimization = b

	case FieldCampaignBidStrategy:
		b, err := decodeEnum(m.Value, BidStrategy.Valid)
		if err != nil {
			return err
		}
		c.CampaignBidStrategy = b

	case FieldAdSetBidStrategy:
		b, err := decodeEnum(m.Value, func(b BidStrategy) bool { return b == "" || b.Valid() })
		if err != nil {
			return err
		}
		c.AdSetBidStrategy = b

	case FieldBuyingType:
		b, err := decodeEnum(m.Value, BuyingType.Valid)
		if err != nil {
			return err
		}
		c.BuyingType = b
		if b == BuyingReserved {
			c.CampaignBudgetOptimization = BudgetAdSetOptimize
			c.AdSetBidStrategy = ""
			c.IsCBO = false
		}

	case FieldCampaignBudgetValue:
		return decodeDecimal(m.Value, &c.CampaignBudgetValue)
	case FieldAdSetBudgetValue:
		return decodeDecimal(m.Value, &c.AdSetBudgetValue)
	case FieldBidAmount:
		return decodeDecimal(m.Value, &c.BidAmount)
	case FieldPredictionID:
		return decode(m.Value, &c.PredictionID)

	case FieldStartTime:
		return decodeTime(m.Value, &c.StartTime)
	case FieldEndTime:
		return decodeTime(m.Value, &c.EndTime)

	case FieldPrimaryText:
		return decode(m.Value, &c.PrimaryText)
	case FieldHeadline:
		return decode(m.Value, &c.Headline)
	case FieldDescription:
		return decode(m.Value, &c.Description)
	case FieldLink:
		return decode(m.Value, &c.Link)
	case FieldDisplayLink:
		return decode(m.Value, &c.DisplayLink)
	case FieldDestinationURL:
		return decode(m.Value, &c.DestinationURL)
	case FieldURLParameters:
		return decode(m.Value, &c.URLParameters)
	case FieldCallToAction:
		v, err := decodeEnum(m.Value, CallToAction.Valid)
		if err != nil {
			return err
		}
		c.CallToAction = v
	case FieldAdFormat:
		v, err := decodeEnum(m.Value, AdFormat.Valid)
		if err != nil {
			return err
		}
		c.AdFormat = v

	case FieldPlacementType:
		v, err := decodeEnum(m.Value, PlacementType.Valid)
		if err != nil {
			return err
		}
		c.PlacementType = v

	case FieldPlatforms:
		p := Platform(m.Key)
		if !p.Valid() {
			return invalid("unknown platform %q", m.Key)
		}
		var on bool
		if err := decode(m.Value, &on); err != nil {
			return err
		}
		if c.Platforms == nil {
			c.Platforms = make(map[Platform]bool)
		}
		if c.Placements == nil {
			c.Placements = make(map[Placement]bool)
		}
		c.Platforms[p] = on
		if !on {
			for _, slot := range platformPlacements[p] {
				c.Placements[slot] = false
			}
		}

	case FieldPlacements:
		slot := Placement(m.Key)
		if !slot.Valid() {
			return invalid("unknown placement %q", m.Key)
		}
		var on bool
		if err := decode(m.Value, &on); err != nil {
			return err
		}
		if c.Placements == nil {
			c.Placements = make(map[Placement]bool)
		}
		c.Placements[slot] = on

	case FieldTargetingType:
		v, err := decodeEnum(m.Value, TargetingType.Valid)
		if err != nil {
			return err
		}
		c.TargetingType = v

	case FieldLocation:
		return decodeSet(m.Value, &c.Location)
	case FieldCustomAudiences:
		return decodeSet(m.Value, &c.CustomAudiences)
	case FieldInterests:
		return decodeSet(m.Value, &c.Interests)

	case FieldAgeRange:
		var r AgeRange
		if err := decode(m.Value, &r); err != nil {
			return err
		}
		if !r.Valid() {
			return invalid("age range %v outside %d..%d", r, MinAge, MaxAge)
		}
		c.AgeRange = r

	case FieldGender:
		v, err := decodeEnum(m.Value, Gender.Valid)
		if err != nil {
			return err
		}
		c.Gender = v

	case FieldAttributionSetting:
		v, err := decodeEnum(m.Value, Attribution.Valid)
		if err != nil {
			return err
		}
		c.AttributionSetting = v

	case FieldEventType:
		var e EventType
		if err := decode(m.Value, &e); err != nil {
			return err
		}
		if !c.Objective.Allows(e) {
			return invalid("event type %q not allowed for %s", e, c.Objective)
		}
		c.EventType = e

	case FieldPixelID:
		return decode(m.Value, &c.PixelID)
	case FieldFacebookPageID:
		return decode(m.Value, &c.FacebookPageID)
	case FieldInstagramAccount:
		return decode(m.Value, &c.InstagramAccount)

	default:
		return invalid("unknown field")
	}
	return nil
}

// checkFrozen rejects edits of fields disabled by the current modes.
// Freezing never clears the stored values.
func (c *Configuration) checkFrozen(f Field) error {
	switch f {
	case FieldPlatforms, FieldPlacements:
		if !c.ManualPlacements() {
			return fmt.Errorf("%w: placement type is %s", ErrFieldFrozen, c.PlacementType)
		}
	case FieldCustomAudiences, FieldInterests, FieldGender, FieldAgeRange, FieldAttributionSetting:
		if !c.ManualTargeting() {
			return fmt.Errorf("%w: targeting type is %s", ErrFieldFrozen, c.TargetingType)
		}
	case FieldAdSetBidStrategy:
		if c.BuyingType == BuyingReserved {
			return fmt.Errorf("%w: reserved buying has no bid strategy", ErrFieldFrozen)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidMutation, fmt.Sprintf(format, args...))
}

func decode(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return invalid("missing value")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return invalid("%v", err)
	}
	return nil
}

func decodeEnum[T ~string](raw json.RawMessage, valid func(T) bool) (T, error) {
	var v T
	if err := decode(raw, &v); err != nil {
		return v, err
	}
	if !valid(v) {
		return v, invalid("unsupported value %q", string(v))
	}
	return v, nil
}

// decodeDecimal keeps the value exactly as typed. Numbers are accepted and
// stored with their literal text.
func decodeDecimal(raw json.RawMessage, dst *string) error {
	var n json.Number
	if err := decode(raw, &n); err == nil {
		*dst = n.String()
		return nil
	}
	return decode(raw, dst)
}

// decodeTime accepts RFC 3339 and the zone-less layout used by the form.
func decodeTime(raw json.RawMessage, dst *time.Time) error {
	var s string
	if err := decode(raw, &s); err != nil {
		return err
	}
	t, err := ParseScheduleTime(s)
	if err != nil {
		return invalid("%v", err)
	}
	*dst = t
	return nil
}

// decodeSet decodes a list of ids, trimming blanks and duplicates while
// keeping the first-seen order.
func decodeSet(raw json.RawMessage, dst *[]string) error {
	var in []string
	if err := decode(raw, &in); err != nil {
		return err
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	*dst = out
	return nil
}
