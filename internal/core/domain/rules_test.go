package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

func newSales(t *testing.T) Configuration {
	t.Helper()
	return NewConfiguration(ObjectiveSales, nil, fixedNow)
}

func mustApply(t *testing.T, cfg Configuration, ms ...Mutation) Configuration {
	t.Helper()
	next, err := ApplyAll(cfg, ms...)
	require.NoError(t, err)
	return next
}

func TestDefaultsForWebsiteConversions(t *testing.T) {
	cfg := newSales(t)

	assert.Equal(t, EventPurchase, cfg.EventType)
	assert.Equal(t, BudgetDaily, cfg.AdSetBudgetOptimization)
	assert.Equal(t, BidLowestCost, cfg.AdSetBidStrategy)
	assert.False(t, cfg.ShowEndDate)
	assert.False(t, cfg.ShowBidAmount)
	assert.False(t, cfg.ShowPredictionID)
	assert.False(t, cfg.IsCBO)
	assert.Equal(t, BuyingAuction, cfg.BuyingType)
	assert.Equal(t, "50.00", cfg.AdSetBudgetValue)
	assert.Equal(t, AgeRange{18, 65}, cfg.AgeRange)
	assert.Equal(t, Attribution7dClick, cfg.AttributionSetting)
	assert.Equal(t, PlacementAdvantagePlus, cfg.PlacementType)
	assert.Equal(t, TargetingAdvantage, cfg.TargetingType)
	assert.Equal(t, ObjectiveSales.EventTypes(), cfg.AllowedEventTypes)

	for _, p := range Platforms {
		assert.True(t, cfg.Platforms[p], p)
		for _, slot := range PlacementsOf(p) {
			assert.True(t, cfg.Placements[slot], slot)
		}
	}
}

func TestDefaultSchedule(t *testing.T) {
	start, end := DefaultSchedule(fixedNow)
	assert.Equal(t, time.Date(2024, time.March, 11, 4, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.March, 12, 4, 0, 0, 0, time.UTC), end)

	// Local offsets are normalised to UTC before picking the day.
	local := time.Date(2024, time.March, 10, 23, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))
	start, _ = DefaultSchedule(local)
	assert.Equal(t, time.Date(2024, time.March, 12, 4, 0, 0, 0, time.UTC), start)
}

func TestOverridesWin(t *testing.T) {
	overrides := Overrides{
		"ad_set_budget_optimization": []byte(`"LIFETIME_BUDGET"`),
		"ad_set_bid_strategy":        []byte(`"COST_CAP"`),
		"pixel_id":                   []byte(`"px-1"`),
		"platforms":                  []byte(`{"facebook":false}`),
		"age_range":                  []byte(`"not a range"`),
		"buying_type":                []byte(`"SOMETHING_ELSE"`),
	}
	cfg := NewConfiguration(ObjectiveSales, overrides, fixedNow)

	assert.Equal(t, BudgetLifetime, cfg.AdSetBudgetOptimization)
	assert.Equal(t, BidCostCap, cfg.AdSetBidStrategy)
	assert.Equal(t, "px-1", cfg.PixelID)
	assert.False(t, cfg.Platforms[PlatformFacebook])
	assert.True(t, cfg.Platforms[PlatformInstagram], "partial map override keeps other keys")
	assert.Equal(t, AgeRange{18, 65}, cfg.AgeRange, "undecodable override is skipped")
	assert.Equal(t, BuyingType("SOMETHING_ELSE"), cfg.BuyingType, "garbage strings pass through")
	assert.True(t, cfg.ShowEndDate)
	assert.True(t, cfg.ShowBidAmount)
}

func TestLegacyBudgetValueOverride(t *testing.T) {
	cfg := NewConfiguration(ObjectiveSales, Overrides{"budget_value": []byte(`"75.50"`)}, fixedNow)
	assert.Equal(t, "75.50", cfg.AdSetBudgetValue)

	cfg = NewConfiguration(ObjectiveSales, Overrides{
		"budget_value":        []byte(`"75.50"`),
		"ad_set_budget_value": []byte(`"10.00"`),
	}, fixedNow)
	assert.Equal(t, "10.00", cfg.AdSetBudgetValue)
}

func TestInitializerKeepsEventTypeAllowed(t *testing.T) {
	for _, o := range []Objective{ObjectiveSales, ObjectiveLeads, ObjectiveTraffic} {
		cfg := NewConfiguration(o, Overrides{"event_type": []byte(`"DONATE"`)}, fixedNow)
		assert.True(t, o.Allows(cfg.EventType), "%s got %s", o, cfg.EventType)
		assert.Equal(t, o.EventTypes(), cfg.AllowedEventTypes)
	}
}

func TestObjectiveChangeResetsEventType(t *testing.T) {
	cfg := mustApply(t, newSales(t), Set(FieldEventType, EventAddToCart))
	require.Equal(t, EventAddToCart, cfg.EventType)

	cfg = mustApply(t, cfg, Set(FieldObjective, "LEAD_GENERATION"))
	assert.Equal(t, ObjectiveLeads, cfg.Objective)
	assert.Equal(t, EventLead, cfg.EventType)
	assert.Equal(t, ObjectiveLeads.EventTypes(), cfg.AllowedEventTypes)

	// Still allowed after the change: kept.
	cfg = mustApply(t, cfg, Set(FieldEventType, EventOther), Set(FieldObjective, "TRAFFIC"))
	assert.Equal(t, EventOther, cfg.EventType)

	for _, o := range []string{"OUTCOME_SALES", "OUTCOME_LEADS", "OUTCOME_TRAFFIC"} {
		for _, e := range []EventType{EventPurchase, EventLead, EventSearch, EventOther, EventSubmitApplication} {
			start, err := Apply(newSales(t), Set(FieldEventType, e))
			if err != nil {
				start = newSales(t)
			}
			next := mustApply(t, start, Set(FieldObjective, o))
			assert.True(t, next.Objective.Allows(next.EventType), "%s/%s", o, e)
		}
	}
}

func TestEventTypeOutsideObjectiveRejected(t *testing.T) {
	cfg := newSales(t)
	next, err := Apply(cfg, Set(FieldEventType, EventFindLocation))
	require.ErrorIs(t, err, ErrInvalidMutation)
	assert.Equal(t, cfg, next)
}

func TestReservedBuying(t *testing.T) {
	cfg := mustApply(t, newSales(t), Set(FieldIsCBO, true))
	require.True(t, cfg.IsCBO)

	cfg = mustApply(t, cfg, Set(FieldBuyingType, BuyingReserved))
	assert.Equal(t, BudgetAdSetOptimize, cfg.CampaignBudgetOptimization)
	assert.Equal(t, BidStrategy(""), cfg.AdSetBidStrategy)
	assert.False(t, cfg.IsCBO)
	assert.True(t, cfg.ShowPredictionID)
	assert.False(t, cfg.ShowBidAmount)

	again := mustApply(t, cfg, Set(FieldBuyingType, BuyingReserved))
	assert.Equal(t, cfg, again, "reserved rule is idempotent")
}

func TestReservedFreezesAdSetBidStrategy(t *testing.T) {
	cfg := mustApply(t, newSales(t), Set(FieldBuyingType, BuyingReserved))
	_, err := Apply(cfg, Set(FieldAdSetBidStrategy, BidCostCap))
	require.ErrorIs(t, err, ErrFieldFrozen)
}

func TestCampaignBudgetOptimizationForcesAuction(t *testing.T) {
	cfg := mustApply(t, newSales(t), Set(FieldBuyingType, BuyingReserved))
	cfg = mustApply(t, cfg, Set(FieldCampaignBudgetOptimization, BudgetLifetime))

	assert.Equal(t, BuyingAuction, cfg.BuyingType)
	assert.False(t, cfg.ShowPredictionID)
	assert.Equal(t, BudgetLifetime, cfg.CampaignBudgetOptimization)
}

func TestEnablingCBOLeavesReservedBuying(t *testing.T) {
	cfg := mustApply(t, newSales(t), Set(FieldBuyingType, BuyingReserved), Set(FieldIsCBO, true))

	assert.True(t, cfg.IsCBO)
	assert.Equal(t, BuyingAuction, cfg.BuyingType)
	assert.Equal(t, BudgetDaily, cfg.CampaignBudgetOptimization)
}

func TestPlatformCascade(t *testing.T) {
	cfg := mustApply(t, newSales(t), Set(FieldPlacementType, PlacementManual))

	cfg = mustApply(t, cfg, Toggle(FieldPlatforms, string(PlatformFacebook), false))
	facebook := []Placement{
		PlacementFeeds, PlacementProfileFeed, PlacementMarketplace, PlacementVideoFeeds,
		PlacementRightColumn, PlacementStories, PlacementReels, PlacementInStream,
		PlacementSearch, PlacementFacebookReels,
	}
	for _, slot := range facebook {
		assert.False(t, cfg.Placements[slot], slot)
	}
	assert.True(t, cfg.Placements[PlacementInstagramFeeds], "other platforms untouched")

	cfg = mustApply(t, cfg, Toggle(FieldPlatforms, string(PlatformFacebook), true))
	assert.True(t, cfg.Platforms[PlatformFacebook])
	for _, slot := range facebook {
		assert.False(t, cfg.Placements[slot], "%s must not be restored", slot)
	}

	for _, p := range []Platform{PlatformInstagram, PlatformAudienceNetwork, PlatformMessenger} {
		off := mustApply(t, cfg, Toggle(FieldPlatforms, string(p), false))
		for _, slot := range PlacementsOf(p) {
			assert.False(t, off.Placements[slot], slot)
			assert.Equal(t, p, slot.Platform())
		}
	}
}

func TestApplyDoesNotAliasInput(t *testing.T) {
	cfg := mustApply(t, newSales(t), Set(FieldPlacementType, PlacementManual))
	_ = mustApply(t, cfg, Toggle(FieldPlatforms, string(PlatformMessenger), false))

	assert.True(t, cfg.Platforms[PlatformMessenger])
	assert.True(t, cfg.Placements[PlacementMessengerInbox])
}

func TestAdvantagePlusFreezesPlacements(t *testing.T) {
	cfg := newSales(t)
	_, err := Apply(cfg, Toggle(FieldPlatforms, string(PlatformFacebook), false))
	require.ErrorIs(t, err, ErrFieldFrozen)
	_, err = Apply(cfg, Toggle(FieldPlacements, string(PlacementReels), false))
	require.ErrorIs(t, err, ErrFieldFrozen)

	manual := mustApply(t, cfg,
		Set(FieldPlacementType, PlacementManual),
		Toggle(FieldPlacements, string(PlacementReels), false),
		Set(FieldPlacementType, PlacementAdvantagePlus),
	)
	assert.False(t, manual.Placements[PlacementReels], "freezing keeps manual selections")
}

func TestAdvantageTargetingFreezesAudience(t *testing.T) {
	cfg := newSales(t)
	frozen := []Mutation{
		Set(FieldCustomAudiences, []string{"a"}),
		Set(FieldInterests, []string{"i"}),
		Set(FieldGender, GenderMale),
		Set(FieldAgeRange, AgeRange{20, 30}),
		Set(FieldAttributionSetting, Attribution1dView),
	}
	for _, m := range frozen {
		_, err := Apply(cfg, m)
		assert.ErrorIs(t, err, ErrFieldFrozen, m.Field)
	}

	cfg = mustApply(t, cfg, Set(FieldLocation, []string{"US", "GB", "US", " "}))
	assert.Equal(t, []string{"US", "GB"}, cfg.Location, "location stays editable")

	manual := mustApply(t, cfg, Set(FieldTargetingType, TargetingManual))
	manual = mustApply(t, manual, frozen...)
	assert.Equal(t, GenderMale, manual.Gender)
	assert.Equal(t, AgeRange{20, 30}, manual.AgeRange)

	back := mustApply(t, manual, Set(FieldTargetingType, TargetingAdvantage))
	assert.Equal(t, []string{"i"}, back.Interests, "freezing keeps values")
}

func TestAgeRangeBounds(t *testing.T) {
	cfg := mustApply(t, newSales(t), Set(FieldTargetingType, TargetingManual))
	for _, r := range []AgeRange{{17, 30}, {30, 20}, {18, 66}} {
		_, err := Apply(cfg, Set(FieldAgeRange, r))
		assert.ErrorIs(t, err, ErrInvalidMutation, r)
	}
	next := mustApply(t, cfg, Set(FieldAgeRange, AgeRange{65, 65}))
	assert.Equal(t, AgeRange{65, 65}, next.AgeRange)
}

func TestShowBidAmountFollowsLiveLevel(t *testing.T) {
	base := newSales(t)

	// Ad set level is live.
	for _, s := range []BidStrategy{BidCostCap, BidLowestCostWithCap} {
		cfg := mustApply(t, base, Set(FieldAdSetBidStrategy, s))
		assert.True(t, cfg.ShowBidAmount, s)
	}
	cfg := mustApply(t, base, Set(FieldAdSetBidStrategy, BidLowestCost), Set(FieldCampaignBidStrategy, BidCostCap))
	assert.False(t, cfg.ShowBidAmount, "inactive campaign level does not count")

	// Campaign level is live.
	cfg = mustApply(t, cfg, Set(FieldIsCBO, true))
	assert.True(t, cfg.ShowBidAmount)
	cfg = mustApply(t, cfg, Set(FieldCampaignBidStrategy, BidLowestCost), Set(FieldAdSetBidStrategy, BidLowestCostWithCap))
	assert.False(t, cfg.ShowBidAmount, "inactive ad set level does not count")
	cfg = mustApply(t, cfg, Set(FieldCampaignBidStrategy, BidLowestCostWithCap))
	assert.True(t, cfg.ShowBidAmount)
}

func TestShowEndDateFollowsLiveLevel(t *testing.T) {
	cfg := mustApply(t, newSales(t), Set(FieldAdSetBudgetOptimization, BudgetLifetime))
	assert.True(t, cfg.ShowEndDate)

	cfg = mustApply(t, cfg, Set(FieldAdSetBudgetOptimization, BudgetDaily))
	assert.False(t, cfg.ShowEndDate)

	cfg = mustApply(t, cfg, Set(FieldCampaignBudgetOptimization, BudgetLifetime))
	assert.False(t, cfg.ShowEndDate, "campaign level is not live")
	cfg = mustApply(t, cfg, Set(FieldIsCBO, true))
	assert.True(t, cfg.ShowEndDate)
}

func TestInvalidMutations(t *testing.T) {
	cfg := newSales(t)
	cases := []Mutation{
		{Field: "no_such_field", Value: []byte(`"x"`)},
		Set(FieldBuyingType, "BARTER"),
		Set(FieldAdSetBudgetOptimization, BudgetAdSetOptimize),
		Set(FieldIsCBO, "yes"),
		Set(FieldStartTime, "tomorrow"),
		Set(FieldObjective, "BRAND_AWARENESS"),
		{Field: FieldHeadline},
	}
	for _, m := range cases {
		next, err := Apply(cfg, m)
		assert.ErrorIs(t, err, ErrInvalidMutation, m.Field)
		assert.Equal(t, cfg, next)
	}

	manual := mustApply(t, cfg, Set(FieldPlacementType, PlacementManual))
	_, err := Apply(manual, Toggle(FieldPlatforms, "tiktok", false))
	assert.ErrorIs(t, err, ErrInvalidMutation)
}

func TestScalarMutations(t *testing.T) {
	cfg := mustApply(t, newSales(t),
		Set(FieldAdSetBudgetValue, 120.5),
		Set(FieldBidAmount, "3.10"),
		Set(FieldStartTime, "2024-04-01T04:00:00"),
		Set(FieldEndTime, "2024-04-03T04:00:00Z"),
		Set(FieldHeadline, "Big sale"),
		Set(FieldCallToAction, CallToActionLearnMore),
		Set(FieldAdFormat, AdFormatCarousel),
	)
	assert.Equal(t, "120.5", cfg.AdSetBudgetValue)
	assert.Equal(t, "3.10", cfg.BidAmount)
	assert.Equal(t, time.Date(2024, time.April, 1, 4, 0, 0, 0, time.UTC), cfg.StartTime)
	assert.Equal(t, time.Date(2024, time.April, 3, 4, 0, 0, 0, time.UTC), cfg.EndTime)
	assert.Equal(t, "Big sale", cfg.Headline)
	assert.Equal(t, CallToActionLearnMore, cfg.CallToAction)
	assert.Equal(t, AdFormatCarousel, cfg.AdFormat)
}

func TestParseObjective(t *testing.T) {
	cases := map[string]Objective{
		"OUTCOME_SALES":       ObjectiveSales,
		"website_conversions": ObjectiveSales,
		"website":             ObjectiveSales,
		"lead":                ObjectiveLeads,
		"LEAD_GENERATION":     ObjectiveLeads,
		" traffic ":           ObjectiveTraffic,
	}
	for in, want := range cases {
		got, ok := ParseObjective(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseObjective("awareness")
	assert.False(t, ok)
	assert.Equal(t, "website", ObjectiveSales.Short())
}
