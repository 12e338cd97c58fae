package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submittable(t *testing.T) Configuration {
	t.Helper()
	return mustApply(t, newSales(t),
		Set(FieldPixelID, "px-1"),
		Set(FieldFacebookPageID, "page-1"),
		Set(FieldInstagramAccount, "ig-1"),
		Set(FieldHeadline, "Spring sale"),
		Set(FieldLocation, []string{"US"}),
	)
}

var oneCreative = []Creative{{ID: "c1", FileName: "a.png", FileType: "image/png", FileSize: 10}}

func TestAssembleNewCampaignDefaults(t *testing.T) {
	p, err := AssemblePayload(submittable(t), Target{New: true, CampaignName: " Spring "}, oneCreative)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"objective", "campaign_name", "isCBO",
		"ad_set_budget_optimization", "ad_set_budget_value", "ad_set_bid_strategy",
		"buying_type", "app_events",
		"ad_format", "ad_creative_primary_text", "ad_creative_headline", "ad_creative_description",
		"call_to_action", "destination_url", "display_link", "link", "url_parameters",
		"placement_type", "targeting_type", "location",
		"event_type", "pixel_id", "facebook_page_id", "instagram_account",
	}, p.Names())

	name, _ := p.Get("campaign_name")
	assert.Equal(t, "Spring", name)
	start, _ := p.Get("app_events")
	assert.Equal(t, "2024-03-11T04:00:00", start)
	loc, _ := p.Get("location")
	assert.JSONEq(t, `["US"]`, loc)
	cbo, _ := p.Get("isCBO")
	assert.Equal(t, "false", cbo)
	assert.Len(t, p.Creatives, 1)
}

func TestAssembleExistingCampaign(t *testing.T) {
	p, err := AssemblePayload(submittable(t), Target{CampaignID: "123"}, oneCreative)
	require.NoError(t, err)

	id, ok := p.Get("campaign_id")
	assert.True(t, ok)
	assert.Equal(t, "123", id)
	_, ok = p.Get("campaign_name")
	assert.False(t, ok)
}

func TestAssembleEmitsOnlyLiveBudgetLevel(t *testing.T) {
	cfg := mustApply(t, submittable(t),
		Set(FieldIsCBO, true),
		Set(FieldCampaignBudgetValue, "200"),
		Set(FieldAdSetBudgetValue, "5"),
	)
	p, err := AssemblePayload(cfg, Target{New: true, CampaignName: "x"}, oneCreative)
	require.NoError(t, err)

	v, ok := p.Get("campaign_budget_value")
	assert.True(t, ok)
	assert.Equal(t, "200", v)
	for _, name := range []string{"ad_set_budget_optimization", "ad_set_budget_value", "ad_set_bid_strategy"} {
		_, ok = p.Get(name)
		assert.False(t, ok, name)
	}
}

func TestAssembleConditionalFields(t *testing.T) {
	cfg := mustApply(t, submittable(t),
		Set(FieldAdSetBudgetOptimization, BudgetLifetime),
		Set(FieldAdSetBidStrategy, BidCostCap),
		Set(FieldBidAmount, "2.50"),
	)
	p, err := AssemblePayload(cfg, Target{New: true, CampaignName: "x"}, oneCreative)
	require.NoError(t, err)

	bid, ok := p.Get("bid_amount")
	assert.True(t, ok)
	assert.Equal(t, "2.50", bid)
	end, ok := p.Get("ad_set_end_time")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-12T04:00:00", end)
	_, ok = p.Get("prediction_id")
	assert.False(t, ok)

	reserved := mustApply(t, submittable(t), Set(FieldBuyingType, BuyingReserved), Set(FieldPredictionID, "pred-9"))
	p, err = AssemblePayload(reserved, Target{New: true, CampaignName: "x"}, oneCreative)
	require.NoError(t, err)
	pred, ok := p.Get("prediction_id")
	assert.True(t, ok)
	assert.Equal(t, "pred-9", pred)
	_, ok = p.Get("ad_set_bid_strategy")
	assert.False(t, ok, "cleared bid strategy is omitted")
}

func TestAssembleManualModes(t *testing.T) {
	cfg := mustApply(t, submittable(t),
		Set(FieldPlacementType, PlacementManual),
		Toggle(FieldPlatforms, string(PlatformMessenger), false),
		Set(FieldTargetingType, TargetingManual),
		Set(FieldInterests, []string{"int-1"}),
	)
	p, err := AssemblePayload(cfg, Target{New: true, CampaignName: "x"}, oneCreative)
	require.NoError(t, err)

	raw, ok := p.Get("platforms")
	require.True(t, ok)
	var platforms map[Platform]bool
	require.NoError(t, json.Unmarshal([]byte(raw), &platforms))
	assert.False(t, platforms[PlatformMessenger])
	assert.True(t, platforms[PlatformFacebook])

	raw, ok = p.Get("placements")
	require.True(t, ok)
	var placements map[Placement]bool
	require.NoError(t, json.Unmarshal([]byte(raw), &placements))
	assert.False(t, placements[PlacementMessengerInbox])
	assert.Len(t, placements, 22)

	for name, want := range map[string]string{
		"age_range":           "[18,65]",
		"gender":              "All",
		"custom_audiences":    "[]",
		"interests":           `["int-1"]`,
		"attribution_setting": "7d_click",
	} {
		got, ok := p.Get(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestAssembleRejectsIncompleteDraft(t *testing.T) {
	cfg := mustApply(t, newSales(t),
		Set(FieldAdSetBudgetOptimization, BudgetLifetime),
		Set(FieldEndTime, "2024-03-11T04:00:00"),
		Set(FieldAdSetBidStrategy, BidLowestCostWithCap),
	)
	_, err := AssemblePayload(cfg, Target{New: true}, nil)
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	for _, field := range []string{
		"creatives", "campaign_name", "bid_amount", "ad_set_end_time",
		"pixel_id", "facebook_page_id", "instagram_account",
	} {
		assert.True(t, verr.Has(field), field)
	}
	assert.False(t, verr.Has("prediction_id"))
	assert.Equal(t, SectionCreativeUploading, verr.FirstSection())

	reserved := mustApply(t, submittable(t), Set(FieldBuyingType, BuyingReserved))
	_, err = AssemblePayload(reserved, Target{CampaignID: " "}, oneCreative)
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("prediction_id"))
	assert.True(t, verr.Has("campaign_id"))
}

func TestAssembleRecomputesStaleFlags(t *testing.T) {
	cfg := submittable(t)
	cfg.AdSetBidStrategy = BidCostCap
	cfg.ShowBidAmount = false

	_, err := AssemblePayload(cfg, Target{New: true, CampaignName: "x"}, oneCreative)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("bid_amount"))
	assert.False(t, cfg.ShowBidAmount, "input is not modified")
}

func TestAssembleReservedOverridesForceAdSetLevel(t *testing.T) {
	overrides := Overrides{}
	for k, v := range map[string]any{
		"buying_type":       "RESERVED",
		"isCBO":             true,
		"prediction_id":     "pred-1",
		"pixel_id":          "px-1",
		"facebook_page_id":  "page-1",
		"instagram_account": "ig-1",
		"location":          []string{"US"},
	} {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		overrides[k] = raw
	}
	cfg := NewConfiguration(ObjectiveSales, overrides, fixedNow)
	assert.Equal(t, BuyingReserved, cfg.BuyingType)
	assert.False(t, cfg.IsCBO)
	assert.Equal(t, BudgetAdSetOptimize, cfg.CampaignBudgetOptimization)

	// a configuration built by hand bypasses NewConfiguration
	cfg.IsCBO = true
	cfg.CampaignBudgetOptimization = BudgetDaily
	cfg.AdSetBidStrategy = BidCostCap
	p, err := AssemblePayload(cfg, Target{New: true, CampaignName: "x"}, oneCreative)
	require.NoError(t, err)

	cbo, _ := p.Get("isCBO")
	assert.Equal(t, "false", cbo)
	_, ok := p.Get("campaign_budget_optimization")
	assert.False(t, ok)
	_, ok = p.Get("ad_set_bid_strategy")
	assert.False(t, ok)
	buying, _ := p.Get("buying_type")
	assert.Equal(t, "RESERVED", buying)
	pred, _ := p.Get("prediction_id")
	assert.Equal(t, "pred-1", pred)
}

func TestPayloadWriteFields(t *testing.T) {
	p, err := AssemblePayload(submittable(t), Target{New: true, CampaignName: "x"}, oneCreative)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, p.WriteFields(w))
	require.NoError(t, w.Close())

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"px-1"}, form.Value["pixel_id"])
	assert.Equal(t, []string{"Spring sale"}, form.Value["ad_creative_headline"])
}

func TestCheckReferences(t *testing.T) {
	cfg := mustApply(t, submittable(t), Set(FieldLocation, []string{"US", "XX"}))
	lists := map[ReferenceKind][]ReferenceItem{
		ReferencePixels:    {{ID: "px-1", Name: "Main"}},
		ReferencePages:     {{ID: "page-2", Name: "Other"}},
		ReferenceCountries: {{ID: "US", Name: "United States"}},
		ReferenceInterests: {},
	}

	err := CheckReferences(cfg, lists)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("facebook_page_id"))
	assert.True(t, verr.Has("location"))
	assert.False(t, verr.Has("pixel_id"))
	assert.False(t, verr.Has("instagram_account"), "kind not fetched")

	manual := mustApply(t, cfg,
		Set(FieldLocation, []string{"US"}),
		Set(FieldFacebookPageID, "page-2"),
		Set(FieldTargetingType, TargetingManual),
		Set(FieldInterests, []string{"int-1"}),
	)
	err = CheckReferences(manual, lists)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []Problem{{
		Field:   "interests",
		Section: SectionTargetingDelivery,
		Message: "unknown interests id int-1",
	}}, verr.Problems)

	manual.TargetingType = TargetingAdvantage
	assert.NoError(t, CheckReferences(manual, lists))
}

func TestCheckUploadSize(t *testing.T) {
	attached := []Creative{{FileSize: 60}, {FileSize: 30}}
	assert.NoError(t, CheckUploadSize(attached, 10, 100))
	assert.ErrorIs(t, CheckUploadSize(attached, 11, 100), ErrUploadTooLarge)
	assert.ErrorIs(t, CheckUploadSize(nil, -1, 100), ErrUploadTooLarge)
	assert.NoError(t, CheckUploadSize(attached, 1<<30, 0))
	assert.ErrorIs(t, CheckUploadSize([]Creative{{FileSize: DefaultMaxUploadBytes}}, 1, 0), ErrUploadTooLarge)
}

func TestParseScheduleTime(t *testing.T) {
	a, err := ParseScheduleTime("2024-05-01T10:00:00+02:00")
	require.NoError(t, err)
	b, err := ParseScheduleTime("2024-05-01T08:00:00")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	_, err = ParseScheduleTime("05/01/2024")
	assert.Error(t, err)
}

func TestReferenceCacheKey(t *testing.T) {
	assert.Equal(t, "pixels:act_1", ReferencePixels.CacheKey("act_1"))
	assert.Equal(t, "countries", ReferenceCountries.CacheKey("act_1"))
}
