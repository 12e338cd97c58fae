package domain

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"
)

// ScheduleLayout is the zone-less UTC layout the submission service expects
// for schedule timestamps.
const ScheduleLayout = "2006-01-02T15:04:05"

// ParseScheduleTime parses RFC 3339 timestamps and zone-less timestamps in
// ScheduleLayout, the latter read as UTC.
func ParseScheduleTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(ScheduleLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse schedule time %q: %w", s, err)
	}
	return t, nil
}

// Target tells whether the submission creates a new campaign or adds to an
// existing one.
type Target struct {
	New          bool
	CampaignName string
	CampaignID   string
}

// FormField is one flat key/value pair of the submission form.
type FormField struct {
	Name  string
	Value string
}

// Payload is the transport-ready submission: the ordered campaign form and
// the creatives to attach once the campaign id is known.
type Payload struct {
	Target    Target
	Fields    []FormField
	Creatives []Creative
}

// Get returns the value of the named field.
func (p Payload) Get(name string) (string, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Names returns the field names in submission order.
func (p Payload) Names() []string {
	names := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		names[i] = f.Name
	}
	return names
}

// WriteFields writes every form field into w. The caller closes w.
func (p Payload) WriteFields(w *multipart.Writer) error {
	for _, f := range p.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}
	return nil
}

// AssemblePayload validates the submission preconditions of cfg and converts
// it to a flat form. Only the live budget level is emitted; bid_amount,
// prediction_id and ad_set_end_time are emitted only when their visibility
// flag is set; platform and placement maps only under manual placements and
// the frozen audience fields only under manual targeting. Structured values
// are encoded as one JSON blob per field.
func AssemblePayload(cfg Configuration, target Target, creatives []Creative) (Payload, error) {
	cfg = cfg.Clone()
	cfg.enforceReserved()
	cfg.derive()

	if err := validate(cfg, target, creatives); err != nil {
		return Payload{}, err
	}

	b := formBuilder{}
	b.add("objective", string(cfg.Objective))
	if target.New {
		b.add("campaign_name", strings.TrimSpace(target.CampaignName))
	} else {
		b.add("campaign_id", strings.TrimSpace(target.CampaignID))
	}

	b.add(string(FieldIsCBO), strconv.FormatBool(cfg.IsCBO))
	if cfg.IsCBO {
		b.add(string(FieldCampaignBudgetOptimization), string(cfg.CampaignBudgetOptimization))
		b.add(string(FieldCampaignBudgetValue), cfg.CampaignBudgetValue)
		b.addNonEmpty(string(FieldCampaignBidStrategy), string(cfg.CampaignBidStrategy))
	} else {
		b.add(string(FieldAdSetBudgetOptimization), string(cfg.AdSetBudgetOptimization))
		b.add(string(FieldAdSetBudgetValue), cfg.AdSetBudgetValue)
		b.addNonEmpty(string(FieldAdSetBidStrategy), string(cfg.AdSetBidStrategy))
	}
	b.add(string(FieldBuyingType), string(cfg.BuyingType))
	if cfg.ShowBidAmount {
		b.add(string(FieldBidAmount), cfg.BidAmount)
	}
	if cfg.ShowPredictionID {
		b.add(string(FieldPredictionID), cfg.PredictionID)
	}
	b.add(string(FieldStartTime), cfg.StartTime.UTC().Format(ScheduleLayout))
	if cfg.ShowEndDate {
		b.add(string(FieldEndTime), cfg.EndTime.UTC().Format(ScheduleLayout))
	}

	b.add(string(FieldAdFormat), string(cfg.AdFormat))
	b.add(string(FieldPrimaryText), cfg.PrimaryText)
	b.add(string(FieldHeadline), cfg.Headline)
	b.add(string(FieldDescription), cfg.Description)
	b.add(string(FieldCallToAction), string(cfg.CallToAction))
	b.add(string(FieldDestinationURL), cfg.DestinationURL)
	b.add(string(FieldDisplayLink), cfg.DisplayLink)
	b.add(string(FieldLink), cfg.Link)
	b.add(string(FieldURLParameters), cfg.URLParameters)

	b.add(string(FieldPlacementType), string(cfg.PlacementType))
	if cfg.ManualPlacements() {
		b.addJSON(string(FieldPlatforms), cfg.Platforms)
		b.addJSON(string(FieldPlacements), cfg.Placements)
	}
	b.add(string(FieldTargetingType), string(cfg.TargetingType))
	b.addJSON(string(FieldLocation), nonNil(cfg.Location))
	if cfg.ManualTargeting() {
		b.addJSON(string(FieldAgeRange), cfg.AgeRange)
		b.add(string(FieldGender), string(cfg.Gender))
		b.addJSON(string(FieldCustomAudiences), nonNil(cfg.CustomAudiences))
		b.addJSON(string(FieldInterests), nonNil(cfg.Interests))
		b.add(string(FieldAttributionSetting), string(cfg.AttributionSetting))
	}

	b.add(string(FieldEventType), string(cfg.EventType))
	b.add(string(FieldPixelID), cfg.PixelID)
	b.add(string(FieldFacebookPageID), cfg.FacebookPageID)
	b.add(string(FieldInstagramAccount), cfg.InstagramAccount)

	if b.err != nil {
		return Payload{}, b.err
	}
	return Payload{
		Target:    target,
		Fields:    b.fields,
		Creatives: append([]Creative(nil), creatives...),
	}, nil
}

func validate(cfg Configuration, target Target, creatives []Creative) error {
	var ps problems
	if len(creatives) == 0 {
		ps.add("creatives", SectionCreativeUploading, "upload at least one creative")
	}
	if target.New && strings.TrimSpace(target.CampaignName) == "" {
		ps.add("campaign_name", SectionCampaign, "campaign name is required")
	}
	if !target.New && strings.TrimSpace(target.CampaignID) == "" {
		ps.add("campaign_id", SectionCampaign, "campaign id is required")
	}
	if cfg.ShowBidAmount && strings.TrimSpace(cfg.BidAmount) == "" {
		ps.add(string(FieldBidAmount), SectionBudgetSchedule, "bid amount is required by the bid strategy")
	}
	if cfg.ShowPredictionID && strings.TrimSpace(cfg.PredictionID) == "" {
		ps.add(string(FieldPredictionID), SectionBudgetSchedule, "prediction id is required for reserved buying")
	}
	if cfg.ShowEndDate && !cfg.EndTime.After(cfg.StartTime) {
		ps.add(string(FieldEndTime), SectionBudgetSchedule, "end time must be after start time for a lifetime budget")
	}
	if strings.TrimSpace(cfg.PixelID) == "" {
		ps.add(string(FieldPixelID), SectionCampaignTracking, "pixel is required")
	}
	if strings.TrimSpace(cfg.FacebookPageID) == "" {
		ps.add(string(FieldFacebookPageID), SectionCampaignTracking, "facebook page is required")
	}
	if strings.TrimSpace(cfg.InstagramAccount) == "" {
		ps.add(string(FieldInstagramAccount), SectionCampaignTracking, "instagram account is required")
	}
	return ps.err()
}

type formBuilder struct {
	fields []FormField
	err    error
}

func (b *formBuilder) add(name, value string) {
	b.fields = append(b.fields, FormField{Name: name, Value: value})
}

func (b *formBuilder) addNonEmpty(name, value string) {
	if value != "" {
		b.add(name, value)
	}
}

func (b *formBuilder) addJSON(name string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("encode %s: %w", name, err)
		}
		return
	}
	b.add(name, string(raw))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
