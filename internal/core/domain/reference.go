package domain

import (
	"slices"
	"time"
)

// ReferenceKind names a read-only lookup list used to populate selectors.
type ReferenceKind string

const (
	ReferencePixels            ReferenceKind = "pixels"
	ReferencePages             ReferenceKind = "pages"
	ReferenceInstagramAccounts ReferenceKind = "instagram-accounts"
	ReferenceCountries         ReferenceKind = "countries"
	ReferenceInterests         ReferenceKind = "interests"
	ReferenceCustomAudiences   ReferenceKind = "audiences"
)

// ReferenceKinds lists every lookup kind.
var ReferenceKinds = []ReferenceKind{
	ReferencePixels,
	ReferencePages,
	ReferenceInstagramAccounts,
	ReferenceCountries,
	ReferenceInterests,
	ReferenceCustomAudiences,
}

func ParseReferenceKind(s string) (ReferenceKind, bool) {
	k := ReferenceKind(s)
	return k, slices.Contains(ReferenceKinds, k)
}

// AccountScoped reports whether the list depends on the active ad account.
func (k ReferenceKind) AccountScoped() bool {
	switch k {
	case ReferencePixels, ReferencePages, ReferenceInstagramAccounts, ReferenceCustomAudiences:
		return true
	}
	return false
}

// CacheKey names the cached list of k. Account scoped kinds are keyed per
// ad account.
func (k ReferenceKind) CacheKey(accountID string) string {
	if k.AccountScoped() {
		return string(k) + ":" + accountID
	}
	return string(k)
}

// ReferenceItem is one selectable option.
type ReferenceItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RemoteCampaign is a campaign that already exists on the ads platform.
type RemoteCampaign struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Objective string    `json:"objective,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

func containsID(items []ReferenceItem, id string) bool {
	return slices.ContainsFunc(items, func(it ReferenceItem) bool { return it.ID == id })
}

// CheckReferences verifies that every selected reference id appears in the
// corresponding fetched list. Kinds missing from lists are not checked.
// Frozen audience fields are only checked under manual targeting.
func CheckReferences(cfg Configuration, lists map[ReferenceKind][]ReferenceItem) error {
	var ps problems
	single := func(kind ReferenceKind, field Field, section Section, id string) {
		items, ok := lists[kind]
		if !ok || id == "" {
			return
		}
		if !containsID(items, id) {
			ps.add(string(field), section, "unknown "+string(kind)+" id "+id)
		}
	}
	many := func(kind ReferenceKind, field Field, section Section, ids []string) {
		items, ok := lists[kind]
		if !ok {
			return
		}
		for _, id := range ids {
			if !containsID(items, id) {
				ps.add(string(field), section, "unknown "+string(kind)+" id "+id)
			}
		}
	}

	single(ReferencePixels, FieldPixelID, SectionCampaignTracking, cfg.PixelID)
	single(ReferencePages, FieldFacebookPageID, SectionCampaignTracking, cfg.FacebookPageID)
	single(ReferenceInstagramAccounts, FieldInstagramAccount, SectionCampaignTracking, cfg.InstagramAccount)
	many(ReferenceCountries, FieldLocation, SectionTargetingDelivery, cfg.Location)
	if cfg.ManualTargeting() {
		many(ReferenceCustomAudiences, FieldCustomAudiences, SectionTargetingDelivery, cfg.CustomAudiences)
		many(ReferenceInterests, FieldInterests, SectionTargetingDelivery, cfg.Interests)
	}
	return ps.err()
}
