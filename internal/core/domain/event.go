package domain

import (
	"slices"
	"strings"
)

// Objective is the campaign goal chosen before the wizard opens. It decides
// which conversion events the ad set may optimise for.
type Objective string

const (
	ObjectiveSales   Objective = "OUTCOME_SALES"
	ObjectiveLeads   Objective = "OUTCOME_LEADS"
	ObjectiveTraffic Objective = "OUTCOME_TRAFFIC"
)

// EventType is the conversion event reported by the pixel or lead form.
type EventType string

const (
	EventPurchase             EventType = "PURCHASE"
	EventAddToCart            EventType = "ADD_TO_CART"
	EventInitiatedCheckout    EventType = "INITIATED_CHECKOUT"
	EventAddPaymentInfo       EventType = "ADD_PAYMENT_INFO"
	EventAddToWishlist        EventType = "ADD_TO_WISHLIST"
	EventCompleteRegistration EventType = "COMPLETE_REGISTRATION"
	EventDonate               EventType = "DONATE"
	EventSearch               EventType = "SEARCH"
	EventStartTrial           EventType = "START_TRIAL"
	EventSubscribe            EventType = "SUBSCRIBE"
	EventViewContent          EventType = "VIEW_CONTENT"
	EventOther                EventType = "OTHER"
	EventLead                 EventType = "LEAD"
	EventContact              EventType = "CONTACT"
	EventFindLocation         EventType = "FIND_LOCATION"
	EventSchedule             EventType = "SCHEDULE"
	EventSubmitApplication    EventType = "SUBMIT_APPLICATION"
	EventContentView          EventType = "CONTENT_VIEW"
	EventAdImpression         EventType = "AD_IMPRESSION"
)

// objectiveEvents is ordered: the first entry is the default event type of
// the objective.
var objectiveEvents = map[Objective][]EventType{
	ObjectiveSales: {
		EventPurchase, EventAddToCart, EventInitiatedCheckout, EventAddPaymentInfo,
		EventAddToWishlist, EventCompleteRegistration, EventDonate, EventSearch,
		EventStartTrial, EventSubscribe, EventViewContent, EventOther,
	},
	ObjectiveLeads: {
		EventLead, EventCompleteRegistration, EventContact, EventFindLocation,
		EventSchedule, EventStartTrial, EventSubmitApplication, EventSubscribe, EventOther,
	},
	ObjectiveTraffic: {
		EventLead, EventContentView, EventAdImpression, EventSearch, EventOther,
	},
}

var objectiveAliases = map[string]Objective{
	"OUTCOME_SALES":       ObjectiveSales,
	"WEBSITE_CONVERSIONS": ObjectiveSales,
	"CONVERSIONS":         ObjectiveSales,
	"WEBSITE":             ObjectiveSales,
	"OUTCOME_LEADS":       ObjectiveLeads,
	"LEAD_GENERATION":     ObjectiveLeads,
	"LEAD":                ObjectiveLeads,
	"OUTCOME_TRAFFIC":     ObjectiveTraffic,
	"TRAFFIC":             ObjectiveTraffic,
}

// ParseObjective accepts the canonical objective names as well as the
// class names (WEBSITE_CONVERSIONS, LEAD_GENERATION, TRAFFIC) and the short
// ledger names (website, lead, traffic).
func ParseObjective(s string) (Objective, bool) {
	o, ok := objectiveAliases[strings.ToUpper(strings.TrimSpace(s))]
	return o, ok
}

// Valid reports whether o is one of the known objectives.
func (o Objective) Valid() bool {
	_, ok := objectiveEvents[o]
	return ok
}

// Short returns the short name stored in the submission ledger.
func (o Objective) Short() string {
	switch o {
	case ObjectiveSales:
		return "website"
	case ObjectiveLeads:
		return "lead"
	case ObjectiveTraffic:
		return "traffic"
	default:
		return strings.ToLower(string(o))
	}
}

// EventTypes returns a copy of the allowed event types of o, default first.
// Unknown objectives allow nothing.
func (o Objective) EventTypes() []EventType {
	return slices.Clone(objectiveEvents[o])
}

// DefaultEventType is the first allowed event type, or "" for an unknown
// objective.
func (o Objective) DefaultEventType() EventType {
	events := objectiveEvents[o]
	if len(events) == 0 {
		return ""
	}
	return events[0]
}

// Allows reports whether e is in the allowed set of o.
func (o Objective) Allows(e EventType) bool {
	return slices.Contains(objectiveEvents[o], e)
}
