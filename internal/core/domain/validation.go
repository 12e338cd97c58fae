package domain

import (
	"errors"
	"strings"
)

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("validation failed")

// Section names the wizard section a problem belongs to, so front ends can
// scroll to it.
type Section string

const (
	SectionCreativeUploading Section = "creativeUploading"
	SectionBudgetSchedule    Section = "budgetSchedule"
	SectionCampaignTracking  Section = "campaignTracking"
	SectionPlacements        Section = "placements"
	SectionTargetingDelivery Section = "targetingDelivery"
	SectionAssets            Section = "assets"
	SectionCampaign          Section = "campaign"
)

// Problem is one failed precondition.
type Problem struct {
	Field   string  `json:"field"`
	Section Section `json:"section"`
	Message string  `json:"message"`
}

// ValidationError lists every failed precondition of a submission. It is
// detected locally, so no remote call has been made when it is returned.
type ValidationError struct {
	Problems []Problem `json:"problems"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Field+": "+p.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Has reports whether a problem was recorded for field.
func (e *ValidationError) Has(field string) bool {
	for _, p := range e.Problems {
		if p.Field == field {
			return true
		}
	}
	return false
}

// FirstSection returns the section of the first problem, the one a front end
// should focus.
func (e *ValidationError) FirstSection() Section {
	if len(e.Problems) == 0 {
		return ""
	}
	return e.Problems[0].Section
}

type problems []Problem

func (ps *problems) add(field string, section Section, msg string) {
	*ps = append(*ps, Problem{Field: field, Section: section, Message: msg})
}

func (ps problems) err() error {
	if len(ps) == 0 {
		return nil
	}
	return &ValidationError{Problems: ps}
}
