package port

import (
	"context"
	"errors"
	"io"
	"time"

	"quickcamp/internal/core/domain"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrDraftNotFound    = errors.New("draft not found")
	ErrUnknownObjective = errors.New("unknown objective")
	ErrInvalidRequest   = errors.New("invalid request")

	// ErrSubmissionInFlight is returned while another submission of the same
	// draft has not settled yet.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrNoActiveAccount is returned by account scoped operations before an
	// ad account was selected.
	ErrNoActiveAccount = errors.New("no active ad account")
)

// WizardUseCase defines the operations exposed by the campaign wizard. It is
// the primary port into the application: every front end drives the same
// sessions and drafts through it.
type WizardUseCase interface {
	// Login authenticates against the remote auth service and opens a
	// session holding the issued credentials.
	Login(ctx context.Context, identifier, secret string) (*SessionInfo, error)
	// Session describes an open session.
	Session(ctx context.Context, sessionID string) (*SessionInfo, error)
	// Logout tears the session down together with its drafts.
	Logout(ctx context.Context, sessionID string) error
	// SelectAccount sets the active ad account of the session.
	SelectAccount(ctx context.Context, sessionID, accountID string) (*SessionInfo, error)

	// Reference returns a selector list. Lookup failures are not errors:
	// the last cached list, or an empty one, is returned marked stale.
	Reference(ctx context.Context, sessionID string, kind domain.ReferenceKind) (*ReferenceList, error)
	// Campaigns lists the remote campaigns a draft may be added to.
	Campaigns(ctx context.Context, sessionID string) ([]domain.RemoteCampaign, error)
	// Ledger lists past submissions of the active ad account.
	Ledger(ctx context.Context, sessionID string) ([]domain.LedgerEntry, error)

	// OpenDraft initializes a configuration for the objective.
	OpenDraft(ctx context.Context, sessionID string, req OpenDraftReq) (*DraftView, error)
	Draft(ctx context.Context, sessionID, draftID string) (*DraftView, error)
	// Mutate applies one edit through the rule engine.
	Mutate(ctx context.Context, sessionID, draftID string, m domain.Mutation) (*DraftView, error)
	// AddCreative spools an upload and attaches it to the draft.
	AddCreative(ctx context.Context, sessionID, draftID string, upload CreativeUpload) (*domain.Creative, error)
	// Submit assembles the payload, sends it with every creative and
	// discards the draft on success.
	Submit(ctx context.Context, sessionID, draftID string, req SubmitReq) (*SubmitResp, error)
	DiscardDraft(ctx context.Context, sessionID, draftID string) error
}

type SessionInfo struct {
	ID              string     `json:"id"`
	AccountID       string     `json:"account_id,omitempty"`
	AccessExpiresAt *time.Time `json:"access_expires_at,omitempty"`
	Drafts          int        `json:"drafts"`
}

type ReferenceList struct {
	Kind  domain.ReferenceKind   `json:"kind"`
	Items []domain.ReferenceItem `json:"items"`
	// Stale is set when the lookup failed and a fallback was served.
	Stale bool `json:"stale"`
}

// OpenDraftReq starts a draft. A non-empty CampaignID adds the draft to an
// existing campaign; Overrides carry previously saved field values.
type OpenDraftReq struct {
	Objective  string           `json:"objective"`
	CampaignID string           `json:"campaign_id,omitempty"`
	Overrides  domain.Overrides `json:"overrides,omitempty"`
}

// DraftView is a snapshot of a draft returned to front ends.
type DraftView struct {
	ID         string               `json:"id"`
	CampaignID string               `json:"campaign_id,omitempty"`
	Config     domain.Configuration `json:"config"`
	Creatives  []domain.Creative    `json:"creatives"`
	Submitting bool                 `json:"submitting"`
}

// CreativeUpload is one file received from a front end. Size may be -1 when
// unknown; the limit is then enforced while spooling.
type CreativeUpload struct {
	FileName string
	FileType string
	Size     int64
	Body     io.Reader
}

type SubmitReq struct {
	CampaignName string `json:"campaign_name,omitempty"`
}

type SubmitResp struct {
	CampaignID  string `json:"campaign_id"`
	NewCampaign bool   `json:"new_campaign"`
	Creatives   int    `json:"creatives"`
	LedgerID    int64  `json:"ledger_id,omitempty"`
}
