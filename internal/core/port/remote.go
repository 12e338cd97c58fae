package port

import (
	"context"
	"errors"
	"net/http"
	"time"

	"quickcamp/internal/core/domain"
)

var (
	// ErrUnauthenticated means the session can no longer be authenticated:
	// the credentials were cleared and the user must log in again.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidCredentials is returned by AuthAPI.Login for a rejected
	// identifier/secret pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRemoteSubmission wraps every non-2xx answer of the submission service.
	ErrRemoteSubmission = errors.New("remote submission failed")
)

// Requester performs one logical HTTP exchange.
type Requester interface {
	Do(req *http.Request) (*http.Response, error)
}

type streamingKey struct{}

// WithStreamingBody marks requests built with ctx as long uploads. A
// Requester sends them without an overall exchange timeout: only the wait
// for the response headers and ctx itself bound them.
func WithStreamingBody(ctx context.Context) context.Context {
	return context.WithValue(ctx, streamingKey{}, true)
}

// StreamingBody reports whether ctx was marked by WithStreamingBody.
func StreamingBody(ctx context.Context) bool {
	v, _ := ctx.Value(streamingKey{}).(bool)
	return v
}

// SessionClient is the authenticated transport of one wizard session. Do
// attaches the bearer credential and performs at most one refresh and replay
// when the remote answers 401.
type SessionClient interface {
	Requester
	// Credentials returns the currently held credential pair.
	Credentials() domain.Credentials
	// AccessExpiry returns the expiry claim of the access credential, if any.
	AccessExpiry() (time.Time, bool)
	// End clears the credentials without notifying the session-ended
	// collaborator.
	End()
}

// SessionClientFactory builds a SessionClient around freshly issued
// credentials. onEnded is invoked once when the client gives up on the
// session.
type SessionClientFactory interface {
	NewSessionClient(creds domain.Credentials, onEnded func()) SessionClient
}

// SessionContext is passed explicitly to every remote call: the session, its
// active ad account and the transport carrying its credentials.
type SessionContext struct {
	ID        string
	AccountID string
	Client    Requester
}

// AuthAPI talks to the remote authentication service.
type AuthAPI interface {
	// Login exchanges an identifier/secret pair for credentials.
	Login(ctx context.Context, identifier, secret string) (domain.Credentials, error)
	// Refresh exchanges a refresh credential for a new access credential.
	Refresh(ctx context.Context, refresh string) (string, error)
}

// CampaignAPI is the remote Campaign Submission Service.
type CampaignAPI interface {
	// CreateCampaign submits the campaign form and returns the remote id.
	CreateCampaign(ctx context.Context, sc SessionContext, p domain.Payload) (string, error)
	// UpdateCampaign submits the campaign form against an existing campaign.
	UpdateCampaign(ctx context.Context, sc SessionContext, campaignID string, p domain.Payload) error
	// AttachCreative uploads one creative to the campaign.
	AttachCreative(ctx context.Context, sc SessionContext, campaignID string, c domain.Creative) error
	// ListCampaigns returns the campaigns visible to the session.
	ListCampaigns(ctx context.Context, sc SessionContext) ([]domain.RemoteCampaign, error)
}

// CatalogAPI serves the read-only reference lists used by selectors.
type CatalogAPI interface {
	Lookup(ctx context.Context, sc SessionContext, kind domain.ReferenceKind) ([]domain.ReferenceItem, error)
}
