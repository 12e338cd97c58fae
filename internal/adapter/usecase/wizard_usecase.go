package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
)

// Deps are the outbound ports of the wizard. Cache and Ledger are optional.
type Deps struct {
	Auth      port.AuthAPI
	Campaigns port.CampaignAPI
	Catalog   port.CatalogAPI
	Clients   port.SessionClientFactory
	Cache     port.ReferenceCache
	Ledger    port.LedgerRepository
}

// Options tune draft handling. Zero values select the defaults.
type Options struct {
	MaxUploadBytes     int64
	StrictReferences   bool
	SpoolDir           string
	LedgerLimit        int
	SessionIdleTimeout time.Duration
}

// WizardUseCase hosts wizard sessions and their drafts in memory and drives
// the remote services on their behalf. It implements port.WizardUseCase.
type WizardUseCase struct {
	deps Deps
	opts Options
	log  *slog.Logger
	now  func() time.Time

	mu       sync.RWMutex
	sessions map[string]*wizardSession
}

var _ port.WizardUseCase = (*WizardUseCase)(nil)

type wizardSession struct {
	id     string
	client port.SessionClient

	mu        sync.Mutex
	accountID string
	drafts    map[string]*draft
	lastSeen  time.Time
}

func NewWizardUseCase(deps Deps, opts Options, log *slog.Logger) *WizardUseCase {
	if deps.Ledger == nil {
		deps.Ledger = nopLedger{}
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = domain.DefaultMaxUploadBytes
	}
	if opts.SpoolDir == "" {
		opts.SpoolDir = os.TempDir()
	}
	if opts.LedgerLimit <= 0 {
		opts.LedgerLimit = 50
	}
	if log == nil {
		log = slog.Default()
	}
	return &WizardUseCase{
		deps:     deps,
		opts:     opts,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*wizardSession),
	}
}

// Login authenticates and opens a session. The session is torn down by the
// session client as soon as its credentials can no longer be refreshed.
func (u *WizardUseCase) Login(ctx context.Context, identifier, secret string) (*port.SessionInfo, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || secret == "" {
		return nil, fmt.Errorf("%w: identifier and secret are required", port.ErrInvalidRequest)
	}
	creds, err := u.deps.Auth.Login(ctx, identifier, secret)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	s := &wizardSession{
		id:       id,
		drafts:   make(map[string]*draft),
		lastSeen: u.now(),
	}
	s.client = u.deps.Clients.NewSessionClient(creds, func() {
		u.log.Info("session ended by credential failure", slog.String("session", id))
		u.endSession(id)
	})

	u.mu.Lock()
	u.sessions[id] = s
	u.mu.Unlock()

	u.log.Info("session opened", slog.String("session", id))
	return u.info(s), nil
}

func (u *WizardUseCase) Session(_ context.Context, sessionID string) (*port.SessionInfo, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	return u.info(s), nil
}

// Logout drops the session, its drafts and their spooled creatives.
func (u *WizardUseCase) Logout(_ context.Context, sessionID string) error {
	s := u.endSession(sessionID)
	if s == nil {
		return port.ErrSessionNotFound
	}
	s.client.End()
	u.log.Info("session closed", slog.String("session", sessionID))
	return nil
}

func (u *WizardUseCase) SelectAccount(_ context.Context, sessionID, accountID string) (*port.SessionInfo, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, fmt.Errorf("%w: account id is required", port.ErrInvalidRequest)
	}
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.accountID = accountID
	s.mu.Unlock()
	return u.info(s), nil
}

func (u *WizardUseCase) Campaigns(ctx context.Context, sessionID string) ([]domain.RemoteCampaign, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	return u.deps.Campaigns.ListCampaigns(ctx, s.context())
}

func (u *WizardUseCase) Ledger(ctx context.Context, sessionID string) ([]domain.LedgerEntry, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	sc := s.context()
	if sc.AccountID == "" {
		return nil, port.ErrNoActiveAccount
	}
	return u.deps.Ledger.ListByAccount(ctx, sc.AccountID, u.opts.LedgerLimit)
}

// Run sweeps idle sessions until ctx is done. It returns immediately when no
// idle timeout is configured.
func (u *WizardUseCase) Run(ctx context.Context) {
	if u.opts.SessionIdleTimeout <= 0 {
		return
	}
	interval := min(u.opts.SessionIdleTimeout/2, time.Minute)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.Sweep()
		}
	}
}

// Sweep drops sessions idle for longer than the configured timeout and
// returns how many were dropped.
func (u *WizardUseCase) Sweep() int {
	if u.opts.SessionIdleTimeout <= 0 {
		return 0
	}
	cutoff := u.now().Add(-u.opts.SessionIdleTimeout)

	u.mu.RLock()
	var idle []string
	for id, s := range u.sessions {
		s.mu.Lock()
		if s.lastSeen.Before(cutoff) && !s.busy() {
			idle = append(idle, id)
		}
		s.mu.Unlock()
	}
	u.mu.RUnlock()

	for _, id := range idle {
		if s := u.endSession(id); s != nil {
			s.client.End()
			u.log.Info("idle session dropped", slog.String("session", id))
		}
	}
	return len(idle)
}

// Close drops every session. Used on shutdown to remove spooled files.
func (u *WizardUseCase) Close() {
	u.mu.RLock()
	ids := make([]string, 0, len(u.sessions))
	for id := range u.sessions {
		ids = append(ids, id)
	}
	u.mu.RUnlock()
	for _, id := range ids {
		if s := u.endSession(id); s != nil {
			s.client.End()
		}
	}
}

func (u *WizardUseCase) session(id string) (*wizardSession, error) {
	u.mu.RLock()
	s, ok := u.sessions[id]
	u.mu.RUnlock()
	if !ok {
		return nil, port.ErrSessionNotFound
	}
	s.mu.Lock()
	s.lastSeen = u.now()
	s.mu.Unlock()
	return s, nil
}

// endSession unregisters the session and discards its drafts. It returns
// nil when the session was already gone.
func (u *WizardUseCase) endSession(id string) *wizardSession {
	u.mu.Lock()
	s, ok := u.sessions[id]
	delete(u.sessions, id)
	u.mu.Unlock()
	if !ok {
		return nil
	}

	s.mu.Lock()
	drafts := s.drafts
	s.drafts = make(map[string]*draft)
	s.mu.Unlock()
	for _, d := range drafts {
		u.discard(d)
	}
	return s
}

func (u *WizardUseCase) info(s *wizardSession) *port.SessionInfo {
	s.mu.Lock()
	info := &port.SessionInfo{ID: s.id, AccountID: s.accountID, Drafts: len(s.drafts)}
	s.mu.Unlock()
	if exp, ok := s.client.AccessExpiry(); ok {
		info.AccessExpiresAt = &exp
	}
	return info
}

func (s *wizardSession) context() port.SessionContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return port.SessionContext{ID: s.id, AccountID: s.accountID, Client: s.client}
}

// busy reports whether a draft of the session is being submitted. The caller
// holds s.mu.
func (s *wizardSession) busy() bool {
	for _, d := range s.drafts {
		d.mu.Lock()
		submitting := d.submitting
		d.mu.Unlock()
		if submitting {
			return true
		}
	}
	return false
}

type nopLedger struct{}

func (nopLedger) Record(context.Context, *domain.LedgerEntry) error { return nil }

func (nopLedger) ListByAccount(context.Context, string, int) ([]domain.LedgerEntry, error) {
	return []domain.LedgerEntry{}, nil
}

func (nopLedger) FindLatest(context.Context, string, string) (*domain.LedgerEntry, error) {
	return nil, nil
}
