package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
	"quickcamp/internal/metrics"
)

// draft is one configuration being edited. Its lock is never held across a
// remote call; submitting marks the window in which the draft is read-only.
type draft struct {
	id string

	mu         sync.Mutex
	campaignID string
	// created is set once a submission created campaignID, so that a retry
	// after a failed attach updates the campaign instead of creating another.
	created      bool
	campaignName string
	cfg          domain.Configuration
	creatives    []domain.Creative
	attached     map[string]bool
	reserved     int64
	submitting   bool
	closed       bool
}

func (d *draft) view() *port.DraftView {
	return &port.DraftView{
		ID:         d.id,
		CampaignID: d.campaignID,
		Config:     d.cfg.Clone(),
		Creatives:  slices.Clone(d.creatives),
		Submitting: d.submitting,
	}
}

// editable reports why the draft cannot be changed right now. The caller
// holds d.mu.
func (d *draft) editable() error {
	switch {
	case d.closed:
		return port.ErrDraftNotFound
	case d.submitting:
		return port.ErrSubmissionInFlight
	}
	return nil
}

// removeFiles deletes the spooled creatives. The caller holds d.mu.
func (d *draft) removeFiles(log *slog.Logger) {
	for _, c := range d.creatives {
		if err := os.Remove(c.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn("remove spooled creative", slog.String("path", c.Path), slog.Any("error", err))
		}
	}
	d.creatives = nil
}

// OpenDraft initializes a configuration for the objective. A draft for an
// existing campaign without explicit overrides starts from the configuration
// last submitted for that campaign, when the ledger has one.
func (u *WizardUseCase) OpenDraft(ctx context.Context, sessionID string, req port.OpenDraftReq) (*port.DraftView, error) {
	objective, ok := domain.ParseObjective(req.Objective)
	if !ok {
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownObjective, req.Objective)
	}
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	campaignID := strings.TrimSpace(req.CampaignID)
	overrides := req.Overrides
	if campaignID != "" && len(overrides) == 0 {
		overrides = u.previousOverrides(ctx, s.context().AccountID, campaignID)
	}

	d := &draft{
		id:         uuid.NewString(),
		campaignID: campaignID,
		cfg:        domain.NewConfiguration(objective, overrides, u.now()),
		attached:   make(map[string]bool),
	}

	s.mu.Lock()
	s.drafts[d.id] = d
	s.mu.Unlock()

	u.log.Info("draft opened",
		slog.String("session", sessionID),
		slog.String("draft", d.id),
		slog.String("objective", objective.Short()),
		slog.String("campaign", campaignID),
	)

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view(), nil
}

func (u *WizardUseCase) previousOverrides(ctx context.Context, accountID, campaignID string) domain.Overrides {
	if accountID == "" {
		return nil
	}
	entry, err := u.deps.Ledger.FindLatest(ctx, accountID, campaignID)
	if err != nil {
		u.log.Warn("ledger lookup failed", slog.String("campaign", campaignID), slog.Any("error", err))
		return nil
	}
	if entry == nil {
		return nil
	}
	overrides, err := entry.Overrides()
	if err != nil {
		u.log.Warn("stored configuration unreadable", slog.Int64("ledger_id", entry.ID), slog.Any("error", err))
		return nil
	}
	return overrides
}

func (u *WizardUseCase) Draft(_ context.Context, sessionID, draftID string) (*port.DraftView, error) {
	_, d, err := u.draft(sessionID, draftID)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, port.ErrDraftNotFound
	}
	return d.view(), nil
}

// Mutate applies m through the rule engine. A rejected mutation leaves the
// draft unchanged.
func (u *WizardUseCase) Mutate(_ context.Context, sessionID, draftID string, m domain.Mutation) (*port.DraftView, error) {
	_, d, err := u.draft(sessionID, draftID)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err = d.editable(); err != nil {
		return nil, err
	}

	next, err := domain.Apply(d.cfg, m)
	switch {
	case errors.Is(err, domain.ErrFieldFrozen):
		metrics.RecordMutation(string(m.Field), "frozen")
		return nil, err
	case err != nil:
		// Field names of rejected mutations are caller supplied.
		metrics.RecordMutation("rejected", "invalid")
		return nil, err
	}
	metrics.RecordMutation(string(m.Field), "applied")
	d.cfg = next
	return d.view(), nil
}

// AddCreative spools the upload to disk and attaches it to the draft. The
// size is reserved before spooling so concurrent uploads cannot overshoot
// the limit together.
func (u *WizardUseCase) AddCreative(_ context.Context, sessionID, draftID string, up port.CreativeUpload) (*domain.Creative, error) {
	name := filepath.Base(strings.TrimSpace(up.FileName))
	if name == "." || name == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: file name is required", port.ErrInvalidRequest)
	}
	if up.Body == nil {
		return nil, fmt.Errorf("%w: empty upload", port.ErrInvalidRequest)
	}
	fileType := up.FileType
	if fileType == "" {
		fileType = mime.TypeByExtension(filepath.Ext(name))
	}

	_, d, err := u.draft(sessionID, draftID)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	if err = d.editable(); err != nil {
		d.mu.Unlock()
		return nil, err
	}
	reserve := up.Size
	if reserve < 0 {
		reserve = u.opts.MaxUploadBytes - domain.TotalSize(d.creatives) - d.reserved
		if reserve < 0 {
			reserve = 0
		}
	}
	if err = domain.CheckUploadSize(d.creatives, d.reserved+reserve, u.opts.MaxUploadBytes); err != nil {
		d.mu.Unlock()
		return nil, err
	}
	d.reserved += reserve
	d.mu.Unlock()

	path, size, err := u.spool(up.Body, reserve, up.Size < 0)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.reserved -= reserve
	if err != nil {
		return nil, err
	}
	if err = d.editable(); err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	c := domain.Creative{
		ID:       uuid.NewString(),
		FileName: name,
		FileType: fileType,
		FileSize: size,
		Path:     path,
	}
	d.creatives = append(d.creatives, c)
	u.log.Info("creative attached",
		slog.String("draft", d.id),
		slog.String("creative", c.ID),
		slog.Int64("size", size),
	)
	return &c, nil
}

// spool copies at most limit bytes of body into a temporary file. An empty
// body is rejected. A body longer than limit is rejected too: as too large
// when the size was not declared, as a size mismatch otherwise.
func (u *WizardUseCase) spool(body io.Reader, limit int64, undeclared bool) (string, int64, error) {
	f, err := os.CreateTemp(u.opts.SpoolDir, "creative-*")
	if err != nil {
		return "", 0, fmt.Errorf("create spool file: %w", err)
	}
	n, err := io.Copy(f, io.LimitReader(body, limit+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	switch {
	case err != nil:
		err = fmt.Errorf("spool creative: %w", err)
	case n == 0:
		err = fmt.Errorf("%w: empty upload", port.ErrInvalidRequest)
	case n > limit && undeclared:
		err = fmt.Errorf("%w: upload exceeds %d remaining bytes", domain.ErrUploadTooLarge, limit)
	case n > limit:
		err = fmt.Errorf("%w: upload larger than its declared size %d", port.ErrInvalidRequest, limit)
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return "", 0, err
	}
	return f.Name(), n, nil
}

// DiscardDraft drops the draft and its spooled creatives.
func (u *WizardUseCase) DiscardDraft(_ context.Context, sessionID, draftID string) error {
	s, d, err := u.draft(sessionID, draftID)
	if err != nil {
		return err
	}
	d.mu.Lock()
	err = d.editable()
	d.mu.Unlock()
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.drafts, draftID)
	s.mu.Unlock()
	u.discard(d)
	return nil
}

// discard closes d. Files of a draft being submitted are removed once the
// submission settles.
func (u *WizardUseCase) discard(d *draft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if !d.submitting {
		d.removeFiles(u.log)
	}
}

func (u *WizardUseCase) draft(sessionID, draftID string) (*wizardSession, *draft, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return nil, nil, err
	}
	s.mu.Lock()
	d, ok := s.drafts[draftID]
	s.mu.Unlock()
	if !ok {
		return nil, nil, port.ErrDraftNotFound
	}
	return s, d, nil
}
