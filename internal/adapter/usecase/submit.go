package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
	"quickcamp/internal/metrics"
)

// Submit validates the draft, sends the campaign form and then every
// creative. On success the submission is recorded in the ledger and the
// draft is discarded. A failed submission leaves the draft intact; when the
// campaign was already created the retry updates it and attaches only the
// creatives that did not make it.
func (u *WizardUseCase) Submit(ctx context.Context, sessionID, draftID string, req port.SubmitReq) (*port.SubmitResp, error) {
	s, d, err := u.draft(sessionID, draftID)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	if err = d.editable(); err != nil {
		d.mu.Unlock()
		return nil, err
	}
	if d.reserved > 0 {
		d.mu.Unlock()
		return nil, fmt.Errorf("%w: creative uploads still in progress", port.ErrSubmissionInFlight)
	}
	target := domain.Target{
		New:          d.campaignID == "",
		CampaignName: strings.TrimSpace(req.CampaignName),
		CampaignID:   d.campaignID,
	}
	payload, err := domain.AssemblePayload(d.cfg, target, d.creatives)
	if err != nil {
		d.mu.Unlock()
		metrics.RecordSubmission("invalid")
		return nil, err
	}
	cfg := d.cfg.Clone()
	campaignID, created, name := d.campaignID, d.created, d.campaignName
	if target.New {
		name = target.CampaignName
	}
	attached := make(map[string]bool, len(d.attached))
	for id := range d.attached {
		attached[id] = true
	}
	d.submitting = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.submitting = false
		if d.closed {
			d.removeFiles(u.log)
		}
		d.mu.Unlock()
	}()

	sc := s.context()
	log := u.log.With(slog.String("session", sessionID), slog.String("draft", draftID))

	if u.opts.StrictReferences {
		if err = domain.CheckReferences(cfg, u.referenceLists(ctx, sc)); err != nil {
			metrics.RecordSubmission("invalid")
			return nil, err
		}
	}

	switch {
	case campaignID == "":
		campaignID, err = u.deps.Campaigns.CreateCampaign(ctx, sc, payload)
		if err != nil {
			return nil, u.submitFailed(log, "create campaign", err)
		}
		d.mu.Lock()
		d.campaignID, d.created, d.campaignName = campaignID, true, name
		d.mu.Unlock()
		log.Info("campaign created", slog.String("campaign", campaignID))
	default:
		if err = u.deps.Campaigns.UpdateCampaign(ctx, sc, campaignID, payload); err != nil {
			return nil, u.submitFailed(log, "update campaign", err)
		}
	}

	for _, c := range payload.Creatives {
		if attached[c.ID] {
			continue
		}
		if err = u.deps.Campaigns.AttachCreative(ctx, sc, campaignID, c); err != nil {
			return nil, u.submitFailed(log, "attach creative "+c.FileName, err)
		}
		d.mu.Lock()
		d.attached[c.ID] = true
		d.mu.Unlock()
	}

	resp := &port.SubmitResp{
		CampaignID:  campaignID,
		NewCampaign: target.New || created,
		Creatives:   len(payload.Creatives),
	}
	resp.LedgerID = u.record(ctx, log, sc, cfg, name, resp)

	s.mu.Lock()
	delete(s.drafts, draftID)
	s.mu.Unlock()
	u.discard(d)

	metrics.RecordSubmission("success")
	log.Info("submission complete",
		slog.String("campaign", campaignID),
		slog.Bool("new_campaign", resp.NewCampaign),
		slog.Bool("retried", created),
		slog.Int("creatives", resp.Creatives),
	)
	return resp, nil
}

func (u *WizardUseCase) submitFailed(log *slog.Logger, step string, err error) error {
	outcome := "remote_error"
	if errors.Is(err, port.ErrUnauthenticated) {
		outcome = "unauthenticated"
	}
	metrics.RecordSubmission(outcome)
	log.Error("submission failed", slog.String("step", step), slog.Any("error", err))
	return fmt.Errorf("%s: %w", step, err)
}

// record appends the submission to the ledger. A ledger failure does not fail
// the submission: the campaign already exists remotely.
func (u *WizardUseCase) record(ctx context.Context, log *slog.Logger, sc port.SessionContext, cfg domain.Configuration, name string, resp *port.SubmitResp) int64 {
	snapshot, err := json.Marshal(cfg)
	if err != nil {
		log.Warn("encode configuration snapshot", slog.Any("error", err))
	}
	entry := &domain.LedgerEntry{
		CampaignID:    resp.CampaignID,
		Name:          name,
		Objective:     cfg.Objective,
		AccountID:     sc.AccountID,
		NewCampaign:   resp.NewCampaign,
		CreativeCount: resp.Creatives,
		Config:        snapshot,
	}
	if err = u.deps.Ledger.Record(ctx, entry); err != nil {
		log.Error("record submission", slog.String("campaign", resp.CampaignID), slog.Any("error", err))
		return 0
	}
	return entry.ID
}
