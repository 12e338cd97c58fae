package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
)

// CampaignClient is the Campaign Submission Service. Every call goes through
// the session's own client so credentials and refresh stay per session.
type CampaignClient struct {
	base *url.URL
}

var _ port.CampaignAPI = (*CampaignClient)(nil)

func NewCampaignClient(base *url.URL) *CampaignClient {
	return &CampaignClient{base: base}
}

// CreateCampaign posts the form to campaigns/ and returns the id of the new
// campaign.
func (c *CampaignClient) CreateCampaign(ctx context.Context, sc port.SessionContext, p domain.Payload) (string, error) {
	req, err := newFormRequest(ctx, http.MethodPost, endpoint(c.base, "campaigns"), p)
	if err != nil {
		return "", err
	}
	var out struct {
		ID flexID `json:"id"`
	}
	if err = do(sc, req, &out); err != nil {
		return "", fmt.Errorf("create campaign: %w", err)
	}
	if out.ID == "" {
		return "", errors.New("create campaign: no id in response")
	}
	return string(out.ID), nil
}

// UpdateCampaign puts the form to campaigns/{id}/.
func (c *CampaignClient) UpdateCampaign(ctx context.Context, sc port.SessionContext, campaignID string, p domain.Payload) error {
	req, err := newFormRequest(ctx, http.MethodPut, endpoint(c.base, "campaigns", campaignID), p)
	if err != nil {
		return err
	}
	if err = do(sc, req, nil); err != nil {
		return fmt.Errorf("update campaign %s: %w", campaignID, err)
	}
	return nil
}

// AttachCreative uploads one spooled creative to campaigns/{id}/creatives/.
// The upload is bounded by ctx, not by the client's request timeout.
func (c *CampaignClient) AttachCreative(ctx context.Context, sc port.SessionContext, campaignID string, cr domain.Creative) error {
	req, err := newCreativeRequest(port.WithStreamingBody(ctx), endpoint(c.base, "campaigns", campaignID, "creatives"), cr)
	if err != nil {
		return err
	}
	if err = do(sc, req, nil); err != nil {
		return fmt.Errorf("attach creative %s: %w", cr.FileName, err)
	}
	return nil
}

type campaignDTO struct {
	ID        flexID `json:"id"`
	Name      string `json:"name"`
	Objective string `json:"objective"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func (c *CampaignClient) ListCampaigns(ctx context.Context, sc port.SessionContext) ([]domain.RemoteCampaign, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint(c.base, "campaigns"), nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err = do(sc, req, &raw); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	list, err := unwrapList(raw)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	var dtos []campaignDTO
	if err = json.Unmarshal(list, &dtos); err != nil {
		return nil, fmt.Errorf("list campaigns: decode: %w", err)
	}
	out := make([]domain.RemoteCampaign, 0, len(dtos))
	for _, d := range dtos {
		created, _ := time.Parse(time.RFC3339Nano, d.CreatedAt)
		out = append(out, domain.RemoteCampaign{
			ID:        string(d.ID),
			Name:      d.Name,
			Objective: d.Objective,
			Status:    d.Status,
			CreatedAt: created,
		})
	}
	return out, nil
}

// do sends req through the session client and decodes a JSON answer into out
// when out is non-nil.
func do(sc port.SessionContext, req *http.Request, out any) error {
	if sc.Client == nil {
		return errors.New("session context has no client")
	}
	req.Header.Set("Accept", "application/json")
	resp, err := sc.Client.Do(req)
	if err != nil {
		return err
	}
	if err = checkStatus(resp); err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
