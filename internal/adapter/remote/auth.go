package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
)

// AuthClient talks to the JWT endpoints of the auth service. It uses a plain
// HTTP client: neither endpoint takes a bearer credential.
type AuthClient struct {
	http *http.Client
	base *url.URL
}

var _ port.AuthAPI = (*AuthClient)(nil)

func NewAuthClient(hc *http.Client, base *url.URL) *AuthClient {
	return &AuthClient{http: hc, base: base}
}

func (a *AuthClient) Login(ctx context.Context, identifier, secret string) (domain.Credentials, error) {
	var out struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	in := map[string]string{"username": identifier, "password": secret}
	if err := a.post(ctx, endpoint(a.base, "auth", "jwt", "create"), in, &out); err != nil {
		var se *StatusError
		if errors.As(err, &se) && (se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusBadRequest) {
			return domain.Credentials{}, fmt.Errorf("%w: %s", port.ErrInvalidCredentials, se.Detail)
		}
		return domain.Credentials{}, fmt.Errorf("login: %w", err)
	}
	if out.Access == "" {
		return domain.Credentials{}, errors.New("login: no access credential in response")
	}
	return domain.Credentials{Access: out.Access, Refresh: out.Refresh}, nil
}

func (a *AuthClient) Refresh(ctx context.Context, refresh string) (string, error) {
	var out struct {
		Access string `json:"access"`
	}
	if err := a.post(ctx, endpoint(a.base, "auth", "jwt", "refresh"), map[string]string{"refresh": refresh}, &out); err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}
	if out.Access == "" {
		return "", errors.New("refresh: no access credential in response")
	}
	return out.Access, nil
}

func (a *AuthClient) post(ctx context.Context, target string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	if err = checkStatus(resp); err != nil {
		return err
	}
	defer resp.Body.Close()
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
