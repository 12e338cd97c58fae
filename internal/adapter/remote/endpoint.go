package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// endpoint resolves elems below base, always with a trailing slash.
func endpoint(base *url.URL, elems ...string) string {
	u := base.JoinPath(elems...)
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// ParseBaseURL validates the base URL of the remote services.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", raw)
	}
	return u, nil
}

// flexID decodes identifiers sent either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

// unwrapList accepts a bare JSON array or one wrapped in a "results" (paged)
// or "data" envelope.
func unwrapList(raw []byte) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		return raw, nil
	}
	var env struct {
		Results json.RawMessage `json:"results"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	switch {
	case len(env.Results) > 0:
		return env.Results, nil
	case len(env.Data) > 0:
		return env.Data, nil
	}
	return json.RawMessage("[]"), nil
}
