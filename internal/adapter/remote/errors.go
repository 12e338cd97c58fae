package remote

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"quickcamp/internal/core/port"
)

const maxErrorBody = 4 << 10

// StatusError is a non-2xx answer of a remote service.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *StatusError) Unwrap() error { return port.ErrRemoteSubmission }

// checkStatus turns a non-2xx response into a *StatusError, consuming and
// closing its body. 2xx responses are left untouched.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Method:     resp.Request.Method,
		Path:       resp.Request.URL.Path,
		StatusCode: resp.StatusCode,
		Detail:     errorDetail(raw),
	}
}

// errorDetail extracts the message of {"detail": ...} or {"error": ...}
// bodies and falls back to the trimmed raw body.
func errorDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Detail != "" {
			return body.Detail
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
