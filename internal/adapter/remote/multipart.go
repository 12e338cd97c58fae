package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strconv"
	"strings"

	"quickcamp/internal/core/domain"
)

// newFormRequest encodes the submission form in memory. http.NewRequest sets
// GetBody for a *bytes.Reader, so the request can be replayed after a
// credential refresh.
func newFormRequest(ctx context.Context, method, target string, p domain.Payload) (*http.Request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := p.WriteFields(w); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart form: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// switchWriter lets the multipart framing around the file part be captured
// in two separate buffers.
type switchWriter struct{ w io.Writer }

func (s *switchWriter) Write(p []byte) (int, error) { return s.w.Write(p) }

// newCreativeRequest streams a spooled creative without loading it in memory.
// The framing before and after the file content is precomputed, which gives
// an exact Content-Length and lets GetBody reopen the file for a replay.
func newCreativeRequest(ctx context.Context, target string, c domain.Creative) (*http.Request, error) {
	info, err := os.Stat(c.Path)
	if err != nil {
		return nil, fmt.Errorf("stat creative %s: %w", c.ID, err)
	}

	var head, tail bytes.Buffer
	sw := &switchWriter{w: &head}
	w := multipart.NewWriter(sw)
	for _, f := range [][2]string{
		{"file_name", c.FileName},
		{"file_type", c.FileType},
		{"file_size", strconv.FormatInt(info.Size(), 10)},
	} {
		if err = w.WriteField(f[0], f[1]); err != nil {
			return nil, fmt.Errorf("write field %s: %w", f[0], err)
		}
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(c.FileName)))
	contentType := c.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	if _, err = w.CreatePart(h); err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	sw.w = &tail
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart form: %w", err)
	}

	headBytes, tailBytes := head.Bytes(), tail.Bytes()
	open := func() (io.ReadCloser, error) {
		f, err := os.Open(c.Path)
		if err != nil {
			return nil, fmt.Errorf("open creative %s: %w", c.ID, err)
		}
		return readCloser{
			Reader: io.MultiReader(bytes.NewReader(headBytes), f, bytes.NewReader(tailBytes)),
			Closer: f,
		}, nil
	}

	body, err := open()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		_ = body.Close()
		return nil, err
	}
	req.ContentLength = int64(len(headBytes)) + info.Size() + int64(len(tailBytes))
	req.GetBody = open
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return req, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
