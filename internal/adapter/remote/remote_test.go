package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
	"quickcamp/internal/session"
)

func newServer(t *testing.T, h http.HandlerFunc) (*httptest.Server, *url.URL) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	base, err := ParseBaseURL(srv.URL + "/api")
	require.NoError(t, err)
	return srv, base
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin(t *testing.T) {
	srv, base := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/jwt/create/", r.URL.Path)
		var in map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["username"] != "ann" || in["password"] != "pw" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "No active account found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access": "a1", "refresh": "r1"})
	})
	auth := NewAuthClient(srv.Client(), base)

	creds, err := auth.Login(context.Background(), "ann", "pw")
	require.NoError(t, err)
	assert.Equal(t, domain.Credentials{Access: "a1", Refresh: "r1"}, creds)

	_, err = auth.Login(context.Background(), "ann", "wrong")
	require.ErrorIs(t, err, port.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "No active account found")
}

func TestRefresh(t *testing.T) {
	srv, base := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/jwt/refresh/", r.URL.Path)
		var in map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["refresh"] != "r1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token is invalid or expired"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access": "a2"})
	})
	auth := NewAuthClient(srv.Client(), base)

	access, err := auth.Refresh(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "a2", access)

	_, err = auth.Refresh(context.Background(), "expired")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
}

func samplePayload(target domain.Target) domain.Payload {
	return domain.Payload{
		Target: target,
		Fields: []domain.FormField{
			{Name: "objective", Value: "OUTCOME_SALES"},
			{Name: "campaign_name", Value: "Spring"},
			{Name: "location", Value: `["US"]`},
		},
	}
}

func TestCreateCampaign(t *testing.T) {
	srv, base := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/campaigns/", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Spring", r.FormValue("campaign_name"))
		assert.Equal(t, `["US"]`, r.FormValue("location"))
		writeJSON(w, http.StatusCreated, map[string]any{"id": 42, "name": "Spring"})
	})
	c := NewCampaignClient(base)
	sc := port.SessionContext{ID: "s", Client: srv.Client()}

	id, err := c.CreateCampaign(context.Background(), sc, samplePayload(domain.Target{New: true, CampaignName: "Spring"}))
	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestUpdateCampaignRejected(t *testing.T) {
	srv, base := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/campaigns/7/", r.URL.Path)
		writeJSON(w, http.StatusPaymentRequired, map[string]string{"detail": "Insufficient credits to launch campaign."})
	})
	c := NewCampaignClient(base)

	err := c.UpdateCampaign(context.Background(), port.SessionContext{Client: srv.Client()}, "7", samplePayload(domain.Target{CampaignID: "7"}))
	require.ErrorIs(t, err, port.ErrRemoteSubmission)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusPaymentRequired, se.StatusCode)
	assert.Equal(t, "Insufficient credits to launch campaign.", se.Detail)
}

func spoolCreative(t *testing.T, content string) domain.Creative {
	t.Helper()
	path := filepath.Join(t.TempDir(), "c1")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return domain.Creative{ID: "c1", FileName: `ad "one".mp4`, FileType: "video/mp4", FileSize: int64(len(content)), Path: path}
}

func TestAttachCreativeReplaysAfterRefresh(t *testing.T) {
	var attempts atomic.Int32
	srv, base := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/jwt/refresh/":
			writeJSON(w, http.StatusOK, map[string]string{"access": "fresh"})
			return
		case "/api/campaigns/42/creatives/":
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			return
		}
		attempts.Add(1)
		assert.Positive(t, r.ContentLength)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		got, _ := io.ReadAll(f)
		assert.Equal(t, "video-bytes", string(got))
		assert.Equal(t, `ad "one".mp4`, hdr.Filename)
		assert.Equal(t, "video/mp4", hdr.Header.Get("Content-Type"))
		assert.Equal(t, "11", r.FormValue("file_size"))
		assert.Equal(t, "video/mp4", r.FormValue("file_type"))

		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": 1})
	})

	auth := NewAuthClient(srv.Client(), base)
	client := session.New(srv.Client(), session.NewStore(domain.Credentials{Access: "stale", Refresh: "r"}), auth)
	c := NewCampaignClient(base)

	err := c.AttachCreative(context.Background(), port.SessionContext{Client: client}, "42", spoolCreative(t, "video-bytes"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, attempts.Load())
}

func TestAttachCreativeOutlastsRequestTimeout(t *testing.T) {
	content := strings.Repeat("x", 4<<20)
	srv, base := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64<<10)
		var n int
		for {
			k, err := r.Body.Read(buf)
			n += k
			if err != nil {
				break
			}
			time.Sleep(10 * time.Millisecond)
		}
		assert.Greater(t, n, len(content))
		writeJSON(w, http.StatusCreated, map[string]any{"id": 1})
	})

	hc := srv.Client()
	hc.Timeout = 200 * time.Millisecond
	client := session.New(hc, session.NewStore(domain.Credentials{Access: "a", Refresh: "r"}), NewAuthClient(hc, base))
	c := NewCampaignClient(base)

	creative := spoolCreative(t, content)
	err := c.AttachCreative(context.Background(), port.SessionContext{Client: client}, "1", creative)
	require.NoError(t, err)
}

func TestListCampaignsPaged(t *testing.T) {
	srv, base := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/campaigns/", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"count": 2,
			"results": []map[string]any{
				{"id": 1, "name": "A", "objective": "OUTCOME_SALES", "status": "active", "created_at": "2024-03-01T10:00:00Z"},
				{"id": "b2", "name": "B", "created_at": ""},
			},
		})
	})
	c := NewCampaignClient(base)

	list, err := c.ListCampaigns(context.Background(), port.SessionContext{Client: srv.Client()})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "active", list[0].Status)
	assert.False(t, list[0].CreatedAt.IsZero())
	assert.Equal(t, "b2", list[1].ID)
	assert.True(t, list[1].CreatedAt.IsZero())
}

func TestCatalogLookup(t *testing.T) {
	srv, base := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/campaigns/pixels/act_1/":
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 99, "name": "Main pixel"}})
		case "/api/campaigns/countries/":
			writeJSON(w, http.StatusOK, map[string]any{"data": []map[string]string{
				{"value": "US", "label": "United States"},
				{"code": "GB", "name": "United Kingdom"},
				{"name": "no id"},
			}})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	c := NewCatalogClient(base)
	sc := port.SessionContext{AccountID: "act_1", Client: srv.Client()}

	pixels, err := c.Lookup(context.Background(), sc, domain.ReferencePixels)
	require.NoError(t, err)
	assert.Equal(t, []domain.ReferenceItem{{ID: "99", Name: "Main pixel"}}, pixels)

	countries, err := c.Lookup(context.Background(), sc, domain.ReferenceCountries)
	require.NoError(t, err)
	assert.Equal(t, []domain.ReferenceItem{
		{ID: "US", Name: "United States"},
		{ID: "GB", Name: "United Kingdom"},
	}, countries)

	_, err = c.Lookup(context.Background(), sc, domain.ReferenceInterests)
	require.ErrorIs(t, err, port.ErrRemoteSubmission)

	_, err = c.Lookup(context.Background(), port.SessionContext{Client: srv.Client()}, domain.ReferencePages)
	require.ErrorIs(t, err, port.ErrNoActiveAccount)
}

func TestEndpointKeepsTrailingSlash(t *testing.T) {
	base, err := ParseBaseURL("https://api.example.com/api/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api/campaigns/12/creatives/", endpoint(base, "campaigns", "12", "creatives"))

	_, err = ParseBaseURL("/relative")
	assert.Error(t, err)
}
