package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
	"quickcamp/internal/core/port/mocks"
)

func newTestServer(t *testing.T) (*mocks.MockWizardUseCase, *httptest.Server) {
	t.Helper()
	svc := mocks.NewMockWizardUseCase(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return svc, srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestLoginRoute(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().Login(mock.Anything, "ann", "pw").Return(&port.SessionInfo{ID: "s1"}, nil).Once()
	svc.EXPECT().Login(mock.Anything, "ann", "bad").Return(nil, port.ErrInvalidCredentials).Once()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions", map[string]string{"identifier": "ann", "secret": "pw"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "s1", body["id"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions", map[string]string{"identifier": "ann", "secret": "bad"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/sessions", strings.NewReader("{"))
	raw, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	raw.Body.Close()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().Campaigns(mock.Anything, "s1").
		Return(nil, fmt.Errorf("list campaigns: %w", port.ErrUnauthenticated)).Once()

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/sessions/s1/campaigns", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "unauthenticated", body["error"])
	assert.Equal(t, LoginRedirect, body["redirect"])
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{port.ErrSessionNotFound, http.StatusNotFound},
		{port.ErrDraftNotFound, http.StatusNotFound},
		{domain.ErrFieldFrozen, http.StatusConflict},
		{port.ErrSubmissionInFlight, http.StatusConflict},
		{domain.ErrInvalidMutation, http.StatusBadRequest},
		{domain.ErrUploadTooLarge, http.StatusRequestEntityTooLarge},
		{port.ErrRemoteSubmission, http.StatusBadGateway},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			svc, srv := newTestServer(t)
			svc.EXPECT().Mutate(mock.Anything, "s1", "d1", mock.Anything).Return(nil, tc.err).Once()

			resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/drafts/d1/mutations",
				map[string]any{"field": "ad_creative_headline", "value": "x"})
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestMutateRoute(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().Mutate(mock.Anything, "s1", "d1", domain.Mutation{
		Field: domain.FieldPlatforms,
		Key:   "messenger",
		Value: json.RawMessage(`false`),
	}).Return(&port.DraftView{ID: "d1"}, nil).Once()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/drafts/d1/mutations",
		map[string]any{"field": "platforms", "key": "messenger", "value": false})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "d1", body["id"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/drafts/d1/mutations", map[string]any{"value": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitValidationProblems(t *testing.T) {
	svc, srv := newTestServer(t)
	verr := &domain.ValidationError{Problems: []domain.Problem{
		{Field: "pixel_id", Section: domain.SectionCampaignTracking, Message: "pixel is required"},
	}}
	svc.EXPECT().Submit(mock.Anything, "s1", "d1", port.SubmitReq{CampaignName: "Spring"}).Return(nil, verr).Once()
	svc.EXPECT().Submit(mock.Anything, "s1", "d2", port.SubmitReq{}).
		Return(&port.SubmitResp{CampaignID: "9", Creatives: 1}, nil).Once()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/drafts/d1/submit", map[string]string{"campaign_name": "Spring"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, string(domain.SectionCampaignTracking), body["section"])
	problems, ok := body["problems"].([]any)
	require.True(t, ok)
	assert.Len(t, problems, 1)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/drafts/d2/submit", nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "9", body["campaign_id"])
}

func TestAddCreativeRoute(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().AddCreative(mock.Anything, "s1", "d1", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, up port.CreativeUpload) (*domain.Creative, error) {
			body, err := io.ReadAll(up.Body)
			if err != nil {
				return nil, err
			}
			assert.Equal(t, "clip.mp4", up.FileName)
			assert.Equal(t, "video/mp4", up.FileType)
			assert.EqualValues(t, 5, up.Size)
			assert.Equal(t, "video", string(body))
			return &domain.Creative{ID: "c1", FileName: up.FileName, FileSize: int64(len(body))}, nil
		}).Once()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("file_size", "5"))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="clip.mp4"`)
	h.Set("Content-Type", "video/mp4")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte("video"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/v1/sessions/s1/drafts/d1/creatives", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var added []domain.Creative
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&added))
	require.Len(t, added, 1)
	assert.Equal(t, "c1", added[0].ID)

	resp2, err := http.Post(srv.URL+"/api/v1/sessions/s1/drafts/d1/creatives", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp2.StatusCode)
}

func TestReferenceRouteServesStaleList(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().Reference(mock.Anything, "s1", domain.ReferencePixels).
		Return(&port.ReferenceList{Kind: domain.ReferencePixels, Items: []domain.ReferenceItem{}, Stale: true}, nil).Once()

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/sessions/s1/reference/pixels", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["stale"])
	assert.Equal(t, []any{}, body["items"])
}

func TestSessionLifecycleRoutes(t *testing.T) {
	svc, srv := newTestServer(t)
	svc.EXPECT().Session(mock.Anything, "s1").Return(&port.SessionInfo{ID: "s1", AccountID: "act_1"}, nil).Once()
	svc.EXPECT().SelectAccount(mock.Anything, "s1", "act_2").Return(&port.SessionInfo{ID: "s1", AccountID: "act_2"}, nil).Once()
	svc.EXPECT().OpenDraft(mock.Anything, "s1", port.OpenDraftReq{Objective: "OUTCOME_SALES"}).
		Return(&port.DraftView{ID: "d1"}, nil).Once()
	svc.EXPECT().DiscardDraft(mock.Anything, "s1", "d1").Return(nil).Once()
	svc.EXPECT().Ledger(mock.Anything, "s1").Return(nil, port.ErrNoActiveAccount).Once()
	svc.EXPECT().Logout(mock.Anything, "s1").Return(nil).Once()

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/sessions/s1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "act_1", body["account_id"])

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/api/v1/sessions/s1/account", map[string]string{"account_id": "act_2"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "act_2", body["account_id"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/sessions/s1/drafts", map[string]string{"objective": "OUTCOME_SALES"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/sessions/s1/drafts/d1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/v1/sessions/s1/ledger", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/sessions/s1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "go_goroutines")
}
