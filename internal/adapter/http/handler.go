package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"quickcamp/internal/core/port"
	"quickcamp/internal/metrics"
)

// LoginRedirect is where front ends send the user once a session can no
// longer be authenticated.
const LoginRedirect = "/accounts/login"

// Handler is the inbound HTTP adapter of the campaign wizard. Every route
// below /api/v1/sessions/{sessionID} acts on one wizard session.
type Handler struct {
	svc    port.WizardUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler registers the wizard routes together with health and metrics
// endpoints. Requests are cut off after timeout; zero disables the limit.
func NewHandler(svc port.WizardUseCase, logger *slog.Logger, timeout time.Duration) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if timeout > 0 {
			r.Use(middleware.Timeout(timeout))
		}
		r.Post("/sessions", h.handleLogin)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", h.handleSession)
			r.Delete("/", h.handleLogout)
			r.Put("/account", h.handleSelectAccount)
			r.Get("/reference/{kind}", h.handleReference)
			r.Get("/campaigns", h.handleCampaigns)
			r.Get("/ledger", h.handleLedger)

			r.Post("/drafts", h.handleOpenDraft)
			r.Route("/drafts/{draftID}", func(r chi.Router) {
				r.Get("/", h.handleDraft)
				r.Delete("/", h.handleDiscardDraft)
				r.Post("/mutations", h.handleMutate)
				r.Post("/creatives", h.handleAddCreative)
				r.Post("/submit", h.handleSubmit)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.LogAttrs(r.Context(), slog.LevelDebug, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
