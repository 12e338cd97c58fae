package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quickcamp/internal/core/domain"
)

type loginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}
	info, err := h.svc.Login(r.Context(), req.Identifier, req.Secret)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, info)
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Session(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, info)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type accountRequest struct {
	AccountID string `json:"account_id"`
}

func (h *Handler) handleSelectAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !h.decode(w, r, &req) {
		return
	}
	info, err := h.svc.SelectAccount(r.Context(), chi.URLParam(r, "sessionID"), req.AccountID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, info)
}

// handleReference serves a selector list. A stale answer still has status
// 200; the body carries the stale flag.
func (h *Handler) handleReference(w http.ResponseWriter, r *http.Request) {
	kind := domain.ReferenceKind(chi.URLParam(r, "kind"))
	list, err := h.svc.Reference(r.Context(), chi.URLParam(r, "sessionID"), kind)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Campaigns(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.RemoteCampaign{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleLedger(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Ledger(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	h.writeJSON(w, http.StatusOK, entries)
}
