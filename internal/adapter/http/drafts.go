package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
)

func (h *Handler) handleOpenDraft(w http.ResponseWriter, r *http.Request) {
	var req port.OpenDraftReq
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.OpenDraft(r.Context(), chi.URLParam(r, "sessionID"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) handleDraft(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Draft(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "draftID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleDiscardDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DiscardDraft(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "draftID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleMutate applies one edit and answers with the whole draft, derived
// flags included.
func (h *Handler) handleMutate(w http.ResponseWriter, r *http.Request) {
	var m domain.Mutation
	if !h.decode(w, r, &m) {
		return
	}
	if m.Field == "" {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "field is required"})
		return
	}
	view, err := h.svc.Mutate(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "draftID"), m)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handleAddCreative streams every "file" part of a multipart body into the
// draft. A "file_size" field sent before a file part declares its size;
// otherwise the size is learnt while spooling.
func (h *Handler) handleAddCreative(w http.ResponseWriter, r *http.Request) {
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mt != "multipart/form-data" {
		h.writeJSON(w, http.StatusUnsupportedMediaType, errorBody{Error: "multipart/form-data required"})
		return
	}
	mr, err := r.MultipartReader()
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	var (
		sessionID = chi.URLParam(r, "sessionID")
		draftID   = chi.URLParam(r, "draftID")
		declared  = int64(-1)
		added     = []domain.Creative{}
	)
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed multipart body"})
			return
		}

		switch part.FormName() {
		case "file_size":
			raw, _ := io.ReadAll(io.LimitReader(part, 32))
			if declared, err = strconv.ParseInt(string(raw), 10, 64); err != nil || declared < 0 {
				h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid file_size"})
				return
			}
		case "file":
			c, err := h.svc.AddCreative(r.Context(), sessionID, draftID, port.CreativeUpload{
				FileName: part.FileName(),
				FileType: part.Header.Get("Content-Type"),
				Size:     declared,
				Body:     part,
			})
			if err != nil {
				h.writeError(w, r, err)
				return
			}
			added = append(added, *c)
			declared = -1
		}
		_ = part.Close()
	}

	if len(added) == 0 {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "no file part"})
		return
	}
	h.writeJSON(w, http.StatusCreated, added)
}

// handleSubmit accepts an empty body when the draft targets an existing
// campaign.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req port.SubmitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	resp, err := h.svc.Submit(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "draftID"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, resp)
}
