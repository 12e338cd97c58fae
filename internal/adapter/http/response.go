package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
)

type errorBody struct {
	Error    string           `json:"error"`
	Problems []domain.Problem `json:"problems,omitempty"`
	Section  domain.Section   `json:"section,omitempty"`
	Redirect string           `json:"redirect,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return false
	}
	return true
}

// writeError maps use case errors to status codes. Unexpected errors are
// logged and answered with a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error:    domain.ErrValidation.Error(),
			Problems: verr.Problems,
			Section:  verr.FirstSection(),
		})
	case errors.Is(err, port.ErrUnauthenticated):
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthenticated", Redirect: LoginRedirect})
	case errors.Is(err, port.ErrInvalidCredentials):
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, port.ErrSessionNotFound), errors.Is(err, port.ErrDraftNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrFieldFrozen),
		errors.Is(err, port.ErrSubmissionInFlight),
		errors.Is(err, port.ErrNoActiveAccount):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidMutation),
		errors.Is(err, port.ErrInvalidRequest),
		errors.Is(err, port.ErrUnknownObjective):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrUploadTooLarge):
		h.writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: err.Error()})
	case errors.Is(err, port.ErrRemoteSubmission):
		h.logger.Warn("remote service rejected request", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, errorBody{Error: err.Error()})
	default:
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
