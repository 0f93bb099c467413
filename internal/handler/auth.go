package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/comigor/saturday-go/internal/session"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.sessions.LoginWithCredentials(r.Context(), payload.Email, payload.Password)
	if err != nil {
		h.rec.RecordAuthFailure("login")
		respondAuthError(w, err)
		return
	}

	h.rec.RecordAuthSuccess("login")
	respondJSON(w, http.StatusOK, s)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.sessions.Register(r.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		h.rec.RecordAuthFailure("register")
		respondAuthError(w, err)
		return
	}

	h.rec.RecordAuthSuccess("register")
	respondJSON(w, http.StatusOK, s)
}

func (h *Handler) handleGuest(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.LoginAsGuest()
	if err != nil {
		h.rec.RecordAuthFailure("guest")
		respondAuthError(w, err)
		return
	}

	h.rec.RecordAuthSuccess("guest")
	respondJSON(w, http.StatusOK, s)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// respondAuthError maps the error taxonomy to HTTP statuses: local
// validation is 400, the submit latch is 409 and service-reported
// rejections are 401 with the service message verbatim.
func respondAuthError(w http.ResponseWriter, err error) {
	var authErr *session.AuthError
	switch {
	case errors.Is(err, session.ErrFieldsRequired):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrAuthInFlight), errors.Is(err, session.ErrSessionActive):
		respondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &authErr):
		respondError(w, http.StatusUnauthorized, authErr.Message)
	default:
		respondError(w, http.StatusInternalServerError, "authentication failed")
	}
}
