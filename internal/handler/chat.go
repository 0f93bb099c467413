package handler

import (
	"encoding/json"
	"html"
	"net/http"
)

type sendPayload struct {
	Message string `json:"message"`
}

// handleSend forwards a send-text intent to the exchange engine. The
// call blocks until the exchange settles, so by the time the response is
// written the log already holds both sides of the turn. A rejected send
// (blank text or one already in flight) is not an error.
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Current(); !ok {
		respondError(w, http.StatusUnauthorized, "no active session")
		return
	}

	var payload sendPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The text ends up in a browser; strip any markup before it enters
	// the conversation log.
	text := html.UnescapeString(h.sanitizer.Sanitize(payload.Message))

	accepted := h.engine.Send(r.Context(), text)
	if !accepted {
		h.rec.RecordSendRejected()
		respondJSON(w, http.StatusOK, map[string]bool{"accepted": false})
		return
	}

	h.rec.RecordSendAccepted()
	respondJSON(w, http.StatusAccepted, map[string]bool{"accepted": true})
}

// handleState returns the full renderer snapshot.
func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.snapshot())
}
