package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListNotes(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result.Notes)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		writeError(w, r, "unable to parse note", "INVALID_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.CreateNote(r.Context(), payload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, result.Note)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	updates, err := decodePayload(r)
	if err != nil {
		writeError(w, r, "unable to parse note", "INVALID_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.UpdateNote(r.Context(), chi.URLParam(r, "id"), updates)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result.Note)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Note deleted"})
}
