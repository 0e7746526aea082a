package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ExportCSV(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	_, _ = w.Write(result.Data)
}

func (h *Handler) backup(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Backup(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	_, _ = w.Write(result.Data)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, "no file provided", "INVALID_REQUEST", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, r, "no file selected", "INVALID_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Restore(r.Context(), header.Filename, file)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{
		"message":        "Data restored successfully",
		"coerced_fields": result.CoercedFields,
	})
}
