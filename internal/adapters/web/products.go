package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result.Products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		writeError(w, r, "unable to parse product", "INVALID_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.CreateProduct(r.Context(), payload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, result.Product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, "invalid product ID", "INVALID_ID", http.StatusBadRequest)
		return
	}
	updates, err := decodePayload(r)
	if err != nil {
		writeError(w, r, "unable to parse product", "INVALID_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.UpdateProduct(r.Context(), id, updates)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result.Product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, "invalid product ID", "INVALID_ID", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Product deleted"})
}
