package web

import "net/http"

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result.Customers)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		writeError(w, r, "unable to parse customer", "INVALID_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.CreateCustomer(r.Context(), payload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, result.Customer)
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListSuppliers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result.Suppliers)
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		writeError(w, r, "unable to parse supplier", "INVALID_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.CreateSupplier(r.Context(), payload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, result.Supplier)
}
