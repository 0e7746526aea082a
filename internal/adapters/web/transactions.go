package web

import (
	"net/http"

	"bizbook/internal/core"
)

// createTransactionResponse is the 201 body: the recorded transaction plus
// the names of sale items that matched no product. The field is always
// present so callers can decide whether to surface unmatched items.
type createTransactionResponse struct {
	core.Transaction
	UnmatchedItems []string `json:"unmatched_items"`
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListTransactions(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, result.Transactions)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		writeError(w, r, "unable to parse transaction", "INVALID_REQUEST", http.StatusBadRequest)
		return
	}
	result, err := h.svc.CreateTransaction(r.Context(), payload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	unmatched := result.UnmatchedItems
	if unmatched == nil {
		unmatched = []string{}
	}
	writeCreated(w, createTransactionResponse{
		Transaction:    *result.Transaction,
		UnmatchedItems: unmatched,
	})
}
