package web

import (
	"net/http"
	"strconv"
)

func (h *Handler) salesAnalytics(w http.ResponseWriter, r *http.Request) {
	days := 30
	if d := r.URL.Query().Get("days"); d != "" {
		if parsed, err := strconv.Atoi(d); err == nil && parsed > 0 {
			days = parsed
		}
	}
	report, err := h.svc.SalesAnalytics(r.Context(), days)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, report)
}

func (h *Handler) balanceReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.BalanceReport(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, report)
}
