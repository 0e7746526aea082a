package web

import (
	"net/http"

	"bizbook/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc app.ApplicationService
	log zerolog.Logger
}

// NewHandler creates and wires the chi router with all routes.
// allowedOrigins is the comma-separated ALLOWED_ORIGINS value.
func NewHandler(svc app.ApplicationService, allowedOrigins string, log zerolog.Logger) http.Handler {
	h := &Handler{svc: svc, log: log}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recoverer(log))
	r.Use(CORS(allowedOrigins))

	r.Get("/api/health", h.health)

	// JSON API: 1 MB body limit on every route except restore uploads.
	r.Group(func(r chi.Router) {
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		r.Get("/api/products", h.listProducts)
		r.Post("/api/products", h.createProduct)
		r.Put("/api/products/{id}", h.updateProduct)
		r.Delete("/api/products/{id}", h.deleteProduct)

		r.Get("/api/transactions", h.listTransactions)
		r.Post("/api/transactions", h.createTransaction)

		r.Get("/api/analytics/sales", h.salesAnalytics)
		r.Get("/api/analytics/balance", h.balanceReport)

		r.Get("/api/notes", h.listNotes)
		r.Post("/api/notes", h.createNote)
		r.Put("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)

		r.Get("/api/customers", h.listCustomers)
		r.Post("/api/customers", h.createCustomer)
		r.Get("/api/suppliers", h.listSuppliers)
		r.Post("/api/suppliers", h.createSupplier)

		r.Get("/api/export/csv/{type}", h.exportCSV)
		r.Get("/api/backup", h.backup)
		r.Get("/api/schema", h.documentSchema)
	})

	// Restore accepts a multipart backup upload, capped at 10 MB.
	r.Group(func(r chi.Router) {
		r.Use(RequestBodyLimit(10 << 20))
		r.Post("/api/restore", h.restore)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Health(r.Context()))
}

func (h *Handler) documentSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.DocumentSchema())
}
