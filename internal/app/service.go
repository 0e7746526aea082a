package app

import (
	"context"
	"io"

	"bizbook/internal/core"

	"github.com/invopop/jsonschema"
)

// ApplicationService is the single interface all transport adapters call.
// It decouples presentation from business logic and serializes every
// load-modify-save cycle in-process; implementations must contain no
// HTTP-specific logic of any kind.
type ApplicationService interface {
	// Health reports liveness.
	Health(ctx context.Context) *HealthResult

	// ListProducts returns the full product catalog.
	ListProducts(ctx context.Context) (*ProductListResult, error)

	// CreateProduct adds a product from a raw payload, coercing malformed
	// numeric fields to zero.
	CreateProduct(ctx context.Context, payload map[string]any) (*ProductResult, error)

	// UpdateProduct merges a partial payload onto an existing product.
	UpdateProduct(ctx context.Context, id int64, updates map[string]any) (*ProductResult, error)

	// DeleteProduct removes a product by identity.
	DeleteProduct(ctx context.Context, id int64) error

	// ListTransactions returns the append-only transaction log.
	ListTransactions(ctx context.Context) (*TransactionListResult, error)

	// CreateTransaction records a sale or purchase, depletes stock for sold
	// items, and reports items that matched no product.
	CreateTransaction(ctx context.Context, payload map[string]any) (*TransactionResult, error)

	// SalesAnalytics returns the dense daily sales series for a trailing
	// window of the given number of days (30 when days <= 0).
	SalesAnalytics(ctx context.Context, days int) (*core.SalesReport, error)

	// BalanceReport returns the all-time balance report. Faults degrade to an
	// all-zero report rather than an error.
	BalanceReport(ctx context.Context) (*core.BalanceReport, error)

	// Notes CRUD.
	ListNotes(ctx context.Context) (*NoteListResult, error)
	CreateNote(ctx context.Context, payload map[string]any) (*NoteResult, error)
	UpdateNote(ctx context.Context, id string, updates map[string]any) (*NoteResult, error)
	DeleteNote(ctx context.Context, id string) error

	// Contacts: list/create only.
	ListCustomers(ctx context.Context) (*CustomerListResult, error)
	CreateCustomer(ctx context.Context, payload map[string]any) (*CustomerResult, error)
	ListSuppliers(ctx context.Context) (*SupplierListResult, error)
	CreateSupplier(ctx context.Context, payload map[string]any) (*SupplierResult, error)

	// ExportCSV renders one resource type as CSV with its fixed columns.
	ExportCSV(ctx context.Context, resource string) (*ExportResult, error)

	// Backup returns the re-normalized full document as a downloadable file.
	Backup(ctx context.Context) (*ExportResult, error)

	// Restore replaces the persisted document from an uploaded backup file.
	Restore(ctx context.Context, filename string, r io.Reader) (*RestoreResult, error)

	// DocumentSchema reflects the JSON schema of the persisted document.
	DocumentSchema() *jsonschema.Schema
}
