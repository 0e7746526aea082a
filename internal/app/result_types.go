package app

import "bizbook/internal/core"

// HealthResult is returned by Health.
type HealthResult struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ProductListResult is returned by ListProducts.
type ProductListResult struct {
	Products []core.Product
}

// ProductResult is returned by product create/update operations.
type ProductResult struct {
	Product *core.Product
}

// TransactionListResult is returned by ListTransactions.
type TransactionListResult struct {
	Transactions []core.Transaction
}

// TransactionResult is returned by CreateTransaction. UnmatchedItems carries
// sale item names that matched no product and therefore had no stock effect.
type TransactionResult struct {
	Transaction    *core.Transaction
	UnmatchedItems []string
}

// NoteListResult is returned by ListNotes.
type NoteListResult struct {
	Notes []core.Note
}

// NoteResult is returned by note create/update operations.
type NoteResult struct {
	Note *core.Note
}

// CustomerListResult is returned by ListCustomers.
type CustomerListResult struct {
	Customers []core.Customer
}

// CustomerResult is returned by CreateCustomer.
type CustomerResult struct {
	Customer *core.Customer
}

// SupplierListResult is returned by ListSuppliers.
type SupplierListResult struct {
	Suppliers []core.Supplier
}

// SupplierResult is returned by CreateSupplier.
type SupplierResult struct {
	Supplier *core.Supplier
}

// ExportResult is a downloadable file produced by ExportCSV or Backup.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RestoreResult is returned by Restore. CoercedFields counts how many fields
// the normalizer repaired while validating the uploaded document.
type RestoreResult struct {
	CoercedFields int
}
