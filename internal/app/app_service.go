package app

import (
	"context"
	"io"
	"sync"
	"time"

	"bizbook/internal/core"

	"github.com/invopop/jsonschema"
)

type appService struct {
	products     core.ProductService
	transactions core.TransactionService
	notes        core.NoteService
	contacts     core.ContactService
	analytics    core.AnalyticsService
	exports      core.ExportService

	// mu serializes every load-modify-save cycle within this process. The
	// store itself offers no cross-process protection: two processes writing
	// the same file race, and the last save wins.
	mu sync.Mutex
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	products core.ProductService,
	transactions core.TransactionService,
	notes core.NoteService,
	contacts core.ContactService,
	analytics core.AnalyticsService,
	exports core.ExportService,
) ApplicationService {
	return &appService{
		products:     products,
		transactions: transactions,
		notes:        notes,
		contacts:     contacts,
		analytics:    analytics,
		exports:      exports,
	}
}

func (s *appService) Health(ctx context.Context) *HealthResult {
	return &HealthResult{Status: "healthy", Timestamp: time.Now().Format(time.RFC3339)}
}

func (s *appService) ListProducts(ctx context.Context) (*ProductListResult, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ProductListResult{Products: products}, nil
}

func (s *appService) CreateProduct(ctx context.Context, payload map[string]any) (*ProductResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.products.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &ProductResult{Product: p}, nil
}

func (s *appService) UpdateProduct(ctx context.Context, id int64, updates map[string]any) (*ProductResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.products.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	return &ProductResult{Product: p}, nil
}

func (s *appService) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.Delete(ctx, id)
}

func (s *appService) ListTransactions(ctx context.Context) (*TransactionListResult, error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	return &TransactionListResult{Transactions: transactions}, nil
}

func (s *appService) CreateTransaction(ctx context.Context, payload map[string]any) (*TransactionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.transactions.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &TransactionResult{Transaction: res.Transaction, UnmatchedItems: res.UnmatchedItems}, nil
}

func (s *appService) SalesAnalytics(ctx context.Context, days int) (*core.SalesReport, error) {
	return s.analytics.SalesSeries(ctx, days)
}

func (s *appService) BalanceReport(ctx context.Context) (*core.BalanceReport, error) {
	return s.analytics.Balance(ctx)
}

func (s *appService) ListNotes(ctx context.Context) (*NoteListResult, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, err
	}
	return &NoteListResult{Notes: notes}, nil
}

func (s *appService) CreateNote(ctx context.Context, payload map[string]any) (*NoteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.notes.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &NoteResult{Note: n}, nil
}

func (s *appService) UpdateNote(ctx context.Context, id string, updates map[string]any) (*NoteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.notes.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	return &NoteResult{Note: n}, nil
}

func (s *appService) DeleteNote(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.Delete(ctx, id)
}

func (s *appService) ListCustomers(ctx context.Context) (*CustomerListResult, error) {
	customers, err := s.contacts.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return &CustomerListResult{Customers: customers}, nil
}

func (s *appService) CreateCustomer(ctx context.Context, payload map[string]any) (*CustomerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.contacts.CreateCustomer(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &CustomerResult{Customer: c}, nil
}

func (s *appService) ListSuppliers(ctx context.Context) (*SupplierListResult, error) {
	suppliers, err := s.contacts.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	return &SupplierListResult{Suppliers: suppliers}, nil
}

func (s *appService) CreateSupplier(ctx context.Context, payload map[string]any) (*SupplierResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sup, err := s.contacts.CreateSupplier(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &SupplierResult{Supplier: sup}, nil
}

func (s *appService) ExportCSV(ctx context.Context, resource string) (*ExportResult, error) {
	data, filename, err := s.exports.ExportCSV(ctx, resource)
	if err != nil {
		return nil, err
	}
	return &ExportResult{Filename: filename, ContentType: "text/csv", Data: data}, nil
}

func (s *appService) Backup(ctx context.Context) (*ExportResult, error) {
	data, filename, err := s.exports.Backup(ctx)
	if err != nil {
		return nil, err
	}
	return &ExportResult{Filename: filename, ContentType: "application/json", Data: data}, nil
}

func (s *appService) Restore(ctx context.Context, filename string, r io.Reader) (*RestoreResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	coerced, err := s.exports.Restore(ctx, filename, r)
	if err != nil {
		return nil, err
	}
	return &RestoreResult{CoercedFields: coerced}, nil
}

func (s *appService) DocumentSchema() *jsonschema.Schema {
	return s.exports.DocumentSchema()
}
