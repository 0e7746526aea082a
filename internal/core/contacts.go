package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ContactService manages customers and suppliers. Both are list/create only;
// contacts are never edited after the fact.
type ContactService interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
	CreateCustomer(ctx context.Context, payload map[string]any) (*Customer, error)
	ListSuppliers(ctx context.Context) ([]Supplier, error)
	CreateSupplier(ctx context.Context, payload map[string]any) (*Supplier, error)
}

type contactService struct {
	store *Store
}

// NewContactService constructs a ContactService backed by the store.
func NewContactService(store *Store) ContactService {
	return &contactService{store: store}
}

func (s *contactService) ListCustomers(ctx context.Context) ([]Customer, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Customers, nil
}

func (s *contactService) CreateCustomer(ctx context.Context, payload map[string]any) (*Customer, error) {
	if strings.TrimSpace(cast.ToString(payload["name"])) == "" {
		return nil, fmt.Errorf("customer name is required: %w", ErrValidation)
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	c, _ := normalizeCustomer(payload)
	c.ID = nextCustomerID(doc)
	doc.Customers = append(doc.Customers, c)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	return &c, nil
}

func (s *contactService) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Suppliers, nil
}

func (s *contactService) CreateSupplier(ctx context.Context, payload map[string]any) (*Supplier, error) {
	if strings.TrimSpace(cast.ToString(payload["name"])) == "" {
		return nil, fmt.Errorf("supplier name is required: %w", ErrValidation)
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	sup := normalizeSupplier(payload)
	sup.ID = nextSupplierID(doc)
	doc.Suppliers = append(doc.Suppliers, sup)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}
	return &sup, nil
}
