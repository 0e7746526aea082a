package core_test

import (
	"context"
	"errors"
	"testing"

	"bizbook/internal/core"

	"github.com/shopspring/decimal"
)

func TestContacts_CreateCustomer(t *testing.T) {
	store := newTestStore(t)
	seedProducts(t, store)
	svc := core.NewContactService(store)
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, map[string]any{
		"name":        "Mary W",
		"contact":     "0712345678",
		"email":       "mary@example.com",
		"total_spent": "1500.50",
	})
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}
	if c.ID != 1 || c.Name != "Mary W" {
		t.Errorf("unexpected customer: %+v", c)
	}
	if !c.TotalSpent.Equal(decimal.RequireFromString("1500.50")) {
		t.Errorf("expected coerced total_spent 1500.50, got %s", c.TotalSpent)
	}

	second, err := svc.CreateCustomer(ctx, map[string]any{"name": "John O"})
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("expected id 2, got %d", second.ID)
	}

	list, err := svc.ListCustomers(ctx)
	if err != nil {
		t.Fatalf("ListCustomers failed: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 customers, got %d", len(list))
	}
}

func TestContacts_CreateSupplier(t *testing.T) {
	store := newTestStore(t)
	seedProducts(t, store)
	svc := core.NewContactService(store)
	ctx := context.Background()

	sup, err := svc.CreateSupplier(ctx, map[string]any{
		"name":    "Plastix Ltd",
		"contact": "0720000000",
	})
	if err != nil {
		t.Fatalf("CreateSupplier failed: %v", err)
	}
	if sup.ID != 1 || sup.Name != "Plastix Ltd" {
		t.Errorf("unexpected supplier: %+v", sup)
	}

	list, err := svc.ListSuppliers(ctx)
	if err != nil {
		t.Fatalf("ListSuppliers failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 supplier, got %d", len(list))
	}
}

func TestContacts_NameIsRequired(t *testing.T) {
	store := newTestStore(t)
	seedProducts(t, store)
	svc := core.NewContactService(store)
	ctx := context.Background()

	if _, err := svc.CreateCustomer(ctx, map[string]any{"name": "  "}); !errors.Is(err, core.ErrValidation) {
		t.Errorf("expected ErrValidation for blank customer name, got %v", err)
	}
	if _, err := svc.CreateSupplier(ctx, map[string]any{}); !errors.Is(err, core.ErrValidation) {
		t.Errorf("expected ErrValidation for missing supplier name, got %v", err)
	}
}
