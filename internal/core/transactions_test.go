package core_test

import (
	"context"
	"testing"
	"time"

	"bizbook/internal/core"

	"github.com/shopspring/decimal"
)

// seedProducts writes a minimal document containing only the given products.
func seedProducts(t *testing.T, store *core.Store, products ...core.Product) {
	t.Helper()
	if products == nil {
		products = []core.Product{}
	}
	doc := &core.Document{
		Products:     products,
		Transactions: []core.Transaction{},
		Customers:    []core.Customer{},
		Suppliers:    []core.Supplier{},
		Notes:        []core.Note{},
	}
	if err := store.Save(context.Background(), doc); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}
}

func drum(id int64, name string, stock int64) core.Product {
	return core.Product{
		ID: id, Name: name, Stock: stock,
		Price: decimal.NewFromInt(100), Cost: decimal.NewFromInt(60),
		MinStock: 5, MaxStock: 100, Unit: "piece",
	}
}

func TestTransactionCreate_AssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t)
	seedProducts(t, store)
	svc := core.NewTransactionService(store)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		res, err := svc.Create(ctx, map[string]any{"type": "purchase", "amount": float64(10)})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if res.Transaction.ID != want {
			t.Errorf("expected id %d, got %d", want, res.Transaction.ID)
		}
	}
}

func TestTransactionCreate_StampsServerTime(t *testing.T) {
	store := newTestStore(t)
	seedProducts(t, store)
	svc := core.NewTransactionService(store)

	res, err := svc.Create(context.Background(), map[string]any{"type": "sale", "amount": float64(50)})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	when, err := time.ParseInLocation(core.TimestampLayout, res.Transaction.Date, time.Local)
	if err != nil {
		t.Fatalf("date %q not in expected format: %v", res.Transaction.Date, err)
	}
	if d := time.Since(when); d < 0 || d > time.Minute {
		t.Errorf("timestamp not close to now: %s", res.Transaction.Date)
	}
}

func TestTransactionCreate_DepletesStockFlooredAtZero(t *testing.T) {
	store := newTestStore(t)
	seedProducts(t, store, drum(1, "250ltrs Drum", 10))
	svc := core.NewTransactionService(store)
	ctx := context.Background()

	sale := func(qty int64) {
		t.Helper()
		_, err := svc.Create(ctx, map[string]any{
			"type": "sale", "amount": float64(100),
			"items": []any{map[string]any{"name": "250ltrs Drum", "quantity": float64(qty), "price": float64(100)}},
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	sale(3)
	doc, _ := store.Load(ctx)
	if doc.Products[0].Stock != 7 {
		t.Fatalf("expected stock 7 after selling 3, got %d", doc.Products[0].Stock)
	}

	sale(9)
	doc, _ = store.Load(ctx)
	if doc.Products[0].Stock != 0 {
		t.Errorf("expected stock floored at 0, got %d", doc.Products[0].Stock)
	}
}

func TestTransactionCreate_QuantityDefaultsToOne(t *testing.T) {
	store := newTestStore(t)
	seedProducts(t, store, drum(1, "Drum", 10))
	svc := core.NewTransactionService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, map[string]any{
		"type": "sale", "amount": float64(100),
		"items": []any{map[string]any{"name": "Drum", "price": float64(100)}},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	doc, _ := store.Load(ctx)
	if doc.Products[0].Stock != 9 {
		t.Errorf("expected stock 9 with defaulted quantity 1, got %d", doc.Products[0].Stock)
	}
}

func TestTransactionCreate_UnmatchedItemReportedNotFailed(t *testing.T) {
	store := newTestStore(t)
	seedProducts(t, store, drum(1, "Drum", 10))
	svc := core.NewTransactionService(store)
	ctx := context.Background()

	res, err := svc.Create(ctx, map[string]any{
		"type": "sale", "amount": float64(100),
		"items": []any{
			map[string]any{"name": "Ghost Drum", "quantity": float64(2), "price": float64(50)},
			map[string]any{"name": "Drum", "quantity": float64(1), "price": float64(100)},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(res.UnmatchedItems) != 1 || res.UnmatchedItems[0] != "Ghost Drum" {
		t.Errorf("expected unmatched [Ghost Drum], got %v", res.UnmatchedItems)
	}

	doc, _ := store.Load(ctx)
	if doc.Products[0].Stock != 9 {
		t.Errorf("matched item should still deplete, got stock %d", doc.Products[0].Stock)
	}
	if len(doc.Transactions) != 1 {
		t.Errorf("transaction should still be recorded, got %d entries", len(doc.Transactions))
	}
}

func TestTransactionCreate_PurchaseDoesNotTouchStock(t *testing.T) {
	store := newTestStore(t)
	seedProducts(t, store, drum(1, "Drum", 10))
	svc := core.NewTransactionService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, map[string]any{
		"type": "purchase", "amount": float64(500),
		"items": []any{map[string]any{"name": "Drum", "quantity": float64(4)}},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	doc, _ := store.Load(ctx)
	if doc.Products[0].Stock != 10 {
		t.Errorf("purchase must not mutate stock, got %d", doc.Products[0].Stock)
	}
}

func TestTransactionCreate_FirstMatchByDocumentOrder(t *testing.T) {
	store := newTestStore(t)
	seedProducts(t, store, drum(1, "Drum", 5), drum(2, "Drum", 8))
	svc := core.NewTransactionService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, map[string]any{
		"type": "sale", "amount": float64(100),
		"items": []any{map[string]any{"name": "Drum", "quantity": float64(2), "price": float64(100)}},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	doc, _ := store.Load(ctx)
	if doc.Products[0].Stock != 3 || doc.Products[1].Stock != 8 {
		t.Errorf("expected only first match depleted, got %d and %d",
			doc.Products[0].Stock, doc.Products[1].Stock)
	}
}
