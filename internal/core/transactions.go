package core

import (
	"context"
	"fmt"
	"time"
)

// CreateTransactionResult is the outcome of recording one transaction.
// UnmatchedItems lists sale item names that matched no product: those items
// have no stock effect, and it is the caller's choice whether to surface them.
type CreateTransactionResult struct {
	Transaction    *Transaction
	UnmatchedItems []string
}

// TransactionService maintains the append-only sales/purchases log and applies
// stock depletion for sold items.
type TransactionService interface {
	// List returns all transactions in document order.
	List(ctx context.Context) ([]Transaction, error)

	// Create normalizes the payload, assigns the next identity, stamps the
	// current server time, appends the entry, and — for sales — decrements the
	// stock of the first product whose name equals each item's name, floored
	// at zero. Items naming no product are reported, not failed.
	Create(ctx context.Context, payload map[string]any) (*CreateTransactionResult, error)
}

type transactionService struct {
	store *Store
}

// NewTransactionService constructs a TransactionService backed by the store.
func NewTransactionService(store *Store) TransactionService {
	return &transactionService{store: store}
}

func (s *transactionService) List(ctx context.Context) ([]Transaction, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Transactions, nil
}

func (s *transactionService) Create(ctx context.Context, payload map[string]any) (*CreateTransactionResult, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	tx, _ := normalizeTransaction(payload)
	tx.ID = nextTransactionID(doc)
	tx.Date = time.Now().Format(TimestampLayout)

	var unmatched []string
	if tx.Type == TransactionSale {
		for _, item := range tx.Items {
			if !depleteStock(doc, item) {
				unmatched = append(unmatched, item.Name)
			}
		}
	}

	doc.Transactions = append(doc.Transactions, tx)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	return &CreateTransactionResult{Transaction: &tx, UnmatchedItems: unmatched}, nil
}

// depleteStock decrements the stock of the first product matching the item's
// name, never below zero. Returns false when no product matches.
func depleteStock(doc *Document, item TransactionItem) bool {
	for i := range doc.Products {
		if doc.Products[i].Name != item.Name {
			continue
		}
		remaining := doc.Products[i].Stock - item.Quantity
		if remaining < 0 {
			remaining = 0
		}
		doc.Products[i].Stock = remaining
		return true
	}
	return false
}
