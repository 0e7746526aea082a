package core

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// ProductService manages the product catalog.
type ProductService interface {
	List(ctx context.Context) ([]Product, error)

	// Create normalizes the payload, assigns the next identity, and stamps
	// last_updated. Malformed numeric fields degrade to zero.
	Create(ctx context.Context, payload map[string]any) (*Product, error)

	// Update merges a partial payload onto the stored record. Unknown keys are
	// ignored; numeric fields are coerced the same way Create coerces them.
	Update(ctx context.Context, id int64, updates map[string]any) (*Product, error)

	Delete(ctx context.Context, id int64) error
}

type productService struct {
	store *Store
}

// NewProductService constructs a ProductService backed by the store.
func NewProductService(store *Store) ProductService {
	return &productService{store: store}
}

func (s *productService) List(ctx context.Context) ([]Product, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Products, nil
}

func (s *productService) Create(ctx context.Context, payload map[string]any) (*Product, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	p, _ := normalizeProduct(payload)
	p.ID = nextProductID(doc)
	p.LastUpdated = time.Now().Format(time.RFC3339)

	doc.Products = append(doc.Products, p)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return &p, nil
}

func (s *productService) Update(ctx context.Context, id int64, updates map[string]any) (*Product, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range doc.Products {
		if doc.Products[i].ID != id {
			continue
		}
		applyProductUpdates(&doc.Products[i], updates)
		doc.Products[i].LastUpdated = time.Now().Format(time.RFC3339)
		if err := s.store.Save(ctx, doc); err != nil {
			return nil, fmt.Errorf("failed to save product: %w", err)
		}
		return &doc.Products[i], nil
	}
	return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	kept := doc.Products[:0]
	found := false
	for _, p := range doc.Products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	doc.Products = kept
	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	return nil
}

// applyProductUpdates merges recognized fields from a partial payload onto an
// existing product, coercing numerics with the normalizer's rules.
func applyProductUpdates(p *Product, updates map[string]any) {
	for key, v := range updates {
		switch key {
		case "name":
			p.Name = cast.ToString(v)
		case "price":
			p.Price, _ = asDecimal(v)
		case "stock":
			p.Stock, _ = asInt(v)
		case "cost":
			p.Cost, _ = asDecimal(v)
		case "category":
			p.Category = cast.ToString(v)
		case "supplier":
			p.Supplier = cast.ToString(v)
		case "min_stock":
			p.MinStock = cast.ToInt64(v)
		case "max_stock":
			p.MaxStock = cast.ToInt64(v)
		case "barcode":
			p.Barcode = cast.ToString(v)
		case "unit":
			p.Unit = cast.ToString(v)
		}
	}
}
