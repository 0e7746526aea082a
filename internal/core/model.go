package core

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the fixed format for transaction dates.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar-day format used for analytics bucketing.
const DateLayout = "2006-01-02"

func init() {
	// The persisted document stores money as bare JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Sentinel errors surfaced to the transport layer.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// Document is the whole business dataset, loaded and saved as one unit.
type Document struct {
	Products     []Product     `json:"products"`
	Transactions []Transaction `json:"transactions"`
	Customers    []Customer    `json:"customers"`
	Suppliers    []Supplier    `json:"suppliers"`
	Notes        []Note        `json:"notes"`
	Settings     Settings      `json:"settings"`
}

// Product is a stocked item. Identity is an integer assigned as max+1.
// MinStock and MaxStock are reorder thresholds, not enforced constraints.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	Cost        decimal.Decimal `json:"cost"`
	Category    string          `json:"category"`
	Supplier    string          `json:"supplier"`
	MinStock    int64           `json:"min_stock"`
	MaxStock    int64           `json:"max_stock"`
	Barcode     string          `json:"barcode"`
	Unit        string          `json:"unit"`
	LastUpdated string          `json:"last_updated,omitempty"`
}

// Transaction types.
const (
	TransactionSale     = "sale"
	TransactionPurchase = "purchase"
)

// TransactionItem is one sold line: product name, quantity, and unit price.
type TransactionItem struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Transaction is one entry in the append-only sales/purchases log.
// Entries are immutable once created: there are no update or delete operations.
type Transaction struct {
	ID          int64             `json:"id"`
	Date        string            `json:"date"`
	Type        string            `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Customer    string            `json:"customer"`
	Supplier    string            `json:"supplier"`
	Description string            `json:"description"`
	Items       []TransactionItem `json:"items"`
}

// Customer tracks a buyer. TotalSpent is recorded at creation only; the
// transaction processor does not maintain it.
type Customer struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Contact    string          `json:"contact"`
	Email      string          `json:"email"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// Supplier is a goods source referenced by products and purchase transactions.
type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// Note is a free-form note. Identity is a UUID string, unlike the integer
// identities used elsewhere.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Settings holds display-level configuration. TaxRate is a UI input and is not
// applied in any computed report.
type Settings struct {
	TaxRate decimal.Decimal `json:"tax_rate"`
}

// ensureCollections replaces nil collection slices with empty ones so the
// document marshals with explicit lists rather than nulls.
func (d *Document) ensureCollections() {
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.Customers == nil {
		d.Customers = []Customer{}
	}
	if d.Suppliers == nil {
		d.Suppliers = []Supplier{}
	}
	if d.Notes == nil {
		d.Notes = []Note{}
	}
}

// nextProductID returns one greater than the highest product identity, or 1
// for an empty collection. Identities are never reused while the holder of the
// maximum identity remains in the document.
func nextProductID(doc *Document) int64 {
	var max int64
	for _, p := range doc.Products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func nextTransactionID(doc *Document) int64 {
	var max int64
	for _, t := range doc.Transactions {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

func nextCustomerID(doc *Document) int64 {
	var max int64
	for _, c := range doc.Customers {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func nextSupplierID(doc *Document) int64 {
	var max int64
	for _, s := range doc.Suppliers {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}
