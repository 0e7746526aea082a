package core

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Coercion records one field the normalizer had to repair: either parsed from
// text or degraded to zero because the value was unusable. Malformed numeric
// input never fails a load; it degrades and is reported here so callers can
// inspect what was coerced.
type Coercion struct {
	Section string `json:"section"`
	Record  string `json:"record"`
	Field   string `json:"field"`
	Raw     any    `json:"raw"`
}

// Normalize coerces a raw decoded document into the expected shape. The result
// always contains all five collections and the settings object; any top-level
// key that is missing or not the expected shape is replaced with the seed
// document's value. Per-record fields are defaulted and numeric fields parsed
// with a fallback to zero.
//
// Normalizing an already-normalized document is a no-op and reports no
// coercions.
func Normalize(raw map[string]any) (*Document, []Coercion) {
	seed := DefaultDocument()
	doc := &Document{}
	var coercions []Coercion

	if list, ok := rawRecords(raw, "products"); ok {
		doc.Products = make([]Product, 0, len(list))
		for _, m := range list {
			p, cs := normalizeProduct(m)
			doc.Products = append(doc.Products, p)
			coercions = append(coercions, cs...)
		}
	} else {
		doc.Products = seed.Products
	}

	if list, ok := rawRecords(raw, "transactions"); ok {
		doc.Transactions = make([]Transaction, 0, len(list))
		for _, m := range list {
			t, cs := normalizeTransaction(m)
			doc.Transactions = append(doc.Transactions, t)
			coercions = append(coercions, cs...)
		}
	} else {
		doc.Transactions = seed.Transactions
	}

	if list, ok := rawRecords(raw, "customers"); ok {
		doc.Customers = make([]Customer, 0, len(list))
		for _, m := range list {
			c, cs := normalizeCustomer(m)
			doc.Customers = append(doc.Customers, c)
			coercions = append(coercions, cs...)
		}
	} else {
		doc.Customers = seed.Customers
	}

	if list, ok := rawRecords(raw, "suppliers"); ok {
		doc.Suppliers = make([]Supplier, 0, len(list))
		for _, m := range list {
			doc.Suppliers = append(doc.Suppliers, normalizeSupplier(m))
		}
	} else {
		doc.Suppliers = seed.Suppliers
	}

	if list, ok := rawRecords(raw, "notes"); ok {
		doc.Notes = make([]Note, 0, len(list))
		for _, m := range list {
			doc.Notes = append(doc.Notes, normalizeNote(m))
		}
	} else {
		doc.Notes = seed.Notes
	}

	if m, ok := raw["settings"].(map[string]any); ok {
		s, cs := normalizeSettings(m)
		doc.Settings = s
		coercions = append(coercions, cs...)
	} else {
		doc.Settings = seed.Settings
	}

	return doc, coercions
}

// rawRecords extracts a collection as a slice of record maps. Entries that are
// not objects are dropped. The second return is false when the key is absent
// or not a list, in which case the caller substitutes the seed collection.
func rawRecords(raw map[string]any, key string) ([]map[string]any, bool) {
	v, ok := raw[key]
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]map[string]any, 0, len(list))
	for _, e := range list {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out, true
}

func normalizeProduct(m map[string]any) (Product, []Coercion) {
	var coercions []Coercion
	p := Product{
		ID:       cast.ToInt64(m["id"]),
		Name:     cast.ToString(m["name"]),
		MinStock: 5,
		MaxStock: 100,
		Unit:     "piece",
	}
	record := p.Name

	if v, ok := m["price"]; ok {
		d, coerced := asDecimal(v)
		p.Price = d
		if coerced {
			coercions = append(coercions, Coercion{"products", record, "price", v})
		}
	}
	if v, ok := m["stock"]; ok {
		n, coerced := asInt(v)
		p.Stock = n
		if coerced {
			coercions = append(coercions, Coercion{"products", record, "stock", v})
		}
	}
	if v, ok := m["cost"]; ok {
		d, coerced := asDecimal(v)
		p.Cost = d
		if coerced {
			coercions = append(coercions, Coercion{"products", record, "cost", v})
		}
	}
	if v, ok := m["category"]; ok {
		p.Category = cast.ToString(v)
	}
	if v, ok := m["supplier"]; ok {
		p.Supplier = cast.ToString(v)
	}
	if v, ok := m["min_stock"]; ok {
		p.MinStock = cast.ToInt64(v)
	}
	if v, ok := m["max_stock"]; ok {
		p.MaxStock = cast.ToInt64(v)
	}
	if v, ok := m["barcode"]; ok {
		p.Barcode = cast.ToString(v)
	}
	if v, ok := m["unit"]; ok {
		p.Unit = cast.ToString(v)
	}
	if v, ok := m["last_updated"]; ok {
		p.LastUpdated = cast.ToString(v)
	}
	return p, coercions
}

func normalizeTransaction(m map[string]any) (Transaction, []Coercion) {
	var coercions []Coercion
	t := Transaction{
		ID:    cast.ToInt64(m["id"]),
		Date:  cast.ToString(m["date"]),
		Type:  cast.ToString(m["type"]),
		Items: []TransactionItem{},
	}
	record := cast.ToString(m["id"])

	if v, ok := m["amount"]; ok {
		d, coerced := asDecimal(v)
		t.Amount = d
		if coerced {
			coercions = append(coercions, Coercion{"transactions", record, "amount", v})
		}
	}
	if v, ok := m["customer"]; ok {
		t.Customer = cast.ToString(v)
	}
	if v, ok := m["supplier"]; ok {
		t.Supplier = cast.ToString(v)
	}
	if v, ok := m["description"]; ok {
		t.Description = cast.ToString(v)
	}
	if list, ok := m["items"].([]any); ok {
		for _, e := range list {
			im, ok := e.(map[string]any)
			if !ok {
				continue
			}
			item, cs := normalizeItem(im)
			t.Items = append(t.Items, item)
			coercions = append(coercions, cs...)
		}
	}
	return t, coercions
}

func normalizeItem(m map[string]any) (TransactionItem, []Coercion) {
	var coercions []Coercion
	item := TransactionItem{
		Name:     cast.ToString(m["name"]),
		Quantity: 1,
	}
	if v, ok := m["quantity"]; ok {
		n, coerced := asInt(v)
		item.Quantity = n
		if coerced {
			coercions = append(coercions, Coercion{"transactions", "item " + item.Name, "quantity", v})
		}
	}
	if v, ok := m["price"]; ok {
		d, coerced := asDecimal(v)
		item.Price = d
		if coerced {
			coercions = append(coercions, Coercion{"transactions", "item " + item.Name, "price", v})
		}
	}
	return item, coercions
}

func normalizeCustomer(m map[string]any) (Customer, []Coercion) {
	var coercions []Coercion
	c := Customer{
		ID:      cast.ToInt64(m["id"]),
		Name:    cast.ToString(m["name"]),
		Contact: cast.ToString(m["contact"]),
		Email:   cast.ToString(m["email"]),
	}
	if v, ok := m["total_spent"]; ok {
		d, coerced := asDecimal(v)
		c.TotalSpent = d
		if coerced {
			coercions = append(coercions, Coercion{"customers", c.Name, "total_spent", v})
		}
	}
	return c, coercions
}

func normalizeSupplier(m map[string]any) Supplier {
	return Supplier{
		ID:      cast.ToInt64(m["id"]),
		Name:    cast.ToString(m["name"]),
		Contact: cast.ToString(m["contact"]),
		Email:   cast.ToString(m["email"]),
	}
}

func normalizeNote(m map[string]any) Note {
	n := Note{
		ID:       cast.ToString(m["id"]),
		Title:    cast.ToString(m["title"]),
		Content:  cast.ToString(m["content"]),
		Category: "General",
	}
	if v, ok := m["category"]; ok {
		n.Category = cast.ToString(v)
	}
	if v, ok := m["created_at"]; ok {
		n.CreatedAt = cast.ToString(v)
	}
	if v, ok := m["updated_at"]; ok {
		n.UpdatedAt = cast.ToString(v)
	}
	return n
}

func normalizeSettings(m map[string]any) (Settings, []Coercion) {
	var coercions []Coercion
	s := Settings{TaxRate: DefaultDocument().Settings.TaxRate}
	if v, ok := m["tax_rate"]; ok {
		d, coerced := asDecimal(v)
		s.TaxRate = d
		if coerced {
			coercions = append(coercions, Coercion{"settings", "", "tax_rate", v})
		}
	}
	return s, coercions
}

// asDecimal converts a raw JSON value to a decimal amount. Numbers pass
// through unchanged; strings are parsed; anything else degrades to zero. The
// second return reports whether the value had to be coerced.
func asDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case float64:
		return decimal.NewFromFloat(x), false
	case int:
		return decimal.NewFromInt(int64(x)), false
	case int64:
		return decimal.NewFromInt(x), false
	case decimal.Decimal:
		return x, false
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Zero, true
		}
		return d, true
	default:
		return decimal.Zero, true
	}
}

// asInt converts a raw JSON value to an integer count. Textual input is parsed
// as a decimal number and truncated; unparseable input degrades to zero.
func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		return int64(x), false
	case int:
		return int64(x), false
	case int64:
		return x, false
	case string:
		return int64(cast.ToFloat64(strings.TrimSpace(x))), true
	default:
		return int64(cast.ToFloat64(v)), true
	}
}
