package core

import "github.com/shopspring/decimal"

// DefaultDocument returns the seed dataset used when the backing file is
// missing or unreadable. The samples double as a working demo inventory.
func DefaultDocument() *Document {
	return &Document{
		Products: []Product{
			{
				ID: 1, Name: "250ltrs open plastic Drum",
				Price: decimal.NewFromInt(2900), Stock: 10, Cost: decimal.NewFromInt(2000),
				Category: "Drums", Supplier: "Plastic Works Ltd",
				MinStock: 2, MaxStock: 50, Barcode: "DRUM250OP", Unit: "piece",
			},
			{
				ID: 2, Name: "250lts close Drum",
				Price: decimal.NewFromInt(3000), Stock: 8, Cost: decimal.NewFromInt(2100),
				Category: "Drums", Supplier: "Plastic Works Ltd",
				MinStock: 2, MaxStock: 40, Barcode: "DRUM250CL", Unit: "piece",
			},
			{
				ID: 3, Name: "170lts Drum",
				Price: decimal.NewFromInt(2200), Stock: 15, Cost: decimal.NewFromInt(1500),
				Category: "Drums", Supplier: "Container Solutions",
				MinStock: 3, MaxStock: 60, Barcode: "DRUM170", Unit: "piece",
			},
			{
				ID: 4, Name: "120lts Plastic Drum",
				Price: decimal.NewFromInt(1500), Stock: 12, Cost: decimal.NewFromInt(1000),
				Category: "Drums", Supplier: "Container Solutions",
				MinStock: 5, MaxStock: 80, Barcode: "DRUM120", Unit: "piece",
			},
			{
				ID: 5, Name: "80lts Plastic Drum",
				Price: decimal.NewFromInt(1000), Stock: 20, Cost: decimal.NewFromInt(700),
				Category: "Drums", Supplier: "Plastic Works Ltd",
				MinStock: 5, MaxStock: 100, Barcode: "DRUM80", Unit: "piece",
			},
		},
		Transactions: []Transaction{
			{
				ID: 1, Date: "2024-01-15 10:30:00", Type: TransactionSale,
				Amount: decimal.NewFromInt(5800), Customer: "John Doe",
				Items: []TransactionItem{
					{Name: "250ltrs open plastic Drum", Quantity: 2, Price: decimal.NewFromInt(2900)},
				},
			},
			{
				ID: 2, Date: "2024-01-16 14:20:00", Type: TransactionPurchase,
				Amount: decimal.NewFromInt(4200), Supplier: "Plastic Works Ltd",
				Description: "Restock drums", Items: []TransactionItem{},
			},
			{
				ID: 3, Date: "2024-01-17 09:15:00", Type: TransactionSale,
				Amount: decimal.NewFromInt(2200), Customer: "Jane Smith",
				Items: []TransactionItem{
					{Name: "170lts Drum", Quantity: 1, Price: decimal.NewFromInt(2200)},
				},
			},
		},
		Customers: []Customer{
			{ID: 1, Name: "John Doe", Contact: "0712345678", Email: "john@example.com", TotalSpent: decimal.NewFromInt(5800)},
			{ID: 2, Name: "Jane Smith", Contact: "0723456789", Email: "jane@example.com", TotalSpent: decimal.NewFromInt(2200)},
		},
		Suppliers: []Supplier{
			{ID: 1, Name: "Plastic Works Ltd", Contact: "0721000001", Email: "sales@plasticworks.co.ke"},
			{ID: 2, Name: "Container Solutions", Contact: "0721000002", Email: "info@containers.co.ke"},
		},
		Notes:    []Note{},
		Settings: Settings{TaxRate: decimal.NewFromFloat(16.0)},
	}
}
