package core_test

import (
	"context"
	"testing"
	"time"

	"bizbook/internal/core"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// seedTransactions writes a document with the given products and transactions.
func seedTransactions(t *testing.T, store *core.Store, products []core.Product, transactions []core.Transaction) {
	t.Helper()
	doc := &core.Document{
		Products:     products,
		Transactions: transactions,
		Customers:    []core.Customer{},
		Suppliers:    []core.Supplier{},
		Notes:        []core.Note{},
	}
	if err := store.Save(context.Background(), doc); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}
}

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(core.TimestampLayout)
}

func sale(id int64, date string, amount int64, items ...core.TransactionItem) core.Transaction {
	if items == nil {
		items = []core.TransactionItem{}
	}
	return core.Transaction{
		ID: id, Date: date, Type: core.TransactionSale,
		Amount: decimal.NewFromInt(amount), Items: items,
	}
}

func purchase(id int64, date string, amount int64) core.Transaction {
	return core.Transaction{
		ID: id, Date: date, Type: core.TransactionPurchase,
		Amount: decimal.NewFromInt(amount), Items: []core.TransactionItem{},
	}
}

// Requesting a 5-day window must always return exactly 6 aligned pairs,
// start through end inclusive, even with zero matching sales.
func TestSalesSeries_DenseWindow(t *testing.T) {
	store := newTestStore(t)
	seedTransactions(t, store, []core.Product{}, []core.Transaction{})
	svc := core.NewAnalyticsService(store, zerolog.Nop())

	report, err := svc.SalesSeries(context.Background(), 5)
	if err != nil {
		t.Fatalf("SalesSeries failed: %v", err)
	}
	if len(report.Dates) != 6 || len(report.Sales) != 6 {
		t.Fatalf("expected 6 aligned pairs, got %d dates / %d sales", len(report.Dates), len(report.Sales))
	}
	for i, amount := range report.Sales {
		if !amount.IsZero() {
			t.Errorf("expected zero sales on %s, got %s", report.Dates[i], amount)
		}
	}
	if !report.TotalSales.IsZero() || !report.AvgDailySales.IsZero() {
		t.Errorf("expected zero totals, got total=%s avg=%s", report.TotalSales, report.AvgDailySales)
	}
}

func TestSalesSeries_BucketsByCalendarDay(t *testing.T) {
	store := newTestStore(t)
	seedTransactions(t, store, []core.Product{}, []core.Transaction{
		sale(1, daysAgo(1), 300),
		sale(2, daysAgo(1), 200),
		sale(3, daysAgo(3), 100),
	})
	svc := core.NewAnalyticsService(store, zerolog.Nop())

	report, err := svc.SalesSeries(context.Background(), 5)
	if err != nil {
		t.Fatalf("SalesSeries failed: %v", err)
	}

	byDate := map[string]decimal.Decimal{}
	for i, d := range report.Dates {
		byDate[d] = report.Sales[i]
	}

	day1 := time.Now().AddDate(0, 0, -1).Format(core.DateLayout)
	day3 := time.Now().AddDate(0, 0, -3).Format(core.DateLayout)
	if !byDate[day1].Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected 500 bucketed on %s, got %s", day1, byDate[day1])
	}
	if !byDate[day3].Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected 100 bucketed on %s, got %s", day3, byDate[day3])
	}
	if !report.TotalSales.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected total 600, got %s", report.TotalSales)
	}
	want := decimal.NewFromInt(600).Div(decimal.NewFromInt(6))
	if !report.AvgDailySales.Equal(want) {
		t.Errorf("expected avg %s, got %s", want, report.AvgDailySales)
	}
}

func TestSalesSeries_ExcludesOutsideWindowAndPurchases(t *testing.T) {
	store := newTestStore(t)
	seedTransactions(t, store, []core.Product{}, []core.Transaction{
		sale(1, daysAgo(10), 1000),
		purchase(2, daysAgo(1), 400),
		sale(3, daysAgo(1), 50),
	})
	svc := core.NewAnalyticsService(store, zerolog.Nop())

	report, err := svc.SalesSeries(context.Background(), 5)
	if err != nil {
		t.Fatalf("SalesSeries failed: %v", err)
	}
	if !report.TotalSales.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected only the in-window sale counted, got %s", report.TotalSales)
	}
}

func TestSalesSeries_SkipsUnparseableDates(t *testing.T) {
	store := newTestStore(t)
	seedTransactions(t, store, []core.Product{}, []core.Transaction{
		sale(1, "not a date", 1000),
		sale(2, daysAgo(2), 75),
	})
	svc := core.NewAnalyticsService(store, zerolog.Nop())

	report, err := svc.SalesSeries(context.Background(), 5)
	if err != nil {
		t.Fatalf("SalesSeries must not fail on bad dates: %v", err)
	}
	if !report.TotalSales.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected 75 with the bad-date sale skipped, got %s", report.TotalSales)
	}
}

func TestSalesSeries_TopProductsRankedByRevenue(t *testing.T) {
	store := newTestStore(t)
	seedTransactions(t, store, []core.Product{}, []core.Transaction{
		sale(1, daysAgo(1), 700,
			core.TransactionItem{Name: "Big Drum", Quantity: 2, Price: decimal.NewFromInt(300)},
			core.TransactionItem{Name: "Small Drum", Quantity: 1, Price: decimal.NewFromInt(100)},
		),
		sale(2, daysAgo(2), 100,
			core.TransactionItem{Name: "Small Drum", Quantity: 1, Price: decimal.NewFromInt(100)},
		),
	})
	svc := core.NewAnalyticsService(store, zerolog.Nop())

	report, err := svc.SalesSeries(context.Background(), 5)
	if err != nil {
		t.Fatalf("SalesSeries failed: %v", err)
	}
	if len(report.TopProducts) != 2 {
		t.Fatalf("expected 2 ranked products, got %d", len(report.TopProducts))
	}
	if report.TopProducts[0].Name != "Big Drum" || !report.TopProducts[0].Revenue.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected Big Drum at 600 first, got %s at %s",
			report.TopProducts[0].Name, report.TopProducts[0].Revenue)
	}
	if report.TopProducts[1].Name != "Small Drum" || !report.TopProducts[1].Revenue.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected Small Drum at 200 second, got %s at %s",
			report.TopProducts[1].Name, report.TopProducts[1].Revenue)
	}
}

func TestBalance_ComputesAllTimeTotals(t *testing.T) {
	store := newTestStore(t)
	products := []core.Product{
		{ID: 1, Name: "Drum", Price: decimal.NewFromInt(100), Stock: 3},
		{ID: 2, Name: "Lid", Price: decimal.NewFromInt(10), Stock: 5},
	}
	seedTransactions(t, store, products, []core.Transaction{
		sale(1, "2024-01-15 10:30:00", 500),
		purchase(2, "2024-01-16 14:20:00", 200),
		sale(3, "2024-01-17 09:15:00", 100),
	})
	svc := core.NewAnalyticsService(store, zerolog.Nop())

	rep, err := svc.Balance(context.Background())
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if !rep.Income.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected income 600, got %s", rep.Income)
	}
	if !rep.Expenses.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected expenses 200, got %s", rep.Expenses)
	}
	if !rep.StockValue.Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected stock value 350, got %s", rep.StockValue)
	}
	if !rep.GrossProfit.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected gross profit 400, got %s", rep.GrossProfit)
	}
	if rep.TotalProducts != 2 || rep.TotalCustomers != 0 {
		t.Errorf("expected counts 2/0, got %d/%d", rep.TotalProducts, rep.TotalCustomers)
	}
}

// Adding a purchase of amount X increases expenses by exactly X and leaves
// income unchanged; a sale of amount Y increases income and gross profit by Y.
func TestBalance_Monotonicity(t *testing.T) {
	store := newTestStore(t)
	seedTransactions(t, store, []core.Product{}, []core.Transaction{})
	analytics := core.NewAnalyticsService(store, zerolog.Nop())
	transactions := core.NewTransactionService(store)
	ctx := context.Background()

	before, err := analytics.Balance(ctx)
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}

	if _, err := transactions.Create(ctx, map[string]any{"type": "purchase", "amount": float64(250)}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	afterPurchase, _ := analytics.Balance(ctx)
	if !afterPurchase.Expenses.Equal(before.Expenses.Add(decimal.NewFromInt(250))) {
		t.Errorf("expenses should grow by 250: %s -> %s", before.Expenses, afterPurchase.Expenses)
	}
	if !afterPurchase.Income.Equal(before.Income) {
		t.Errorf("income should be unchanged by a purchase: %s -> %s", before.Income, afterPurchase.Income)
	}

	if _, err := transactions.Create(ctx, map[string]any{"type": "sale", "amount": float64(400)}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	afterSale, _ := analytics.Balance(ctx)
	if !afterSale.Income.Equal(afterPurchase.Income.Add(decimal.NewFromInt(400))) {
		t.Errorf("income should grow by 400: %s -> %s", afterPurchase.Income, afterSale.Income)
	}
	if !afterSale.GrossProfit.Equal(afterPurchase.GrossProfit.Add(decimal.NewFromInt(400))) {
		t.Errorf("gross profit should grow by 400: %s -> %s", afterPurchase.GrossProfit, afterSale.GrossProfit)
	}
}
