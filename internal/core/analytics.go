package core

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ProductRevenue is one entry in the top-products ranking.
type ProductRevenue struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesReport is the time-bucketed sales view over a trailing window.
// Dates and Sales are aligned, dense, and gap-free: one pair per calendar day
// from window start through window end inclusive, zero for days without sales.
type SalesReport struct {
	Dates         []string          `json:"dates"`
	Sales         []decimal.Decimal `json:"sales"`
	TopProducts   []ProductRevenue  `json:"top_products"`
	TotalSales    decimal.Decimal   `json:"total_sales"`
	AvgDailySales decimal.Decimal   `json:"avg_daily_sales"`
}

// BalanceReport is the all-time balance sheet: income and expenses over the
// full transaction log, current stock valuation, and gross profit.
type BalanceReport struct {
	Income         decimal.Decimal `json:"income"`
	Expenses       decimal.Decimal `json:"expenses"`
	StockValue     decimal.Decimal `json:"stock_value"`
	GrossProfit    decimal.Decimal `json:"gross_profit"`
	TotalCustomers int             `json:"total_customers"`
	TotalProducts  int             `json:"total_products"`
}

// AnalyticsService computes read-only reports, fresh on every call.
type AnalyticsService interface {
	// SalesSeries aggregates sale transactions inside [now-days, now] into
	// per-day buckets and a top-10 per-product revenue ranking. Transactions
	// whose dates fail to parse are skipped, not fatal. days <= 0 selects the
	// 30-day default.
	SalesSeries(ctx context.Context, days int) (*SalesReport, error)

	// Balance computes the all-time balance report. It never fails: any fault
	// during computation yields the all-zero report instead of an error.
	Balance(ctx context.Context) (*BalanceReport, error)
}

type analyticsService struct {
	store *Store
	log   zerolog.Logger
}

// NewAnalyticsService constructs an AnalyticsService backed by the store.
func NewAnalyticsService(store *Store, log zerolog.Logger) AnalyticsService {
	return &analyticsService{store: store, log: log}
}

func (s *analyticsService) SalesSeries(ctx context.Context, days int) (*SalesReport, error) {
	if days <= 0 {
		days = 30
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	daily := map[string]decimal.Decimal{}
	revenue := map[string]decimal.Decimal{}

	for _, tx := range doc.Transactions {
		if tx.Type != TransactionSale {
			continue
		}
		// Dates are written in server-local time, so they parse in local time.
		when, err := time.ParseInLocation(TimestampLayout, tx.Date, time.Local)
		if err != nil {
			s.log.Warn().Int64("transaction", tx.ID).Str("date", tx.Date).
				Msg("skipping sale with unparseable date")
			continue
		}
		if when.Before(start) || when.After(end) {
			continue
		}
		day := when.Format(DateLayout)
		daily[day] = daily[day].Add(tx.Amount)
		for _, item := range tx.Items {
			line := item.Price.Mul(decimal.NewFromInt(item.Quantity))
			revenue[item.Name] = revenue[item.Name].Add(line)
		}
	}

	report := &SalesReport{
		Dates: make([]string, 0, days+1),
		Sales: make([]decimal.Decimal, 0, days+1),
	}
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		day := cur.Format(DateLayout)
		report.Dates = append(report.Dates, day)
		report.Sales = append(report.Sales, daily[day])
		report.TotalSales = report.TotalSales.Add(daily[day])
	}
	if n := len(report.Dates); n > 0 {
		report.AvgDailySales = report.TotalSales.Div(decimal.NewFromInt(int64(n)))
	}

	report.TopProducts = topProducts(revenue, 10)
	return report, nil
}

// topProducts ranks product revenue descending and keeps the first limit
// entries. Ties break on name so repeated exports stay deterministic.
func topProducts(revenue map[string]decimal.Decimal, limit int) []ProductRevenue {
	ranked := make([]ProductRevenue, 0, len(revenue))
	for name, total := range revenue {
		ranked = append(ranked, ProductRevenue{Name: name, Revenue: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Revenue.Equal(ranked[j].Revenue) {
			return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (s *analyticsService) Balance(ctx context.Context) (rep *BalanceReport, err error) {
	rep = &BalanceReport{}
	// The balance endpoint must answer even when individual records are in an
	// unexpected shape: any fault degrades to the all-zero report.
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn().Interface("fault", r).Msg("balance computation failed, returning zero report")
			rep = &BalanceReport{}
			err = nil
		}
	}()

	doc, loadErr := s.store.Load(ctx)
	if loadErr != nil {
		s.log.Warn().Err(loadErr).Msg("balance load failed, returning zero report")
		return rep, nil
	}

	for _, tx := range doc.Transactions {
		switch tx.Type {
		case TransactionSale:
			rep.Income = rep.Income.Add(tx.Amount)
		case TransactionPurchase:
			rep.Expenses = rep.Expenses.Add(tx.Amount)
		}
	}
	for _, p := range doc.Products {
		rep.StockValue = rep.StockValue.Add(p.Price.Mul(decimal.NewFromInt(p.Stock)))
	}
	rep.GrossProfit = rep.Income.Sub(rep.Expenses)
	rep.TotalCustomers = len(doc.Customers)
	rep.TotalProducts = len(doc.Products)
	return rep, nil
}
