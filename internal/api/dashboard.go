package api

import (
	"context"
	"fmt"
	"net/url"
)

// Server defaults applied when a caller passes the zero value.
const (
	DefaultMonths      = 6
	DefaultRecentLimit = 10
)

// DashboardAPI is the typed gateway to the analytics endpoints. Each call is
// independent and independently retryable; composing them into one view is
// the orchestrator's job, not this layer's.
type DashboardAPI struct {
	c *Client
}

// NewDashboardAPI binds the analytics gateway to a transport.
func NewDashboardAPI(c *Client) *DashboardAPI {
	return &DashboardAPI{c: c}
}

// Summary fetches all-time and current-month totals.
func (d *DashboardAPI) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	if err := d.c.Get(ctx, "/dashboard/summary", &s); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// ExpensesByCategory fetches the category breakdown for the given date
// bounds (YYYY-MM-DD). Empty bounds are omitted from the query entirely so
// the server applies its default period.
func (d *DashboardAPI) ExpensesByCategory(ctx context.Context, startDate, endDate string) (ExpensesByCategory, error) {
	path := "/dashboard/expenses-by-category"

	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var e ExpensesByCategory
	if err := d.c.Get(ctx, path, &e); err != nil {
		return ExpensesByCategory{}, err
	}
	return e, nil
}

// IncomeVsExpenses fetches the monthly income/expense/balance series.
// A non-positive months falls back to DefaultMonths.
func (d *DashboardAPI) IncomeVsExpenses(ctx context.Context, months int) (IncomeVsExpenses, error) {
	if months <= 0 {
		months = DefaultMonths
	}

	var ive IncomeVsExpenses
	path := fmt.Sprintf("/dashboard/income-vs-expenses?months=%d", months)
	if err := d.c.Get(ctx, path, &ive); err != nil {
		return IncomeVsExpenses{}, err
	}
	return ive, nil
}

// RecentTransactions fetches the newest transactions. A non-positive limit
// falls back to DefaultRecentLimit.
func (d *DashboardAPI) RecentTransactions(ctx context.Context, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	var txs []Transaction
	path := fmt.Sprintf("/dashboard/recent-transactions?limit=%d", limit)
	if err := d.c.Get(ctx, path, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
