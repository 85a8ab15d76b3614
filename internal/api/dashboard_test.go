package api

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummary_Decode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dashboard/summary", r.URL.Path)
		io.WriteString(w, `{
			"all_time":{"total_income":5000,"total_expenses":3200.5,"balance":1799.5},
			"current_month":{"month":"2026-09","income":400,"expenses":120,"balance":280},
			"stats":{"account_count":2,"transaction_count":57}
		}`)
	})

	s, err := NewDashboardAPI(c).Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3200.5, s.AllTime.TotalExpenses)
	require.Equal(t, "2026-09", s.CurrentMonth.Month)
	require.Equal(t, 57, s.Stats.TransactionCount)
}

func TestExpensesByCategory_NoBoundsNoQueryString(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dashboard/expenses-by-category", r.URL.Path)
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"period":{"start":"2026-08-01","end":"2026-09-01"},"total_expenses":0,"categories":[]}`)
	})

	_, err := NewDashboardAPI(c).ExpensesByCategory(context.Background(), "", "")
	require.NoError(t, err)
	require.Empty(t, gotQuery)
}

func TestExpensesByCategory_WithBounds(t *testing.T) {
	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		io.WriteString(w, `{
			"period":{"start":"2026-01-01","end":"2026-06-30"},
			"total_expenses":900,
			"categories":[{"category_id":3,"category_name":"Groceries","total":900,"transaction_count":12,"percentage":100}]
		}`)
	})

	e, err := NewDashboardAPI(c).ExpensesByCategory(context.Background(), "2026-01-01", "2026-06-30")
	require.NoError(t, err)
	require.Equal(t, []string{"2026-01-01"}, gotQuery["start_date"])
	require.Equal(t, []string{"2026-06-30"}, gotQuery["end_date"])
	require.Len(t, e.Categories, 1)
	require.Equal(t, int64(3), *e.Categories[0].CategoryID)
}

func TestIncomeVsExpenses_DefaultMonths(t *testing.T) {
	var gotMonths string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMonths = r.URL.Query().Get("months")
		io.WriteString(w, `{"months":6,"data":[{"period":"2026-04","month_name":"April","income":10,"expenses":5,"balance":5}]}`)
	})

	ive, err := NewDashboardAPI(c).IncomeVsExpenses(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, "6", gotMonths)
	require.Equal(t, "April", ive.Data[0].MonthName)
}

func TestRecentTransactions_LimitAndNullCategory(t *testing.T) {
	var gotLimit string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		io.WriteString(w, `[
			{"id":9,"type":"expense","amount":12.4,"currency":"EUR","description":"coffee","category_name":null,"transaction_date":"2026-08-30"}
		]`)
	})

	txs, err := NewDashboardAPI(c).RecentTransactions(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, "5", gotLimit)
	require.Len(t, txs, 1)
	require.Nil(t, txs[0].CategoryName)
}

func TestRecentTransactions_DefaultLimit(t *testing.T) {
	var gotLimit string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		io.WriteString(w, `[]`)
	})

	_, err := NewDashboardAPI(c).RecentTransactions(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, "10", gotLimit)
}
