package cli

import (
	"context"
	"fmt"

	"finview/internal/dashboard"
)

// Dashboard refreshes all four analytics slices and renders the result.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}

	fmt.Println("Loading dashboard...")
	vm := a.dashboard.Refresh(ctx)
	renderDashboard(vm)
	return nil
}

// renderDashboard prints a resolved view model. A failed cycle renders as a
// single retryable error, never as a partially filled dashboard.
func renderDashboard(vm dashboard.ViewModel) {
	switch vm.Status {
	case dashboard.StatusFailed:
		fmt.Printf("Could not load dashboard: %s\n", vm.Error)
		fmt.Println("Type 'refresh' to try again.")
		return
	case dashboard.StatusLoading:
		fmt.Println("Dashboard is still loading.")
		return
	}

	s := vm.Summary
	fmt.Println("== Summary ==")
	fmt.Printf("All time:  income %.2f, expenses %.2f, balance %.2f\n",
		s.AllTime.TotalIncome, s.AllTime.TotalExpenses, s.AllTime.Balance)
	fmt.Printf("%s:  income %.2f, expenses %.2f, balance %.2f\n",
		s.CurrentMonth.Month, s.CurrentMonth.Income, s.CurrentMonth.Expenses, s.CurrentMonth.Balance)
	fmt.Printf("%d accounts, %d transactions\n",
		s.Stats.AccountCount, s.Stats.TransactionCount)

	fmt.Println("== Expenses by category ==")
	for _, c := range vm.ExpensesByCategory.Categories {
		fmt.Printf("%-20s %10.2f  (%.1f%%, %d transactions)\n",
			c.CategoryName, c.Total, c.Percentage, c.TransactionCount)
	}
	if len(vm.ExpensesByCategory.Categories) == 0 {
		fmt.Println("(no expenses in period)")
	}

	fmt.Println("== Income vs expenses ==")
	for _, p := range vm.IncomeVsExpenses.Data {
		fmt.Printf("%-10s income %10.2f  expenses %10.2f  balance %10.2f\n",
			p.MonthName, p.Income, p.Expenses, p.Balance)
	}

	fmt.Println("== Recent transactions ==")
	for _, tx := range vm.RecentTransactions {
		category := "-"
		if tx.CategoryName != nil {
			category = *tx.CategoryName
		}
		fmt.Printf("%s  %-7s %10.2f %s  %s (%s)\n",
			tx.TransactionDate, tx.Type, tx.Amount, tx.Currency, tx.Description, category)
	}
	if len(vm.RecentTransactions) == 0 {
		fmt.Println("(no transactions yet)")
	}
}
