package api

// Identity is the authenticated user's minimal public record. It is replaced
// wholesale on every fetch, never partially updated.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// messageResponse is the acknowledgment body returned by the auth endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// Totals are all-time income/expense totals.
type Totals struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}

// MonthSummary is the running month's totals.
type MonthSummary struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// SummaryStats counts the user's accounts and transactions.
type SummaryStats struct {
	AccountCount     int `json:"account_count"`
	TransactionCount int `json:"transaction_count"`
}

// Summary is the /dashboard/summary response.
type Summary struct {
	AllTime      Totals       `json:"all_time"`
	CurrentMonth MonthSummary `json:"current_month"`
	Stats        SummaryStats `json:"stats"`
}

// Period is a half-open date range reported by the server.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CategoryExpense is one slice of the category breakdown. CategoryID is nil
// for uncategorized spending.
type CategoryExpense struct {
	CategoryID       *int64  `json:"category_id"`
	CategoryName     string  `json:"category_name"`
	Total            float64 `json:"total"`
	TransactionCount int     `json:"transaction_count"`
	Percentage       float64 `json:"percentage"`
}

// ExpensesByCategory is the /dashboard/expenses-by-category response.
type ExpensesByCategory struct {
	Period        Period            `json:"period"`
	TotalExpenses float64           `json:"total_expenses"`
	Categories    []CategoryExpense `json:"categories"`
}

// MonthlyPoint is one month of the income-vs-expenses series.
type MonthlyPoint struct {
	Period    string  `json:"period"`
	MonthName string  `json:"month_name"`
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	Balance   float64 `json:"balance"`
}

// IncomeVsExpenses is the /dashboard/income-vs-expenses response.
type IncomeVsExpenses struct {
	Months int            `json:"months"`
	Data   []MonthlyPoint `json:"data"`
}

// Transaction is one entry of the recent-transactions feed. Type is either
// "income" or "expense".
type Transaction struct {
	ID              int64   `json:"id"`
	Type            string  `json:"type"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Description     string  `json:"description"`
	CategoryName    *string `json:"category_name"`
	TransactionDate string  `json:"transaction_date"`
}
