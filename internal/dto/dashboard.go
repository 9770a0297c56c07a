package dto

// CategoryTotal is an aggregated amount for a single category
type CategoryTotal struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// MonthlyTotal is an aggregated amount for a single month (YYYY-MM)
type MonthlyTotal struct {
	Month    string `json:"month"`
	Expenses string `json:"expenses"`
	Income   string `json:"income"`
}

// DashboardSummaryResponse aggregates the user's finances for display.
// All amounts are converted to the user's display currency.
type DashboardSummaryResponse struct {
	Currency           string          `json:"currency"`
	TotalExpenses      string          `json:"totalExpenses"`
	TotalIncome        string          `json:"totalIncome"`
	Balance            string          `json:"balance"`
	ExpenseCount       int             `json:"expenseCount"`
	IncomeCount        int             `json:"incomeCount"`
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`
	MonthlyTotals      []MonthlyTotal  `json:"monthlyTotals"`
}
