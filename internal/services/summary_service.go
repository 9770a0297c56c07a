package services

import (
	"fmt"
	"log/slog"
	"sort"

	"sidequest/internal/dto"
	"sidequest/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

// SummaryService aggregates a user's finances for the dashboard. Totals are
// computed in the base currency and converted once at the end.
type SummaryService struct {
	expenseRepo     repositories.ExpenseRepositoryInterface
	incomeRepo      repositories.IncomeRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	currencyService CurrencyServiceInterface
	logger          *slog.Logger
}

// NewSummaryService creates a new dashboard summary service
func NewSummaryService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	incomeRepo repositories.IncomeRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	currencyService CurrencyServiceInterface,
	logger *slog.Logger,
) SummaryServiceInterface {
	return &SummaryService{
		expenseRepo:     expenseRepo,
		incomeRepo:      incomeRepo,
		userRepo:        userRepo,
		currencyService: currencyService,
		logger:          logger,
	}
}

// GetDashboardSummary returns totals, balance, per-category and per-month
// breakdowns in the user's display currency.
func (s *SummaryService) GetDashboardSummary(userID uuid.UUID) (*dto.DashboardSummaryResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	expenses, err := s.expenseRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	incomes, err := s.incomeRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load income: %w", err)
	}

	totalExpenses := decimal.Zero
	byCategory := map[string]decimal.Decimal{}
	monthlyExpenses := map[string]decimal.Decimal{}
	for i := range expenses {
		amount := expenses[i].Amount
		totalExpenses = totalExpenses.Add(amount)
		byCategory[expenses[i].Category] = byCategory[expenses[i].Category].Add(amount)

		month := expenses[i].Date.Format(monthLayout)
		monthlyExpenses[month] = monthlyExpenses[month].Add(amount)
	}

	totalIncome := decimal.Zero
	monthlyIncome := map[string]decimal.Decimal{}
	for i := range incomes {
		amount := incomes[i].Amount
		totalIncome = totalIncome.Add(amount)

		month := incomes[i].Date.Format(monthLayout)
		monthlyIncome[month] = monthlyIncome[month].Add(amount)
	}

	currency := user.Currency

	return &dto.DashboardSummaryResponse{
		Currency:           currency,
		TotalExpenses:      s.display(totalExpenses, currency),
		TotalIncome:        s.display(totalIncome, currency),
		Balance:            s.display(totalIncome.Sub(totalExpenses), currency),
		ExpenseCount:       len(expenses),
		IncomeCount:        len(incomes),
		ExpensesByCategory: s.categoryTotals(byCategory, currency),
		MonthlyTotals:      s.monthlyTotals(monthlyExpenses, monthlyIncome, currency),
	}, nil
}

// categoryTotals returns per-category expense totals, largest first.
// Ties break alphabetically so the ordering is stable.
func (s *SummaryService) categoryTotals(byCategory map[string]decimal.Decimal, currency string) []dto.CategoryTotal {
	totals := make([]dto.CategoryTotal, 0, len(byCategory))
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}

	sort.Slice(categories, func(i, j int) bool {
		a, b := byCategory[categories[i]], byCategory[categories[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return categories[i] < categories[j]
	})

	for _, category := range categories {
		totals = append(totals, dto.CategoryTotal{
			Category: category,
			Amount:   s.display(byCategory[category], currency),
		})
	}

	return totals
}

// monthlyTotals merges expense and income months into one ascending series
func (s *SummaryService) monthlyTotals(expenses, income map[string]decimal.Decimal, currency string) []dto.MonthlyTotal {
	months := map[string]bool{}
	for month := range expenses {
		months[month] = true
	}
	for month := range income {
		months[month] = true
	}

	sorted := make([]string, 0, len(months))
	for month := range months {
		sorted = append(sorted, month)
	}
	sort.Strings(sorted)

	totals := make([]dto.MonthlyTotal, 0, len(sorted))
	for _, month := range sorted {
		totals = append(totals, dto.MonthlyTotal{
			Month:    month,
			Expenses: s.display(expenses[month], currency),
			Income:   s.display(income[month], currency),
		})
	}

	return totals
}

func (s *SummaryService) display(amount decimal.Decimal, currency string) string {
	return s.currencyService.FromBase(amount, currency).StringFixed(2)
}
