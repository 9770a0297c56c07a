package services

import (
	"log/slog"
	"testing"
	"time"

	"sidequest/internal/models"
	"sidequest/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	expenseRepo *repository_mocks.MockExpenseRepositoryInterface
	incomeRepo  *repository_mocks.MockIncomeRepositoryInterface
	userRepo    *repository_mocks.MockUserRepositoryInterface
	service     SummaryServiceInterface
	user        *models.User
}

func (s *SummaryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.incomeRepo = repository_mocks.NewMockIncomeRepositoryInterface(s.ctrl)
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.service = NewSummaryService(s.expenseRepo, s.incomeRepo, s.userRepo, NewCurrencyService(slog.Default()), slog.Default())
	s.user = &models.User{
		ID:       uuid.New(),
		Email:    "user@example.com",
		Currency: "USD",
	}
}

func (s *SummaryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func (s *SummaryServiceTestSuite) expense(month time.Month, amount, category string) models.Expense {
	return models.Expense{
		ID:          uuid.New(),
		UserID:      s.user.ID,
		Date:        time.Date(2026, month, 10, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString(amount),
		Description: "expense",
		Category:    category,
	}
}

func (s *SummaryServiceTestSuite) income(month time.Month, amount string) models.Income {
	return models.Income{
		ID:          uuid.New(),
		UserID:      s.user.ID,
		Date:        time.Date(2026, month, 5, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString(amount),
		Description: "income",
		Category:    "client-projects",
	}
}

func (s *SummaryServiceTestSuite) TestGetDashboardSummary() {
	expenses := []models.Expense{
		s.expense(time.July, "100.00", "groceries"),
		s.expense(time.July, "50.00", "gas"),
		s.expense(time.August, "200.00", "groceries"),
	}
	incomes := []models.Income{
		s.income(time.July, "1000.00"),
		s.income(time.August, "1500.00"),
	}

	s.userRepo.EXPECT().GetByID(s.user.ID).Return(s.user, nil).Times(1)
	s.expenseRepo.EXPECT().GetByUserID(s.user.ID).Return(expenses, nil).Times(1)
	s.incomeRepo.EXPECT().GetByUserID(s.user.ID).Return(incomes, nil).Times(1)

	result, err := s.service.GetDashboardSummary(s.user.ID)

	s.NoError(err)
	s.Equal("USD", result.Currency)
	s.Equal("350.00", result.TotalExpenses)
	s.Equal("2500.00", result.TotalIncome)
	s.Equal("2150.00", result.Balance)
	s.Equal(3, result.ExpenseCount)
	s.Equal(2, result.IncomeCount)

	// Largest category first
	s.Require().Len(result.ExpensesByCategory, 2)
	s.Equal("groceries", result.ExpensesByCategory[0].Category)
	s.Equal("300.00", result.ExpensesByCategory[0].Amount)
	s.Equal("gas", result.ExpensesByCategory[1].Category)

	// Months ascending, merging both series
	s.Require().Len(result.MonthlyTotals, 2)
	s.Equal("2026-07", result.MonthlyTotals[0].Month)
	s.Equal("150.00", result.MonthlyTotals[0].Expenses)
	s.Equal("1000.00", result.MonthlyTotals[0].Income)
	s.Equal("2026-08", result.MonthlyTotals[1].Month)
}

func (s *SummaryServiceTestSuite) TestGetDashboardSummary_EmptyData() {
	s.userRepo.EXPECT().GetByID(s.user.ID).Return(s.user, nil).Times(1)
	s.expenseRepo.EXPECT().GetByUserID(s.user.ID).Return(nil, nil).Times(1)
	s.incomeRepo.EXPECT().GetByUserID(s.user.ID).Return(nil, nil).Times(1)

	result, err := s.service.GetDashboardSummary(s.user.ID)

	s.NoError(err)
	s.Equal("0.00", result.TotalExpenses)
	s.Equal("0.00", result.TotalIncome)
	s.Equal("0.00", result.Balance)
	s.Empty(result.ExpensesByCategory)
	s.Empty(result.MonthlyTotals)
}

func (s *SummaryServiceTestSuite) TestGetDashboardSummary_ConvertsToDisplayCurrency() {
	s.user.Currency = "EUR"

	expenses := []models.Expense{s.expense(time.August, "100.00", "groceries")}
	incomes := []models.Income{s.income(time.August, "200.00")}

	s.userRepo.EXPECT().GetByID(s.user.ID).Return(s.user, nil).Times(1)
	s.expenseRepo.EXPECT().GetByUserID(s.user.ID).Return(expenses, nil).Times(1)
	s.incomeRepo.EXPECT().GetByUserID(s.user.ID).Return(incomes, nil).Times(1)

	result, err := s.service.GetDashboardSummary(s.user.ID)

	s.NoError(err)
	s.Equal("EUR", result.Currency)
	s.Equal("92.00", result.TotalExpenses)
	s.Equal("184.00", result.TotalIncome)
	s.Equal("92.00", result.Balance)
}

func (s *SummaryServiceTestSuite) TestGetDashboardSummary_MonthWithOnlyIncome() {
	incomes := []models.Income{s.income(time.June, "500.00")}

	s.userRepo.EXPECT().GetByID(s.user.ID).Return(s.user, nil).Times(1)
	s.expenseRepo.EXPECT().GetByUserID(s.user.ID).Return(nil, nil).Times(1)
	s.incomeRepo.EXPECT().GetByUserID(s.user.ID).Return(incomes, nil).Times(1)

	result, err := s.service.GetDashboardSummary(s.user.ID)

	s.NoError(err)
	s.Require().Len(result.MonthlyTotals, 1)
	s.Equal("0.00", result.MonthlyTotals[0].Expenses)
	s.Equal("500.00", result.MonthlyTotals[0].Income)
}
