package services

import (
	"log/slog"
	"testing"
	"time"

	"sidequest/internal/dto"
	"sidequest/internal/models"
	"sidequest/internal/repositories"
	"sidequest/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	expenseRepo *repository_mocks.MockExpenseRepositoryInterface
	userRepo    *repository_mocks.MockUserRepositoryInterface
	service     ExpenseServiceInterface
	user        *models.User
}

func (s *ExpenseServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.service = NewExpenseService(s.expenseRepo, s.userRepo, NewCurrencyService(slog.Default()), nil, slog.Default())
	s.user = &models.User{
		ID:       uuid.New(),
		Email:    "user@example.com",
		Currency: "USD",
	}
}

func (s *ExpenseServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExpenseServiceSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

func (s *ExpenseServiceTestSuite) TestCreateExpense() {
	req := &dto.CreateExpenseRequest{
		Date:        "2026-08-15",
		Amount:      "42.50",
		Description: "Team lunch",
		Category:    "business-travel-meals",
	}

	s.expenseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(expense *models.Expense) error {
		s.Equal(s.user.ID, expense.UserID)
		s.Equal("42.5", expense.Amount.String())
		s.Equal(2026, expense.Date.Year())
		s.Equal(time.August, expense.Date.Month())
		expense.ID = uuid.New()
		return nil
	}).Times(1)
	s.userRepo.EXPECT().GetByID(s.user.ID).Return(s.user, nil).Times(1)

	result, err := s.service.CreateExpense(s.user.ID, req)

	s.NoError(err)
	s.Equal("2026-08-15", result.Date)
	s.Equal("42.50", result.Amount)
	s.Equal("USD", result.Currency)
	s.Equal("Team lunch", result.Description)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_ConvertsDisplayAmount() {
	s.user.Currency = "EUR"

	req := &dto.CreateExpenseRequest{
		Date:        "2026-08-15",
		Amount:      "100.00",
		Description: "Software license",
		Category:    "office-supplies-expenses",
	}

	s.expenseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(expense *models.Expense) error {
		// Stored amount stays in the base currency
		s.Equal("100", expense.Amount.String())
		return nil
	}).Times(1)
	s.userRepo.EXPECT().GetByID(s.user.ID).Return(s.user, nil).Times(1)

	result, err := s.service.CreateExpense(s.user.ID, req)

	s.NoError(err)
	s.Equal("92.00", result.Amount)
	s.Equal("EUR", result.Currency)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_InvalidDate() {
	req := &dto.CreateExpenseRequest{
		Date:        "15/08/2026",
		Amount:      "10.00",
		Description: "Lunch",
		Category:    "groceries",
	}

	result, err := s.service.CreateExpense(s.user.ID, req)
	s.ErrorIs(err, ErrInvalidDate)
	s.Nil(result)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_InvalidAmount() {
	for _, amount := range []string{"abc", "-5", "0"} {
		req := &dto.CreateExpenseRequest{
			Date:        "2026-08-15",
			Amount:      amount,
			Description: "Lunch",
			Category:    "groceries",
		}

		result, err := s.service.CreateExpense(s.user.ID, req)
		s.ErrorIs(err, ErrInvalidAmount)
		s.Nil(result)
	}
}

func (s *ExpenseServiceTestSuite) TestGetExpense_NotFound() {
	expenseID := uuid.New()
	s.expenseRepo.EXPECT().GetByID(expenseID, s.user.ID).Return(nil, repositories.ErrExpenseNotFound).Times(1)

	result, err := s.service.GetExpense(s.user.ID, expenseID)
	s.ErrorIs(err, ErrExpenseNotFound)
	s.Nil(result)
}

func (s *ExpenseServiceTestSuite) TestListExpenses() {
	expenses := []models.Expense{
		{
			ID:          uuid.New(),
			UserID:      s.user.ID,
			Date:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.RequireFromString("25.00"),
			Description: "Groceries",
			Category:    "groceries",
		},
		{
			ID:          uuid.New(),
			UserID:      s.user.ID,
			Date:        time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.RequireFromString("1200.00"),
			Description: "Office rent",
			Category:    "rent",
		},
	}

	s.expenseRepo.EXPECT().GetByUserID(s.user.ID).Return(expenses, nil).Times(1)
	s.userRepo.EXPECT().GetByID(s.user.ID).Return(s.user, nil).Times(1)

	result, err := s.service.ListExpenses(s.user.ID)

	s.NoError(err)
	s.Equal(2, result.Total)
	s.Equal("25.00", result.Expenses[0].Amount)
	s.Equal("1200.00", result.Expenses[1].Amount)
}

func (s *ExpenseServiceTestSuite) TestUpdateExpense() {
	expenseID := uuid.New()
	req := &dto.UpdateExpenseRequest{
		Date:        "2026-08-20",
		Amount:      "55.00",
		Description: "Updated lunch",
		Category:    "business-travel-meals",
	}

	s.expenseRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(expense *models.Expense) error {
		s.Equal(expenseID, expense.ID)
		s.Equal(s.user.ID, expense.UserID)
		s.Equal("55", expense.Amount.String())
		return nil
	}).Times(1)
	s.expenseRepo.EXPECT().GetByID(expenseID, s.user.ID).Return(&models.Expense{
		ID:          expenseID,
		UserID:      s.user.ID,
		Date:        time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString("55.00"),
		Description: "Updated lunch",
		Category:    "business-travel-meals",
	}, nil).Times(1)
	s.userRepo.EXPECT().GetByID(s.user.ID).Return(s.user, nil).Times(1)

	result, err := s.service.UpdateExpense(s.user.ID, expenseID, req)

	s.NoError(err)
	s.Equal("55.00", result.Amount)
	s.Equal("2026-08-20", result.Date)
}

func (s *ExpenseServiceTestSuite) TestUpdateExpense_NotFound() {
	req := &dto.UpdateExpenseRequest{
		Date:        "2026-08-20",
		Amount:      "55.00",
		Description: "Updated lunch",
		Category:    "business-travel-meals",
	}

	s.expenseRepo.EXPECT().Update(gomock.Any()).Return(repositories.ErrExpenseNotFound).Times(1)

	result, err := s.service.UpdateExpense(s.user.ID, uuid.New(), req)
	s.ErrorIs(err, ErrExpenseNotFound)
	s.Nil(result)
}

func (s *ExpenseServiceTestSuite) TestDeleteExpense() {
	expenseID := uuid.New()
	s.expenseRepo.EXPECT().Delete(expenseID, s.user.ID).Return(nil).Times(1)

	s.NoError(s.service.DeleteExpense(s.user.ID, expenseID))
}

func (s *ExpenseServiceTestSuite) TestDeleteExpense_NotFound() {
	expenseID := uuid.New()
	s.expenseRepo.EXPECT().Delete(expenseID, s.user.ID).Return(repositories.ErrExpenseNotFound).Times(1)

	s.ErrorIs(s.service.DeleteExpense(s.user.ID, expenseID), ErrExpenseNotFound)
}
