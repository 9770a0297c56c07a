package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sidequest/internal/dto"
	"sidequest/internal/models"
	"sidequest/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidAmount   = errors.New("amount must be a positive decimal number")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
)

// ExpenseService handles expense business logic. Amounts are stored in the
// base currency and converted to the owner's display currency on reads.
type ExpenseService struct {
	expenseRepo     repositories.ExpenseRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	currencyService CurrencyServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	currencyService CurrencyServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo:     expenseRepo,
		userRepo:        userRepo,
		currencyService: currencyService,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateExpense records a new expense and returns the stored row
func (s *ExpenseService) CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, amount, err := parseEntryFields(req.Date, req.Amount)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:      userID,
		Date:        date,
		Amount:      amount,
		Description: req.Description,
		Category:    req.Category,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("expense_created", map[string]string{"category": expense.Category})
	}

	currency, err := s.displayCurrency(userID)
	if err != nil {
		return nil, err
	}

	return s.toExpenseResponse(expense, currency), nil
}

// GetExpense returns a single expense owned by the user
func (s *ExpenseService) GetExpense(userID, expenseID uuid.UUID) (*dto.ExpenseResponse, error) {
	expense, err := s.expenseRepo.GetByID(expenseID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	currency, err := s.displayCurrency(userID)
	if err != nil {
		return nil, err
	}

	return s.toExpenseResponse(expense, currency), nil
}

// ListExpenses returns all of the user's expenses, most recently created first
func (s *ExpenseService) ListExpenses(userID uuid.UUID) (*dto.ListExpensesResponse, error) {
	expenses, err := s.expenseRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	currency, err := s.displayCurrency(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, *s.toExpenseResponse(&expenses[i], currency))
	}

	return &dto.ListExpensesResponse{
		Expenses: responses,
		Total:    len(responses),
	}, nil
}

// UpdateExpense replaces the mutable fields of an existing expense
func (s *ExpenseService) UpdateExpense(userID, expenseID uuid.UUID, req *dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, amount, err := parseEntryFields(req.Date, req.Amount)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		ID:          expenseID,
		UserID:      userID,
		Date:        date,
		Amount:      amount,
		Description: req.Description,
		Category:    req.Category,
	}

	if err := s.expenseRepo.Update(expense); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("expense_updated", nil)
	}

	// Re-read so the response carries the stored timestamps
	return s.GetExpense(userID, expenseID)
}

// DeleteExpense removes an expense owned by the user
func (s *ExpenseService) DeleteExpense(userID, expenseID uuid.UUID) error {
	if err := s.expenseRepo.Delete(expenseID, userID); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("expense_deleted", nil)
	}

	return nil
}

func (s *ExpenseService) displayCurrency(userID uuid.UUID) (string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	return user.Currency, nil
}

func (s *ExpenseService) toExpenseResponse(expense *models.Expense, currency string) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          expense.ID,
		Date:        expense.Date.Format(dateLayout),
		Amount:      s.currencyService.FromBase(expense.Amount, currency).StringFixed(2),
		Currency:    currency,
		Description: expense.Description,
		Category:    expense.Category,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}

// parseEntryFields parses the shared date and amount fields of expense and
// income requests.
func parseEntryFields(dateStr, amountStr string) (time.Time, decimal.Decimal, error) {
	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, decimal.Decimal{}, ErrInvalidDate
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil || !amount.IsPositive() {
		return time.Time{}, decimal.Decimal{}, ErrInvalidAmount
	}

	return date, amount.Round(2), nil
}
