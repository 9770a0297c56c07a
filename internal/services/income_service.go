package services

import (
	"errors"
	"fmt"
	"log/slog"

	"sidequest/internal/dto"
	"sidequest/internal/models"
	"sidequest/internal/repositories"

	"github.com/google/uuid"
)

var ErrIncomeNotFound = errors.New("income entry not found")

// IncomeService mirrors ExpenseService for money coming in
type IncomeService struct {
	incomeRepo      repositories.IncomeRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	currencyService CurrencyServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewIncomeService creates a new income service
func NewIncomeService(
	incomeRepo repositories.IncomeRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	currencyService CurrencyServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) IncomeServiceInterface {
	return &IncomeService{
		incomeRepo:      incomeRepo,
		userRepo:        userRepo,
		currencyService: currencyService,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateIncome records a new income entry and returns the stored row
func (s *IncomeService) CreateIncome(userID uuid.UUID, req *dto.CreateIncomeRequest) (*dto.IncomeResponse, error) {
	date, amount, err := parseEntryFields(req.Date, req.Amount)
	if err != nil {
		return nil, err
	}

	income := &models.Income{
		UserID:      userID,
		Date:        date,
		Amount:      amount,
		Description: req.Description,
		Category:    req.Category,
	}

	if err := s.incomeRepo.Create(income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("income_created", map[string]string{"category": income.Category})
	}

	currency, err := s.displayCurrency(userID)
	if err != nil {
		return nil, err
	}

	return s.toIncomeResponse(income, currency), nil
}

// GetIncome returns a single income entry owned by the user
func (s *IncomeService) GetIncome(userID, incomeID uuid.UUID) (*dto.IncomeResponse, error) {
	income, err := s.incomeRepo.GetByID(incomeID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrIncomeNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to get income: %w", err)
	}

	currency, err := s.displayCurrency(userID)
	if err != nil {
		return nil, err
	}

	return s.toIncomeResponse(income, currency), nil
}

// ListIncome returns all of the user's income entries, newest date first
func (s *IncomeService) ListIncome(userID uuid.UUID) (*dto.ListIncomeResponse, error) {
	entries, err := s.incomeRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}

	currency, err := s.displayCurrency(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.IncomeResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *s.toIncomeResponse(&entries[i], currency))
	}

	return &dto.ListIncomeResponse{
		Income: responses,
		Total:  len(responses),
	}, nil
}

// UpdateIncome replaces the mutable fields of an existing income entry
func (s *IncomeService) UpdateIncome(userID, incomeID uuid.UUID, req *dto.UpdateIncomeRequest) (*dto.IncomeResponse, error) {
	date, amount, err := parseEntryFields(req.Date, req.Amount)
	if err != nil {
		return nil, err
	}

	income := &models.Income{
		ID:          incomeID,
		UserID:      userID,
		Date:        date,
		Amount:      amount,
		Description: req.Description,
		Category:    req.Category,
	}

	if err := s.incomeRepo.Update(income); err != nil {
		if errors.Is(err, repositories.ErrIncomeNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("income_updated", nil)
	}

	// Re-read so the response carries the stored timestamps
	return s.GetIncome(userID, incomeID)
}

// DeleteIncome removes an income entry owned by the user
func (s *IncomeService) DeleteIncome(userID, incomeID uuid.UUID) error {
	if err := s.incomeRepo.Delete(incomeID, userID); err != nil {
		if errors.Is(err, repositories.ErrIncomeNotFound) {
			return ErrIncomeNotFound
		}
		return fmt.Errorf("failed to delete income: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("income_deleted", nil)
	}

	return nil
}

func (s *IncomeService) displayCurrency(userID uuid.UUID) (string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	return user.Currency, nil
}

func (s *IncomeService) toIncomeResponse(income *models.Income, currency string) *dto.IncomeResponse {
	return &dto.IncomeResponse{
		ID:          income.ID,
		Date:        income.Date.Format(dateLayout),
		Amount:      s.currencyService.FromBase(income.Amount, currency).StringFixed(2),
		Currency:    currency,
		Description: income.Description,
		Category:    income.Category,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
}
