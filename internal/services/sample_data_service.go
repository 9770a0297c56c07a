package services

import (
	"fmt"
	"log/slog"
	"time"

	"sidequest/internal/dto"
	"sidequest/internal/models"
	"sidequest/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultSampleMonths = 6
	maxSampleMonths     = 24
	minExpensesPerMonth = 8
	maxExpensesPerMonth = 15
	minIncomePerMonth   = 1
	maxIncomePerMonth   = 3
	incomeCategoryGroup = "Income"
	fallbackExpenseSlug = "uncategorized"
	fallbackIncomeSlug  = "other-income"
)

// SampleDataService seeds realistic demo expenses and income for a user,
// drawn from the user's own category set.
type SampleDataService struct {
	expenseRepo     repositories.ExpenseRepositoryInterface
	incomeRepo      repositories.IncomeRepositoryInterface
	categoryService CategoryServiceInterface
	faker           *gofakeit.Faker
	logger          *slog.Logger
}

// NewSampleDataService creates a new sample data service
func NewSampleDataService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	incomeRepo repositories.IncomeRepositoryInterface,
	categoryService CategoryServiceInterface,
	logger *slog.Logger,
) SampleDataServiceInterface {
	return &SampleDataService{
		expenseRepo:     expenseRepo,
		incomeRepo:      incomeRepo,
		categoryService: categoryService,
		faker:           gofakeit.New(0),
		logger:          logger,
	}
}

// GenerateSampleData creates demo history for the given number of trailing
// months, spread over the user's categories.
func (s *SampleDataService) GenerateSampleData(userID uuid.UUID, months int) (*dto.SampleDataResponse, error) {
	if months <= 0 {
		months = defaultSampleMonths
	}
	if months > maxSampleMonths {
		months = maxSampleMonths
	}

	expenseSlugs, incomeSlugs, err := s.categorySlugs(userID)
	if err != nil {
		return nil, err
	}

	response := &dto.SampleDataResponse{}
	now := time.Now().UTC()

	for monthOffset := 0; monthOffset < months; monthOffset++ {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -monthOffset, 0)

		expenseCount := s.faker.Number(minExpensesPerMonth, maxExpensesPerMonth)
		for i := 0; i < expenseCount; i++ {
			expense := &models.Expense{
				UserID:      userID,
				Date:        s.randomDayIn(monthStart, now),
				Amount:      decimal.NewFromFloat(s.faker.Price(5, 400)).Round(2),
				Description: s.expenseDescription(),
				Category:    s.pick(expenseSlugs),
			}
			if err := s.expenseRepo.Create(expense); err != nil {
				return nil, fmt.Errorf("failed to create sample expense: %w", err)
			}
			response.ExpensesCreated++
		}

		incomeCount := s.faker.Number(minIncomePerMonth, maxIncomePerMonth)
		for i := 0; i < incomeCount; i++ {
			income := &models.Income{
				UserID:      userID,
				Date:        s.randomDayIn(monthStart, now),
				Amount:      decimal.NewFromFloat(s.faker.Price(500, 6000)).Round(2),
				Description: s.incomeDescription(),
				Category:    s.pick(incomeSlugs),
			}
			if err := s.incomeRepo.Create(income); err != nil {
				return nil, fmt.Errorf("failed to create sample income: %w", err)
			}
			response.IncomeCreated++
		}
	}

	s.logger.Info("sample data generated",
		"user_id", userID,
		"months", months,
		"expenses", response.ExpensesCreated,
		"income", response.IncomeCreated)

	return response, nil
}

// categorySlugs splits the user's category set into expense and income slugs
func (s *SampleDataService) categorySlugs(userID uuid.UUID) ([]string, []string, error) {
	grouped, err := s.categoryService.GetCategories(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load categories: %w", err)
	}

	var expenseSlugs, incomeSlugs []string
	for groupName, items := range grouped.Categories {
		for _, item := range items {
			if groupName == incomeCategoryGroup {
				incomeSlugs = append(incomeSlugs, item.ID)
			} else {
				expenseSlugs = append(expenseSlugs, item.ID)
			}
		}
	}

	if len(expenseSlugs) == 0 {
		expenseSlugs = []string{fallbackExpenseSlug}
	}
	if len(incomeSlugs) == 0 {
		incomeSlugs = []string{fallbackIncomeSlug}
	}

	return expenseSlugs, incomeSlugs, nil
}

// randomDayIn picks a day within the month, never in the future
func (s *SampleDataService) randomDayIn(monthStart, now time.Time) time.Time {
	lastDay := monthStart.AddDate(0, 1, -1)
	if lastDay.After(now) {
		lastDay = now
	}

	days := int(lastDay.Sub(monthStart).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	return monthStart.AddDate(0, 0, s.faker.Number(0, days-1))
}

func (s *SampleDataService) pick(slugs []string) string {
	return slugs[s.faker.Number(0, len(slugs)-1)]
}

func (s *SampleDataService) expenseDescription() string {
	return s.faker.Company()
}

func (s *SampleDataService) incomeDescription() string {
	return fmt.Sprintf("Payment from %s", s.faker.Company())
}
