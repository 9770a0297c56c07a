package services

import (
	"errors"
	"log/slog"
	"testing"

	"sidequest/internal/dto"
	"sidequest/internal/models"
	"sidequest/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service      CategoryServiceInterface
	userID       uuid.UUID
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.service = NewCategoryService(s.categoryRepo, slog.Default())
	s.userID = uuid.New()
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestGetCategories_DefaultsWhenNoneStored() {
	s.categoryRepo.EXPECT().CountByUserID(s.userID).Return(int64(0), nil).Times(1)

	result, err := s.service.GetCategories(s.userID)

	s.NoError(err)
	s.True(result.IsDefault)
	s.Equal(models.DefaultCategories().Count(), countItems(result.Categories))
	s.Contains(result.Categories, "Food & Dining")
	s.Contains(result.Categories, "Income")
}

func (s *CategoryServiceTestSuite) TestGetCategories_DefaultsNeverPersisted() {
	// Only a count is expected; no writes may happen on a default read
	s.categoryRepo.EXPECT().CountByUserID(s.userID).Return(int64(0), nil).Times(1)

	_, err := s.service.GetCategories(s.userID)
	s.NoError(err)
}

func (s *CategoryServiceTestSuite) TestGetCategories_StoredSet() {
	stored := []models.Category{
		{Slug: "groceries", GroupName: "Essentials", Icon: "🍎", Name: "Groceries"},
		{Slug: "rent", GroupName: "Essentials", Icon: "🏢", Name: "Rent"},
		{Slug: "consulting", GroupName: "Income", Icon: "🎯", Name: "Consulting"},
	}

	s.categoryRepo.EXPECT().CountByUserID(s.userID).Return(int64(3), nil).Times(1)
	s.categoryRepo.EXPECT().GetByUserID(s.userID).Return(stored, nil).Times(1)

	result, err := s.service.GetCategories(s.userID)

	s.NoError(err)
	s.False(result.IsDefault)
	s.Len(result.Categories["Essentials"], 2)
	s.Len(result.Categories["Income"], 1)
	s.Equal("groceries", result.Categories["Essentials"][0].ID)
}

func (s *CategoryServiceTestSuite) TestSaveCategories() {
	req := &dto.SaveCategoriesRequest{
		Categories: map[string][]dto.CategoryItem{
			"Essentials": {
				{ID: "groceries", Icon: "🍎", Name: "Groceries"},
				{ID: "rent", Icon: "🏢", Name: "Rent"},
			},
		},
	}

	s.categoryRepo.EXPECT().ReplaceAllForUser(s.userID, gomock.Any()).DoAndReturn(
		func(userID uuid.UUID, categories []models.Category) error {
			s.Len(categories, 2)
			for _, category := range categories {
				s.Equal("Essentials", category.GroupName)
			}
			return nil
		}).Times(1)

	result, err := s.service.SaveCategories(s.userID, req)

	s.NoError(err)
	s.False(result.IsDefault)
	s.Equal(req.Categories, result.Categories)
}

func (s *CategoryServiceTestSuite) TestSaveCategories_EmptySetRejected() {
	req := &dto.SaveCategoriesRequest{
		Categories: map[string][]dto.CategoryItem{
			"Essentials": {},
		},
	}

	result, err := s.service.SaveCategories(s.userID, req)
	s.ErrorIs(err, ErrEmptyCategorySet)
	s.Nil(result)
}

func (s *CategoryServiceTestSuite) TestSaveCategories_RepositoryFailure() {
	req := &dto.SaveCategoriesRequest{
		Categories: map[string][]dto.CategoryItem{
			"Essentials": {{ID: "groceries", Icon: "🍎", Name: "Groceries"}},
		},
	}

	s.categoryRepo.EXPECT().ReplaceAllForUser(s.userID, gomock.Any()).Return(errors.New("db down")).Times(1)

	result, err := s.service.SaveCategories(s.userID, req)
	s.Error(err)
	s.Nil(result)
}

func countItems(grouped map[string][]dto.CategoryItem) int {
	total := 0
	for _, items := range grouped {
		total += len(items)
	}
	return total
}
