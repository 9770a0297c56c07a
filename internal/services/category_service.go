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

var ErrEmptyCategorySet = errors.New("category set cannot be empty")

// CategoryService serves the user's grouped category set. Users without a
// stored set get the built-in defaults; nothing is persisted until they
// save a set of their own.
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *slog.Logger) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// GetCategories returns the user's category set grouped by group name,
// falling back to the defaults when the user has stored none.
func (s *CategoryService) GetCategories(userID uuid.UUID) (*dto.GroupedCategoriesResponse, error) {
	count, err := s.categoryRepo.CountByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	if count == 0 {
		return &dto.GroupedCategoriesResponse{
			Categories: toGroupedDTO(models.DefaultCategories()),
			IsDefault:  true,
		}, nil
	}

	rows, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	grouped := make(map[string][]dto.CategoryItem)
	for _, row := range rows {
		grouped[row.GroupName] = append(grouped[row.GroupName], dto.CategoryItem{
			ID:   row.Slug,
			Icon: row.Icon,
			Name: row.Name,
		})
	}

	return &dto.GroupedCategoriesResponse{
		Categories: grouped,
		IsDefault:  false,
	}, nil
}

// SaveCategories atomically replaces the user's full category set
func (s *CategoryService) SaveCategories(userID uuid.UUID, req *dto.SaveCategoriesRequest) (*dto.GroupedCategoriesResponse, error) {
	var rows []models.Category
	for groupName, items := range req.Categories {
		for _, item := range items {
			rows = append(rows, models.Category{
				Slug:      item.ID,
				GroupName: groupName,
				Icon:      item.Icon,
				Name:      item.Name,
			})
		}
	}

	if len(rows) == 0 {
		return nil, ErrEmptyCategorySet
	}

	if err := s.categoryRepo.ReplaceAllForUser(userID, rows); err != nil {
		if errors.Is(err, repositories.ErrEmptyCategoryReplace) {
			return nil, ErrEmptyCategorySet
		}
		return nil, fmt.Errorf("failed to save categories: %w", err)
	}

	s.logger.Info("category set replaced", "user_id", userID, "count", len(rows))

	return &dto.GroupedCategoriesResponse{
		Categories: req.Categories,
		IsDefault:  false,
	}, nil
}

func toGroupedDTO(grouped models.GroupedCategories) map[string][]dto.CategoryItem {
	out := make(map[string][]dto.CategoryItem, len(grouped))
	for groupName, items := range grouped {
		converted := make([]dto.CategoryItem, 0, len(items))
		for _, item := range items {
			converted = append(converted, dto.CategoryItem{
				ID:   item.ID,
				Icon: item.Icon,
				Name: item.Name,
			})
		}
		out[groupName] = converted
	}
	return out
}
