package repositories

import (
	"errors"
	"fmt"

	"sidequest/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrEmptyCategoryReplace = errors.New("replacement category set cannot be empty")
)

// CategoryRepository handles database operations for user categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{
		db: db,
	}
}

// CountByUserID returns the number of stored categories for a user
func (r *CategoryRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// GetByUserID retrieves all categories for a user ordered by group and name
func (r *CategoryRepository) GetByUserID(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).
		Order("group_name ASC, name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// ReplaceAllForUser atomically replaces the user's full category set.
// Either the new set is fully written or the prior set remains untouched.
func (r *CategoryRepository) ReplaceAllForUser(userID uuid.UUID, categories []models.Category) error {
	if len(categories) == 0 {
		return ErrEmptyCategoryReplace
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.Category{}).Error; err != nil {
			return fmt.Errorf("failed to clear categories: %w", err)
		}

		for i := range categories {
			categories[i].UserID = userID
		}
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to insert categories: %w", err)
		}

		return nil
	})
}
