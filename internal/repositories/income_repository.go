package repositories

import (
	"errors"
	"fmt"
	"time"

	"sidequest/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrIncomeNotFound = errors.New("income not found")

// IncomeRepository handles database operations for income entries
type IncomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(db *gorm.DB) IncomeRepositoryInterface {
	return &IncomeRepository{
		db: db,
	}
}

// Create creates a new income entry in the database
func (r *IncomeRepository) Create(income *models.Income) error {
	if income == nil {
		return errors.New("income cannot be nil")
	}

	if err := r.db.Create(income).Error; err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}

	return nil
}

// GetByID retrieves an income entry scoped to its owning user
func (r *IncomeRepository) GetByID(id, userID uuid.UUID) (*models.Income, error) {
	var income models.Income
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomeNotFound
		}
		return nil, fmt.Errorf("failed to get income: %w", err)
	}

	return &income, nil
}

// GetByUserID retrieves all income entries for a user ordered by date descending
func (r *IncomeRepository) GetByUserID(userID uuid.UUID) ([]models.Income, error) {
	var entries []models.Income
	if err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get income entries: %w", err)
	}

	return entries, nil
}

// GetByUserIDAndDateRange retrieves income entries within [start, end)
func (r *IncomeRepository) GetByUserIDAndDateRange(userID uuid.UUID, start, end time.Time) ([]models.Income, error) {
	var entries []models.Income
	if err := r.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get income by date range: %w", err)
	}

	return entries, nil
}

// Update updates an income entry in the database
func (r *IncomeRepository) Update(income *models.Income) error {
	if income == nil {
		return errors.New("income cannot be nil")
	}

	result := r.db.Model(&models.Income{}).
		Where("id = ? AND user_id = ?", income.ID, income.UserID).
		Updates(map[string]interface{}{
			"date":        income.Date,
			"amount":      income.Amount,
			"description": income.Description,
			"category":    income.Category,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update income: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIncomeNotFound
	}

	return nil
}

// Delete removes an income entry scoped to its owning user
func (r *IncomeRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Income{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete income: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIncomeNotFound
	}

	return nil
}
