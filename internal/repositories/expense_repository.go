package repositories

import (
	"errors"
	"fmt"
	"time"

	"sidequest/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &ExpenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database
func (r *ExpenseRepository) Create(expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// GetByID retrieves an expense scoped to its owning user
func (r *ExpenseRepository) GetByID(id, userID uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return &expense, nil
}

// GetByUserID retrieves all expenses for a user, most recently created first
func (r *ExpenseRepository) GetByUserID(userID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	return expenses, nil
}

// GetByUserIDAndDateRange retrieves expenses within [start, end)
func (r *ExpenseRepository) GetByUserIDAndDateRange(userID uuid.UUID, start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses by date range: %w", err)
	}

	return expenses, nil
}

// Update updates an expense in the database
func (r *ExpenseRepository) Update(expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	result := r.db.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Updates(map[string]interface{}{
			"date":        expense.Date,
			"amount":      expense.Amount,
			"description": expense.Description,
			"category":    expense.Category,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// Delete removes an expense scoped to its owning user
func (r *ExpenseRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Expense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
