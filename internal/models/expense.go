package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spend record. Amount is always persisted in the base
// currency; conversion to the owner's display currency happens at read time.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

func (e *Expense) Validate() error {
	if e.UserID == uuid.Nil {
		return errors.New("expense owner is required")
	}

	if e.Date.IsZero() {
		return errors.New("date is required")
	}

	if !e.Amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}

	if strings.TrimSpace(e.Description) == "" {
		return errors.New("description is required")
	}

	if strings.TrimSpace(e.Category) == "" {
		return errors.New("category is required")
	}

	return nil
}

func (e *Expense) TableName() string {
	return "expenses"
}
