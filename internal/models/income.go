package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income mirrors Expense for money coming in. Kept as its own table ("income",
// singular) to match the external schema contract.
type Income struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (i *Income) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

func (i *Income) Validate() error {
	if i.UserID == uuid.Nil {
		return errors.New("income owner is required")
	}

	if i.Date.IsZero() {
		return errors.New("date is required")
	}

	if !i.Amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}

	if strings.TrimSpace(i.Description) == "" {
		return errors.New("description is required")
	}

	if strings.TrimSpace(i.Category) == "" {
		return errors.New("category is required")
	}

	return nil
}

func (i *Income) TableName() string {
	return "income"
}
