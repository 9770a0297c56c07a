package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncomeRequest contains data for recording a new income entry
type CreateIncomeRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount      string `json:"amount" validate:"required,positive_amount"`
	Description string `json:"description" validate:"required,min=1,max=255"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
}

// UpdateIncomeRequest contains data for updating an existing income entry
type UpdateIncomeRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount      string `json:"amount" validate:"required,positive_amount"`
	Description string `json:"description" validate:"required,min=1,max=255"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
}

// IncomeResponse represents a stored income row
type IncomeResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListIncomeResponse represents the response for listing income entries
type ListIncomeResponse struct {
	Income []IncomeResponse `json:"income"`
	Total  int              `json:"total"`
}
