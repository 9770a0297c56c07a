package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateExpenseRequest contains data for recording a new expense
type CreateExpenseRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount      string `json:"amount" validate:"required,positive_amount"`
	Description string `json:"description" validate:"required,min=1,max=255"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
}

// UpdateExpenseRequest contains data for updating an existing expense
type UpdateExpenseRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount      string `json:"amount" validate:"required,positive_amount"`
	Description string `json:"description" validate:"required,min=1,max=255"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
}

// ExpenseResponse represents a stored expense row
type ExpenseResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListExpensesResponse represents the response for listing expenses
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}
