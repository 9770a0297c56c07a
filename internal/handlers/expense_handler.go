package handlers

import (
	stderrors "errors"
	"net/http"

	"sidequest/internal/dto"
	"sidequest/internal/errors"
	"sidequest/internal/services"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense CRUD endpoints
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// CreateExpense records a new expense for the authenticated user
//
// POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.CreateExpense(userID, &req)
	if err != nil {
		if mapped := mapEntryValidationError(c, err); mapped != nil {
			return mapped
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, expense)
}

// GetExpense returns a single expense by ID
//
// GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	expenseID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	expense, err := h.expenseService.GetExpense(userID, expenseID)
	if err != nil {
		if stderrors.Is(err, services.ErrExpenseNotFound) {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, expense)
}

// ListExpenses returns all expenses for the authenticated user,
// newest first
//
// GET /api/v1/expenses
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	expenses, err := h.expenseService.ListExpenses(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, expenses)
}

// UpdateExpense replaces the fields of an existing expense
//
// PUT /api/v1/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	expenseID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, &req)
	if err != nil {
		if stderrors.Is(err, services.ErrExpenseNotFound) {
			return SendError(c, errors.ExpenseNotFound)
		}
		if mapped := mapEntryValidationError(c, err); mapped != nil {
			return mapped
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, expense)
}

// DeleteExpense removes an expense owned by the authenticated user
//
// DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	expenseID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		if stderrors.Is(err, services.ErrExpenseNotFound) {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// mapEntryValidationError maps the shared expense/income field errors to
// error responses. Returns nil when err is not a field validation error.
func mapEntryValidationError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrInvalidAmount):
		return SendError(c, errors.ValidationInvalidAmount)
	case stderrors.Is(err, services.ErrInvalidDate):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("Date must be in YYYY-MM-DD format"))
	}
	return nil
}
