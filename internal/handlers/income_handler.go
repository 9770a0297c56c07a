package handlers

import (
	stderrors "errors"
	"net/http"

	"sidequest/internal/dto"
	"sidequest/internal/errors"
	"sidequest/internal/services"

	"github.com/labstack/echo/v4"
)

// IncomeHandler handles income CRUD endpoints
type IncomeHandler struct {
	incomeService services.IncomeServiceInterface
}

// NewIncomeHandler creates a new income handler
func NewIncomeHandler(incomeService services.IncomeServiceInterface) *IncomeHandler {
	return &IncomeHandler{
		incomeService: incomeService,
	}
}

// CreateIncome records a new income entry for the authenticated user
//
// POST /api/v1/income
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	var req dto.CreateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	income, err := h.incomeService.CreateIncome(userID, &req)
	if err != nil {
		if mapped := mapEntryValidationError(c, err); mapped != nil {
			return mapped
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, income)
}

// GetIncome returns a single income entry by ID
//
// GET /api/v1/income/:id
func (h *IncomeHandler) GetIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	incomeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.IncomeInvalidID)
	}

	income, err := h.incomeService.GetIncome(userID, incomeID)
	if err != nil {
		if stderrors.Is(err, services.ErrIncomeNotFound) {
			return SendError(c, errors.IncomeNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, income)
}

// ListIncome returns all income entries for the authenticated user,
// most recent date first
//
// GET /api/v1/income
func (h *IncomeHandler) ListIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	income, err := h.incomeService.ListIncome(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, income)
}

// UpdateIncome replaces the fields of an existing income entry
//
// PUT /api/v1/income/:id
func (h *IncomeHandler) UpdateIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	incomeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.IncomeInvalidID)
	}

	var req dto.UpdateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	income, err := h.incomeService.UpdateIncome(userID, incomeID, &req)
	if err != nil {
		if stderrors.Is(err, services.ErrIncomeNotFound) {
			return SendError(c, errors.IncomeNotFound)
		}
		if mapped := mapEntryValidationError(c, err); mapped != nil {
			return mapped
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, income)
}

// DeleteIncome removes an income entry owned by the authenticated user
//
// DELETE /api/v1/income/:id
func (h *IncomeHandler) DeleteIncome(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	incomeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.IncomeInvalidID)
	}

	if err := h.incomeService.DeleteIncome(userID, incomeID); err != nil {
		if stderrors.Is(err, services.ErrIncomeNotFound) {
			return SendError(c, errors.IncomeNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
