package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"sidequest/internal/dto"
	"sidequest/internal/errors"
	"sidequest/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler handles profile endpoints for the authenticated user
type UserHandler struct {
	userService     services.UserServiceInterface
	currencyService services.CurrencyServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userService services.UserServiceInterface,
	currencyService services.CurrencyServiceInterface,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		currencyService: currencyService,
	}
}

// GetProfile returns the authenticated user's profile
//
// GET /api/v1/me
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		if stderrors.Is(err, services.ErrProfileNotFound) {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile updates display name and/or display currency
//
// PUT /api/v1/me
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	profile, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrProfileNotFound):
			return SendError(c, errors.UserNotFound)
		case stderrors.Is(err, services.ErrNoProfileChanges):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("No fields to update"))
		case stderrors.Is(err, services.ErrUnsupportedCurrency):
			return h.sendUnsupportedCurrency(c)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateCurrency changes the user's display currency
//
// PUT /api/v1/me/currency
func (h *UserHandler) UpdateCurrency(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	var req dto.UpdateCurrencyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	profile, err := h.userService.UpdateCurrency(userID, req.Currency)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrProfileNotFound):
			return SendError(c, errors.UserNotFound)
		case stderrors.Is(err, services.ErrUnsupportedCurrency):
			return h.sendUnsupportedCurrency(c)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// ChangePassword replaces the user's password after verifying the current one
//
// PUT /api/v1/me/password
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.userService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case stderrors.Is(err, services.ErrProfileNotFound):
			return SendError(c, errors.UserNotFound)
		case stderrors.Is(err, services.ErrCurrentPasswordWrong):
			return SendError(c, errors.AuthInvalidCredentials, errors.WithDetails("Current password is incorrect"))
		case stderrors.Is(err, services.ErrSamePassword):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("New password must differ from the current one"))
		case isPasswordPolicyError(err):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Password changed successfully",
	})
}

func (h *UserHandler) sendUnsupportedCurrency(c echo.Context) error {
	supported := strings.Join(h.currencyService.SupportedCurrencies(), ", ")
	return SendError(c, errors.ValidationInvalidCurrency,
		errors.WithDetails(fmt.Sprintf("Supported currencies: %s", supported)))
}
