package handlers

import (
	stderrors "errors"
	"net/http"

	"sidequest/internal/dto"
	"sidequest/internal/errors"
	"sidequest/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles grouped category endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// GetCategories returns the user's grouped categories, falling back to the
// built-in defaults when the user has never saved a set
//
// GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	categories, err := h.categoryService.GetCategories(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}

// SaveCategories atomically replaces the user's full category set
//
// PUT /api/v1/categories
func (h *CategoryHandler) SaveCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	var req dto.SaveCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	categories, err := h.categoryService.SaveCategories(userID, &req)
	if err != nil {
		if stderrors.Is(err, services.ErrEmptyCategorySet) {
			return SendError(c, errors.CategoryEmptySet)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}
