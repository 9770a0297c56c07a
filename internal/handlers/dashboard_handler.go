package handlers

import (
	stderrors "errors"
	"net/http"

	"sidequest/internal/errors"
	"sidequest/internal/repositories"
	"sidequest/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the dashboard summary endpoint
type DashboardHandler struct {
	summaryService services.SummaryServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(summaryService services.SummaryServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		summaryService: summaryService,
	}
}

// GetSummary aggregates the user's expenses and income into dashboard totals,
// all converted to the user's display currency
//
// GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	summary, err := h.summaryService.GetDashboardSummary(userID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrUserNotFound) {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
