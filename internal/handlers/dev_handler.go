package handlers

import (
	"net/http"

	"sidequest/internal/config"
	"sidequest/internal/dto"
	"sidequest/internal/errors"
	"sidequest/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	sampleDataService services.SampleDataServiceInterface
	cfg               *config.Config
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleDataService services.SampleDataServiceInterface, cfg *config.Config) *DevHandler {
	return &DevHandler{
		sampleDataService: sampleDataService,
		cfg:               cfg,
	}
}

// GenerateSampleData seeds fabricated expenses and income for the
// authenticated user so the dashboard has something to show
//
// POST /api/v1/dev/sample-data
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	if !h.cfg.IsDevelopment() {
		return SendError(c, errors.AuthNotResourceOwner,
			errors.WithDetails("Sample data generation is only available in development"))
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthUserNotAuthenticated)
	}

	var req dto.GenerateSampleDataRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.sampleDataService.GenerateSampleData(userID, req.Months)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    result,
		Message: "Sample data generated successfully",
	})
}
