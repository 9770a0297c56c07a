package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sidequest/internal/dto"
	"sidequest/internal/services"
	"sidequest/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestIncomeHandler(t *testing.T) {
	suite.Run(t, new(IncomeHandlerSuite))
}

type IncomeHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	incomeService *service_mocks.MockIncomeServiceInterface
	handler       *IncomeHandler
	e             *echo.Echo
	userID        uuid.UUID
}

func (s *IncomeHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.incomeService = service_mocks.NewMockIncomeServiceInterface(s.ctrl)
	s.handler = NewIncomeHandler(s.incomeService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *IncomeHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *IncomeHandlerSuite) newAuthedContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *IncomeHandlerSuite) TestCreateIncome() {
	s.Run("creates income", func() {
		incomeID := uuid.New()
		s.incomeService.EXPECT().
			CreateIncome(s.userID, gomock.Any()).
			Return(&dto.IncomeResponse{
				ID:          incomeID,
				Date:        "2026-08-01",
				Amount:      "2500.00",
				Currency:    "USD",
				Description: "Salary",
				Category:    "salary",
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}, nil)

		c, rec := s.newAuthedContext(http.MethodPost, "/income", map[string]string{
			"date":        "2026-08-01",
			"amount":      "2500.00",
			"description": "Salary",
			"category":    "salary",
		})

		s.NoError(s.handler.CreateIncome(c))
		s.Equal(http.StatusCreated, rec.Code)

		var response dto.IncomeResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("2500.00", response.Amount)
	})

	s.Run("invalid date from service", func() {
		s.incomeService.EXPECT().
			CreateIncome(s.userID, gomock.Any()).
			Return(nil, services.ErrInvalidDate)

		c, rec := s.newAuthedContext(http.MethodPost, "/income", map[string]string{
			"date":        "2026-02-31",
			"amount":      "2500.00",
			"description": "Salary",
			"category":    "salary",
		})

		s.NoError(s.handler.CreateIncome(c))
		s.Equal(http.StatusBadRequest, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("VALIDATION_006", errorResp.Error.Code)
	})
}

func (s *IncomeHandlerSuite) TestGetIncome() {
	s.Run("invalid id", func() {
		c, rec := s.newAuthedContext(http.MethodGet, "/income/nope", nil)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		s.NoError(s.handler.GetIncome(c))
		s.Equal(http.StatusBadRequest, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("INCOME_002", errorResp.Error.Code)
	})

	s.Run("not found", func() {
		incomeID := uuid.New()
		s.incomeService.EXPECT().
			GetIncome(s.userID, incomeID).
			Return(nil, services.ErrIncomeNotFound)

		c, rec := s.newAuthedContext(http.MethodGet, "/income/"+incomeID.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(incomeID.String())

		s.NoError(s.handler.GetIncome(c))
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *IncomeHandlerSuite) TestListIncome() {
	s.Run("returns list", func() {
		s.incomeService.EXPECT().
			ListIncome(s.userID).
			Return(&dto.ListIncomeResponse{Income: []dto.IncomeResponse{}, Total: 0}, nil)

		c, rec := s.newAuthedContext(http.MethodGet, "/income", nil)

		s.NoError(s.handler.ListIncome(c))
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *IncomeHandlerSuite) TestDeleteIncome() {
	s.Run("deletes income", func() {
		incomeID := uuid.New()
		s.incomeService.EXPECT().DeleteIncome(s.userID, incomeID).Return(nil)

		c, rec := s.newAuthedContext(http.MethodDelete, "/income/"+incomeID.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(incomeID.String())

		s.NoError(s.handler.DeleteIncome(c))
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
