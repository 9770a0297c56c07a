package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sidequest/internal/config"
	"sidequest/internal/dto"
	"sidequest/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestDevHandler(t *testing.T) {
	suite.Run(t, new(DevHandlerSuite))
}

type DevHandlerSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	sampleDataService *service_mocks.MockSampleDataServiceInterface
	e                 *echo.Echo
	userID            uuid.UUID
}

func (s *DevHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sampleDataService = service_mocks.NewMockSampleDataServiceInterface(s.ctrl)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *DevHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerSuite) newHandler(environment string) *DevHandler {
	cfg := &config.Config{}
	cfg.Server.Environment = environment
	return NewDevHandler(s.sampleDataService, cfg)
}

func (s *DevHandlerSuite) newAuthedContext(body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/dev/sample-data", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *DevHandlerSuite) TestGenerateSampleData() {
	s.Run("generates sample data", func() {
		handler := s.newHandler("development")

		s.sampleDataService.EXPECT().
			GenerateSampleData(s.userID, 3).
			Return(&dto.SampleDataResponse{ExpensesCreated: 30, IncomeCreated: 5}, nil)

		c, rec := s.newAuthedContext(map[string]int{"months": 3})

		s.NoError(handler.GenerateSampleData(c))
		s.Equal(http.StatusOK, rec.Code)

		var response SuccessResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.NotNil(response.Data)
	})

	s.Run("defaults months when omitted", func() {
		handler := s.newHandler("development")

		s.sampleDataService.EXPECT().
			GenerateSampleData(s.userID, 0).
			Return(&dto.SampleDataResponse{ExpensesCreated: 60, IncomeCreated: 10}, nil)

		c, rec := s.newAuthedContext(map[string]int{})

		s.NoError(handler.GenerateSampleData(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("forbidden outside development", func() {
		handler := s.newHandler("production")

		c, rec := s.newAuthedContext(map[string]int{"months": 3})

		s.NoError(handler.GenerateSampleData(c))
		s.Equal(http.StatusForbidden, rec.Code)
	})
}
