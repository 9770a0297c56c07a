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

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerSuite))
}

type UserHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	userService     *service_mocks.MockUserServiceInterface
	currencyService *service_mocks.MockCurrencyServiceInterface
	handler         *UserHandler
	e               *echo.Echo
	userID          uuid.UUID
}

func (s *UserHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userService = service_mocks.NewMockUserServiceInterface(s.ctrl)
	s.currencyService = service_mocks.NewMockCurrencyServiceInterface(s.ctrl)
	s.handler = NewUserHandler(s.userService, s.currencyService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *UserHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UserHandlerSuite) newAuthedContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *UserHandlerSuite) profile() *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		ID:          s.userID.String(),
		Email:       "test@example.com",
		DisplayName: "Test User",
		Currency:    "USD",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func (s *UserHandlerSuite) TestGetProfile() {
	s.Run("returns profile", func() {
		s.userService.EXPECT().GetProfile(s.userID).Return(s.profile(), nil)

		c, rec := s.newAuthedContext(http.MethodGet, "/me", nil)

		s.NoError(s.handler.GetProfile(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.UserProfileResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("test@example.com", response.Email)
	})

	s.Run("missing user context", func() {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		s.NoError(s.handler.GetProfile(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("profile not found", func() {
		s.userService.EXPECT().GetProfile(s.userID).Return(nil, services.ErrProfileNotFound)

		c, rec := s.newAuthedContext(http.MethodGet, "/me", nil)

		s.NoError(s.handler.GetProfile(c))
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *UserHandlerSuite) TestUpdateProfile() {
	s.Run("updates display name", func() {
		updated := s.profile()
		updated.DisplayName = "Renamed"

		s.userService.EXPECT().
			UpdateProfile(s.userID, gomock.Any()).
			Return(updated, nil)

		c, rec := s.newAuthedContext(http.MethodPut, "/me", map[string]string{
			"displayName": "Renamed",
		})

		s.NoError(s.handler.UpdateProfile(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.UserProfileResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("Renamed", response.DisplayName)
	})

	s.Run("no fields to update", func() {
		s.userService.EXPECT().
			UpdateProfile(s.userID, gomock.Any()).
			Return(nil, services.ErrNoProfileChanges)

		c, rec := s.newAuthedContext(http.MethodPut, "/me", map[string]string{})

		s.NoError(s.handler.UpdateProfile(c))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unsupported currency names the supported set", func() {
		s.userService.EXPECT().
			UpdateProfile(s.userID, gomock.Any()).
			Return(nil, services.ErrUnsupportedCurrency)
		s.currencyService.EXPECT().
			SupportedCurrencies().
			Return([]string{"EUR", "GBP", "JPY", "PLN", "USD"})

		c, rec := s.newAuthedContext(http.MethodPut, "/me", map[string]string{
			"currency": "EUR",
		})

		s.NoError(s.handler.UpdateProfile(c))
		s.Equal(http.StatusBadRequest, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("VALIDATION_007", errorResp.Error.Code)
		s.Contains(errorResp.Error.Details[0], "EUR")
	})
}

func (s *UserHandlerSuite) TestUpdateCurrency() {
	s.Run("updates currency", func() {
		updated := s.profile()
		updated.Currency = "PLN"

		s.userService.EXPECT().
			UpdateCurrency(s.userID, "PLN").
			Return(updated, nil)

		c, rec := s.newAuthedContext(http.MethodPut, "/me/currency", map[string]string{
			"currency": "PLN",
		})

		s.NoError(s.handler.UpdateCurrency(c))
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *UserHandlerSuite) TestChangePassword() {
	s.Run("changes password", func() {
		s.userService.EXPECT().
			ChangePassword(s.userID, "oldpass123", "newpass456").
			Return(nil)

		c, rec := s.newAuthedContext(http.MethodPut, "/me/password", map[string]string{
			"currentPassword": "oldpass123",
			"newPassword":     "newpass456",
		})

		s.NoError(s.handler.ChangePassword(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("wrong current password", func() {
		s.userService.EXPECT().
			ChangePassword(s.userID, gomock.Any(), gomock.Any()).
			Return(services.ErrCurrentPasswordWrong)

		c, rec := s.newAuthedContext(http.MethodPut, "/me/password", map[string]string{
			"currentPassword": "wrongpass1",
			"newPassword":     "newpass456",
		})

		s.NoError(s.handler.ChangePassword(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("same password rejected", func() {
		s.userService.EXPECT().
			ChangePassword(s.userID, gomock.Any(), gomock.Any()).
			Return(services.ErrSamePassword)

		c, rec := s.newAuthedContext(http.MethodPut, "/me/password", map[string]string{
			"currentPassword": "samepass123",
			"newPassword":     "samepass123",
		})

		s.NoError(s.handler.ChangePassword(c))
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
