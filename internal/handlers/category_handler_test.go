package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sidequest/internal/dto"
	"sidequest/internal/services"
	"sidequest/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

type CategoryHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	categoryService *service_mocks.MockCategoryServiceInterface
	handler         *CategoryHandler
	e               *echo.Echo
	userID          uuid.UUID
}

func (s *CategoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.categoryService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerSuite) newAuthedContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *CategoryHandlerSuite) TestGetCategories() {
	s.Run("returns grouped categories", func() {
		grouped := &dto.GroupedCategoriesResponse{
			Categories: map[string][]dto.CategoryItem{
				"Essentials": {{ID: "groceries", Icon: "\U0001f6d2", Name: "Groceries"}},
			},
			IsDefault: true,
		}

		s.categoryService.EXPECT().GetCategories(s.userID).Return(grouped, nil)

		c, rec := s.newAuthedContext(http.MethodGet, "/categories", nil)

		s.NoError(s.handler.GetCategories(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.GroupedCategoriesResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.True(response.IsDefault)
		s.Len(response.Categories["Essentials"], 1)
	})

	s.Run("missing user context", func() {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		s.NoError(s.handler.GetCategories(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *CategoryHandlerSuite) TestSaveCategories() {
	s.Run("replaces the category set", func() {
		saved := &dto.GroupedCategoriesResponse{
			Categories: map[string][]dto.CategoryItem{
				"Custom": {{ID: "pets", Icon: "\U0001f436", Name: "Pets"}},
			},
			IsDefault: false,
		}

		s.categoryService.EXPECT().
			SaveCategories(s.userID, gomock.Any()).
			Return(saved, nil)

		c, rec := s.newAuthedContext(http.MethodPut, "/categories", dto.SaveCategoriesRequest{
			Categories: map[string][]dto.CategoryItem{
				"Custom": {{ID: "pets", Icon: "\U0001f436", Name: "Pets"}},
			},
		})

		s.NoError(s.handler.SaveCategories(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.GroupedCategoriesResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.False(response.IsDefault)
	})

	s.Run("empty set rejected", func() {
		s.categoryService.EXPECT().
			SaveCategories(s.userID, gomock.Any()).
			Return(nil, services.ErrEmptyCategorySet)

		c, rec := s.newAuthedContext(http.MethodPut, "/categories", dto.SaveCategoriesRequest{
			Categories: map[string][]dto.CategoryItem{
				"Custom": {{ID: "pets", Icon: "\U0001f436", Name: "Pets"}},
			},
		})

		s.NoError(s.handler.SaveCategories(c))
		s.Equal(http.StatusBadRequest, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("CATEGORY_002", errorResp.Error.Code)
	})
}
