package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"test-manager-backend/internal/api/handlers"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/mocks"
	"test-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ComponentHandlerTestSuite defines the test suite for ComponentHandler
type ComponentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockComponentServiceInterface
	handler     *handlers.ComponentHandler
	router      *gin.Engine
}

func (suite *ComponentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockComponentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewComponentHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.GET("/components", suite.handler.ListComponents)
	suite.router.POST("/components", suite.handler.CreateComponent)
	suite.router.GET("/components/:id", suite.handler.GetComponent)
	suite.router.PUT("/components/:id", suite.handler.UpdateComponent)
	suite.router.DELETE("/components/:id", suite.handler.DeleteComponent)
	suite.router.GET("/projects/:id/components", suite.handler.GetComponentsByProject)
}

func (suite *ComponentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ComponentHandlerTestSuite) serve(method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestCreateComponentMissingProject maps a missing project to 404
func (suite *ComponentHandlerTestSuite) TestCreateComponentMissingProject() {
	suite.mockService.EXPECT().
		Create(&service.ComponentRequest{ProjectID: 999, Name: "Checkout"}).
		Return(nil, apperrors.ErrProjectNotFound)

	w := suite.serve(http.MethodPost, "/components", `{"project_id":999,"name":"Checkout"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"project not found"}`, w.Body.String())
}

// TestCreateComponent returns 201 with the new component
func (suite *ComponentHandlerTestSuite) TestCreateComponent() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(&service.ComponentResponse{ID: 4, ProjectID: 1, Name: "Checkout"}, nil)

	w := suite.serve(http.MethodPost, "/components", `{"project_id":1,"name":"Checkout"}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"id":4`)
}

// TestGetComponentsByProject covers the nested listing route
func (suite *ComponentHandlerTestSuite) TestGetComponentsByProject() {
	suite.T().Run("Listed", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByProjectID(int64(1)).
			Return([]service.ComponentResponse{{ID: 1, ProjectID: 1}, {ID: 2, ProjectID: 1}}, nil)

		w := suite.serve(http.MethodGet, "/projects/1/components", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Project missing", func(t *testing.T) {
		suite.mockService.EXPECT().GetByProjectID(int64(9)).Return(nil, apperrors.ErrProjectNotFound)

		w := suite.serve(http.MethodGet, "/projects/9/components", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	suite.T().Run("Invalid project ID", func(t *testing.T) {
		w := suite.serve(http.MethodGet, "/projects/nine/components", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid project ID")
	})
}

// TestDeleteComponent covers the dependents guard
func (suite *ComponentHandlerTestSuite) TestDeleteComponent() {
	suite.mockService.EXPECT().Delete(int64(2)).Return(apperrors.ErrComponentHasTestCases)
	w := suite.serve(http.MethodDelete, "/components/2", "")
	suite.Equal(http.StatusConflict, w.Code)

	suite.mockService.EXPECT().Delete(int64(2)).Return(nil)
	w = suite.serve(http.MethodDelete, "/components/2", "")
	suite.Equal(http.StatusNoContent, w.Code)
}

// TestUpdateComponentConflict maps a duplicate name to 409
func (suite *ComponentHandlerTestSuite) TestUpdateComponentConflict() {
	suite.mockService.EXPECT().Update(int64(2), gomock.Any()).Return(nil, apperrors.ErrComponentExists)

	w := suite.serve(http.MethodPut, "/components/2", `{"project_id":1,"name":"checkout"}`)

	suite.Equal(http.StatusConflict, w.Code)
}

// TestGetComponentZeroID passes range checking to the service
func (suite *ComponentHandlerTestSuite) TestGetComponentZeroID() {
	suite.mockService.EXPECT().
		GetByID(int64(0)).
		Return(nil, apperrors.NewValidationError("id", "must be a positive integer"))

	w := suite.serve(http.MethodGet, "/components/0", "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestComponentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentHandlerTestSuite))
}
