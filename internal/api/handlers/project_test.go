package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"test-manager-backend/internal/api/handlers"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/mocks"
	"test-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	handler     *handlers.ProjectHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProjectHandler(suite.mockService)
	suite.router = gin.New()
	suite.setupRoutes()
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectHandlerTestSuite) setupRoutes() {
	suite.router.GET("/projects", suite.handler.ListProjects)
	suite.router.POST("/projects", suite.handler.CreateProject)
	suite.router.GET("/projects/:id", suite.handler.GetProject)
	suite.router.PUT("/projects/:id", suite.handler.UpdateProject)
	suite.router.DELETE("/projects/:id", suite.handler.DeleteProject)
}

func (suite *ProjectHandlerTestSuite) serve(method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestCreateProject tests the CreateProject handler
func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	suite.T().Run("Created", func(t *testing.T) {
		request := service.ProjectRequest{
			Name:      "Alpha",
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		}
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(req *service.ProjectRequest) (*service.ProjectResponse, error) {
				assert.Equal(t, "Alpha", req.Name)
				assert.True(t, req.EndDate.Equal(request.EndDate))
				return &service.ProjectResponse{ID: 1, Name: req.Name}, nil
			})

		body, _ := json.Marshal(request)
		w := suite.serve(http.MethodPost, "/projects", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response service.ProjectResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(1), response.ID)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		w := suite.serve(http.MethodPost, "/projects", []byte("invalid json"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	suite.T().Run("Duplicate name", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrProjectExists)

		w := suite.serve(http.MethodPost, "/projects", []byte(`{"name":"alpha"}`))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"project with this name already exists"}`, w.Body.String())
	})

	suite.T().Run("Validation failure", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("name", "is required"))

		w := suite.serve(http.MethodPost, "/projects", []byte(`{"name":"  "}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name - is required")
	})
}

// TestGetProject tests the GetProject handler
func (suite *ProjectHandlerTestSuite) TestGetProject() {
	suite.T().Run("Invalid ID", func(t *testing.T) {
		w := suite.serve(http.MethodGet, "/projects/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid project ID")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(int64(42)).Return(nil, apperrors.ErrProjectNotFound)

		w := suite.serve(http.MethodGet, "/projects/42", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"project not found"}`, w.Body.String())
	})

	suite.T().Run("Store failure", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(int64(7)).
			Return(nil, apperrors.NewStoreError("failed to get project", errors.New("connection refused")))

		w := suite.serve(http.MethodGet, "/projects/7", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	suite.T().Run("Found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByID(int64(7)).Return(&service.ProjectResponse{ID: 7, Name: "Alpha"}, nil)

		w := suite.serve(http.MethodGet, "/projects/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Alpha"`)
	})
}

// TestListProjects tests the ListProjects handler
func (suite *ProjectHandlerTestSuite) TestListProjects() {
	suite.mockService.EXPECT().GetAll().Return([]service.ProjectResponse{{ID: 1}, {ID: 2}}, nil)

	w := suite.serve(http.MethodGet, "/projects", nil)

	suite.Equal(http.StatusOK, w.Code)
	var response []service.ProjectResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response, 2)
}

// TestUpdateProject tests the UpdateProject handler
func (suite *ProjectHandlerTestSuite) TestUpdateProject() {
	suite.T().Run("Invalid ID", func(t *testing.T) {
		w := suite.serve(http.MethodPut, "/projects/x", []byte(`{"name":"Beta"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().Update(int64(5), gomock.Any()).Return(nil, apperrors.ErrProjectNotFound)

		w := suite.serve(http.MethodPut, "/projects/5", []byte(`{"name":"Beta"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	suite.T().Run("Updated", func(t *testing.T) {
		suite.mockService.EXPECT().Update(int64(5), gomock.Any()).Return(&service.ProjectResponse{ID: 5, Name: "Beta"}, nil)

		w := suite.serve(http.MethodPut, "/projects/5", []byte(`{"name":"Beta"}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// TestDeleteProject tests the DeleteProject handler
func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	suite.T().Run("Plain delete", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(int64(3)).Return(nil)

		w := suite.serve(http.MethodDelete, "/projects/3", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	suite.T().Run("Has components", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(int64(3)).Return(apperrors.ErrProjectHasComponents)

		w := suite.serve(http.MethodDelete, "/projects/3", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	suite.T().Run("Cascade", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteCascade(int64(3)).Return(&service.CascadeDeleteResponse{
			ProjectID:   3,
			Components:  2,
			TestCases:   6,
			TestReports: 12,
		}, nil)

		w := suite.serve(http.MethodDelete, "/projects/3?cascade=true", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"project_id":3,"components_deleted":2,"test_cases_deleted":6,"test_reports_deleted":12}`,
			w.Body.String())
	})

	suite.T().Run("Cascade stopped by store failure", func(t *testing.T) {
		suite.mockService.EXPECT().
			DeleteCascade(int64(3)).
			Return(&service.CascadeDeleteResponse{ProjectID: 3, TestReports: 1},
				apperrors.NewStoreError("failed to delete test case", errors.New("timeout")))

		w := suite.serve(http.MethodDelete, "/projects/3?cascade=true", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	suite.T().Run("Invalid cascade flag", func(t *testing.T) {
		w := suite.serve(http.MethodDelete, "/projects/3?cascade=maybe", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid cascade parameter")
	})
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
