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

// TestCaseHandlerTestSuite defines the test suite for TestCaseHandler
type TestCaseHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTestCaseServiceInterface
	router      *gin.Engine
}

func (suite *TestCaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTestCaseServiceInterface(suite.ctrl)
	handler := handlers.NewTestCaseHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.GET("/test-cases", handler.ListTestCases)
	suite.router.POST("/test-cases", handler.CreateTestCase)
	suite.router.GET("/test-cases/:id", handler.GetTestCase)
	suite.router.PUT("/test-cases/:id", handler.UpdateTestCase)
	suite.router.DELETE("/test-cases/:id", handler.DeleteTestCase)
	suite.router.GET("/components/:id/test-cases", handler.GetTestCasesByComponent)
	suite.router.GET("/users/:id/test-cases", handler.GetTestCasesByUser)
	suite.router.GET("/test-statuses/:id/test-cases", handler.GetTestCasesByStatus)
}

func (suite *TestCaseHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TestCaseHandlerTestSuite) serve(method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestCreateTestCase covers success and each error kind
func (suite *TestCaseHandlerTestSuite) TestCreateTestCase() {
	body := `{"component_id":1,"assigned_user":2,"status_id":3,"name":"login works"}`

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "created", expectedCode: http.StatusCreated},
		{name: "component missing", err: apperrors.ErrComponentNotFound, expectedCode: http.StatusNotFound},
		{name: "user missing", err: apperrors.ErrUserNotFound, expectedCode: http.StatusNotFound},
		{name: "invalid status", err: apperrors.NewValidationError("status_id", "must be a positive integer"), expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response *service.TestCaseResponse
			if tt.err == nil {
				response = &service.TestCaseResponse{ID: 10, ComponentID: 1, AssignedUser: 2, StatusID: 3}
			}
			suite.mockService.EXPECT().
				Create(&service.TestCaseRequest{ComponentID: 1, AssignedUser: 2, StatusID: 3, Name: "login works"}).
				Return(response, tt.err)

			w := suite.serve(http.MethodPost, "/test-cases", body)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

// TestNestedListings routes each parent to its service call
func (suite *TestCaseHandlerTestSuite) TestNestedListings() {
	suite.mockService.EXPECT().GetByComponentID(int64(1)).Return([]service.TestCaseResponse{}, nil)
	suite.mockService.EXPECT().GetByAssignedUser(int64(2)).Return([]service.TestCaseResponse{{ID: 1}}, nil)
	suite.mockService.EXPECT().GetByStatusID(int64(3)).Return(nil, apperrors.ErrTestStatusNotFound)

	suite.Equal(http.StatusOK, suite.serve(http.MethodGet, "/components/1/test-cases", "").Code)
	suite.Equal(http.StatusOK, suite.serve(http.MethodGet, "/users/2/test-cases", "").Code)
	suite.Equal(http.StatusNotFound, suite.serve(http.MethodGet, "/test-statuses/3/test-cases", "").Code)

	w := suite.serve(http.MethodGet, "/users/x/test-cases", "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "invalid user ID")
}

// TestDeleteTestCase removes a test case
func (suite *TestCaseHandlerTestSuite) TestDeleteTestCase() {
	suite.mockService.EXPECT().Delete(int64(8)).Return(nil)

	suite.Equal(http.StatusNoContent, suite.serve(http.MethodDelete, "/test-cases/8", "").Code)
}

func TestTestCaseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TestCaseHandlerTestSuite))
}
