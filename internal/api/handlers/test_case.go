package handlers

import (
	"net/http"

	"test-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TestCaseHandler handles HTTP requests for test case operations
type TestCaseHandler struct {
	testCaseService service.TestCaseServiceInterface
}

// NewTestCaseHandler creates a new test case handler
func NewTestCaseHandler(testCaseService service.TestCaseServiceInterface) *TestCaseHandler {
	return &TestCaseHandler{
		testCaseService: testCaseService,
	}
}

// ListTestCases handles GET /test-cases
// @Summary List test cases
// @Tags test-cases
// @Produce json
// @Success 200 {array} service.TestCaseResponse "Successfully retrieved test cases"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /test-cases [get]
func (h *TestCaseHandler) ListTestCases(c *gin.Context) {
	testCases, err := h.testCaseService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, testCases)
}

// GetTestCasesByComponent handles GET /components/:id/test-cases
// @Summary List the test cases of a component
// @Tags test-cases
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {array} service.TestCaseResponse "Successfully retrieved test cases"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /components/{id}/test-cases [get]
func (h *TestCaseHandler) GetTestCasesByComponent(c *gin.Context) {
	h.listBy(c, "component", h.testCaseService.GetByComponentID)
}

// GetTestCasesByUser handles GET /users/:id/test-cases
// @Summary List the test cases assigned to a user
// @Tags test-cases
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} service.TestCaseResponse "Successfully retrieved test cases"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id}/test-cases [get]
func (h *TestCaseHandler) GetTestCasesByUser(c *gin.Context) {
	h.listBy(c, "user", h.testCaseService.GetByAssignedUser)
}

// GetTestCasesByStatus handles GET /test-statuses/:id/test-cases
// @Summary List the test cases in a status
// @Tags test-cases
// @Produce json
// @Param id path int true "Test status ID"
// @Success 200 {array} service.TestCaseResponse "Successfully retrieved test cases"
// @Failure 400 {object} ErrorResponse "Invalid test status ID"
// @Failure 404 {object} ErrorResponse "Test status not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /test-statuses/{id}/test-cases [get]
func (h *TestCaseHandler) GetTestCasesByStatus(c *gin.Context) {
	h.listBy(c, "test status", h.testCaseService.GetByStatusID)
}

func (h *TestCaseHandler) listBy(c *gin.Context, parent string, list func(int64) ([]service.TestCaseResponse, error)) {
	parentID, ok := parseID(c, "id", parent)
	if !ok {
		return
	}

	testCases, err := list(parentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, testCases)
}

// CreateTestCase handles POST /test-cases
// @Summary Create a new test case
// @Description The component, assigned user and status must exist
// @Tags test-cases
// @Accept json
// @Produce json
// @Param testCase body service.TestCaseRequest true "Test case data"
// @Success 201 {object} service.TestCaseResponse "Successfully created test case"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Component, user or status not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /test-cases [post]
func (h *TestCaseHandler) CreateTestCase(c *gin.Context) {
	var req service.TestCaseRequest
	if !bindJSON(c, &req) {
		return
	}

	testCase, err := h.testCaseService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, testCase)
}

// GetTestCase handles GET /test-cases/:id
// @Summary Get test case by ID
// @Tags test-cases
// @Produce json
// @Param id path int true "Test case ID"
// @Success 200 {object} service.TestCaseResponse "Successfully retrieved test case"
// @Failure 400 {object} ErrorResponse "Invalid test case ID"
// @Failure 404 {object} ErrorResponse "Test case not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /test-cases/{id} [get]
func (h *TestCaseHandler) GetTestCase(c *gin.Context) {
	id, ok := parseID(c, "id", "test case")
	if !ok {
		return
	}

	testCase, err := h.testCaseService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, testCase)
}

// UpdateTestCase handles PUT /test-cases/:id
// @Summary Update test case
// @Tags test-cases
// @Accept json
// @Produce json
// @Param id path int true "Test case ID"
// @Param testCase body service.TestCaseRequest true "Updated test case data"
// @Success 200 {object} service.TestCaseResponse "Successfully updated test case"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Test case or a referenced row not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /test-cases/{id} [put]
func (h *TestCaseHandler) UpdateTestCase(c *gin.Context) {
	id, ok := parseID(c, "id", "test case")
	if !ok {
		return
	}

	var req service.TestCaseRequest
	if !bindJSON(c, &req) {
		return
	}

	testCase, err := h.testCaseService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, testCase)
}

// DeleteTestCase handles DELETE /test-cases/:id
// @Summary Delete test case
// @Tags test-cases
// @Param id path int true "Test case ID"
// @Success 204 "Successfully deleted test case"
// @Failure 400 {object} ErrorResponse "Invalid test case ID"
// @Failure 404 {object} ErrorResponse "Test case not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /test-cases/{id} [delete]
func (h *TestCaseHandler) DeleteTestCase(c *gin.Context) {
	id, ok := parseID(c, "id", "test case")
	if !ok {
		return
	}

	if err := h.testCaseService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
