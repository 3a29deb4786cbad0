package handlers

import (
	"net/http"

	"test-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TestReportHandler handles HTTP requests for test report operations
type TestReportHandler struct {
	testReportService service.TestReportServiceInterface
}

// NewTestReportHandler creates a new test report handler
func NewTestReportHandler(testReportService service.TestReportServiceInterface) *TestReportHandler {
	return &TestReportHandler{testReportService: testReportService}
}

// ListTestReports handles GET /test-reports
// @Summary List test reports
// @Tags test-reports
// @Produce json
// @Success 200 {array} service.TestReportResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /test-reports [get]
func (h *TestReportHandler) ListTestReports(c *gin.Context) {
	reports, err := h.testReportService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReportsByTestCase handles GET /test-cases/:id/test-reports
// @Summary List the reports of a test case
// @Description Newest execution first
// @Tags test-reports
// @Produce json
// @Param id path int true "Test case ID"
// @Success 200 {array} service.TestReportResponse
// @Failure 400 {object} ErrorResponse "Invalid test case ID"
// @Failure 404 {object} ErrorResponse "Test case not found"
// @Router /test-cases/{id}/test-reports [get]
func (h *TestReportHandler) GetReportsByTestCase(c *gin.Context) {
	testCaseID, ok := parseID(c, "id", "test case")
	if !ok {
		return
	}

	reports, err := h.testReportService.GetByTestCaseID(testCaseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// CreateTestReport handles POST /test-reports
// @Summary Record a test execution
// @Tags test-reports
// @Accept json
// @Produce json
// @Param report body service.TestReportRequest true "Test report data"
// @Success 201 {object} service.TestReportResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Test case not found"
// @Router /test-reports [post]
func (h *TestReportHandler) CreateTestReport(c *gin.Context) {
	var req service.TestReportRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.testReportService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// GetTestReport handles GET /test-reports/:id
// @Summary Get test report by ID
// @Tags test-reports
// @Produce json
// @Param id path int true "Test report ID"
// @Success 200 {object} service.TestReportResponse
// @Failure 400 {object} ErrorResponse "Invalid test report ID"
// @Failure 404 {object} ErrorResponse "Test report not found"
// @Router /test-reports/{id} [get]
func (h *TestReportHandler) GetTestReport(c *gin.Context) {
	id, ok := parseID(c, "id", "test report")
	if !ok {
		return
	}

	report, err := h.testReportService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateTestReport handles PUT /test-reports/:id
// @Summary Update test report
// @Tags test-reports
// @Accept json
// @Produce json
// @Param id path int true "Test report ID"
// @Param report body service.TestReportRequest true "Updated test report data"
// @Success 200 {object} service.TestReportResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Test report or test case not found"
// @Router /test-reports/{id} [put]
func (h *TestReportHandler) UpdateTestReport(c *gin.Context) {
	id, ok := parseID(c, "id", "test report")
	if !ok {
		return
	}

	var req service.TestReportRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.testReportService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteTestReport handles DELETE /test-reports/:id
// @Summary Delete test report
// @Tags test-reports
// @Param id path int true "Test report ID"
// @Success 204 "Successfully deleted test report"
// @Failure 404 {object} ErrorResponse "Test report not found"
// @Router /test-reports/{id} [delete]
func (h *TestReportHandler) DeleteTestReport(c *gin.Context) {
	id, ok := parseID(c, "id", "test report")
	if !ok {
		return
	}

	if err := h.testReportService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// TestHistoryHandler handles HTTP requests for test history operations
type TestHistoryHandler struct {
	testHistoryService service.TestHistoryServiceInterface
}

// NewTestHistoryHandler creates a new test history handler
func NewTestHistoryHandler(testHistoryService service.TestHistoryServiceInterface) *TestHistoryHandler {
	return &TestHistoryHandler{testHistoryService: testHistoryService}
}

// ListTestHistory handles GET /test-history
// @Summary List test history entries
// @Tags test-history
// @Produce json
// @Success 200 {array} service.TestHistoryResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /test-history [get]
func (h *TestHistoryHandler) ListTestHistory(c *gin.Context) {
	entries, err := h.testHistoryService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetHistoryByTestCase handles GET /test-cases/:id/test-history
// @Summary List the history of a test case
// @Description Newest entry first
// @Tags test-history
// @Produce json
// @Param id path int true "Test case ID"
// @Success 200 {array} service.TestHistoryResponse
// @Failure 400 {object} ErrorResponse "Invalid test case ID"
// @Failure 404 {object} ErrorResponse "Test case not found"
// @Router /test-cases/{id}/test-history [get]
func (h *TestHistoryHandler) GetHistoryByTestCase(c *gin.Context) {
	h.listBy(c, "test case", h.testHistoryService.GetByTestCaseID)
}

// GetHistoryByUser handles GET /users/:id/test-history
// @Summary List the history entries recorded by a user
// @Description Newest entry first
// @Tags test-history
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} service.TestHistoryResponse
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{id}/test-history [get]
func (h *TestHistoryHandler) GetHistoryByUser(c *gin.Context) {
	h.listBy(c, "user", h.testHistoryService.GetByUserID)
}

func (h *TestHistoryHandler) listBy(c *gin.Context, parent string, list func(int64) ([]service.TestHistoryResponse, error)) {
	parentID, ok := parseID(c, "id", parent)
	if !ok {
		return
	}

	entries, err := list(parentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateTestHistory handles POST /test-history
// @Summary Record a history entry
// @Description A missing timestamp defaults to the current time
// @Tags test-history
// @Accept json
// @Produce json
// @Param entry body service.TestHistoryRequest true "History entry data"
// @Success 201 {object} service.TestHistoryResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Test case or user not found"
// @Router /test-history [post]
func (h *TestHistoryHandler) CreateTestHistory(c *gin.Context) {
	var req service.TestHistoryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.testHistoryService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetTestHistory handles GET /test-history/:id
// @Summary Get history entry by ID
// @Tags test-history
// @Produce json
// @Param id path int true "History entry ID"
// @Success 200 {object} service.TestHistoryResponse
// @Failure 400 {object} ErrorResponse "Invalid test history ID"
// @Failure 404 {object} ErrorResponse "History entry not found"
// @Router /test-history/{id} [get]
func (h *TestHistoryHandler) GetTestHistory(c *gin.Context) {
	id, ok := parseID(c, "id", "test history")
	if !ok {
		return
	}

	entry, err := h.testHistoryService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateTestHistory handles PUT /test-history/:id
// @Summary Update history entry
// @Tags test-history
// @Accept json
// @Produce json
// @Param id path int true "History entry ID"
// @Param entry body service.TestHistoryRequest true "Updated history entry data"
// @Success 200 {object} service.TestHistoryResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "History entry, test case or user not found"
// @Router /test-history/{id} [put]
func (h *TestHistoryHandler) UpdateTestHistory(c *gin.Context) {
	id, ok := parseID(c, "id", "test history")
	if !ok {
		return
	}

	var req service.TestHistoryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.testHistoryService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteTestHistory handles DELETE /test-history/:id
// @Summary Delete history entry
// @Tags test-history
// @Param id path int true "History entry ID"
// @Success 204 "Successfully deleted history entry"
// @Failure 404 {object} ErrorResponse "History entry not found"
// @Router /test-history/{id} [delete]
func (h *TestHistoryHandler) DeleteTestHistory(c *gin.Context) {
	id, ok := parseID(c, "id", "test history")
	if !ok {
		return
	}

	if err := h.testHistoryService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
