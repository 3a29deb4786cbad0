package handlers

import (
	"net/http"

	"test-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRoleHandler handles HTTP requests for user role operations
type UserRoleHandler struct {
	userRoleService service.UserRoleServiceInterface
}

// NewUserRoleHandler creates a new user role handler
func NewUserRoleHandler(userRoleService service.UserRoleServiceInterface) *UserRoleHandler {
	return &UserRoleHandler{userRoleService: userRoleService}
}

// ListUserRoles handles GET /user-roles
// @Summary List user roles
// @Tags user-roles
// @Produce json
// @Success 200 {array} service.UserRoleResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /user-roles [get]
func (h *UserRoleHandler) ListUserRoles(c *gin.Context) {
	roles, err := h.userRoleService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// CreateUserRole handles POST /user-roles
// @Summary Create a new user role
// @Tags user-roles
// @Accept json
// @Produce json
// @Param role body service.UserRoleRequest true "User role data"
// @Success 201 {object} service.UserRoleResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "User role already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /user-roles [post]
func (h *UserRoleHandler) CreateUserRole(c *gin.Context) {
	var req service.UserRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	role, err := h.userRoleService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

// GetUserRole handles GET /user-roles/:id
// @Summary Get user role by ID
// @Tags user-roles
// @Produce json
// @Param id path int true "User role ID"
// @Success 200 {object} service.UserRoleResponse
// @Failure 400 {object} ErrorResponse "Invalid user role ID"
// @Failure 404 {object} ErrorResponse "User role not found"
// @Router /user-roles/{id} [get]
func (h *UserRoleHandler) GetUserRole(c *gin.Context) {
	id, ok := parseID(c, "id", "user role")
	if !ok {
		return
	}

	role, err := h.userRoleService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// UpdateUserRole handles PUT /user-roles/:id
// @Summary Update user role
// @Tags user-roles
// @Accept json
// @Produce json
// @Param id path int true "User role ID"
// @Param role body service.UserRoleRequest true "Updated user role data"
// @Success 200 {object} service.UserRoleResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "User role not found"
// @Failure 409 {object} ErrorResponse "Role name already taken"
// @Router /user-roles/{id} [put]
func (h *UserRoleHandler) UpdateUserRole(c *gin.Context) {
	id, ok := parseID(c, "id", "user role")
	if !ok {
		return
	}

	var req service.UserRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	role, err := h.userRoleService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// DeleteUserRole handles DELETE /user-roles/:id
// @Summary Delete user role
// @Description Delete a role no user holds
// @Tags user-roles
// @Param id path int true "User role ID"
// @Success 204 "Successfully deleted user role"
// @Failure 404 {object} ErrorResponse "User role not found"
// @Failure 409 {object} ErrorResponse "Role still assigned to users"
// @Router /user-roles/{id} [delete]
func (h *UserRoleHandler) DeleteUserRole(c *gin.Context) {
	id, ok := parseID(c, "id", "user role")
	if !ok {
		return
	}

	if err := h.userRoleService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// TestStatusHandler handles HTTP requests for test status operations
type TestStatusHandler struct {
	testStatusService service.TestStatusServiceInterface
}

// NewTestStatusHandler creates a new test status handler
func NewTestStatusHandler(testStatusService service.TestStatusServiceInterface) *TestStatusHandler {
	return &TestStatusHandler{testStatusService: testStatusService}
}

// ListTestStatuses handles GET /test-statuses
// @Summary List test statuses
// @Tags test-statuses
// @Produce json
// @Success 200 {array} service.TestStatusResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /test-statuses [get]
func (h *TestStatusHandler) ListTestStatuses(c *gin.Context) {
	statuses, err := h.testStatusService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// CreateTestStatus handles POST /test-statuses
// @Summary Create a new test status
// @Tags test-statuses
// @Accept json
// @Produce json
// @Param status body service.TestStatusRequest true "Test status data"
// @Success 201 {object} service.TestStatusResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Test status already exists"
// @Router /test-statuses [post]
func (h *TestStatusHandler) CreateTestStatus(c *gin.Context) {
	var req service.TestStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.testStatusService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, status)
}

// GetTestStatus handles GET /test-statuses/:id
// @Summary Get test status by ID
// @Tags test-statuses
// @Produce json
// @Param id path int true "Test status ID"
// @Success 200 {object} service.TestStatusResponse
// @Failure 400 {object} ErrorResponse "Invalid test status ID"
// @Failure 404 {object} ErrorResponse "Test status not found"
// @Router /test-statuses/{id} [get]
func (h *TestStatusHandler) GetTestStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "test status")
	if !ok {
		return
	}

	status, err := h.testStatusService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// UpdateTestStatus handles PUT /test-statuses/:id
// @Summary Update test status
// @Tags test-statuses
// @Accept json
// @Produce json
// @Param id path int true "Test status ID"
// @Param status body service.TestStatusRequest true "Updated test status data"
// @Success 200 {object} service.TestStatusResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Test status not found"
// @Failure 409 {object} ErrorResponse "Status name already taken"
// @Router /test-statuses/{id} [put]
func (h *TestStatusHandler) UpdateTestStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "test status")
	if !ok {
		return
	}

	var req service.TestStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.testStatusService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// DeleteTestStatus handles DELETE /test-statuses/:id
// @Summary Delete test status
// @Description Delete a status no test case uses
// @Tags test-statuses
// @Param id path int true "Test status ID"
// @Success 204 "Successfully deleted test status"
// @Failure 404 {object} ErrorResponse "Test status not found"
// @Failure 409 {object} ErrorResponse "Status still in use"
// @Router /test-statuses/{id} [delete]
func (h *TestStatusHandler) DeleteTestStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "test status")
	if !ok {
		return
	}

	if err := h.testStatusService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
