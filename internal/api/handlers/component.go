package handlers

import (
	"net/http"

	"test-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ComponentHandler handles HTTP requests for component operations
type ComponentHandler struct {
	componentService service.ComponentServiceInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService service.ComponentServiceInterface) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
	}
}

// ListComponents handles GET /components
// @Summary List components
// @Tags components
// @Produce json
// @Success 200 {array} service.ComponentResponse "Successfully retrieved components"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /components [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
	components, err := h.componentService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, components)
}

// GetComponentsByProject handles GET /projects/:id/components
// @Summary List the components of a project
// @Tags components
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} service.ComponentResponse "Successfully retrieved components"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id}/components [get]
func (h *ComponentHandler) GetComponentsByProject(c *gin.Context) {
	projectID, ok := parseID(c, "id", "project")
	if !ok {
		return
	}

	components, err := h.componentService.GetByProjectID(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, components)
}

// CreateComponent handles POST /components
// @Summary Create a new component
// @Description Create a component inside a project. Names are unique per project ignoring case.
// @Tags components
// @Accept json
// @Produce json
// @Param component body service.ComponentRequest true "Component data"
// @Success 201 {object} service.ComponentResponse "Successfully created component"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Component already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	var req service.ComponentRequest
	if !bindJSON(c, &req) {
		return
	}

	component, err := h.componentService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, component)
}

// GetComponent handles GET /components/:id
// @Summary Get component by ID
// @Tags components
// @Produce json
// @Param id path int true "Component ID"
// @Success 200 {object} service.ComponentResponse "Successfully retrieved component"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	id, ok := parseID(c, "id", "component")
	if !ok {
		return
	}

	component, err := h.componentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// UpdateComponent handles PUT /components/:id
// @Summary Update component
// @Tags components
// @Accept json
// @Produce json
// @Param id path int true "Component ID"
// @Param component body service.ComponentRequest true "Updated component data"
// @Success 200 {object} service.ComponentResponse "Successfully updated component"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Component or project not found"
// @Failure 409 {object} ErrorResponse "Component name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /components/{id} [put]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	id, ok := parseID(c, "id", "component")
	if !ok {
		return
	}

	var req service.ComponentRequest
	if !bindJSON(c, &req) {
		return
	}

	component, err := h.componentService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, component)
}

// DeleteComponent handles DELETE /components/:id
// @Summary Delete component
// @Description Delete a component that owns no test cases
// @Tags components
// @Param id path int true "Component ID"
// @Success 204 "Successfully deleted component"
// @Failure 400 {object} ErrorResponse "Invalid component ID"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Failure 409 {object} ErrorResponse "Component still has test cases"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	id, ok := parseID(c, "id", "component")
	if !ok {
		return
	}

	if err := h.componentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
