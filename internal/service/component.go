package service

import (
	"time"

	"test-manager-backend/internal/database/models"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/logger"
	"test-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ComponentService handles business logic for components
type ComponentService struct {
	repo      repository.ComponentRepositoryInterface
	projects  repository.ProjectReader
	testCases repository.TestCaseFinder
	validator *validator.Validate
}

var _ ComponentServiceInterface = (*ComponentService)(nil)

// NewComponentService creates a new component service
func NewComponentService(
	repo repository.ComponentRepositoryInterface,
	projects repository.ProjectReader,
	testCases repository.TestCaseFinder,
	validator *validator.Validate,
) *ComponentService {
	return &ComponentService{
		repo:      repo,
		projects:  projects,
		testCases: testCases,
		validator: validator,
	}
}

// ComponentRequest represents the payload for creating or updating a component
type ComponentRequest struct {
	ProjectID   int64  `json:"project_id" validate:"gt=0"`
	Name        string `json:"name" validate:"notblank,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// ComponentResponse represents the response for component operations
type ComponentResponse struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetAll retrieves all components
func (s *ComponentService) GetAll() ([]ComponentResponse, error) {
	components, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get components", err)
	}
	return s.toResponses(components), nil
}

// GetByProjectID retrieves the components owned by a project
func (s *ComponentService) GetByProjectID(projectID int64) ([]ComponentResponse, error) {
	if err := validateID("project_id", projectID); err != nil {
		return nil, err
	}
	if _, err := ensureExists(s.projects.GetByID, projectID, apperrors.ErrProjectNotFound, "failed to get project"); err != nil {
		return nil, err
	}

	components, err := s.repo.GetByProjectID(projectID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get components by project", err)
	}
	return s.toResponses(components), nil
}

// GetByID retrieves a component by ID
func (s *ComponentService) GetByID(id int64) (*ComponentResponse, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	component, err := ensureExists(s.repo.GetByID, id, apperrors.ErrComponentNotFound, "failed to get component")
	if err != nil {
		return nil, err
	}
	return s.toResponse(component), nil
}

// Create creates a new component inside an existing project
func (s *ComponentService) Create(req *ComponentRequest) (*ComponentResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "component is required")
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.ensureReferences(req); err != nil {
		return nil, err
	}
	if err := s.ensureNameUnique(req.ProjectID, req.Name, 0); err != nil {
		return nil, err
	}

	component := &models.Component{}
	s.apply(component, req)
	if err := s.repo.Create(component); err != nil {
		return nil, apperrors.NewStoreError("failed to create component", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"component_id": component.ID,
		"project_id":   component.ProjectID,
	}).Info("component created")

	return s.toResponse(component), nil
}

// Update replaces every field of an existing component
func (s *ComponentService) Update(id int64, req *ComponentRequest) (*ComponentResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "component is required")
	}
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	component, err := ensureExists(s.repo.GetByID, id, apperrors.ErrComponentNotFound, "failed to get component")
	if err != nil {
		return nil, err
	}
	if err := s.ensureReferences(req); err != nil {
		return nil, err
	}
	if err := s.ensureNameUnique(req.ProjectID, req.Name, id); err != nil {
		return nil, err
	}

	s.apply(component, req)
	if err := s.repo.Update(component); err != nil {
		return nil, apperrors.NewStoreError("failed to update component", err)
	}
	return s.toResponse(component), nil
}

// Delete deletes a component that owns no test cases
func (s *ComponentService) Delete(id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	if _, err := ensureExists(s.repo.GetByID, id, apperrors.ErrComponentNotFound, "failed to get component"); err != nil {
		return err
	}
	if err := ensureNoDependents(s.testCases.CountByComponentID, id, apperrors.ErrComponentHasTestCases, "failed to count component test cases"); err != nil {
		if apperrors.IsConflict(err) {
			logger.New().WithField("component_id", id).Warn("component delete rejected: test cases still exist")
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStoreError("failed to delete component", err)
	}
	return nil
}

func (s *ComponentService) ensureReferences(req *ComponentRequest) error {
	_, err := ensureExists(s.projects.GetByID, req.ProjectID, apperrors.ErrProjectNotFound, "failed to get project")
	return err
}

// ensureNameUnique scopes the name check to the components of one project
func (s *ComponentService) ensureNameUnique(projectID int64, name string, excludeID int64) error {
	siblings, err := s.repo.GetByProjectID(projectID)
	if err != nil {
		return apperrors.NewStoreError("failed to check existing component names", err)
	}
	return ensureNameUnique(name, siblings, excludeID, func(c models.Component) (int64, string) {
		return c.ID, c.Name
	}, apperrors.ErrComponentExists)
}

func (s *ComponentService) apply(component *models.Component, req *ComponentRequest) {
	component.ProjectID = req.ProjectID
	component.Name = req.Name
	component.Description = req.Description
}

func (s *ComponentService) toResponses(components []models.Component) []ComponentResponse {
	responses := make([]ComponentResponse, len(components))
	for i := range components {
		responses[i] = *s.toResponse(&components[i])
	}
	return responses
}

// toResponse converts a component model to response
func (s *ComponentService) toResponse(component *models.Component) *ComponentResponse {
	return &ComponentResponse{
		ID:          component.ID,
		ProjectID:   component.ProjectID,
		Name:        component.Name,
		Description: component.Description,
		CreatedAt:   component.CreatedAt,
		UpdatedAt:   component.UpdatedAt,
	}
}
