package service

import (
	"time"

	"test-manager-backend/internal/database/models"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/logger"
	"test-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ProjectService handles business logic for projects, including the cascading
// delete of everything a project owns
type ProjectService struct {
	repo           repository.ProjectRepositoryInterface
	componentRepo  repository.ComponentRepositoryInterface
	testCaseRepo   repository.TestCaseRepositoryInterface
	testReportRepo repository.TestReportRepositoryInterface
	validator      *validator.Validate
}

// Ensure ProjectService implements ProjectServiceInterface
var _ ProjectServiceInterface = (*ProjectService)(nil)

// NewProjectService creates a new project service
func NewProjectService(
	repo repository.ProjectRepositoryInterface,
	componentRepo repository.ComponentRepositoryInterface,
	testCaseRepo repository.TestCaseRepositoryInterface,
	testReportRepo repository.TestReportRepositoryInterface,
	validator *validator.Validate,
) *ProjectService {
	return &ProjectService{
		repo:           repo,
		componentRepo:  componentRepo,
		testCaseRepo:   testCaseRepo,
		testReportRepo: testReportRepo,
		validator:      validator,
	}
}

// ProjectRequest carries the full field set of a project for create and update
type ProjectRequest struct {
	Name        string    `json:"name" validate:"notblank,max=100"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=500"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CascadeDeleteResponse summarises what a cascading project delete removed
type CascadeDeleteResponse struct {
	ProjectID   int64 `json:"project_id"`
	Components  int   `json:"components_deleted"`
	TestCases   int   `json:"test_cases_deleted"`
	TestReports int   `json:"test_reports_deleted"`
}

// Total returns the number of rows deleted, the project included
func (r *CascadeDeleteResponse) Total() int {
	return 1 + r.Components + r.TestCases + r.TestReports
}

// GetAll retrieves all projects
func (s *ProjectService) GetAll() ([]ProjectResponse, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get projects", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.toResponse(&projects[i])
	}
	return responses, nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id int64) (*ProjectResponse, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	project, err := ensureExists(s.repo.GetByID, id, apperrors.ErrProjectNotFound, "failed to get project")
	if err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

// Create creates a new project
func (s *ProjectService) Create(req *ProjectRequest) (*ProjectResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "project is required")
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.ensureNameUnique(req.Name, 0); err != nil {
		return nil, err
	}

	project := &models.Project{}
	s.apply(project, req)

	if err := s.repo.Create(project); err != nil {
		return nil, apperrors.NewStoreError("failed to create project", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"project_id": project.ID,
		"name":       project.Name,
	}).Info("project created")

	return s.toResponse(project), nil
}

// Update replaces every field of an existing project
func (s *ProjectService) Update(id int64, req *ProjectRequest) (*ProjectResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "project is required")
	}
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	project, err := ensureExists(s.repo.GetByID, id, apperrors.ErrProjectNotFound, "failed to get project")
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameUnique(req.Name, id); err != nil {
		return nil, err
	}

	s.apply(project, req)
	if err := s.repo.Update(project); err != nil {
		return nil, apperrors.NewStoreError("failed to update project", err)
	}

	return s.toResponse(project), nil
}

// Delete deletes a project that owns no components
func (s *ProjectService) Delete(id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	if _, err := ensureExists(s.repo.GetByID, id, apperrors.ErrProjectNotFound, "failed to get project"); err != nil {
		return err
	}

	if err := ensureNoDependents(s.componentRepo.CountByProjectID, id, apperrors.ErrProjectHasComponents, "failed to count project components"); err != nil {
		if apperrors.IsConflict(err) {
			logger.New().WithField("project_id", id).Warn("project delete rejected: components still exist")
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStoreError("failed to delete project", err)
	}
	return nil
}

// DeleteCascade deletes a project together with its components, their test
// cases and the test cases' reports, leaves first. Test history entries are
// left in place. Rows removed before a failing step stay removed.
func (s *ProjectService) DeleteCascade(id int64) (*CascadeDeleteResponse, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if _, err := ensureExists(s.repo.GetByID, id, apperrors.ErrProjectNotFound, "failed to get project"); err != nil {
		return nil, err
	}

	result := &CascadeDeleteResponse{ProjectID: id}
	log := logger.New().WithField("project_id", id)

	components, err := s.componentRepo.GetByProjectID(id)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to list project components", err)
	}

	for _, component := range components {
		testCases, err := s.testCaseRepo.GetByComponentID(component.ID)
		if err != nil {
			return result, apperrors.NewStoreError("failed to list component test cases", err)
		}

		for _, testCase := range testCases {
			reports, err := s.testReportRepo.GetByTestCaseID(testCase.ID)
			if err != nil {
				return result, apperrors.NewStoreError("failed to list test case reports", err)
			}
			for _, report := range reports {
				if err := s.testReportRepo.Delete(report.ID); err != nil {
					return result, apperrors.NewStoreError("failed to delete test report", err)
				}
				result.TestReports++
			}

			if err := s.testCaseRepo.Delete(testCase.ID); err != nil {
				return result, apperrors.NewStoreError("failed to delete test case", err)
			}
			result.TestCases++
		}

		if err := s.componentRepo.Delete(component.ID); err != nil {
			return result, apperrors.NewStoreError("failed to delete component", err)
		}
		result.Components++
	}

	if err := s.repo.Delete(id); err != nil {
		return result, apperrors.NewStoreError("failed to delete project", err)
	}

	log.WithFields(map[string]interface{}{
		"components":   result.Components,
		"test_cases":   result.TestCases,
		"test_reports": result.TestReports,
	}).Info("project deleted with cascade")

	return result, nil
}

func (s *ProjectService) ensureNameUnique(name string, excludeID int64) error {
	projects, err := s.repo.GetAll()
	if err != nil {
		return apperrors.NewStoreError("failed to check existing project names", err)
	}
	return ensureNameUnique(name, projects, excludeID, func(p models.Project) (int64, string) {
		return p.ID, p.Name
	}, apperrors.ErrProjectExists)
}

func (s *ProjectService) apply(project *models.Project, req *ProjectRequest) {
	project.Name = req.Name
	project.Description = req.Description
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate
}

// toResponse converts a project model to response
func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
