package service

import (
	"time"

	"test-manager-backend/internal/database/models"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/logger"
	"test-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TestCaseService handles business logic for test cases
type TestCaseService struct {
	repo       repository.TestCaseRepositoryInterface
	components repository.ComponentReader
	users      repository.UserReader
	statuses   repository.TestStatusReader
	validator  *validator.Validate
}

var _ TestCaseServiceInterface = (*TestCaseService)(nil)

// NewTestCaseService creates a new test case service
func NewTestCaseService(
	repo repository.TestCaseRepositoryInterface,
	components repository.ComponentReader,
	users repository.UserReader,
	statuses repository.TestStatusReader,
	validator *validator.Validate,
) *TestCaseService {
	return &TestCaseService{
		repo:       repo,
		components: components,
		users:      users,
		statuses:   statuses,
		validator:  validator,
	}
}

// TestCaseRequest represents the payload for creating or updating a test case
type TestCaseRequest struct {
	ComponentID  int64  `json:"component_id" validate:"gt=0"`
	AssignedUser int64  `json:"assigned_user" validate:"gt=0"`
	StatusID     int64  `json:"status_id" validate:"gt=0"`
	Name         string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description  string `json:"description,omitempty" validate:"omitempty,max=500"`
	Priority     string `json:"priority,omitempty" validate:"omitempty,max=50"`
	Status       string `json:"status,omitempty" validate:"omitempty,max=50"`
}

// TestCaseResponse represents the response for test case operations
type TestCaseResponse struct {
	ID           int64     `json:"id"`
	ComponentID  int64     `json:"component_id"`
	AssignedUser int64     `json:"assigned_user"`
	StatusID     int64     `json:"status_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GetAll retrieves all test cases
func (s *TestCaseService) GetAll() ([]TestCaseResponse, error) {
	testCases, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get test cases", err)
	}
	return s.toResponses(testCases), nil
}

// GetByID retrieves a test case by ID
func (s *TestCaseService) GetByID(id int64) (*TestCaseResponse, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	testCase, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestCaseNotFound, "failed to get test case")
	if err != nil {
		return nil, err
	}
	return s.toResponse(testCase), nil
}

// GetByComponentID retrieves the test cases of a component
func (s *TestCaseService) GetByComponentID(componentID int64) ([]TestCaseResponse, error) {
	if err := validateID("component_id", componentID); err != nil {
		return nil, err
	}
	if _, err := ensureExists(s.components.GetByID, componentID, apperrors.ErrComponentNotFound, "failed to get component"); err != nil {
		return nil, err
	}

	testCases, err := s.repo.GetByComponentID(componentID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get test cases by component", err)
	}
	return s.toResponses(testCases), nil
}

// GetByAssignedUser retrieves the test cases assigned to a user
func (s *TestCaseService) GetByAssignedUser(userID int64) ([]TestCaseResponse, error) {
	if err := validateID("user_id", userID); err != nil {
		return nil, err
	}
	if _, err := ensureExists(s.users.GetByID, userID, apperrors.ErrUserNotFound, "failed to get user"); err != nil {
		return nil, err
	}

	testCases, err := s.repo.GetByAssignedUser(userID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get test cases by user", err)
	}
	return s.toResponses(testCases), nil
}

// GetByStatusID retrieves the test cases currently in a status
func (s *TestCaseService) GetByStatusID(statusID int64) ([]TestCaseResponse, error) {
	if err := validateID("status_id", statusID); err != nil {
		return nil, err
	}
	if _, err := ensureExists(s.statuses.GetByID, statusID, apperrors.ErrTestStatusNotFound, "failed to get test status"); err != nil {
		return nil, err
	}

	testCases, err := s.repo.GetByStatusID(statusID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get test cases by status", err)
	}
	return s.toResponses(testCases), nil
}

// Create creates a new test case
func (s *TestCaseService) Create(req *TestCaseRequest) (*TestCaseResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "test case is required")
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.ensureReferences(req); err != nil {
		return nil, err
	}

	testCase := &models.TestCase{}
	s.apply(testCase, req)
	if err := s.repo.Create(testCase); err != nil {
		return nil, apperrors.NewStoreError("failed to create test case", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"test_case_id": testCase.ID,
		"component_id": testCase.ComponentID,
	}).Info("test case created")

	return s.toResponse(testCase), nil
}

// Update replaces every field of an existing test case
func (s *TestCaseService) Update(id int64, req *TestCaseRequest) (*TestCaseResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "test case is required")
	}
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	testCase, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestCaseNotFound, "failed to get test case")
	if err != nil {
		return nil, err
	}
	if err := s.ensureReferences(req); err != nil {
		return nil, err
	}

	s.apply(testCase, req)
	if err := s.repo.Update(testCase); err != nil {
		return nil, apperrors.NewStoreError("failed to update test case", err)
	}
	return s.toResponse(testCase), nil
}

// Delete deletes a test case. Reports and history entries that reference it
// are not checked.
func (s *TestCaseService) Delete(id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	if _, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestCaseNotFound, "failed to get test case"); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStoreError("failed to delete test case", err)
	}
	return nil
}

// ensureReferences resolves the component, the assigned user and the status,
// in that order
func (s *TestCaseService) ensureReferences(req *TestCaseRequest) error {
	if _, err := ensureExists(s.components.GetByID, req.ComponentID, apperrors.ErrComponentNotFound, "failed to get component"); err != nil {
		return err
	}
	if _, err := ensureExists(s.users.GetByID, req.AssignedUser, apperrors.ErrUserNotFound, "failed to get user"); err != nil {
		return err
	}
	if _, err := ensureExists(s.statuses.GetByID, req.StatusID, apperrors.ErrTestStatusNotFound, "failed to get test status"); err != nil {
		return err
	}
	return nil
}

func (s *TestCaseService) apply(testCase *models.TestCase, req *TestCaseRequest) {
	testCase.ComponentID = req.ComponentID
	testCase.AssignedUser = req.AssignedUser
	testCase.StatusID = req.StatusID
	testCase.Name = req.Name
	testCase.Description = req.Description
	testCase.Priority = req.Priority
	testCase.Status = req.Status
}

func (s *TestCaseService) toResponses(testCases []models.TestCase) []TestCaseResponse {
	responses := make([]TestCaseResponse, len(testCases))
	for i := range testCases {
		responses[i] = *s.toResponse(&testCases[i])
	}
	return responses
}

func (s *TestCaseService) toResponse(testCase *models.TestCase) *TestCaseResponse {
	return &TestCaseResponse{
		ID:           testCase.ID,
		ComponentID:  testCase.ComponentID,
		AssignedUser: testCase.AssignedUser,
		StatusID:     testCase.StatusID,
		Name:         testCase.Name,
		Description:  testCase.Description,
		Priority:     testCase.Priority,
		Status:       testCase.Status,
		CreatedAt:    testCase.CreatedAt,
		UpdatedAt:    testCase.UpdatedAt,
	}
}
