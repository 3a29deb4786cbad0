package service

import (
	"time"

	"test-manager-backend/internal/database/models"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/logger"
	"test-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TestStatusService handles business logic for test statuses
type TestStatusService struct {
	repo      repository.TestStatusRepositoryInterface
	testCases repository.TestCaseFinder
	validator *validator.Validate
}

var _ TestStatusServiceInterface = (*TestStatusService)(nil)

// NewTestStatusService creates a new test status service
func NewTestStatusService(repo repository.TestStatusRepositoryInterface, testCases repository.TestCaseFinder, validator *validator.Validate) *TestStatusService {
	return &TestStatusService{
		repo:      repo,
		testCases: testCases,
		validator: validator,
	}
}

// TestStatusRequest represents the payload for creating or updating a status
type TestStatusRequest struct {
	StatusName  string `json:"status_name" validate:"notblank,max=50"`
	Description string `json:"description,omitempty" validate:"omitempty,max=200"`
}

// TestStatusResponse represents the response data for a status
type TestStatusResponse struct {
	ID          int64     `json:"id"`
	StatusName  string    `json:"status_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetAll retrieves all test statuses
func (s *TestStatusService) GetAll() ([]TestStatusResponse, error) {
	statuses, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get test statuses", err)
	}

	responses := make([]TestStatusResponse, len(statuses))
	for i := range statuses {
		responses[i] = *s.toResponse(&statuses[i])
	}
	return responses, nil
}

// GetByID retrieves a test status by ID
func (s *TestStatusService) GetByID(id int64) (*TestStatusResponse, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	status, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestStatusNotFound, "failed to get test status")
	if err != nil {
		return nil, err
	}
	return s.toResponse(status), nil
}

// Create creates a new test status
func (s *TestStatusService) Create(req *TestStatusRequest) (*TestStatusResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "test status is required")
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.ensureNameUnique(req.StatusName, 0); err != nil {
		return nil, err
	}

	status := &models.TestStatus{StatusName: req.StatusName, Description: req.Description}
	if err := s.repo.Create(status); err != nil {
		return nil, apperrors.NewStoreError("failed to create test status", err)
	}

	logger.New().WithField("status_id", status.ID).Info("test status created")
	return s.toResponse(status), nil
}

// Update replaces every field of an existing test status
func (s *TestStatusService) Update(id int64, req *TestStatusRequest) (*TestStatusResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "test status is required")
	}
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	status, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestStatusNotFound, "failed to get test status")
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameUnique(req.StatusName, id); err != nil {
		return nil, err
	}

	status.StatusName = req.StatusName
	status.Description = req.Description
	if err := s.repo.Update(status); err != nil {
		return nil, apperrors.NewStoreError("failed to update test status", err)
	}
	return s.toResponse(status), nil
}

// Delete deletes a status no test case refers to through its status id
func (s *TestStatusService) Delete(id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	if _, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestStatusNotFound, "failed to get test status"); err != nil {
		return err
	}
	if err := ensureNoDependents(s.testCases.CountByStatusID, id, apperrors.ErrTestStatusInUse, "failed to count test cases by status"); err != nil {
		if apperrors.IsConflict(err) {
			logger.New().WithField("status_id", id).Warn("test status delete rejected: status in use")
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStoreError("failed to delete test status", err)
	}
	return nil
}

func (s *TestStatusService) ensureNameUnique(name string, excludeID int64) error {
	statuses, err := s.repo.GetAll()
	if err != nil {
		return apperrors.NewStoreError("failed to check existing status names", err)
	}
	return ensureNameUnique(name, statuses, excludeID, func(st models.TestStatus) (int64, string) {
		return st.ID, st.StatusName
	}, apperrors.ErrTestStatusExists)
}

func (s *TestStatusService) toResponse(status *models.TestStatus) *TestStatusResponse {
	return &TestStatusResponse{
		ID:          status.ID,
		StatusName:  status.StatusName,
		Description: status.Description,
		CreatedAt:   status.CreatedAt,
		UpdatedAt:   status.UpdatedAt,
	}
}
