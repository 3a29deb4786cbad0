package service

import (
	"time"

	"test-manager-backend/internal/database/models"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/logger"
	"test-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TestReportService handles business logic for test execution reports
type TestReportService struct {
	repo      repository.TestReportRepositoryInterface
	testCases repository.TestCaseReader
	validator *validator.Validate
}

var _ TestReportServiceInterface = (*TestReportService)(nil)

// NewTestReportService creates a new test report service
func NewTestReportService(repo repository.TestReportRepositoryInterface, testCases repository.TestCaseReader, validator *validator.Validate) *TestReportService {
	return &TestReportService{
		repo:      repo,
		testCases: testCases,
		validator: validator,
	}
}

// TestReportRequest represents the payload for creating or updating a report.
// ExecutionDate must be set.
type TestReportRequest struct {
	TestCaseID    int64     `json:"test_case_id" validate:"gt=0"`
	Result        string    `json:"result" validate:"notblank,max=50"`
	ExecutionDate time.Time `json:"execution_date"`
	Notes         string    `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// TestReportResponse represents the response data for a report
type TestReportResponse struct {
	ID            int64     `json:"id"`
	TestCaseID    int64     `json:"test_case_id"`
	Result        string    `json:"result"`
	ExecutionDate time.Time `json:"execution_date"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GetAll retrieves all test reports
func (s *TestReportService) GetAll() ([]TestReportResponse, error) {
	reports, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get test reports", err)
	}
	return s.toResponses(reports), nil
}

// GetByTestCaseID retrieves the reports of a test case, latest execution first
func (s *TestReportService) GetByTestCaseID(testCaseID int64) ([]TestReportResponse, error) {
	if err := validateID("test_case_id", testCaseID); err != nil {
		return nil, err
	}
	if _, err := ensureExists(s.testCases.GetByID, testCaseID, apperrors.ErrTestCaseNotFound, "failed to get test case"); err != nil {
		return nil, err
	}

	reports, err := s.repo.GetByTestCaseID(testCaseID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get test reports by test case", err)
	}
	return s.toResponses(reports), nil
}

// GetByID retrieves a test report by ID
func (s *TestReportService) GetByID(id int64) (*TestReportResponse, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	report, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestReportNotFound, "failed to get test report")
	if err != nil {
		return nil, err
	}
	return s.toResponse(report), nil
}

// Create records a new execution of a test case
func (s *TestReportService) Create(req *TestReportRequest) (*TestReportResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "test report is required")
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := ensureExists(s.testCases.GetByID, req.TestCaseID, apperrors.ErrTestCaseNotFound, "failed to get test case"); err != nil {
		return nil, err
	}

	report := &models.TestReport{}
	s.apply(report, req)
	if err := s.repo.Create(report); err != nil {
		return nil, apperrors.NewStoreError("failed to create test report", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"report_id":    report.ID,
		"test_case_id": report.TestCaseID,
		"result":       report.Result,
	}).Info("test report created")

	return s.toResponse(report), nil
}

// Update replaces every field of an existing test report
func (s *TestReportService) Update(id int64, req *TestReportRequest) (*TestReportResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "test report is required")
	}
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	report, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestReportNotFound, "failed to get test report")
	if err != nil {
		return nil, err
	}
	if _, err := ensureExists(s.testCases.GetByID, req.TestCaseID, apperrors.ErrTestCaseNotFound, "failed to get test case"); err != nil {
		return nil, err
	}

	s.apply(report, req)
	if err := s.repo.Update(report); err != nil {
		return nil, apperrors.NewStoreError("failed to update test report", err)
	}
	return s.toResponse(report), nil
}

// Delete deletes a test report
func (s *TestReportService) Delete(id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	if _, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestReportNotFound, "failed to get test report"); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStoreError("failed to delete test report", err)
	}
	return nil
}

func (s *TestReportService) apply(report *models.TestReport, req *TestReportRequest) {
	report.TestCaseID = req.TestCaseID
	report.Result = req.Result
	report.ExecutionDate = req.ExecutionDate
	report.Notes = req.Notes
}

func (s *TestReportService) toResponses(reports []models.TestReport) []TestReportResponse {
	responses := make([]TestReportResponse, len(reports))
	for i := range reports {
		responses[i] = *s.toResponse(&reports[i])
	}
	return responses
}

func (s *TestReportService) toResponse(report *models.TestReport) *TestReportResponse {
	return &TestReportResponse{
		ID:            report.ID,
		TestCaseID:    report.TestCaseID,
		Result:        report.Result,
		ExecutionDate: report.ExecutionDate,
		Notes:         report.Notes,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
	}
}
