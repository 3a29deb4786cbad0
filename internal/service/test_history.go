package service

import (
	"time"

	"test-manager-backend/internal/database/models"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/logger"
	"test-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TestHistoryService handles business logic for test history entries
type TestHistoryService struct {
	repo      repository.TestHistoryRepositoryInterface
	testCases repository.TestCaseReader
	users     repository.UserReader
	validator *validator.Validate
	now       func() time.Time
}

var _ TestHistoryServiceInterface = (*TestHistoryService)(nil)

// NewTestHistoryService creates a new test history service
func NewTestHistoryService(
	repo repository.TestHistoryRepositoryInterface,
	testCases repository.TestCaseReader,
	users repository.UserReader,
	validator *validator.Validate,
) *TestHistoryService {
	return &TestHistoryService{
		repo:      repo,
		testCases: testCases,
		users:     users,
		validator: validator,
		now:       time.Now,
	}
}

// TestHistoryRequest represents the payload for creating or updating a
// history entry. A zero Timestamp is replaced by the creation time.
type TestHistoryRequest struct {
	TestCaseID int64     `json:"test_case_id" validate:"gt=0"`
	UserID     int64     `json:"user_id" validate:"gt=0"`
	Action     string    `json:"action" validate:"notblank,max=50"`
	Details    string    `json:"details,omitempty" validate:"omitempty,max=1000"`
	Timestamp  time.Time `json:"timestamp,omitempty"`
}

// TestHistoryResponse represents the response data for a history entry
type TestHistoryResponse struct {
	ID         int64     `json:"id"`
	TestCaseID int64     `json:"test_case_id"`
	UserID     int64     `json:"user_id"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	Timestamp  time.Time `json:"timestamp"`
}

// GetAll retrieves all history entries
func (s *TestHistoryService) GetAll() ([]TestHistoryResponse, error) {
	entries, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get test history", err)
	}
	return s.toResponses(entries), nil
}

// GetByTestCaseID retrieves the history of a test case, newest first
func (s *TestHistoryService) GetByTestCaseID(testCaseID int64) ([]TestHistoryResponse, error) {
	if err := validateID("test_case_id", testCaseID); err != nil {
		return nil, err
	}
	if _, err := ensureExists(s.testCases.GetByID, testCaseID, apperrors.ErrTestCaseNotFound, "failed to get test case"); err != nil {
		return nil, err
	}

	entries, err := s.repo.GetByTestCaseID(testCaseID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get test history by test case", err)
	}
	return s.toResponses(entries), nil
}

// GetByUserID retrieves the history entries recorded by a user, newest first
func (s *TestHistoryService) GetByUserID(userID int64) ([]TestHistoryResponse, error) {
	if err := validateID("user_id", userID); err != nil {
		return nil, err
	}
	if _, err := ensureExists(s.users.GetByID, userID, apperrors.ErrUserNotFound, "failed to get user"); err != nil {
		return nil, err
	}

	entries, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get test history by user", err)
	}
	return s.toResponses(entries), nil
}

// GetByID retrieves a history entry by ID
func (s *TestHistoryService) GetByID(id int64) (*TestHistoryResponse, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	entry, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestHistoryNotFound, "failed to get test history entry")
	if err != nil {
		return nil, err
	}
	return s.toResponse(entry), nil
}

// Create records a new history entry
func (s *TestHistoryService) Create(req *TestHistoryRequest) (*TestHistoryResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "test history entry is required")
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.ensureReferences(req); err != nil {
		return nil, err
	}

	entry := &models.TestHistory{}
	s.apply(entry, req)
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}

	if err := s.repo.Create(entry); err != nil {
		return nil, apperrors.NewStoreError("failed to create test history entry", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"history_id":   entry.ID,
		"test_case_id": entry.TestCaseID,
		"action":       entry.Action,
	}).Info("test history recorded")

	return s.toResponse(entry), nil
}

// Update replaces the fields of an existing history entry. A zero Timestamp
// keeps the stored one.
func (s *TestHistoryService) Update(id int64, req *TestHistoryRequest) (*TestHistoryResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "test history entry is required")
	}
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	entry, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestHistoryNotFound, "failed to get test history entry")
	if err != nil {
		return nil, err
	}
	if err := s.ensureReferences(req); err != nil {
		return nil, err
	}

	stored := entry.Timestamp
	s.apply(entry, req)
	if entry.Timestamp.IsZero() {
		entry.Timestamp = stored
	}

	if err := s.repo.Update(entry); err != nil {
		return nil, apperrors.NewStoreError("failed to update test history entry", err)
	}
	return s.toResponse(entry), nil
}

// Delete deletes a history entry
func (s *TestHistoryService) Delete(id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	if _, err := ensureExists(s.repo.GetByID, id, apperrors.ErrTestHistoryNotFound, "failed to get test history entry"); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStoreError("failed to delete test history entry", err)
	}
	return nil
}

// ensureReferences resolves the test case, then the user
func (s *TestHistoryService) ensureReferences(req *TestHistoryRequest) error {
	if _, err := ensureExists(s.testCases.GetByID, req.TestCaseID, apperrors.ErrTestCaseNotFound, "failed to get test case"); err != nil {
		return err
	}
	if _, err := ensureExists(s.users.GetByID, req.UserID, apperrors.ErrUserNotFound, "failed to get user"); err != nil {
		return err
	}
	return nil
}

func (s *TestHistoryService) apply(entry *models.TestHistory, req *TestHistoryRequest) {
	entry.TestCaseID = req.TestCaseID
	entry.UserID = req.UserID
	entry.Action = req.Action
	entry.Details = req.Details
	entry.Timestamp = req.Timestamp
}

func (s *TestHistoryService) toResponses(entries []models.TestHistory) []TestHistoryResponse {
	responses := make([]TestHistoryResponse, len(entries))
	for i := range entries {
		responses[i] = *s.toResponse(&entries[i])
	}
	return responses
}

func (s *TestHistoryService) toResponse(entry *models.TestHistory) *TestHistoryResponse {
	return &TestHistoryResponse{
		ID:         entry.ID,
		TestCaseID: entry.TestCaseID,
		UserID:     entry.UserID,
		Action:     entry.Action,
		Details:    entry.Details,
		Timestamp:  entry.Timestamp,
	}
}
