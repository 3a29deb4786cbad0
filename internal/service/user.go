package service

import (
	"time"

	"test-manager-backend/internal/database/models"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/logger"
	"test-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	roles     repository.UserRoleReader
	testCases repository.TestCaseFinder
	validator *validator.Validate
}

var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(
	repo repository.UserRepositoryInterface,
	roles repository.UserRoleReader,
	testCases repository.TestCaseFinder,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		repo:      repo,
		roles:     roles,
		testCases: testCases,
		validator: validator,
	}
}

// UserRequest represents the payload for creating or updating a user.
// Password is stored as given and never returned.
type UserRequest struct {
	Name     string `json:"name" validate:"notblank,max=100"`
	Email    string `json:"email" validate:"notblank,max=100"`
	Password string `json:"password" validate:"notblank,max=100"`
	RoleID   *int64 `json:"role_id,omitempty" validate:"omitempty,gt=0"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	RoleID    *int64    `json:"role_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetAll retrieves all users
func (s *UserService) GetAll() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get users", err)
	}
	return s.toResponses(users), nil
}

// GetByRoleID retrieves the users holding a role
func (s *UserService) GetByRoleID(roleID int64) ([]UserResponse, error) {
	if err := validateID("role_id", roleID); err != nil {
		return nil, err
	}
	if _, err := ensureExists(s.roles.GetByID, roleID, apperrors.ErrUserRoleNotFound, "failed to get user role"); err != nil {
		return nil, err
	}

	users, err := s.repo.GetByRoleID(roleID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get users by role", err)
	}
	return s.toResponses(users), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id int64) (*UserResponse, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	user, err := ensureExists(s.repo.GetByID, id, apperrors.ErrUserNotFound, "failed to get user")
	if err != nil {
		return nil, err
	}
	return s.toResponse(user), nil
}

// Create creates a new user
func (s *UserService) Create(req *UserRequest) (*UserResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "user is required")
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.ensureReferences(req); err != nil {
		return nil, err
	}
	if err := s.ensureEmailUnique(req.Email, 0); err != nil {
		return nil, err
	}

	user := &models.User{}
	s.apply(user, req)
	if err := s.repo.Create(user); err != nil {
		return nil, apperrors.NewStoreError("failed to create user", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("user created")

	return s.toResponse(user), nil
}

// Update replaces every field of an existing user
func (s *UserService) Update(id int64, req *UserRequest) (*UserResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "user is required")
	}
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	user, err := ensureExists(s.repo.GetByID, id, apperrors.ErrUserNotFound, "failed to get user")
	if err != nil {
		return nil, err
	}
	if err := s.ensureReferences(req); err != nil {
		return nil, err
	}
	if err := s.ensureEmailUnique(req.Email, id); err != nil {
		return nil, err
	}

	s.apply(user, req)
	if err := s.repo.Update(user); err != nil {
		return nil, apperrors.NewStoreError("failed to update user", err)
	}
	return s.toResponse(user), nil
}

// Delete deletes a user with no assigned test cases
func (s *UserService) Delete(id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	if _, err := ensureExists(s.repo.GetByID, id, apperrors.ErrUserNotFound, "failed to get user"); err != nil {
		return err
	}
	if err := ensureNoDependents(s.testCases.CountByAssignedUser, id, apperrors.ErrUserHasTestCases, "failed to count assigned test cases"); err != nil {
		if apperrors.IsConflict(err) {
			logger.New().WithField("user_id", id).Warn("user delete rejected: test cases still assigned")
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStoreError("failed to delete user", err)
	}
	return nil
}

// ensureReferences resolves the role when one is given
func (s *UserService) ensureReferences(req *UserRequest) error {
	if req.RoleID == nil {
		return nil
	}
	_, err := ensureExists(s.roles.GetByID, *req.RoleID, apperrors.ErrUserRoleNotFound, "failed to get user role")
	return err
}

func (s *UserService) ensureEmailUnique(email string, excludeID int64) error {
	users, err := s.repo.GetAll()
	if err != nil {
		return apperrors.NewStoreError("failed to check existing user emails", err)
	}
	return ensureNameUnique(email, users, excludeID, func(u models.User) (int64, string) {
		return u.ID, u.Email
	}, apperrors.ErrUserExists)
}

func (s *UserService) apply(user *models.User, req *UserRequest) {
	user.Name = req.Name
	user.Email = req.Email
	user.Password = req.Password
	user.RoleID = req.RoleID
}

func (s *UserService) toResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *s.toResponse(&users[i])
	}
	return responses
}

// toResponse converts a user model to response, leaving the password out
func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		RoleID:    user.RoleID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
