package service

import (
	"time"

	"test-manager-backend/internal/database/models"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/logger"
	"test-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// UserRoleService handles business logic for user roles
type UserRoleService struct {
	repo      repository.UserRoleRepositoryInterface
	users     repository.UserFinder
	validator *validator.Validate
}

var _ UserRoleServiceInterface = (*UserRoleService)(nil)

// NewUserRoleService creates a new user role service
func NewUserRoleService(repo repository.UserRoleRepositoryInterface, users repository.UserFinder, validator *validator.Validate) *UserRoleService {
	return &UserRoleService{
		repo:      repo,
		users:     users,
		validator: validator,
	}
}

// UserRoleRequest represents the payload for creating or updating a role
type UserRoleRequest struct {
	RoleName    string `json:"role_name" validate:"notblank,max=50"`
	Description string `json:"description,omitempty" validate:"omitempty,max=200"`
}

// UserRoleResponse represents the response data for a role
type UserRoleResponse struct {
	ID          int64     `json:"id"`
	RoleName    string    `json:"role_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetAll retrieves all user roles
func (s *UserRoleService) GetAll() ([]UserRoleResponse, error) {
	roles, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewStoreError("failed to get user roles", err)
	}

	responses := make([]UserRoleResponse, len(roles))
	for i := range roles {
		responses[i] = *s.toResponse(&roles[i])
	}
	return responses, nil
}

// GetByID retrieves a user role by ID
func (s *UserRoleService) GetByID(id int64) (*UserRoleResponse, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	role, err := ensureExists(s.repo.GetByID, id, apperrors.ErrUserRoleNotFound, "failed to get user role")
	if err != nil {
		return nil, err
	}
	return s.toResponse(role), nil
}

// Create creates a new user role
func (s *UserRoleService) Create(req *UserRoleRequest) (*UserRoleResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "user role is required")
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.ensureNameUnique(req.RoleName, 0); err != nil {
		return nil, err
	}

	role := &models.UserRole{RoleName: req.RoleName, Description: req.Description}
	if err := s.repo.Create(role); err != nil {
		return nil, apperrors.NewStoreError("failed to create user role", err)
	}

	logger.New().WithField("role_id", role.ID).Info("user role created")
	return s.toResponse(role), nil
}

// Update replaces every field of an existing user role
func (s *UserRoleService) Update(id int64, req *UserRoleRequest) (*UserRoleResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("", "user role is required")
	}
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	role, err := ensureExists(s.repo.GetByID, id, apperrors.ErrUserRoleNotFound, "failed to get user role")
	if err != nil {
		return nil, err
	}
	if err := s.ensureNameUnique(req.RoleName, id); err != nil {
		return nil, err
	}

	role.RoleName = req.RoleName
	role.Description = req.Description
	if err := s.repo.Update(role); err != nil {
		return nil, apperrors.NewStoreError("failed to update user role", err)
	}
	return s.toResponse(role), nil
}

// Delete deletes a role that no user holds
func (s *UserRoleService) Delete(id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	if _, err := ensureExists(s.repo.GetByID, id, apperrors.ErrUserRoleNotFound, "failed to get user role"); err != nil {
		return err
	}
	if err := ensureNoDependents(s.users.CountByRoleID, id, apperrors.ErrUserRoleHasUsers, "failed to count role users"); err != nil {
		if apperrors.IsConflict(err) {
			logger.New().WithField("role_id", id).Warn("user role delete rejected: users still assigned")
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return apperrors.NewStoreError("failed to delete user role", err)
	}
	return nil
}

func (s *UserRoleService) ensureNameUnique(name string, excludeID int64) error {
	roles, err := s.repo.GetAll()
	if err != nil {
		return apperrors.NewStoreError("failed to check existing role names", err)
	}
	return ensureNameUnique(name, roles, excludeID, func(r models.UserRole) (int64, string) {
		return r.ID, r.RoleName
	}, apperrors.ErrUserRoleExists)
}

func (s *UserRoleService) toResponse(role *models.UserRole) *UserRoleResponse {
	return &UserRoleResponse{
		ID:          role.ID,
		RoleName:    role.RoleName,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}
