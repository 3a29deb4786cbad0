package repository

import (
	"test-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRoleRepository handles database operations for user roles
type UserRoleRepository struct {
	db *gorm.DB
}

// Ensure UserRoleRepository implements UserRoleRepositoryInterface
var _ UserRoleRepositoryInterface = (*UserRoleRepository)(nil)

// NewUserRoleRepository creates a new user role repository
func NewUserRoleRepository(db *gorm.DB) *UserRoleRepository {
	return &UserRoleRepository{db: db}
}

// Create creates a new user role
func (r *UserRoleRepository) Create(role *models.UserRole) error {
	return r.db.Create(role).Error
}

// GetByID retrieves a user role by ID
func (r *UserRoleRepository) GetByID(id int64) (*models.UserRole, error) {
	var role models.UserRole
	if err := r.db.First(&role, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// GetAll retrieves all user roles ordered by ID
func (r *UserRoleRepository) GetAll() ([]models.UserRole, error) {
	var roles []models.UserRole
	if err := r.db.Order("id ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// Update updates a user role
func (r *UserRoleRepository) Update(role *models.UserRole) error {
	return r.db.Save(role).Error
}

// Delete deletes a user role
func (r *UserRoleRepository) Delete(id int64) error {
	return r.db.Delete(&models.UserRole{}, "id = ?", id).Error
}
