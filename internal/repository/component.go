package repository

import (
	"test-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// ComponentRepository handles database operations for components
type ComponentRepository struct {
	db *gorm.DB
}

// Ensure ComponentRepository implements ComponentRepositoryInterface
var _ ComponentRepositoryInterface = (*ComponentRepository)(nil)

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Create creates a new component
func (r *ComponentRepository) Create(component *models.Component) error {
	return r.db.Create(component).Error
}

// GetByID retrieves a component by ID
func (r *ComponentRepository) GetByID(id int64) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetAll retrieves all components ordered by ID
func (r *ComponentRepository) GetAll() ([]models.Component, error) {
	var components []models.Component
	if err := r.db.Order("id ASC").Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

// GetByProjectID retrieves all components owned by a project
func (r *ComponentRepository) GetByProjectID(projectID int64) ([]models.Component, error) {
	var components []models.Component
	err := r.db.Where("project_id = ?", projectID).Order("id ASC").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// CountByProjectID returns the number of components owned by a project
func (r *ComponentRepository) CountByProjectID(projectID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Component{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// Update updates a component
func (r *ComponentRepository) Update(component *models.Component) error {
	return r.db.Save(component).Error
}

// Delete deletes a component
func (r *ComponentRepository) Delete(id int64) error {
	return r.db.Delete(&models.Component{}, "id = ?", id).Error
}
