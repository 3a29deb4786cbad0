package repository

import (
	"test-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// TestStatusRepository handles database operations for test statuses
type TestStatusRepository struct {
	db *gorm.DB
}

// Ensure TestStatusRepository implements TestStatusRepositoryInterface
var _ TestStatusRepositoryInterface = (*TestStatusRepository)(nil)

// NewTestStatusRepository creates a new test status repository
func NewTestStatusRepository(db *gorm.DB) *TestStatusRepository {
	return &TestStatusRepository{db: db}
}

// Create creates a new test status
func (r *TestStatusRepository) Create(status *models.TestStatus) error {
	return r.db.Create(status).Error
}

// GetByID retrieves a test status by ID
func (r *TestStatusRepository) GetByID(id int64) (*models.TestStatus, error) {
	var status models.TestStatus
	if err := r.db.First(&status, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// GetAll retrieves all test statuses ordered by ID
func (r *TestStatusRepository) GetAll() ([]models.TestStatus, error) {
	var statuses []models.TestStatus
	if err := r.db.Order("id ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// Update updates a test status
func (r *TestStatusRepository) Update(status *models.TestStatus) error {
	return r.db.Save(status).Error
}

// Delete deletes a test status
func (r *TestStatusRepository) Delete(id int64) error {
	return r.db.Delete(&models.TestStatus{}, "id = ?", id).Error
}
