package repository

import (
	"test-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// TestCaseRepository handles database operations for test cases
type TestCaseRepository struct {
	db *gorm.DB
}

// Ensure TestCaseRepository implements TestCaseRepositoryInterface
var _ TestCaseRepositoryInterface = (*TestCaseRepository)(nil)

// NewTestCaseRepository creates a new test case repository
func NewTestCaseRepository(db *gorm.DB) *TestCaseRepository {
	return &TestCaseRepository{db: db}
}

// Create creates a new test case
func (r *TestCaseRepository) Create(testCase *models.TestCase) error {
	return r.db.Create(testCase).Error
}

// GetByID retrieves a test case by ID
func (r *TestCaseRepository) GetByID(id int64) (*models.TestCase, error) {
	var testCase models.TestCase
	err := r.db.First(&testCase, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &testCase, nil
}

// GetAll retrieves all test cases ordered by ID
func (r *TestCaseRepository) GetAll() ([]models.TestCase, error) {
	var testCases []models.TestCase
	if err := r.db.Order("id ASC").Find(&testCases).Error; err != nil {
		return nil, err
	}
	return testCases, nil
}

// GetByComponentID retrieves all test cases owned by a component
func (r *TestCaseRepository) GetByComponentID(componentID int64) ([]models.TestCase, error) {
	return r.findBy("component_id", componentID)
}

// GetByAssignedUser retrieves all test cases assigned to a user
func (r *TestCaseRepository) GetByAssignedUser(userID int64) ([]models.TestCase, error) {
	return r.findBy("assigned_user", userID)
}

// GetByStatusID retrieves all test cases in a status
func (r *TestCaseRepository) GetByStatusID(statusID int64) ([]models.TestCase, error) {
	return r.findBy("status_id", statusID)
}

// CountByComponentID returns the number of test cases owned by a component
func (r *TestCaseRepository) CountByComponentID(componentID int64) (int64, error) {
	return r.countBy("component_id", componentID)
}

// CountByAssignedUser returns the number of test cases assigned to a user
func (r *TestCaseRepository) CountByAssignedUser(userID int64) (int64, error) {
	return r.countBy("assigned_user", userID)
}

// CountByStatusID returns the number of test cases referencing a status
func (r *TestCaseRepository) CountByStatusID(statusID int64) (int64, error) {
	return r.countBy("status_id", statusID)
}

// Update updates a test case
func (r *TestCaseRepository) Update(testCase *models.TestCase) error {
	return r.db.Save(testCase).Error
}

// Delete deletes a test case
func (r *TestCaseRepository) Delete(id int64) error {
	return r.db.Delete(&models.TestCase{}, "id = ?", id).Error
}

// column is always one of the constant FK column names above
func (r *TestCaseRepository) findBy(column string, id int64) ([]models.TestCase, error) {
	var testCases []models.TestCase
	err := r.db.Where(column+" = ?", id).Order("id ASC").Find(&testCases).Error
	if err != nil {
		return nil, err
	}
	return testCases, nil
}

func (r *TestCaseRepository) countBy(column string, id int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.TestCase{}).Where(column+" = ?", id).Count(&count).Error
	return count, err
}
