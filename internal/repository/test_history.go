package repository

import (
	"test-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// TestHistoryRepository handles database operations for test history entries
type TestHistoryRepository struct {
	db *gorm.DB
}

// Ensure TestHistoryRepository implements TestHistoryRepositoryInterface
var _ TestHistoryRepositoryInterface = (*TestHistoryRepository)(nil)

// NewTestHistoryRepository creates a new test history repository
func NewTestHistoryRepository(db *gorm.DB) *TestHistoryRepository {
	return &TestHistoryRepository{db: db}
}

// Create creates a new history entry
func (r *TestHistoryRepository) Create(entry *models.TestHistory) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a history entry by ID
func (r *TestHistoryRepository) GetByID(id int64) (*models.TestHistory, error) {
	var entry models.TestHistory
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetAll retrieves all history entries, newest first
func (r *TestHistoryRepository) GetAll() ([]models.TestHistory, error) {
	var entries []models.TestHistory
	if err := r.db.Order("timestamp DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByTestCaseID retrieves the history of a test case, newest first
func (r *TestHistoryRepository) GetByTestCaseID(testCaseID int64) ([]models.TestHistory, error) {
	var entries []models.TestHistory
	err := r.db.Where("test_case_id = ?", testCaseID).Order("timestamp DESC, id DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByUserID retrieves the changes made by a user, newest first
func (r *TestHistoryRepository) GetByUserID(userID int64) ([]models.TestHistory, error) {
	var entries []models.TestHistory
	err := r.db.Where("user_id = ?", userID).Order("timestamp DESC, id DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Update updates a history entry
func (r *TestHistoryRepository) Update(entry *models.TestHistory) error {
	return r.db.Save(entry).Error
}

// Delete deletes a history entry
func (r *TestHistoryRepository) Delete(id int64) error {
	return r.db.Delete(&models.TestHistory{}, "id = ?", id).Error
}
