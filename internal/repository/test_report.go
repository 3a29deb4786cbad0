package repository

import (
	"test-manager-backend/internal/database/models"

	"gorm.io/gorm"
)

// TestReportRepository handles database operations for test reports
type TestReportRepository struct {
	db *gorm.DB
}

// Ensure TestReportRepository implements TestReportRepositoryInterface
var _ TestReportRepositoryInterface = (*TestReportRepository)(nil)

// NewTestReportRepository creates a new test report repository
func NewTestReportRepository(db *gorm.DB) *TestReportRepository {
	return &TestReportRepository{db: db}
}

// Create creates a new test report
func (r *TestReportRepository) Create(report *models.TestReport) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a test report by ID
func (r *TestReportRepository) GetByID(id int64) (*models.TestReport, error) {
	var report models.TestReport
	if err := r.db.First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// GetAll retrieves all test reports, most recent execution first
func (r *TestReportRepository) GetAll() ([]models.TestReport, error) {
	var reports []models.TestReport
	if err := r.db.Order("execution_date DESC, id DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// GetByTestCaseID retrieves the reports of a test case, most recent execution first
func (r *TestReportRepository) GetByTestCaseID(testCaseID int64) ([]models.TestReport, error) {
	var reports []models.TestReport
	err := r.db.Where("test_case_id = ?", testCaseID).
		Order("execution_date DESC, id DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Update updates a test report
func (r *TestReportRepository) Update(report *models.TestReport) error {
	return r.db.Save(report).Error
}

// Delete deletes a test report
func (r *TestReportRepository) Delete(id int64) error {
	return r.db.Delete(&models.TestReport{}, "id = ?", id).Error
}
