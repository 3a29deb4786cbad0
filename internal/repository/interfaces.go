package repository

import (
	"test-manager-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	ProjectReader
	Create(project *models.Project) error
	GetAll() ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id int64) error
}

// ComponentRepositoryInterface defines the interface for component repository operations
type ComponentRepositoryInterface interface {
	ComponentReader
	ComponentFinder
	Create(component *models.Component) error
	GetAll() ([]models.Component, error)
	Update(component *models.Component) error
	Delete(id int64) error
}

// TestCaseRepositoryInterface defines the interface for test case repository operations
type TestCaseRepositoryInterface interface {
	TestCaseReader
	TestCaseFinder
	Create(testCase *models.TestCase) error
	GetAll() ([]models.TestCase, error)
	Update(testCase *models.TestCase) error
	Delete(id int64) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	UserReader
	UserFinder
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id int64) error
}

// UserRoleRepositoryInterface defines the interface for user role repository operations
type UserRoleRepositoryInterface interface {
	UserRoleReader
	Create(role *models.UserRole) error
	GetAll() ([]models.UserRole, error)
	Update(role *models.UserRole) error
	Delete(id int64) error
}

// TestStatusRepositoryInterface defines the interface for test status repository operations
type TestStatusRepositoryInterface interface {
	TestStatusReader
	Create(status *models.TestStatus) error
	GetAll() ([]models.TestStatus, error)
	Update(status *models.TestStatus) error
	Delete(id int64) error
}

// TestReportRepositoryInterface defines the interface for test report repository operations
type TestReportRepositoryInterface interface {
	TestReportFinder
	GetByID(id int64) (*models.TestReport, error)
	Create(report *models.TestReport) error
	GetAll() ([]models.TestReport, error)
	Update(report *models.TestReport) error
	Delete(id int64) error
}

// TestHistoryRepositoryInterface defines the interface for test history repository operations
type TestHistoryRepositoryInterface interface {
	TestHistoryFinder
	GetByID(id int64) (*models.TestHistory, error)
	Create(entry *models.TestHistory) error
	GetAll() ([]models.TestHistory, error)
	Update(entry *models.TestHistory) error
	Delete(id int64) error
}
