package repository

import (
	"test-manager-backend/internal/database/models"
)

// Capability interfaces let a service depend only on the lookups it performs
// against a sibling entity. Every GetByID returns gorm.ErrRecordNotFound when
// the row does not exist.

// ProjectReader resolves projects by id
type ProjectReader interface {
	GetByID(id int64) (*models.Project, error)
}

// ComponentReader resolves components by id
type ComponentReader interface {
	GetByID(id int64) (*models.Component, error)
}

// TestCaseReader resolves test cases by id
type TestCaseReader interface {
	GetByID(id int64) (*models.TestCase, error)
}

// UserReader resolves users by id
type UserReader interface {
	GetByID(id int64) (*models.User, error)
}

// UserRoleReader resolves user roles by id
type UserRoleReader interface {
	GetByID(id int64) (*models.UserRole, error)
}

// TestStatusReader resolves test statuses by id
type TestStatusReader interface {
	GetByID(id int64) (*models.TestStatus, error)
}

// ComponentFinder lists and counts components owned by a project
type ComponentFinder interface {
	GetByProjectID(projectID int64) ([]models.Component, error)
	CountByProjectID(projectID int64) (int64, error)
}

// TestCaseFinder lists and counts test cases by each of their foreign keys
type TestCaseFinder interface {
	GetByComponentID(componentID int64) ([]models.TestCase, error)
	GetByAssignedUser(userID int64) ([]models.TestCase, error)
	GetByStatusID(statusID int64) ([]models.TestCase, error)
	CountByComponentID(componentID int64) (int64, error)
	CountByAssignedUser(userID int64) (int64, error)
	CountByStatusID(statusID int64) (int64, error)
}

// UserFinder lists and counts users holding a role
type UserFinder interface {
	GetByRoleID(roleID int64) ([]models.User, error)
	CountByRoleID(roleID int64) (int64, error)
}

// TestReportFinder lists reports of a test case, newest execution first
type TestReportFinder interface {
	GetByTestCaseID(testCaseID int64) ([]models.TestReport, error)
}

// TestHistoryFinder lists history entries, newest first
type TestHistoryFinder interface {
	GetByTestCaseID(testCaseID int64) ([]models.TestHistory, error)
	GetByUserID(userID int64) ([]models.TestHistory, error)
}
