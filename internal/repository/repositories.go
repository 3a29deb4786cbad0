package repository

import "gorm.io/gorm"

// Repositories groups one repository per entity kind over a shared handle
type Repositories struct {
	Project     *ProjectRepository
	Component   *ComponentRepository
	TestCase    *TestCaseRepository
	User        *UserRepository
	UserRole    *UserRoleRepository
	TestStatus  *TestStatusRepository
	TestReport  *TestReportRepository
	TestHistory *TestHistoryRepository
}

// NewRepositories builds every repository over db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Project:     NewProjectRepository(db),
		Component:   NewComponentRepository(db),
		TestCase:    NewTestCaseRepository(db),
		User:        NewUserRepository(db),
		UserRole:    NewUserRoleRepository(db),
		TestStatus:  NewTestStatusRepository(db),
		TestReport:  NewTestReportRepository(db),
		TestHistory: NewTestHistoryRepository(db),
	}
}
