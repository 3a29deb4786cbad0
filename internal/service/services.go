package service

import (
	"test-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Services groups the entity services used by the HTTP API and the CLI
type Services struct {
	Project     ProjectServiceInterface
	Component   ComponentServiceInterface
	TestCase    TestCaseServiceInterface
	User        UserServiceInterface
	UserRole    UserRoleServiceInterface
	TestStatus  TestStatusServiceInterface
	TestReport  TestReportServiceInterface
	TestHistory TestHistoryServiceInterface
}

// NewServices wires every service to its repositories. A nil validator is
// replaced by NewValidator().
func NewServices(repos *repository.Repositories, v *validator.Validate) *Services {
	if v == nil {
		v = NewValidator()
	}

	return &Services{
		Project:     NewProjectService(repos.Project, repos.Component, repos.TestCase, repos.TestReport, v),
		Component:   NewComponentService(repos.Component, repos.Project, repos.TestCase, v),
		TestCase:    NewTestCaseService(repos.TestCase, repos.Component, repos.User, repos.TestStatus, v),
		User:        NewUserService(repos.User, repos.UserRole, repos.TestCase, v),
		UserRole:    NewUserRoleService(repos.UserRole, repos.User, v),
		TestStatus:  NewTestStatusService(repos.TestStatus, repos.TestCase, v),
		TestReport:  NewTestReportService(repos.TestReport, repos.TestCase, v),
		TestHistory: NewTestHistoryService(repos.TestHistory, repos.TestCase, repos.User, v),
	}
}
