package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"test-manager-backend/internal/database/models"
)

var seq atomic.Int64

// next returns a process-unique suffix for names that must not collide
func next() int64 {
	return seq.Add(1)
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Project{
		Name:        fmt.Sprintf("Project %d", next()),
		Description: "A test project",
		StartDate:   start,
		EndDate:     start.AddDate(0, 6, 0),
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	p := f.Create()
	p.Name = name
	return p
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test Component owned by projectID
func (f *ComponentFactory) Create(projectID int64) *models.Component {
	return &models.Component{
		ProjectID:   projectID,
		Name:        fmt.Sprintf("Component %d", next()),
		Description: "A test component",
	}
}

// UserRoleFactory provides methods to create test UserRole data
type UserRoleFactory struct{}

// NewUserRoleFactory creates a new UserRoleFactory
func NewUserRoleFactory() *UserRoleFactory {
	return &UserRoleFactory{}
}

// Create creates a test UserRole with default values
func (f *UserRoleFactory) Create() *models.UserRole {
	return &models.UserRole{
		RoleName:    fmt.Sprintf("Role %d", next()),
		Description: "A test role",
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User without a role
func (f *UserFactory) Create() *models.User {
	n := next()
	return &models.User{
		Name:     fmt.Sprintf("Tester %d", n),
		Email:    fmt.Sprintf("tester%d@test.com", n),
		Password: "secret",
	}
}

// WithRole creates a test User holding roleID
func (f *UserFactory) WithRole(roleID int64) *models.User {
	u := f.Create()
	u.RoleID = &roleID
	return u
}

// TestStatusFactory provides methods to create test TestStatus data
type TestStatusFactory struct{}

// NewTestStatusFactory creates a new TestStatusFactory
func NewTestStatusFactory() *TestStatusFactory {
	return &TestStatusFactory{}
}

// Create creates a test TestStatus with default values
func (f *TestStatusFactory) Create() *models.TestStatus {
	return &models.TestStatus{
		StatusName:  fmt.Sprintf("Status %d", next()),
		Description: "A test status",
	}
}

// TestCaseFactory provides methods to create test TestCase data
type TestCaseFactory struct{}

// NewTestCaseFactory creates a new TestCaseFactory
func NewTestCaseFactory() *TestCaseFactory {
	return &TestCaseFactory{}
}

// Create creates a test TestCase referencing the given rows
func (f *TestCaseFactory) Create(componentID, userID, statusID int64) *models.TestCase {
	return &models.TestCase{
		ComponentID:  componentID,
		AssignedUser: userID,
		StatusID:     statusID,
		Name:         fmt.Sprintf("Test case %d", next()),
		Description:  "Verifies something",
		Priority:     "Medium",
		Status:       "Open",
	}
}

// TestReportFactory provides methods to create test TestReport data
type TestReportFactory struct{}

// NewTestReportFactory creates a new TestReportFactory
func NewTestReportFactory() *TestReportFactory {
	return &TestReportFactory{}
}

// Create creates a test TestReport for testCaseID executed at executedAt
func (f *TestReportFactory) Create(testCaseID int64, executedAt time.Time) *models.TestReport {
	return &models.TestReport{
		TestCaseID:    testCaseID,
		Result:        "Passed",
		ExecutionDate: executedAt,
		Notes:         "automated run",
	}
}

// TestHistoryFactory provides methods to create test TestHistory data
type TestHistoryFactory struct{}

// NewTestHistoryFactory creates a new TestHistoryFactory
func NewTestHistoryFactory() *TestHistoryFactory {
	return &TestHistoryFactory{}
}

// Create creates a test TestHistory entry recorded at at
func (f *TestHistoryFactory) Create(testCaseID, userID int64, at time.Time) *models.TestHistory {
	return &models.TestHistory{
		TestCaseID: testCaseID,
		UserID:     userID,
		Action:     "StatusChanged",
		Details:    "Open -> Passed",
		Timestamp:  at,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Project     *ProjectFactory
	Component   *ComponentFactory
	UserRole    *UserRoleFactory
	User        *UserFactory
	TestStatus  *TestStatusFactory
	TestCase    *TestCaseFactory
	TestReport  *TestReportFactory
	TestHistory *TestHistoryFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:     NewProjectFactory(),
		Component:   NewComponentFactory(),
		UserRole:    NewUserRoleFactory(),
		User:        NewUserFactory(),
		TestStatus:  NewTestStatusFactory(),
		TestCase:    NewTestCaseFactory(),
		TestReport:  NewTestReportFactory(),
		TestHistory: NewTestHistoryFactory(),
	}
}
