package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	GetAll() ([]ProjectResponse, error)
	GetByID(id int64) (*ProjectResponse, error)
	Create(req *ProjectRequest) (*ProjectResponse, error)
	Update(id int64, req *ProjectRequest) (*ProjectResponse, error)
	Delete(id int64) error
	DeleteCascade(id int64) (*CascadeDeleteResponse, error)
}

// ComponentServiceInterface defines the interface for component service
type ComponentServiceInterface interface {
	GetAll() ([]ComponentResponse, error)
	GetByProjectID(projectID int64) ([]ComponentResponse, error)
	GetByID(id int64) (*ComponentResponse, error)
	Create(req *ComponentRequest) (*ComponentResponse, error)
	Update(id int64, req *ComponentRequest) (*ComponentResponse, error)
	Delete(id int64) error
}

// TestCaseServiceInterface defines the interface for test case service
type TestCaseServiceInterface interface {
	GetAll() ([]TestCaseResponse, error)
	GetByID(id int64) (*TestCaseResponse, error)
	GetByComponentID(componentID int64) ([]TestCaseResponse, error)
	GetByAssignedUser(userID int64) ([]TestCaseResponse, error)
	GetByStatusID(statusID int64) ([]TestCaseResponse, error)
	Create(req *TestCaseRequest) (*TestCaseResponse, error)
	Update(id int64, req *TestCaseRequest) (*TestCaseResponse, error)
	Delete(id int64) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetAll() ([]UserResponse, error)
	GetByRoleID(roleID int64) ([]UserResponse, error)
	GetByID(id int64) (*UserResponse, error)
	Create(req *UserRequest) (*UserResponse, error)
	Update(id int64, req *UserRequest) (*UserResponse, error)
	Delete(id int64) error
}

// UserRoleServiceInterface defines the interface for user role service
type UserRoleServiceInterface interface {
	GetAll() ([]UserRoleResponse, error)
	GetByID(id int64) (*UserRoleResponse, error)
	Create(req *UserRoleRequest) (*UserRoleResponse, error)
	Update(id int64, req *UserRoleRequest) (*UserRoleResponse, error)
	Delete(id int64) error
}

// TestStatusServiceInterface defines the interface for test status service
type TestStatusServiceInterface interface {
	GetAll() ([]TestStatusResponse, error)
	GetByID(id int64) (*TestStatusResponse, error)
	Create(req *TestStatusRequest) (*TestStatusResponse, error)
	Update(id int64, req *TestStatusRequest) (*TestStatusResponse, error)
	Delete(id int64) error
}

// TestReportServiceInterface defines the interface for test report service
type TestReportServiceInterface interface {
	GetAll() ([]TestReportResponse, error)
	GetByTestCaseID(testCaseID int64) ([]TestReportResponse, error)
	GetByID(id int64) (*TestReportResponse, error)
	Create(req *TestReportRequest) (*TestReportResponse, error)
	Update(id int64, req *TestReportRequest) (*TestReportResponse, error)
	Delete(id int64) error
}

// TestHistoryServiceInterface defines the interface for test history service
type TestHistoryServiceInterface interface {
	GetAll() ([]TestHistoryResponse, error)
	GetByTestCaseID(testCaseID int64) ([]TestHistoryResponse, error)
	GetByUserID(userID int64) ([]TestHistoryResponse, error)
	GetByID(id int64) (*TestHistoryResponse, error)
	Create(req *TestHistoryRequest) (*TestHistoryResponse, error)
	Update(id int64, req *TestHistoryRequest) (*TestHistoryResponse, error)
	Delete(id int64) error
}
