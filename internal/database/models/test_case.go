package models

// TestCase is a single test owned by a component and assigned to a user.
// StatusID is the authoritative status; Status is a free-text label.
type TestCase struct {
	BaseModel
	ComponentID  int64  `json:"component_id" gorm:"not null;index"`
	AssignedUser int64  `json:"assigned_user" gorm:"not null;index"`
	StatusID     int64  `json:"status_id" gorm:"not null;index"`
	Name         string `json:"name" gorm:"size:100"`
	Description  string `json:"description" gorm:"size:500"`
	Priority     string `json:"priority" gorm:"size:50"`
	Status       string `json:"status" gorm:"size:50"`
}

// TableName returns the table name for TestCase
func (TestCase) TableName() string {
	return "test_cases"
}
