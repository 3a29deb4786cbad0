package models

// TestStatus is a named state a test case can be in (e.g. "Passed")
type TestStatus struct {
	BaseModel
	StatusName  string `json:"status_name" gorm:"not null;size:50"`
	Description string `json:"description" gorm:"size:200"`
}

// TableName returns the table name for TestStatus
func (TestStatus) TableName() string {
	return "test_statuses"
}
