package models

import (
	"time"
)

// TestReport records one execution of a test case
type TestReport struct {
	BaseModel
	TestCaseID    int64     `json:"test_case_id" gorm:"not null;index"`
	Result        string    `json:"result" gorm:"not null;size:50"`
	ExecutionDate time.Time `json:"execution_date" gorm:"not null"`
	Notes         string    `json:"notes" gorm:"size:1000"`
}

// TableName returns the table name for TestReport
func (TestReport) TableName() string {
	return "test_reports"
}
