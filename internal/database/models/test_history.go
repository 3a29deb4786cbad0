package models

import (
	"time"
)

// TestHistory is an audit entry describing a change made to a test case
type TestHistory struct {
	BaseModel
	TestCaseID int64     `json:"test_case_id" gorm:"not null;index"`
	UserID     int64     `json:"user_id" gorm:"not null;index"`
	Action     string    `json:"action" gorm:"not null;size:50"`
	Details    string    `json:"details" gorm:"size:1000"`
	Timestamp  time.Time `json:"timestamp" gorm:"not null"`
}

// TableName returns the table name for TestHistory
func (TestHistory) TableName() string {
	return "test_history"
}
