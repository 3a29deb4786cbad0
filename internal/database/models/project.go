package models

import (
	"time"
)

// Project is the root of the ownership tree: components, their test cases and
// the test cases' reports all hang off a project
type Project struct {
	BaseModel
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"size:500"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
