package models

// Component represents a testable part of a project
type Component struct {
	BaseModel
	ProjectID   int64  `json:"project_id" gorm:"not null;index"`
	Name        string `json:"name" gorm:"not null;size:100"`
	Description string `json:"description" gorm:"size:500"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}
