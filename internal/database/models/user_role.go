package models

// UserRole groups users by responsibility
type UserRole struct {
	BaseModel
	RoleName    string `json:"role_name" gorm:"not null;size:50"`
	Description string `json:"description" gorm:"size:200"`
}

// TableName returns the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}
