package models

// User is a tester that test cases can be assigned to
type User struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:100"`
	Email    string `json:"email" gorm:"not null;size:100;index"`
	Password string `json:"-" gorm:"not null;size:100"`
	RoleID   *int64 `json:"role_id,omitempty" gorm:"index"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
