package model

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager
}

type User struct {
	ID           string  `gorm:"primaryKey;column:id;type:char(36)" json:"id"`
	Name         string  `gorm:"column:name;size:120;not null" json:"name"`
	Email        string  `gorm:"column:email;size:320;not null;uniqueIndex" json:"email"`
	PasswordHash string  `gorm:"column:password_hash;size:255;not null" json:"-"`
	EmployeeID   string  `gorm:"column:employee_id;size:32;not null;uniqueIndex" json:"employeeId"`
	Department   *string `gorm:"column:department;size:120" json:"department"`
	Role         Role    `gorm:"column:role;type:varchar(16);not null;default:employee" json:"role"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) View() UserView {
	return UserView{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		EmployeeID: u.EmployeeID,
		Department: u.Department,
		Role:       u.Role,
	}
}

// UserView is the directory projection joined onto attendance records.
type UserView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	EmployeeID string  `json:"employeeId"`
	Department *string `json:"department"`
	Role       Role    `json:"role,omitempty"`
}

const UnknownDepartment = "Unknown"

// DepartmentName returns the department or "" when unset.
func (v *UserView) DepartmentName() string {
	if v == nil || v.Department == nil {
		return ""
	}
	return *v.Department
}
