package Models

import (
	"gorm.io/gorm"
)

// Permission levels: 1 = personnel, 2 = manager, 3 = admin
const (
	PermissionPersonnel = 1
	PermissionManager   = 2
	PermissionAdmin     = 3
)

type User struct {
	gorm.Model
	Email        string `json:"email" gorm:"not null;uniqueIndex"`
	Name         string `json:"name" gorm:"not null"`
	Password     []byte `json:"-" gorm:"not null"`
	Permission   int    `json:"permission" gorm:"not null;default:1"`
	JobTitle     string `json:"job_title"`
	DepartmentID uint   `json:"department_id" gorm:"index"`

	Department Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
}

type Department struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null;uniqueIndex"`
	Description string `json:"description"`

	Users []User `json:"users,omitempty" gorm:"foreignKey:DepartmentID"`
	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:DepartmentID"`
}
