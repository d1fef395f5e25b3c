package Models

import (
	"time"

	"gorm.io/gorm"
)

type TaskAssignment struct {
	gorm.Model
	TaskID      uint       `json:"task_id" gorm:"not null;index:idx_task_assignee,unique"`
	AssignedTo  uint       `json:"assigned_to" gorm:"not null;index:idx_task_assignee,unique"`
	Status      string     `json:"status" gorm:"size:20;not null;default:'To Do'"`
	Progress    float64    `json:"progress" gorm:"not null;default:0"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Task     Task `json:"task,omitempty" gorm:"foreignKey:TaskID"`
	Assignee User `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo"`
}

type TaskDependency struct {
	gorm.Model
	TaskID         uint   `json:"task_id" gorm:"not null;index:idx_dependency_pair,unique"`
	DependsOn      uint   `json:"depends_on" gorm:"not null;index:idx_dependency_pair,unique"`
	DependencyType string `json:"dependency_type" gorm:"size:20;not null;default:blocks"`

	Task       Task `json:"task,omitempty" gorm:"foreignKey:TaskID"`
	Dependency Task `json:"dependency,omitempty" gorm:"foreignKey:DependsOn"`
}

const (
	DependencyBlocks   = "blocks"
	DependencyRequires = "requires"
	DependencyRelated  = "related"
)

// ValidDependencyType reports whether t is a known dependency type.
func ValidDependencyType(t string) bool {
	switch t {
	case DependencyBlocks, DependencyRequires, DependencyRelated:
		return true
	}
	return false
}
