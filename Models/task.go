package Models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityMedium   = "Medium"
	PriorityLow      = "Low"
)

const (
	StatusToDo        = "To Do"
	StatusInProgress  = "In Progress"
	StatusUnderReview = "Under Review"
	StatusCompleted   = "Completed"
)

// ValidPriority reports whether p is one of the four known priorities.
func ValidPriority(p string) bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the four assignment states.
func ValidStatus(s string) bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusUnderReview, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	gorm.Model
	Title          string         `json:"title" gorm:"size:255;not null"`
	Description    string         `json:"description" gorm:"type:text"`
	Priority       string         `json:"priority" gorm:"size:20;not null;index"`
	DueDate        time.Time      `json:"due_date" gorm:"not null;index"`
	StartDate      *time.Time     `json:"start_date"`
	EstimatedHours float64        `json:"estimated_hours"`
	Labels         datatypes.JSON `json:"labels,omitempty"`
	DepartmentID   uint           `json:"department_id" gorm:"not null;index"`
	CreatedBy      uint           `json:"created_by" gorm:"not null;index"`
	TemplateID     *uint          `json:"template_id"`

	Assignments  []TaskAssignment `json:"assignments,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Dependencies []TaskDependency `json:"dependencies,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

type TaskTemplate struct {
	gorm.Model
	Name            string         `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Description     string         `json:"description" gorm:"type:text"`
	DefaultPriority string         `json:"default_priority" gorm:"size:20;not null;default:Medium"`
	EstimatedHours  float64        `json:"estimated_hours"`
	Checklist       datatypes.JSON `json:"checklist,omitempty"`
}
