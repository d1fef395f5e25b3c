package Models

import (
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"not null;index"`
	TaskID *uint  `json:"task_id"`
	Title  string `json:"title" gorm:"size:255;not null"`
	Body   string `json:"body" gorm:"type:text"`
	Kind   string `json:"kind" gorm:"size:30;not null;default:deadline"`
	Read   bool   `json:"read" gorm:"not null;default:false"`
}

// AuditLog is one persisted request-log entry, written by the request
// logging middleware.
type AuditLog struct {
	gorm.Model
	Timestamp time.Time `json:"timestamp" gorm:"index"`
	Method    string    `json:"method" gorm:"size:10"`
	Path      string    `json:"path" gorm:"size:500;index"`
	Status    int       `json:"status"`
	LatencyMs int64     `json:"latency_ms"`
	IP        string    `json:"ip" gorm:"size:64"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Username  string    `json:"username" gorm:"size:255"`
	UserAgent string    `json:"user_agent" gorm:"size:500"`
	Error     string    `json:"error,omitempty" gorm:"size:500"`
}
