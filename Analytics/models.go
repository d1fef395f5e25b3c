package Analytics

import "time"

// TaskRecord is the slice of a task the engine needs. Callers map their
// storage rows into this shape; the engine never touches the database.
type TaskRecord struct {
	ID          uint
	Title       string
	Priority    string
	DueDate     time.Time
	StartDate   *time.Time
	CreatedAt   time.Time
	Assignments []AssignmentRecord
}

// AssignmentRecord mirrors one task assignment.
type AssignmentRecord struct {
	AssignedTo  uint
	Status      string
	Progress    float64
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// DependencyEdge is a directed dependency: DependsOn must happen before
// TaskID.
type DependencyEdge struct {
	TaskID    uint
	DependsOn uint
	Type      string
}

// OverduePriorityEntry is one bar of the overdue-by-priority chart.
type OverduePriorityEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Days  int    `json:"days"`
}

// TrendPoint is one month bucket of the completion trend.
type TrendPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// LateEntry records how late a completed task finished.
type LateEntry struct {
	TaskID   uint   `json:"task_id"`
	Title    string `json:"title"`
	DaysLate int    `json:"days_late"`
}

// TaskStats is the aggregate produced by ComputeTaskStats.
type TaskStats struct {
	Total                 int                    `json:"total"`
	Completed             int                    `json:"completed"`
	InProgress            int                    `json:"in_progress"`
	Overdue               int                    `json:"overdue"`
	ByPriority            map[string]int         `json:"by_priority"`
	ByStatus              map[string]int         `json:"by_status"`
	OverdueByPriority     []OverduePriorityEntry `json:"overdue_by_priority"`
	CompletionTrend       []TrendPoint           `json:"completion_trend"`
	AverageCompletionTime float64                `json:"average_completion_time"`
	LateDays              []LateEntry            `json:"late_days"`
}

// WorkloadSummary is one user's task rollup, counted by the caller.
type WorkloadSummary struct {
	UserID              uint    `json:"user_id"`
	UserName            string  `json:"user_name"`
	JobTitle            string  `json:"job_title,omitempty"`
	TaskCount           int     `json:"task_count"`
	CriticalTasks       int     `json:"critical_tasks"`
	HighPriorityTasks   int     `json:"high_priority_tasks"`
	MediumPriorityTasks int     `json:"medium_priority_tasks"`
	LowPriorityTasks    int     `json:"low_priority_tasks"`
	CompletedTasks      int     `json:"completed_tasks"`
	OverdueTasks        int     `json:"overdue_tasks"`
	UpcomingDeadlines   int     `json:"upcoming_deadlines"`
	AverageProgress     float64 `json:"average_progress"`
}

// WorkloadData is the scored rollup returned to dashboards.
type WorkloadData struct {
	WorkloadSummary
	WorkloadScore  float64 `json:"workload_score"`
	RiskScore      float64 `json:"risk_score"`
	RiskLevel      string  `json:"risk_level"`
	EfficiencyRate float64 `json:"efficiency_rate"`
}
