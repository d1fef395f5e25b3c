package Controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskFlow/Analytics"
	"TaskFlow/Models"
)

// AnalyticsController handles analytics-related API endpoints
type AnalyticsController struct {
	DB *gorm.DB
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// toTaskRecord maps a stored task into the shape the metrics engine takes
func toTaskRecord(task Models.Task) Analytics.TaskRecord {
	record := Analytics.TaskRecord{
		ID:        task.ID,
		Title:     task.Title,
		Priority:  task.Priority,
		DueDate:   task.DueDate,
		StartDate: task.StartDate,
		CreatedAt: task.CreatedAt,
	}
	for _, a := range task.Assignments {
		record.Assignments = append(record.Assignments, Analytics.AssignmentRecord{
			AssignedTo:  a.AssignedTo,
			Status:      a.Status,
			Progress:    a.Progress,
			StartedAt:   a.StartedAt,
			CompletedAt: a.CompletedAt,
		})
	}
	return record
}

// loadTaskRecords fetches tasks with assignments, optionally scoped to
// one department
func (c *AnalyticsController) loadTaskRecords(departmentID string) ([]Analytics.TaskRecord, error) {
	query := c.DB.Preload("Assignments")
	if departmentID != "" {
		query = query.Where("department_id = ?", departmentID)
	}

	var tasks []Models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}

	records := make([]Analytics.TaskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, toTaskRecord(task))
	}
	return records, nil
}

// taskCompletedAt returns when the task finished: the latest completion
// timestamp across its assignments, nil unless every assignment is
// Completed with a timestamp.
func taskCompletedAt(task Models.Task) *time.Time {
	record := toTaskRecord(task)
	if Analytics.EffectiveStatus(record.Assignments) != Analytics.StatusCompleted {
		return nil
	}

	var latest *time.Time
	for _, a := range record.Assignments {
		if a.CompletedAt == nil {
			return nil
		}
		if latest == nil || a.CompletedAt.After(*latest) {
			latest = a.CompletedAt
		}
	}
	return latest
}

// Overview returns the aggregate task statistics for the dashboard
func (c *AnalyticsController) Overview(ctx *fiber.Ctx) error {
	records, err := c.loadTaskRecords(ctx.Query("department_id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}

	return ctx.JSON(Analytics.ComputeTaskStats(records, time.Now()))
}

// Trends returns task creation and completion counts for the last 12 months
func (c *AnalyticsController) Trends(ctx *fiber.Ctx) error {
	type MonthlyData struct {
		Month     string `json:"month"`
		Created   int    `json:"created"`
		Completed int    `json:"completed"`
	}

	endDate := time.Now()
	startDate := endDate.AddDate(-1, 0, 0)

	query := c.DB.Preload("Assignments").Where("created_at >= ?", startDate)
	if departmentID := ctx.Query("department_id"); departmentID != "" {
		query = query.Where("department_id = ?", departmentID)
	}

	var tasks []Models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}

	// Create entries for all 12 months, even if no data
	monthlySummary := make(map[string]*MonthlyData)
	for i := 0; i < 12; i++ {
		date := endDate.AddDate(0, -i, 0)
		monthKey := date.Format("2006-01")
		monthlySummary[monthKey] = &MonthlyData{Month: date.Format("Jan 2006")}
	}

	for _, task := range tasks {
		if data, exists := monthlySummary[task.CreatedAt.Format("2006-01")]; exists {
			data.Created++
		}
		if completedAt := taskCompletedAt(task); completedAt != nil {
			if data, exists := monthlySummary[completedAt.Format("2006-01")]; exists {
				data.Completed++
			}
		}
	}

	var response []MonthlyData
	for i := 0; i < 12; i++ {
		date := endDate.AddDate(0, -i, 0)
		if data, exists := monthlySummary[date.Format("2006-01")]; exists {
			response = append(response, *data)
		}
	}

	// Reverse to get chronological order
	for i, j := 0, len(response)-1; i < j; i, j = i+1, j-1 {
		response[i], response[j] = response[j], response[i]
	}

	return ctx.JSON(response)
}

// Workload returns the scored workload distribution across users
func (c *AnalyticsController) Workload(ctx *fiber.Ctx) error {
	records, err := c.loadTaskRecords(ctx.Query("department_id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}

	var users []Models.User
	userQuery := c.DB
	if departmentID := ctx.Query("department_id"); departmentID != "" {
		userQuery = userQuery.Where("department_id = ?", departmentID)
	}
	if err := userQuery.Find(&users).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve users"})
	}

	now := time.Now()
	distribution := BuildWorkloadDistribution(records, users, now)
	return ctx.JSON(distribution)
}

// BuildWorkloadDistribution rolls tasks up per assignee and runs the
// scorer over each rollup. Split out of the handler so the report
// exporter can reuse it.
func BuildWorkloadDistribution(records []Analytics.TaskRecord, users []Models.User, now time.Time) []Analytics.WorkloadData {
	type rollup struct {
		summary         Analytics.WorkloadSummary
		progressSum     float64
		efficiencySum   float64
		efficiencyCount int
	}

	rollups := make(map[uint]*rollup, len(users))
	for _, user := range users {
		rollups[user.ID] = &rollup{summary: Analytics.WorkloadSummary{
			UserID:   user.ID,
			UserName: user.Name,
			JobTitle: user.JobTitle,
		}}
	}

	for _, record := range records {
		status := Analytics.EffectiveStatus(record.Assignments)
		for _, assignment := range record.Assignments {
			r, ok := rollups[assignment.AssignedTo]
			if !ok {
				continue
			}
			s := &r.summary

			s.TaskCount++
			switch record.Priority {
			case Models.PriorityCritical:
				s.CriticalTasks++
			case Models.PriorityHigh:
				s.HighPriorityTasks++
			case Models.PriorityMedium:
				s.MediumPriorityTasks++
			default:
				s.LowPriorityTasks++
			}

			if status == Analytics.StatusCompleted {
				s.CompletedTasks++
			} else {
				if record.DueDate.Before(now) {
					s.OverdueTasks++
				} else if record.DueDate.Before(now.Add(7 * 24 * time.Hour)) {
					s.UpcomingDeadlines++
				}
			}

			r.progressSum += assignment.Progress
			r.efficiencySum += Analytics.EfficiencyRate(assignment, record.DueDate, now)
			r.efficiencyCount++
		}
	}

	distribution := make([]Analytics.WorkloadData, 0, len(users))
	for _, user := range users {
		r := rollups[user.ID]
		if r.summary.TaskCount > 0 {
			r.summary.AverageProgress = r.progressSum / float64(r.summary.TaskCount)
		}
		efficiency := 0.0
		if r.efficiencyCount > 0 {
			efficiency = r.efficiencySum / float64(r.efficiencyCount)
		}
		distribution = append(distribution, Analytics.ComputeWorkload(r.summary, efficiency))
	}

	return distribution
}

// CriticalPath returns the highest-weighted dependency chain
func (c *AnalyticsController) CriticalPath(ctx *fiber.Ctx) error {
	records, err := c.loadTaskRecords(ctx.Query("department_id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}

	var dependencies []Models.TaskDependency
	if err := c.DB.Find(&dependencies).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve dependencies"})
	}

	edges := make([]Analytics.DependencyEdge, 0, len(dependencies))
	for _, d := range dependencies {
		edges = append(edges, Analytics.DependencyEdge{
			TaskID:    d.TaskID,
			DependsOn: d.DependsOn,
			Type:      d.DependencyType,
		})
	}

	path, err := Analytics.CriticalPath(records, edges)
	if err != nil {
		if errors.Is(err, Analytics.ErrCycleDetected) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Cyclic dependency detected; resolve the cycle to compute a critical path",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute critical path"})
	}

	// Resolve titles so the chart can label the chain
	titles := make(map[uint]string, len(records))
	for _, record := range records {
		titles[record.ID] = record.Title
	}
	type pathEntry struct {
		TaskID uint   `json:"task_id"`
		Title  string `json:"title"`
	}
	response := make([]pathEntry, 0, len(path))
	for _, id := range path {
		response = append(response, pathEntry{TaskID: id, Title: titles[id]})
	}

	return ctx.JSON(fiber.Map{"path": response})
}

// Performance returns one user's completion and efficiency summary
func (c *AnalyticsController) Performance(ctx *fiber.Ctx) error {
	userID, err := strconv.Atoi(ctx.Params("user_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var user Models.User
	if err := c.DB.First(&user, userID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var assignments []Models.TaskAssignment
	if err := c.DB.Preload("Task").Where("assigned_to = ?", userID).Find(&assignments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve assignments"})
	}

	now := time.Now()
	total := len(assignments)
	completed := 0
	onTime := 0
	efficiencySum := 0.0

	for _, a := range assignments {
		if a.Status == Models.StatusCompleted {
			completed++
			if a.CompletedAt != nil && !a.CompletedAt.After(a.Task.DueDate) {
				onTime++
			}
		}
		efficiencySum += Analytics.EfficiencyRate(Analytics.AssignmentRecord{
			AssignedTo:  a.AssignedTo,
			Status:      a.Status,
			Progress:    a.Progress,
			StartedAt:   a.StartedAt,
			CompletedAt: a.CompletedAt,
		}, a.Task.DueDate, now)
	}

	completionRate := 0.0
	onTimeRate := 0.0
	efficiency := 0.0
	if total > 0 {
		completionRate = float64(completed) / float64(total) * 100
		efficiency = efficiencySum / float64(total)
	}
	if completed > 0 {
		onTimeRate = float64(onTime) / float64(completed) * 100
	}

	return ctx.JSON(fiber.Map{
		"user_id":             user.ID,
		"display_name":        user.Name,
		"total_tasks":         total,
		"completed_tasks":     completed,
		"completion_rate":     completionRate,
		"on_time_rate":        onTimeRate,
		"avg_efficiency_rate": efficiency,
	})
}
