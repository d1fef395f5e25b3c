package Controllers

import (
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskFlow/AbstractFunctions"
	"TaskFlow/Models"
)

// LogGroup summarizes the audit logs sharing one path and method
type LogGroup struct {
	Path        string            `json:"path"`
	Method      string            `json:"method"`
	Count       int               `json:"count"`
	AvgLatency  float64           `json:"avg_latency_ms"`
	MinLatency  float64           `json:"min_latency_ms"`
	MaxLatency  float64           `json:"max_latency_ms"`
	SuccessRate float64           `json:"success_rate"`
	Logs        []Models.AuditLog `json:"logs"`
}

// LogsResponse is the paginated audit log payload
type LogsResponse struct {
	Groups      []LogGroup `json:"groups"`
	TotalLogs   int64      `json:"total_logs"`
	TotalGroups int        `json:"total_groups"`
	Page        int        `json:"page"`
	PageSize    int        `json:"page_size"`
	TotalPages  int        `json:"total_pages"`
}

// LogController exposes the persisted request audit trail
type LogController struct {
	DB *gorm.DB
}

// NewLogController creates a new LogController
func NewLogController(db *gorm.DB) *LogController {
	return &LogController{DB: db}
}

// GetLogs retrieves audit logs with pagination, date filtering, and
// per-endpoint grouping
func (c *LogController) GetLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 500 {
		pageSize = 50
	}

	dateFrom, dateTo := AbstractFunctions.ParseDateRange(
		ctx.Query("date_from"), ctx.Query("date_to"), time.Now())

	query := c.DB.Model(&Models.AuditLog{}).
		Where("timestamp BETWEEN ? AND ?", dateFrom, dateTo)
	if path := ctx.Query("path"); path != "" {
		query = query.Where("path LIKE ?", "%"+path+"%")
	}
	if method := ctx.Query("method"); method != "" {
		query = query.Where("method = ?", method)
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count logs"})
	}

	var logs []Models.AuditLog
	if err := query.Order("timestamp desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve logs"})
	}

	groups := groupLogs(logs)

	return ctx.JSON(LogsResponse{
		Groups:      groups,
		TotalLogs:   total,
		TotalGroups: len(groups),
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
	})
}

func groupLogs(logs []Models.AuditLog) []LogGroup {
	grouped := make(map[string]*LogGroup)
	var order []string

	for _, entry := range logs {
		key := entry.Method + " " + entry.Path
		latency := float64(entry.LatencyMs)
		group, exists := grouped[key]
		if !exists {
			group = &LogGroup{
				Path:       entry.Path,
				Method:     entry.Method,
				MinLatency: latency,
				MaxLatency: latency,
			}
			grouped[key] = group
			order = append(order, key)
		}

		group.Count++
		group.AvgLatency += latency
		if latency < group.MinLatency {
			group.MinLatency = latency
		}
		if latency > group.MaxLatency {
			group.MaxLatency = latency
		}
		if entry.Status < 400 {
			group.SuccessRate++
		}
		group.Logs = append(group.Logs, entry)
	}

	groups := make([]LogGroup, 0, len(order))
	for _, key := range order {
		group := grouped[key]
		group.AvgLatency /= float64(group.Count)
		group.SuccessRate = group.SuccessRate / float64(group.Count) * 100
		groups = append(groups, *group)
	}
	return groups
}
