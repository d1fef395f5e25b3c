package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"TaskFlow/Analytics"
	"TaskFlow/Models"
)

// ReportController exports analytics as spreadsheet downloads
type ReportController struct {
	DB *gorm.DB
}

// NewReportController creates a new ReportController
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
}

// WorkloadReport exports the scored workload distribution
func (c *ReportController) WorkloadReport(ctx *fiber.Ctx) error {
	analytics := NewAnalyticsController(c.DB)
	records, err := analytics.loadTaskRecords(ctx.Query("department_id"))
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

	distribution := BuildWorkloadDistribution(records, users, time.Now())

	buf, err := workloadToExcel(distribution)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="workload_report.xlsx"`)
	return ctx.Send(buf.Bytes())
}

func workloadToExcel(distribution []Analytics.WorkloadData) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Workload"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"User", "Job Title", "Tasks", "Critical", "High", "Medium", "Low",
		"Completed", "Overdue", "Upcoming Deadlines", "Avg Progress",
		"Workload Score", "Risk Score", "Risk Level", "Efficiency Rate",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}
	if style, err := headerStyle(f); err == nil {
		f.SetRowStyle(sheetName, 1, 1, style)
	}

	for rowIndex, data := range distribution {
		row := rowIndex + 2
		values := []interface{}{
			data.UserName,
			data.JobTitle,
			data.TaskCount,
			data.CriticalTasks,
			data.HighPriorityTasks,
			data.MediumPriorityTasks,
			data.LowPriorityTasks,
			data.CompletedTasks,
			data.OverdueTasks,
			data.UpcomingDeadlines,
			data.AverageProgress,
			data.WorkloadScore,
			data.RiskScore,
			data.RiskLevel,
			data.EfficiencyRate,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := 0; i < len(headers); i++ {
		f.SetColWidth(sheetName, string('A'+rune(i)), string('A'+rune(i)), 15)
	}

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}

// OverviewReport exports the aggregate task statistics
func (c *ReportController) OverviewReport(ctx *fiber.Ctx) error {
	analytics := NewAnalyticsController(c.DB)
	records, err := analytics.loadTaskRecords(ctx.Query("department_id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}

	stats := Analytics.ComputeTaskStats(records, time.Now())

	buf, err := statsToExcel(stats)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="overview_report.xlsx"`)
	return ctx.Send(buf.Bytes())
}

func statsToExcel(stats Analytics.TaskStats) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Overview"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	style, styleErr := headerStyle(f)

	// Summary block
	f.SetCellValue(sheetName, "A1", "Metric")
	f.SetCellValue(sheetName, "B1", "Value")
	summary := [][]interface{}{
		{"Total Tasks", stats.Total},
		{"Completed", stats.Completed},
		{"In Progress", stats.InProgress},
		{"Overdue", stats.Overdue},
		{"Average Completion Time (days)", stats.AverageCompletionTime},
	}
	for i, pair := range summary {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+2), pair[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+2), pair[1])
	}

	// Overdue by priority block
	base := len(summary) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", base), "Priority")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", base), "Overdue Count")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", base), "Overdue Days")
	for i, entry := range stats.OverdueByPriority {
		row := base + i + 1
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), entry.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), entry.Value)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), entry.Days)
	}

	// Completion trend block
	base = base + len(stats.OverdueByPriority) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", base), "Month")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", base), "Completions")
	for i, point := range stats.CompletionTrend {
		row := base + i + 1
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), point.Month)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), point.Count)
	}

	if styleErr == nil {
		f.SetRowStyle(sheetName, 1, 1, style)
	}
	f.SetColWidth(sheetName, "A", "C", 28)

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}
