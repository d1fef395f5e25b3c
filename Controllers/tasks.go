package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"TaskFlow/AbstractFunctions"
	"TaskFlow/Models"
)

// TaskController handles task-related API endpoints
type TaskController struct {
	DB *gorm.DB
}

// NewTaskController creates a new TaskController
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

type CreateTaskRequest struct {
	Title          string         `json:"title" validate:"required"`
	Description    string         `json:"description"`
	Priority       string         `json:"priority" validate:"required,oneof=Critical High Medium Low"`
	DueDate        string         `json:"due_date" validate:"required"`
	StartDate      string         `json:"start_date"`
	EstimatedHours float64        `json:"estimated_hours"`
	Labels         datatypes.JSON `json:"labels"`
	DepartmentID   uint           `json:"department_id" validate:"required"`
	TemplateID     *uint          `json:"template_id"`
	AssignedTo     []uint         `json:"assigned_to"`
}

// GetTasks lists tasks, filterable by department, priority and assignee
func (c *TaskController) GetTasks(ctx *fiber.Ctx) error {
	query := c.DB.Preload("Assignments").Preload("Dependencies")

	if department := ctx.Query("department_id"); department != "" {
		query = query.Where("department_id = ?", department)
	}
	if priority := ctx.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}
	if assignee := ctx.Query("assigned_to"); assignee != "" {
		query = query.Joins("JOIN task_assignments ON task_assignments.task_id = tasks.id").
			Where("task_assignments.assigned_to = ? AND task_assignments.deleted_at IS NULL", assignee)
	}

	var tasks []Models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}

	return ctx.JSON(tasks)
}

// GetTask retrieves a single task with assignments and dependencies
func (c *TaskController) GetTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	result := c.DB.Preload("Assignments").Preload("Assignments.Assignee").Preload("Dependencies").First(&task, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	return ctx.JSON(task)
}

// CreateTask creates a task, optionally from a template, optionally
// assigning it straight away
func (c *TaskController) CreateTask(ctx *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "fields": validationErrors(err)})
	}

	dueDate, ok := AbstractFunctions.ParseDate(req.DueDate)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid due_date"})
	}

	user, _ := ctx.Locals("user").(Models.User)

	task := Models.Task{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       req.Priority,
		DueDate:        dueDate,
		EstimatedHours: req.EstimatedHours,
		Labels:         req.Labels,
		DepartmentID:   req.DepartmentID,
		CreatedBy:      user.ID,
		TemplateID:     req.TemplateID,
	}

	if req.StartDate != "" {
		if startDate, ok := AbstractFunctions.ParseDate(req.StartDate); ok {
			task.StartDate = &startDate
		}
	}

	// Template defaults fill the gaps the request left open
	if req.TemplateID != nil {
		var template Models.TaskTemplate
		if err := c.DB.First(&template, *req.TemplateID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
		}
		if task.Description == "" {
			task.Description = template.Description
		}
		if task.EstimatedHours == 0 {
			task.EstimatedHours = template.EstimatedHours
		}
	}

	if err := c.DB.Create(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create task"})
	}

	for _, assigneeID := range req.AssignedTo {
		assignment := Models.TaskAssignment{
			TaskID:     task.ID,
			AssignedTo: assigneeID,
			Status:     Models.StatusToDo,
		}
		if err := c.DB.Create(&assignment).Error; err != nil {
			continue
		}
		task.Assignments = append(task.Assignments, assignment)
	}

	return ctx.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask updates task fields
func (c *TaskController) UpdateTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := c.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	var input struct {
		Title          string         `json:"title"`
		Description    string         `json:"description"`
		Priority       string         `json:"priority"`
		DueDate        string         `json:"due_date"`
		StartDate      string         `json:"start_date"`
		EstimatedHours float64        `json:"estimated_hours"`
		Labels         datatypes.JSON `json:"labels"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{}
	if input.Title != "" {
		updates["title"] = input.Title
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.Priority != "" {
		if !Models.ValidPriority(input.Priority) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid priority"})
		}
		updates["priority"] = input.Priority
	}
	if input.DueDate != "" {
		dueDate, ok := AbstractFunctions.ParseDate(input.DueDate)
		if !ok {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid due_date"})
		}
		updates["due_date"] = dueDate
	}
	if input.StartDate != "" {
		if startDate, ok := AbstractFunctions.ParseDate(input.StartDate); ok {
			updates["start_date"] = startDate
		}
	}
	if input.EstimatedHours != 0 {
		updates["estimated_hours"] = input.EstimatedHours
	}
	if len(input.Labels) > 0 {
		updates["labels"] = input.Labels
	}

	if err := c.DB.Model(&task).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}

	return ctx.JSON(task)
}

// DeleteTask soft deletes a task and its assignments
func (c *TaskController) DeleteTask(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := c.DB.First(&task, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	c.DB.Where("task_id = ?", task.ID).Delete(&Models.TaskAssignment{})
	c.DB.Where("task_id = ? OR depends_on = ?", task.ID, task.ID).Delete(&Models.TaskDependency{})
	c.DB.Delete(&task)

	return ctx.JSON(fiber.Map{"message": "Task deleted"})
}

// GetTasksByDate lists tasks due inside a date range (calendar view)
func (c *TaskController) GetTasksByDate(ctx *fiber.Ctx) error {
	start, end := AbstractFunctions.ParseDateRange(ctx.Query("startDate"), ctx.Query("endDate"), time.Now())

	var tasks []Models.Task
	if err := c.DB.Preload("Assignments").
		Where("due_date BETWEEN ? AND ?", start, end).
		Order("due_date asc").
		Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}

	return ctx.JSON(tasks)
}
