package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskFlow/Models"
)

// AssignmentController handles task assignment endpoints
type AssignmentController struct {
	DB *gorm.DB
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

type AssignRequest struct {
	AssignedTo uint `json:"assigned_to" validate:"required"`
}

type UpdateAssignmentRequest struct {
	Status   string   `json:"status"`
	Progress *float64 `json:"progress"`
}

// GetAssignments lists the assignments of one task
func (c *AssignmentController) GetAssignments(ctx *fiber.Ctx) error {
	taskID, err := strconv.Atoi(ctx.Params("task_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var assignments []Models.TaskAssignment
	if err := c.DB.Preload("Assignee").Where("task_id = ?", taskID).Find(&assignments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve assignments"})
	}

	return ctx.JSON(assignments)
}

// CreateAssignment assigns a user to a task
func (c *AssignmentController) CreateAssignment(ctx *fiber.Ctx) error {
	taskID, err := strconv.Atoi(ctx.Params("task_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var req AssignRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "fields": validationErrors(err)})
	}

	var task Models.Task
	if err := c.DB.First(&task, taskID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	var assignee Models.User
	if err := c.DB.First(&assignee, req.AssignedTo).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var existing int64
	c.DB.Model(&Models.TaskAssignment{}).
		Where("task_id = ? AND assigned_to = ?", taskID, req.AssignedTo).
		Count(&existing)
	if existing > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "User is already assigned to this task"})
	}

	assignment := Models.TaskAssignment{
		TaskID:     uint(taskID),
		AssignedTo: req.AssignedTo,
		Status:     Models.StatusToDo,
	}
	if err := c.DB.Create(&assignment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create assignment"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(assignment)
}

// UpdateAssignment moves an assignment through its lifecycle. Entering
// In Progress stamps started_at, entering Completed stamps completed_at
// and forces progress to 100.
func (c *AssignmentController) UpdateAssignment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assignment ID"})
	}

	var assignment Models.TaskAssignment
	if err := c.DB.First(&assignment, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
	}

	var req UpdateAssignmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()

	if req.Status != "" {
		if !Models.ValidStatus(req.Status) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		assignment.Status = req.Status

		switch req.Status {
		case Models.StatusInProgress:
			if assignment.StartedAt == nil {
				assignment.StartedAt = &now
			}
		case Models.StatusCompleted:
			if assignment.StartedAt == nil {
				assignment.StartedAt = &now
			}
			assignment.CompletedAt = &now
			assignment.Progress = 100
		default:
			assignment.CompletedAt = nil
		}
	}

	if req.Progress != nil {
		progress := *req.Progress
		if progress < 0 || progress > 100 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Progress must be between 0 and 100"})
		}
		assignment.Progress = progress
	}

	if err := c.DB.Save(&assignment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update assignment"})
	}

	return ctx.JSON(assignment)
}

// DeleteAssignment removes a user from a task
func (c *AssignmentController) DeleteAssignment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid assignment ID"})
	}

	var assignment Models.TaskAssignment
	if err := c.DB.First(&assignment, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
	}

	c.DB.Delete(&assignment)

	return ctx.JSON(fiber.Map{"message": "Assignment deleted"})
}
