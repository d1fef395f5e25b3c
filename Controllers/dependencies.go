package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskFlow/Models"
)

// DependencyController handles task dependency endpoints
type DependencyController struct {
	DB *gorm.DB
}

// NewDependencyController creates a new DependencyController
func NewDependencyController(db *gorm.DB) *DependencyController {
	return &DependencyController{DB: db}
}

type CreateDependencyRequest struct {
	TaskID         uint   `json:"task_id" validate:"required"`
	DependsOn      uint   `json:"depends_on" validate:"required"`
	DependencyType string `json:"dependency_type" validate:"required,oneof=blocks requires related"`
}

// GetDependencies lists dependency edges, filterable by either endpoint
func (c *DependencyController) GetDependencies(ctx *fiber.Ctx) error {
	query := c.DB.Preload("Task").Preload("Dependency")

	if taskID := ctx.Query("task_id"); taskID != "" {
		query = query.Where("task_id = ?", taskID)
	}
	if dependsOn := ctx.Query("depends_on"); dependsOn != "" {
		query = query.Where("depends_on = ?", dependsOn)
	}

	var dependencies []Models.TaskDependency
	if err := query.Find(&dependencies).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve dependencies"})
	}

	return ctx.JSON(dependencies)
}

// GetTaskDependencies returns both directions for one task: what it
// depends on and what depends on it
func (c *DependencyController) GetTaskDependencies(ctx *fiber.Ctx) error {
	taskID, err := strconv.Atoi(ctx.Params("task_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var dependsOn []Models.TaskDependency
	c.DB.Preload("Dependency").Where("task_id = ?", taskID).Find(&dependsOn)

	var dependents []Models.TaskDependency
	c.DB.Preload("Task").Where("depends_on = ?", taskID).Find(&dependents)

	return ctx.JSON(fiber.Map{
		"depends_on":      dependsOn,
		"dependent_tasks": dependents,
	})
}

// CreateDependency links two tasks. Self-dependencies and duplicate
// edges are rejected.
func (c *DependencyController) CreateDependency(ctx *fiber.Ctx) error {
	var req CreateDependencyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "fields": validationErrors(err)})
	}

	if req.TaskID == req.DependsOn {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Task cannot depend on itself"})
	}

	var task, dependency Models.Task
	if err := c.DB.First(&task, req.TaskID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	if err := c.DB.First(&dependency, req.DependsOn).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dependency task not found"})
	}

	var existing int64
	c.DB.Model(&Models.TaskDependency{}).
		Where("task_id = ? AND depends_on = ?", req.TaskID, req.DependsOn).
		Count(&existing)
	if existing > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Dependency already exists"})
	}

	edge := Models.TaskDependency{
		TaskID:         req.TaskID,
		DependsOn:      req.DependsOn,
		DependencyType: req.DependencyType,
	}
	if err := c.DB.Create(&edge).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create dependency"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(edge)
}

// UpdateDependency changes the type of an edge
func (c *DependencyController) UpdateDependency(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid dependency ID"})
	}

	var edge Models.TaskDependency
	if err := c.DB.First(&edge, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dependency not found"})
	}

	var input struct {
		DependencyType string `json:"dependency_type"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !Models.ValidDependencyType(input.DependencyType) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid dependency type"})
	}

	edge.DependencyType = input.DependencyType
	if err := c.DB.Save(&edge).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update dependency"})
	}

	return ctx.JSON(edge)
}

// DeleteDependency removes an edge
func (c *DependencyController) DeleteDependency(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid dependency ID"})
	}

	var edge Models.TaskDependency
	if err := c.DB.First(&edge, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Dependency not found"})
	}

	c.DB.Delete(&edge)

	return ctx.JSON(fiber.Map{"message": "Dependency deleted"})
}
