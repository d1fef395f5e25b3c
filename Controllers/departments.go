package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskFlow/Models"
)

// DepartmentController handles department-related API endpoints
type DepartmentController struct {
	DB *gorm.DB
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

// GetDepartments retrieves all departments
func (c *DepartmentController) GetDepartments(ctx *fiber.Ctx) error {
	var departments []Models.Department
	result := c.DB.Find(&departments)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve departments"})
	}

	return ctx.JSON(departments)
}

// GetDepartment retrieves a single department with its members
func (c *DepartmentController) GetDepartment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid department ID"})
	}

	var department Models.Department
	result := c.DB.Preload("Users").First(&department, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}

	return ctx.JSON(department)
}

// CreateDepartment creates a new department
func (c *DepartmentController) CreateDepartment(ctx *fiber.Ctx) error {
	var input Models.Department
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	department := Models.Department{
		Name:        input.Name,
		Description: input.Description,
	}

	result := c.DB.Create(&department)
	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "unique constraint") ||
			strings.Contains(result.Error.Error(), "UNIQUE constraint") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A department with this name already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create department",
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(department)
}

// UpdateDepartment updates an existing department
func (c *DepartmentController) UpdateDepartment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid department ID"})
	}

	var department Models.Department
	result := c.DB.First(&department, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}

	var input Models.Department
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	c.DB.Model(&department).Updates(Models.Department{
		Name:        input.Name,
		Description: input.Description,
	})

	return ctx.JSON(department)
}

// DeleteDepartment soft deletes a department
func (c *DepartmentController) DeleteDepartment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid department ID"})
	}

	var department Models.Department
	result := c.DB.First(&department, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}

	c.DB.Delete(&department)

	return ctx.JSON(fiber.Map{"message": "Department deleted"})
}
