package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskFlow/Models"
)

// UserController handles user management endpoints
type UserController struct {
	DB *gorm.DB
}

// NewUserController creates a new UserController
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetUsers lists users, filterable by department
func (c *UserController) GetUsers(ctx *fiber.Ctx) error {
	query := c.DB.Preload("Department")
	if departmentID := ctx.Query("department_id"); departmentID != "" {
		query = query.Where("department_id = ?", departmentID)
	}

	var users []Models.User
	if err := query.Find(&users).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve users"})
	}

	return ctx.JSON(users)
}

// GetUser retrieves a single user
func (c *UserController) GetUser(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var user Models.User
	if err := c.DB.Preload("Department").First(&user, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return ctx.JSON(user)
}

// UpdateUser updates profile fields and permission level
func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var user Models.User
	if err := c.DB.First(&user, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var input struct {
		Name         string `json:"name"`
		JobTitle     string `json:"job_title"`
		Permission   int    `json:"permission"`
		DepartmentID uint   `json:"department_id"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Permission != 0 &&
		(input.Permission < Models.PermissionPersonnel || input.Permission > Models.PermissionAdmin) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid permission level"})
	}

	c.DB.Model(&user).Updates(Models.User{
		Name:         input.Name,
		JobTitle:     input.JobTitle,
		Permission:   input.Permission,
		DepartmentID: input.DepartmentID,
	})

	return ctx.JSON(user)
}

// DeleteUser soft deletes a user
func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var user Models.User
	if err := c.DB.First(&user, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	c.DB.Delete(&user)

	return ctx.JSON(fiber.Map{"message": "User deleted"})
}
