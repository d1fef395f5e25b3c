package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskFlow/Models"
)

// TemplateController handles task template endpoints
type TemplateController struct {
	DB *gorm.DB
}

// NewTemplateController creates a new TemplateController
func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db}
}

// GetTemplates lists all task templates
func (c *TemplateController) GetTemplates(ctx *fiber.Ctx) error {
	var templates []Models.TaskTemplate
	if err := c.DB.Find(&templates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve templates"})
	}

	return ctx.JSON(templates)
}

// CreateTemplate creates a task template
func (c *TemplateController) CreateTemplate(ctx *fiber.Ctx) error {
	var input Models.TaskTemplate
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Name == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Template name is required"})
	}
	if input.DefaultPriority == "" {
		input.DefaultPriority = Models.PriorityMedium
	}
	if !Models.ValidPriority(input.DefaultPriority) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid default priority"})
	}

	template := Models.TaskTemplate{
		Name:            input.Name,
		Description:     input.Description,
		DefaultPriority: input.DefaultPriority,
		EstimatedHours:  input.EstimatedHours,
		Checklist:       input.Checklist,
	}

	if err := c.DB.Create(&template).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "unique constraint") {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A template with this name already exists"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create template"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(template)
}

// UpdateTemplate updates a template
func (c *TemplateController) UpdateTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	var template Models.TaskTemplate
	if err := c.DB.First(&template, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}

	var input Models.TaskTemplate
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.DefaultPriority != "" && !Models.ValidPriority(input.DefaultPriority) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid default priority"})
	}

	c.DB.Model(&template).Updates(Models.TaskTemplate{
		Name:            input.Name,
		Description:     input.Description,
		DefaultPriority: input.DefaultPriority,
		EstimatedHours:  input.EstimatedHours,
		Checklist:       input.Checklist,
	})

	return ctx.JSON(template)
}

// DeleteTemplate removes a template
func (c *TemplateController) DeleteTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	var template Models.TaskTemplate
	if err := c.DB.First(&template, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Template not found"})
	}

	c.DB.Delete(&template)

	return ctx.JSON(fiber.Map{"message": "Template deleted"})
}
