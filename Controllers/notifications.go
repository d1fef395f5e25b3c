package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskFlow/Models"
)

// NotificationController handles in-app notification endpoints
type NotificationController struct {
	DB *gorm.DB
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetNotifications lists the logged-in user's notifications, newest first
func (c *NotificationController) GetNotifications(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	query := c.DB.Where("user_id = ?", user.ID).Order("created_at desc")
	if ctx.Query("unread") == "true" {
		query = query.Where("read = ?", false)
	}

	var notifications []Models.Notification
	if err := query.Limit(100).Find(&notifications).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve notifications"})
	}

	return ctx.JSON(notifications)
}

// MarkRead flags one notification as read
func (c *NotificationController) MarkRead(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification ID"})
	}

	var notification Models.Notification
	if err := c.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&notification).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
	}

	notification.Read = true
	if err := c.DB.Save(&notification).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notification"})
	}

	return ctx.JSON(notification)
}

// MarkAllRead flags every unread notification of the user as read
func (c *NotificationController) MarkAllRead(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	result := c.DB.Model(&Models.Notification{}).
		Where("user_id = ? AND read = ?", user.ID, false).
		Update("read", true)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notifications"})
	}

	return ctx.JSON(fiber.Map{"updated": result.RowsAffected})
}
