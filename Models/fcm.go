package Models

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FCMToken struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"not null;uniqueIndex"`
	Value  string `json:"value"`
}

type UpdateTokenRequest struct {
	Value string `json:"value" validate:"required"`
}

// UpdateToken registers or refreshes the device token for the logged-in user.
func UpdateToken(c *fiber.Ctx) error {
	var req UpdateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Token value is required",
		})
	}

	user, ok := c.Locals("user").(User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not logged in",
		})
	}

	var token FCMToken
	err := DB.Where("user_id = ?", user.ID).FirstOrCreate(&token, FCMToken{
		UserID: user.ID,
		Value:  req.Value,
	}).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create/update token",
		})
	}

	if token.Value != req.Value {
		token.Value = req.Value
		if err := DB.Save(&token).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update token",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Token updated successfully",
		"token":   token,
	})
}
