package Controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"TaskFlow/Models"
)

// CommentController handles task comment endpoints
type CommentController struct {
	DB *gorm.DB
}

// NewCommentController creates a new CommentController
func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	TaskID   uint   `json:"task_id" validate:"required"`
	ParentID *uint  `json:"parent_id"`
	Mentions []uint `json:"mentions"`
}

// GetTaskComments lists a task's comment thread, oldest first
func (c *CommentController) GetTaskComments(ctx *fiber.Ctx) error {
	taskID, err := strconv.Atoi(ctx.Params("task_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var comments []Models.Comment
	if err := c.DB.Preload("Author").Preload("Mentions").
		Where("task_id = ?", taskID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve comments"})
	}

	return ctx.JSON(comments)
}

// CreateComment posts a comment on a task, optionally as a reply,
// optionally mentioning users. Each mentioned user gets a notification.
func (c *CommentController) CreateComment(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	var req CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "fields": validationErrors(err)})
	}

	var task Models.Task
	if err := c.DB.First(&task, req.TaskID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	if req.ParentID != nil {
		var parent Models.Comment
		if err := c.DB.First(&parent, *req.ParentID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Parent comment not found"})
		}
		if parent.TaskID != req.TaskID {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parent comment belongs to a different task"})
		}
	}

	comment := Models.Comment{
		TaskID:   req.TaskID,
		UserID:   user.ID,
		ParentID: req.ParentID,
		Content:  req.Content,
	}
	if err := c.DB.Create(&comment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create comment"})
	}

	for _, mentionedID := range mentionTargets(req.Mentions, user.ID) {
		var mentioned Models.User
		if err := c.DB.First(&mentioned, mentionedID).Error; err != nil {
			continue
		}
		mention := Models.CommentMention{
			CommentID: comment.ID,
			UserID:    mentionedID,
		}
		if err := c.DB.Create(&mention).Error; err != nil {
			continue
		}
		comment.Mentions = append(comment.Mentions, mention)

		taskID := task.ID
		notification := Models.Notification{
			UserID: mentionedID,
			TaskID: &taskID,
			Title:  "You were mentioned",
			Body:   fmt.Sprintf("%s mentioned you in a comment on %q", user.Name, task.Title),
			Kind:   "mention",
		}
		if err := c.DB.Create(&notification).Error; err != nil {
			continue
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(comment)
}

// mentionTargets drops duplicates and self-mentions, preserving order.
func mentionTargets(mentions []uint, authorID uint) []uint {
	seen := make(map[uint]bool, len(mentions))
	targets := make([]uint, 0, len(mentions))
	for _, id := range mentions {
		if id == authorID || seen[id] {
			continue
		}
		seen[id] = true
		targets = append(targets, id)
	}
	return targets
}

// UpdateComment edits a comment's content. Author only.
func (c *CommentController) UpdateComment(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid comment ID"})
	}

	var comment Models.Comment
	if err := c.DB.First(&comment, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Comment not found"})
	}
	if comment.UserID != user.ID {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized to edit this comment"})
	}

	var input struct {
		Content string `json:"content"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Content == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Content is required"})
	}

	comment.Content = input.Content
	if err := c.DB.Save(&comment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update comment"})
	}

	return ctx.JSON(comment)
}

// DeleteComment removes a comment. Author or admin.
func (c *CommentController) DeleteComment(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid comment ID"})
	}

	var comment Models.Comment
	if err := c.DB.First(&comment, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Comment not found"})
	}
	if comment.UserID != user.ID && user.Permission < Models.PermissionAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized to delete this comment"})
	}

	c.DB.Where("comment_id = ?", comment.ID).Delete(&Models.CommentMention{})
	c.DB.Delete(&comment)

	return ctx.JSON(fiber.Map{"message": "Comment deleted"})
}
