package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studio_booking/constants"
	"studio_booking/model"
	"studio_booking/utils"
)

type NotificationHandler struct {
	DB *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{DB: db}
}

// GET /notification
func (h *NotificationHandler) GetAll(c *fiber.Ctx) error {
	claim, ok := claimFromLocals(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED)
	}

	var notifications []model.Notification
	if err := h.DB.Where("user_id = ?", claim.UserId).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return respondError(c, err)
	}

	var unreadCount int64
	if err := h.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", claim.UserId, false).
		Count(&unreadCount).Error; err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Get all notifications success", fiber.Map{
		"notifications": notifications,
		"unreadCount":   unreadCount,
	})
}

// PATCH /notification/:notificationId/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	claim, ok := claimFromLocals(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED)
	}

	notificationID := c.Locals("inputId").(uint)

	var notification model.Notification
	if err := h.DB.Where("id = ? AND user_id = ?", notificationID, claim.UserId).
		First(&notification).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Notification not found")
	}

	if err := h.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Notification marked as read", notification)
}
