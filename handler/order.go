package handler

import (
	"encoding/base64"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studio_booking/constants"
	"studio_booking/helper"
	"studio_booking/model"
	"studio_booking/utils"
)

type OrderHandler struct {
	Engine *helper.OrderEngine
	DB     *gorm.DB
}

func NewOrderHandler(engine *helper.OrderEngine, db *gorm.DB) *OrderHandler {
	return &OrderHandler{Engine: engine, DB: db}
}

func formatSchedule(schedule *model.Schedule) fiber.Map {
	if schedule == nil {
		return nil
	}
	return fiber.Map{
		"id":       schedule.ID,
		"date":     schedule.Date.String(),
		"endDate":  schedule.EndDate.String(),
		"time":     utils.FormatClockTime(schedule.Time),
		"endTime":  utils.FormatClockTime(schedule.EndTime),
		"location": schedule.Location,
		"duration": schedule.Duration,
		"isBooked": schedule.IsBooked,
	}
}

// POST /order/:productId
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	claim, ok := claimFromLocals(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED)
	}

	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
	}

	input := c.Locals("input").(model.CreateOrderInput)

	order, err := h.Engine.Create(c.Context(), claim.UserId, uint(productID), input)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated,
		"Order created successfully and awaiting approval", fiber.Map{
			"order":          order,
			"schedule":       formatSchedule(order.Schedule),
			"discountAmount": order.DiscountAmount,
			"totalAmount":    order.TotalAmount,
		})
}

// GET /order?find=&filter=&page=
func (h *OrderHandler) GetAll(c *fiber.Ctx) error {
	claim, ok := claimFromLocals(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED)
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage := 5

	query := h.DB.Model(&model.Order{}).Where("user_id = ?", claim.UserId)
	if find := c.Query("find"); find != "" {
		query = query.Where("code ILIKE ?", "%"+find+"%")
	}
	if filter := c.Query("filter"); filter != "" {
		query = query.Where("status = ?", filter)
	}

	var totalData int64
	if err := query.Count(&totalData).Error; err != nil {
		return respondError(c, err)
	}

	var orders []model.Order
	if err := utils.ApplyPagination(query, &perPage, &page).
		Preload("Schedule").
		Preload("OrderDetails").
		Preload("OrderDetails.Product").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return respondError(c, err)
	}

	totalPages := (totalData + int64(perPage) - 1) / int64(perPage)
	return utils.SuccessResponse(c, fiber.StatusOK, "Get all orders success", fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"page":        page,
			"per_page":    perPage,
			"total_items": totalData,
			"total_pages": totalPages,
		},
	})
}

// GET /order/:orderId
func (h *OrderHandler) GetDetail(c *fiber.Ctx) error {
	claim, ok := claimFromLocals(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED)
	}

	orderID := c.Locals("inputId").(uint)

	var order model.Order
	if err := h.DB.
		Preload("Schedule").
		Preload("OrderDetails").
		Preload("OrderDetails.Product").
		Preload("Payments").
		Where("id = ? AND user_id = ?", orderID, claim.UserId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Get order detail success", fiber.Map{
		"order":    order,
		"schedule": formatSchedule(order.Schedule),
	})
}

// PATCH /order/:orderId/validate
func (h *OrderHandler) Validate(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(uint)

	order, err := h.Engine.Validate(orderID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order status updated to unpaid", order)
}

// PATCH /order/:orderId/done
func (h *OrderHandler) Done(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(uint)

	order, err := h.Engine.MarkDone(orderID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order marked as done successfully", order)
}

// PATCH /order/:orderId/cancel
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.CancelOrderInput)

	order, err := h.Engine.Cancel(orderID, input.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order cancelled successfully", order)
}

// POST /order/generate-qr
func (h *OrderHandler) GenerateQR(c *fiber.Ctx) error {
	input := c.Locals("input").(model.GenerateQRInput)

	qrBytes, err := utils.GenerateQRCode(input.QRData, 400)
	if err != nil {
		return respondError(c, err)
	}

	qrBase64 := "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Generate QR-Code successfully", qrBase64)
}
