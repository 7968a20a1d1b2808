package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studio_booking/gateway"
	"studio_booking/helper"
	"studio_booking/model"
	"studio_booking/utils"
)

type PaymentHandler struct {
	Service *helper.PaymentService
	Snap    *gateway.Snap
	DB      *gorm.DB
}

func NewPaymentHandler(service *helper.PaymentService, snap *gateway.Snap, db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{Service: service, Snap: snap, DB: db}
}

// POST /payment/:orderId
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.CreatePaymentInput)

	links, err := h.Service.Create(orderID, input.MethodPayment)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Payment link created successfully", links)
}

// GET /payment?page=
func (h *PaymentHandler) Index(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage := 10

	query := h.DB.Model(&model.Payment{})
	if filter := c.Query("filter"); filter != "" {
		query = query.Where("status = ?", filter)
	}

	var totalData int64
	if err := query.Count(&totalData).Error; err != nil {
		return respondError(c, err)
	}

	var payments []model.Payment
	if err := utils.ApplyPagination(query, &perPage, &page).
		Preload("Order").
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return respondError(c, err)
	}

	totalPages := (totalData + int64(perPage) - 1) / int64(perPage)
	return utils.SuccessResponse(c, fiber.StatusOK, "Get all payments success", fiber.Map{
		"payments": payments,
		"pagination": fiber.Map{
			"page":        page,
			"per_page":    perPage,
			"total_items": totalData,
			"total_pages": totalPages,
		},
	})
}

// GET /payment/:paymentId
func (h *PaymentHandler) Show(c *fiber.Ctx) error {
	paymentID := c.Locals("inputId").(uint)

	var payment model.Payment
	if err := h.DB.Preload("Order").First(&payment, paymentID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Payment not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Get payment detail success", payment)
}

// POST /payment/confirm — gateway webhook, unauthenticated but signed.
func (h *PaymentHandler) Confirm(c *fiber.Ctx) error {
	var notification gateway.Notification
	if err := c.BodyParser(&notification); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid notification payload")
	}

	if !h.Snap.VerifySignature(notification) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Invalid signature")
	}

	if err := h.Service.Reconcile(notification); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "OK", nil)
}
