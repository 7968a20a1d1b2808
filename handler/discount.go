package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studio_booking/helper"
	"studio_booking/model"
	"studio_booking/utils"
)

type DiscountHandler struct {
	Evaluator *helper.DiscountEvaluator
	DB        *gorm.DB
}

func NewDiscountHandler(evaluator *helper.DiscountEvaluator, db *gorm.DB) *DiscountHandler {
	return &DiscountHandler{Evaluator: evaluator, DB: db}
}

// POST /discount/apply
func (h *DiscountHandler) Apply(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ApplyDiscountInput)

	result, err := h.Evaluator.Apply(input.Code, input.Subtotal)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Discount applied successfully", result)
}

// GET /discount
func (h *DiscountHandler) GetAll(c *fiber.Ctx) error {
	var discounts []model.DiscountCode
	if err := h.DB.Order("created_at desc").Find(&discounts).Error; err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Get all discount codes success", discounts)
}

// POST /discount
func (h *DiscountHandler) Create(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateDiscountInput)

	var existing model.DiscountCode
	err := h.DB.Where("code = ?", input.Code).First(&existing).Error
	if err == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Discount code already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, err)
	}

	discount := model.DiscountCode{
		Code:       input.Code,
		Percentage: input.Percentage,
		Status:     true,
		ValidUntil: input.ValidUntil,
	}
	if err := h.DB.Create(&discount).Error; err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Discount code created successfully", discount)
}

// PATCH /discount/:discountId/status
func (h *DiscountHandler) UpdateStatus(c *fiber.Ctx) error {
	discountID := c.Locals("inputId").(uint)

	var discount model.DiscountCode
	if err := h.DB.First(&discount, discountID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Discount code not found")
	}

	if err := h.DB.Model(&discount).Update("status", !discount.Status).Error; err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Discount status updated successfully", discount)
}
