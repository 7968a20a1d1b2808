package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studio_booking/model"
	"studio_booking/utils"
)

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{DB: db}
}

// GET /product?find=&category=
func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	query := h.DB.Model(&model.Product{}).Preload("Category")
	if find := c.Query("find"); find != "" {
		query = query.Where("name ILIKE ?", "%"+find+"%")
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category_id = ?", category)
	}

	var products []model.Product
	if err := query.Order("name asc").Find(&products).Error; err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Get all products success", products)
}

// GET /product/:slug
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	var product model.Product
	if err := h.DB.Preload("Category").
		Where("slug = ?", c.Params("slug")).
		First(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Get product detail success", product)
}
