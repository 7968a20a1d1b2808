package validate

import (
	"github.com/gofiber/fiber/v2"

	"studio_booking/model"
	"studio_booking/utils"
)

func CreateDiscount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDiscountInput
		if err := parseBody(c, &input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}

		if input.Percentage < 0 || input.Percentage > 100 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Percentage must be between 0-100%")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func ApplyDiscount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ApplyDiscountInput
		if err := parseBody(c, &input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("input", input)
		return c.Next()
	}
}
