package validate

import (
	"github.com/gofiber/fiber/v2"

	"studio_booking/model"
	"studio_booking/utils"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := parseBody(c, &input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CancelOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CancelOrderInput
		if err := parseBody(c, &input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Reason is required")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func GenerateQR() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.GenerateQRInput
		if err := parseBody(c, &input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "qr_data is required")
		}

		c.Locals("input", input)
		return c.Next()
	}
}
