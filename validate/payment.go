package validate

import (
	"github.com/gofiber/fiber/v2"

	"studio_booking/model"
	"studio_booking/utils"
)

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentInput
		if err := parseBody(c, &input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid payment method")
		}

		c.Locals("input", input)
		return c.Next()
	}
}
