package validate

import (
	"github.com/gofiber/fiber/v2"

	"studio_booking/model"
	"studio_booking/utils"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := parseBody(c, &input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email and password are required")
		}

		c.Locals("input", input)
		return c.Next()
	}
}
