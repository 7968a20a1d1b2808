package validate

import (
	"github.com/gofiber/fiber/v2"

	"studio_booking/model"
	"studio_booking/utils"
)

func CreateSchedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateScheduleInput
		if err := parseBody(c, &input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}

		c.Locals("input", input)
		return c.Next()
	}
}
