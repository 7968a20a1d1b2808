package validate

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"studio_booking/constants"
	"studio_booking/utils"
)

var validate = validator.New()

// GetById parses a numeric route param and stashes it in locals.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		valueKey, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER)
		}

		c.Locals("inputId", uint(valueKey))
		return c.Next()
	}
}

// parseBody fills input from the request body and validates it.
func parseBody(c *fiber.Ctx, input any) error {
	if err := c.BodyParser(input); err != nil {
		return fmt.Errorf("Invalid input: %s", err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return err
	}
	return nil
}
