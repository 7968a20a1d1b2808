package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"studio_booking/helper"
	"studio_booking/model"
	"studio_booking/utils"
)

// respondError renders a business rejection with its own status; anything
// else is logged with context and answered with a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	if serr := helper.AsServiceError(err); serr != nil {
		return utils.ErrorResponse(c, serr.Status, serr.Message)
	}

	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}

func claimFromLocals(c *fiber.Ctx) (*model.TokenClaim, bool) {
	claim, ok := c.Locals("claim").(*model.TokenClaim)
	return claim, ok && claim != nil
}
