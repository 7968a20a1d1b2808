package handler

import (
	"github.com/gofiber/fiber/v2"

	"studio_booking/config"
	"studio_booking/helper"
	"studio_booking/utils"
)

type CronjobHandler struct {
	Sweeper *helper.Sweeper
}

func NewCronjobHandler(sweeper *helper.Sweeper) *CronjobHandler {
	return &CronjobHandler{Sweeper: sweeper}
}

// POST /cronjob?token= (GET alias) — external scheduler hook, shares the sweep
// with the in-process cron so a stalled instance can still be flushed remotely.
func (h *CronjobHandler) Run(c *fiber.Ctx) error {
	secret := config.Config("CRONJOB_SECRET_TOKEN")
	if secret == "" || c.Query("token") != secret {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid cronjob token")
	}

	count, err := h.Sweeper.Sweep(utils.NowWIB(h.Sweeper.Clock))
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Expired orders swept", fiber.Map{
		"count": count,
	})
}
