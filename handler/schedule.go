package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studio_booking/helper"
	"studio_booking/model"
	"studio_booking/utils"
)

type ScheduleHandler struct {
	Store *helper.ScheduleStore
	DB    *gorm.DB
}

func NewScheduleHandler(store *helper.ScheduleStore, db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{Store: store, DB: db}
}

// GET /schedule?date=
func (h *ScheduleHandler) GetAll(c *fiber.Ctx) error {
	query := h.DB.Model(&model.Schedule{})
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var schedules []model.Schedule
	if err := query.Order("date asc, time asc").Find(&schedules).Error; err != nil {
		return respondError(c, err)
	}

	items := make([]fiber.Map, 0, len(schedules))
	for i := range schedules {
		items = append(items, formatSchedule(&schedules[i]))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Get all schedules success", items)
}

// POST /schedule — admin blocks out a slot by hand, outside any order.
// Overlap protection still applies; durations beyond a day book a month.
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateScheduleInput)

	start, err := utils.ParseClockTime(input.Date, input.Time)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	schedule, err := h.Store.Reserve(c.Context(), helper.ReserveInput{
		Date:     input.Date,
		Start:    start,
		Duration: input.Duration,
		Location: input.Location,
		Note:     input.Note,
		Policy:   helper.ManualReservePolicy(input.Duration),
	})
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Schedule created successfully", formatSchedule(schedule))
}
