package model

import (
	"time"

	"studio_booking/utils"
)

// Schedule is one reserved interval. Per calendar day, [Time, EndTime) of all
// rows must stay pairwise disjoint.
type Schedule struct {
	DTO
	Date     utils.CustomDate `gorm:"index;not null" json:"date"`
	Time     time.Time        `gorm:"not null" json:"time"`
	EndTime  time.Time        `gorm:"not null" json:"endTime"`
	EndDate  utils.CustomDate `json:"endDate"`
	Location string           `json:"location"`
	Duration int              `json:"duration"`
	IsBooked bool             `gorm:"default:true" json:"isBooked"`
	Note     *string          `json:"note,omitempty"`

	Orders []Order `gorm:"foreignKey:ScheduleID" json:"orders,omitempty"`
}

type CreateScheduleInput struct {
	Date     utils.CustomDate `json:"date" validate:"required"`
	Time     string           `json:"time" validate:"required"`
	Location string           `json:"location" validate:"required"`
	Duration int              `json:"duration" validate:"required,gt=0"`
	Note     *string          `json:"note"`
}
