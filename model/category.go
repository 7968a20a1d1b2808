package model

// DurationRule decides how a reservation's end date is derived from its start.
type DurationRule string

const (
	DurationHourly  DurationRule = "hourly"  // endDate = start + duration hours
	DurationMonthly DurationRule = "monthly" // endDate = start + one calendar month
)

// Category carries the booking policy for its products, so order creation
// never branches on magic category ids.
type Category struct {
	DTO
	Name             string       `gorm:"unique;not null" json:"name"`
	RequiresSchedule bool         `json:"requiresSchedule"`
	WindowStartHour  int          `gorm:"default:7" json:"windowStartHour"`
	WindowEndHour    int          `gorm:"default:17" json:"windowEndHour"`
	DurationRule     DurationRule `gorm:"default:hourly" json:"durationRule"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
