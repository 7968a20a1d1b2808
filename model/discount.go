package model

import "studio_booking/utils"

type DiscountCode struct {
	DTO
	Code       string            `gorm:"unique;not null" json:"code"`
	Percentage int               `gorm:"not null" json:"percentage"`
	Status     bool              `gorm:"default:true" json:"status"`
	ValidUntil *utils.CustomDate `json:"validUntil,omitempty"`
}

type CreateDiscountInput struct {
	Code       string            `json:"code" validate:"required"`
	Percentage int               `json:"percentage" validate:"min=0,max=100"`
	ValidUntil *utils.CustomDate `json:"validUntil"`
}

type ApplyDiscountInput struct {
	Code     string `json:"code" validate:"required"`
	Subtotal int64  `json:"subtotal" validate:"required,gt=0"`
}
