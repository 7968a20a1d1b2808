package helper

import (
	"errors"

	"gorm.io/gorm"

	"studio_booking/constants"
	"studio_booking/model"
)

// DiscountEvaluator validates discount codes and computes discount amounts.
type DiscountEvaluator struct {
	DB *gorm.DB
}

func NewDiscountEvaluator(db *gorm.DB) *DiscountEvaluator {
	return &DiscountEvaluator{DB: db}
}

type DiscountResult struct {
	DiscountAmount int64 `json:"discountAmount"`
	TotalAmount    int64 `json:"totalAmount"`
}

// Apply rejects unknown and deactivated codes before any computation. The
// discount floors: amounts are whole rupiah.
func (e *DiscountEvaluator) Apply(code string, subtotal int64) (*DiscountResult, error) {
	var discount model.DiscountCode
	if err := e.DB.Where("code = ?", code).First(&discount).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, BadRequest(constants.INVALID_DISCOUNT_CODE)
		}
		return nil, err
	}

	if !discount.Status {
		return nil, BadRequest(constants.EXPIRED_DISCOUNT_CODE)
	}

	discountAmount := subtotal * int64(discount.Percentage) / 100
	return &DiscountResult{
		DiscountAmount: discountAmount,
		TotalAmount:    subtotal - discountAmount,
	}, nil
}
