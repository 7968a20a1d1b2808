package model

import (
	"time"

	"studio_booking/utils"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderUnpaid    OrderStatus = "unpaid"
	OrderProcess   OrderStatus = "process"
	OrderDone      OrderStatus = "done"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions is the closed transition table:
// pending -> unpaid -> process -> done, cancelled from any non-terminal state.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderUnpaid, OrderCancelled},
	OrderUnpaid:    {OrderProcess, OrderCancelled},
	OrderProcess:   {OrderDone, OrderCancelled},
	OrderDone:      {},
	OrderCancelled: {},
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderDone || s == OrderCancelled
}

type Order struct {
	DTO
	Code   string      `gorm:"unique;size:20;not null" json:"code"`
	Status OrderStatus `gorm:"default:pending" json:"status"`

	TotalAmount    int64  `json:"totalAmount"`
	DiscountAmount int64  `json:"discountAmount"`
	// Non-null only while a down-payment sequence is incomplete.
	RemainingAmount *int64 `json:"remainingAmount"`
	IsPaid          bool   `gorm:"default:false" json:"isPaid"`

	// Deadline for completing payment once the order turns unpaid.
	ExpiredPaid *time.Time `json:"expiredPaid"`

	Note        *string `json:"note,omitempty"`
	Fullname    string  `json:"fullname"`
	PhoneNumber string  `json:"phoneNumber"`

	UserID     uint      `gorm:"not null" json:"userId"`
	User       User      `json:"-"`
	ScheduleID *uint     `json:"scheduleId"`
	Schedule   *Schedule `json:"schedule,omitempty"`

	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID" json:"orderDetails,omitempty"`
	Payments     []Payment     `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

type OrderDetail struct {
	DTO
	OrderID   uint  `gorm:"not null" json:"orderId"`
	ProductID uint  `gorm:"not null" json:"productId"`
	Quantity  int   `gorm:"not null" json:"quantity"`
	Price     int64 `json:"price"`
	Subtotal  int64 `json:"subtotal"`
	Discount  int64 `json:"discount"`

	Product Product `json:"product"`
}

type CreateOrderInput struct {
	Date         utils.CustomDate `json:"date" validate:"required"`
	Time         string           `json:"time" validate:"required"`
	Location     string           `json:"location"`
	Note         *string          `json:"note"`
	Quantity     int              `json:"quantity" validate:"required,gt=0"`
	DiscountCode string           `json:"discountCode"`
	Fullname     string           `json:"fullname" validate:"required"`
	PhoneNumber  string           `json:"phoneNumber" validate:"required"`
}

type CancelOrderInput struct {
	Reason string `json:"reason" validate:"required"`
}

type GenerateQRInput struct {
	QRData string `json:"qr_data" validate:"required"`
}
