package model

type PaymentStatus string

const (
	PaymentUnpaid    PaymentStatus = "unpaid"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

type PaymentMethod string

const (
	FullPayment PaymentMethod = "fullPayment"
	DownPayment PaymentMethod = "downPayment"
)

// Payment is one payment leg. Stage is null for a full payment, 1 or 2 for the
// down-payment legs; at most one row may exist per (order, stage).
type Payment struct {
	DTO
	OrderID       uint          `gorm:"not null;uniqueIndex:idx_order_stage" json:"orderId"`
	PaymentStage  *int          `gorm:"uniqueIndex:idx_order_stage" json:"paymentStage"`
	Amount        int64         `json:"amount"`
	MethodPayment PaymentMethod `json:"methodPayment"`
	PaymentURL    string        `json:"paymentUrl"`
	Status        PaymentStatus `gorm:"default:unpaid" json:"status"`

	Order Order `json:"-"`
}

type CreatePaymentInput struct {
	MethodPayment PaymentMethod `json:"method_payment" validate:"required,oneof=fullPayment downPayment"`
}
