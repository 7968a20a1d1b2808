package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studio_booking/constants"
	"studio_booking/gateway"
	"studio_booking/model"
	"studio_booking/utils"
)

// PaymentGateway is the outbound contract to the hosted payment processor.
type PaymentGateway interface {
	CreateTransaction(req gateway.TransactionRequest) (*gateway.TransactionResponse, error)
}

// PaymentService issues payment links and reconciles asynchronous gateway
// notifications against orders.
type PaymentService struct {
	DB       *gorm.DB
	Gateway  PaymentGateway
	Notifier *Notifier
	Clock    clockwork.Clock
}

func NewPaymentService(db *gorm.DB, gw PaymentGateway, notifier *Notifier, clock clockwork.Clock) *PaymentService {
	return &PaymentService{DB: db, Gateway: gw, Notifier: notifier, Clock: clock}
}

// BuildTransactionRef encodes the order code and optional down-payment stage
// into the gateway transaction id: Order-<code>[-DP<stage>]-<timestamp>.
// The live gateway configuration depends on this exact format.
func (s *PaymentService) BuildTransactionRef(code string, stage *int) string {
	suffix := ""
	if stage != nil {
		suffix = fmt.Sprintf("-DP%d", *stage)
	}
	timestamp := utils.NowWIB(s.Clock).Format("20060102150405")
	return fmt.Sprintf("Order-%s%s-%s", code, suffix, timestamp)
}

// ParseTransactionRef is the inverse, applied to webhook payloads.
func ParseTransactionRef(ref string) (string, *int, error) {
	parts := strings.Split(ref, "-")
	if len(parts) < 3 || parts[0] != "Order" {
		return "", nil, BadRequest("Invalid transaction reference")
	}

	var stage *int
	for _, part := range parts[2:] {
		switch part {
		case "DP1":
			stage = utils.Ptr(1)
		case "DP2":
			stage = utils.Ptr(2)
		}
	}
	return parts[1], stage, nil
}

// MapGatewayStatus translates transaction + fraud status into the internal
// (payment, order) status pair.
func MapGatewayStatus(transactionStatus, fraudStatus string) (model.PaymentStatus, model.OrderStatus, error) {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return model.PaymentUnpaid, model.OrderUnpaid, nil
		}
		return model.PaymentPaid, model.OrderProcess, nil
	case "settlement":
		return model.PaymentPaid, model.OrderProcess, nil
	case "cancel", "deny", "expire":
		return model.PaymentCancelled, model.OrderCancelled, nil
	case "pending":
		return model.PaymentUnpaid, model.OrderUnpaid, nil
	default:
		return "", "", BadRequest(fmt.Sprintf("Unknown transaction status %q", transactionStatus))
	}
}

type PaymentLinks struct {
	PaymentLink  string `json:"paymentLink,omitempty"`
	PaymentLink1 string `json:"paymentLink1,omitempty"`
	PaymentLink2 string `json:"paymentLink2,omitempty"`
}

// Create issues payment links for an order, either one full-payment leg or
// the two staged down-payment legs.
func (s *PaymentService) Create(orderID uint, method model.PaymentMethod) (*PaymentLinks, error) {
	var order model.Order
	if err := s.DB.Preload("User").Preload("Payments").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(fmt.Sprintf("Order with id %d not found", orderID))
		}
		return nil, err
	}

	switch order.Status {
	case model.OrderPending:
		return nil, BadRequest("Order is pending and waiting admin approval")
	case model.OrderDone:
		return nil, BadRequest("Order has already been done")
	case model.OrderCancelled:
		return nil, BadRequest("Order has been cancelled and cannot be paid")
	}

	isFullPaid := false
	dp1Paid := false
	dp2Paid := false
	for _, p := range order.Payments {
		if p.Status != model.PaymentPaid {
			continue
		}
		switch {
		case p.PaymentStage == nil:
			isFullPaid = true
		case *p.PaymentStage == 1:
			dp1Paid = true
		case *p.PaymentStage == 2:
			dp2Paid = true
		}
	}

	if isFullPaid {
		return nil, BadRequest("Order already fully paid. Cannot create new payment.")
	}
	if dp1Paid && method == model.FullPayment {
		return nil, BadRequest("Order already started with Down Payment. Cannot use Full Payment now.")
	}
	if dp1Paid && dp2Paid {
		return nil, BadRequest("Order already fully paid via Down Payment.")
	}

	if method == model.FullPayment {
		return s.createFullPayment(&order)
	}
	return s.createDownPayment(&order)
}

func (s *PaymentService) transactionRequest(order *model.Order, amount int64, stage *int) gateway.TransactionRequest {
	return gateway.TransactionRequest{
		OrderID:       s.BuildTransactionRef(order.Code, stage),
		GrossAmount:   amount,
		CustomerName:  order.User.Fullname,
		CustomerEmail: order.User.Email,
		CustomerPhone: order.User.PhoneNumber,
	}
}

func (s *PaymentService) createFullPayment(order *model.Order) (*PaymentLinks, error) {
	txn, err := s.Gateway.CreateTransaction(s.transactionRequest(order, order.TotalAmount, nil))
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Payment
		result := tx.Where("order_id = ? AND payment_stage IS NULL", order.ID).First(&existing)
		if result.Error == nil {
			if err := tx.Model(&existing).
				Updates(map[string]any{"payment_url": txn.RedirectURL, "status": model.PaymentUnpaid}).Error; err != nil {
				return err
			}
		} else if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			payment := model.Payment{
				OrderID:       order.ID,
				PaymentStage:  nil,
				Amount:        order.TotalAmount,
				MethodPayment: model.FullPayment,
				PaymentURL:    txn.RedirectURL,
				Status:        model.PaymentUnpaid,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
		} else {
			return result.Error
		}

		return tx.Model(&model.Order{}).Where("id = ?", order.ID).
			Updates(map[string]any{"remaining_amount": nil, "is_paid": false}).Error
	})
	if err != nil {
		return nil, err
	}

	return &PaymentLinks{PaymentLink: txn.RedirectURL}, nil
}

func (s *PaymentService) createDownPayment(order *model.Order) (*PaymentLinks, error) {
	// The remainder of an odd total is carried by the remaining bookkeeping,
	// not the legs: remaining = total - floor(total/2).
	downPaymentAmount := order.TotalAmount / 2
	remaining := order.TotalAmount - downPaymentAmount

	txn1, err := s.Gateway.CreateTransaction(s.transactionRequest(order, downPaymentAmount, utils.Ptr(1)))
	if err != nil {
		return nil, err
	}
	txn2, err := s.Gateway.CreateTransaction(s.transactionRequest(order, downPaymentAmount, utils.Ptr(2)))
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for stage, url := range map[int]string{1: txn1.RedirectURL, 2: txn2.RedirectURL} {
			payment := model.Payment{
				OrderID:       order.ID,
				PaymentStage:  utils.Ptr(stage),
				Amount:        downPaymentAmount,
				MethodPayment: model.DownPayment,
				PaymentURL:    url,
				Status:        model.PaymentUnpaid,
			}
			// A leg that already settled keeps its paid status; re-issuing only
			// refreshes legs still awaiting payment.
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "order_id"}, {Name: "payment_stage"}},
				DoUpdates: clause.AssignmentColumns([]string{"payment_url", "status"}),
				Where: clause.Where{Exprs: []clause.Expression{
					clause.Neq{Column: clause.Column{Name: "status"}, Value: string(model.PaymentPaid)},
				}},
			}).Create(&payment).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.Order{}).Where("id = ?", order.ID).
			Updates(map[string]any{"remaining_amount": remaining, "is_paid": false}).Error
	})
	if err != nil {
		return nil, err
	}

	return &PaymentLinks{PaymentLink1: txn1.RedirectURL, PaymentLink2: txn2.RedirectURL}, nil
}

// Reconcile applies one gateway notification: upsert the payment leg, update
// the order, and notify the customer — atomically, and idempotent under
// webhook redelivery.
func (s *PaymentService) Reconcile(n gateway.Notification) error {
	orderCode, stage, err := ParseTransactionRef(n.OrderID)
	if err != nil {
		return err
	}

	paymentStatus, _, err := MapGatewayStatus(n.TransactionStatus, n.FraudStatus)
	if err != nil {
		return err
	}

	var order model.Order
	if err := s.DB.Where("code = ?", orderCode).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(constants.ORDER_NOT_FOUND)
		}
		return err
	}

	changed := false
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("order_id = ?", order.ID)
		if stage != nil {
			query = query.Where("payment_stage = ?", *stage)
		} else {
			query = query.Where("payment_stage IS NULL")
		}

		var payment model.Payment
		result := query.First(&payment)
		if result.Error == nil {
			changed = payment.Status != paymentStatus
			if changed {
				if err := tx.Model(&payment).Update("status", paymentStatus).Error; err != nil {
					return err
				}
			}
		} else if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// Normally created at payment-request time; tolerate a webhook
			// arriving first.
			method := model.FullPayment
			if stage != nil {
				method = model.DownPayment
			}
			payment = model.Payment{
				OrderID:       order.ID,
				PaymentStage:  stage,
				Amount:        parseGrossAmount(n.GrossAmount),
				MethodPayment: method,
				PaymentURL:    "",
				Status:        paymentStatus,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			changed = true
		} else {
			return result.Error
		}

		return s.applyOrderUpdate(tx, &order, stage, paymentStatus)
	})
	if err != nil {
		return err
	}

	// Redelivering the same final state converges to the same rows and must
	// not notify again.
	if changed {
		stageSuffix := ""
		if stage != nil {
			stageSuffix = fmt.Sprintf(" (DP%d)", *stage)
		}
		s.Notifier.Notify(order.UserID,
			fmt.Sprintf("Payment %s", capitalize(string(paymentStatus))),
			fmt.Sprintf("Payment status for order %s is %s%s", orderCode, paymentStatus, stageSuffix))
	}
	return nil
}

// applyOrderUpdate moves the order per the reconciled leg. A staged order is
// only marked paid once both legs are settled, so an out-of-order DP2
// notification cannot close the order while DP1 is outstanding.
func (s *PaymentService) applyOrderUpdate(tx *gorm.DB, order *model.Order, stage *int, paymentStatus model.PaymentStatus) error {
	switch {
	case paymentStatus == model.PaymentPaid && stage == nil:
		return tx.Model(&model.Order{}).Where("id = ?", order.ID).
			Updates(map[string]any{"status": model.OrderProcess, "is_paid": true, "remaining_amount": nil}).Error

	case paymentStatus == model.PaymentPaid:
		var paidStages int64
		if err := tx.Model(&model.Payment{}).
			Where("order_id = ? AND payment_stage IS NOT NULL AND status = ?", order.ID, model.PaymentPaid).
			Count(&paidStages).Error; err != nil {
			return err
		}

		updates := map[string]any{"status": model.OrderProcess}
		if paidStages >= 2 {
			updates["is_paid"] = true
			updates["remaining_amount"] = nil
		} else {
			downPaymentAmount := order.TotalAmount / 2
			updates["is_paid"] = false
			if *stage == 1 {
				updates["remaining_amount"] = downPaymentAmount
			} else {
				updates["remaining_amount"] = order.TotalAmount - downPaymentAmount
			}
		}
		return tx.Model(&model.Order{}).Where("id = ?", order.ID).Updates(updates).Error

	case paymentStatus == model.PaymentCancelled:
		return tx.Model(&model.Order{}).Where("id = ?", order.ID).
			Updates(map[string]any{"status": model.OrderCancelled, "is_paid": false, "remaining_amount": nil}).Error
	}

	// Unpaid observations (pending, challenge) leave the order untouched.
	return nil
}

func parseGrossAmount(gross string) int64 {
	value, err := strconv.ParseFloat(gross, 64)
	if err != nil {
		return 0
	}
	return int64(value)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
