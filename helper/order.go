package helper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"studio_booking/constants"
	"studio_booking/model"
	"studio_booking/utils"
)

// OrderEngine creates orders and drives the order status state machine.
type OrderEngine struct {
	DB        *gorm.DB
	Schedules *ScheduleStore
	Discounts *DiscountEvaluator
	Notifier  *Notifier
	Clock     clockwork.Clock
}

func NewOrderEngine(db *gorm.DB, schedules *ScheduleStore, discounts *DiscountEvaluator, notifier *Notifier, clock clockwork.Clock) *OrderEngine {
	return &OrderEngine{DB: db, Schedules: schedules, Discounts: discounts, Notifier: notifier, Clock: clock}
}

// GenerateOrderCode returns a short public code. It must stay dash-free: the
// gateway transaction reference Order-<code>[-DPn]-<ts> is parsed by splitting
// on dashes.
func GenerateOrderCode() string {
	return "ORD" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
}

// Create builds the order with its detail line and, for categories that book
// a slot, the schedule — all in one transaction under the overlap rule.
func (e *OrderEngine) Create(ctx context.Context, userID, productID uint, in model.CreateOrderInput) (*model.Order, error) {
	var product model.Product
	if err := e.DB.Preload("Category").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(constants.PRODUCT_NOT_FOUND)
		}
		return nil, err
	}

	start, err := utils.ParseClockTime(in.Date, in.Time)
	if err != nil {
		return nil, BadRequest(err.Error())
	}

	subtotal := product.Price * int64(in.Quantity)

	var discountAmount int64
	if in.DiscountCode != "" {
		result, err := e.Discounts.Apply(in.DiscountCode, subtotal)
		if err != nil {
			return nil, err
		}
		discountAmount = result.DiscountAmount
	}
	totalAmount := subtotal - discountAmount

	reserve := ReserveInput{
		Date:     in.Date,
		Start:    start,
		Duration: product.Duration,
		Location: in.Location,
		Policy:   product.Category,
	}
	if product.Category.RequiresSchedule {
		// Reject window violations before taking the date lock.
		if err := e.Schedules.CheckWindow(product.Category, start); err != nil {
			return nil, err
		}
		release, err := e.Schedules.LockDate(ctx, in.Date)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	order := model.Order{
		Code:           GenerateOrderCode(),
		Status:         model.OrderPending,
		TotalAmount:    totalAmount,
		DiscountAmount: discountAmount,
		Note:           in.Note,
		Fullname:       in.Fullname,
		PhoneNumber:    in.PhoneNumber,
		UserID:         userID,
	}

	err = e.DB.Transaction(func(tx *gorm.DB) error {
		if product.Category.RequiresSchedule {
			schedule, err := e.Schedules.ReserveTx(tx, reserve)
			if err != nil {
				return err
			}
			order.ScheduleID = &schedule.ID
			order.Schedule = schedule
		}

		order.OrderDetails = []model.OrderDetail{{
			ProductID: product.ID,
			Quantity:  in.Quantity,
			Price:     product.Price,
			Subtotal:  subtotal,
			Discount:  discountAmount,
		}}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	// Keep the profile in sync with what the customer typed at checkout.
	if err := e.DB.Model(&model.User{}).Where("id = ?", userID).
		Updates(map[string]any{"fullname": in.Fullname, "phone_number": in.PhoneNumber}).Error; err != nil {
		// Not part of the order transaction; the order itself is committed.
		log.Printf("failed to update user profile: %v", err)
	}

	e.Notifier.Notify(userID, "Order Created",
		"Your order created successfully and awaiting admin approval!")

	return &order, nil
}

func (e *OrderEngine) load(orderID uint, preloads ...string) (*model.Order, error) {
	query := e.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	var order model.Order
	if err := query.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(constants.ORDER_NOT_FOUND)
		}
		return nil, err
	}
	return &order, nil
}

// Validate moves a pending order to unpaid and opens the 8-hour payment window.
func (e *OrderEngine) Validate(orderID uint) (*model.Order, error) {
	order, err := e.load(orderID)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case model.OrderUnpaid, model.OrderProcess:
		return nil, BadRequest("Order is already validated")
	case model.OrderDone:
		return nil, BadRequest("Order is already complete")
	case model.OrderCancelled:
		return nil, BadRequest("Order is already cancelled")
	}

	expiredPaid := utils.NowWIB(e.Clock).Add(8 * time.Hour)
	updates := map[string]any{"status": model.OrderUnpaid, "expired_paid": expiredPaid}
	if err := e.DB.Model(order).Updates(updates).Error; err != nil {
		return nil, err
	}
	order.Status = model.OrderUnpaid
	order.ExpiredPaid = &expiredPaid
	return order, nil
}

// Cancel is allowed from any non-terminal state. It frees the booked slot,
// cancels all payment legs and records the reason in the order note.
func (e *OrderEngine) Cancel(orderID uint, reason string) (*model.Order, error) {
	order, err := e.load(orderID, "Schedule")
	if err != nil {
		return nil, err
	}

	if order.Status == model.OrderDone {
		return nil, BadRequest("Order is already complete")
	}
	if order.Status == model.OrderCancelled {
		return nil, BadRequest("Order is already cancelled")
	}

	err = e.DB.Transaction(func(tx *gorm.DB) error {
		if order.Schedule != nil {
			if err := tx.Model(&model.Order{}).Where("id = ?", order.ID).
				Update("schedule_id", nil).Error; err != nil {
				return err
			}
			if err := e.Schedules.DeleteForOrder(tx, order.Schedule.ID); err != nil {
				return err
			}
		}

		note := fmt.Sprintf("Cancellation reason: %s", reason)
		if err := tx.Model(&model.Order{}).Where("id = ?", order.ID).
			Updates(map[string]any{"status": model.OrderCancelled, "note": note}).Error; err != nil {
			return err
		}

		return tx.Model(&model.Payment{}).Where("order_id = ?", order.ID).
			Update("status", model.PaymentCancelled).Error
	})
	if err != nil {
		return nil, err
	}

	e.Notifier.Notify(order.UserID, "Order Cancelled",
		fmt.Sprintf("Your order %s has been cancelled. Because: %s", order.Code, reason))

	return e.load(orderID, "OrderDetails", "OrderDetails.Product")
}

// MarkDone completes an order; only reachable from process with payment settled.
func (e *OrderEngine) MarkDone(orderID uint) (*model.Order, error) {
	order, err := e.load(orderID, "OrderDetails", "OrderDetails.Product", "Schedule")
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case model.OrderPending:
		return nil, BadRequest("Unable to complete order. Please validate the order first")
	case model.OrderUnpaid:
		return nil, BadRequest("Unable to complete order. Please pay for the order first")
	case model.OrderDone:
		return nil, BadRequest("Order is already complete")
	case model.OrderCancelled:
		return nil, BadRequest("Order is already cancelled")
	}

	if !order.IsPaid {
		return nil, BadRequest("The order cannot be completed because payment has not been completed.")
	}

	if err := e.DB.Model(order).Update("status", model.OrderDone).Error; err != nil {
		return nil, err
	}
	order.Status = model.OrderDone

	e.Notifier.Notify(order.UserID, "Order Completed",
		fmt.Sprintf("Your order %s has been completed. Thank you for using our service!", order.Code))

	return order, nil
}
