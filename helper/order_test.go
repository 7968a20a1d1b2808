package helper

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"studio_booking/constants"
	"studio_booking/model"
	"studio_booking/utils"
)

func newOrderEngine(t *testing.T) (*OrderEngine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	clock := newFakeClock()
	store := NewScheduleStore(db, nil, clock)
	engine := NewOrderEngine(db, store, NewDiscountEvaluator(db), NewNotifier(db), clock)
	return engine, db
}

func orderInput(date, clock string) model.CreateOrderInput {
	return model.CreateOrderInput{
		Date:        utils.CustomDate{Time: mustParseDay(date)},
		Time:        clock,
		Location:    "Studio A",
		Quantity:    1,
		Fullname:    "Rina Wijaya",
		PhoneNumber: "081234567890",
	}
}

func mustParseDay(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestGenerateOrderCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := GenerateOrderCode()
		if !strings.HasPrefix(code, "ORD") {
			t.Fatalf("code %q missing ORD prefix", code)
		}
		if strings.Contains(code, "-") {
			t.Fatalf("code %q contains a dash; transaction refs split on dashes", code)
		}
		if len(code) != 13 {
			t.Fatalf("code %q length = %d, want 13", code, len(code))
		}
		if seen[code] {
			t.Fatalf("duplicate code %q", code)
		}
		seen[code] = true
	}
}

func TestCreateOrderBooksSchedule(t *testing.T) {
	engine, db := newOrderEngine(t)
	user := seedCustomer(t, db)
	product := seedHourlyProduct(t, db, 150000)

	in := orderInput("2026-03-12", "9.00")
	in.Quantity = 2

	order, err := engine.Create(context.Background(), user.ID, product.ID, in)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if order.Status != model.OrderPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if order.TotalAmount != 300000 {
		t.Errorf("totalAmount = %d, want 300000", order.TotalAmount)
	}
	if order.ScheduleID == nil || order.Schedule == nil {
		t.Fatal("order has no schedule")
	}
	if got := order.Schedule.EndTime.Sub(order.Schedule.Time); got != 2*time.Hour {
		t.Errorf("schedule span = %v, want 2h", got)
	}
	if len(order.OrderDetails) != 1 || order.OrderDetails[0].Subtotal != 300000 {
		t.Errorf("unexpected order details: %+v", order.OrderDetails)
	}

	var notifications int64
	db.Model(&model.Notification{}).Where("user_id = ?", user.ID).Count(&notifications)
	if notifications != 1 {
		t.Errorf("notifications = %d, want 1", notifications)
	}
}

func TestCreateOrderRejectsBookedSlot(t *testing.T) {
	engine, db := newOrderEngine(t)
	user := seedCustomer(t, db)
	product := seedHourlyProduct(t, db, 150000)

	if _, err := engine.Create(context.Background(), user.ID, product.ID, orderInput("2026-03-12", "9.00")); err != nil {
		t.Fatalf("first order failed: %v", err)
	}

	_, err := engine.Create(context.Background(), user.ID, product.ID, orderInput("2026-03-12", "10.00"))
	wantServiceError(t, err, constants.SCHEDULE_IS_BOOKED)
}

func TestCreateOrderOutsideWindow(t *testing.T) {
	engine, db := newOrderEngine(t)
	user := seedCustomer(t, db)
	product := seedHourlyProduct(t, db, 150000)

	_, err := engine.Create(context.Background(), user.ID, product.ID, orderInput("2026-03-12", "18.30"))
	wantServiceError(t, err, constants.OUTSIDE_BOOKING_WINDOW)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	engine, db := newOrderEngine(t)
	user := seedCustomer(t, db)

	_, err := engine.Create(context.Background(), user.ID, 9999, orderInput("2026-03-12", "9.00"))
	wantServiceError(t, err, constants.PRODUCT_NOT_FOUND)
}

func TestCreateOrderAppliesDiscount(t *testing.T) {
	engine, db := newOrderEngine(t)
	user := seedCustomer(t, db)
	product := seedHourlyProduct(t, db, 100500)

	if err := db.Create(&model.DiscountCode{Code: "OPEN10", Percentage: 10, Status: true}).Error; err != nil {
		t.Fatal(err)
	}

	in := orderInput("2026-03-12", "9.00")
	in.DiscountCode = "OPEN10"

	order, err := engine.Create(context.Background(), user.ID, product.ID, in)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.DiscountAmount != 10050 {
		t.Errorf("discountAmount = %d, want 10050", order.DiscountAmount)
	}
	if order.TotalAmount != 90450 {
		t.Errorf("totalAmount = %d, want 90450", order.TotalAmount)
	}

	in2 := orderInput("2026-03-13", "9.00")
	in2.DiscountCode = "BOGUS"
	_, err = engine.Create(context.Background(), user.ID, product.ID, in2)
	wantServiceError(t, err, constants.INVALID_DISCOUNT_CODE)
}

func TestCreateOrderWithoutSchedule(t *testing.T) {
	engine, db := newOrderEngine(t)
	user := seedCustomer(t, db)
	product := seedProduct(t, db, model.Category{
		Name:             fmt.Sprintf("Digital Package %d", user.ID),
		RequiresSchedule: false,
		DurationRule:     model.DurationHourly,
	}, 50000, 0)

	order, err := engine.Create(context.Background(), user.ID, product.ID, orderInput("2026-03-12", "9.00"))
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ScheduleID != nil {
		t.Errorf("scheduleId = %v, want nil for a schedule-free category", *order.ScheduleID)
	}

	var schedules int64
	db.Model(&model.Schedule{}).Count(&schedules)
	if schedules != 0 {
		t.Errorf("schedules = %d, want 0", schedules)
	}
}

func TestValidateOpensPaymentWindow(t *testing.T) {
	engine, db := newOrderEngine(t)
	user := seedCustomer(t, db)
	product := seedHourlyProduct(t, db, 150000)

	order, err := engine.Create(context.Background(), user.ID, product.ID, orderInput("2026-03-12", "9.00"))
	if err != nil {
		t.Fatal(err)
	}

	validated, err := engine.Validate(order.ID)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if validated.Status != model.OrderUnpaid {
		t.Errorf("status = %s, want unpaid", validated.Status)
	}

	want := utils.NowWIB(engine.Clock).Add(8 * time.Hour)
	if validated.ExpiredPaid == nil {
		t.Fatal("expiredPaid not set")
	}
	if diff := validated.ExpiredPaid.Sub(want); diff < -time.Second || diff > time.Second {
		t.Errorf("expiredPaid = %v, want %v", validated.ExpiredPaid, want)
	}

	_, err = engine.Validate(order.ID)
	wantServiceError(t, err, "Order is already validated")
}

func TestCancelFreesSlotAndPayments(t *testing.T) {
	engine, db := newOrderEngine(t)
	user := seedCustomer(t, db)
	product := seedHourlyProduct(t, db, 150000)

	order, err := engine.Create(context.Background(), user.ID, product.ID, orderInput("2026-03-12", "9.00"))
	if err != nil {
		t.Fatal(err)
	}
	payment := model.Payment{
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		MethodPayment: model.FullPayment,
		Status:        model.PaymentUnpaid,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatal(err)
	}

	cancelled, err := engine.Cancel(order.ID, "Customer request")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != model.OrderCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}
	if cancelled.Note == nil || !strings.Contains(*cancelled.Note, "Customer request") {
		t.Errorf("note = %v, want cancellation reason", cancelled.Note)
	}

	var schedules int64
	db.Model(&model.Schedule{}).Count(&schedules)
	if schedules != 0 {
		t.Errorf("schedules = %d, want 0 after cancel", schedules)
	}

	var got model.Payment
	db.First(&got, payment.ID)
	if got.Status != model.PaymentCancelled {
		t.Errorf("payment status = %s, want cancelled", got.Status)
	}

	// The freed slot can be booked again.
	if _, err := engine.Create(context.Background(), user.ID, product.ID, orderInput("2026-03-12", "9.00")); err != nil {
		t.Fatalf("rebooking the freed slot failed: %v", err)
	}

	_, err = engine.Cancel(order.ID, "again")
	wantServiceError(t, err, "Order is already cancelled")
}

func TestMarkDoneRequiresSettledPayment(t *testing.T) {
	engine, db := newOrderEngine(t)
	user := seedCustomer(t, db)
	product := seedHourlyProduct(t, db, 150000)

	order, err := engine.Create(context.Background(), user.ID, product.ID, orderInput("2026-03-12", "9.00"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = engine.MarkDone(order.ID)
	wantServiceError(t, err, "Unable to complete order. Please validate the order first")

	if _, err := engine.Validate(order.ID); err != nil {
		t.Fatal(err)
	}
	_, err = engine.MarkDone(order.ID)
	wantServiceError(t, err, "Unable to complete order. Please pay for the order first")

	db.Model(&model.Order{}).Where("id = ?", order.ID).Update("status", model.OrderProcess)
	_, err = engine.MarkDone(order.ID)
	wantServiceError(t, err, "The order cannot be completed because payment has not been completed.")

	db.Model(&model.Order{}).Where("id = ?", order.ID).Update("is_paid", true)
	done, err := engine.MarkDone(order.ID)
	if err != nil {
		t.Fatalf("mark done failed: %v", err)
	}
	if done.Status != model.OrderDone {
		t.Errorf("status = %s, want done", done.Status)
	}

	_, err = engine.MarkDone(order.ID)
	wantServiceError(t, err, "Order is already complete")
}
