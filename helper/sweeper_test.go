package helper

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"studio_booking/model"
	"studio_booking/utils"
)

func seedOrderAt(t *testing.T, db *gorm.DB, userID uint, status model.OrderStatus, expiredPaid *time.Time) model.Order {
	t.Helper()
	order := model.Order{
		Code:        GenerateOrderCode(),
		Status:      status,
		TotalAmount: 150000,
		Fullname:    "Rina Wijaya",
		PhoneNumber: "081234567890",
		UserID:      userID,
		ExpiredPaid: expiredPaid,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestSweepCancelsExpiredUnpaidOrders(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock()
	sweeper := NewSweeper(db, clock)
	user := seedCustomer(t, db)

	now := utils.NowWIB(clock)
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	expired := seedOrderAt(t, db, user.ID, model.OrderUnpaid, &past)
	open := seedOrderAt(t, db, user.ID, model.OrderUnpaid, &future)
	pending := seedOrderAt(t, db, user.ID, model.OrderPending, nil)
	paid := seedOrderAt(t, db, user.ID, model.OrderProcess, &past)

	count, err := sweeper.Sweep(now)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("swept = %d, want 1", count)
	}

	wantStatus := map[uint]model.OrderStatus{
		expired.ID: model.OrderCancelled,
		open.ID:    model.OrderUnpaid,
		pending.ID: model.OrderPending,
		paid.ID:    model.OrderProcess,
	}
	for id, want := range wantStatus {
		var got model.Order
		db.First(&got, id)
		if got.Status != want {
			t.Errorf("order %d status = %s, want %s", id, got.Status, want)
		}
	}

	// A swept order no longer matches; the sweep is idempotent.
	count, err = sweeper.Sweep(now)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("second sweep = %d, want 0", count)
	}
}

func TestDeactivateExpiredDiscounts(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock()
	sweeper := NewSweeper(db, clock)

	now := utils.NowWIB(clock)
	yesterday := utils.NewCustomDate(now.AddDate(0, 0, -1))
	nextWeek := utils.NewCustomDate(now.AddDate(0, 0, 7))

	codes := []model.DiscountCode{
		{Code: "STALE", Percentage: 10, Status: true, ValidUntil: &yesterday},
		{Code: "FRESH", Percentage: 10, Status: true, ValidUntil: &nextWeek},
		{Code: "EVERGREEN", Percentage: 10, Status: true},
	}
	if err := db.Create(&codes).Error; err != nil {
		t.Fatal(err)
	}

	count, err := sweeper.DeactivateExpiredDiscounts(now)
	if err != nil {
		t.Fatalf("deactivation failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("deactivated = %d, want 1", count)
	}

	wantStatus := map[string]bool{"STALE": false, "FRESH": true, "EVERGREEN": true}
	for code, want := range wantStatus {
		var got model.DiscountCode
		db.Where("code = ?", code).First(&got)
		if got.Status != want {
			t.Errorf("code %s status = %v, want %v", code, got.Status, want)
		}
	}
}
