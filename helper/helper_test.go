package helper

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gosimple/slug"
	"github.com/jonboulle/clockwork"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studio_booking/gateway"
	"studio_booking/model"
	"studio_booking/utils"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Schedule{},
		&model.Order{},
		&model.OrderDetail{},
		&model.Payment{},
		&model.DiscountCode{},
		&model.Notification{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newFakeClock() clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2026, 3, 10, 9, 0, 0, 0, utils.WIB))
}

func seedCustomer(t *testing.T, db *gorm.DB) model.User {
	t.Helper()
	user := model.User{
		Fullname:    "Rina Wijaya",
		Email:       fmt.Sprintf("rina%d@example.com", atomic.AddInt64(&testDBSeq, 1)),
		Password:    "hashed",
		PhoneNumber: "081234567890",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return user
}

func seedHourlyProduct(t *testing.T, db *gorm.DB, price int64) model.Product {
	t.Helper()
	return seedProduct(t, db, model.Category{
		Name:             fmt.Sprintf("Photography Session %d", atomic.AddInt64(&testDBSeq, 1)),
		RequiresSchedule: true,
		WindowStartHour:  7,
		WindowEndHour:    17,
		DurationRule:     model.DurationHourly,
	}, price, 2)
}

func seedMonthlyProduct(t *testing.T, db *gorm.DB, price int64) model.Product {
	t.Helper()
	return seedProduct(t, db, model.Category{
		Name:             fmt.Sprintf("Monthly Studio Rental %d", atomic.AddInt64(&testDBSeq, 1)),
		RequiresSchedule: true,
		WindowStartHour:  0,
		WindowEndHour:    23,
		DurationRule:     model.DurationMonthly,
	}, price, 1)
}

func seedProduct(t *testing.T, db *gorm.DB, category model.Category, price int64, duration int) model.Product {
	t.Helper()
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	name := fmt.Sprintf("%s Basic", category.Name)
	product := model.Product{
		Name:       name,
		Slug:       slug.Make(name),
		Price:      price,
		Duration:   duration,
		CategoryID: category.ID,
		Category:   category,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func mustDate(t *testing.T, value string) utils.CustomDate {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return utils.NewCustomDate(parsed)
}

// gatewayFunc lets a test stand in for the hosted payment processor.
type gatewayFunc func(req gateway.TransactionRequest) (*gateway.TransactionResponse, error)

func (f gatewayFunc) CreateTransaction(req gateway.TransactionRequest) (*gateway.TransactionResponse, error) {
	return f(req)
}

func staticGateway(redirectURL string) gatewayFunc {
	return func(req gateway.TransactionRequest) (*gateway.TransactionResponse, error) {
		return &gateway.TransactionResponse{Token: "tok", RedirectURL: redirectURL + "/" + req.OrderID}, nil
	}
}

func wantServiceError(t *testing.T, err error, message string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", message)
	}
	serr := AsServiceError(err)
	if serr == nil {
		t.Fatalf("expected service error %q, got %v", message, err)
	}
	if serr.Message != message {
		t.Fatalf("expected error %q, got %q", message, serr.Message)
	}
}
