package helper

import (
	"testing"

	"studio_booking/constants"
	"studio_booking/model"
)

func TestApplyDiscount(t *testing.T) {
	db := newTestDB(t)
	evaluator := NewDiscountEvaluator(db)

	codes := []model.DiscountCode{
		{Code: "GRANDOPEN10", Percentage: 10, Status: true},
		{Code: "FREEPASS", Percentage: 100, Status: true},
		{Code: "NOTHING", Percentage: 0, Status: true},
		{Code: "LASTYEAR", Percentage: 25, Status: false},
	}
	if err := db.Create(&codes).Error; err != nil {
		t.Fatalf("seed discount codes: %v", err)
	}

	tests := []struct {
		name         string
		code         string
		subtotal     int64
		wantDiscount int64
		wantTotal    int64
		wantErr      string
	}{
		{name: "ten percent floors", code: "GRANDOPEN10", subtotal: 1005, wantDiscount: 100, wantTotal: 905},
		{name: "full discount", code: "FREEPASS", subtotal: 250000, wantDiscount: 250000, wantTotal: 0},
		{name: "zero percent", code: "NOTHING", subtotal: 250000, wantDiscount: 0, wantTotal: 250000},
		{name: "unknown code", code: "NOPE", subtotal: 1000, wantErr: constants.INVALID_DISCOUNT_CODE},
		{name: "deactivated code", code: "LASTYEAR", subtotal: 1000, wantErr: constants.EXPIRED_DISCOUNT_CODE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := evaluator.Apply(tt.code, tt.subtotal)
			if tt.wantErr != "" {
				wantServiceError(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Fatalf("apply failed: %v", err)
			}
			if result.DiscountAmount != tt.wantDiscount {
				t.Errorf("discount = %d, want %d", result.DiscountAmount, tt.wantDiscount)
			}
			if result.TotalAmount != tt.wantTotal {
				t.Errorf("total = %d, want %d", result.TotalAmount, tt.wantTotal)
			}
		})
	}
}
