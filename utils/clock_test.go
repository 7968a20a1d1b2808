package utils

import (
	"testing"
	"time"
)

func TestParseClockTime(t *testing.T) {
	date := NewCustomDate(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		input    string
		wantHour int
		wantMin  int
		wantErr  bool
	}{
		{input: "9.00", wantHour: 9, wantMin: 0},
		{input: "17.30", wantHour: 17, wantMin: 30},
		{input: "0.05", wantHour: 0, wantMin: 5},
		{input: "24.00", wantErr: true},
		{input: "9.60", wantErr: true},
		{input: "9:00", wantErr: true},
		{input: "morning", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClockTime(date, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			if got.Hour() != tt.wantHour || got.Minute() != tt.wantMin {
				t.Errorf("got %d.%02d, want %d.%02d", got.Hour(), got.Minute(), tt.wantHour, tt.wantMin)
			}
			if got.Location() != WIB {
				t.Errorf("location = %v, want WIB", got.Location())
			}
		})
	}
}

func TestFormatClockTimeRoundTrip(t *testing.T) {
	date := NewCustomDate(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	for _, input := range []string{"7.00", "13.45", "17.30"} {
		parsed, err := ParseClockTime(date, input)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatClockTime(parsed); got != input {
			t.Errorf("round trip %q -> %q", input, got)
		}
	}
}

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	if err := d.UnmarshalJSON([]byte(`"2026-03-10"`)); err != nil {
		t.Fatal(err)
	}
	out, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"2026-03-10"` {
		t.Errorf("marshal = %s", out)
	}

	if err := d.UnmarshalJSON([]byte(`"10-03-2026"`)); err == nil {
		t.Error("expected error for reversed date format")
	}

	var zero CustomDate
	out, _ = zero.MarshalJSON()
	if string(out) != "null" {
		t.Errorf("zero date marshal = %s, want null", out)
	}
}
