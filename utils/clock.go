package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// All recorded timestamps use WIB (UTC+7), matching the live deployment.
var WIB = time.FixedZone("WIB", 7*3600)

// NowWIB reads the injected clock in the service timezone.
func NowWIB(clock clockwork.Clock) time.Time {
	return clock.Now().In(WIB)
}

func FormatDateTimeWIB(t time.Time) string {
	return t.In(WIB).Format("02 January 2006 15:04")
}

// ParseClockTime combines a calendar day with an "H.MM" clock string
// (dot-separated, the format the front-end has always sent).
func ParseClockTime(date CustomDate, clockStr string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(clockStr), ".")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("time must be in H.MM format, got %q", clockStr)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return time.Time{}, fmt.Errorf("invalid hour in %q", clockStr)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return time.Time{}, fmt.Errorf("invalid minute in %q", clockStr)
	}

	d := date.Time
	return time.Date(d.Year(), d.Month(), d.Day(), hours, minutes, 0, 0, WIB), nil
}

// FormatClockTime renders a timestamp back into the front-end's "H.MM" form.
func FormatClockTime(t time.Time) string {
	return fmt.Sprintf("%d.%02d", t.In(WIB).Hour(), t.In(WIB).Minute())
}
