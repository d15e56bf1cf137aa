package pricing_test

import (
	"testing"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/service/pricing"
)

func TestEstimate(t *testing.T) {
	cases := []struct {
		name       string
		price      float64
		start, end string
		want       float64
	}{
		{"same day is one day", 40, "2026-06-01", "2026-06-01", 40},
		{"two calendar days", 40, "2026-06-01", "2026-06-02", 80},
		{"three calendar days", 40, "2026-06-01", "2026-06-03", 120},
		{"inverted prices at zero", 40, "2026-06-03", "2026-06-01", 0},
		{"bad start prices at zero", 40, "not-a-date", "2026-06-01", 0},
		{"bad end prices at zero", 40, "2026-06-01", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.Estimate(tc.price, tc.start, tc.end)
			if got != tc.want {
				t.Fatalf("Estimate(%v, %q, %q) = %v, want %v", tc.price, tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestRentalDays(t *testing.T) {
	noon := func(day int) time.Time {
		return time.Date(2026, time.June, day, 12, 0, 0, 0, time.UTC)
	}

	if got := pricing.RentalDays(noon(1), noon(1)); got != 1 {
		t.Fatalf("same timestamp = %d days, want 1", got)
	}
	if got := pricing.RentalDays(noon(1), noon(3)); got != 3 {
		t.Fatalf("two full days apart = %d days, want 3", got)
	}
	// A partial day rounds up before the +1.
	if got := pricing.RentalDays(noon(1), noon(2).Add(time.Hour)); got != 3 {
		t.Fatalf("25h apart = %d days, want 3", got)
	}
	// Order does not matter.
	if got := pricing.RentalDays(noon(3), noon(1)); got != 3 {
		t.Fatalf("inverted = %d days, want 3", got)
	}
}
