// service/pricing/pricing.go
package pricing

import (
	"math"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/util/dates"
)

// Estimate is the customer-facing total for a calendar-date range:
// ceil(diff in days)+1 rental days at the daily price. Both endpoints are
// rental days, so a same-day rental is one day. Inverted or unparseable
// ranges price at 0; the caller surfaces those as validation problems.
func Estimate(pricePerDay float64, startDate, endDate string) float64 {
	start, err := dates.Parse(startDate)
	if err != nil {
		return 0
	}
	end, err := dates.Parse(endDate)
	if err != nil {
		return 0
	}
	if start.After(end) {
		return 0
	}
	return float64(RentalDays(start, end)) * pricePerDay
}

// RentalDays counts billable days between two timestamps the way the admin
// booking form does: ceil(|end-start| / 24h) + 1. This intentionally keeps
// the source's divergence between the admin formula (which sees the
// operator's timestamps) and the customer estimator (which sees calendar
// dates only).
func RentalDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}
