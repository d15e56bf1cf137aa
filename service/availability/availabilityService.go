package availability

import (
	"context"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/model"
)

// Range is a closed interval during which a product is unavailable.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Ledger is the slice of the booking ledger the engine needs.
type Ledger interface {
	ListByProduct(ctx context.Context, productID string) ([]model.Rental, error)
}

type Service interface {
	// BookedRanges returns [start, end + 1 day] for every non-completed
	// rental of the product. The extra day is the cleaning/turnaround
	// buffer after return.
	BookedRanges(ctx context.Context, productID string) ([]Range, error)

	// Check reports whether the candidate interval is free of conflicts.
	// Touching boundaries count as overlap. An unknown product has no
	// bookings and is therefore available; ordering of start/end is the
	// caller's responsibility.
	Check(ctx context.Context, productID string, start, end time.Time) (bool, error)
}

type service struct {
	ledger Ledger
}

func New(ledger Ledger) Service { return &service{ledger: ledger} }

func (s *service) BookedRanges(ctx context.Context, productID string) ([]Range, error) {
	rentals, err := s.ledger.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	var out []Range
	for _, r := range rentals {
		if r.Status == model.RentalCompleted {
			continue
		}
		out = append(out, Range{
			Start: r.StartDate,
			End:   r.EndDate.AddDate(0, 0, 1),
		})
	}
	return out, nil
}

func (s *service) Check(ctx context.Context, productID string, start, end time.Time) (bool, error) {
	ranges, err := s.BookedRanges(ctx, productID)
	if err != nil {
		return false, err
	}
	for _, rng := range ranges {
		// Overlap formula: startA <= endB && endA >= startB.
		if !start.After(rng.End) && !end.Before(rng.Start) {
			return false, nil
		}
	}
	return true, nil
}
