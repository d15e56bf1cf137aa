package availability_test

import (
	"context"
	"testing"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/model"
	"github.com/aleksiojala-maker/hihoneyapp/service/availability"
)

type ledgerMock struct {
	rows []model.Rental
}

func (m *ledgerMock) ListByProduct(ctx context.Context, productID string) ([]model.Rental, error) {
	var out []model.Rental
	for _, r := range m.rows {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func day(n int) time.Time {
	return time.Date(2026, time.June, n, 0, 0, 0, 0, time.UTC)
}

func rental(productID string, start, end int, status model.RentalStatus) model.Rental {
	return model.Rental{
		ID:        "r",
		ProductID: productID,
		StartDate: day(start),
		EndDate:   day(end),
		Status:    status,
	}
}

func TestBookedRanges_AddsBufferDay(t *testing.T) {
	m := &ledgerMock{rows: []model.Rental{rental("p1", 10, 12, model.RentalReserved)}}
	s := availability.New(m)

	ranges, err := s.BookedRanges(context.Background(), "p1")
	if err != nil {
		t.Fatalf("BookedRanges: %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1", len(ranges))
	}
	if !ranges[0].Start.Equal(day(10)) || !ranges[0].End.Equal(day(13)) {
		t.Fatalf("got range %v-%v, want day10-day13", ranges[0].Start, ranges[0].End)
	}
}

func TestBookedRanges_SkipsCompleted(t *testing.T) {
	m := &ledgerMock{rows: []model.Rental{
		rental("p1", 10, 12, model.RentalCompleted),
		rental("p1", 20, 21, model.RentalActive),
	}}
	s := availability.New(m)

	ranges, err := s.BookedRanges(context.Background(), "p1")
	if err != nil {
		t.Fatalf("BookedRanges: %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("got %d ranges, want 1 (completed excluded)", len(ranges))
	}
	if !ranges[0].Start.Equal(day(20)) {
		t.Fatalf("wrong range survived: %v", ranges[0])
	}
}

func TestBookedRanges_Idempotent(t *testing.T) {
	m := &ledgerMock{rows: []model.Rental{rental("p1", 10, 12, model.RentalReserved)}}
	s := availability.New(m)

	a, err := s.BookedRanges(context.Background(), "p1")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	b, err := s.BookedRanges(context.Background(), "p1")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("length changed: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Start.Equal(b[i].Start) || !a[i].End.Equal(b[i].End) {
			t.Fatalf("range %d changed between calls", i)
		}
	}
}

func TestCheck_Overlaps(t *testing.T) {
	// One rental: days 10-12, so days 10-13 are blocked (buffer).
	m := &ledgerMock{rows: []model.Rental{rental("p1", 10, 12, model.RentalReserved)}}
	s := availability.New(m)
	ctx := context.Background()

	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"inside booking", 11, 11, false},
		{"covers booking", 9, 14, false},
		{"buffer day blocked", 13, 15, false},
		{"after buffer", 14, 16, true},
		{"before booking", 5, 8, true},
		{"end touches start", 8, 10, false},
		{"start touches buffer end", 13, 13, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Check(ctx, "p1", day(tc.start), day(tc.end))
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Check(%d-%d) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestCheck_UnknownProductIsAvailable(t *testing.T) {
	m := &ledgerMock{rows: []model.Rental{rental("p1", 10, 12, model.RentalReserved)}}
	s := availability.New(m)

	got, err := s.Check(context.Background(), "missing", day(10), day(12))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !got {
		t.Fatal("unknown product should be available")
	}
}
