package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/service/availability"
	"github.com/aleksiojala-maker/hihoneyapp/service/calendar"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2026, time.June, n, 0, 0, 0, 0, time.UTC)
}

func newSelector(bookedStart, bookedEnd int) *calendar.Selector {
	return calendar.NewSelector(day(1), []availability.Range{
		{Start: day(bookedStart), End: day(bookedEnd)},
	})
}

func TestSelector_DisabledDays(t *testing.T) {
	s := calendar.NewSelector(day(10), []availability.Range{
		{Start: day(15), End: day(17)},
	})

	require.True(t, s.Disabled(day(9)), "past day")
	require.False(t, s.Disabled(day(10)), "today")
	require.True(t, s.Disabled(day(15)), "booked start")
	require.True(t, s.Disabled(day(16)), "inside booking")
	require.True(t, s.Disabled(day(17)), "booked end")
	require.False(t, s.Disabled(day(18)), "after booking")
}

func TestSelector_DisabledClickIsNoOp(t *testing.T) {
	s := newSelector(15, 17)

	sel, err := s.Click(day(16))
	require.NoError(t, err)
	require.Nil(t, sel)
	require.Equal(t, calendar.StateEmpty, s.State())
}

func TestSelector_EmitsValidRange(t *testing.T) {
	s := newSelector(15, 17)

	sel, err := s.Click(day(5))
	require.NoError(t, err)
	require.Nil(t, sel)
	require.Equal(t, calendar.StateStartChosen, s.State())

	sel, err = s.Click(day(8))
	require.NoError(t, err)
	require.NotNil(t, sel)
	require.Equal(t, "2026-06-05", sel.Start)
	require.Equal(t, "2026-06-08", sel.End)
	require.Equal(t, calendar.StateRangeChosen, s.State())
}

func TestSelector_EarlierClickReArmsStart(t *testing.T) {
	s := newSelector(15, 17)

	_, err := s.Click(day(8))
	require.NoError(t, err)

	sel, err := s.Click(day(5))
	require.NoError(t, err)
	require.Nil(t, sel, "earlier click must not close the range")
	require.Equal(t, calendar.StateStartChosen, s.State())

	sel, err = s.Click(day(7))
	require.NoError(t, err)
	require.NotNil(t, sel)
	require.Equal(t, "2026-06-05", sel.Start)
	require.Equal(t, "2026-06-07", sel.End)
}

func TestSelector_RejectsSpanCrossingBooking(t *testing.T) {
	// Booking on 15-17; the endpoints 14 and 18 are clickable, but the
	// span between them covers the booking.
	s := newSelector(15, 17)

	_, err := s.Click(day(14))
	require.NoError(t, err)

	sel, err := s.Click(day(18))
	require.True(t, errors.Is(err, calendar.ErrOverlap))
	require.Nil(t, sel)
	require.Equal(t, calendar.StateStartChosen, s.State(), "selection stays armed after a rejected close")

	// A shorter end that clears the booking still works.
	sel, err = s.Click(day(14))
	require.NoError(t, err)
	require.NotNil(t, sel)
	require.Equal(t, "2026-06-14", sel.Start)
	require.Equal(t, "2026-06-14", sel.End)
}

func TestSelector_ClickAfterEmissionStartsOver(t *testing.T) {
	s := newSelector(25, 27)

	_, err := s.Click(day(5))
	require.NoError(t, err)
	sel, err := s.Click(day(8))
	require.NoError(t, err)
	require.NotNil(t, sel)

	sel, err = s.Click(day(10))
	require.NoError(t, err)
	require.Nil(t, sel, "third click arms a fresh start")
	require.Equal(t, calendar.StateStartChosen, s.State())

	sel, err = s.Click(day(12))
	require.NoError(t, err)
	require.NotNil(t, sel)
	require.Equal(t, "2026-06-10", sel.Start)
	require.Equal(t, "2026-06-12", sel.End)
}

func TestSelector_SameDayRange(t *testing.T) {
	s := newSelector(25, 27)

	_, err := s.Click(day(5))
	require.NoError(t, err)
	sel, err := s.Click(day(5))
	require.NoError(t, err)
	require.NotNil(t, sel)
	require.Equal(t, sel.Start, sel.End)
}
