// service/calendar/selector.go
package calendar

import (
	"errors"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/service/availability"
	"github.com/aleksiojala-maker/hihoneyapp/util/dates"
)

// ErrOverlap is returned when a proposed span crosses a booked range. The
// selection stays armed at its start so the user can pick a different end.
var ErrOverlap = errors.New("selection overlaps with an existing booking")

type State string

const (
	StateEmpty       State = "empty"
	StateStartChosen State = "start-chosen"
	StateRangeChosen State = "range-chosen"
)

// Selection is the emitted pair of calendar dates, date-only.
type Selection struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Selector turns two clicks into a validated date range. Booked ranges are
// normalized to whole days: a range blocks every calendar day it touches.
type Selector struct {
	today  time.Time
	booked []dayRange
	start  *time.Time
	end    *time.Time
}

type dayRange struct {
	start time.Time // day floor
	end   time.Time // day floor of the buffer-inclusive end
}

func NewSelector(today time.Time, booked []availability.Range) *Selector {
	s := &Selector{today: dates.DayFloor(today)}
	for _, r := range booked {
		s.booked = append(s.booked, dayRange{
			start: dates.DayFloor(r.Start),
			end:   dates.DayFloor(r.End),
		})
	}
	return s
}

func (s *Selector) State() State {
	switch {
	case s.start == nil:
		return StateEmpty
	case s.end == nil:
		return StateStartChosen
	default:
		return StateRangeChosen
	}
}

// Disabled reports whether a day cannot be clicked: it is in the past or
// inside a booked range.
func (s *Selector) Disabled(day time.Time) bool {
	day = dates.DayFloor(day)
	if day.Before(s.today) {
		return true
	}
	for _, b := range s.booked {
		if !day.Before(b.start) && !day.After(b.end) {
			return true
		}
	}
	return false
}

// Click advances the selection. A nil, nil return means no range was
// emitted (no-op, newly armed start, or replaced start). A non-nil
// Selection is a completed, validated range; it stays until the next
// arming click.
func (s *Selector) Click(day time.Time) (*Selection, error) {
	day = dates.DayFloor(day)
	if s.Disabled(day) {
		return nil, nil
	}

	// Start a new selection: nothing armed yet, or the previous range
	// completed. Any earlier emission is superseded.
	if s.start == nil || s.end != nil {
		s.start = &day
		s.end = nil
		return nil, nil
	}

	// An earlier click re-arms the start.
	if day.Before(*s.start) {
		s.start = &day
		return nil, nil
	}

	// Closing validates the entire span, not just the endpoints.
	if !s.rangeValid(*s.start, day) {
		return nil, ErrOverlap
	}
	s.end = &day
	return &Selection{
		Start: s.start.Format(dates.DateLayout),
		End:   day.Format(dates.DateLayout),
	}, nil
}

// rangeValid rejects a span if any booked range starts inside it, ends
// inside it, or covers it entirely.
func (s *Selector) rangeValid(start, end time.Time) bool {
	for _, b := range s.booked {
		startsInside := !b.start.Before(start) && !b.start.After(end)
		endsInside := !b.end.Before(start) && !b.end.After(end)
		covers := !b.start.After(start) && !b.end.Before(end)
		if startsInside || endsInside || covers {
			return false
		}
	}
	return true
}
