package dates_test

import (
	"testing"
	"time"

	"github.com/aleksiojala-maker/hihoneyapp/util/dates"
)

func TestCombine(t *testing.T) {
	got, err := dates.Combine("2026-06-01", "14:30")
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	want := time.Date(2026, time.June, 1, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCombine_DefaultsToNoon(t *testing.T) {
	got, err := dates.Combine("2026-06-01", "")
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if got.Hour() != 12 || got.Minute() != 0 {
		t.Fatalf("empty time should default to noon, got %v", got)
	}
}

func TestCombine_BadInput(t *testing.T) {
	if _, err := dates.Combine("june first", ""); err == nil {
		t.Fatal("expected error for bad date")
	}
	if _, err := dates.Combine("2026-06-01", "25:99"); err == nil {
		t.Fatal("expected error for bad time")
	}
}

func TestDayFloor(t *testing.T) {
	in := time.Date(2026, time.June, 1, 23, 59, 59, 1, time.UTC)
	got := dates.DayFloor(in)
	want := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
