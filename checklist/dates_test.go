package checklist

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	t.Run("zero padded format", func(t *testing.T) {
		d := time.Date(2024, 3, 5, 9, 30, 0, 0, time.Local)
		if got := DayKey(d); got != "2024-03-05" {
			t.Errorf("expected 2024-03-05, got %s", got)
		}
	})

	t.Run("stable within a day", func(t *testing.T) {
		morning := time.Date(2024, 3, 5, 0, 0, 1, 0, time.Local)
		night := time.Date(2024, 3, 5, 23, 59, 59, 0, time.Local)
		if DayKey(morning) != DayKey(night) {
			t.Errorf("keys differ within the same day: %s vs %s", DayKey(morning), DayKey(night))
		}
	})

	t.Run("monotonic across days", func(t *testing.T) {
		earlier := time.Date(2023, 12, 31, 23, 0, 0, 0, time.Local)
		later := time.Date(2024, 1, 1, 1, 0, 0, 0, time.Local)
		if !(DayKey(earlier) < DayKey(later)) {
			t.Errorf("expected %s < %s", DayKey(earlier), DayKey(later))
		}
	})
}

func TestLastNDays(t *testing.T) {
	now := time.Date(2024, 1, 10, 23, 45, 0, 0, time.Local)

	days := LastNDays(7, now)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if DayKey(days[0]) != "2024-01-10" {
		t.Errorf("expected today first, got %s", DayKey(days[0]))
	}
	if DayKey(days[6]) != "2024-01-04" {
		t.Errorf("expected 6 days ago last, got %s", DayKey(days[6]))
	}
	for i, d := range days {
		if d.Hour() != 12 {
			t.Errorf("day %d not normalized to noon: %v", i, d)
		}
	}

	t.Run("crosses month boundary", func(t *testing.T) {
		days := LastNDays(3, time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local))
		want := []string{"2024-03-01", "2024-02-29", "2024-02-28"}
		for i, w := range want {
			if DayKey(days[i]) != w {
				t.Errorf("day %d: expected %s, got %s", i, w, DayKey(days[i]))
			}
		}
	})
}

func TestLastNDayKeys(t *testing.T) {
	keys := LastNDayKeys(2, time.Date(2024, 1, 10, 6, 0, 0, 0, time.Local))
	if keys[0] != "2024-01-10" || keys[1] != "2024-01-09" {
		t.Errorf("unexpected keys: %v", keys)
	}
}
